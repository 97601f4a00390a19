package logger

import (
	"io"
	"log/slog"
	"os"
)

const (
	envDev  = "dev"
	envProd = "prod"
	envTest = "test"
)

type Logger struct {
	*slog.Logger
}

func New(env string) *Logger {
	var handler slog.Handler

	switch env {
	case envProd:
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	case envTest:
		handler = slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError})
	case envDev:
		fallthrough
	default:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}

	return &Logger{Logger: slog.New(handler)}
}
