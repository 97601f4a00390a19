package delivery_metrics

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"blogicum-service/internal/logger"
)

// Server exposes the Prometheus scrape endpoint on its own port, away
// from the public API.
type Server struct {
	server *http.Server
	log    *logger.Logger
}

func NewServer(address string, port int, log *logger.Logger) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	return &Server{
		server: &http.Server{
			Addr:    fmt.Sprintf("%s:%d", address, port),
			Handler: mux,
		},
		log: log,
	}
}

func (s *Server) Run() error {
	s.log.Info("Starting metrics server", slog.String("address", s.server.Addr))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("metrics server error: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("Shutting down metrics server")
	return s.server.Shutdown(ctx)
}
