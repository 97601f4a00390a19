package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"blogicum-service/internal/config"
	"blogicum-service/internal/logger"
)

func main() {
	cfg := config.MustLoad()
	log := logger.New(cfg.Env)

	dsn := fmt.Sprintf("pgx5://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DbName)

	m, err := migrate.New("file://"+cfg.Database.MigrationsPath, dsn)
	if err != nil {
		log.Error("Failed to init migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer m.Close()

	log.Info("Applying migrations", slog.String("path", cfg.Database.MigrationsPath))

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info("Nothing to migrate")
			return
		}
		log.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("Migrations applied")
}
