package delivery_http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"blogicum-service/internal/logger"
)

type Server struct {
	server *http.Server
	log    *logger.Logger
}

func NewServer(handler *gin.Engine, address string, port int, log *logger.Logger) *Server {
	return &Server{
		server: &http.Server{
			Addr:    fmt.Sprintf("%s:%d", address, port),
			Handler: handler,
		},
		log: log,
	}
}

func (s *Server) Run() error {
	s.log.Info("Starting HTTP server", slog.String("address", s.server.Addr))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}
