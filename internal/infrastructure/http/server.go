package http

import (
	"context"
	"errors"
	"net/http"
	"time"
	ports "training-hub/internal/domain/ports/output"
	"training-hub/internal/infrastructure/config"
)

type Server struct {
	address  string
	log      ports.Logger
	router   *Router
	server   *http.Server
	services Services
}

func NewServer(address string, log ports.Logger, services Services) *Server {
	return &Server{
		address:  address,
		log:      log,
		services: services,
	}
}

func (s *Server) Run(cfg *config.Config) error {
	s.router = NewRouter(s.log, s.services)
	s.router.Setup(cfg)

	// No WriteTimeout: it would cut long-lived WebSocket sessions.
	s.server = &http.Server{
		Addr:              s.address,
		Handler:           s.router.GetRouter(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	s.log.Info("Starting server", "address", s.address)
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}
