package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tycrek/eye/common/logger"
)

const drainTimeout = 30 * time.Second

// Server runs an http.Server until it fails or the process receives
// SIGINT/SIGTERM, then drains in-flight requests before returning.
type Server struct {
	name string
	srv  *http.Server
	log  *logger.Logger
}

// New builds a Server on the given port. Write and idle timeouts are sized
// for responses that stream image bytes to slow clients; requests themselves
// are header-only GETs.
func New(name string, port int, handler http.Handler, log *logger.Logger) *Server {
	return &Server{
		name: name,
		log:  log,
		srv: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      2 * time.Minute,
			IdleTimeout:       2 * time.Minute,
		},
	}
}

// Start blocks until the listener fails or a shutdown signal arrives.
func (s *Server) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	failed := make(chan error, 1)
	go func() {
		s.log.Info(s.name+" listening", "addr", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			failed <- err
		}
	}()

	select {
	case err := <-failed:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	s.log.Info("shutdown signal received")
	return s.drain()
}

// drain gives outstanding requests drainTimeout to finish, then forces
// the listener closed.
func (s *Server) drain() error {
	ctx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()

	if err := s.srv.Shutdown(ctx); err != nil {
		s.log.Error("graceful shutdown failed", "error", err)
		if err := s.srv.Close(); err != nil {
			return fmt.Errorf("could not stop server: %w", err)
		}
	}

	s.log.Info("shutdown complete")
	return nil
}
