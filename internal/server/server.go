// Package server owns the HTTP server lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/minhvu/internhub/internal/config"
	"github.com/minhvu/internhub/internal/pkg/helpers"
	"github.com/minhvu/internhub/internal/pkg/logger"
)

// Server wraps the HTTP server with graceful shutdown
type Server struct {
	httpServer *http.Server
}

// New builds a Server around the given gin engine
func New(cfg config.ServerConfig, router *gin.Engine) *Server {
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	return &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      router,
			ReadTimeout:  helpers.ParseDuration(cfg.ReadTimeout, 15*time.Second),
			WriteTimeout: helpers.ParseDuration(cfg.WriteTimeout, 15*time.Second),
		},
	}
}

// Start begins serving, blocking until the listener stops
func (s *Server) Start() error {
	logger.Info().Str("addr", s.httpServer.Addr).Msg("HTTP server starting")
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server failed: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests and stops the listener
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info().Msg("HTTP server shutting down")
	return s.httpServer.Shutdown(ctx)
}
