// Internship management API with spreadsheet roster reconciliation.
//
// @title InternHub API
// @version 1.0
// @description Student internship management backend with roster import
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/minhvu/internhub/internal/bootstrap"
	"github.com/minhvu/internhub/internal/pkg/logger"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to configuration file")
	flag.Parse()

	ctx := context.Background()
	app, err := bootstrap.New(ctx, *configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to start application")
	}
	defer app.Close()

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Server.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Fatal().Err(err).Msg("Server stopped unexpectedly")
		}
	case sig := <-quit:
		logger.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := app.Server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("Graceful shutdown failed")
		}
	}
}
