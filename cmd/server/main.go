package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ankitraj/portfolio/internal/app/bootstrap"
	appconfig "github.com/ankitraj/portfolio/internal/config"
	"github.com/ankitraj/portfolio/pkg/logging"
)

func main() {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	// Load configuration
	cfg := appconfig.Load()

	// Initialize logger
	logger := logging.NewWithOptions(cfg.LogLevel, cfg.LogFormat, os.Stdout)
	logger.Info("starting portfolio server",
		"env", cfg.Env,
		"port", cfg.Port,
		"serverless", cfg.Serverless(),
	)

	handler, err := bootstrap.BuildHandler(context.Background(), cfg, logger, bootstrap.Options{})
	if err != nil {
		logger.Error("failed to build handler", "error", err)
		os.Exit(1)
	}

	// Create HTTP server
	srv := newServer(cfg, handler)

	// Start server in a goroutine
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "url", fmt.Sprintf("http://localhost:%s", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

func newServer(cfg *appconfig.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}
