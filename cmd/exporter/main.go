// Package main is the entrypoint for the test metrics exporter.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/enterprise-qa/test-metrics-exporter/internal/aggregate"
	"github.com/enterprise-qa/test-metrics-exporter/internal/api"
	"github.com/enterprise-qa/test-metrics-exporter/internal/config"
	"github.com/enterprise-qa/test-metrics-exporter/pkg/models"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := run(); err != nil {
		slog.Error("exporter failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	router := api.NewRouter(api.Dependencies{
		Scan: func() models.Summary { return aggregate.Scan(cfg.ResultsDir) },
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("test metrics exporter running",
			"port", cfg.Port,
			"results_dir", cfg.ResultsDir,
			"metrics_endpoint", fmt.Sprintf("http://localhost:%d/metrics", cfg.Port),
			"health_endpoint", fmt.Sprintf("http://localhost:%d/health", cfg.Port),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Failing to bind the port is the only fatal condition; everything the
	// handlers do degrades to zero/default metrics instead of erroring.
	select {
	case err := <-errCh:
		return fmt.Errorf("listen on %s: %w", addr, err)
	case <-ctx.Done():
		slog.Info("shutdown signal received, draining connections...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("exporter stopped gracefully")
	return nil
}
