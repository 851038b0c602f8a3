// Package main is the entry point for the OutdoorCast API server.
//
// It initializes the configuration, wires the Open-Meteo and Nominatim
// clients into the suitability orchestrator, builds the HTTP server with the
// core chassis (middleware, routing, health checks), and starts listening for
// requests.
//
// Graceful shutdown is handled via OS signal interception (SIGINT, SIGTERM).
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

	"outdoorcast/internal/config"
	"outdoorcast/internal/core"
	"outdoorcast/internal/external"
	"outdoorcast/internal/observability"
	"outdoorcast/internal/suitability"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// run encapsulates the startup lifecycle so that main() can cleanly exit on error.
func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)
	logger.Info("outdoorcast API starting",
		"environment", cfg.Environment,
		"port", cfg.Server.Port,
	)

	httpClient := &http.Client{Timeout: cfg.Upstream.HTTPTimeout}
	weatherClient := external.NewOpenMeteoClient(
		httpClient,
		cfg.Upstream.ForecastBaseURL,
		cfg.Upstream.MarineBaseURL,
		cfg.Upstream.UserAgent,
		logger,
	)
	placeClient := external.NewNominatimClient(
		httpClient,
		cfg.Upstream.NominatimBaseURL,
		cfg.Upstream.UserAgent,
		logger,
	)

	svc := suitability.NewService(weatherClient, placeClient, logger, cfg.Upstream.FetchTimeout)
	metrics := observability.NewMetrics()

	srv, err := core.NewServer(cfg, svc, metrics, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}
	srv.MountRoutes()

	httpServer := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: srv.Handler(),
	}

	// Serve until a shutdown signal arrives.
	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}

// newLogger builds the application-wide structured logger at the configured
// level.
func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
