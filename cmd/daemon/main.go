// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/posecare/statusd/internal/api"
	"github.com/posecare/statusd/internal/config"
	"github.com/posecare/statusd/internal/health"
	xglog "github.com/posecare/statusd/internal/log"
	"github.com/posecare/statusd/internal/version"
)

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	configPath := flag.String("config", "", "path to config file (YAML)")
	flag.Parse()

	if *showVersion {
		fmt.Printf("%s (commit: %s, built: %s)\n", version.Version, version.Commit, version.Date)
		os.Exit(0)
	}

	// Configure logger with safe defaults until config is loaded.
	xglog.Configure(xglog.Config{
		Level:   "info",
		Service: "statusd",
		Version: version.Version,
	})
	logger := xglog.WithComponent("daemon")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	loader := config.NewLoader(*configPath, version.Version)
	cfg, err := loader.Load()
	if err != nil {
		logger.Fatal().
			Err(err).
			Str(xglog.FieldEvent, "config.load_failed").
			Str("config_path", *configPath).
			Msg("failed to load configuration")
	}
	xglog.SetLevel(cfg.LogLevel)

	logger.Info().
		Str(xglog.FieldEvent, "config.loaded").
		Str("listen", cfg.Listen).
		Str("log_level", cfg.LogLevel).
		Bool("rate_limit_enabled", cfg.RateLimitEnabled).
		Msg("configuration loaded")

	holder := config.NewHolder(cfg, loader, *configPath)
	if err := holder.Watch(ctx); err != nil {
		logger.Warn().
			Err(err).
			Str(xglog.FieldEvent, "config.watch_failed").
			Msg("config hot reload disabled")
	}

	healthManager := health.NewManager(version.Version)
	healthManager.Register(health.CatalogChecker{})

	server := api.New(holder, healthManager)
	httpServer := &http.Server{
		Addr:              cfg.Listen,
		Handler:           server.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().
			Str(xglog.FieldEvent, "server.listening").
			Str("addr", cfg.Listen).
			Msg("HTTP server started")
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info().Str(xglog.FieldEvent, "server.shutdown").Msg("signal received, shutting down")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().
				Err(err).
				Str(xglog.FieldEvent, "server.failed").
				Msg("HTTP server failed")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error().
			Err(err).
			Str(xglog.FieldEvent, "server.shutdown_failed").
			Msg("graceful shutdown failed")
	}
}
