// VideoTube - Video Sharing Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videotube

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/videotube/internal/api"
	"github.com/tomtom215/videotube/internal/auth"
	"github.com/tomtom215/videotube/internal/config"
	"github.com/tomtom215/videotube/internal/database"
	"github.com/tomtom215/videotube/internal/logging"
	"github.com/tomtom215/videotube/internal/media"
	"github.com/tomtom215/videotube/internal/metrics"
	"github.com/tomtom215/videotube/internal/supervisor"
	"github.com/tomtom215/videotube/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		logging.Error().Err(err).Msg("Server exited with error")
		_ = logging.Close()
		os.Exit(1)
	}
	_ = logging.Close()
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		// Logging config is not available yet; the default logger writes JSON to stderr.
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		File: logging.FileConfig{
			Path:       cfg.Logging.File,
			MaxSizeMB:  cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
			MaxAgeDays: cfg.Logging.MaxAgeDays,
		},
	})

	logging.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Str("database", cfg.Mongo.Database).
		Str("media_backend", cfg.Media.Backend).
		Msg("Starting VideoTube API")
	metrics.SetAppInfo(version)
	startTime := time.Now()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.New(ctx, &cfg.Mongo)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
		defer cancel()
		if err := db.Close(closeCtx); err != nil {
			logging.Error().Err(err).Msg("Error disconnecting from MongoDB")
		}
	}()

	if err := db.EnsureIndexes(ctx); err != nil {
		return err
	}
	logging.Info().Str("database", db.Name()).Msg("MongoDB connected, indexes ensured")

	mediaStore, mediaFiles, err := media.Open(ctx, &cfg.Media)
	if err != nil {
		return err
	}

	jwtManager, err := auth.NewJWTManager(&cfg.Security)
	if err != nil {
		return err
	}
	authMiddleware := auth.NewMiddleware(jwtManager, api.RejectUnauthorized)

	handler := api.NewHandler(db, mediaStore, cfg)
	router := api.NewRouter(handler, authMiddleware, cfg, mediaFiles)

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		// No ReadTimeout: upload bodies are bounded by MEDIA_MAX_UPLOAD_MB.
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  120 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
		return err
	}
	tree.AddBackgroundService(services.NewDBMonitorService(db, 30*time.Second))
	tree.AddBackgroundService(services.NewUptimeService(startTime, 15*time.Second))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	if unstopped, _ := tree.UnstoppedServiceReport(); len(unstopped) > 0 {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
	return nil
}
