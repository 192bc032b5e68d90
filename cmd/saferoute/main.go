package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/couchcryptid/saferoute/internal/adapter/http"
	"github.com/couchcryptid/saferoute/internal/artifact"
	"github.com/couchcryptid/saferoute/internal/config"
	"github.com/couchcryptid/saferoute/internal/domain"
	"github.com/couchcryptid/saferoute/internal/observability"
	"github.com/couchcryptid/saferoute/internal/pipeline"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	// Both artifacts must load before the server accepts a single request.
	arts, err := artifact.Load(cfg.ModelPath, cfg.CatalogPath)
	if err != nil {
		logger.Error("failed to load artifacts", "error", err)
		os.Exit(1)
	}
	logger.Info("artifacts loaded", "model", cfg.ModelPath, "catalog", cfg.CatalogPath)

	policy, err := domain.NewExposurePolicy(cfg.ExposedFields)
	if err != nil {
		logger.Error("invalid exposed fields", "error", err)
		os.Exit(1)
	}
	logger.Info("form fields exposed", "fields", policy.Fields())

	p := pipeline.New(arts.Catalog, arts.Classifier, policy, logger, metrics)
	srv := httpadapter.NewServer(cfg.HTTPAddr, p, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
