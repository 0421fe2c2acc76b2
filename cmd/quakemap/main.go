package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/quake-map/internal/adapter/httpadapter"
	"github.com/couchcryptid/quake-map/internal/adapter/leaflet"
	"github.com/couchcryptid/quake-map/internal/adapter/usgs"
	"github.com/couchcryptid/quake-map/internal/config"
	"github.com/couchcryptid/quake-map/internal/domain"
	"github.com/couchcryptid/quake-map/internal/observability"
	"github.com/couchcryptid/quake-map/internal/pipeline"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	feed := usgs.NewClient(cfg.FeedURL, cfg.FeedTimeout, logger)
	p := pipeline.New(feed, domain.ViewOptions{
		CenterLat: cfg.MapCenterLat,
		CenterLon: cfg.MapCenterLon,
		Zoom:      cfg.MapZoom,
		TileURL:   cfg.TileURL,
	}, logger, metrics)

	srv := httpadapter.NewServer(cfg.HTTPAddr, p, leaflet.NewRenderer(), p, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	logger.Info("quake map ready", "feed", cfg.FeedURL, "addr", cfg.HTTPAddr)

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
