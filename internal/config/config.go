package config

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/couchcryptid/quake-map/internal/adapter/usgs"
	"github.com/couchcryptid/quake-map/internal/domain"
	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// Defaults for the map view, as strings so they pass through EnvOrDefault.
const (
	defaultCenterLat = "37.09"
	defaultCenterLon = "-95.71"
	defaultZoom      = "5"
	maxZoom          = 19
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// USGS feed configuration.
	FeedURL     string
	FeedTimeout time.Duration

	// Initial map view.
	MapCenterLat float64
	MapCenterLon float64
	MapZoom      int
	TileURL      string
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	feedTimeout, err := time.ParseDuration(sharedcfg.EnvOrDefault("FEED_TIMEOUT", "10s"))
	if err != nil || feedTimeout <= 0 {
		return nil, errors.New("invalid FEED_TIMEOUT")
	}

	lat, err := parseCoordinate("MAP_CENTER_LAT", defaultCenterLat, 90)
	if err != nil {
		return nil, err
	}
	lon, err := parseCoordinate("MAP_CENTER_LON", defaultCenterLon, 180)
	if err != nil {
		return nil, err
	}

	zoom, err := strconv.Atoi(sharedcfg.EnvOrDefault("MAP_ZOOM", defaultZoom))
	if err != nil || zoom < 0 || zoom > maxZoom {
		return nil, fmt.Errorf("invalid MAP_ZOOM: must be an integer between 0 and %d", maxZoom)
	}

	cfg := &Config{
		HTTPAddr:        sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		FeedURL:     sharedcfg.EnvOrDefault("FEED_URL", usgs.DefaultFeedURL),
		FeedTimeout: feedTimeout,

		MapCenterLat: lat,
		MapCenterLon: lon,
		MapZoom:      zoom,
		TileURL:      sharedcfg.EnvOrDefault("TILE_URL", domain.DefaultTileURL),
	}

	return cfg, nil
}

// parseCoordinate reads a float from key and rejects values outside ±limit.
func parseCoordinate(key, def string, limit float64) (float64, error) {
	v, err := strconv.ParseFloat(sharedcfg.EnvOrDefault(key, def), 64)
	if err != nil || v < -limit || v > limit {
		return 0, fmt.Errorf("invalid %s: must be a number between %g and %g", key, -limit, limit)
	}
	return v, nil
}
