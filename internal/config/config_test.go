package config

import (
	"testing"
	"time"

	"github.com/couchcryptid/quake-map/internal/adapter/usgs"
	"github.com/couchcryptid/quake-map/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, usgs.DefaultFeedURL, cfg.FeedURL)
	assert.Equal(t, 10*time.Second, cfg.FeedTimeout)
	assert.InDelta(t, 37.09, cfg.MapCenterLat, 1e-9)
	assert.InDelta(t, -95.71, cfg.MapCenterLon, 1e-9)
	assert.Equal(t, 5, cfg.MapZoom)
	assert.Equal(t, domain.DefaultTileURL, cfg.TileURL)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("FEED_URL", "https://earthquake.usgs.gov/earthquakes/feed/v1.0/summary/4.5_day.geojson")
	t.Setenv("FEED_TIMEOUT", "3s")
	t.Setenv("MAP_CENTER_LAT", "61.2")
	t.Setenv("MAP_CENTER_LON", "-149.9")
	t.Setenv("MAP_ZOOM", "3")
	t.Setenv("TILE_URL", "https://tiles.example.com/{z}/{x}/{y}.png")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "https://earthquake.usgs.gov/earthquakes/feed/v1.0/summary/4.5_day.geojson", cfg.FeedURL)
	assert.Equal(t, 3*time.Second, cfg.FeedTimeout)
	assert.InDelta(t, 61.2, cfg.MapCenterLat, 1e-9)
	assert.InDelta(t, -149.9, cfg.MapCenterLon, 1e-9)
	assert.Equal(t, 3, cfg.MapZoom)
	assert.Equal(t, "https://tiles.example.com/{z}/{x}/{y}.png", cfg.TileURL)
}

func TestLoad_InvalidShutdownTimeout(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "not-a-duration")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}

func TestLoad_InvalidFeedTimeout(t *testing.T) {
	for _, v := range []string{"bad", "0s", "-5s"} {
		t.Run(v, func(t *testing.T) {
			t.Setenv("FEED_TIMEOUT", v)
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "FEED_TIMEOUT")
		})
	}
}

func TestLoad_InvalidLatitude(t *testing.T) {
	t.Setenv("MAP_CENTER_LAT", "91")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MAP_CENTER_LAT")
}

func TestLoad_InvalidLongitude(t *testing.T) {
	t.Setenv("MAP_CENTER_LON", "east")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MAP_CENTER_LON")
}

func TestLoad_InvalidZoom(t *testing.T) {
	for _, v := range []string{"-1", "20", "five"} {
		t.Run(v, func(t *testing.T) {
			t.Setenv("MAP_ZOOM", v)
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "MAP_ZOOM")
		})
	}
}
