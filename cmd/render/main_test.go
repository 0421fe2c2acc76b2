package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/couchcryptid/quake-map/internal/adapter/usgs"
	"github.com/couchcryptid/quake-map/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixturePath = filepath.Join("..", "..", "data", "mock", "all_week_sample.geojson")

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRun_JSONFromFixture(t *testing.T) {
	out := filepath.Join(t.TempDir(), "view.json")

	require.NoError(t, run(fixturePath, out, "json", 5*time.Second, "Earthquakes", discardLogger()))

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var view domain.MapView
	require.NoError(t, json.Unmarshal(data, &view))
	require.Len(t, view.Overlay.Markers, 4)

	colors := make([]string, 0, len(view.Overlay.Markers))
	for _, m := range view.Overlay.Markers {
		colors = append(colors, m.Style.FillColor)
	}
	assert.Equal(t, []string{"lightgreen", "yellow", "lightgreen", "purple"}, colors)
	assert.Zero(t, view.Overlay.Markers[2].Radius, "negative magnitude")
	assert.Equal(t, fixturePath, view.Source)
}

func TestRun_HTMLFromServer(t *testing.T) {
	fixture, err := os.ReadFile(fixturePath)
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(fixture)
	}))
	defer srv.Close()

	out := filepath.Join(t.TempDir(), "map.html")
	require.NoError(t, run(srv.URL, out, "html", 5*time.Second, "Weekly quakes", discardLogger()))

	page, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(page), "<title>Weekly quakes</title>")
	assert.Contains(t, string(page), "Tonga region")
}

func TestRun_UnknownFormat(t *testing.T) {
	err := run(fixturePath, "-", "pdf", time.Second, "", discardLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pdf")
}

func TestRun_MissingFeedFile(t *testing.T) {
	err := run(filepath.Join(t.TempDir(), "missing.geojson"), "-", "json", time.Second, "", discardLogger())
	require.Error(t, err)
}

func TestNewSource(t *testing.T) {
	_, isClient := newSource("https://example.com/feed.geojson", time.Second, discardLogger()).(*usgs.Client)
	assert.True(t, isClient)

	src := newSource("file:///tmp/feed.geojson", time.Second, discardLogger())
	fs, isFile := src.(*usgs.FileSource)
	require.True(t, isFile)
	assert.Equal(t, "/tmp/feed.geojson", fs.URL())
}
