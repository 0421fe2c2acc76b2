// Command render performs a single render pass and writes the result, either
// as a standalone Leaflet page or as the map view JSON.
//
// Usage:
//
//	go run ./cmd/render -out quakes.html
//	go run ./cmd/render -feed data/mock/all_week.geojson -format json -out -
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/couchcryptid/quake-map/internal/adapter/leaflet"
	"github.com/couchcryptid/quake-map/internal/adapter/usgs"
	"github.com/couchcryptid/quake-map/internal/domain"
	"github.com/couchcryptid/quake-map/internal/observability"
	"github.com/couchcryptid/quake-map/internal/pipeline"
)

func main() {
	feed := flag.String("feed", usgs.DefaultFeedURL, "feed URL, or path to a saved GeoJSON file")
	out := flag.String("out", "-", "output path, or - for stdout")
	format := flag.String("format", "html", "output format: html or json")
	timeout := flag.Duration("timeout", 30*time.Second, "feed request timeout")
	title := flag.String("title", "Earthquakes", "page title")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := run(*feed, *out, *format, *timeout, *title, logger); err != nil {
		logger.Error("render failed", "error", err)
		os.Exit(1)
	}
}

func run(feed, out, format string, timeout time.Duration, title string, logger *slog.Logger) error {
	if format != "html" && format != "json" {
		return fmt.Errorf("unknown format %q: want html or json", format)
	}

	p := pipeline.New(newSource(feed, timeout, logger), domain.DefaultViewOptions(), logger, observability.NewMetricsForTesting())

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	view, err := p.RenderPass(ctx)
	if err != nil {
		return err
	}

	w, closeFn, err := openOutput(out)
	if err != nil {
		return err
	}
	defer closeFn()

	if err := write(w, format, title, view); err != nil {
		return err
	}
	logger.Info("wrote map", "out", out, "format", format, "markers", len(view.Overlay.Markers))
	return nil
}

// newSource picks an HTTP client for URLs and a file reader for anything else.
func newSource(feed string, timeout time.Duration, logger *slog.Logger) pipeline.FeedSource {
	if strings.HasPrefix(feed, "http://") || strings.HasPrefix(feed, "https://") {
		return usgs.NewClient(feed, timeout, logger)
	}
	return usgs.NewFileSource(strings.TrimPrefix(feed, "file://"))
}

func write(w io.Writer, format, title string, view domain.MapView) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(view); err != nil {
			return fmt.Errorf("encode map view: %w", err)
		}
		return nil
	}
	return leaflet.NewRenderer(leaflet.WithTitle(title)).Render(w, view)
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "-" || path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
