// Package usgs fetches earthquake summary feeds published by the USGS.
package usgs

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/couchcryptid/quake-map/internal/domain"
)

// DefaultFeedURL is the past-seven-days, all-magnitudes summary feed. A week
// gives a good worldwide spread without a slow download.
// API Docs: https://earthquake.usgs.gov/earthquakes/feed/v1.0/geojson.php
const DefaultFeedURL = "https://earthquake.usgs.gov/earthquakes/feed/v1.0/summary/all_week.geojson"

// Client retrieves a GeoJSON feed over HTTP. It implements pipeline.FeedSource.
type Client struct {
	feedURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a feed client for feedURL with the given request timeout.
func NewClient(feedURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		feedURL: feedURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// URL returns the feed address this client reads from.
func (c *Client) URL() string { return c.feedURL }

// Fetch downloads and decodes the whole feed.
func (c *Client) Fetch(ctx context.Context) (domain.FeatureCollection, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.feedURL, nil)
	if err != nil {
		return domain.FeatureCollection{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/geo+json, application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.FeatureCollection{}, fmt.Errorf("feed request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return domain.FeatureCollection{}, fmt.Errorf("usgs feed error: status %d: %s", resp.StatusCode, body)
	}

	fc, err := decode(resp.Body)
	if err != nil {
		return domain.FeatureCollection{}, err
	}
	c.logger.Debug("feed fetched", "url", c.feedURL, "features", len(fc.Features))
	return fc, nil
}

// FileSource reads a feed saved to disk, for offline rendering and fixtures.
type FileSource struct {
	path string
}

// NewFileSource creates a source backed by the GeoJSON file at path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// URL returns the file path.
func (s *FileSource) URL() string { return s.path }

// Fetch reads and decodes the file. The context is only checked up front.
func (s *FileSource) Fetch(ctx context.Context) (domain.FeatureCollection, error) {
	if err := ctx.Err(); err != nil {
		return domain.FeatureCollection{}, err
	}
	f, err := os.Open(s.path)
	if err != nil {
		return domain.FeatureCollection{}, fmt.Errorf("open feed file: %w", err)
	}
	defer f.Close()
	return decode(f)
}

func decode(r io.Reader) (domain.FeatureCollection, error) {
	var fc domain.FeatureCollection
	if err := json.NewDecoder(r).Decode(&fc); err != nil {
		return domain.FeatureCollection{}, fmt.Errorf("decode feed: %w", err)
	}
	return fc, nil
}
