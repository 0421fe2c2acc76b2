package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/quake-map/internal/domain"
	"github.com/couchcryptid/quake-map/internal/observability"
)

// FeedSource provides the raw earthquake feed.
type FeedSource interface {
	Fetch(ctx context.Context) (domain.FeatureCollection, error)
	URL() string
}

// Pipeline runs render passes: fetch the feed, transform every record, and
// assemble the map view.
type Pipeline struct {
	source  FeedSource
	opts    domain.ViewOptions
	logger  *slog.Logger
	metrics *observability.Metrics
	ready   atomic.Bool
}

// New creates a Pipeline. The view options' Source is filled from the feed URL.
func New(source FeedSource, opts domain.ViewOptions, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	opts.Source = source.URL()
	return &Pipeline{
		source:  source,
		opts:    opts,
		logger:  logger,
		metrics: metrics,
	}
}

// CheckReadiness returns nil once at least one render pass has succeeded.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if !p.ready.Load() {
		return errors.New("no render pass has completed yet")
	}
	return nil
}

// RenderPass performs one synchronous fetch-transform pass. Any failure
// aborts the pass; there is no retry and no partial result.
func (p *Pipeline) RenderPass(ctx context.Context) (domain.MapView, error) {
	start := time.Now()

	fc, err := p.source.Fetch(ctx)
	p.metrics.FeedFetchDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		p.metrics.RenderPasses.WithLabelValues(observability.OutcomeFetchError).Inc()
		return domain.MapView{}, fmt.Errorf("fetch feed: %w", err)
	}

	quakes, err := domain.ParseFeatureCollection(fc)
	if err != nil {
		p.metrics.RenderPasses.WithLabelValues(observability.OutcomeParseError).Inc()
		return domain.MapView{}, err
	}

	view := domain.Render(quakes, p.opts)

	n := len(view.Overlay.Markers)
	p.metrics.RenderPasses.WithLabelValues(observability.OutcomeSuccess).Inc()
	p.metrics.MarkersRendered.Observe(float64(n))
	p.metrics.LastMarkerCount.Set(float64(n))
	p.metrics.RenderPassDuration.Observe(time.Since(start).Seconds())
	p.ready.Store(true)

	p.logger.Info("render pass complete",
		"source", p.opts.Source,
		"markers", n,
		"duration", time.Since(start),
	)
	return view, nil
}
