package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "quake_map"

// Render pass outcomes used as the "outcome" label.
const (
	OutcomeSuccess    = "success"
	OutcomeFetchError = "fetch_error"
	OutcomeParseError = "parse_error"
)

// Metrics holds the Prometheus collectors for render passes.
type Metrics struct {
	RenderPasses       *prometheus.CounterVec // labels: outcome={success,fetch_error,parse_error}
	FeedFetchDuration  prometheus.Histogram
	MarkersRendered    prometheus.Histogram
	LastMarkerCount    prometheus.Gauge
	RenderPassDuration prometheus.Histogram
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.RenderPasses,
		m.FeedFetchDuration,
		m.MarkersRendered,
		m.LastMarkerCount,
		m.RenderPassDuration,
	)
	return m
}

// NewMetricsForTesting creates unregistered Metrics so tests can build as many
// as they like without "already registered" panics.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		RenderPasses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "render_passes_total",
			Help:      "Render passes by outcome.",
		}, []string{"outcome"}),
		FeedFetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "feed_fetch_duration_seconds",
			Help:      "Duration of the earthquake feed download and decode.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		MarkersRendered: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "markers_rendered",
			Help:      "Number of circle markers produced per render pass.",
			Buckets:   []float64{0, 10, 100, 500, 1000, 2000, 5000, 10000},
		}),
		LastMarkerCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_marker_count",
			Help:      "Markers in the most recent successful render pass.",
		}),
		RenderPassDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "render_pass_duration_seconds",
			Help:      "Duration of a complete fetch-transform-render pass.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
	}
}
