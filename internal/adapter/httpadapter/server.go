package httpadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/couchcryptid/quake-map/internal/domain"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ViewProducer runs one render pass per call.
type ViewProducer interface {
	RenderPass(ctx context.Context) (domain.MapView, error)
}

// PageRenderer turns a map view into a document.
type PageRenderer interface {
	Render(w io.Writer, view domain.MapView) error
	ContentType() string
}

// Server exposes the map page, the map view as JSON, and health, readiness,
// and metrics endpoints.
type Server struct {
	httpServer *http.Server
	views      ViewProducer
	page       PageRenderer
	logger     *slog.Logger
}

// NewServer creates an HTTP server with /, /api/map, /healthz, /readyz, and /metrics routes.
func NewServer(addr string, views ViewProducer, page PageRenderer, ready sharedobs.ReadinessChecker, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		views:  views,
		page:   page,
		logger: logger,
	}

	mux.HandleFunc("GET /{$}", s.handleMapPage)
	mux.HandleFunc("GET /api/map", s.handleMapView)
	mux.HandleFunc("GET /healthz", sharedobs.LivenessHandler())
	mux.HandleFunc("GET /readyz", sharedobs.ReadinessHandler(ready))
	mux.Handle("GET /metrics", promhttp.Handler())

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleMapPage(w http.ResponseWriter, r *http.Request) {
	view, err := s.views.RenderPass(r.Context())
	if err != nil {
		s.logger.Error("render pass failed", "error", err, "path", r.URL.Path)
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
		return
	}

	// Render fully before writing so a template failure can still change the status.
	var buf bytes.Buffer
	if err := s.page.Render(&buf, view); err != nil {
		s.logger.Error("page render failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	w.Header().Set("Content-Type", s.page.ContentType())
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleMapView(w http.ResponseWriter, r *http.Request) {
	view, err := s.views.RenderPass(r.Context())
	if err != nil {
		s.logger.Error("render pass failed", "error", err, "path", r.URL.Path)
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response body
}
