// Package leaflet renders a map view as a standalone Leaflet web page.
package leaflet

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/couchcryptid/quake-map/internal/domain"
)

// Leaflet assets served from the unpkg CDN.
const (
	DefaultLeafletJS  = "https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"
	DefaultLeafletCSS = "https://unpkg.com/leaflet@1.9.4/dist/leaflet.css"

	defaultTitle = "Earthquakes"
)

//go:embed static/map.html.tmpl
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "static/map.html.tmpl"))

// pageData is the template input. The view is injected into a script block,
// where html/template encodes it as a JSON literal.
type pageData struct {
	Title      string
	LeafletJS  string
	LeafletCSS string
	View       domain.MapView
}

// Renderer writes map pages. It implements pipeline.PageRenderer.
type Renderer struct {
	title      string
	leafletJS  string
	leafletCSS string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithTitle sets the document title.
func WithTitle(title string) Option {
	return func(r *Renderer) { r.title = title }
}

// WithAssets overrides the Leaflet script and stylesheet URLs.
func WithAssets(js, css string) Option {
	return func(r *Renderer) {
		r.leafletJS = js
		r.leafletCSS = css
	}
}

// NewRenderer creates a Renderer using the CDN-hosted Leaflet build.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		title:      defaultTitle,
		leafletJS:  DefaultLeafletJS,
		leafletCSS: DefaultLeafletCSS,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ContentType is the media type of the rendered page.
func (r *Renderer) ContentType() string { return "text/html; charset=utf-8" }

// Render writes the full HTML document for view to w.
func (r *Renderer) Render(w io.Writer, view domain.MapView) error {
	data := pageData{
		Title:      r.title,
		LeafletJS:  r.leafletJS,
		LeafletCSS: r.leafletCSS,
		View:       view,
	}
	if err := pageTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("render map page: %w", err)
	}
	return nil
}
