package domain

import (
	"fmt"
	"time"
)

// FeatureCollection is the top-level GeoJSON document served by the USGS feed.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// Feature is a single feed entry. Only the fields the map needs are decoded.
type Feature struct {
	ID         string            `json:"id"`
	Geometry   FeatureGeometry   `json:"geometry"`
	Properties FeatureProperties `json:"properties"`
}

// FeatureGeometry holds a GeoJSON Point as [longitude, latitude, depth].
type FeatureGeometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// FeatureProperties carries the event attributes. The feed sends a null
// magnitude for some events; it decodes as zero.
type FeatureProperties struct {
	Mag   float64 `json:"mag"`
	Title string  `json:"title"`
}

// Earthquake is the record a render pass works on. It is never mutated.
type Earthquake struct {
	ID        string  `json:"id,omitempty"`
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
	DepthKm   float64 `json:"depth_km"`
	Magnitude float64 `json:"magnitude"`
	Title     string  `json:"title"`
}

// Style is the Leaflet path styling applied to every circle.
type Style struct {
	Color       string  `json:"color"`
	Weight      int     `json:"weight"`
	FillColor   string  `json:"fillColor"`
	FillOpacity float64 `json:"fillOpacity"`
}

// Marker is a circle shape placed at (Lat, Lon) with a radius in metres.
type Marker struct {
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
	Radius float64 `json:"radius"`
	Style  Style   `json:"style"`
	Popup  string  `json:"popup"`
}

// TileLayer describes a base map served as XYZ tiles.
type TileLayer struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	MaxZoom     int    `json:"maxZoom"`
	Attribution string `json:"attribution"`
}

// OverlayLayer groups markers under one toggle in the layer control.
type OverlayLayer struct {
	Name    string   `json:"name"`
	Visible bool     `json:"visible"`
	Markers []Marker `json:"markers"`
}

// LegendEntry pairs a depth band label with its fill color.
type LegendEntry struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// Legend is the static depth key drawn in a map corner.
type Legend struct {
	Title    string        `json:"title"`
	Position string        `json:"position"`
	Entries  []LegendEntry `json:"entries"`
}

// LatLon is a WGS-84 coordinate pair in Leaflet order.
type LatLon struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// MapView is everything the page renderer needs to draw one map.
type MapView struct {
	Center      LatLon       `json:"center"`
	Zoom        int          `json:"zoom"`
	BaseLayer   TileLayer    `json:"baseLayer"`
	Overlay     OverlayLayer `json:"overlay"`
	Legend      Legend       `json:"legend"`
	Source      string       `json:"source,omitempty"`
	GeneratedAt time.Time    `json:"generatedAt"`
}

// ParseFeature converts a feed feature into an Earthquake. A geometry with
// fewer than three coordinates cannot be placed or colored and is rejected.
func ParseFeature(f Feature) (Earthquake, error) {
	if len(f.Geometry.Coordinates) < 3 {
		return Earthquake{}, fmt.Errorf("parse feature %q: want 3 coordinates, got %d", f.ID, len(f.Geometry.Coordinates))
	}
	c := f.Geometry.Coordinates
	return Earthquake{
		ID:        f.ID,
		Longitude: c[0],
		Latitude:  c[1],
		DepthKm:   c[2],
		Magnitude: f.Properties.Mag,
		Title:     f.Properties.Title,
	}, nil
}

// ParseFeatureCollection converts every feature in order. The first malformed
// feature fails the whole collection.
func ParseFeatureCollection(fc FeatureCollection) ([]Earthquake, error) {
	quakes := make([]Earthquake, 0, len(fc.Features))
	for _, f := range fc.Features {
		q, err := ParseFeature(f)
		if err != nil {
			return nil, err
		}
		quakes = append(quakes, q)
	}
	return quakes, nil
}
