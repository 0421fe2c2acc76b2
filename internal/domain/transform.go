package domain

import (
	"fmt"
	"html"
	"math"
	"strconv"

	"github.com/samber/lo"
)

// Marker styling shared by every circle.
const (
	strokeColor  = "black"
	strokeWeight = 1
	fillOpacity  = 0.5

	// radiusScale converts exp(magnitude) into metres.
	radiusScale = 2000
)

// Depth band colors, shallowest first.
const (
	ColorLightGreen = "lightgreen"
	ColorYellow     = "yellow"
	ColorOrange     = "orange"
	ColorRed        = "red"
	ColorDarkRed    = "darkred"
	ColorPurple     = "purple"
)

// Map defaults for a view centred on the contiguous US.
const (
	DefaultCenterLat = 37.09
	DefaultCenterLon = -95.71
	DefaultZoom      = 5

	DefaultTileURL     = "https://tile.openstreetmap.org/{z}/{x}/{y}.png"
	defaultTileName    = "OpenStreetMap"
	defaultTileMaxZoom = 19
	defaultAttribution = `&copy; <a href="http://www.openstreetmap.org/copyright">OpenStreetMap</a>`

	overlayName    = "earthquakes"
	legendTitle    = "depth (km)"
	legendPosition = "bottomright"
)

// MarkerSize returns the circle radius in metres for a magnitude.
// Magnitudes at or below zero are clamped and yield a zero radius.
func MarkerSize(magnitude float64) float64 {
	if magnitude > 0 {
		return math.Exp(magnitude) * radiusScale
	}
	return 0
}

// MarkerColor maps a hypocenter depth in km to its band color.
func MarkerColor(depth float64) string {
	switch {
	case depth < 10:
		return ColorLightGreen
	case depth < 30:
		return ColorYellow
	case depth < 50:
		return ColorOrange
	case depth < 70:
		return ColorRed
	case depth < 90:
		return ColorDarkRed
	default:
		return ColorPurple
	}
}

// DepthLegend returns the six legend entries in band order.
func DepthLegend() []LegendEntry {
	return []LegendEntry{
		{Label: "-10-10", Color: ColorLightGreen},
		{Label: "10-30", Color: ColorYellow},
		{Label: "30-50", Color: ColorOrange},
		{Label: "50-70", Color: ColorRed},
		{Label: "70-90", Color: ColorDarkRed},
		{Label: "90+", Color: ColorPurple},
	}
}

// PopupText builds the popup HTML for a record. The title is escaped; the
// numbers are formatted, so they need no escaping.
func PopupText(q Earthquake) string {
	return fmt.Sprintf(
		"<center><b>%s</b><br>%s latitude, %s longitude<br>magnitude of %s<br>depth of %s km</center>",
		html.EscapeString(q.Title),
		formatNumber(q.Latitude),
		formatNumber(q.Longitude),
		formatNumber(q.Magnitude),
		formatNumber(q.DepthKm),
	)
}

// BuildMarker places a styled circle for one record.
func BuildMarker(q Earthquake) Marker {
	return Marker{
		Lat:    q.Latitude,
		Lon:    q.Longitude,
		Radius: MarkerSize(q.Magnitude),
		Style: Style{
			Color:       strokeColor,
			Weight:      strokeWeight,
			FillColor:   MarkerColor(q.DepthKm),
			FillOpacity: fillOpacity,
		},
		Popup: PopupText(q),
	}
}

// ViewOptions controls the parts of a MapView that do not depend on the data.
type ViewOptions struct {
	CenterLat float64
	CenterLon float64
	Zoom      int
	TileURL   string
	Source    string
}

// DefaultViewOptions returns options for the standard US-centred OSM view.
func DefaultViewOptions() ViewOptions {
	return ViewOptions{
		CenterLat: DefaultCenterLat,
		CenterLon: DefaultCenterLon,
		Zoom:      DefaultZoom,
		TileURL:   DefaultTileURL,
	}
}

// Render runs the per-record transform over quakes and assembles the view.
// An empty input yields an empty, non-nil overlay.
func Render(quakes []Earthquake, opts ViewOptions) MapView {
	tileURL := opts.TileURL
	if tileURL == "" {
		tileURL = DefaultTileURL
	}

	markers := lo.Map(quakes, func(q Earthquake, _ int) Marker {
		return BuildMarker(q)
	})

	return MapView{
		Center: LatLon{Lat: opts.CenterLat, Lon: opts.CenterLon},
		Zoom:   opts.Zoom,
		BaseLayer: TileLayer{
			Name:        defaultTileName,
			URL:         tileURL,
			MaxZoom:     defaultTileMaxZoom,
			Attribution: defaultAttribution,
		},
		Overlay: OverlayLayer{
			Name:    overlayName,
			Visible: true,
			Markers: markers,
		},
		Legend: Legend{
			Title:    legendTitle,
			Position: legendPosition,
			Entries:  DepthLegend(),
		},
		Source:      opts.Source,
		GeneratedAt: clock.Now().UTC(),
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
