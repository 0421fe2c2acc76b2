// Package domain models USGS earthquake feed records and their map markers.
//
// # Data Source
//
// Records come from the USGS real-time GeoJSON summary feeds documented at
// https://earthquake.usgs.gov/earthquakes/feed/v1.0/geojson.php. Each feature
// carries its position as a [longitude, latitude, depth] triple and its
// magnitude and human-readable title under properties.
//
// # Marker Conventions
//
// Size:
//
//	radius = exp(magnitude) × 2000 metres for magnitude > 0, else 0.
//	Negative magnitudes occur for very small events and are clamped.
//	The exponential curve separates large events far more than the
//	commonly used sqrt(magnitude) × 20000 and is kept on purpose.
//
// Color (by hypocenter depth, km):
//
//	<10 lightgreen | <30 yellow | <50 orange | <70 red | <90 darkred | else purple
//
// Popup:
//
//	Title in bold, then "<lat> latitude, <lon> longitude", magnitude and depth,
//	center aligned. Numbers use the shortest decimal that round-trips.
//
// # Render Pass
//
// [Render] maps a fetched record set into a [MapView] holding one base tile
// layer, one toggleable overlay of circles, and the static depth legend. The
// pass is pure apart from stamping the generation time from the package clock.
package domain
