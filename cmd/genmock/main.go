// Command genmock writes a synthetic USGS-style GeoJSON feed for local
// development and fixtures. Output is deterministic for a given seed.
//
// Usage:
//
//	go run ./cmd/genmock -out data/mock/all_week_generated.geojson -n 500 -seed 42
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand/v2"
	"os"

	"github.com/couchcryptid/quake-map/internal/domain"
)

// region is a rough seismic zone used to scatter synthetic events.
type region struct {
	name     string
	lat, lon float64
	spread   float64
	maxDepth float64
}

var regions = []region{
	{name: "Northern California", lat: 38.8, lon: -122.8, spread: 1.5, maxDepth: 20},
	{name: "Southern Alaska", lat: 61.0, lon: -150.5, spread: 3, maxDepth: 150},
	{name: "Island of Hawaii", lat: 19.4, lon: -155.3, spread: 0.6, maxDepth: 40},
	{name: "Tonga region", lat: -18.5, lon: -175.0, spread: 4, maxDepth: 600},
	{name: "Puerto Rico", lat: 18.0, lon: -66.8, spread: 1, maxDepth: 60},
	{name: "central Chile", lat: -33.0, lon: -71.6, spread: 3, maxDepth: 120},
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", "", "output path for the generated feed")
	n := flag.Int("n", 200, "number of features")
	seed := flag.Uint64("seed", 1, "random seed")
	flag.Parse()

	if *out == "" || *n < 0 {
		flag.Usage()
		return fmt.Errorf("missing required flag -out, or negative -n")
	}

	fc := generate(*n, *seed)
	if err := writeJSON(*out, fc); err != nil {
		return fmt.Errorf("writing feed: %w", err)
	}
	log.Printf("wrote %d features to %s", len(fc.Features), *out)
	return nil
}

// generate builds n features. Magnitudes follow a rough Gutenberg-Richter
// shape: many small events, few large ones, some below zero.
func generate(n int, seed uint64) domain.FeatureCollection {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	features := make([]domain.Feature, n)
	for i := range features {
		r := regions[rng.IntN(len(regions))]
		lat := r.lat + (rng.Float64()*2-1)*r.spread
		lon := r.lon + (rng.Float64()*2-1)*r.spread
		depth := round(rng.Float64()*r.maxDepth, 2)
		mag := round(-0.5+rng.ExpFloat64()*1.1, 1)

		features[i] = domain.Feature{
			ID: fmt.Sprintf("mock%06d", i+1),
			Geometry: domain.FeatureGeometry{
				Type:        "Point",
				Coordinates: []float64{round(lon, 4), round(lat, 4), depth},
			},
			Properties: domain.FeatureProperties{
				Mag:   mag,
				Title: fmt.Sprintf("M %.1f - %s", mag, r.name),
			},
		}
	}

	return domain.FeatureCollection{Type: "FeatureCollection", Features: features}
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o600)
}
