package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFeed = `{
  "type": "FeatureCollection",
  "metadata": {"generated": 1709467200000, "count": 2},
  "features": [
    {
      "type": "Feature",
      "id": "nc73649170",
      "properties": {"mag": 4.5, "place": "test", "title": "M 4.5 - test"},
      "geometry": {"type": "Point", "coordinates": [-122, 37, 5]}
    },
    {
      "type": "Feature",
      "id": "ak0241",
      "properties": {"mag": null, "title": "M ? - somewhere"},
      "geometry": {"type": "Point", "coordinates": [-150.1, 61.2, 42.3]}
    }
  ]
}`

func TestParseFeatureCollection(t *testing.T) {
	var fc FeatureCollection
	require.NoError(t, json.Unmarshal([]byte(sampleFeed), &fc))

	quakes, err := ParseFeatureCollection(fc)
	require.NoError(t, err)
	require.Len(t, quakes, 2)

	assert.Equal(t, Earthquake{
		ID:        "nc73649170",
		Longitude: -122,
		Latitude:  37,
		DepthKm:   5,
		Magnitude: 4.5,
		Title:     "M 4.5 - test",
	}, quakes[0])

	assert.Zero(t, quakes[1].Magnitude, "null magnitude decodes as zero")
	assert.Equal(t, 42.3, quakes[1].DepthKm)
}

func TestParseFeatureCollection_Empty(t *testing.T) {
	quakes, err := ParseFeatureCollection(FeatureCollection{})
	require.NoError(t, err)
	assert.NotNil(t, quakes)
	assert.Empty(t, quakes)
}

func TestParseFeature_MissingDepth(t *testing.T) {
	_, err := ParseFeature(Feature{
		ID:       "bad-1",
		Geometry: FeatureGeometry{Coordinates: []float64{-122, 37}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad-1")
}

func TestParseFeatureCollection_MalformedFailsPass(t *testing.T) {
	fc := FeatureCollection{Features: []Feature{
		{ID: "ok", Geometry: FeatureGeometry{Coordinates: []float64{1, 2, 3}}},
		{ID: "bad"},
	}}

	_, err := ParseFeatureCollection(fc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad")
}
