package airspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yegors/vatscope/internal/geodesy"
)

const boundaryJSON = `{
	"type": "FeatureCollection",
	"features": [
		{
			"type": "Feature",
			"properties": {"id": "CZQM", "oceanic": "0", "label_lon": "-60.0", "label_lat": "45.0"},
			"geometry": {
				"type": "Polygon",
				"coordinates": [[[0,0],[10,0],[10,10],[0,10]]]
			}
		},
		{
			"type": "Feature",
			"properties": {"id": "CZQO", "oceanic": "1"},
			"geometry": {
				"type": "MultiPolygon",
				"coordinates": [
					[[[20,20],[30,20],[30,30],[20,30],[20,20]]],
					[[[40,40],[50,40],[50,50],[40,50]]]
				]
			}
		},
		{
			"type": "Feature",
			"properties": {"id": "POINTY", "oceanic": "0"},
			"geometry": {
				"type": "Point",
				"coordinates": [1.0, 2.0]
			}
		}
	]
}`

func TestDecodeBoundaries(t *testing.T) {
	boundaries, err := DecodeBoundaries([]byte(boundaryJSON))
	require.NoError(t, err)

	// The Point feature is skipped without error
	require.Len(t, boundaries, 2)

	assert.Equal(t, "CZQM", boundaries[0].FIRID)
	assert.False(t, boundaries[0].Oceanic)
	assert.IsType(t, PolygonGeometry{}, boundaries[0].Geometry)
	assert.True(t, boundaries[0].Geometry.Contains(geodesy.Point{Lon: 5, Lat: 5}))

	assert.Equal(t, "CZQO", boundaries[1].FIRID)
	assert.True(t, boundaries[1].Oceanic)
	assert.IsType(t, MultiPolygonGeometry{}, boundaries[1].Geometry)
	assert.True(t, boundaries[1].Geometry.Contains(geodesy.Point{Lon: 25, Lat: 25}))
	assert.True(t, boundaries[1].Geometry.Contains(geodesy.Point{Lon: 45, Lat: 45}))
	assert.False(t, boundaries[1].Geometry.Contains(geodesy.Point{Lon: 35, Lat: 35}))
}

func TestDecodeBoundariesInvalidJSON(t *testing.T) {
	_, err := DecodeBoundaries([]byte("not json"))
	assert.Error(t, err)
}

func TestDecodeBoundariesEmptyCollection(t *testing.T) {
	boundaries, err := DecodeBoundaries([]byte(`{"type":"FeatureCollection","features":[]}`))
	require.NoError(t, err)
	assert.Empty(t, boundaries)
}
