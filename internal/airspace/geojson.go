package airspace

import (
	"encoding/json"
	"fmt"

	"github.com/yegors/vatscope/internal/geodesy"
)

// The boundary payload is a GeoJSON FeatureCollection. Coordinates follow the
// GeoJSON convention of [longitude, latitude] pairs; properties.oceanic is
// the string "1" for oceanic regions and anything else for land.
type featureCollection struct {
	Features []boundaryFeature `json:"features"`
}

type boundaryFeature struct {
	Properties struct {
		ID      string `json:"id"`
		Oceanic string `json:"oceanic"`
	} `json:"properties"`
	Geometry struct {
		Type        string          `json:"type"`
		Coordinates json.RawMessage `json:"coordinates"`
	} `json:"geometry"`
}

// DecodeBoundaries decodes a GeoJSON FeatureCollection into boundary
// features. Features with unknown geometry types or undecodable coordinates
// are skipped; an error is returned only when the payload itself is not
// valid JSON.
func DecodeBoundaries(data []byte) ([]Boundary, error) {
	var fc featureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse boundary collection: %w", err)
	}

	boundaries := make([]Boundary, 0, len(fc.Features))
	for _, f := range fc.Features {
		geom := decodeGeometry(f.Geometry.Type, f.Geometry.Coordinates)
		if geom == nil {
			continue
		}
		boundaries = append(boundaries, Boundary{
			FIRID:    f.Properties.ID,
			Oceanic:  f.Properties.Oceanic == "1",
			Geometry: geom,
		})
	}
	return boundaries, nil
}

// decodeGeometry converts raw GeoJSON coordinates into a geometry variant,
// returning nil for unknown types or malformed coordinates.
func decodeGeometry(geomType string, coords json.RawMessage) Geometry {
	switch geomType {
	case "Polygon":
		var raw [][][]float64
		if err := json.Unmarshal(coords, &raw); err != nil {
			return nil
		}
		return PolygonGeometry(polygonFromCoords(raw))
	case "MultiPolygon":
		var raw [][][][]float64
		if err := json.Unmarshal(coords, &raw); err != nil {
			return nil
		}
		polygons := make(MultiPolygonGeometry, 0, len(raw))
		for _, pg := range raw {
			polygons = append(polygons, polygonFromCoords(pg))
		}
		return polygons
	default:
		return nil
	}
}

func polygonFromCoords(raw [][][]float64) Polygon {
	polygon := make(Polygon, 0, len(raw))
	for _, rawRing := range raw {
		ring := make(Ring, 0, len(rawRing))
		for _, pair := range rawRing {
			if len(pair) < 2 {
				continue
			}
			ring = append(ring, geodesy.Point{Lon: pair[0], Lat: pair[1]})
		}
		polygon = append(polygon, ring)
	}
	return polygon
}
