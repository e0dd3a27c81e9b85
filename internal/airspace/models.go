// Package airspace resolves which flight information region (FIR) a position
// falls inside, from polygonal boundary data with hole and multi-part
// support. Classification is pure and safe for concurrent use; callers own
// any caching of repeated lookups.
package airspace

import (
	"github.com/yegors/vatscope/internal/geodesy"
)

// Ring is an ordered sequence of vertices. Rings are not assumed to be
// closed (first vertex == last vertex); the containment test treats the last
// and first vertices as connected either way.
type Ring []geodesy.Point

// contains reports whether p lies inside the ring, using the crossing-number
// (ray casting) test. The asymmetric vertex comparison avoids double-counting
// edges that meet exactly at the test latitude.
func (r Ring) contains(p geodesy.Point) bool {
	inside := false
	n := len(r)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi, vj := r[i], r[j]
		if (vi.Lat > p.Lat) != (vj.Lat > p.Lat) &&
			p.Lon < (vj.Lon-vi.Lon)*(p.Lat-vi.Lat)/(vj.Lat-vi.Lat)+vi.Lon {
			inside = !inside
		}
	}
	return inside
}

// Polygon is a sequence of rings: the first ring is the exterior, any
// following rings are holes cut out of it.
type Polygon []Ring

// contains reports whether p is inside the exterior ring and outside every
// hole.
func (pg Polygon) contains(p geodesy.Point) bool {
	if len(pg) == 0 || !pg[0].contains(p) {
		return false
	}
	for _, hole := range pg[1:] {
		if hole.contains(p) {
			return false
		}
	}
	return true
}

// Geometry is the geometry variant of a boundary: either a single polygon or
// a multi-part polygon. Using a closed variant instead of inspecting a type
// field at runtime keeps containment exhaustive when geometry kinds grow.
type Geometry interface {
	// Contains reports whether the geometry contains the given point.
	Contains(p geodesy.Point) bool
}

// PolygonGeometry is a single polygon with optional holes.
type PolygonGeometry Polygon

// Contains implements Geometry.
func (g PolygonGeometry) Contains(p geodesy.Point) bool {
	return Polygon(g).contains(p)
}

// MultiPolygonGeometry is a collection of polygons; a point is inside when it
// is inside at least one member polygon.
type MultiPolygonGeometry []Polygon

// Contains implements Geometry.
func (g MultiPolygonGeometry) Contains(p geodesy.Point) bool {
	for _, pg := range g {
		if pg.contains(p) {
			return true
		}
	}
	return false
}

// Boundary is a single FIR boundary feature.
type Boundary struct {
	FIRID    string
	Oceanic  bool
	Geometry Geometry
}

// Match is the result of classifying a position against the boundary set.
type Match struct {
	FIRID   string `json:"fir_id"`
	FIRName string `json:"fir_name,omitempty"`
	Oceanic bool   `json:"oceanic"`
}
