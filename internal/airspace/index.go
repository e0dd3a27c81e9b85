package airspace

import (
	"github.com/yegors/vatscope/internal/geodesy"
)

// Classify determines which boundary contains the given position. Every
// boundary is evaluated because regions legitimately overlap (coastal FIRs
// over oceanic ones): a land-based match takes priority over any oceanic
// match, and within the same kind the first match in input order wins.
// Returns nil when the position is outside all known regions, which is a
// defined outcome rather than an error.
func Classify(p geodesy.Point, boundaries []Boundary) *Match {
	var firstOceanic *Match
	for i := range boundaries {
		b := &boundaries[i]
		if b.Geometry == nil || !b.Geometry.Contains(p) {
			continue
		}
		if !b.Oceanic {
			return &Match{FIRID: b.FIRID, Oceanic: false}
		}
		if firstOceanic == nil {
			firstOceanic = &Match{FIRID: b.FIRID, Oceanic: true}
		}
	}
	return firstOceanic
}
