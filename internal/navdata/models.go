package navdata

import "strings"

// Airport is a single airport record from the static reference dataset.
// Records are created at parse time and never mutated afterward.
type Airport struct {
	ICAO   string  `json:"icao"`
	Name   string  `json:"name"`
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
	IATA   string  `json:"iata,omitempty"`
	FIR    string  `json:"fir"`
	Pseudo bool    `json:"-"`
}

// Snapshot is an immutable bundle of parsed reference data. Once published by
// the store it is shared by all readers without locking; a reload produces a
// brand-new snapshot rather than mutating an existing one.
type Snapshot struct {
	Airports map[string]Airport
	FIRNames map[string]string

	// ICAO codes in the order they were admitted, so searches iterate in a
	// stable encounter order rather than Go's randomized map order.
	order []string
}

// Airport returns the airport with the given ICAO code. Lookup is
// case-insensitive.
func (s *Snapshot) Airport(icao string) (Airport, bool) {
	ap, ok := s.Airports[normalizeICAO(icao)]
	return ap, ok
}

// FIRName returns the human-readable name for a FIR identifier, falling back
// to the identifier itself when the dataset has no name for it.
func (s *Snapshot) FIRName(id string) string {
	if name, ok := s.FIRNames[id]; ok {
		return name
	}
	return id
}

// Search returns airports whose name contains term (case-insensitive), in
// dataset encounter order, truncated to limit. A non-positive limit returns
// no results.
func (s *Snapshot) Search(term string, limit int) []Airport {
	if limit <= 0 {
		return nil
	}

	needle := strings.ToLower(term)
	results := make([]Airport, 0, limit)
	for _, icao := range s.order {
		ap := s.Airports[icao]
		if strings.Contains(strings.ToLower(ap.Name), needle) {
			results = append(results, ap)
			if len(results) >= limit {
				break
			}
		}
	}
	return results
}
