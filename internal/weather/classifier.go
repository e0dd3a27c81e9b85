package weather

// FlightCategory is the standard aviation flight-category taxonomy, ordered
// from least to most restrictive.
type FlightCategory int

const (
	VFR FlightCategory = iota
	MVFR
	IFR
	LIFR
)

// Defaults applied when a field is missing or unparsable: missing data is
// treated as unrestricted, never as a stricter-than-observed category.
const (
	defaultVisibilitySM = 10.0
	defaultCeilingFt    = 10000.0
)

// String returns the category code.
func (c FlightCategory) String() string {
	switch c {
	case VFR:
		return "VFR"
	case MVFR:
		return "MVFR"
	case IFR:
		return "IFR"
	case LIFR:
		return "LIFR"
	default:
		return "UNKNOWN"
	}
}

// MarshalText encodes the category as its code for JSON responses.
func (c FlightCategory) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Ceiling returns the height of the lowest broken or overcast cloud layer,
// or nil when no layer constitutes a ceiling. Few and scattered layers do
// not count.
func Ceiling(layers []CloudLayer) *float64 {
	var ceiling *float64
	for _, layer := range layers {
		if layer.Cover != CoverBroken && layer.Cover != CoverOvercast {
			continue
		}
		if layer.BaseFt == nil {
			continue
		}
		if ceiling == nil || *layer.BaseFt < *ceiling {
			ceiling = layer.BaseFt
		}
	}
	return ceiling
}

// ClassifyFlightCategory maps visibility (statute miles) and ceiling (feet)
// to a flight category. Either input may be nil for "missing". Rules are
// evaluated strictest-first; the first that matches wins.
func ClassifyFlightCategory(visibilitySM, ceilingFt *float64) FlightCategory {
	visibility := defaultVisibilitySM
	if visibilitySM != nil {
		visibility = *visibilitySM
	}
	ceiling := defaultCeilingFt
	if ceilingFt != nil {
		ceiling = *ceilingFt
	}

	switch {
	case visibility < 1 || ceiling < 500:
		return LIFR
	case visibility < 3 || ceiling < 1000:
		return IFR
	case visibility < 5 || ceiling < 3000:
		return MVFR
	default:
		return VFR
	}
}

// Classify derives the flight category for a decoded observation.
func Classify(obs *Observation) FlightCategory {
	return ClassifyFlightCategory(obs.VisibilitySM, Ceiling(obs.CloudLayers))
}
