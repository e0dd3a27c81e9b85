// Package geodesy provides great-circle navigation math: distance, initial
// bearing and arrival estimates. All functions are pure and safe for
// concurrent use.
package geodesy

import (
	"math"
	"time"
)

// EarthRadiusNM is the mean Earth radius in nautical miles.
const EarthRadiusNM = 3440.065

// Point is a geographic coordinate in degrees. Longitude comes first to match
// the axis order of the boundary data ([lon, lat]); construct with named
// fields to avoid swapped coordinates.
type Point struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// DistanceNM calculates the great-circle distance between two points in
// nautical miles using the haversine formula.
func DistanceNM(a, b Point) float64 {
	rad := math.Pi / 180.0

	lat1 := a.Lat * rad
	lat2 := b.Lat * rad
	dlat := (b.Lat - a.Lat) * rad
	dlon := (b.Lon - a.Lon) * rad

	h := math.Pow(math.Sin(dlat/2), 2) + math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(dlon/2), 2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusNM * c
}

// InitialBearing calculates the initial compass bearing in degrees from one
// point toward another. Returns a value in [0, 360) where 0 = North, 90 = East.
func InitialBearing(from, to Point) float64 {
	rad := math.Pi / 180.0

	lat1 := from.Lat * rad
	lat2 := to.Lat * rad
	dlon := (to.Lon - from.Lon) * rad

	y := math.Sin(dlon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dlon)
	bearing := math.Atan2(y, x) / rad

	// Normalize to [0, 360)
	return math.Mod(bearing+360.0, 360.0)
}

// ETA describes a projected arrival at a destination.
type ETA struct {
	DistanceNM      float64   `json:"distance_nm"`
	DurationHours   int       `json:"duration_hours"`
	DurationMinutes int       `json:"duration_minutes"`
	ETAUTC          time.Time `json:"eta_utc"`
	ETALocal        time.Time `json:"eta_local"`
}

// EstimateArrival projects the arrival time at dest given the current position
// and groundspeed in knots. Returns nil when groundspeed is not positive,
// which callers must treat as "no ETA available" rather than an error.
func EstimateArrival(now time.Time, own, dest Point, groundspeedKts float64) *ETA {
	if groundspeedKts <= 0 {
		return nil
	}

	distance := DistanceNM(own, dest)
	timeHours := distance / groundspeedKts

	hours := int(timeHours)
	minutes := int(math.Round((timeHours - float64(hours)) * 60))
	// Minute rounding may carry to 60; roll it into the hour so the duration
	// is never reported as "Xh 60m".
	if minutes == 60 {
		hours++
		minutes = 0
	}

	arrival := now.Add(time.Duration(timeHours * float64(time.Hour)))

	return &ETA{
		DistanceNM:      distance,
		DurationHours:   hours,
		DurationMinutes: minutes,
		ETAUTC:          arrival.UTC(),
		ETALocal:        arrival.Local(),
	}
}
