// Package vatsim retrieves data from the VATSIM network: the live datafeed,
// the static airport/FIR dataset and the FIR boundary collection. It is the
// I/O collaborator for the resolution core; everything it returns is raw
// bytes or decoded feed records, never derived state.
package vatsim

import "time"

// Datafeed is the decoded live network feed.
type Datafeed struct {
	General General `json:"general"`
	Pilots  []Pilot `json:"pilots"`
}

// General carries feed-level metadata.
type General struct {
	Version         int       `json:"version"`
	UpdateTimestamp time.Time `json:"update_timestamp"`
	ConnectedPilots int       `json:"unique_users"`
}

// Pilot is a single connected pilot from the datafeed.
type Pilot struct {
	CID         int         `json:"cid"`
	Name        string      `json:"name"`
	Callsign    string      `json:"callsign"`
	Server      string      `json:"server"`
	Latitude    float64     `json:"latitude"`
	Longitude   float64     `json:"longitude"`
	Altitude    int         `json:"altitude"`
	Groundspeed float64     `json:"groundspeed"`
	Heading     float64     `json:"heading"`
	Transponder string      `json:"transponder"`
	LogonTime   time.Time   `json:"logon_time"`
	FlightPlan  *FlightPlan `json:"flight_plan"`
}

// FlightPlan is the filed flight plan attached to a pilot, when any.
type FlightPlan struct {
	FlightRules string `json:"flight_rules"`
	Aircraft    string `json:"aircraft_short"`
	Departure   string `json:"departure"`
	Arrival     string `json:"arrival"`
	Alternate   string `json:"alternate"`
	CruiseTAS   string `json:"cruise_tas"`
	Altitude    string `json:"altitude"`
	Route       string `json:"route"`
}
