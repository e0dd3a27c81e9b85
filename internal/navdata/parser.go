// Package navdata parses and caches the static airport / FIR reference
// dataset. The dataset is a line-oriented UTF-8 text file: `;` starts a
// comment, `[Section]` lines open a section, and data lines within a section
// are pipe-delimited.
package navdata

import (
	"strconv"
	"strings"
)

// Section names consumed from the dataset. All other sections are ignored.
const (
	sectionAirports = "airports"
	sectionFIRs     = "firs"
)

// Airport lines carry at least 7 fields:
// ICAO|Name|Latitude|Longitude|IATA|FIR|IsPseudo
const minAirportFields = 7

// FIR lines carry at least 2 fields: ID|Name
const minFIRFields = 2

// Parse parses the full reference dataset text into a Snapshot. Malformed
// lines are skipped rather than reported; the worst outcome for bad input is
// an empty or partial snapshot, which is a valid result. Parse never fails.
func Parse(text string) *Snapshot {
	snap := &Snapshot{
		Airports: make(map[string]Airport),
		FIRNames: make(map[string]string),
	}

	section := ""
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			section = strings.ToLower(line[1 : len(line)-1])
			continue
		}

		switch section {
		case sectionAirports:
			parseAirportLine(snap, line)
		case sectionFIRs:
			parseFIRLine(snap, line)
		}
	}

	return snap
}

// parseAirportLine admits a single airport record. A record is kept only when
// it is not a pseudo entry, has a non-empty ICAO code and name, its
// coordinates parse, and its ICAO code has not been seen before (first wins).
func parseAirportLine(snap *Snapshot, line string) {
	fields := strings.Split(line, "|")
	if len(fields) < minAirportFields {
		return
	}

	icao := normalizeICAO(fields[0])
	name := strings.TrimSpace(fields[1])
	pseudo := strings.TrimSpace(fields[6]) == "1"

	if pseudo || icao == "" || name == "" {
		return
	}
	if _, exists := snap.Airports[icao]; exists {
		return
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
	if err != nil {
		return
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(fields[3]), 64)
	if err != nil {
		return
	}

	snap.Airports[icao] = Airport{
		ICAO: icao,
		Name: name,
		Lat:  lat,
		Lon:  lon,
		IATA: strings.TrimSpace(fields[4]),
		FIR:  strings.TrimSpace(fields[5]),
	}
	snap.order = append(snap.order, icao)
}

// parseFIRLine admits a single FIR name record, first occurrence per id wins.
func parseFIRLine(snap *Snapshot, line string) {
	fields := strings.Split(line, "|")
	if len(fields) < minFIRFields {
		return
	}

	id := strings.TrimSpace(fields[0])
	name := strings.TrimSpace(fields[1])
	if id == "" || name == "" {
		return
	}
	if _, exists := snap.FIRNames[id]; exists {
		return
	}

	snap.FIRNames[id] = name
}

// normalizeICAO uppercases and trims an ICAO code for indexing and lookup.
func normalizeICAO(icao string) string {
	return strings.ToUpper(strings.TrimSpace(icao))
}
