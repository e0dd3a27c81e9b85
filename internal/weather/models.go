// Package weather decodes aviation surface observations (METAR) and derives
// the standard flight-category taxonomy from visibility and ceiling.
package weather

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Cloud cover codes as reported in METARs. Only broken and overcast layers
// constitute a ceiling.
const (
	CoverFew       = "FEW"
	CoverScattered = "SCT"
	CoverBroken    = "BKN"
	CoverOvercast  = "OVC"
)

// CloudLayer is a single reported cloud layer.
type CloudLayer struct {
	Cover  string   `json:"cover"`
	BaseFt *float64 `json:"base_ft,omitempty"`
}

// Observation is a decoded surface weather observation for one station.
type Observation struct {
	ICAO         string       `json:"icao"`
	Name         string       `json:"name,omitempty"`
	ReportTime   string       `json:"report_time,omitempty"`
	Raw          string       `json:"raw,omitempty"`
	TempC        float64      `json:"temp_c"`
	DewpointC    float64      `json:"dewpoint_c"`
	WindDirDeg   *float64     `json:"wind_dir_deg,omitempty"`
	WindSpeedKts float64      `json:"wind_speed_kts"`
	VisibilitySM *float64     `json:"visibility_sm,omitempty"`
	AltimeterHPa float64      `json:"altimeter_hpa"`
	CloudLayers  []CloudLayer `json:"cloud_layers,omitempty"`
}

// metarResponse mirrors the aviationweather.gov /api/data/metar JSON format.
// The API returns an array of these per requested station. Visibility can be
// a number (4.97) or a string ("10+"); wind direction can be a number or
// "VRB", so both decode through flexible fields.
type metarResponse struct {
	ICAOId     string          `json:"icaoId"`
	ReportTime string          `json:"reportTime"`
	Temp       float64         `json:"temp"`
	Dewp       float64         `json:"dewp"`
	Wdir       json.RawMessage `json:"wdir"`
	Wspd       float64         `json:"wspd"`
	Visib      json.RawMessage `json:"visib"`
	Altim      float64         `json:"altim"`
	RawOb      string          `json:"rawOb"`
	Name       string          `json:"name"`
	Clouds     []struct {
		Cover string   `json:"cover"`
		Base  *float64 `json:"base"`
	} `json:"clouds"`
}

// toObservation converts the API payload into a decoded observation.
func (m *metarResponse) toObservation() Observation {
	obs := Observation{
		ICAO:         strings.ToUpper(m.ICAOId),
		Name:         m.Name,
		ReportTime:   m.ReportTime,
		Raw:          m.RawOb,
		TempC:        m.Temp,
		DewpointC:    m.Dewp,
		WindDirDeg:   parseNumeric(m.Wdir),
		WindSpeedKts: m.Wspd,
		VisibilitySM: parseNumeric(m.Visib),
		AltimeterHPa: m.Altim,
	}
	for _, c := range m.Clouds {
		obs.CloudLayers = append(obs.CloudLayers, CloudLayer{
			Cover:  strings.ToUpper(c.Cover),
			BaseFt: c.Base,
		})
	}
	return obs
}

// parseNumeric decodes a JSON field that may be a number, a string such as
// "10+" or "VRB", or absent. Unparsable values yield nil ("missing"), never
// an error.
func parseNumeric(raw json.RawMessage) *float64 {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return &n
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "+")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
