package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/yegors/vatscope/internal/airspace"
	"github.com/yegors/vatscope/internal/geodesy"
	"github.com/yegors/vatscope/internal/navdata"
	"github.com/yegors/vatscope/internal/vatsim"
	"github.com/yegors/vatscope/internal/weather"
	"github.com/yegors/vatscope/pkg/logger"
)

const (
	defaultSearchLimit = 10
	maxSearchLimit     = 50
)

// Handler handles API requests
type Handler struct {
	store      *navdata.Store
	boundaries []airspace.Boundary
	weather    *weather.Service
	vatsim     *vatsim.Client
	logger     *logger.Logger
}

// NewHandler creates a new API handler. The boundary set is loaded once at
// startup and shared read-only across requests.
func NewHandler(store *navdata.Store, boundaries []airspace.Boundary, weatherSvc *weather.Service, vatsimClient *vatsim.Client, logger *logger.Logger) *Handler {
	return &Handler{
		store:      store,
		boundaries: boundaries,
		weather:    weatherSvc,
		vatsim:     vatsimClient,
		logger:     logger.Named("api-handler"),
	}
}

// airportResponse is an airport record with its FIR name resolved.
type airportResponse struct {
	navdata.Airport
	FIRName string `json:"fir_name"`
}

// GetAirport returns a single airport by ICAO code.
func (h *Handler) GetAirport(w http.ResponseWriter, r *http.Request) {
	icao := chi.URLParam(r, "icao")

	ap, ok, err := h.store.Lookup(r.Context(), icao)
	if err != nil {
		h.respondError(w, http.StatusServiceUnavailable, "reference data unavailable")
		return
	}
	if !ok {
		h.respondError(w, http.StatusNotFound, "airport not found")
		return
	}

	firName, _ := h.store.FIRName(r.Context(), ap.FIR)
	h.respondJSON(w, http.StatusOK, airportResponse{Airport: ap, FIRName: firName})
}

// SearchAirports returns airports whose name matches the query substring.
func (h *Handler) SearchAirports(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")
	if term == "" {
		h.respondError(w, http.StatusBadRequest, "missing query parameter: q")
		return
	}

	limit := defaultSearchLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			h.respondError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = min(parsed, maxSearchLimit)
	}

	results, err := h.store.Search(r.Context(), term, limit)
	if err != nil {
		h.respondError(w, http.StatusServiceUnavailable, "reference data unavailable")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"airports": results,
		"count":    len(results),
	})
}

// GetFIR returns the name for a FIR identifier.
func (h *Handler) GetFIR(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	name, err := h.store.FIRName(r.Context(), id)
	if err != nil {
		h.respondError(w, http.StatusServiceUnavailable, "reference data unavailable")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{"id": id, "name": name})
}

// classifyRequest is the body of a position classification request.
type classifyRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ClassifyPosition resolves which FIR contains the given position. A position
// outside all known regions yields a null match, not an error.
func (h *Handler) ClassifyPosition(w http.ResponseWriter, r *http.Request) {
	var req classifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	match := h.classify(r, geodesy.Point{Lon: req.Longitude, Lat: req.Latitude})
	h.respondJSON(w, http.StatusOK, map[string]interface{}{"match": match})
}

// classify runs the airspace classification and resolves the FIR name.
func (h *Handler) classify(r *http.Request, p geodesy.Point) *airspace.Match {
	match := airspace.Classify(p, h.boundaries)
	if match == nil {
		return nil
	}
	if name, err := h.store.FIRName(r.Context(), match.FIRID); err == nil {
		match.FIRName = name
	}
	return match
}

// flightResponse bundles a live pilot with derived navigation data.
type flightResponse struct {
	Pilot       *vatsim.Pilot    `json:"pilot"`
	FIR         *airspace.Match  `json:"fir"`
	Destination *airportResponse `json:"destination,omitempty"`
	BearingDeg  *float64         `json:"bearing_deg,omitempty"`
	ETA         *geodesy.ETA     `json:"eta,omitempty"`
}

// GetFlight returns a connected pilot with current FIR classification and,
// when a flight plan with a known arrival airport is filed, bearing,
// distance and ETA to the destination.
func (h *Handler) GetFlight(w http.ResponseWriter, r *http.Request) {
	callsign := chi.URLParam(r, "callsign")

	pilot, err := h.vatsim.FindPilot(r.Context(), callsign)
	if err != nil {
		h.respondError(w, http.StatusBadGateway, "datafeed unavailable")
		return
	}
	if pilot == nil {
		h.respondError(w, http.StatusNotFound, "callsign not connected")
		return
	}

	position := geodesy.Point{Lon: pilot.Longitude, Lat: pilot.Latitude}
	resp := flightResponse{
		Pilot: pilot,
		FIR:   h.classify(r, position),
	}

	if pilot.FlightPlan != nil && pilot.FlightPlan.Arrival != "" {
		if dest, ok, err := h.store.Lookup(r.Context(), pilot.FlightPlan.Arrival); err == nil && ok {
			firName, _ := h.store.FIRName(r.Context(), dest.FIR)
			resp.Destination = &airportResponse{Airport: dest, FIRName: firName}

			destPoint := geodesy.Point{Lon: dest.Lon, Lat: dest.Lat}
			bearing := geodesy.InitialBearing(position, destPoint)
			resp.BearingDeg = &bearing
			resp.ETA = geodesy.EstimateArrival(time.Now(), position, destPoint, pilot.Groundspeed)
		}
	}

	h.respondJSON(w, http.StatusOK, resp)
}

// GetWeather returns the decoded METAR and flight category for a station.
func (h *Handler) GetWeather(w http.ResponseWriter, r *http.Request) {
	icao := chi.URLParam(r, "icao")

	report, err := h.weather.Get(r.Context(), icao)
	if err != nil {
		h.respondError(w, http.StatusBadGateway, "weather data unavailable")
		return
	}
	if report == nil {
		h.respondError(w, http.StatusNotFound, "no observation for station")
		return
	}

	h.respondJSON(w, http.StatusOK, report)
}

// GetHealth returns a basic health status.
func (h *Handler) GetHealth(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":     "ok",
		"boundaries": len(h.boundaries),
		"time":       time.Now().UTC(),
	})
}

// respondJSON writes a JSON response
func (h *Handler) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("Failed to encode response", logger.Error(err))
	}
}

// respondError writes a JSON error response
func (h *Handler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}
