package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yegors/vatscope/internal/airspace"
	"github.com/yegors/vatscope/internal/config"
	"github.com/yegors/vatscope/internal/navdata"
	"github.com/yegors/vatscope/internal/vatsim"
	"github.com/yegors/vatscope/internal/weather"
	"github.com/yegors/vatscope/pkg/logger"
)

// Router is the API router
type Router struct {
	handler    *Handler
	middleware *Middleware
	config     *config.Config
	logger     *logger.Logger
}

// NewRouter creates a new API router
func NewRouter(store *navdata.Store, boundaries []airspace.Boundary, weatherSvc *weather.Service, vatsimClient *vatsim.Client, config *config.Config, logger *logger.Logger) *Router {
	return &Router{
		handler:    NewHandler(store, boundaries, weatherSvc, vatsimClient, logger),
		middleware: NewMiddleware(logger),
		config:     config,
		logger:     logger.Named("api-router"),
	}
}

// Routes returns the API routes
func (r *Router) Routes() http.Handler {
	router := chi.NewRouter()

	// Middleware
	router.Use(r.middleware.RequestID)
	router.Use(r.middleware.Logger)
	router.Use(r.middleware.Recoverer)
	router.Use(r.middleware.CORS(r.config.Server.CORSAllowedOrigins))

	// API routes
	router.Route("/api/v1", func(router chi.Router) {
		// Airport routes
		router.Get("/airports/search", r.handler.SearchAirports)
		router.Get("/airports/{icao}", r.handler.GetAirport)

		// FIR routes
		router.Get("/firs/{id}", r.handler.GetFIR)
		router.Post("/position/classify", r.handler.ClassifyPosition)

		// Live flight lookup
		router.Get("/flights/{callsign}", r.handler.GetFlight)

		// Weather
		router.Get("/wx/{icao}", r.handler.GetWeather)

		// Health check
		router.Get("/health", r.handler.GetHealth)
	})

	// Serve the browser UI from the configured directory
	staticHandler := NewStaticFileHandler(r.config.Server.StaticFilesDir, r.logger)
	router.Handle("/*", staticHandler)

	return router
}
