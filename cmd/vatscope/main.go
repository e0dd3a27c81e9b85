package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/yegors/vatscope/internal/airspace"
	"github.com/yegors/vatscope/internal/api"
	"github.com/yegors/vatscope/internal/config"
	"github.com/yegors/vatscope/internal/navdata"
	"github.com/yegors/vatscope/internal/vatsim"
	"github.com/yegors/vatscope/internal/weather"
	"github.com/yegors/vatscope/pkg/logger"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to the configuration file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "vatscope: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	vatsimClient := vatsim.NewClient(
		cfg.VATSIM.DatafeedURL,
		cfg.VATSIM.StaticDataURL,
		cfg.VATSIM.BoundariesURL,
		time.Duration(cfg.VATSIM.RequestTimeoutSeconds)*time.Second,
		time.Duration(cfg.VATSIM.DatafeedCacheSeconds)*time.Second,
		log,
	)

	store := navdata.NewStore(vatsimClient, log)

	// Warm the reference data cache in the background; the first request
	// joins the in-flight load if it is still running.
	go func() {
		if _, err := store.Snapshot(ctx); err != nil {
			log.Warn("Reference data warm-up failed", logger.Error(err))
		}
	}()

	boundaries, err := loadBoundaries(ctx, vatsimClient, log)
	if err != nil {
		// An empty boundary set is a degraded but working state: positions
		// simply classify as "outside all known regions".
		log.Warn("Starting without FIR boundaries", logger.Error(err))
	}

	weatherClient := weather.NewClient(
		cfg.Weather.APIBaseURL,
		time.Duration(cfg.Weather.RequestTimeoutSeconds)*time.Second,
		log,
	)
	weatherSvc := weather.NewService(
		weatherClient,
		cfg.Weather.CacheSize,
		time.Duration(cfg.Weather.CacheExpiryMinutes)*time.Minute,
		log,
	)

	router := api.NewRouter(store, boundaries, weatherSvc, vatsimClient, cfg, log)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.Routes(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSecs) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSecs) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening", logger.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}

	return nil
}

// loadBoundaries fetches and decodes the FIR boundary collection once at
// startup. The decoded set is immutable and shared by all requests.
func loadBoundaries(ctx context.Context, client *vatsim.Client, log *logger.Logger) ([]airspace.Boundary, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	data, err := client.FetchBoundaries(fetchCtx)
	if err != nil {
		return nil, err
	}

	boundaries, err := airspace.DecodeBoundaries(data)
	if err != nil {
		return nil, err
	}

	log.Info("FIR boundaries loaded", logger.Int("count", len(boundaries)))
	return boundaries, nil
}
