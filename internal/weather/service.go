package weather

import (
	"context"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/yegors/vatscope/pkg/logger"
)

// Fetcher retrieves a decoded observation for a station. Implemented by
// Client; narrowed to an interface so tests can substitute a fake.
type Fetcher interface {
	FetchMETAR(ctx context.Context, icao string) (*Observation, error)
}

// Report bundles a decoded observation with its derived flight category.
type Report struct {
	Observation
	Category FlightCategory `json:"category"`
}

// Service serves flight-category reports with a per-station expiring cache,
// so repeated lookups for the same airport do not refetch within the TTL.
type Service struct {
	fetcher Fetcher
	cache   *expirable.LRU[string, *Report]
	logger  *logger.Logger
}

// NewService creates a new weather service. cacheSize bounds the number of
// stations cached at once; ttl controls how long a report stays fresh.
func NewService(fetcher Fetcher, cacheSize int, ttl time.Duration, logger *logger.Logger) *Service {
	return &Service{
		fetcher: fetcher,
		cache:   expirable.NewLRU[string, *Report](cacheSize, nil, ttl),
		logger:  logger.Named("weather"),
	}
}

// Get returns the current report for the station, serving from cache when
// fresh. Returns (nil, nil) when no observation exists for the station.
func (s *Service) Get(ctx context.Context, icao string) (*Report, error) {
	key := strings.ToUpper(strings.TrimSpace(icao))

	if report, ok := s.cache.Get(key); ok {
		return report, nil
	}

	obs, err := s.fetcher.FetchMETAR(ctx, key)
	if err != nil {
		return nil, err
	}
	if obs == nil {
		return nil, nil
	}

	report := &Report{
		Observation: *obs,
		Category:    Classify(obs),
	}
	s.cache.Add(key, report)

	s.logger.Debug("METAR decoded",
		logger.String("icao", key),
		logger.String("category", report.Category.String()),
	)

	return report, nil
}
