package navdata

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"github.com/yegors/vatscope/pkg/logger"
)

// Source supplies the raw reference dataset text. Retrieval (network, disk)
// is the source's concern; the store only parses and caches.
type Source interface {
	FetchStaticData(ctx context.Context) (string, error)
}

// Store is a process-wide memoized cache of parsed reference data. The first
// access triggers a single fetch+parse shared by all concurrent callers;
// afterward the published snapshot is served from memory without locking.
type Store struct {
	source Source
	logger *logger.Logger

	group singleflight.Group
	snap  atomic.Pointer[Snapshot]
}

// NewStore creates a new reference data store backed by the given source.
func NewStore(source Source, logger *logger.Logger) *Store {
	return &Store{
		source: source,
		logger: logger.Named("navdata"),
	}
}

// Snapshot returns the current reference data snapshot, loading it on first
// use. Concurrent first-time callers converge on one in-flight fetch+parse
// and all receive the same snapshot.
func (s *Store) Snapshot(ctx context.Context) (*Snapshot, error) {
	if snap := s.snap.Load(); snap != nil {
		return snap, nil
	}

	v, err, _ := s.group.Do("load", func() (interface{}, error) {
		// A concurrent caller may have finished the load while we were
		// waiting on the singleflight group.
		if snap := s.snap.Load(); snap != nil {
			return snap, nil
		}
		return s.load(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.(*Snapshot), nil
}

// Reload fetches and parses the dataset again, atomically replacing the
// published snapshot. Readers holding the previous snapshot keep seeing a
// consistent view.
func (s *Store) Reload(ctx context.Context) (*Snapshot, error) {
	v, err, _ := s.group.Do("reload", func() (interface{}, error) {
		return s.load(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.(*Snapshot), nil
}

// load fetches the dataset text, parses it and publishes the snapshot.
func (s *Store) load(ctx context.Context) (*Snapshot, error) {
	text, err := s.source.FetchStaticData(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch static data: %w", err)
	}

	snap := Parse(text)
	s.snap.Store(snap)

	s.logger.Info("Reference data loaded",
		logger.Int("airports", len(snap.Airports)),
		logger.Int("fir_names", len(snap.FIRNames)),
	)

	return snap, nil
}

// Lookup returns the airport with the given ICAO code (case-insensitive).
func (s *Store) Lookup(ctx context.Context, icao string) (Airport, bool, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return Airport{}, false, err
	}
	ap, ok := snap.Airport(icao)
	return ap, ok, nil
}

// FIRName returns the name for a FIR identifier, falling back to the
// identifier itself when unknown.
func (s *Store) FIRName(ctx context.Context, id string) (string, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return "", err
	}
	return snap.FIRName(id), nil
}

// Search returns airports whose name contains term, truncated to limit.
func (s *Store) Search(ctx context.Context, term string, limit int) ([]Airport, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Search(term, limit), nil
}
