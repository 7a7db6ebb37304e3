// Package catalog holds the fetched item snapshot and the pure functions
// that derive the filtered, windowed and selected views pages render.
package catalog

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"missingfit/internal/domain"
	applog "missingfit/internal/log"
)

// Fetcher retrieves the complete item list from the items API.
type Fetcher interface {
	FetchItems(ctx context.Context) ([]domain.Item, error)
}

// Observer is told about every finished load. Metrics hook in here.
type Observer interface {
	CatalogLoaded(count int, err error)
}

type Status struct {
	Count    int
	Loads    int
	LoadedAt time.Time
	Err      error
}

// Store holds the last fetched snapshot. The slice is never mutated after
// it is stored; a load replaces it wholesale.
type Store struct {
	src Fetcher
	obs Observer

	group singleflight.Group

	mu       sync.RWMutex
	items    []domain.Item
	loadedAt time.Time
	lastErr  error
	loads    int

	readyOnce sync.Once
	ready     chan struct{}
}

func NewStore(src Fetcher) *Store {
	return &Store{src: src, ready: make(chan struct{})}
}

// WithObserver registers o for load notifications and returns the store.
func (s *Store) WithObserver(o Observer) *Store {
	s.obs = o
	return s
}

// Load performs one fetch. Concurrent callers share the in-flight request.
// On failure the store is emptied, the error is logged and returned; there
// is no retry.
func (s *Store) Load(ctx context.Context) ([]domain.Item, error) {
	v, err, _ := s.group.Do("items", func() (any, error) {
		return s.load(ctx)
	})
	items, _ := v.([]domain.Item)
	return items, err
}

func (s *Store) load(ctx context.Context) ([]domain.Item, error) {
	defer s.readyOnce.Do(func() { close(s.ready) })

	items, err := s.src.FetchItems(ctx)
	if ctx.Err() != nil {
		// Shut down mid-flight: the result is dropped and the snapshot left as is.
		return nil, ctx.Err()
	}
	if err != nil {
		applog.Error(nil, "catalog.load.fail", err, nil)
		items = nil
	} else {
		applog.Info(nil, "catalog.load", map[string]any{"count": len(items)})
	}

	s.mu.Lock()
	s.items = items
	s.lastErr = err
	s.loadedAt = time.Now()
	s.loads++
	s.mu.Unlock()

	if s.obs != nil {
		s.obs.CatalogLoaded(len(items), err)
	}
	return items, err
}

// Items returns the current snapshot; empty before the first successful load.
func (s *Store) Items() []domain.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items
}

func (s *Store) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Status{Count: len(s.items), Loads: s.loads, LoadedAt: s.loadedAt, Err: s.lastErr}
}

// Ready is closed once the first load has finished, successfully or not.
func (s *Store) Ready() <-chan struct{} { return s.ready }

// Find looks an item up by id in items.
func Find(items []domain.Item, id string) (domain.Item, bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
	}
	return domain.Item{}, false
}
