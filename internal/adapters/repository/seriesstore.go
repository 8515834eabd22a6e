package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/okian/rinkrank/internal/domain/model"
	"github.com/okian/rinkrank/pkg/metrics"
)

// In-memory Store implementation.
//
// A series is written in one burst per computation run, one batch per
// year with the metadata last, and then read many times. A single
// RWMutex over per-year slices keeps readers cheap and the write path
// correct under concurrent year workers. Standings arrive already
// ordered and are never mutated in place; reads copy out.

// defaultYearsHint covers a century of seasons without growing.
const defaultYearsHint = 128

// SeriesStore is the in-memory Store used by the engine, the API and
// the chart renderer.
type SeriesStore struct {
	yearsHint int

	mu      sync.RWMutex
	years   map[int][]model.RankingEntry
	order   []int
	entries int
	meta    model.SeriesMeta
}

// NewSeriesStore creates an empty store.
func NewSeriesStore(opts ...Option) *SeriesStore {
	s := &SeriesStore{yearsHint: defaultYearsHint}
	for _, opt := range opts {
		opt(s)
	}
	s.years = make(map[int][]model.RankingEntry, s.yearsHint)
	s.order = make([]int, 0, s.yearsHint)
	return s
}

// PutYear implements Store.
func (s *SeriesStore) PutYear(ctx context.Context, year int, entries []model.RankingEntry) error {
	snapshot := make([]model.RankingEntry, len(entries))
	copy(snapshot, entries)

	s.mu.Lock()
	if old, ok := s.years[year]; ok {
		s.entries -= len(old)
	} else {
		s.order = insertYear(s.order, year)
	}
	s.years[year] = snapshot
	s.entries += len(snapshot)
	years, total := len(s.order), s.entries
	s.mu.Unlock()

	metrics.UpdateStoreSize(years, total)
	return nil
}

// SetMeta implements Store.
func (s *SeriesStore) SetMeta(ctx context.Context, meta model.SeriesMeta) error {
	s.mu.Lock()
	s.meta = meta
	s.mu.Unlock()
	return nil
}

// Clear implements Store.
func (s *SeriesStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.years = make(map[int][]model.RankingEntry, s.yearsHint)
	s.order = s.order[:0]
	s.entries = 0
	s.meta = model.SeriesMeta{}
	s.mu.Unlock()

	metrics.UpdateStoreSize(0, 0)
	return nil
}

// TopN implements Store.
func (s *SeriesStore) TopN(ctx context.Context, year, n int) ([]model.RankingEntry, error) {
	start := time.Now()
	defer func() {
		metrics.RecordStoreQueryLatency(time.Since(start).Seconds())
	}()

	if n < 1 {
		return nil, fmt.Errorf("limit %d: %w", n, ErrInvalidLimit)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	standings, ok := s.years[year]
	if !ok {
		return nil, fmt.Errorf("year %d: %w", year, ErrUnknownYear)
	}
	if n > len(standings) {
		n = len(standings)
	}
	out := make([]model.RankingEntry, n)
	copy(out, standings[:n])
	return out, nil
}

// Rank implements Store.
func (s *SeriesStore) Rank(ctx context.Context, year int, team string) (model.RankingEntry, error) {
	start := time.Now()
	defer func() {
		metrics.RecordStoreQueryLatency(time.Since(start).Seconds())
	}()

	s.mu.RLock()
	defer s.mu.RUnlock()

	standings, ok := s.years[year]
	if !ok {
		return model.RankingEntry{}, fmt.Errorf("year %d: %w", year, ErrUnknownYear)
	}
	for _, e := range standings {
		if e.Team == team {
			return e, nil
		}
	}
	return model.RankingEntry{}, fmt.Errorf("%s in %d: %w", team, year, ErrNotRanked)
}

// Series implements Store.
func (s *SeriesStore) Series(ctx context.Context, team string) ([]model.RankingEntry, error) {
	start := time.Now()
	defer func() {
		metrics.RecordStoreQueryLatency(time.Since(start).Seconds())
	}()

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.RankingEntry
	for _, year := range s.order {
		for _, e := range s.years[year] {
			if e.Team == team {
				out = append(out, e)
				break
			}
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s: %w", team, ErrNotRanked)
	}
	return out, nil
}

// Years implements Store.
func (s *SeriesStore) Years(ctx context.Context) []int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]int, len(s.order))
	copy(out, s.order)
	return out
}

// Meta implements Store.
func (s *SeriesStore) Meta(ctx context.Context) model.SeriesMeta {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.meta
}

// Size implements Store.
func (s *SeriesStore) Size(ctx context.Context) (int, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order), s.entries
}

// insertYear keeps order sorted ascending as years land in whatever
// order the workers finish.
func insertYear(order []int, year int) []int {
	i := sort.SearchInts(order, year)
	order = append(order, 0)
	copy(order[i+1:], order[i:])
	order[i] = year
	return order
}
