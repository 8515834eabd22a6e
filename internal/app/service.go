// Package service wires the catalog loader, the computation engine and
// the series store into the one dependency the HTTP API and the CLI
// consume.
package service

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/okian/rinkrank/internal/adapters/catalog"
	"github.com/okian/rinkrank/internal/adapters/repository"
	"github.com/okian/rinkrank/internal/domain/grouping"
	"github.com/okian/rinkrank/internal/domain/model"
	"github.com/okian/rinkrank/internal/domain/points"
	"github.com/okian/rinkrank/internal/domain/window"
	"github.com/okian/rinkrank/internal/engine"
	"github.com/okian/rinkrank/pkg/logger"
)

// Service owns the computed ranking series and answers queries about
// it. The series is derived: starting the service loads the catalog
// and computes everything; Reload repeats that against the same path
// while readers keep querying the store.
type Service struct {
	mu sync.RWMutex

	// Core components
	store  repository.Store
	eng    *engine.Engine
	loader catalog.Loader

	// Configuration
	catalogPath    string
	workerCount    int
	officialFrom   int
	foldPreOlympic bool
	countOther     bool

	// State
	started bool
	lastRun engine.Result

	// Logging
	logger logger.Logger
}

// New constructs a Service with the methodology defaults. Nothing is
// loaded until Start.
func New(opts ...Option) *Service {
	s := &Service{
		foldPreOlympic: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start builds the pipeline, loads the catalog and computes the full
// series. It fails fast on an unreadable catalog; data problems inside
// a readable one are reported, not fatal.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get().Named("service")
	}
	s.logger.Info(ctx, "starting ranking service")

	s.store = repository.NewSeriesStore()
	s.eng = engine.New(
		grouping.New(grouping.WithPreOlympicFold(s.foldPreOlympic)),
		points.New(points.WithOfficialFrom(s.officialFrom)),
		window.New(window.WithCountOther(s.countOther)),
		s.store,
		engine.WithWorkers(s.workerCount),
	)
	if s.loader == nil {
		if s.catalogPath == "" {
			return ErrNoCatalog
		}
		l, err := catalog.ForPath(s.catalogPath)
		if err != nil {
			return fmt.Errorf("start: %w", err)
		}
		s.loader = l
	}

	res, err := s.runOnce(ctx)
	if err != nil {
		return err
	}
	s.lastRun = res
	s.started = true

	s.logger.Info(ctx, "ranking service started",
		logger.String("catalog", s.catalogPath),
		logger.String("run_id", res.RunID),
		logger.Int("years", res.Years),
		logger.Int("superevents", res.Superevents),
		logger.Int("problems", len(res.Problems)),
	)
	return nil
}

// Stop marks the service stopped. The store keeps serving whatever was
// computed last; there are no background goroutines to tear down.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "ranking service stopped")
}

// Reload pulls the catalog through the engine again. Readers keep
// seeing consistent years throughout; each year swaps wholesale.
func (s *Service) Reload(ctx context.Context) error {
	s.mu.RLock()
	started := s.started
	s.mu.RUnlock()
	if !started {
		return ErrNotStarted
	}

	res, err := s.runOnce(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.lastRun = res
	s.mu.Unlock()
	return nil
}

// runOnce loads the catalog and computes the series into the store.
func (s *Service) runOnce(ctx context.Context) (engine.Result, error) {
	cat, err := s.loader.Load(ctx)
	if err != nil {
		return engine.Result{}, fmt.Errorf("load catalog: %w", err)
	}
	res, err := s.eng.Compute(ctx, cat)
	if err != nil {
		return engine.Result{}, fmt.Errorf("compute series: %w", err)
	}
	for _, p := range res.Problems {
		s.logger.Warn(ctx, "data problem",
			logger.String("stage", p.Stage),
			logger.String("event", p.Event),
			logger.String("error", p.Err),
		)
	}
	return res, nil
}

// LastRun returns the summary of the most recent computation.
func (s *Service) LastRun() engine.Result {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastRun
}

// TopN returns the first n standings of an evaluation year.
func (s *Service) TopN(ctx context.Context, year, n int) ([]model.RankingEntry, error) {
	if !s.isStarted() {
		return nil, ErrNotStarted
	}
	return s.store.TopN(ctx, year, n)
}

// Rank returns one team's entry for a year.
func (s *Service) Rank(ctx context.Context, year int, team string) (model.RankingEntry, error) {
	if !s.isStarted() {
		return model.RankingEntry{}, ErrNotStarted
	}
	return s.store.Rank(ctx, year, team)
}

// Series returns a team's entries across all evaluated years.
func (s *Service) Series(ctx context.Context, team string) ([]model.RankingEntry, error) {
	if !s.isStarted() {
		return nil, ErrNotStarted
	}
	return s.store.Series(ctx, team)
}

// Years returns the evaluated years, ascending.
func (s *Service) Years(ctx context.Context) []int {
	if !s.isStarted() {
		return nil
	}
	return s.store.Years(ctx)
}

// Teams returns the resolved team registry, sorted by code.
func (s *Service) Teams(ctx context.Context) []model.Team {
	if !s.isStarted() {
		return nil
	}
	meta := s.store.Meta(ctx)
	teams := make([]model.Team, len(meta.Teams))
	copy(teams, meta.Teams)
	sort.Slice(teams, func(i, j int) bool { return teams[i].Code < teams[j].Code })
	return teams
}

// Superevents returns the scored superevents, filtered to one ranking
// year when year is nonzero.
func (s *Service) Superevents(ctx context.Context, year int) []model.ScoredSuperevent {
	if !s.isStarted() {
		return nil
	}
	all := s.store.Meta(ctx).Superevents
	if year == 0 {
		out := make([]model.ScoredSuperevent, len(all))
		copy(out, all)
		return out
	}
	var out []model.ScoredSuperevent
	for _, ss := range all {
		if ss.Year == year {
			out = append(out, ss)
		}
	}
	return out
}

// Problems returns the data gaps flagged by the last computation.
func (s *Service) Problems(ctx context.Context) []model.Problem {
	if !s.isStarted() {
		return nil
	}
	return s.store.Meta(ctx).Problems
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started": s.started,
		"workers": s.workerCount,
		"catalog": s.catalogPath,
	}
	if s.started {
		ctx := context.Background()
		years, entries := s.store.Size(ctx)
		meta := s.store.Meta(ctx)
		stats["run_id"] = meta.RunID
		stats["computed_at"] = meta.ComputedAt
		stats["years"] = years
		stats["entries"] = entries
		stats["superevents"] = len(meta.Superevents)
		stats["teams"] = len(meta.Teams)
		stats["problems"] = len(meta.Problems)
		stats["elapsed_ms"] = s.lastRun.Elapsed.Milliseconds()
	}
	return stats
}

func (s *Service) isStarted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.started
}
