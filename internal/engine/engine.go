// Package engine orchestrates a computation run: catalog validation,
// superevent grouping, point assignment, and the per-year evaluation
// fan-out onto a bounded worker pool.
package engine

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/okian/rinkrank/internal/domain/grouping"
	"github.com/okian/rinkrank/internal/domain/model"
	"github.com/okian/rinkrank/internal/domain/ranking"
	"github.com/okian/rinkrank/pkg/logger"
	"github.com/okian/rinkrank/pkg/memo"
	"github.com/okian/rinkrank/pkg/metrics"
)

// Grouper merges catalog events into superevents.
type Grouper interface {
	Group(events []model.Event) ([]model.Superevent, []error)
}

// Assigner awards points to a superevent's standings.
type Assigner interface {
	Score(sup model.Superevent) (model.ScoredSuperevent, error)
}

// Selector applies the lookback window to one team's career.
type Selector interface {
	Select(year int, career []model.Contribution) []model.Contribution
}

// SeriesWriter is where computed years and run metadata land.
type SeriesWriter interface {
	PutYear(ctx context.Context, year int, entries []model.RankingEntry) error
	SetMeta(ctx context.Context, meta model.SeriesMeta) error
}

// Result summarizes one computation run.
type Result struct {
	RunID       string
	Years       int
	Superevents int
	// Teams counts teams holding at least one scored placement.
	Teams    int
	Problems []model.Problem
	Elapsed  time.Duration
}

// Engine drives the pipeline. It owns no state between runs; every
// Compute call derives the whole series from the catalog it is given.
type Engine struct {
	grouper  Grouper
	assigner Assigner
	selector Selector
	store    SeriesWriter
	workers  int
	logger   logger.Logger
}

// New creates an Engine around the pipeline stages.
func New(g Grouper, a Assigner, s Selector, store SeriesWriter, opts ...Option) *Engine {
	e := &Engine{
		grouper:  g,
		assigner: a,
		selector: s,
		store:    store,
		workers:  defaultWorkers(),
		logger:   logger.Get().Named("engine"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Compute derives the full historical series from the catalog and
// publishes it to the store, one standings batch per evaluation year
// and the run metadata last. Data problems are collected and reported
// in the result instead of failing the run; only cancellation and
// store failures abort.
func (e *Engine) Compute(ctx context.Context, cat model.Catalog) (Result, error) {
	start := time.Now()
	runID := uuid.NewString()
	e.logger.Info(ctx, "computation started",
		logger.String("run_id", runID),
		logger.Int("events", len(cat.Events)),
		logger.Int("teams", len(cat.Teams)),
	)

	var problems []model.Problem
	flag := func(p model.Problem) {
		problems = append(problems, p)
		metrics.RecordProblem(p.Stage)
	}

	// Catalog stage: every row must reference a registered identity.
	reg := cat.Registry()
	valid := make([]model.Event, 0, len(cat.Events))
	for _, ev := range cat.Events {
		if unknown := unknownTeams(reg, ev); unknown != "" {
			flag(model.Problem{
				Stage: model.StageCatalog,
				Year:  ev.Year,
				Kind:  ev.Type.Kind(),
				Event: ev.Label(),
				Err:   "unknown teams: " + unknown,
			})
			continue
		}
		valid = append(valid, ev)
	}

	// Grouping stage.
	sups, gerrs := e.grouper.Group(valid)
	for _, err := range gerrs {
		p := model.Problem{Stage: model.StageGrouping, Err: err.Error()}
		var ge *grouping.Error
		if errors.As(err, &ge) {
			p.Year, p.Kind, p.Event = ge.Year, ge.Kind, ge.Event
		}
		flag(p)
	}

	// Points stage. A superevent that cannot be scored drops out of
	// the series but keeps its place in the problem report.
	scored := make([]model.ScoredSuperevent, 0, len(sups))
	for _, sup := range sups {
		ss, err := e.assigner.Score(sup)
		if err != nil {
			flag(model.Problem{
				Stage: model.StagePoints,
				Year:  sup.Year,
				Kind:  sup.Kind,
				Event: sup.Label(),
				Err:   err.Error(),
			})
			continue
		}
		scored = append(scored, ss)
	}
	metrics.UpdateSupereventsBuilt(len(scored))

	teams := participants(scored)
	first, last, ok := yearSpan(sups)
	if ok {
		if err := e.evaluateYears(ctx, first, last, teams, scored); err != nil {
			return Result{}, err
		}
	}

	meta := model.SeriesMeta{
		RunID:       runID,
		ComputedAt:  time.Now().UTC(),
		Teams:       cat.Identities(),
		Superevents: scored,
		Problems:    problems,
	}
	if err := e.store.SetMeta(ctx, meta); err != nil {
		return Result{}, fmt.Errorf("publish run metadata: %w", err)
	}

	years := 0
	if ok {
		years = last - first + 1
	}
	elapsed := time.Since(start)
	metrics.RecordComputation(elapsed.Seconds())
	metrics.UpdateYearsEvaluated(years)

	e.logger.Info(ctx, "computation finished",
		logger.String("run_id", runID),
		logger.Int("years", years),
		logger.Int("superevents", len(scored)),
		logger.Int("problems", len(problems)),
		logger.Duration("elapsed", elapsed),
	)
	return Result{
		RunID:       runID,
		Years:       years,
		Superevents: len(scored),
		Teams:       len(teams),
		Problems:    problems,
		Elapsed:     elapsed,
	}, nil
}

// evaluateYears fans the span across the worker pool. Workers share
// the read-only scored superevents and a write-once career cache, so
// the result is identical whatever the worker count.
func (e *Engine) evaluateYears(parent context.Context, first, last int, teams []string, scored []model.ScoredSuperevent) error {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	careers := memo.New[string, []model.Contribution](memo.WithSizeHint(len(teams)))

	yearCh := make(chan int)
	go func() {
		defer close(yearCh)
		for y := first; y <= last; y++ {
			select {
			case <-ctx.Done():
				return
			case yearCh <- y:
			}
		}
	}()

	workers := e.workers
	if span := last - first + 1; workers > span {
		workers = span
	}

	errCh := make(chan error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			log := e.logger.Named("evaluator-" + strconv.Itoa(id))
			for year := range yearCh {
				if err := e.evaluateYear(ctx, year, teams, careers, scored); err != nil {
					log.Error(ctx, "year evaluation failed",
						logger.Int("year", year),
						logger.Err(err),
					)
					select {
					case errCh <- err:
					default:
					}
					cancel()
					return
				}
			}
		}(i)
	}
	wg.Wait()
	close(errCh)

	if err := <-errCh; err != nil {
		return err
	}
	if err := parent.Err(); err != nil {
		return fmt.Errorf("computation canceled: %w", err)
	}

	hits, misses := careers.Stats()
	e.logger.Debug(ctx, "career cache drained",
		logger.Int("teams", careers.Len()),
		logger.Int("hits", int(hits)),
		logger.Int("misses", int(misses)),
	)
	return nil
}

// evaluateYear computes and publishes one year's standings.
func (e *Engine) evaluateYear(ctx context.Context, year int, teams []string, careers *memo.Cache[string, []model.Contribution], scored []model.ScoredSuperevent) error {
	selections := make(map[string][]model.Contribution, len(teams))
	for _, team := range teams {
		career, err := careers.GetOrCompute(team, func() ([]model.Contribution, error) {
			return careerOf(team, scored), nil
		})
		if err != nil {
			return err
		}
		if sel := e.selector.Select(year, career); len(sel) > 0 {
			selections[team] = sel
		}
	}

	entries := ranking.Aggregate(year, selections)
	if err := e.store.PutYear(ctx, year, entries); err != nil {
		return fmt.Errorf("publish year %d: %w", year, err)
	}
	return nil
}

// careerOf lists every scored superevent the team appears in, in
// series order.
func careerOf(team string, scored []model.ScoredSuperevent) []model.Contribution {
	var career []model.Contribution
	for _, ss := range scored {
		pts, ok := ss.PointsFor(team)
		if !ok {
			continue
		}
		career = append(career, model.Contribution{
			Superevent: ss.Label(),
			Year:       ss.Year,
			Kind:       ss.Kind,
			Points:     pts,
		})
	}
	return career
}

// participants collects every team holding a scored placement, sorted
// by code.
func participants(scored []model.ScoredSuperevent) []string {
	seen := make(map[string]struct{})
	for _, ss := range scored {
		for _, sc := range ss.Scores {
			seen[sc.Team] = struct{}{}
		}
	}
	teams := make([]string, 0, len(seen))
	for team := range seen {
		teams = append(teams, team)
	}
	sort.Strings(teams)
	return teams
}

// yearSpan is the inclusive range of ranking years, gap years included.
func yearSpan(sups []model.Superevent) (first, last int, ok bool) {
	for i, s := range sups {
		if i == 0 || s.Year < first {
			first = s.Year
		}
		if i == 0 || s.Year > last {
			last = s.Year
		}
	}
	return first, last, len(sups) > 0
}

// unknownTeams lists the event's unregistered team codes, comma
// separated, in row order.
func unknownTeams(reg map[string]model.Team, ev model.Event) string {
	var unknown string
	seen := make(map[string]struct{})
	for _, r := range ev.Results {
		if _, ok := reg[r.Team]; ok {
			continue
		}
		if _, dup := seen[r.Team]; dup {
			continue
		}
		seen[r.Team] = struct{}{}
		if unknown != "" {
			unknown += ", "
		}
		unknown += r.Team
	}
	return unknown
}
