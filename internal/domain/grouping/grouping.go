// Package grouping merges catalog events into per-year superevents
// with a single linearized placement order.
package grouping

import (
	"fmt"
	"sort"

	"github.com/okian/rinkrank/internal/domain/model"
)

// Option applies a configuration option to the Grouper.
type Option func(*Grouper)

// WithPreOlympicFold controls whether a championship held the calendar
// year before an Olympic Games folds into the Olympic year's
// superevent. The Olympics of year Y close the competitive season the
// year Y-1 championship opened, so both count as one ranking event.
// Enabled by default.
func WithPreOlympicFold(enabled bool) Option {
	return func(g *Grouper) {
		g.foldPreOlympic = enabled
	}
}

// Grouper builds superevents from the event catalog. It consumes the
// per-event ordering basis uniformly, so exceptional years stay data
// additions rather than code changes.
type Grouper struct {
	foldPreOlympic bool
}

// New creates a Grouper with the methodology defaults.
func New(opts ...Option) *Grouper {
	g := &Grouper{foldPreOlympic: true}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Group derives one superevent per ranking year per kind. Events that
// fail validation and merges that cannot linearize come back as
// errors; superevents unaffected by them are still produced, so one
// bad tournament never hides a century of good ones.
func (g *Grouper) Group(events []model.Event) ([]model.Superevent, []error) {
	var errs []error

	valid := make([]model.Event, 0, len(events))
	olympicYears := make(map[int]bool)
	for _, ev := range events {
		if err := ev.Validate(); err != nil {
			errs = append(errs, &Error{Year: ev.Year, Kind: ev.Type.Kind(), Event: ev.Label(), Err: err})
			continue
		}
		valid = append(valid, ev)
		if ev.Type.Kind() == model.KindOlympic {
			olympicYears[ev.Year] = true
		}
	}

	type bucketKey struct {
		year int
		kind model.Kind
	}
	buckets := make(map[bucketKey][]model.Event)
	for _, ev := range valid {
		year, kind := ev.Year, ev.Type.Kind()
		if g.foldPreOlympic && kind == model.KindChampionship && olympicYears[ev.Year+1] {
			year, kind = ev.Year+1, model.KindOlympic
		}
		k := bucketKey{year: year, kind: kind}
		buckets[k] = append(buckets[k], ev)
	}

	sups := make([]model.Superevent, 0, len(buckets))
	for k, evs := range buckets {
		sup, err := merge(k.year, k.kind, evs)
		if err != nil {
			errs = append(errs, &Error{Year: k.year, Kind: k.kind, Err: err})
			continue
		}
		sups = append(sups, sup)
	}

	sort.Slice(sups, func(i, j int) bool {
		if sups[i].Year != sups[j].Year {
			return sups[i].Year < sups[j].Year
		}
		return kindOrder(sups[i].Kind) < kindOrder(sups[j].Kind)
	})
	return sups, errs
}

// kindOrder fixes the display order of superevents sharing a year.
func kindOrder(k model.Kind) int {
	switch k {
	case model.KindOlympic:
		return 0
	case model.KindChampionship:
		return 1
	default:
		return 2
	}
}

// merge linearizes the constituent events of one superevent. Events
// sort by seniority and tier; every participant of a senior event ranks
// above every participant of a junior one, each event's internal order
// preserved. A team entered in several constituent events keeps its
// most senior placement.
func merge(year int, kind model.Kind, evs []model.Event) (model.Superevent, error) {
	sort.Slice(evs, func(i, j int) bool {
		si, sj := evs[i].Type.Seniority(), evs[j].Type.Seniority()
		if si != sj {
			return si < sj
		}
		return evs[i].Tier < evs[j].Tier
	})
	for i := 1; i < len(evs); i++ {
		prev, cur := evs[i-1], evs[i]
		if prev.Type.Seniority() == cur.Type.Seniority() && prev.Tier == cur.Tier {
			return model.Superevent{}, fmt.Errorf(
				"%s and %s compete for the same position: %w",
				prev.Label(), cur.Label(), model.ErrAmbiguousGrouping)
		}
	}

	sup := model.Superevent{Year: year, Kind: kind}
	seen := make(map[string]bool)
	position := 0
	for _, ev := range evs {
		sup.Events = append(sup.Events, ev.Ref())
		for _, level := range eventOrder(ev) {
			members := level[:0:0]
			for _, r := range level {
				if !seen[r.Team] {
					members = append(members, r)
				}
			}
			if len(members) == 0 {
				continue
			}
			rank := position + 1
			tied := len(members) > 1
			for _, r := range members {
				seen[r.Team] = true
				sup.Standings = append(sup.Standings, model.Standing{
					Team:           r.Team,
					Rank:           rank,
					Tied:           tied,
					Source:         ev.Ref(),
					OfficialPoints: r.Points,
				})
			}
			position += len(members)
		}
	}
	return sup, nil
}

// eventOrder returns the event's internal order as a sequence of tie
// levels, each holding the rows that share a position. Under the
// groups basis the eliminated teams follow the final round, interleaved
// across qualification groups by their within-group placement: all
// group thirds tie, then all group fourths, and so on.
func eventOrder(ev model.Event) [][]model.Result {
	var open, grouped []model.Result
	for _, r := range ev.Results {
		if r.Group != "" {
			grouped = append(grouped, r)
		} else {
			open = append(open, r)
		}
	}

	levels := tieLevels(open)
	if ev.Basis() == model.OrderingGroups {
		levels = append(levels, tieLevels(grouped)...)
	}
	return levels
}

// tieLevels buckets rows by rank value, ascending, with each bucket
// sorted by team code for deterministic output.
func tieLevels(rows []model.Result) [][]model.Result {
	if len(rows) == 0 {
		return nil
	}
	byRank := make(map[int][]model.Result)
	ranks := make([]int, 0, len(rows))
	for _, r := range rows {
		if _, ok := byRank[r.Rank]; !ok {
			ranks = append(ranks, r.Rank)
		}
		byRank[r.Rank] = append(byRank[r.Rank], r)
	}
	sort.Ints(ranks)

	levels := make([][]model.Result, 0, len(ranks))
	for _, rank := range ranks {
		level := byRank[rank]
		sort.Slice(level, func(i, j int) bool { return level[i].Team < level[j].Team })
		levels = append(levels, level)
	}
	return levels
}
