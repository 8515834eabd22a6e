// Package window selects the superevents that count toward a team's
// score for an evaluation year: the most recent Olympic appearance and
// the most recent championships inside a trailing span of ranking
// years.
package window

import (
	"sort"

	"github.com/okian/rinkrank/internal/domain/model"
)

const (
	// defaultSpan covers the evaluation year and the three before it.
	defaultSpan = 4

	defaultOlympicCap      = 1
	defaultChampionshipCap = 4
)

// Option applies a configuration option to the Selector.
type Option func(*Selector)

// WithSpan sets how many trailing ranking years feed the candidate
// pool, evaluation year included. Non-positive spans are ignored.
func WithSpan(years int) Option {
	return func(s *Selector) {
		if years > 0 {
			s.span = years
		}
	}
}

// WithOlympicCap caps how many Olympic-kind superevents may count.
// Negative caps are ignored.
func WithOlympicCap(n int) Option {
	return func(s *Selector) {
		if n >= 0 {
			s.olympicCap = n
		}
	}
}

// WithChampionshipCap caps how many championship-kind superevents may
// count. Negative caps are ignored.
func WithChampionshipCap(n int) Option {
	return func(s *Selector) {
		if n >= 0 {
			s.championshipCap = n
		}
	}
}

// WithCountOther lets regional and friendly tournaments count toward
// the championship cap. Excluded by default.
func WithCountOther(enabled bool) Option {
	return func(s *Selector) {
		s.countOther = enabled
	}
}

// Selector applies the lookback window to one team's career.
type Selector struct {
	span            int
	olympicCap      int
	championshipCap int
	countOther      bool
}

// New creates a Selector with the methodology defaults: a four-year
// window, one Olympic appearance and four championships.
func New(opts ...Option) *Selector {
	s := &Selector{
		span:            defaultSpan,
		olympicCap:      defaultOlympicCap,
		championshipCap: defaultChampionshipCap,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Select picks the contributions counted for the evaluation year out
// of a team's career. Within each kind the most recent superevents
// win, recency ties breaking toward higher points. The Olympic cap
// holds even when an anomalous stretch of the calendar puts several
// Games in range, as the 1992 and 1994 Winter Games do. A nil return
// means the team is unranked that year.
func (s *Selector) Select(year int, career []model.Contribution) []model.Contribution {
	var olympic, championship []model.Contribution
	for _, c := range career {
		if c.Year <= year-s.span || c.Year > year {
			continue
		}
		switch c.Kind {
		case model.KindOlympic:
			olympic = append(olympic, c)
		case model.KindChampionship:
			championship = append(championship, c)
		case model.KindOther:
			if s.countOther {
				championship = append(championship, c)
			}
		}
	}

	byRecency(olympic)
	byRecency(championship)

	selected := make([]model.Contribution, 0, s.olympicCap+s.championshipCap)
	selected = append(selected, take(olympic, s.olympicCap)...)
	selected = append(selected, take(championship, s.championshipCap)...)
	if len(selected) == 0 {
		return nil
	}
	sort.Slice(selected, func(i, j int) bool {
		if selected[i].Year != selected[j].Year {
			return selected[i].Year > selected[j].Year
		}
		return kindRank(selected[i].Kind) < kindRank(selected[j].Kind)
	})
	return selected
}

// byRecency orders a pool newest first, recency ties broken toward
// higher points, then by superevent label for a total order.
func byRecency(pool []model.Contribution) {
	sort.Slice(pool, func(i, j int) bool {
		a, b := pool[i], pool[j]
		if a.Year != b.Year {
			return a.Year > b.Year
		}
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		return a.Superevent < b.Superevent
	})
}

func take(pool []model.Contribution, n int) []model.Contribution {
	if len(pool) > n {
		return pool[:n]
	}
	return pool
}

// kindRank fixes the display order of contributions sharing a year.
func kindRank(k model.Kind) int {
	switch k {
	case model.KindOlympic:
		return 0
	case model.KindChampionship:
		return 1
	default:
		return 2
	}
}
