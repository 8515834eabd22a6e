// Package points awards ranking points to superevent standings. Years
// inside the official era pass through the published award tables;
// earlier years receive a synthetic backcast of the modern award
// structure, so the whole century scores on one comparable scale.
package points

import (
	"fmt"

	"github.com/okian/rinkrank/internal/domain/model"
)

const (
	// defaultOfficialFrom is the first ranking year with published
	// award tables in the catalog.
	defaultOfficialFrom = 2000

	// basePoints anchors the synthetic award of the last-placed team.
	basePoints = 20

	// baseStep is the synthetic gap between adjacent placements.
	baseStep = 20
)

// Rule awards points to every standing of a superevent, preserving
// the standings order.
type Rule interface {
	// Name identifies the rule in ranking output.
	Name() string
	// Score computes the award of every standing.
	Score(sup model.Superevent) ([]model.ParticipantScore, error)
}

// span binds a rule to an inclusive range of ranking years. A zero
// upper bound leaves the span open-ended.
type span struct {
	from, to int
	rule     Rule
}

func (s span) covers(year int) bool {
	if year < s.from {
		return false
	}
	return s.to == 0 || year <= s.to
}

// Assigner picks the rule covering a superevent's ranking year and
// applies it. Exactly one rule must cover each year; a gap or an
// overlap in the schedule is a data error, never a silent fallback.
type Assigner struct {
	officialFrom int
	spans        []span
}

// New creates an Assigner. Without options it scores years before
// the official era synthetically and passes published points through
// from there on.
func New(opts ...Option) *Assigner {
	a := &Assigner{officialFrom: defaultOfficialFrom}
	for _, opt := range opts {
		opt(a)
	}
	if len(a.spans) == 0 {
		a.spans = []span{
			{from: 1, to: a.officialFrom - 1, rule: Synthetic{}},
			{from: a.officialFrom, rule: Official{}},
		}
	}
	return a
}

// Score awards points to every participant of the superevent.
func (a *Assigner) Score(sup model.Superevent) (model.ScoredSuperevent, error) {
	rule, err := a.ruleFor(sup.Year)
	if err != nil {
		return model.ScoredSuperevent{}, err
	}
	scores, err := rule.Score(sup)
	if err != nil {
		return model.ScoredSuperevent{}, err
	}
	return model.ScoredSuperevent{Superevent: sup, Rule: rule.Name(), Scores: scores}, nil
}

func (a *Assigner) ruleFor(year int) (Rule, error) {
	var match Rule
	for _, s := range a.spans {
		if !s.covers(year) {
			continue
		}
		if match != nil {
			return nil, fmt.Errorf("year %d covered by both %s and %s rules: %w",
				year, match.Name(), s.rule.Name(), model.ErrUnknownFormulaYear)
		}
		match = s.rule
	}
	if match == nil {
		return nil, fmt.Errorf("no points rule covers year %d: %w", year, model.ErrUnknownFormulaYear)
	}
	return match, nil
}

// Synthetic backcasts the modern award structure onto years without
// published tables. The last-placed team of a field of N earns the
// base award and every placement above adds a step, doubled across
// the prized boundaries at ranks 1, 2, 4 and 8. Tied teams share the
// award of their nominal rank. Points carried on catalog rows are
// ignored in synthetic years.
type Synthetic struct{}

// Name implements Rule.
func (Synthetic) Name() string { return "synthetic" }

// Score implements Rule.
func (Synthetic) Score(sup model.Superevent) ([]model.ParticipantScore, error) {
	table := syntheticTable(len(sup.Standings))
	scores := make([]model.ParticipantScore, 0, len(sup.Standings))
	for _, st := range sup.Standings {
		scores = append(scores, model.ParticipantScore{
			Team:   st.Team,
			Rank:   st.Rank,
			Points: table[st.Rank],
			Tied:   st.Tied,
		})
	}
	return scores, nil
}

// syntheticTable computes the award for each rank in a field of n
// teams, indexed by rank.
func syntheticTable(n int) []int {
	if n == 0 {
		return nil
	}
	table := make([]int, n+1)
	table[n] = basePoints
	for r := n - 1; r >= 1; r-- {
		table[r] = table[r+1] + bump(r)
	}
	return table
}

// bump is the points gap a placement opens over the one below it.
func bump(rank int) int {
	switch rank {
	case 1, 2, 4, 8:
		return 2 * baseStep
	default:
		return baseStep
	}
}

// Official passes through the published points carried on each
// standing. Awards inside the official era are source data and are
// never recomputed; a standing without points is incomplete input.
type Official struct{}

// Name implements Rule.
func (Official) Name() string { return "official" }

// Score implements Rule.
func (Official) Score(sup model.Superevent) ([]model.ParticipantScore, error) {
	scores := make([]model.ParticipantScore, 0, len(sup.Standings))
	for _, st := range sup.Standings {
		if st.OfficialPoints == 0 {
			return nil, fmt.Errorf("%s: no published points for %s: %w",
				sup.Label(), st.Team, model.ErrIncompleteData)
		}
		scores = append(scores, model.ParticipantScore{
			Team:   st.Team,
			Rank:   st.Rank,
			Points: st.OfficialPoints,
			Tied:   st.Tied,
		})
	}
	return scores, nil
}
