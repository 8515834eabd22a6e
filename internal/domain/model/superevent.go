package model

import "fmt"

// EventRef identifies a constituent event inside a superevent.
type EventRef struct {
	Year int       `json:"year"`
	Type EventType `json:"type"`
	Tier int       `json:"tier,omitempty"`
}

func (r EventRef) String() string {
	if r.Tier > 0 {
		return fmt.Sprintf("%d_%s_T%d", r.Year, r.Type.Key(), r.Tier)
	}
	return fmt.Sprintf("%d_%s", r.Year, r.Type.Key())
}

// Standing is one position in a superevent's merged final order.
// Rank uses standard competition numbering; tied standings share the
// better rank and the next rank skips past the block.
type Standing struct {
	Team           string   `json:"team"`
	Rank           int      `json:"rank"`
	Tied           bool     `json:"tied,omitempty"`
	Source         EventRef `json:"source"`
	OfficialPoints int      `json:"official_points,omitempty"`
}

// Superevent is the per-ranking-year, per-kind merge of all events whose
// results count as a single ranking event. Derived from the catalog and
// recomputable at any time.
type Superevent struct {
	Year      int        `json:"year"`
	Kind      Kind       `json:"kind"`
	Events    []EventRef `json:"events"`
	Standings []Standing `json:"standings"`
}

// Label is the short display key, e.g. "1936O" for the 1936 Olympic
// superevent or "1931C" for that year's championships.
func (s Superevent) Label() string {
	return fmt.Sprintf("%d%s", s.Year, s.Kind.letter())
}

// Size is the number of occupied positions in the merged order.
func (s Superevent) Size() int {
	return len(s.Standings)
}

// ParticipantScore is one participant's point yield from a superevent.
// Never stored apart from the rule that produced it.
type ParticipantScore struct {
	Team   string `json:"team"`
	Rank   int    `json:"rank"`
	Points int    `json:"points"`
	Tied   bool   `json:"tied,omitempty"`
}

// ScoredSuperevent pairs a superevent with the points its placements
// yield under the rule for its year. Scores follow the standings order.
type ScoredSuperevent struct {
	Superevent
	Rule   string             `json:"rule"`
	Scores []ParticipantScore `json:"scores"`
}

// PointsFor returns the points credited to a team, with ok reporting
// participation.
func (s ScoredSuperevent) PointsFor(team string) (int, bool) {
	for _, sc := range s.Scores {
		if sc.Team == team {
			return sc.Points, true
		}
	}
	return 0, false
}
