package model

import (
	"fmt"
	"sort"
)

// Team is a stable national-team identity. Historical successions are
// modeled as an alias: a team with a successor has its results credited
// to the successor when the catalog is loaded.
type Team struct {
	Code      string `json:"code" yaml:"code"`
	Name      string `json:"name" yaml:"name"`
	Successor string `json:"successor,omitempty" yaml:"successor,omitempty"`
}

// Result is one row of an event's final order. Points carries the
// official ranking points where the source data supplies them; zero
// means absent, matching the convention of the curated spreadsheets.
type Result struct {
	Team   string `json:"team" yaml:"team"`
	Rank   int    `json:"rank" yaml:"rank"`
	Group  string `json:"group,omitempty" yaml:"group,omitempty"`
	Points int    `json:"points,omitempty" yaml:"points,omitempty"`
}

// Event is one tournament instance as curated in the catalog. Events
// are append-only historical facts; everything downstream is derived.
type Event struct {
	Year     int       `json:"year" yaml:"year"`
	Type     EventType `json:"type" yaml:"type"`
	Tier     int       `json:"tier,omitempty" yaml:"tier,omitempty"`
	Ordering Ordering  `json:"ordering,omitempty" yaml:"ordering,omitempty"`
	Results  []Result  `json:"results" yaml:"results"`
	Note     string    `json:"note,omitempty" yaml:"note,omitempty"`
}

// Basis returns the event's ordering basis, defaulting to explicit
// results when the catalog omits it.
func (e Event) Basis() Ordering {
	if e.Ordering == "" {
		return OrderingResults
	}
	return e.Ordering
}

// Ref identifies the event inside a superevent.
func (e Event) Ref() EventRef {
	return EventRef{Year: e.Year, Type: e.Type, Tier: e.Tier}
}

// Label is the human-readable identity used in errors and reports.
func (e Event) Label() string {
	if e.Tier > 0 {
		return fmt.Sprintf("%d %s tier %d", e.Year, e.Type, e.Tier)
	}
	return fmt.Sprintf("%d %s", e.Year, e.Type)
}

// Validate checks the event's structure against the import contract:
// a recognized type, a plausible year, and placements forming a valid
// total order where duplicates are explicit tie groups. Team identity
// resolution is the catalog's concern, not checked here.
func (e Event) Validate() error {
	if e.Year <= 0 {
		return fmt.Errorf("%s: year %d: %w", e.Label(), e.Year, ErrIncompleteData)
	}
	if !e.Type.Valid() {
		return fmt.Errorf("%d %q: unrecognized event type: %w", e.Year, string(e.Type), ErrIncompleteData)
	}
	if len(e.Results) == 0 {
		return fmt.Errorf("%s: no placements: %w", e.Label(), ErrIncompleteData)
	}

	seen := make(map[string]struct{}, len(e.Results))
	var open, grouped []Result
	for _, r := range e.Results {
		if r.Team == "" {
			return fmt.Errorf("%s: placement without a team: %w", e.Label(), ErrIncompleteData)
		}
		if _, dup := seen[r.Team]; dup {
			return fmt.Errorf("%s: %s placed twice: %w", e.Label(), r.Team, ErrIncompleteData)
		}
		seen[r.Team] = struct{}{}
		if r.Rank < 1 {
			return fmt.Errorf("%s: %s has rank %d: %w", e.Label(), r.Team, r.Rank, ErrIncompleteData)
		}
		if r.Group != "" {
			grouped = append(grouped, r)
		} else {
			open = append(open, r)
		}
	}

	switch e.Basis() {
	case OrderingResults, OrderingSeeding:
		if len(grouped) > 0 {
			return fmt.Errorf("%s: group labels require the groups ordering basis: %w", e.Label(), ErrAmbiguousGrouping)
		}
		if err := validOrder(open); err != nil {
			return fmt.Errorf("%s: %w", e.Label(), err)
		}
	case OrderingGroups:
		if len(grouped) == 0 {
			return fmt.Errorf("%s: groups ordering basis without group labels: %w", e.Label(), ErrAmbiguousGrouping)
		}
		if err := validOrder(open); err != nil {
			return fmt.Errorf("%s: final round: %w", e.Label(), err)
		}
	default:
		return fmt.Errorf("%s: unrecognized ordering basis %q: %w", e.Label(), string(e.Ordering), ErrAmbiguousGrouping)
	}
	return nil
}

// validOrder checks standard competition numbering: ranks start at 1,
// and every rank either continues its tie group or lands on its 1-based
// position. 1,2,2,4 is valid; 1,2,2,3 and 1,3 are not.
func validOrder(rows []Result) error {
	if len(rows) == 0 {
		return nil
	}
	ranks := make([]int, len(rows))
	for i, r := range rows {
		ranks[i] = r.Rank
	}
	sort.Ints(ranks)
	for i, r := range ranks {
		if i == 0 {
			if r != 1 {
				return fmt.Errorf("placements start at %d, not 1: %w", r, ErrIncompleteData)
			}
			continue
		}
		if r == ranks[i-1] || r == i+1 {
			continue
		}
		return fmt.Errorf("placement %d breaks the order: %w", r, ErrIncompleteData)
	}
	return nil
}
