package model

import "time"

// Contribution records one superevent counted toward a team's yearly
// total by the window selector.
type Contribution struct {
	Superevent string `json:"superevent"`
	Year       int    `json:"year"`
	Kind       Kind   `json:"kind"`
	Points     int    `json:"points"`
}

// RankingEntry is a team's final position for one evaluation year.
// Entries are recomputed from scratch per year and never mutated; a
// team with no qualifying superevents has no entry at all, which keeps
// "never competed" distinct from "scored zero".
type RankingEntry struct {
	Rank          int            `json:"rank"`
	Team          string         `json:"team"`
	Year          int            `json:"year"`
	Points        int            `json:"points"`
	Tied          bool           `json:"tied,omitempty"`
	Contributions []Contribution `json:"contributions,omitempty"`
}

// Stages where computation problems can arise.
const (
	StageCatalog  = "catalog"
	StageGrouping = "grouping"
	StagePoints   = "points"
)

// Problem flags a data gap discovered during computation. Problems are
// reported alongside the partial result instead of failing the run, so
// curators can see exactly what to fix.
type Problem struct {
	Stage string `json:"stage"`
	Year  int    `json:"year,omitempty"`
	Kind  Kind   `json:"kind,omitempty"`
	Event string `json:"event,omitempty"`
	Err   string `json:"error"`
}

// SeriesMeta is the non-standings part of a computed series: run
// identity, the resolved team registry, scored superevents, and the
// problem report.
type SeriesMeta struct {
	RunID       string             `json:"run_id"`
	ComputedAt  time.Time          `json:"computed_at"`
	Teams       []Team             `json:"teams"`
	Superevents []ScoredSuperevent `json:"superevents"`
	Problems    []Problem          `json:"problems"`
}
