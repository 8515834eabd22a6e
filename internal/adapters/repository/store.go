// Package repository defines the computed-series store interface and
// errors.
package repository

import (
	"context"

	"github.com/okian/rinkrank/internal/domain/model"
)

// Store holds a computed historical ranking series: one standings list
// per evaluation year plus the run metadata around them. Writers
// replace whole years; readers always see a consistent snapshot.
type Store interface {
	// PutYear replaces the standings of one evaluation year. A year
	// with an empty standings list is still an evaluated year.
	PutYear(ctx context.Context, year int, entries []model.RankingEntry) error
	// SetMeta replaces the run metadata: run identity, team registry,
	// scored superevents and the problem report.
	SetMeta(ctx context.Context, meta model.SeriesMeta) error
	// Clear drops the stored series and metadata.
	Clear(ctx context.Context) error

	// TopN returns the first n entries of a year's standings.
	// Returns ErrUnknownYear for years never evaluated and
	// ErrInvalidLimit when n < 1.
	TopN(ctx context.Context, year, n int) ([]model.RankingEntry, error)
	// Rank returns one team's entry for a year.
	// Returns ErrUnknownYear for years never evaluated and
	// ErrNotRanked when the team has no entry that year.
	Rank(ctx context.Context, year int, team string) (model.RankingEntry, error)
	// Series returns a team's entries across all evaluated years,
	// ascending. Years where the team is unranked are skipped.
	// Returns ErrNotRanked for teams with no entry anywhere.
	Series(ctx context.Context, team string) ([]model.RankingEntry, error)
	// Years returns the evaluated years in ascending order.
	Years(ctx context.Context) []int
	// Meta returns the run metadata of the last computation. The
	// returned value shares its slices with the store; treat it as
	// read-only.
	Meta(ctx context.Context) model.SeriesMeta
	// Size returns the number of evaluated years and stored entries.
	Size(ctx context.Context) (years, entries int)
}
