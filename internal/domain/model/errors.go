package model

import "errors"

// Sentinel errors of the computation taxonomy. Producers wrap them with
// event or superevent context; the engine localizes each one to the
// offending unit and reports it as a Problem instead of failing the run.
var (
	// ErrIncompleteData marks a catalog row referencing an unknown team,
	// an invalid placement order, or a missing official-points value.
	ErrIncompleteData = errors.New("incomplete data")

	// ErrUnknownFormulaYear marks a superevent year that does not
	// resolve to exactly one points rule.
	ErrUnknownFormulaYear = errors.New("unknown formula year")

	// ErrAmbiguousGrouping marks a merge that cannot be linearized
	// without a policy the data does not provide.
	ErrAmbiguousGrouping = errors.New("ambiguous grouping")
)
