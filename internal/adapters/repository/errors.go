package repository

import "errors"

// Sentinel kinds for series store errors.
var (
	ErrUnknownYear  = errors.New("year not evaluated")
	ErrNotRanked    = errors.New("team not ranked")
	ErrInvalidLimit = errors.New("invalid standings limit")
)
