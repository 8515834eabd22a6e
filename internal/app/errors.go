package service

import "errors"

var (
	// ErrNotStarted is returned when the service is queried before
	// Start or after Stop.
	ErrNotStarted = errors.New("service not started")

	// ErrNoCatalog is returned by Start when neither a catalog path
	// nor a loader was configured.
	ErrNoCatalog = errors.New("no catalog configured")
)
