package catalog

import "errors"

// Sentinel kinds for catalog loading errors.
var (
	ErrUnsupportedFormat = errors.New("unsupported catalog format")
	ErrMalformedSheet    = errors.New("malformed catalog sheet")
)
