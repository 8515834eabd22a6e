package config

import "errors"

// ErrInvalidConfig marks configuration rejected by validation. Callers
// can match it with errors.Is.
var ErrInvalidConfig = errors.New("invalid config")
