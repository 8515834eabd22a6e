package api

import "errors"

// ErrBadRequest marks malformed query parameters and path segments.
var ErrBadRequest = errors.New("bad request")
