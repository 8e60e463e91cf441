package domain

import "errors"

// Sentinel errors for domain-level error discrimination.
// Repositories and services wrap these so handlers can map to HTTP status codes without leaking store details.
var (
	ErrNotFound   = errors.New("not found")
	ErrBadRequest = errors.New("bad request")
	ErrStore      = errors.New("store failure")
)
