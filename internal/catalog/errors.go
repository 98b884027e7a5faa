package catalog

import "errors"

var (
	// ErrUpstreamUnavailable marks a failed or timed-out remote catalog
	// call. Callers turn this into an apology, never a crash.
	ErrUpstreamUnavailable = errors.New("catalog upstream unavailable")

	// ErrNotFound marks an upstream-confirmed miss for a well-formed query.
	ErrNotFound = errors.New("catalog entry not found")
)
