package api

import "errors"

// Failure kinds surfaced by the client. Callers branch with errors.Is and
// degrade their panel to an empty state rather than propagating upward.
var (
	// ErrFetch covers network failures and non-success backend statuses.
	ErrFetch = errors.New("backend fetch failed")

	// ErrMediaNotFound is returned when the backend answers a media
	// request with a structured not-found body.
	ErrMediaNotFound = errors.New("media not found")

	// ErrMediaTimeout is returned when a media download exceeds its bound.
	ErrMediaTimeout = errors.New("media fetch timed out")
)
