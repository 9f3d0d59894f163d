package tracker

import "errors"

// The failure taxonomy surfaced by the valuation and data-access layers.
// All errors returned by this module wrap one of these sentinels, so callers
// can tell a validation error from missing data or a connectivity failure
// with errors.Is.
var (
	// ErrInvalidArgument reports a construction-time invariant violation,
	// like a non-positive principal or a timestamp the vehicle does not cover.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound reports a timestamp absent from a price series at lookup time.
	ErrNotFound = errors.New("not found")
	// ErrZeroBasis reports a rate-of-return computed against a zero price.
	ErrZeroBasis = errors.New("zero price basis")
	// ErrUnreachable reports a transport-level failure before any response.
	ErrUnreachable = errors.New("server unreachable")
	// ErrRejected reports a non-success response from the remote store.
	ErrRejected = errors.New("request rejected")
)
