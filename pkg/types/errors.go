package types

import (
	"errors"
	"fmt"
)

// Sentinel errors for the resolver's failure taxonomy.
var (
	// ErrNotFound means a candidate identifier had no record upstream.
	// This is an expected miss, recovered by trying the next candidate.
	ErrNotFound = errors.New("market not found")

	// ErrExhausted means every generated candidate was tried and none
	// validated. Surfaced to callers as found=false, never as a panic or
	// wrapped internal error.
	ErrExhausted = errors.New("all candidates exhausted")

	// ErrUnknownAsset and ErrUnknownInterval are configuration errors:
	// they fail fast before any network call is made.
	ErrUnknownAsset    = errors.New("unknown asset")
	ErrUnknownInterval = errors.New("unknown interval")
)

// UpstreamError wraps a transient failure (network error, timeout, 5xx)
// from the discovery or pricing service. The candidate loop records it and
// continues; it never aborts a resolution on its own.
type UpstreamError struct {
	Service    string // "discovery", "pricing", "timesync"
	Op         string
	StatusCode int // 0 when the request never completed
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s: status %d: %v", e.Service, e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Service, e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// MalformedRecordError means a record was found but its token structure is
// unusable (fewer than two outcome-token ids). Treated as a validation
// failure; the candidate loop continues.
type MalformedRecordError struct {
	Slug   string
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record %q: %s", e.Slug, e.Reason)
}
