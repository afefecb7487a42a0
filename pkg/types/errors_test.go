package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpstreamErrorUnwrap(t *testing.T) {
	inner := errors.New("connection refused")
	err := &UpstreamError{Service: "discovery", Op: "search", Err: inner}

	assert.True(t, errors.Is(err, inner))
	assert.Contains(t, err.Error(), "discovery search")
}

func TestUpstreamErrorWithStatus(t *testing.T) {
	err := &UpstreamError{
		Service:    "pricing",
		Op:         "midpoints",
		StatusCode: 502,
		Err:        errors.New("bad gateway"),
	}

	assert.Contains(t, err.Error(), "status 502")
}

func TestWrappedSentinels(t *testing.T) {
	err := fmt.Errorf("slug %q: %w", "btc-up-or-down-5m-1700000100", ErrNotFound)
	assert.True(t, errors.Is(err, ErrNotFound))

	err = fmt.Errorf("6 slugs tried: %w", ErrExhausted)
	assert.True(t, errors.Is(err, ErrExhausted))
}

func TestMalformedRecordError(t *testing.T) {
	err := &MalformedRecordError{Slug: "btc-up-or-down-5m-1700000100", Reason: "expected 2 outcome tokens, got 1"}
	assert.Contains(t, err.Error(), "btc-up-or-down-5m-1700000100")
	assert.Contains(t, err.Error(), "got 1")
}
