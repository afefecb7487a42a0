// Package storage persists resolution outcomes for auditing. It records
// what each resolution decided and why, not price history: the audit row
// carries the chosen market, the prices seen at resolution time, and the
// size of the candidate trail.
package storage

import (
	"context"
	"time"
)

// ResolutionRecord is one completed resolution, success or failure.
type ResolutionRecord struct {
	ID              string
	Asset           string
	Interval        string
	WindowStart     int64
	Found           bool
	MarketSlug      string
	MarketQuestion  string
	UpTokenID       string
	DownTokenID     string
	UpPrice         *float64
	DownPrice       *float64
	CandidatesTried int
	LastError       string
	Duration        time.Duration
	ResolvedAt      time.Time
}

// Storage is the interface for persisting resolution records.
type Storage interface {
	// StoreResolution persists one completed resolution.
	StoreResolution(ctx context.Context, rec *ResolutionRecord) error

	// Close closes the storage connection.
	Close() error
}
