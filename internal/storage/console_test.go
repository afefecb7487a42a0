package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestConsoleStorageFound(t *testing.T) {
	store := NewConsoleStorage(zap.NewNop())
	defer store.Close()

	err := store.StoreResolution(context.Background(), &ResolutionRecord{
		ID:              "11111111-2222-3333-4444-555555555555",
		Asset:           "btc",
		Interval:        "5m",
		WindowStart:     1700000100,
		Found:           true,
		MarketSlug:      "btc-up-or-down-5m-1700000100",
		MarketQuestion:  "Bitcoin Up or Down - 5 minute",
		UpPrice:         floatPtr(0.55),
		CandidatesTried: 1,
		Duration:        time.Millisecond,
		ResolvedAt:      time.Now(),
	})
	assert.NoError(t, err)
}

func TestConsoleStorageNotFound(t *testing.T) {
	store := NewConsoleStorage(zap.NewNop())
	defer store.Close()

	err := store.StoreResolution(context.Background(), &ResolutionRecord{
		ID:              "11111111-2222-3333-4444-555555555555",
		Asset:           "btc",
		Interval:        "5m",
		Found:           false,
		CandidatesTried: 6,
		LastError:       "all candidates exhausted",
		ResolvedAt:      time.Now(),
	})
	assert.NoError(t, err)
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "unavailable", formatPrice(nil))
	assert.Equal(t, "0.5500", formatPrice(floatPtr(0.55)))
}
