package storage

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func floatPtr(f float64) *float64 { return &f }

func newMockStorage(t *testing.T) (*PostgresStorage, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	return &PostgresStorage{
		db:     db,
		logger: zap.NewNop(),
	}, mock
}

func TestStoreResolutionFound(t *testing.T) {
	store, mock := newMockStorage(t)
	defer store.db.Close()

	rec := &ResolutionRecord{
		ID:              "11111111-2222-3333-4444-555555555555",
		Asset:           "btc",
		Interval:        "5m",
		WindowStart:     1700000100,
		Found:           true,
		MarketSlug:      "btc-up-or-down-5m-1700000100",
		MarketQuestion:  "Bitcoin Up or Down - 5 minute",
		UpTokenID:       "111",
		DownTokenID:     "222",
		UpPrice:         floatPtr(0.55),
		DownPrice:       floatPtr(0.45),
		CandidatesTried: 1,
		Duration:        120 * time.Millisecond,
		ResolvedAt:      time.Now(),
	}

	mock.ExpectExec("INSERT INTO resolutions").
		WithArgs(
			rec.ID, rec.Asset, rec.Interval, rec.WindowStart, rec.Found,
			rec.MarketSlug, rec.MarketQuestion, rec.UpTokenID, rec.DownTokenID,
			nullFloat(rec.UpPrice), nullFloat(rec.DownPrice),
			rec.CandidatesTried, rec.LastError, int64(120), rec.ResolvedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := store.StoreResolution(context.Background(), rec)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreResolutionNotFoundNullPrices(t *testing.T) {
	store, mock := newMockStorage(t)
	defer store.db.Close()

	rec := &ResolutionRecord{
		ID:              "11111111-2222-3333-4444-555555555555",
		Asset:           "eth",
		Interval:        "1h",
		WindowStart:     1699999200,
		Found:           false,
		CandidatesTried: 6,
		LastError:       "slug not found",
		Duration:        time.Second,
		ResolvedAt:      time.Now(),
	}

	mock.ExpectExec("INSERT INTO resolutions").
		WithArgs(
			rec.ID, rec.Asset, rec.Interval, rec.WindowStart, rec.Found,
			"", "", "", "",
			nullFloat(nil), nullFloat(nil),
			rec.CandidatesTried, rec.LastError, int64(1000), rec.ResolvedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := store.StoreResolution(context.Background(), rec)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreResolutionInsertError(t *testing.T) {
	store, mock := newMockStorage(t)
	defer store.db.Close()

	mock.ExpectExec("INSERT INTO resolutions").
		WillReturnError(assert.AnError)

	err := store.StoreResolution(context.Background(), &ResolutionRecord{
		ID:         "11111111-2222-3333-4444-555555555555",
		ResolvedAt: time.Now(),
	})
	assert.Error(t, err)
}

func TestNullFloat(t *testing.T) {
	assert.False(t, nullFloat(nil).Valid)

	nf := nullFloat(floatPtr(0.42))
	assert.True(t, nf.Valid)
	assert.InDelta(t, 0.42, nf.Float64, 1e-9)
}
