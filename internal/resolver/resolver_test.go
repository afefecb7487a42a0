package resolver

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/updownlabs/updown-resolver/internal/discovery"
	"github.com/updownlabs/updown-resolver/internal/locator"
	"github.com/updownlabs/updown-resolver/internal/pricing"
	"github.com/updownlabs/updown-resolver/internal/storage"
	"github.com/updownlabs/updown-resolver/internal/testutil"
	"github.com/updownlabs/updown-resolver/pkg/types"
	"go.uber.org/zap"
)

// fixedClock pins the canonical now so window math is deterministic.
type fixedClock struct {
	now int64
}

func (c fixedClock) Now(_ context.Context) int64 {
	return c.now
}

// recordingSink captures audit records for assertions.
type recordingSink struct {
	records []*storage.ResolutionRecord
}

func (s *recordingSink) StoreResolution(_ context.Context, rec *storage.ResolutionRecord) error {
	s.records = append(s.records, rec)
	return nil
}

func (s *recordingSink) Close() error { return nil }

func newResolver(t *testing.T, gammaURL, clobURL string, now int64) *Resolver {
	t.Helper()

	logger := zap.NewNop()

	discoveryClient := discovery.NewClient(&discovery.Config{
		BaseURL: gammaURL,
		Timeout: 5 * time.Second,
		Logger:  logger,
	})

	pricingClient := pricing.NewClient(&pricing.Config{
		BaseURL: clobURL,
		Timeout: 5 * time.Second,
		Logger:  logger,
	})

	return New(&Config{
		Clock:   fixedClock{now: now},
		Locator: locator.NewSlugStrategy(discoveryClient, logger),
		Fetcher: pricing.NewFetcher(pricingClient, logger),
		Logger:  logger,
	})
}

func TestResolveSuccess(t *testing.T) {
	// now=1700000300 in a 5m window puts the current start at 1700000100.
	market := testutil.CreateUpDownMarket("btc", "5m", 1700000100)
	gamma := testutil.NewMockGammaAPI([]*types.Market{market})
	defer gamma.Close()

	clob := testutil.NewMockClobAPI(map[string]string{
		market.ClobTokenIDs[0]: "0.55",
		market.ClobTokenIDs[1]: "0.45",
	})
	defer clob.Close()

	r := newResolver(t, gamma.URL, clob.URL, 1700000300)

	result, err := r.Resolve(context.Background(), "btc", "5m")
	require.NoError(t, err)

	assert.True(t, result.Found)
	assert.Equal(t, market.Slug, result.MarketSlug)
	assert.Equal(t, market.ClobTokenIDs[0], result.UpToken)
	assert.Equal(t, market.ClobTokenIDs[1], result.DownToken)
	require.NotNil(t, result.UpPrice)
	require.NotNil(t, result.DownPrice)
	assert.InDelta(t, 0.55, *result.UpPrice, 1e-9)
	assert.InDelta(t, 0.45, *result.DownPrice, 1e-9)

	require.NotNil(t, result.Diagnostics)
	assert.NotEmpty(t, result.Diagnostics.ResolutionID)
	assert.Equal(t, "slug", result.Diagnostics.Strategy)
	assert.Equal(t, int64(1700000100), result.Diagnostics.WindowStart)
	assert.Equal(t, []string{"btc-up-or-down-5m-1700000100"}, result.Diagnostics.Tried)
}

func TestResolveExhaustion(t *testing.T) {
	gamma := testutil.NewMockGammaAPI(nil)
	defer gamma.Close()

	clob := testutil.NewMockClobAPI(nil)
	defer clob.Close()

	r := newResolver(t, gamma.URL, clob.URL, 1700000300)

	result, err := r.Resolve(context.Background(), "btc", "5m")
	require.NoError(t, err, "exhaustion is a result, not an error")

	assert.False(t, result.Found)
	require.NotNil(t, result.Diagnostics)
	// 3 candidate windows x 2 aliases, all tried.
	assert.Len(t, result.Diagnostics.Tried, 6)
	assert.NotEmpty(t, result.Diagnostics.LastError)
}

func TestResolveUnknownAssetFailsFast(t *testing.T) {
	// No upstreams at all: configuration errors fire before any network
	// call.
	r := newResolver(t, "http://127.0.0.1:1", "http://127.0.0.1:1", 1700000300)

	_, err := r.Resolve(context.Background(), "shib", "5m")
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrUnknownAsset))

	_, err = r.Resolve(context.Background(), "btc", "7m")
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrUnknownInterval))
}

func TestResolveSucceedsWithUnavailablePrices(t *testing.T) {
	market := testutil.CreateUpDownMarket("eth", "1h", 1699999200)
	gamma := testutil.NewMockGammaAPI([]*types.Market{market})
	defer gamma.Close()

	// Pricing service knows neither token and the batch endpoint is down.
	clob := testutil.NewMockClobAPI(nil)
	clob.SetFailBatch(true)
	defer clob.Close()

	r := newResolver(t, gamma.URL, clob.URL, 1700000300)

	result, err := r.Resolve(context.Background(), "eth", "1h")
	require.NoError(t, err)

	assert.True(t, result.Found)
	assert.Nil(t, result.UpPrice)
	assert.Nil(t, result.DownPrice)
	assert.Contains(t, result.Diagnostics.Notes, "up price unavailable")
	assert.Contains(t, result.Diagnostics.Notes, "down price unavailable")
}

func TestResolvePositionalFallbackIsNoted(t *testing.T) {
	market := testutil.CreateUpDownMarket("btc", "5m", 1700000100)
	market.Outcomes = nil // token ids without labels

	gamma := testutil.NewMockGammaAPI([]*types.Market{market})
	defer gamma.Close()

	clob := testutil.NewMockClobAPI(map[string]string{
		market.ClobTokenIDs[0]: "0.5",
		market.ClobTokenIDs[1]: "0.5",
	})
	defer clob.Close()

	r := newResolver(t, gamma.URL, clob.URL, 1700000300)

	result, err := r.Resolve(context.Background(), "btc", "5m")
	require.NoError(t, err)

	assert.True(t, result.Found)
	assert.Equal(t, market.ClobTokenIDs[0], result.UpToken)
	assert.Equal(t, market.ClobTokenIDs[1], result.DownToken)
	assert.Contains(t, result.Diagnostics.Notes,
		"outcome labels absent; up/down assigned by token position")
}

func TestResolveAuditsToSink(t *testing.T) {
	market := testutil.CreateUpDownMarket("btc", "5m", 1700000100)
	gamma := testutil.NewMockGammaAPI([]*types.Market{market})
	defer gamma.Close()

	clob := testutil.NewMockClobAPI(map[string]string{
		market.ClobTokenIDs[0]: "0.55",
		market.ClobTokenIDs[1]: "0.45",
	})
	defer clob.Close()

	sink := &recordingSink{}
	r := newResolver(t, gamma.URL, clob.URL, 1700000300)
	r.sink = sink

	result, err := r.Resolve(context.Background(), "btc", "5m")
	require.NoError(t, err)

	require.Len(t, sink.records, 1)
	rec := sink.records[0]
	assert.Equal(t, result.Diagnostics.ResolutionID, rec.ID)
	assert.Equal(t, "btc", rec.Asset)
	assert.Equal(t, "5m", rec.Interval)
	assert.True(t, rec.Found)
	assert.Equal(t, market.Slug, rec.MarketSlug)
	assert.Equal(t, 1, rec.CandidatesTried)
}

func TestResolveFreshDiagnosticsPerCall(t *testing.T) {
	market := testutil.CreateUpDownMarket("btc", "5m", 1700000100)
	gamma := testutil.NewMockGammaAPI([]*types.Market{market})
	defer gamma.Close()

	clob := testutil.NewMockClobAPI(map[string]string{
		market.ClobTokenIDs[0]: "0.5",
		market.ClobTokenIDs[1]: "0.5",
	})
	defer clob.Close()

	r := newResolver(t, gamma.URL, clob.URL, 1700000300)

	first, err := r.Resolve(context.Background(), "btc", "5m")
	require.NoError(t, err)
	second, err := r.Resolve(context.Background(), "btc", "5m")
	require.NoError(t, err)

	assert.NotEqual(t, first.Diagnostics.ResolutionID, second.Diagnostics.ResolutionID)
	assert.Len(t, second.Diagnostics.Tried, 1)
}
