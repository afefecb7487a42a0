package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/updownlabs/updown-resolver/internal/discovery"
	"github.com/updownlabs/updown-resolver/internal/locator"
	"github.com/updownlabs/updown-resolver/internal/pricing"
	"github.com/updownlabs/updown-resolver/internal/resolver"
	"github.com/updownlabs/updown-resolver/internal/testutil"
	"github.com/updownlabs/updown-resolver/internal/timesync"
	"github.com/updownlabs/updown-resolver/pkg/types"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T, gammaURL, clobURL string) *ResolveHandler {
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

	res := resolver.New(&resolver.Config{
		Clock:   timesync.LocalClock{},
		Locator: locator.NewSlugStrategy(discoveryClient, logger),
		Fetcher: pricing.NewFetcher(pricingClient, logger),
		Logger:  logger,
	})

	return NewResolveHandler(res, logger)
}

func TestHandleResolveMissingParams(t *testing.T) {
	handler := newTestHandler(t, "http://127.0.0.1:1", "http://127.0.0.1:1")

	tests := []struct {
		name string
		url  string
	}{
		{"no params", "/api/resolve"},
		{"missing interval", "/api/resolve?asset=btc"},
		{"missing asset", "/api/resolve?interval=5m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.HandleResolve(rec, httptest.NewRequest(http.MethodGet, tt.url, nil))

			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var resp ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestHandleResolveUnknownAsset(t *testing.T) {
	handler := newTestHandler(t, "http://127.0.0.1:1", "http://127.0.0.1:1")

	rec := httptest.NewRecorder()
	handler.HandleResolve(rec,
		httptest.NewRequest(http.MethodGet, "/api/resolve?asset=shib&interval=5m", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown asset")
}

func TestHandleResolveNotFoundIsOK(t *testing.T) {
	// Empty discovery: exhaustion comes back as 200 with found=false.
	gamma := testutil.NewMockGammaAPI(nil)
	defer gamma.Close()
	clob := testutil.NewMockClobAPI(nil)
	defer clob.Close()

	handler := newTestHandler(t, gamma.URL, clob.URL)

	rec := httptest.NewRecorder()
	handler.HandleResolve(rec,
		httptest.NewRequest(http.MethodGet, "/api/resolve?asset=btc&interval=5m", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var result types.Result
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
	assert.False(t, result.Found)
	require.NotNil(t, result.Diagnostics)
	assert.NotEmpty(t, result.Diagnostics.Tried)
}

func TestHandleResolveSuccess(t *testing.T) {
	// Seed a market for every window the current wall clock could land on.
	now := time.Now().Unix()
	start := (now / 300) * 300

	var markets []*types.Market
	for _, ws := range []int64{start, start - 300, start + 300} {
		markets = append(markets, testutil.CreateUpDownMarket("btc", "5m", ws))
	}

	gamma := testutil.NewMockGammaAPI(markets)
	defer gamma.Close()

	prices := make(map[string]string)
	for _, m := range markets {
		prices[m.ClobTokenIDs[0]] = "0.55"
		prices[m.ClobTokenIDs[1]] = "0.45"
	}
	clob := testutil.NewMockClobAPI(prices)
	defer clob.Close()

	handler := newTestHandler(t, gamma.URL, clob.URL)

	rec := httptest.NewRecorder()
	handler.HandleResolve(rec,
		httptest.NewRequest(http.MethodGet, "/api/resolve?asset=btc&interval=5m", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var result types.Result
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
	assert.True(t, result.Found)
	require.NotNil(t, result.UpPrice)
	assert.InDelta(t, 0.55, *result.UpPrice, 1e-9)
}
