package pricing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/updownlabs/updown-resolver/internal/testutil"
	"go.uber.org/zap"
)

func newTestFetcher(baseURL string) *Fetcher {
	return NewFetcher(newTestClient(baseURL), zap.NewNop())
}

func TestFetchPairBatchSuccess(t *testing.T) {
	clob := testutil.NewMockClobAPI(map[string]string{
		"111": "0.55",
		"222": "0.45",
	})
	defer clob.Close()

	fetcher := newTestFetcher(clob.URL)

	up, down := fetcher.FetchPair(context.Background(), "111", "222")
	require.NotNil(t, up)
	require.NotNil(t, down)
	assert.InDelta(t, 0.55, *up, 1e-9)
	assert.InDelta(t, 0.45, *down, 1e-9)
}

func TestFetchPairBatchFailureFallsBack(t *testing.T) {
	// Batch endpoint is down but per-token lookups work.
	clob := testutil.NewMockClobAPI(map[string]string{
		"111": "0.55",
		"222": "0.45",
	})
	clob.SetFailBatch(true)
	defer clob.Close()

	fetcher := newTestFetcher(clob.URL)

	up, down := fetcher.FetchPair(context.Background(), "111", "222")
	require.NotNil(t, up)
	require.NotNil(t, down)
	assert.InDelta(t, 0.55, *up, 1e-9)
	assert.InDelta(t, 0.45, *down, 1e-9)
}

func TestFetchPairPartialBatch(t *testing.T) {
	// The batch prices one side; the other's per-token fallback also
	// fails, so that side comes back nil without failing the pair.
	clob := testutil.NewMockClobAPI(map[string]string{"111": "0.55"})
	defer clob.Close()

	fetcher := newTestFetcher(clob.URL)

	up, down := fetcher.FetchPair(context.Background(), "111", "222")
	require.NotNil(t, up)
	assert.InDelta(t, 0.55, *up, 1e-9)
	assert.Nil(t, down)
}

func TestFetchPairBatchDownFallbackPartial(t *testing.T) {
	// Batch 500s and only one token has a per-token price: the pair comes
	// back one numeric, one nil.
	clob := testutil.NewMockClobAPI(map[string]string{"111": "0.55"})
	clob.SetFailBatch(true)
	defer clob.Close()

	fetcher := newTestFetcher(clob.URL)

	up, down := fetcher.FetchPair(context.Background(), "111", "222")
	require.NotNil(t, up)
	assert.InDelta(t, 0.55, *up, 1e-9)
	assert.Nil(t, down)
}

func TestFetchPairAllUnavailable(t *testing.T) {
	clob := testutil.NewMockClobAPI(nil)
	clob.SetFailBatch(true)
	defer clob.Close()

	fetcher := newTestFetcher(clob.URL)

	up, down := fetcher.FetchPair(context.Background(), "111", "222")
	assert.Nil(t, up)
	assert.Nil(t, down)
}

func TestFetchPairRejectsOutOfRange(t *testing.T) {
	// Out-of-range batch values trigger the per-token fallback, which
	// serves the same bad value; both must end up nil.
	clob := testutil.NewMockClobAPI(map[string]string{
		"111": "1.5",
		"222": "-0.1",
	})
	defer clob.Close()

	fetcher := newTestFetcher(clob.URL)

	up, down := fetcher.FetchPair(context.Background(), "111", "222")
	assert.Nil(t, up)
	assert.Nil(t, down)
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		raw   string
		want  float64
		valid bool
	}{
		{"0.55", 0.55, true},
		{"0", 0, true},
		{"1", 1, true},
		{"1.0001", 0, false},
		{"-0.5", 0, false},
		{"abc", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, valid := parsePrice(tt.raw)
			assert.Equal(t, tt.valid, valid)
			if tt.valid {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}
