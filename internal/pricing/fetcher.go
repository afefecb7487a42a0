package pricing

import (
	"context"
	"strconv"

	"go.uber.org/zap"
)

// Fetcher retrieves a price pair for a market's two outcome tokens with a
// fallback chain: one batch call first, then a per-token call for each side
// the batch left unpriced. Price availability and market discovery are
// independent failure axes, so a missing or invalid price becomes nil, never
// an error: a resolution can succeed with one or both prices unavailable.
type Fetcher struct {
	client *Client
	logger *zap.Logger
}

// NewFetcher creates a price fetcher.
func NewFetcher(client *Client, logger *zap.Logger) *Fetcher {
	return &Fetcher{
		client: client,
		logger: logger,
	}
}

// FetchPair returns the prices for the two token ids, nil where no usable
// price could be obtained.
func (f *Fetcher) FetchPair(ctx context.Context, firstID, secondID string) (first, second *float64) {
	batch, err := f.client.Midpoints(ctx, []string{firstID, secondID})
	if err != nil {
		f.logger.Warn("batch-price-fetch-failed", zap.Error(err))
		batch = nil
	}

	first = f.resolvePrice(ctx, batch, firstID)
	second = f.resolvePrice(ctx, batch, secondID)

	return first, second
}

// resolvePrice takes a token's price from the batch result when usable,
// otherwise falls back to a per-token call.
func (f *Fetcher) resolvePrice(ctx context.Context, batch map[string]string, tokenID string) *float64 {
	if raw, ok := batch[tokenID]; ok {
		if price, valid := parsePrice(raw); valid {
			return &price
		}
	}

	FallbackCallsTotal.Inc()

	raw, err := f.client.Midpoint(ctx, tokenID)
	if err != nil {
		f.logger.Warn("per-token-price-fetch-failed",
			zap.String("token-id", tokenID),
			zap.Error(err))
		UnavailablePricesTotal.Inc()
		return nil
	}

	price, valid := parsePrice(raw)
	if !valid {
		f.logger.Warn("unusable-price",
			zap.String("token-id", tokenID),
			zap.String("raw", raw))
		UnavailablePricesTotal.Inc()
		return nil
	}

	return &price
}

// parsePrice parses a decimal-string probability and checks it lies in [0,1].
func parsePrice(raw string) (float64, bool) {
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	if price < 0 || price > 1 {
		return 0, false
	}
	return price, true
}
