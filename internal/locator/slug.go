package locator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/updownlabs/updown-resolver/internal/assets"
	"github.com/updownlabs/updown-resolver/internal/candidates"
	"github.com/updownlabs/updown-resolver/internal/discovery"
	"github.com/updownlabs/updown-resolver/pkg/types"
	"go.uber.org/zap"
)

// SlugStrategy guesses deterministic slugs and fetches each by identifier,
// short-circuiting on the first record that validates. A not-found response
// is an expected miss: the next candidate is tried. A transient upstream
// failure is recorded and treated the same way, so one bad response cannot
// sink an otherwise resolvable query.
type SlugStrategy struct {
	client *discovery.Client
	logger *zap.Logger
}

// NewSlugStrategy creates the deterministic-slug locator.
func NewSlugStrategy(client *discovery.Client, logger *zap.Logger) *SlugStrategy {
	return &SlugStrategy{
		client: client,
		logger: logger,
	}
}

// Name returns the strategy's configuration name.
func (s *SlugStrategy) Name() string {
	return "slug"
}

// Locate tries each candidate slug in priority order and returns the first
// validated market.
func (s *SlugStrategy) Locate(
	ctx context.Context,
	asset assets.Asset,
	interval assets.Interval,
	windowStarts []int64,
	diag *types.Diagnostics,
) (*types.Market, error) {
	slugs := candidates.Slugs(asset, interval, windowStarts)

	for _, slug := range slugs {
		diag.Record(slug)
		CandidatesTriedTotal.Inc()

		start := time.Now()
		market, err := s.client.GetMarketBySlug(ctx, slug)
		observeLookup(start)

		if err != nil {
			diag.RecordError(err)

			if errors.Is(err, types.ErrNotFound) {
				s.logger.Debug("candidate-miss", zap.String("slug", slug))
				continue
			}

			// Transient upstream failure: continue the loop.
			s.logger.Warn("candidate-lookup-failed",
				zap.String("slug", slug),
				zap.Error(err))
			continue
		}

		_, err = ValidateMarket(market, true)
		if err != nil {
			diag.RecordError(err)
			ValidationRejectsTotal.Inc()
			s.logger.Debug("candidate-rejected",
				zap.String("slug", slug),
				zap.Error(err))
			continue
		}

		s.logger.Debug("candidate-validated",
			zap.String("slug", market.Slug),
			zap.String("question", market.Question))

		return market, nil
	}

	return nil, fmt.Errorf("%d slugs tried: %w", len(slugs), types.ErrExhausted)
}
