package locator

import (
	"context"
	"fmt"
	"time"

	"github.com/updownlabs/updown-resolver/internal/assets"
	"github.com/updownlabs/updown-resolver/internal/candidates"
	"github.com/updownlabs/updown-resolver/internal/discovery"
	"github.com/updownlabs/updown-resolver/pkg/types"
	"go.uber.org/zap"
)

// SearchStrategy submits natural-language queries to the discovery service,
// accumulates validated records across queries, and picks the best-scoring
// one in a single greedy pass. Query issuing stops early once minValidated
// validator-passing records have accumulated; that is a threshold, not a
// cap, so one query can push the working set past it.
type SearchStrategy struct {
	client       *discovery.Client
	minValidated int
	logger       *zap.Logger
}

// NewSearchStrategy creates the fuzzy-search locator.
func NewSearchStrategy(client *discovery.Client, minValidated int, logger *zap.Logger) *SearchStrategy {
	return &SearchStrategy{
		client:       client,
		minValidated: minValidated,
		logger:       logger,
	}
}

// Name returns the strategy's configuration name.
func (s *SearchStrategy) Name() string {
	return "search"
}

// Locate runs the query list, validates every returned record, and selects
// the highest-scoring candidate. Ties go to the earliest-encountered record.
func (s *SearchStrategy) Locate(
	ctx context.Context,
	asset assets.Asset,
	interval assets.Interval,
	_ []int64,
	diag *types.Diagnostics,
) (*types.Market, error) {
	queries := candidates.Queries(asset, interval)

	var validated []*types.Market
	seen := make(map[string]struct{})

	for _, query := range queries {
		if len(validated) >= s.minValidated {
			break
		}

		diag.Record(query)
		CandidatesTriedTotal.Inc()

		start := time.Now()
		records, err := s.client.SearchMarkets(ctx, query)
		observeLookup(start)

		if err != nil {
			diag.RecordError(err)
			s.logger.Warn("search-query-failed",
				zap.String("query", query),
				zap.Error(err))
			continue
		}

		for i := range records {
			record := &records[i]

			key := record.Slug
			if key == "" {
				key = record.ID
			}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}

			_, err := ValidateMarket(record, false)
			if err != nil {
				diag.RecordError(err)
				ValidationRejectsTotal.Inc()
				continue
			}

			validated = append(validated, record)
		}
	}

	if len(validated) == 0 {
		return nil, fmt.Errorf("%d queries tried: %w", len(queries), types.ErrExhausted)
	}

	// Greedy single-pass selection; strict > keeps the earliest candidate
	// on ties.
	best := validated[0]
	bestScore := ScoreMarket(best, asset, interval)
	for _, m := range validated[1:] {
		score := ScoreMarket(m, asset, interval)
		if score > bestScore {
			best = m
			bestScore = score
		}
	}

	s.logger.Debug("search-candidate-selected",
		zap.String("slug", best.Slug),
		zap.Int("score", bestScore),
		zap.Int("validated", len(validated)))

	return best, nil
}
