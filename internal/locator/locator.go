// Package locator finds the market record behind a (asset, interval, window)
// triple. Two interchangeable strategies exist: deterministic slug guessing
// and fuzzy full-text search. The strategy is a configuration choice made
// once at startup, not per call.
package locator

import (
	"context"
	"fmt"
	"time"

	"github.com/updownlabs/updown-resolver/internal/assets"
	"github.com/updownlabs/updown-resolver/internal/discovery"
	"github.com/updownlabs/updown-resolver/pkg/config"
	"github.com/updownlabs/updown-resolver/pkg/types"
	"go.uber.org/zap"
)

// Strategy locates one tradeable market for the given asset, interval and
// candidate window starts. It records every candidate it tries on diag and
// returns types.ErrExhausted once the candidate space is spent.
type Strategy interface {
	Name() string
	Locate(ctx context.Context, asset assets.Asset, interval assets.Interval, windowStarts []int64, diag *types.Diagnostics) (*types.Market, error)
}

// New returns the strategy selected by cfg.LocatorStrategy.
func New(cfg *config.Config, client *discovery.Client, logger *zap.Logger) (Strategy, error) {
	switch cfg.LocatorStrategy {
	case config.StrategySlug:
		return NewSlugStrategy(client, logger), nil
	case config.StrategySearch:
		return NewSearchStrategy(client, cfg.SearchMinValidated, logger), nil
	default:
		return nil, fmt.Errorf("unknown locator strategy %q", cfg.LocatorStrategy)
	}
}

// observeLookup feeds the per-candidate latency histogram.
func observeLookup(start time.Time) {
	CandidateLookupDurationSeconds.Observe(time.Since(start).Seconds())
}
