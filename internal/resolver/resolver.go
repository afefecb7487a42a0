// Package resolver sequences one resolution: window math, candidate
// generation, market location, validation, price fetch, result assembly.
// One resolution is strictly sequential; independent resolutions may run in
// parallel because nothing here is shared mutable state.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/updownlabs/updown-resolver/internal/assets"
	"github.com/updownlabs/updown-resolver/internal/locator"
	"github.com/updownlabs/updown-resolver/internal/pricing"
	"github.com/updownlabs/updown-resolver/internal/storage"
	"github.com/updownlabs/updown-resolver/internal/timesync"
	"github.com/updownlabs/updown-resolver/internal/window"
	"github.com/updownlabs/updown-resolver/pkg/types"
	"go.uber.org/zap"
)

// Resolver resolves the current up/down contract for an (asset, interval)
// pair and returns its implied probabilities.
type Resolver struct {
	clock   timesync.Clock
	locator locator.Strategy
	fetcher *pricing.Fetcher
	sink    storage.Storage // optional audit sink
	logger  *zap.Logger
}

// Config holds resolver dependencies.
type Config struct {
	Clock   timesync.Clock
	Locator locator.Strategy
	Fetcher *pricing.Fetcher
	Sink    storage.Storage
	Logger  *zap.Logger
}

// New creates a resolver.
func New(cfg *Config) *Resolver {
	return &Resolver{
		clock:   cfg.Clock,
		locator: cfg.Locator,
		fetcher: cfg.Fetcher,
		sink:    cfg.Sink,
		logger:  cfg.Logger,
	}
}

// Resolve runs one full resolution. Unknown assets or intervals fail fast
// with a configuration error before any network call; all network-dependent
// failures end in a Result with Found=false and a populated diagnostic
// trail, never in an error return.
func (r *Resolver) Resolve(ctx context.Context, assetSymbol, intervalLabel string) (*types.Result, error) {
	asset, err := assets.Lookup(assetSymbol)
	if err != nil {
		return nil, err
	}

	interval, err := assets.LookupInterval(intervalLabel)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	defer func() {
		ResolutionDurationSeconds.Observe(time.Since(start).Seconds())
	}()

	now := r.clock.Now(ctx)
	windowStarts := window.CandidateStarts(now, interval.Seconds())

	diag := &types.Diagnostics{
		ResolutionID: uuid.New().String(),
		Strategy:     r.locator.Name(),
		WindowStart:  windowStarts[0],
	}

	r.logger.Debug("resolution-started",
		zap.String("resolution-id", diag.ResolutionID),
		zap.String("asset", asset.Symbol),
		zap.String("interval", interval.Label),
		zap.Int64("window-start", diag.WindowStart))

	market, err := r.locator.Locate(ctx, asset, interval, windowStarts, diag)
	if err != nil {
		if !errors.Is(err, types.ErrExhausted) {
			// Unexpected locator failure; keep the contract of a
			// found=false result with the trail intact.
			diag.RecordError(err)
		}

		ResolutionsTotal.WithLabelValues("not_found").Inc()
		result := &types.Result{Found: false, Diagnostics: diag}

		r.logger.Info("resolution-exhausted",
			zap.String("resolution-id", diag.ResolutionID),
			zap.String("asset", asset.Symbol),
			zap.String("interval", interval.Label),
			zap.Int("candidates-tried", len(diag.Tried)),
			zap.String("last-error", diag.LastError))

		r.audit(ctx, asset, interval, diag, result, time.Since(start))
		return result, nil
	}

	tokens, err := locator.ValidateMarket(market, true)
	if err != nil {
		// Cannot happen for a market the locator validated, but a result
		// with a trail beats a panic if a strategy misbehaves.
		diag.RecordError(fmt.Errorf("selected market failed validation: %w", err))
		ResolutionsTotal.WithLabelValues("not_found").Inc()
		result := &types.Result{Found: false, Diagnostics: diag}
		r.audit(ctx, asset, interval, diag, result, time.Since(start))
		return result, nil
	}

	up, down, positional := locator.AssignDirection(tokens)
	if positional {
		diag.Note("outcome labels absent; up/down assigned by token position")
	}

	upPrice, downPrice := r.fetcher.FetchPair(ctx, up.TokenID, down.TokenID)
	if upPrice == nil {
		diag.Note("up price unavailable")
	}
	if downPrice == nil {
		diag.Note("down price unavailable")
	}

	result := &types.Result{
		Found:       true,
		MarketTitle: market.Question,
		MarketSlug:  market.Slug,
		UpToken:     up.TokenID,
		DownToken:   down.TokenID,
		UpPrice:     upPrice,
		DownPrice:   downPrice,
		Diagnostics: diag,
	}

	ResolutionsTotal.WithLabelValues("found").Inc()

	r.logger.Info("resolution-complete",
		zap.String("resolution-id", diag.ResolutionID),
		zap.String("market-slug", market.Slug),
		zap.Int("candidates-tried", len(diag.Tried)))

	r.audit(ctx, asset, interval, diag, result, time.Since(start))
	return result, nil
}

// audit forwards the completed resolution to the storage sink, if any.
// Audit failures are logged, never surfaced: persistence is an observer of
// a resolution, not a participant.
func (r *Resolver) audit(
	ctx context.Context,
	asset assets.Asset,
	interval assets.Interval,
	diag *types.Diagnostics,
	result *types.Result,
	took time.Duration,
) {
	if r.sink == nil {
		return
	}

	rec := &storage.ResolutionRecord{
		ID:              diag.ResolutionID,
		Asset:           asset.Symbol,
		Interval:        interval.Label,
		WindowStart:     diag.WindowStart,
		Found:           result.Found,
		MarketSlug:      result.MarketSlug,
		MarketQuestion:  result.MarketTitle,
		UpTokenID:       result.UpToken,
		DownTokenID:     result.DownToken,
		UpPrice:         result.UpPrice,
		DownPrice:       result.DownPrice,
		CandidatesTried: len(diag.Tried),
		LastError:       diag.LastError,
		Duration:        took,
		ResolvedAt:      time.Now(),
	}

	err := r.sink.StoreResolution(ctx, rec)
	if err != nil {
		r.logger.Warn("resolution-audit-failed",
			zap.String("resolution-id", diag.ResolutionID),
			zap.Error(err))
	}
}
