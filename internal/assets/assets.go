// Package assets holds the static registries of resolvable assets and
// contract intervals. Both are enumerable and immutable; an unknown symbol
// or label is a configuration error that fails before any network call.
package assets

import (
	"fmt"
	"strings"
	"time"

	"github.com/updownlabs/updown-resolver/pkg/types"
)

// Asset is a resolvable asset: a canonical symbol plus its alias list.
// Aliases are ordered, symbol first, then common full names; candidate
// generation preserves this order so the primary alias is tried first.
type Asset struct {
	Symbol  string
	Aliases []string
}

// Interval is a recurring contract window length.
// Duration must evenly divide a day so windows align to epoch.
type Interval struct {
	Label    string
	Duration time.Duration
	Phrase   string // written-out form used in search queries and scoring
}

// Seconds returns the interval duration in whole seconds.
func (i Interval) Seconds() int64 {
	return int64(i.Duration / time.Second)
}

var assetRegistry = []Asset{
	{Symbol: "btc", Aliases: []string{"btc", "bitcoin"}},
	{Symbol: "eth", Aliases: []string{"eth", "ethereum"}},
	{Symbol: "sol", Aliases: []string{"sol", "solana"}},
	{Symbol: "xrp", Aliases: []string{"xrp", "ripple"}},
	{Symbol: "doge", Aliases: []string{"doge", "dogecoin"}},
}

var intervalRegistry = []Interval{
	{Label: "1m", Duration: time.Minute, Phrase: "1 minute"},
	{Label: "5m", Duration: 5 * time.Minute, Phrase: "5 minute"},
	{Label: "15m", Duration: 15 * time.Minute, Phrase: "15 minute"},
	{Label: "1h", Duration: time.Hour, Phrase: "1 hour"},
	{Label: "4h", Duration: 4 * time.Hour, Phrase: "4 hour"},
	{Label: "1d", Duration: 24 * time.Hour, Phrase: "daily"},
}

// Lookup returns the asset for a symbol (case-insensitive).
func Lookup(symbol string) (Asset, error) {
	normalized := strings.ToLower(strings.TrimSpace(symbol))
	for _, a := range assetRegistry {
		if a.Symbol == normalized {
			return a, nil
		}
	}
	return Asset{}, fmt.Errorf("%w: %q", types.ErrUnknownAsset, symbol)
}

// LookupInterval returns the interval for a label (case-insensitive).
func LookupInterval(label string) (Interval, error) {
	normalized := strings.ToLower(strings.TrimSpace(label))
	for _, i := range intervalRegistry {
		if i.Label == normalized {
			return i, nil
		}
	}
	return Interval{}, fmt.Errorf("%w: %q", types.ErrUnknownInterval, label)
}

// All returns the full asset registry.
func All() []Asset {
	out := make([]Asset, len(assetRegistry))
	copy(out, assetRegistry)
	return out
}

// AllIntervals returns the full interval registry.
func AllIntervals() []Interval {
	out := make([]Interval, len(intervalRegistry))
	copy(out, intervalRegistry)
	return out
}
