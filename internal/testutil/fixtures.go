package testutil

import (
	"fmt"
	"time"

	"github.com/updownlabs/updown-resolver/pkg/types"
)

func boolPtr(b bool) *bool { return &b }

// CreateUpDownMarket builds a tradeable up-or-down market fixture with two
// outcome tokens. The slug follows the deterministic naming used by the
// candidate generator, e.g. "btc-up-or-down-5m-1700000100".
func CreateUpDownMarket(alias, intervalLabel string, windowStart int64) *types.Market {
	slug := fmt.Sprintf("%s-up-or-down-%s-%d", alias, intervalLabel, windowStart)
	return &types.Market{
		ID:              fmt.Sprintf("market-%s", slug),
		Question:        fmt.Sprintf("%s Up or Down - %s", alias, intervalLabel),
		Slug:            slug,
		Active:          boolPtr(true),
		EnableOrderBook: boolPtr(true),
		Outcomes:        types.StringList{"Up", "Down"},
		ClobTokenIDs:    types.StringList{fmt.Sprintf("%s-up", slug), fmt.Sprintf("%s-down", slug)},
		EndDate:         time.Unix(windowStart, 0).UTC().Add(time.Hour),
	}
}

// CreateClosedMarket builds a market that validation must reject.
func CreateClosedMarket(slug string) *types.Market {
	m := CreateUpDownMarket("btc", "1h", 1700000000)
	m.Slug = slug
	m.ID = "market-" + slug
	m.Closed = true
	return m
}
