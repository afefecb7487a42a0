package locator

import (
	"fmt"
	"strings"

	"github.com/updownlabs/updown-resolver/pkg/types"
)

// errNotTradeable marks a record rejected on its tradeability flags.
type errNotTradeable struct {
	slug string
}

func (e *errNotTradeable) Error() string {
	return fmt.Sprintf("market %q is not tradeable", e.slug)
}

// ValidateMarket accepts a record if its flags allow trading and it exposes
// at least two outcome-token ids, and returns the usable token pair.
// Records with more than two tokens are truncated to the first two when
// truncate is set (single-market assumption of the slug strategy); the fuzzy
// strategy extracts the first two without treating extras as an anomaly.
func ValidateMarket(m *types.Market, truncate bool) ([]types.Token, error) {
	if !m.Tradeable() {
		return nil, &errNotTradeable{slug: m.Slug}
	}

	tokens := m.OutcomeTokens()
	if len(tokens) < 2 {
		return nil, &types.MalformedRecordError{
			Slug:   m.Slug,
			Reason: fmt.Sprintf("expected 2 outcome tokens, got %d", len(tokens)),
		}
	}

	if len(tokens) > 2 && !truncate {
		return tokens[:2], nil
	}

	return tokens[:2], nil
}

// AssignDirection maps a validated token pair onto (up, down).
// Outcome labels win when present; otherwise assignment falls back to
// positional order, which the caller must flag in diagnostics because label
// absence is a known correctness gap upstream.
func AssignDirection(tokens []types.Token) (up, down types.Token, positional bool) {
	for i := range tokens {
		switch strings.ToLower(tokens[i].Outcome) {
		case "up", "yes":
			up = tokens[i]
		case "down", "no":
			down = tokens[i]
		}
	}

	if up.TokenID != "" && down.TokenID != "" {
		return up, down, false
	}

	return tokens[0], tokens[1], true
}
