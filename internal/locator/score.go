package locator

import (
	"strings"

	"github.com/updownlabs/updown-resolver/internal/assets"
	"github.com/updownlabs/updown-resolver/pkg/types"
)

// Scoring weights. Alias hits dominate because the asset name is the least
// ambiguous feature of a candidate's text.
const (
	aliasWeight       = 5
	directionalWeight = 3
	intervalWeight    = 2
)

var directionalMarkers = []string{"up or down", "up", "down"}

// ScoreMarket assigns a deterministic relevance score to a candidate based
// on the concatenation of its question and slug text. Pure function: the
// same inputs always produce the same score.
func ScoreMarket(m *types.Market, asset assets.Asset, interval assets.Interval) int {
	text := strings.ToLower(m.Question + " " + m.Slug)

	score := 0

	for _, alias := range asset.Aliases {
		if strings.Contains(text, strings.ToLower(alias)) {
			score += aliasWeight
		}
	}

	for _, marker := range directionalMarkers {
		if strings.Contains(text, marker) {
			score += directionalWeight
			break
		}
	}

	for _, variant := range intervalVariants(interval) {
		if strings.Contains(text, variant) {
			score += intervalWeight
			break
		}
	}

	return score
}

// intervalVariants returns the interval-specific phrases a candidate's text
// may contain: the written-out form, its hyphenated form, and the label.
func intervalVariants(interval assets.Interval) []string {
	phrase := strings.ToLower(interval.Phrase)
	return []string{
		phrase,
		strings.ReplaceAll(phrase, " ", "-"),
		strings.ToLower(interval.Label),
	}
}
