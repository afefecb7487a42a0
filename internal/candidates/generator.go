// Package candidates expands (asset aliases x window offsets) into the
// ordered candidate identifiers a resolution attempt works through.
package candidates

import (
	"fmt"
	"strconv"

	"github.com/updownlabs/updown-resolver/internal/assets"
)

// slugMarker is the fixed token joining the alias to the rest of a
// constructed slug.
const slugMarker = "up-or-down"

// Slugs returns the ordered, de-duplicated candidate slugs for one
// resolution attempt. Iteration order encodes priority: outer loop over
// window starts (current, previous, next), inner loop over aliases
// (primary alias first).
func Slugs(asset assets.Asset, interval assets.Interval, windowStarts []int64) []string {
	seen := make(map[string]struct{}, len(windowStarts)*len(asset.Aliases))
	slugs := make([]string, 0, len(windowStarts)*len(asset.Aliases))

	for _, ws := range windowStarts {
		for _, alias := range asset.Aliases {
			slug := fmt.Sprintf("%s-%s-%s-%s", alias, slugMarker, interval.Label, strconv.FormatInt(ws, 10))
			if _, dup := seen[slug]; dup {
				continue
			}
			seen[slug] = struct{}{}
			slugs = append(slugs, slug)
		}
	}

	return slugs
}

// Queries returns the ordered, de-duplicated free-text search phrases for
// the fuzzy strategy. Each alias is combined with the directional phrasings
// and the interval's written-out form; the primary alias comes first.
func Queries(asset assets.Asset, interval assets.Interval) []string {
	directionals := []string{"up or down", "higher or lower"}

	seen := make(map[string]struct{})
	queries := make([]string, 0, len(asset.Aliases)*(len(directionals)+1))

	for _, alias := range asset.Aliases {
		for _, dir := range directionals {
			q := fmt.Sprintf("%s %s %s", alias, dir, interval.Phrase)
			if _, dup := seen[q]; dup {
				continue
			}
			seen[q] = struct{}{}
			queries = append(queries, q)
		}

		q := fmt.Sprintf("%s up or down", alias)
		if _, dup := seen[q]; !dup {
			seen[q] = struct{}{}
			queries = append(queries, q)
		}
	}

	return queries
}
