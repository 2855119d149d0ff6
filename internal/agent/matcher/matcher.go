// Package matcher fuzzy-matches free-text phrases against trip and route
// records fetched from the backend. Match priority: exact normalized name,
// then substring (first hit in backend iteration order), then similarity
// search with a 0.6 cutoff.
package matcher

import (
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"

	"movi-agent/internal/model"
)

// SimilarityCutoff is the minimum normalized similarity (0-1 scale) for the
// fuzzy pass. Candidates below it are not matches.
const SimilarityCutoff = 0.6

// entry pairs a normalized key with the index of its source record. Entries
// stay in insertion order: the substring and fuzzy passes scan candidates in
// backend iteration order, which makes matching deterministic.
type entry struct {
	key string
	idx int
}

// lookup runs the three match passes over the candidate keys and returns the
// index of the matched record, or -1. exact is keyed last-write-wins, so
// duplicate display names are not an error.
func lookup(query string, entries []entry, exact map[string]int) int {
	if query == "" || len(entries) == 0 {
		return -1
	}

	// 1. Exact.
	if idx, ok := exact[query]; ok {
		return idx
	}

	// 2. Substring, either direction, first hit wins.
	for _, e := range entries {
		if strings.Contains(e.key, query) || strings.Contains(query, e.key) {
			return e.idx
		}
	}

	// 3. Fuzzy: best similarity at or above the cutoff. Strictly-greater
	// comparison keeps ties resolved by backend order.
	bestIdx := -1
	bestScore := 0.0
	for _, e := range entries {
		score := Similarity(query, e.key)
		if score >= SimilarityCutoff && score > bestScore {
			bestIdx = e.idx
			bestScore = score
		}
	}
	return bestIdx
}

// Trip matches text against the trips' display names. Returns nil when there
// is no match; empty text or an empty candidate set is just "no match".
func Trip(text string, trips []model.Trip) *model.Trip {
	query := Normalize(text)
	entries := make([]entry, 0, len(trips))
	exact := make(map[string]int, len(trips))
	for i, t := range trips {
		key := Normalize(t.DisplayName)
		if key == "" {
			continue
		}
		entries = append(entries, entry{key: key, idx: i})
		exact[key] = i
	}

	if idx := lookup(query, entries, exact); idx >= 0 {
		return &trips[idx]
	}
	return nil
}

// Route matches text against route display names and numeric identifiers.
func Route(text string, routes []model.Route) *model.Route {
	query := Normalize(text)
	entries := make([]entry, 0, len(routes)*2)
	exact := make(map[string]int, len(routes)*2)
	for i, r := range routes {
		for _, key := range []string{Normalize(r.DisplayName), strconv.Itoa(r.RouteID)} {
			if key == "" {
				continue
			}
			entries = append(entries, entry{key: key, idx: i})
			exact[key] = i
		}
	}

	if idx := lookup(query, entries, exact); idx >= 0 {
		return &routes[idx]
	}
	return nil
}

// Normalize lowercases, collapses internal whitespace runs and trims.
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// Similarity is a normalized Levenshtein ratio on a 0-1 scale: 1 means equal,
// 0 means nothing in common.
func Similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	longest := len([]rune(a))
	if lb := len([]rune(b)); lb > longest {
		longest = lb
	}
	if longest == 0 {
		return 0
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1 - float64(dist)/float64(longest)
}
