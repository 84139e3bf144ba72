// Package suggest finds the closest known name to a mistyped one
package suggest

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// limit is the largest edit distance still worth suggesting for a candidate
func limit(n int) int {
	switch {
	case n <= 4:
		return 1
	case n <= 10:
		return 2
	default:
		return 3
	}
}

// Closest returns the candidate nearest to token, preferring prefix matches. ok is
// false when nothing is close enough.
func Closest(token string, candidates []string) (string, bool) {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return "", false
	}

	type scored struct {
		val  string
		dist int
	}

	var results []scored
	for _, cand := range candidates {
		lower := strings.ToLower(cand)
		switch {
		case lower == token:
			return cand, true
		case strings.HasPrefix(lower, token) && len(token) >= 2:
			results = append(results, scored{val: cand, dist: 0})
		default:
			dist := levenshtein.ComputeDistance(token, lower)
			if dist > limit(len(lower)) {
				continue
			}
			results = append(results, scored{val: cand, dist: dist})
		}
	}
	if len(results) == 0 {
		return "", false
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].dist == results[j].dist {
			return results[i].val < results[j].val
		}
		return results[i].dist < results[j].dist
	})

	return results[0].val, true
}
