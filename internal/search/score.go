package search

import (
	"regexp"
	"strings"
)

var tokenSplit = regexp.MustCompile(`[\s_\-.]+`)

// Score ranks how well a query matches an item. Exact filename matches rank
// highest, then filename substrings, then path substrings; shorter targets
// beat longer ones at the same tier. Queries that match neither directly are
// split on whitespace, underscores, hyphens, and dots, and each token
// contributes independently.
func Score(query, filename, relPath string) int {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return 0
	}
	f := strings.ToLower(filename)
	r := strings.ToLower(relPath)

	if q == f {
		return 1000
	}
	if strings.Contains(f, q) {
		return 800 - (len(f) - len(q))
	}
	if strings.Contains(r, q) {
		return 500 - (len(r) - len(q))
	}

	score := 0
	for _, token := range tokenSplit.Split(q, -1) {
		if token == "" {
			continue
		}
		switch {
		case strings.Contains(f, token):
			score += 120
		case strings.Contains(r, token):
			score += 60
		}
	}
	return score
}
