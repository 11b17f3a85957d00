package search

import (
	"sort"
	"strings"

	"reelfeed/internal/media"
)

// Query describes the composable feed filters.
type Query struct {
	// Text is the free-form search string; empty means no text filter.
	Text string
	// Folder restricts results to a folder and its descendants; "" matches
	// everything.
	Folder string
	// StartsWith is a case-insensitive filename prefix filter.
	StartsWith string
}

// Filter applies the query to items already ordered newest-first. Without
// text the recency order is preserved; with text, matches are reordered by
// descending score, ties keeping their recency order.
func Filter(items []media.Item, q Query) []media.Item {
	folder := media.NormalizeRelPath(q.Folder)
	prefix := strings.ToLower(strings.TrimSpace(q.StartsWith))
	text := strings.TrimSpace(q.Text)

	filtered := make([]media.Item, 0, len(items))
	for _, it := range items {
		if folder != "" && it.Folder != folder && !strings.HasPrefix(it.Folder, folder+"/") {
			continue
		}
		if prefix != "" && !strings.HasPrefix(strings.ToLower(it.Filename), prefix) {
			continue
		}
		filtered = append(filtered, it)
	}

	if text == "" {
		return filtered
	}

	type scored struct {
		item  media.Item
		score int
	}
	matches := make([]scored, 0, len(filtered))
	for _, it := range filtered {
		if s := Score(text, it.Filename, it.RelPath); s > 0 {
			matches = append(matches, scored{item: it, score: s})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	result := make([]media.Item, len(matches))
	for i, m := range matches {
		result[i] = m.item
	}
	return result
}
