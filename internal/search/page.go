package search

import "reelfeed/internal/media"

// Page is one offset/limit window over a filtered result list.
type Page struct {
	Total  int
	Offset int
	Limit  int
	Items  []media.Item
}

// Paginate slices a window out of the results. Out-of-range offsets yield an
// empty page with the correct total.
func Paginate(items []media.Item, offset, limit int) Page {
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}
	page := Page{Total: len(items), Offset: offset, Limit: limit}
	if offset >= len(items) {
		return page
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	page.Items = items[offset:end]
	return page
}
