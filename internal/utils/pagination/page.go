// Package pagination applies offset/limit paging to already-filtered
// slices. History partitions are filtered in full first, then paged here,
// so the store layer never sees limit/offset.
package pagination

// DefaultLimit is used when the caller does not supply one.
const DefaultLimit = 10

// Page is one window into a filtered result set.
type Page[T any] struct {
	Items      []T  `json:"items"`
	TotalCount int  `json:"totalCount"`
	HasMore    bool `json:"hasMore"`
}

// Apply slices items by offset/limit. A non-positive limit falls back to
// DefaultLimit; a negative offset is treated as 0. Out-of-range offsets
// yield an empty page with the correct total.
func Apply[T any](items []T, limit, offset int) Page[T] {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if offset < 0 {
		offset = 0
	}

	total := len(items)
	if offset >= total {
		return Page[T]{Items: []T{}, TotalCount: total, HasMore: false}
	}

	end := offset + limit
	if end > total {
		end = total
	}

	return Page[T]{
		Items:      items[offset:end],
		TotalCount: total,
		HasMore:    end < total,
	}
}
