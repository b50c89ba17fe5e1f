package domain

// Page and limit bounds enforced at the query boundary.
const (
	MinPage     = 1
	MinPageSize = 1
	MaxPageSize = 100

	MinRecommendationLimit = 1
	MaxRecommendationLimit = 100
)

// Offset converts a 1-based page number into a row offset.
func Offset(page, pageSize int) int {
	return (page - 1) * pageSize
}

// PageOf slices out the requested page. hasMore is true iff the page is full,
// which can report a false positive when the tail exactly fills the last page.
func PageOf[T any](items []T, page, pageSize int) (pageItems []T, hasMore bool) {
	offset := Offset(page, pageSize)
	if offset >= len(items) {
		return []T{}, false
	}

	end := min(offset+pageSize, len(items))
	pageItems = items[offset:end]
	return pageItems, len(pageItems) == pageSize
}

// NewFeedPage slices a ranked list into a FeedPage and assigns 1-based ranks
// relative to the whole list.
func NewFeedPage(ranked []RankedItem, page, pageSize int) FeedPage {
	items, _ := PageOf(ranked, page, pageSize)
	return FeedPageOf(items, page, pageSize)
}

// FeedPageOf wraps items that already are the requested page, as fetched with
// Offset(page, pageSize) and pageSize from a repository.
func FeedPageOf(items []RankedItem, page, pageSize int) FeedPage {
	offset := Offset(page, pageSize)
	out := make([]RankedItem, len(items))
	for i, item := range items {
		item.Rank = offset + i + 1
		out[i] = item
	}

	return FeedPage{
		Items:    out,
		Page:     page,
		PageSize: pageSize,
		Total:    len(out),
		HasMore:  len(out) == pageSize,
	}
}
