package datasources

import (
	"context"
	"time"

	"github.com/jbeshir/feed-ranking/internal/domain"
)

// ContentRepository combines all content read interfaces.
type ContentRepository interface {
	ApprovedContentFetcher
	CoLikeCounter
	HashtagUsageLister
}

// ApprovedContentFetcher returns approved items matching filter, ordered by
// order, at most limit of them starting at offset. Unapproved items are never
// returned regardless of the filter.
type ApprovedContentFetcher interface {
	FetchApprovedItems(
		ctx context.Context,
		filter domain.ContentFilter,
		order domain.ContentOrder,
		offset, limit int,
	) ([]domain.ContentItem, error)
}

// CoLikeCounter counts, per item, how many of likerIDs have liked it.
// Items nobody in likerIDs liked are absent from the result.
type CoLikeCounter interface {
	CountCoLikes(ctx context.Context, likerIDs, itemIDs []string) (map[string]int, error)
}

// HashtagUsageLister lists hashtag uses on approved items created at or after since,
// newest first.
type HashtagUsageLister interface {
	ListRecentHashtagUses(ctx context.Context, since time.Time, limit int) ([]domain.HashtagUse, error)
}

// NullContentRepository is a null implementation of ContentRepository.
type NullContentRepository struct{}

var _ ContentRepository = NullContentRepository{}

func (NullContentRepository) FetchApprovedItems(
	_ context.Context,
	_ domain.ContentFilter,
	_ domain.ContentOrder,
	_, _ int,
) ([]domain.ContentItem, error) {
	return nil, nil
}

func (NullContentRepository) CountCoLikes(_ context.Context, _, _ []string) (map[string]int, error) {
	return map[string]int{}, nil
}

func (NullContentRepository) ListRecentHashtagUses(
	_ context.Context,
	_ time.Time,
	_ int,
) ([]domain.HashtagUse, error) {
	return nil, nil
}
