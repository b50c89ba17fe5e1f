package domain

import (
	"time"
)

type ContentItem struct {
	ID            string    `json:"id"`
	OwnerID       string    `json:"owner_id"`
	Category      Category  `json:"category"`
	Caption       string    `json:"caption,omitempty"`
	MediaURL      string    `json:"media_url"`
	ThumbnailURL  string    `json:"thumbnail_url,omitempty"`
	LikesCount    int64     `json:"likes_count"`
	CommentsCount int64     `json:"comments_count"`
	SharesCount   int64     `json:"shares_count"`
	ViewsCount    int64     `json:"views_count"`
	Approved      bool      `json:"approved"`
	CreatedAt     time.Time `json:"created_at"`
}

// AgeHours returns the fractional age of the item at now.
func (c ContentItem) AgeHours(now time.Time) float64 {
	return now.Sub(c.CreatedAt).Hours()
}

type Category string

const (
	CategoryPhoto Category = "photo"
	CategoryVideo Category = "video"
	CategoryReel  Category = "reel"
)

var ValidCategories = []Category{
	CategoryPhoto,
	CategoryVideo,
	CategoryReel,
}

// ContentFilter narrows the candidate set at the data-access boundary.
// Approval is always enforced by repositories and is not optional.
// A nil OwnerIn or LikedByAnyOf means no restriction; an empty non-nil slice
// matches nothing.
type ContentFilter struct {
	OwnerIn             []string
	CreatedAfter        time.Time
	ExcludeOwner        string
	ExcludeInteractedBy string
	LikedByAnyOf        []string
	Category            Category

	// ScoreAt is the reference time for the score orders. It is required
	// when ordering by ContentOrderPersonalizedScore or ContentOrderTrendingScore.
	ScoreAt time.Time
}

type ContentOrder string

const (
	ContentOrderNewest      ContentOrder = "newest"
	ContentOrderMostEngaged ContentOrder = "most_engaged"

	// Score orders sort by the feed scores as of ContentFilter.ScoreAt, then
	// newest first, then by ID, matching RankItems.
	ContentOrderPersonalizedScore ContentOrder = "personalized_score"
	ContentOrderTrendingScore     ContentOrder = "trending_score"
)

// Scorer returns the score a score order sorts by, or false for orders
// that are not score based.
func (o ContentOrder) Scorer() (ScoreFunc, bool) {
	switch o {
	case ContentOrderPersonalizedScore:
		return PersonalizedScore, true
	case ContentOrderTrendingScore:
		return TrendingScore, true
	default:
		return nil, false
	}
}

// RankedItem is a ContentItem placed in a result page.
type RankedItem struct {
	ContentItem
	Score float64 `json:"score"`
	Rank  int     `json:"rank"`
}

type FeedPage struct {
	Items    []RankedItem `json:"items"`
	Page     int          `json:"page"`
	PageSize int          `json:"page_size"`
	Total    int          `json:"total"`
	HasMore  bool         `json:"has_more"`
	Seed     uint64       `json:"seed,omitempty"`
}
