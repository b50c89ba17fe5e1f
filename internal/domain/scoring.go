package domain

import (
	"sort"
	"time"
)

// Personalized feed weights. Recency is subtracted linearly in hours, so very
// old items can still surface when their engagement is high enough.
const (
	PersonalizedLikeWeight    = 1.0
	PersonalizedCommentWeight = 2.0
	PersonalizedShareWeight   = 3.0
	PersonalizedViewWeight    = 0.1
)

// Trending (velocity) weights. The +2 hour denominator offset caps the
// advantage of items that are only seconds old.
const (
	TrendingLikeWeight     = 1.5
	TrendingCommentWeight  = 3.0
	TrendingShareWeight    = 5.0
	TrendingViewWeight     = 0.2
	TrendingAgeOffsetHours = 2.0
)

// ScoreFunc scores an item as of now.
type ScoreFunc func(item ContentItem, now time.Time) float64

// PersonalizedScore is likes*1 + comments*2 + shares*3 + views*0.1 - ageHours.
func PersonalizedScore(item ContentItem, now time.Time) float64 {
	return float64(item.LikesCount)*PersonalizedLikeWeight +
		float64(item.CommentsCount)*PersonalizedCommentWeight +
		float64(item.SharesCount)*PersonalizedShareWeight +
		float64(item.ViewsCount)*PersonalizedViewWeight -
		item.AgeHours(now)
}

// TrendingScore is (likes*1.5 + comments*3 + shares*5 + views*0.2) / (ageHours + 2).
func TrendingScore(item ContentItem, now time.Time) float64 {
	engagement := float64(item.LikesCount)*TrendingLikeWeight +
		float64(item.CommentsCount)*TrendingCommentWeight +
		float64(item.SharesCount)*TrendingShareWeight +
		float64(item.ViewsCount)*TrendingViewWeight
	return engagement / (item.AgeHours(now) + TrendingAgeOffsetHours)
}

// RankItems scores every item and sorts by score descending, breaking ties by
// newest CreatedAt and then by ID so the ordering is total and repeatable.
// Rank is left zero; it is assigned per page by NewFeedPage.
func RankItems(items []ContentItem, score ScoreFunc, now time.Time) []RankedItem {
	ranked := make([]RankedItem, 0, len(items))
	for _, item := range items {
		ranked = append(ranked, RankedItem{
			ContentItem: item,
			Score:       score(item, now),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return rankedLess(ranked[i], ranked[j])
	})

	return ranked
}

func rankedLess(a, b RankedItem) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID < b.ID
}
