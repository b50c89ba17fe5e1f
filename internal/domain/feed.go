package domain

import "time"

type FeedKind string

const (
	FeedKindPersonalized      FeedKind = "personalized"
	FeedKindTrending          FeedKind = "trending"
	FeedKindExplore           FeedKind = "explore"
	FeedKindRecommendUsers    FeedKind = "recommend_users"
	FeedKindRecommendContent  FeedKind = "recommend_content"
	FeedKindRecommendHashtags FeedKind = "recommend_hashtags"
)

type TrendingWindow string

const (
	TrendingWindow1h  TrendingWindow = "1h"
	TrendingWindow6h  TrendingWindow = "6h"
	TrendingWindow12h TrendingWindow = "12h"
	TrendingWindow24h TrendingWindow = "24h"
	TrendingWindow7d  TrendingWindow = "7d"
)

var trendingWindowHours = map[TrendingWindow]int{
	TrendingWindow1h:  1,
	TrendingWindow6h:  6,
	TrendingWindow12h: 12,
	TrendingWindow24h: 24,
	TrendingWindow7d:  168,
}

var ValidTrendingWindows = []TrendingWindow{
	TrendingWindow1h,
	TrendingWindow6h,
	TrendingWindow12h,
	TrendingWindow24h,
	TrendingWindow7d,
}

// Hours returns the hour count for the window and whether the window is known.
func (w TrendingWindow) Hours() (int, bool) {
	h, ok := trendingWindowHours[w]
	return h, ok
}

// Duration returns the window as a duration, or zero for unknown windows.
func (w TrendingWindow) Duration() time.Duration {
	h, _ := w.Hours()
	return time.Duration(h) * time.Hour
}

// Candidate windows for the feeds that do not take a window parameter.
const (
	PersonalizedFeedMaxAge = 7 * 24 * time.Hour
	ExploreFeedMaxAge      = 30 * 24 * time.Hour
	RecommendedContentAge  = 30 * 24 * time.Hour
	HashtagUsageMaxAge     = 7 * 24 * time.Hour
)
