package domain

import "time"

type UserRecommendation struct {
	UserID        string `json:"user_id"`
	MutualCount   int    `json:"mutual_count"`
	FollowerCount int    `json:"follower_count"`
}

type ContentRecommendation struct {
	ContentItem
	CoEngagement int     `json:"co_engagement"`
	Score        float64 `json:"score"`
}

type HashtagRecommendation struct {
	Tag        string  `json:"tag"`
	UsageCount int     `json:"usage_count"`
	Score      float64 `json:"score"`
}

// HashtagUse is one occurrence of a hashtag on an approved item.
type HashtagUse struct {
	Tag    string
	UsedAt time.Time
}
