package cache

import (
	"testing"
	"time"

	"github.com/jbeshir/feed-ranking/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestKeys(t *testing.T) {
	cases := []struct {
		name     string
		key      string
		expected string
	}{
		{
			name:     "personalized",
			key:      PersonalizedKey("user-1", 2, 20),
			expected: "feed:v1:personalized:user-1:p2:s20",
		},
		{
			name:     "trending",
			key:      TrendingKey(domain.TrendingWindow1h, 1, 50),
			expected: "feed:v1:trending:1h:p1:s50",
		},
		{
			name:     "explore_without_category",
			key:      ExploreKey("user-1", "", 42, 1, 20),
			expected: "feed:v1:explore:user-1:all:42:p1:s20",
		},
		{
			name:     "explore_with_category",
			key:      ExploreKey("user-1", domain.CategoryReel, 42, 1, 20),
			expected: "feed:v1:explore:user-1:reel:42:p1:s20",
		},
		{
			name:     "recommend_users",
			key:      RecommendUsersKey("user-1", 10),
			expected: "feed:v1:recommend_users:user-1:l10",
		},
		{
			name:     "recommend_hashtags_is_global",
			key:      RecommendHashtagsKey(10),
			expected: "feed:v1:recommend_hashtags:global:l10",
		},
		{
			name:     "separator_in_viewer_is_escaped",
			key:      PersonalizedKey("a:p1", 1, 20),
			expected: "feed:v1:personalized:a%3Ap1:p1:s20",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, c.key)
		})
	}
}

func TestKeys_EveryParameterDistinguishes(t *testing.T) {
	base := PersonalizedKey("user-1", 1, 20)
	assert.NotEqual(t, base, PersonalizedKey("user-2", 1, 20))
	assert.NotEqual(t, base, PersonalizedKey("user-1", 2, 20))
	assert.NotEqual(t, base, PersonalizedKey("user-1", 1, 21))

	explore := ExploreKey("user-1", domain.CategoryPhoto, 1, 1, 20)
	assert.NotEqual(t, explore, ExploreKey("user-1", domain.CategoryPhoto, 2, 1, 20))
	assert.NotEqual(t, explore, ExploreKey("user-1", domain.CategoryVideo, 1, 1, 20))
	assert.NotEqual(t, explore, ExploreKey("user-2", domain.CategoryPhoto, 1, 1, 20))
}

func TestDefaultPolicies(t *testing.T) {
	policies := DefaultPolicies()

	assert.Equal(t, 300*time.Second, policies.For(domain.FeedKindPersonalized).TTL)
	assert.Equal(t, 600*time.Second, policies.For(domain.FeedKindTrending).TTL)
	assert.Equal(t, 30*time.Second, policies.For(domain.FeedKindExplore).TTL)
	assert.False(t, policies.For("unknown").Enabled)

	for _, kind := range []domain.FeedKind{
		domain.FeedKindPersonalized,
		domain.FeedKindTrending,
		domain.FeedKindExplore,
		domain.FeedKindRecommendUsers,
		domain.FeedKindRecommendContent,
		domain.FeedKindRecommendHashtags,
	} {
		assert.True(t, policies.For(kind).Enabled, kind)
	}
}
