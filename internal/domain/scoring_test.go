package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersonalizedScore(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		item     ContentItem
		expected float64
	}{
		{
			name: "two_day_old_popular_post",
			item: ContentItem{
				LikesCount: 100, CommentsCount: 10, ViewsCount: 500,
				CreatedAt: now.Add(-48 * time.Hour),
			},
			expected: 122,
		},
		{
			name: "one_hour_old_quiet_post",
			item: ContentItem{
				LikesCount: 1, ViewsCount: 5,
				CreatedAt: now.Add(-time.Hour),
			},
			expected: 0.5,
		},
		{
			name: "shares_weigh_three",
			item: ContentItem{
				SharesCount: 10,
				CreatedAt:   now,
			},
			expected: 30,
		},
		{
			name: "old_item_goes_negative",
			item: ContentItem{
				LikesCount: 10,
				CreatedAt:  now.Add(-100 * time.Hour),
			},
			expected: -90,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.InDelta(t, c.expected, PersonalizedScore(c.item, now), 0.0001)
		})
	}
}

func TestTrendingScore(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		item     ContentItem
		expected float64
	}{
		{
			name:     "brand_new_item_uses_offset",
			item:     ContentItem{LikesCount: 10, CreatedAt: now},
			expected: 15.0 / 2.0,
		},
		{
			name: "all_counters",
			item: ContentItem{
				LikesCount: 2, CommentsCount: 1, SharesCount: 1, ViewsCount: 10,
				CreatedAt: now.Add(-2 * time.Hour),
			},
			// (3 + 3 + 5 + 2) / (2 + 2)
			expected: 13.0 / 4.0,
		},
		{
			name:     "no_engagement",
			item:     ContentItem{CreatedAt: now.Add(-time.Hour)},
			expected: 0,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.InDelta(t, c.expected, TrendingScore(c.item, now), 0.0001)
		})
	}
}

func TestRankItems_Ordering(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	items := []ContentItem{
		{ID: "c", LikesCount: 1, ViewsCount: 5, CreatedAt: now.Add(-time.Hour)},
		{ID: "b", LikesCount: 100, CommentsCount: 10, ViewsCount: 500, CreatedAt: now.Add(-48 * time.Hour)},
		// Same score as "e" but newer, so it wins the tie.
		{ID: "d", LikesCount: 10, CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "e", LikesCount: 9, CreatedAt: now.Add(-1 * time.Hour)},
		// Identical to "d" in score and age; ID breaks the tie.
		{ID: "a", LikesCount: 10, CreatedAt: now.Add(-2 * time.Hour)},
	}

	ranked := RankItems(items, PersonalizedScore, now)
	ids := make([]string, 0, len(ranked))
	for _, r := range ranked {
		ids = append(ids, r.ID)
	}

	assert.Equal(t, []string{"b", "e", "a", "d", "c"}, ids)
	assert.InDelta(t, 122, ranked[0].Score, 0.0001)
}

func TestRankItems_Deterministic(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	var items []ContentItem
	for i := range 50 {
		items = append(items, ContentItem{
			ID:         string(rune('A'+i%26)) + string(rune('a'+i/26)),
			LikesCount: int64(i % 7),
			CreatedAt:  now.Add(-time.Duration(i%5) * time.Hour),
		})
	}

	first := RankItems(items, TrendingScore, now)
	second := RankItems(items, TrendingScore, now)
	assert.Equal(t, first, second)
}

func TestRankItems_LikesMonotonicity(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	base := []ContentItem{
		{ID: "x", LikesCount: 5, CreatedAt: now.Add(-3 * time.Hour)},
		{ID: "y", LikesCount: 8, CommentsCount: 1, CreatedAt: now.Add(-1 * time.Hour)},
		{ID: "z", LikesCount: 20, CreatedAt: now.Add(-10 * time.Hour)},
	}

	position := func(items []ContentItem, score ScoreFunc, id string) int {
		for i, r := range RankItems(items, score, now) {
			if r.ID == id {
				return i
			}
		}
		require.FailNow(t, "item not ranked", id)
		return -1
	}

	for _, score := range []ScoreFunc{PersonalizedScore, TrendingScore} {
		prev := position(base, score, "x")
		for likes := int64(6); likes < 40; likes++ {
			boosted := append([]ContentItem(nil), base...)
			boosted[0].LikesCount = likes
			pos := position(boosted, score, "x")
			assert.LessOrEqual(t, pos, prev, "likes=%d", likes)
			prev = pos
		}
	}
}

func TestContentOrder_Scorer(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	item := ContentItem{LikesCount: 10, ViewsCount: 100, CreatedAt: now.Add(-2 * time.Hour)}

	personalized, ok := ContentOrderPersonalizedScore.Scorer()
	require.True(t, ok)
	assert.InDelta(t, PersonalizedScore(item, now), personalized(item, now), 1e-9)

	trending, ok := ContentOrderTrendingScore.Scorer()
	require.True(t, ok)
	assert.InDelta(t, TrendingScore(item, now), trending(item, now), 1e-9)

	for _, order := range []ContentOrder{"", ContentOrderNewest, ContentOrderMostEngaged} {
		_, ok := order.Scorer()
		assert.False(t, ok, order)
	}
}
