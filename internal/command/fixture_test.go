package command

import (
	"time"

	"github.com/jbeshir/feed-ranking/internal/datasources/memory"
	"github.com/jbeshir/feed-ranking/internal/domain"
)

var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func testEngineConfig() EngineConfig {
	return EngineConfig{
		RepositoryTimeout:        time.Second,
		ExplorePoolSize:          500,
		FollowCandidateLimit:     100,
		FollowerCountConcurrency: 4,
		ContentCandidateLimit:    200,
		HashtagUsageLimit:        1000,
		Now:                      func() time.Time { return testNow },
	}
}

// newTestNetwork builds a small network around viewer "alice", who follows
// bob and carol.
func newTestNetwork() *memory.Repository {
	r := memory.New()

	post := func(id, owner string, category domain.Category, age time.Duration, likes, comments, views int64) domain.ContentItem {
		return domain.ContentItem{
			ID:            id,
			OwnerID:       owner,
			Category:      category,
			MediaURL:      "https://cdn.example.com/" + id,
			LikesCount:    likes,
			CommentsCount: comments,
			ViewsCount:    views,
			Approved:      true,
			CreatedAt:     testNow.Add(-age),
		}
	}

	r.AddPost(post("bob-1", "bob", domain.CategoryPhoto, 48*time.Hour, 100, 10, 500), "sunset")
	r.AddPost(post("carol-1", "carol", domain.CategoryVideo, time.Hour, 1, 0, 5), "sunset", "cats")
	r.AddPost(post("carol-old", "carol", domain.CategoryPhoto, 8*24*time.Hour, 1000, 0, 0))
	r.AddPost(post("dave-1", "dave", domain.CategoryReel, 90*time.Minute, 10000, 0, 0), "cats")
	r.AddPost(post("erin-1", "erin", domain.CategoryPhoto, 30*time.Minute, 10, 0, 0), "cats")
	r.AddPost(post("erin-2", "erin", domain.CategoryReel, 3*time.Hour, 50, 0, 0))
	r.AddPost(post("alice-1", "alice", domain.CategoryPhoto, 2*time.Hour, 3, 0, 0))

	hidden := post("bob-hidden", "bob", domain.CategoryPhoto, 2*time.Hour, 5000, 0, 0)
	hidden.Approved = false
	r.AddPost(hidden, "spam")

	for _, edge := range [][2]string{
		{"alice", "bob"},
		{"alice", "carol"},
		{"bob", "dave"},
		{"bob", "erin"},
		{"carol", "dave"},
		{"frank", "dave"},
		{"frank", "erin"},
		{"gina", "erin"},
		{"frank", "henry"},
	} {
		r.Follow(edge[0], edge[1])
	}

	r.Like("alice", "erin-2")
	r.Like("bob", "dave-1")
	r.Like("carol", "dave-1")
	r.Like("bob", "erin-1")
	r.Like("carol", "bob-1")
	r.View("alice", "erin-1")

	return r
}

func pageIDs(page domain.FeedPage) []string {
	ids := make([]string, 0, len(page.Items))
	for _, item := range page.Items {
		ids = append(ids, item.ID)
	}
	return ids
}
