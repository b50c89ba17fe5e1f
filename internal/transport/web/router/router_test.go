package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jbeshir/feed-ranking/internal/cache"
	"github.com/jbeshir/feed-ranking/internal/command"
	"github.com/jbeshir/feed-ranking/internal/datasources/memory"
	"github.com/jbeshir/feed-ranking/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	repo := memory.New()
	repo.AddPost(domain.ContentItem{
		ID: "bob-1", OwnerID: "bob", Category: domain.CategoryPhoto,
		LikesCount: 10, Approved: true, CreatedAt: now.Add(-time.Hour),
	}, "cats")
	repo.Follow("alice", "bob")

	resultCache := cache.NewResilient(cache.NewMemoryStore(time.Minute), cache.ResilientConfig{
		Timeout:          50 * time.Millisecond,
		FailureThreshold: 3,
		OpenTimeout:      time.Minute,
	})
	queries := command.NewQueries(repo, repo, resultCache, cache.DefaultPolicies(), command.EngineConfig{
		RepositoryTimeout:        time.Second,
		ExplorePoolSize:          100,
		FollowCandidateLimit:     100,
		FollowerCountConcurrency: 2,
		ContentCandidateLimit:    100,
		HashtagUsageLimit:        100,
		Now:                      func() time.Time { return now },
	})

	h, err := MakeRouter(queries, Config{
		RSSFeedBaseURL:      "https://feeds.example.com",
		TrendingCacheMaxAge: 5 * time.Minute,
	}, NewAuthMiddleware([]AuthValidator{NewGatewayValidator(DefaultGatewayHeader)}))
	require.NoError(t, err)
	return h
}

func TestRouter(t *testing.T) {
	h := newTestRouter(t)

	cases := []struct {
		name       string
		path       string
		viewerID   string
		wantStatus int
		wantBody   string
	}{
		{name: "health", path: "/healthz", wantStatus: http.StatusOK},
		{name: "metrics", path: "/metrics", wantStatus: http.StatusOK},
		{name: "trending_is_public", path: "/v1/feeds/trending", wantStatus: http.StatusOK, wantBody: "bob-1"},
		{name: "trending_rss", path: "/v1/feeds/trending/rss?window=6h", wantStatus: http.StatusOK, wantBody: "<rss"},
		{name: "personalized_requires_viewer", path: "/v1/feeds/personalized", wantStatus: http.StatusUnauthorized},
		{name: "personalized", path: "/v1/feeds/personalized", viewerID: "alice", wantStatus: http.StatusOK, wantBody: "bob-1"},
		{name: "page_size_bound", path: "/v1/feeds/personalized?page_size=101", viewerID: "alice", wantStatus: http.StatusBadRequest},
		{name: "explore", path: "/v1/feeds/explore?seed=3", viewerID: "alice", wantStatus: http.StatusOK},
		{name: "recommended_users", path: "/v1/recommendations/users", viewerID: "carol", wantStatus: http.StatusOK, wantBody: "bob"},
		{name: "recommended_content", path: "/v1/recommendations/content", viewerID: "alice", wantStatus: http.StatusOK, wantBody: `"data":[]`},
		{name: "recommended_hashtags", path: "/v1/recommendations/hashtags", viewerID: "alice", wantStatus: http.StatusOK, wantBody: "cats"},
		{name: "unknown_route", path: "/v1/nope", wantStatus: http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if tc.viewerID != "" {
				req.Header.Set(DefaultGatewayHeader, tc.viewerID)
			}
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tc.wantBody)
			}
		})
	}
}

func TestRouter_RequestID(t *testing.T) {
	h := newTestRouter(t)

	t.Run("generated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		_, err := uuid.Parse(rec.Header().Get(requestIDHeader))
		assert.NoError(t, err)
	})

	t.Run("propagated", func(t *testing.T) {
		id := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.Header.Set(requestIDHeader, id)
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)

		assert.Equal(t, id, rec.Header().Get(requestIDHeader))
	})
}

func TestRouter_CORSPreflight(t *testing.T) {
	h := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/v1/feeds/trending", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
