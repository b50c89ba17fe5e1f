package command

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jbeshir/feed-ranking/internal/cache"
	"github.com/jbeshir/feed-ranking/internal/command/mocks"
	"github.com/jbeshir/feed-ranking/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mapCache is a ResultCache backed by a map, recording the TTL of each write.
type mapCache struct {
	entries map[string][]byte
	ttls    map[string]time.Duration
}

func newMapCache() *mapCache {
	return &mapCache{entries: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (m *mapCache) Get(_ context.Context, key string) ([]byte, bool) {
	v, ok := m.entries[key]
	return v, ok
}

func (m *mapCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) {
	m.entries[key] = value
	m.ttls[key] = ttl
}

func newCachedTrending(
	next *mocks.MockCommand[TrendingFeedRequest, domain.FeedPage],
	store ResultCache,
	policy cache.Policy,
) *Cached[TrendingFeedRequest, domain.FeedPage] {
	return &Cached[TrendingFeedRequest, domain.FeedPage]{
		Next:   next,
		Cache:  store,
		Kind:   domain.FeedKindTrending,
		Policy: policy,
		Key: func(req TrendingFeedRequest) string {
			return cache.TrendingKey(req.Window, req.Page, req.PageSize)
		},
	}
}

func testTrendingPage() domain.FeedPage {
	return domain.FeedPage{
		Items: []domain.RankedItem{{
			ContentItem: domain.ContentItem{
				ID: "p1", OwnerID: "bob", Category: domain.CategoryPhoto,
				LikesCount: 10, Approved: true, CreatedAt: testNow.Add(-time.Hour),
			},
			Score: 5,
			Rank:  1,
		}},
		Page:     1,
		PageSize: 20,
		Total:    1,
	}
}

func TestCached_MissThenHit(t *testing.T) {
	req := TrendingFeedRequest{Window: domain.TrendingWindow24h, Page: 1, PageSize: 20}
	expected := testTrendingPage()

	next := mocks.NewMockCommand[TrendingFeedRequest, domain.FeedPage](t)
	next.EXPECT().Execute(mock.Anything, req).Return(expected, nil).Once()

	store := newMapCache()
	cmd := newCachedTrending(next, store, cache.Policy{TTL: 5 * time.Minute, Enabled: true})

	first, err := cmd.Execute(context.Background(), req)
	require.NoError(t, err)
	second, err := cmd.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, expected, first)
	assert.Equal(t, expected, second)
	assert.Equal(t, 5*time.Minute, store.ttls[cache.TrendingKey(req.Window, 1, 20)])
}

func TestCached_DisabledPolicyBypassesCache(t *testing.T) {
	req := TrendingFeedRequest{Window: domain.TrendingWindow24h, Page: 1, PageSize: 20}

	next := mocks.NewMockCommand[TrendingFeedRequest, domain.FeedPage](t)
	next.EXPECT().Execute(mock.Anything, req).Return(testTrendingPage(), nil).Twice()

	store := newMapCache()
	cmd := newCachedTrending(next, store, cache.Policy{TTL: 5 * time.Minute, Enabled: false})

	for range 2 {
		_, err := cmd.Execute(context.Background(), req)
		require.NoError(t, err)
	}
	assert.Empty(t, store.entries)
}

func TestCached_ErrorsAreNotCached(t *testing.T) {
	req := TrendingFeedRequest{Window: domain.TrendingWindow24h, Page: 1, PageSize: 20}
	failure := domain.RepositoryUnavailableError{Operation: "fetch_approved_items", Err: errors.New("down")}

	next := mocks.NewMockCommand[TrendingFeedRequest, domain.FeedPage](t)
	next.EXPECT().Execute(mock.Anything, req).Return(domain.FeedPage{}, failure).Once()

	store := newMapCache()
	cmd := newCachedTrending(next, store, cache.Policy{TTL: 5 * time.Minute, Enabled: true})

	_, err := cmd.Execute(context.Background(), req)

	require.Error(t, err)
	assert.True(t, domain.IsRetryable(err))
	assert.Empty(t, store.entries)
}

func TestCached_UndecodableEntryIsRecomputed(t *testing.T) {
	req := TrendingFeedRequest{Window: domain.TrendingWindow24h, Page: 1, PageSize: 20}
	expected := testTrendingPage()

	next := mocks.NewMockCommand[TrendingFeedRequest, domain.FeedPage](t)
	next.EXPECT().Execute(mock.Anything, req).Return(expected, nil).Once()

	store := newMapCache()
	store.entries[cache.TrendingKey(req.Window, 1, 20)] = []byte("{not json")
	cmd := newCachedTrending(next, store, cache.Policy{TTL: time.Minute, Enabled: true})

	page, err := cmd.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, expected, page)
}
