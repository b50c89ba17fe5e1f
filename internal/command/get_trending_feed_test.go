package command

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jbeshir/feed-ranking/internal/datasources/memory"
	"github.com/jbeshir/feed-ranking/internal/datasources/mocks"
	"github.com/jbeshir/feed-ranking/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetTrendingFeed_Windows(t *testing.T) {
	repo := newTestNetwork()
	cmd := NewGetTrendingFeed(repo, testEngineConfig())

	cases := []struct {
		window   domain.TrendingWindow
		expected []string
	}{
		{window: domain.TrendingWindow1h, expected: []string{"erin-1"}},
		{window: domain.TrendingWindow6h, expected: []string{"dave-1", "erin-2", "erin-1", "alice-1", "carol-1"}},
		{window: domain.TrendingWindow7d, expected: []string{"dave-1", "erin-2", "erin-1", "bob-1", "alice-1", "carol-1"}},
	}

	for _, tc := range cases {
		t.Run(string(tc.window), func(t *testing.T) {
			page, err := cmd.Execute(context.Background(), TrendingFeedRequest{
				Window: tc.window, Page: 1, PageSize: 20,
			})
			require.NoError(t, err)

			assert.Equal(t, tc.expected, pageIDs(page))
			for _, item := range page.Items {
				assert.True(t, item.CreatedAt.After(testNow.Add(-tc.window.Duration())),
					"%s is outside the %s window", item.ID, tc.window)
				assert.True(t, item.Approved)
			}
			for i := 1; i < len(page.Items); i++ {
				assert.GreaterOrEqual(t, page.Items[i-1].Score, page.Items[i].Score)
			}
		})
	}
}

func TestGetTrendingFeed_ExcludesItemsOutsideWindow(t *testing.T) {
	// dave-1 is 90 minutes old and by far the most engaged item.
	cmd := NewGetTrendingFeed(newTestNetwork(), testEngineConfig())

	page, err := cmd.Execute(context.Background(), TrendingFeedRequest{
		Window: domain.TrendingWindow1h, Page: 1, PageSize: 20,
	})
	require.NoError(t, err)
	assert.NotContains(t, pageIDs(page), "dave-1")
}

func TestGetTrendingFeed_RefiltersRepositoryOutput(t *testing.T) {
	content := mocks.NewMockApprovedContentFetcher(t)
	content.EXPECT().
		FetchApprovedItems(mock.Anything, mock.Anything, domain.ContentOrderTrendingScore, 0, 20).
		Return([]domain.ContentItem{
			{ID: "fresh", LikesCount: 5, Approved: true, CreatedAt: testNow.Add(-10 * time.Minute)},
			{ID: "stale", LikesCount: 500, Approved: true, CreatedAt: testNow.Add(-2 * time.Hour)},
			{ID: "hidden", LikesCount: 500, Approved: false, CreatedAt: testNow.Add(-10 * time.Minute)},
		}, nil)

	cmd := NewGetTrendingFeed(content, testEngineConfig())
	page, err := cmd.Execute(context.Background(), TrendingFeedRequest{
		Window: domain.TrendingWindow1h, Page: 1, PageSize: 20,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"fresh"}, pageIDs(page))
}

func TestGetTrendingFeed_Errors(t *testing.T) {
	t.Run("unknown_window", func(t *testing.T) {
		content := mocks.NewMockApprovedContentFetcher(t)
		cmd := NewGetTrendingFeed(content, testEngineConfig())

		_, err := cmd.Execute(context.Background(), TrendingFeedRequest{
			Window: "2h", Page: 1, PageSize: 20,
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.False(t, domain.IsRetryable(err))
	})

	t.Run("repository_failure", func(t *testing.T) {
		content := mocks.NewMockApprovedContentFetcher(t)
		content.EXPECT().
			FetchApprovedItems(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("too many connections"))

		cmd := NewGetTrendingFeed(content, testEngineConfig())
		_, err := cmd.Execute(context.Background(), TrendingFeedRequest{
			Window: domain.TrendingWindow24h, Page: 1, PageSize: 20,
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrRepositoryUnavailable)
		assert.True(t, domain.IsRetryable(err))
	})
}

func TestGetTrendingFeed_ViewDrivenItemOutranksManyLikedItems(t *testing.T) {
	repo := memory.New()
	for i := range 1000 {
		repo.AddPost(domain.ContentItem{
			ID: fmt.Sprintf("old-%04d", i), OwnerID: "bob", Category: domain.CategoryPhoto, LikesCount: 1,
			Approved: true, CreatedAt: testNow.Add(-20 * time.Hour),
		})
	}
	repo.AddPost(domain.ContentItem{
		ID: "viral", OwnerID: "carol", Category: domain.CategoryReel, ViewsCount: 10000,
		Approved: true, CreatedAt: testNow.Add(-10 * time.Minute),
	})

	cmd := NewGetTrendingFeed(repo, testEngineConfig())
	page, err := cmd.Execute(context.Background(), TrendingFeedRequest{
		Window: domain.TrendingWindow24h, Page: 1, PageSize: 3,
	})

	require.NoError(t, err)
	require.NotEmpty(t, page.Items)
	assert.Equal(t, "viral", page.Items[0].ID)
	assert.InDelta(t, 923.0769, page.Items[0].Score, 0.001)
	assert.True(t, page.HasMore)
}
