package command

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jbeshir/feed-ranking/internal/datasources/memory"
	"github.com/jbeshir/feed-ranking/internal/datasources/mocks"
	"github.com/jbeshir/feed-ranking/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRecommendUsers_Execute(t *testing.T) {
	cmd := NewRecommendUsers(newTestNetwork(), testEngineConfig())

	cases := []struct {
		name     string
		viewerID string
		limit    int
		expected []domain.UserRecommendation
	}{
		{
			name:     "two_hop_candidates_ranked_by_mutuals",
			viewerID: "alice",
			limit:    2,
			expected: []domain.UserRecommendation{
				{UserID: "dave", MutualCount: 2, FollowerCount: 3},
				{UserID: "erin", MutualCount: 1, FollowerCount: 3},
			},
		},
		{
			name:     "popular_users_fill_remaining_slots",
			viewerID: "alice",
			limit:    10,
			expected: []domain.UserRecommendation{
				{UserID: "dave", MutualCount: 2, FollowerCount: 3},
				{UserID: "erin", MutualCount: 1, FollowerCount: 3},
				{UserID: "henry", MutualCount: 0, FollowerCount: 1},
			},
		},
		{
			name:     "new_user_gets_popular_accounts",
			viewerID: "zoe",
			limit:    2,
			expected: []domain.UserRecommendation{
				{UserID: "dave", MutualCount: 0, FollowerCount: 3},
				{UserID: "erin", MutualCount: 0, FollowerCount: 3},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			recs, err := cmd.Execute(context.Background(), RecommendUsersRequest{
				ViewerID: tc.viewerID, Limit: tc.limit,
			})
			require.NoError(t, err)
			assert.Equal(t, tc.expected, recs)

			for _, rec := range recs {
				assert.NotEqual(t, tc.viewerID, rec.UserID)
				assert.NotContains(t, []string{"bob", "carol"}, rec.UserID)
			}
		})
	}
}

func TestRecommendUsers_DropsStaleCandidates(t *testing.T) {
	following := mocks.NewMockFollowingLister(t)
	candidates := mocks.NewMockFollowCandidateLister(t)
	mutuals := mocks.NewMockMutualFriendCounter(t)
	followers := mocks.NewMockFollowerCounter(t)
	popular := mocks.NewMockPopularUserLister(t)

	following.EXPECT().GetFollowing(mock.Anything, "alice").Return([]string{"bob"}, nil)
	// A candidate list can lag the follow graph; already-followed users must
	// not be suggested again.
	candidates.EXPECT().ListFollowCandidates(mock.Anything, "alice", 100).Return([]string{"bob", "dave", "alice"}, nil)
	mutuals.EXPECT().GetMutualFriendCounts(mock.Anything, "alice", []string{"dave"}).Return(map[string]int{"dave": 1}, nil)
	followers.EXPECT().GetFollowerCount(mock.Anything, "dave").Return(12, nil)

	cmd := &RecommendUsers{
		Following:  following,
		Candidates: candidates,
		Mutuals:    mutuals,
		Followers:  followers,
		Popular:    popular,
		Config:     testEngineConfig(),
	}

	recs, err := cmd.Execute(context.Background(), RecommendUsersRequest{ViewerID: "alice", Limit: 1})

	require.NoError(t, err)
	assert.Equal(t, []domain.UserRecommendation{{UserID: "dave", MutualCount: 1, FollowerCount: 12}}, recs)
}

func TestRecommendUsers_FollowerCountFailure(t *testing.T) {
	following := mocks.NewMockFollowingLister(t)
	candidates := mocks.NewMockFollowCandidateLister(t)
	mutuals := mocks.NewMockMutualFriendCounter(t)
	followers := mocks.NewMockFollowerCounter(t)
	popular := mocks.NewMockPopularUserLister(t)

	following.EXPECT().GetFollowing(mock.Anything, "alice").Return([]string{"bob"}, nil)
	candidates.EXPECT().ListFollowCandidates(mock.Anything, "alice", 100).Return([]string{"dave"}, nil)
	mutuals.EXPECT().GetMutualFriendCounts(mock.Anything, "alice", []string{"dave"}).Return(map[string]int{"dave": 1}, nil)
	followers.EXPECT().GetFollowerCount(mock.Anything, "dave").Return(0, errors.New("session expired"))

	cmd := &RecommendUsers{
		Following:  following,
		Candidates: candidates,
		Mutuals:    mutuals,
		Followers:  followers,
		Popular:    popular,
		Config:     testEngineConfig(),
	}

	_, err := cmd.Execute(context.Background(), RecommendUsersRequest{ViewerID: "alice", Limit: 1})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "counting followers of dave")
	assert.True(t, domain.IsRetryable(err))
}

func TestRecommendUsers_MostFollowedSurvivesCandidateLimit(t *testing.T) {
	repo := memory.New()
	repo.Follow("alice", "mid")
	for i := range 300 {
		repo.Follow("mid", fmt.Sprintf("c%03d", i))
	}
	for i := range 50 {
		repo.Follow(fmt.Sprintf("fan-%02d", i), "c299")
	}

	config := testEngineConfig()
	config.FollowCandidateLimit = 200
	cmd := NewRecommendUsers(repo, config)

	recs, err := cmd.Execute(context.Background(), RecommendUsersRequest{ViewerID: "alice", Limit: 5})

	require.NoError(t, err)
	require.Len(t, recs, 5)
	assert.Equal(t, domain.UserRecommendation{UserID: "c299", MutualCount: 1, FollowerCount: 51}, recs[0])
	assert.Equal(t, "c000", recs[1].UserID)
}
