package command

import (
	"context"
	"fmt"
	"sort"

	"github.com/jbeshir/feed-ranking/internal/datasources"
	"github.com/jbeshir/feed-ranking/internal/domain"
	"golang.org/x/sync/errgroup"
)

type RecommendUsersRequest struct {
	ViewerID string `json:"viewer_id" validate:"required"`
	Limit    int    `json:"limit" validate:"limit"`
}

// RecommendUsers suggests accounts to follow. Two-hop candidates are ranked by
// how many of the viewer's followees follow them, then by follower count;
// popular accounts fill any remaining slots.
type RecommendUsers struct {
	Following  datasources.FollowingLister
	Candidates datasources.FollowCandidateLister
	Mutuals    datasources.MutualFriendCounter
	Followers  datasources.FollowerCounter
	Popular    datasources.PopularUserLister
	Config     EngineConfig
}

func NewRecommendUsers(graph datasources.SocialGraphRepository, config EngineConfig) *RecommendUsers {
	return &RecommendUsers{
		Following:  graph,
		Candidates: graph,
		Mutuals:    graph,
		Followers:  graph,
		Popular:    graph,
		Config:     config,
	}
}

func (c *RecommendUsers) Execute(
	ctx context.Context, req RecommendUsersRequest,
) ([]domain.UserRecommendation, error) {
	timeout := c.Config.RepositoryTimeout

	following, err := callRepository(ctx, timeout, "get_following",
		func(ctx context.Context) ([]string, error) {
			return c.Following.GetFollowing(ctx, req.ViewerID)
		})
	if err != nil {
		return nil, fmt.Errorf("listing followed users: %w", err)
	}

	excluded := make(map[string]struct{}, len(following)+1)
	excluded[req.ViewerID] = struct{}{}
	for _, id := range following {
		excluded[id] = struct{}{}
	}

	candidates, err := callRepository(ctx, timeout, "list_follow_candidates",
		func(ctx context.Context) ([]string, error) {
			return c.Candidates.ListFollowCandidates(ctx, req.ViewerID, c.Config.FollowCandidateLimit)
		})
	if err != nil {
		return nil, fmt.Errorf("listing follow candidates: %w", err)
	}
	candidates = withoutExcluded(candidates, excluded)

	mutuals := map[string]int{}
	if len(candidates) > 0 {
		mutuals, err = callRepository(ctx, timeout, "get_mutual_friend_counts",
			func(ctx context.Context) (map[string]int, error) {
				return c.Mutuals.GetMutualFriendCounts(ctx, req.ViewerID, candidates)
			})
		if err != nil {
			return nil, fmt.Errorf("counting mutual friends: %w", err)
		}
	}

	if len(candidates) < req.Limit {
		for _, id := range candidates {
			excluded[id] = struct{}{}
		}
		excludeIDs := make([]string, 0, len(excluded))
		for id := range excluded {
			excludeIDs = append(excludeIDs, id)
		}
		sort.Strings(excludeIDs)

		popular, err := callRepository(ctx, timeout, "list_popular_users",
			func(ctx context.Context) ([]string, error) {
				return c.Popular.ListPopularUsers(ctx, excludeIDs, req.Limit-len(candidates))
			})
		if err != nil {
			return nil, fmt.Errorf("listing popular users: %w", err)
		}
		candidates = append(candidates, withoutExcluded(popular, excluded)...)
	}

	followerCounts, err := c.followerCounts(ctx, candidates)
	if err != nil {
		return nil, err
	}

	recs := make([]domain.UserRecommendation, 0, len(candidates))
	for i, id := range candidates {
		recs = append(recs, domain.UserRecommendation{
			UserID:        id,
			MutualCount:   mutuals[id],
			FollowerCount: followerCounts[i],
		})
	}

	sort.Slice(recs, func(i, j int) bool {
		if recs[i].MutualCount != recs[j].MutualCount {
			return recs[i].MutualCount > recs[j].MutualCount
		}
		if recs[i].FollowerCount != recs[j].FollowerCount {
			return recs[i].FollowerCount > recs[j].FollowerCount
		}
		return recs[i].UserID < recs[j].UserID
	})

	if len(recs) > req.Limit {
		recs = recs[:req.Limit]
	}
	return recs, nil
}

// followerCounts looks up follower counts concurrently; result i belongs to userIDs[i].
func (c *RecommendUsers) followerCounts(ctx context.Context, userIDs []string) ([]int, error) {
	counts := make([]int, len(userIDs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(c.Config.FollowerCountConcurrency, 1))
	for i, id := range userIDs {
		g.Go(func() error {
			count, err := callRepository(gctx, c.Config.RepositoryTimeout, "get_follower_count",
				func(ctx context.Context) (int, error) {
					return c.Followers.GetFollowerCount(ctx, id)
				})
			if err != nil {
				return fmt.Errorf("counting followers of %s: %w", id, err)
			}
			counts[i] = count
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return counts, nil
}

// withoutExcluded drops excluded and duplicate IDs, keeping order.
func withoutExcluded(ids []string, excluded map[string]struct{}) []string {
	seen := make(map[string]struct{}, len(ids))
	kept := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := excluded[id]; ok {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		kept = append(kept, id)
	}
	return kept
}
