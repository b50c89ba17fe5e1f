package command

import (
	"context"
	"fmt"
	"sort"

	"github.com/jbeshir/feed-ranking/internal/datasources"
	"github.com/jbeshir/feed-ranking/internal/domain"
)

type RecommendContentRequest struct {
	ViewerID string `json:"viewer_id" validate:"required"`
	Limit    int    `json:"limit" validate:"limit"`
}

// RecommendContent suggests items liked by the people the viewer follows,
// ranked by how many of them liked each item and then by personalized score.
type RecommendContent struct {
	Following datasources.FollowingLister
	Content   datasources.ApprovedContentFetcher
	CoLikes   datasources.CoLikeCounter
	Config    EngineConfig
}

func NewRecommendContent(
	following datasources.FollowingLister,
	content datasources.ContentRepository,
	config EngineConfig,
) *RecommendContent {
	return &RecommendContent{
		Following: following,
		Content:   content,
		CoLikes:   content,
		Config:    config,
	}
}

func (c *RecommendContent) Execute(
	ctx context.Context, req RecommendContentRequest,
) ([]domain.ContentRecommendation, error) {
	now := c.Config.now()
	timeout := c.Config.RepositoryTimeout

	following, err := callRepository(ctx, timeout, "get_following",
		func(ctx context.Context) ([]string, error) {
			return c.Following.GetFollowing(ctx, req.ViewerID)
		})
	if err != nil {
		return nil, fmt.Errorf("listing followed users: %w", err)
	}
	if len(following) == 0 {
		return []domain.ContentRecommendation{}, nil
	}

	filter := domain.ContentFilter{
		CreatedAfter:        now.Add(-domain.RecommendedContentAge),
		ExcludeOwner:        req.ViewerID,
		ExcludeInteractedBy: req.ViewerID,
		LikedByAnyOf:        following,
	}
	items, err := callRepository(ctx, timeout, "fetch_approved_items",
		func(ctx context.Context) ([]domain.ContentItem, error) {
			return c.Content.FetchApprovedItems(ctx, filter, domain.ContentOrderMostEngaged, 0, c.Config.ContentCandidateLimit)
		})
	if err != nil {
		return nil, fmt.Errorf("fetching candidate items: %w", err)
	}

	items = visibleItems(items, filter)
	if len(items) == 0 {
		return []domain.ContentRecommendation{}, nil
	}

	itemIDs := make([]string, 0, len(items))
	for _, item := range items {
		itemIDs = append(itemIDs, item.ID)
	}
	coLikes, err := callRepository(ctx, timeout, "count_co_likes",
		func(ctx context.Context) (map[string]int, error) {
			return c.CoLikes.CountCoLikes(ctx, following, itemIDs)
		})
	if err != nil {
		return nil, fmt.Errorf("counting co-likes: %w", err)
	}

	recs := make([]domain.ContentRecommendation, 0, len(items))
	for _, item := range items {
		recs = append(recs, domain.ContentRecommendation{
			ContentItem:  item,
			CoEngagement: coLikes[item.ID],
			Score:        domain.PersonalizedScore(item, now),
		})
	}

	sort.Slice(recs, func(i, j int) bool {
		a, b := recs[i], recs[j]
		if a.CoEngagement != b.CoEngagement {
			return a.CoEngagement > b.CoEngagement
		}
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID < b.ID
	})

	if len(recs) > req.Limit {
		recs = recs[:req.Limit]
	}
	return recs, nil
}
