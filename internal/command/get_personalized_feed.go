package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/feed-ranking/internal/datasources"
	"github.com/jbeshir/feed-ranking/internal/domain"
)

type PersonalizedFeedRequest struct {
	ViewerID string `json:"viewer_id" validate:"required"`
	Page     int    `json:"page" validate:"page"`
	PageSize int    `json:"page_size" validate:"page_size"`
}

// GetPersonalizedFeed ranks recent items from the users the viewer follows by
// engagement minus age in hours.
type GetPersonalizedFeed struct {
	Following datasources.FollowingLister
	Content   datasources.ApprovedContentFetcher
	Config    EngineConfig
}

func NewGetPersonalizedFeed(
	following datasources.FollowingLister,
	content datasources.ApprovedContentFetcher,
	config EngineConfig,
) *GetPersonalizedFeed {
	return &GetPersonalizedFeed{
		Following: following,
		Content:   content,
		Config:    config,
	}
}

func (c *GetPersonalizedFeed) Execute(ctx context.Context, req PersonalizedFeedRequest) (domain.FeedPage, error) {
	now := c.Config.now()

	following, err := callRepository(ctx, c.Config.RepositoryTimeout, "get_following",
		func(ctx context.Context) ([]string, error) {
			return c.Following.GetFollowing(ctx, req.ViewerID)
		})
	if err != nil {
		return domain.FeedPage{}, fmt.Errorf("listing followed users: %w", err)
	}

	if len(following) == 0 {
		return domain.NewFeedPage(nil, req.Page, req.PageSize), nil
	}

	filter := domain.ContentFilter{
		OwnerIn:      following,
		CreatedAfter: now.Add(-domain.PersonalizedFeedMaxAge),
		ScoreAt:      now,
	}
	return fetchScoredPage(ctx, c.Content, c.Config, filter, domain.ContentOrderPersonalizedScore, req.Page, req.PageSize)
}

// fetchScoredPage has the repository order candidates by score and return
// only the requested page, so every candidate in the window is ranked
// whatever its age.
func fetchScoredPage(
	ctx context.Context,
	content datasources.ApprovedContentFetcher,
	config EngineConfig,
	filter domain.ContentFilter,
	order domain.ContentOrder,
	page, pageSize int,
) (domain.FeedPage, error) {
	score, ok := order.Scorer()
	if !ok {
		return domain.FeedPage{}, fmt.Errorf("content order %s is not score based", order)
	}

	offset := domain.Offset(page, pageSize)
	items, err := callRepository(ctx, config.RepositoryTimeout, "fetch_approved_items",
		func(ctx context.Context) ([]domain.ContentItem, error) {
			return content.FetchApprovedItems(ctx, filter, order, offset, pageSize)
		})
	if err != nil {
		return domain.FeedPage{}, fmt.Errorf("fetching candidate items: %w", err)
	}

	ranked := domain.RankItems(visibleItems(items, filter), score, filter.ScoreAt)
	return domain.FeedPageOf(ranked, page, pageSize), nil
}

// visibleItems re-applies the approval, window, and ownership constraints of
// filter to repository output. Ranked output must never contain items the
// filter excludes.
func visibleItems(items []domain.ContentItem, filter domain.ContentFilter) []domain.ContentItem {
	var owners map[string]struct{}
	if filter.OwnerIn != nil {
		owners = make(map[string]struct{}, len(filter.OwnerIn))
		for _, id := range filter.OwnerIn {
			owners[id] = struct{}{}
		}
	}

	visible := make([]domain.ContentItem, 0, len(items))
	for _, item := range items {
		if !item.Approved {
			continue
		}
		if !filter.CreatedAfter.IsZero() && !item.CreatedAt.After(filter.CreatedAfter) {
			continue
		}
		if filter.ExcludeOwner != "" && item.OwnerID == filter.ExcludeOwner {
			continue
		}
		if owners != nil {
			if _, ok := owners[item.OwnerID]; !ok {
				continue
			}
		}
		if filter.Category != "" && item.Category != filter.Category {
			continue
		}
		visible = append(visible, item)
	}
	return visible
}
