package command

import (
	"context"

	"github.com/jbeshir/feed-ranking/internal/datasources"
	"github.com/jbeshir/feed-ranking/internal/domain"
)

type TrendingFeedRequest struct {
	Window   domain.TrendingWindow `json:"window" validate:"required,trending_window"`
	Page     int                   `json:"page" validate:"page"`
	PageSize int                   `json:"page_size" validate:"page_size"`
}

// GetTrendingFeed ranks items created inside the window by engagement velocity.
type GetTrendingFeed struct {
	Content datasources.ApprovedContentFetcher
	Config  EngineConfig
}

func NewGetTrendingFeed(content datasources.ApprovedContentFetcher, config EngineConfig) *GetTrendingFeed {
	return &GetTrendingFeed{
		Content: content,
		Config:  config,
	}
}

func (c *GetTrendingFeed) Execute(ctx context.Context, req TrendingFeedRequest) (domain.FeedPage, error) {
	if _, ok := req.Window.Hours(); !ok {
		return domain.FeedPage{}, domain.InvalidInputError{Field: "window", Reason: "unknown trending window"}
	}

	now := c.Config.now()
	filter := domain.ContentFilter{
		CreatedAfter: now.Add(-req.Window.Duration()),
		ScoreAt:      now,
	}
	return fetchScoredPage(ctx, c.Content, c.Config, filter, domain.ContentOrderTrendingScore, req.Page, req.PageSize)
}
