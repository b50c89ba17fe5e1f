package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/feed-ranking/internal/datasources"
	"github.com/jbeshir/feed-ranking/internal/domain"
)

type RecommendHashtagsRequest struct {
	ViewerID string `json:"viewer_id" validate:"required"`
	Limit    int    `json:"limit" validate:"limit"`
}

// RecommendHashtags suggests hashtags by recent usage on approved items, with
// each use decaying by half every HashtagDecayHalfLife. The result does not
// depend on the viewer.
type RecommendHashtags struct {
	Hashtags datasources.HashtagUsageLister
	Config   EngineConfig
}

func NewRecommendHashtags(hashtags datasources.HashtagUsageLister, config EngineConfig) *RecommendHashtags {
	return &RecommendHashtags{
		Hashtags: hashtags,
		Config:   config,
	}
}

func (c *RecommendHashtags) Execute(
	ctx context.Context, req RecommendHashtagsRequest,
) ([]domain.HashtagRecommendation, error) {
	now := c.Config.now()

	uses, err := callRepository(ctx, c.Config.RepositoryTimeout, "list_recent_hashtag_uses",
		func(ctx context.Context) ([]domain.HashtagUse, error) {
			return c.Hashtags.ListRecentHashtagUses(ctx, now.Add(-domain.HashtagUsageMaxAge), c.Config.HashtagUsageLimit)
		})
	if err != nil {
		return nil, fmt.Errorf("listing recent hashtag uses: %w", err)
	}

	ranked := domain.RankHashtags(uses, domain.HashtagDecayHalfLife, now)
	if len(ranked) > req.Limit {
		ranked = ranked[:req.Limit]
	}
	if ranked == nil {
		ranked = []domain.HashtagRecommendation{}
	}
	return ranked, nil
}
