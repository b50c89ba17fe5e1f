package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/feed-ranking/internal/cache"
	"github.com/jbeshir/feed-ranking/internal/datasources"
	"github.com/jbeshir/feed-ranking/internal/domain"
)

// WarmCacheRequest is the request for the WarmCache command.
// This command takes no parameters beyond context.
type WarmCacheRequest struct{}

type WarmCacheResponse struct {
	Warmed int
	Failed int
}

// WarmCacheConfig holds configuration for the cache warming job.
type WarmCacheConfig struct {
	// TrendingPages is how many leading pages of each trending window to precompute.
	TrendingPages int

	// TrendingPageSize should match the page size clients request, since it
	// is part of the cache key.
	TrendingPageSize int

	// HashtagLimits lists the hashtag recommendation limits to precompute.
	// Hashtag results do not depend on the viewer, so one entry serves everyone.
	HashtagLimits []int
}

// WarmCache recomputes the viewer-independent results and writes them through
// the cache, replacing whatever entries were there.
type WarmCache struct {
	Trending Command[TrendingFeedRequest, domain.FeedPage]
	Hashtags Command[RecommendHashtagsRequest, []domain.HashtagRecommendation]
	Config   WarmCacheConfig
}

func NewWarmCache(
	content datasources.ContentRepository,
	resultCache ResultCache,
	policies cache.Policies,
	engine EngineConfig,
	config WarmCacheConfig,
) *WarmCache {
	refresh := refreshingCache{ResultCache: resultCache}

	// The policy is forced on so an entry is written even when serving has
	// caching disabled for the kind.
	trendingPolicy := policies.For(domain.FeedKindTrending)
	trendingPolicy.Enabled = true
	hashtagsPolicy := policies.For(domain.FeedKindRecommendHashtags)
	hashtagsPolicy.Enabled = true

	return &WarmCache{
		Trending: &Cached[TrendingFeedRequest, domain.FeedPage]{
			Next:   NewGetTrendingFeed(content, engine),
			Cache:  refresh,
			Kind:   domain.FeedKindTrending,
			Policy: trendingPolicy,
			Key:    trendingCacheKey,
		},
		Hashtags: &Cached[RecommendHashtagsRequest, []domain.HashtagRecommendation]{
			Next:   NewRecommendHashtags(content, engine),
			Cache:  refresh,
			Kind:   domain.FeedKindRecommendHashtags,
			Policy: hashtagsPolicy,
			Key:    hashtagsCacheKey,
		},
		Config: config,
	}
}

// Execute warms every configured entry. A failed entry is logged and counted
// but does not stop the run.
func (c *WarmCache) Execute(ctx context.Context, _ WarmCacheRequest) (WarmCacheResponse, error) {
	logger := domain.LoggerFromContext(ctx)

	var res WarmCacheResponse
	record := func(err error, attrs ...any) {
		if err != nil {
			logger.ErrorContext(ctx, "failed to warm cache entry", append(attrs, "error", err)...)
			res.Failed++
			return
		}
		res.Warmed++
	}

	for _, window := range domain.ValidTrendingWindows {
		for page := 1; page <= c.Config.TrendingPages; page++ {
			if err := ctx.Err(); err != nil {
				return res, err
			}

			_, err := c.Trending.Execute(ctx, TrendingFeedRequest{
				Window:   window,
				Page:     page,
				PageSize: c.Config.TrendingPageSize,
			})
			record(err, "kind", domain.FeedKindTrending, "window", window, "page", page)
		}
	}

	for _, limit := range c.Config.HashtagLimits {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		_, err := c.Hashtags.Execute(ctx, RecommendHashtagsRequest{ViewerID: "warm-cache", Limit: limit})
		record(err, "kind", domain.FeedKindRecommendHashtags, "limit", limit)
	}

	logger.InfoContext(ctx, "cache warming complete", "warmed_count", res.Warmed, "fail_count", res.Failed)

	if res.Warmed == 0 && res.Failed > 0 {
		return res, fmt.Errorf("all %d cache entries failed to warm", res.Failed)
	}
	return res, nil
}

// refreshingCache never reports a hit, so every lookup recomputes and
// overwrites the stored entry.
type refreshingCache struct {
	ResultCache
}

func (refreshingCache) Get(context.Context, string) ([]byte, bool) {
	return nil, false
}
