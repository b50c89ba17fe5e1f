package command

import (
	"github.com/jbeshir/feed-ranking/internal/cache"
	"github.com/jbeshir/feed-ranking/internal/datasources"
	"github.com/jbeshir/feed-ranking/internal/domain"
)

// Queries is the entry point for every read this service answers. Each
// command validates its input, consults the cache, and only then computes.
type Queries struct {
	PersonalizedFeed  Command[PersonalizedFeedRequest, domain.FeedPage]
	TrendingFeed      Command[TrendingFeedRequest, domain.FeedPage]
	ExploreFeed       Command[ExploreFeedRequest, domain.FeedPage]
	RecommendUsers    Command[RecommendUsersRequest, []domain.UserRecommendation]
	RecommendContent  Command[RecommendContentRequest, []domain.ContentRecommendation]
	RecommendHashtags Command[RecommendHashtagsRequest, []domain.HashtagRecommendation]
}

func NewQueries(
	content datasources.ContentRepository,
	graph datasources.SocialGraphRepository,
	resultCache ResultCache,
	policies cache.Policies,
	config EngineConfig,
) *Queries {
	return &Queries{
		PersonalizedFeed: NewValidated[PersonalizedFeedRequest, domain.FeedPage](
			&Cached[PersonalizedFeedRequest, domain.FeedPage]{
				Next:   NewGetPersonalizedFeed(graph, content, config),
				Cache:  resultCache,
				Kind:   domain.FeedKindPersonalized,
				Policy: policies.For(domain.FeedKindPersonalized),
				Key: func(req PersonalizedFeedRequest) string {
					return cache.PersonalizedKey(req.ViewerID, req.Page, req.PageSize)
				},
			}),
		TrendingFeed: NewValidated[TrendingFeedRequest, domain.FeedPage](
			&Cached[TrendingFeedRequest, domain.FeedPage]{
				Next:   NewGetTrendingFeed(content, config),
				Cache:  resultCache,
				Kind:   domain.FeedKindTrending,
				Policy: policies.For(domain.FeedKindTrending),
				Key:    trendingCacheKey,
			}),
		ExploreFeed: NewValidated[ExploreFeedRequest, domain.FeedPage](
			&SeedExplore{
				Next: &Cached[ExploreFeedRequest, domain.FeedPage]{
					Next:   NewGetExploreFeed(content, config),
					Cache:  resultCache,
					Kind:   domain.FeedKindExplore,
					Policy: policies.For(domain.FeedKindExplore),
					Key: func(req ExploreFeedRequest) string {
						return cache.ExploreKey(req.ViewerID, req.Category, req.Seed, req.Page, req.PageSize)
					},
				},
			}),
		RecommendUsers: NewValidated[RecommendUsersRequest, []domain.UserRecommendation](
			&Cached[RecommendUsersRequest, []domain.UserRecommendation]{
				Next:   NewRecommendUsers(graph, config),
				Cache:  resultCache,
				Kind:   domain.FeedKindRecommendUsers,
				Policy: policies.For(domain.FeedKindRecommendUsers),
				Key: func(req RecommendUsersRequest) string {
					return cache.RecommendUsersKey(req.ViewerID, req.Limit)
				},
			}),
		RecommendContent: NewValidated[RecommendContentRequest, []domain.ContentRecommendation](
			&Cached[RecommendContentRequest, []domain.ContentRecommendation]{
				Next:   NewRecommendContent(graph, content, config),
				Cache:  resultCache,
				Kind:   domain.FeedKindRecommendContent,
				Policy: policies.For(domain.FeedKindRecommendContent),
				Key: func(req RecommendContentRequest) string {
					return cache.RecommendContentKey(req.ViewerID, req.Limit)
				},
			}),
		RecommendHashtags: NewValidated[RecommendHashtagsRequest, []domain.HashtagRecommendation](
			&Cached[RecommendHashtagsRequest, []domain.HashtagRecommendation]{
				Next:   NewRecommendHashtags(content, config),
				Cache:  resultCache,
				Kind:   domain.FeedKindRecommendHashtags,
				Policy: policies.For(domain.FeedKindRecommendHashtags),
				Key:    hashtagsCacheKey,
			}),
	}
}

func trendingCacheKey(req TrendingFeedRequest) string {
	return cache.TrendingKey(req.Window, req.Page, req.PageSize)
}

func hashtagsCacheKey(req RecommendHashtagsRequest) string {
	return cache.RecommendHashtagsKey(req.Limit)
}
