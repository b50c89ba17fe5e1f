package router

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/jbeshir/feed-ranking/internal/command"
	"github.com/jbeshir/feed-ranking/internal/transport/web/controller"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Config struct {
	RSSFeedBaseURL     string
	RSSFeedAuthorName  string
	RSSFeedAuthorEmail string

	// TrendingCacheMaxAge is advertised on the public trending endpoints.
	TrendingCacheMaxAge time.Duration

	AllowedOrigins []string

	// RateLimitRequests per RateLimitWindow per client IP. Zero disables it.
	RateLimitRequests int
	RateLimitWindow   time.Duration
}

func MakeRouter(
	queries *command.Queries,
	cfg Config,
	authMiddleware func(http.Handler) http.Handler,
) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(accessLogMiddleware)

	r.Handle("/healthz", controller.Health{}).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := r.PathPrefix("/v1").Subrouter()
	api.Use(rateLimitMiddleware(cfg.RateLimitRequests, cfg.RateLimitWindow))
	api.Use(authMiddleware)

	api.Handle("/feeds/personalized", requireAuthMiddleware(controller.PersonalizedFeed{
		Command: queries.PersonalizedFeed,
	})).Methods(http.MethodGet)

	api.Handle("/feeds/trending", controller.TrendingFeed{
		Command:     queries.TrendingFeed,
		CacheMaxAge: cfg.TrendingCacheMaxAge,
	}).Methods(http.MethodGet)

	api.Handle("/feeds/trending/rss", controller.TrendingRSS{
		FeedHostname:    cfg.RSSFeedBaseURL,
		FeedPath:        "/v1/feeds/trending/rss",
		FeedAuthorName:  cfg.RSSFeedAuthorName,
		FeedAuthorEmail: cfg.RSSFeedAuthorEmail,
		Command:         queries.TrendingFeed,
		CacheMaxAge:     cfg.TrendingCacheMaxAge,
	}).Methods(http.MethodGet)

	api.Handle("/feeds/explore", requireAuthMiddleware(controller.ExploreFeed{
		Command: queries.ExploreFeed,
	})).Methods(http.MethodGet)

	api.Handle("/recommendations/users", requireAuthMiddleware(controller.RecommendedUsers{
		Command: queries.RecommendUsers,
	})).Methods(http.MethodGet)

	api.Handle("/recommendations/content", requireAuthMiddleware(controller.RecommendedContent{
		Command: queries.RecommendContent,
	})).Methods(http.MethodGet)

	api.Handle("/recommendations/hashtags", requireAuthMiddleware(controller.RecommendedHashtags{
		Command: queries.RecommendHashtags,
	})).Methods(http.MethodGet)

	return corsMiddleware(cfg.AllowedOrigins)(r), nil
}
