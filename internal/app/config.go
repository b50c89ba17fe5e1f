package app

import (
	"context"
	"strings"
	"time"

	"github.com/jbeshir/feed-ranking/internal/cache"
	"github.com/jbeshir/feed-ranking/internal/command"
	"github.com/jbeshir/feed-ranking/internal/domain"
)

// DefaultEngineConfig returns the default tunables for the feed and
// recommendation commands.
func DefaultEngineConfig(ctx context.Context) command.EngineConfig {
	return command.EngineConfig{
		RepositoryTimeout:        GetEnvAsDurationOrDefault(ctx, "REPOSITORY_TIMEOUT", 2*time.Second),
		ExplorePoolSize:          1000,
		FollowCandidateLimit:     200,
		FollowerCountConcurrency: 8,
		ContentCandidateLimit:    500,
		HashtagUsageLimit:        5000,
	}
}

// DefaultResilientConfig keeps cache calls far shorter than repository calls.
func DefaultResilientConfig(ctx context.Context) cache.ResilientConfig {
	return cache.ResilientConfig{
		Timeout:          GetEnvAsDurationOrDefault(ctx, "CACHE_TIMEOUT", 50*time.Millisecond),
		FailureThreshold: 5,
		OpenTimeout:      30 * time.Second,
	}
}

// DefaultCachePolicies returns the TTL table, with optional per-kind
// overrides from CACHE_TTL_<KIND> (for example CACHE_TTL_TRENDING=5m).
// A zero duration disables caching for that kind.
func DefaultCachePolicies(ctx context.Context) cache.Policies {
	policies := cache.DefaultPolicies()
	for kind, policy := range policies {
		name := "CACHE_TTL_" + strings.ToUpper(string(kind))
		ttl := GetEnvAsDurationOrDefault(ctx, name, policy.TTL)
		policies[kind] = cache.Policy{TTL: ttl, Enabled: ttl > 0}
	}
	return policies
}

// DefaultWarmCacheConfig returns the default config for the cache warming job.
func DefaultWarmCacheConfig(ctx context.Context) command.WarmCacheConfig {
	return command.WarmCacheConfig{
		TrendingPages:    GetEnvAsIntOrDefault(ctx, "WARM_CACHE_TRENDING_PAGES", 3),
		TrendingPageSize: GetEnvAsIntOrDefault(ctx, "WARM_CACHE_TRENDING_PAGE_SIZE", 20),
		HashtagLimits:    []int{10},
	}
}

// trendingCacheMaxAge is what HTTP clients are told they may cache trending for.
func trendingCacheMaxAge(policies cache.Policies) time.Duration {
	return policies.For(domain.FeedKindTrending).TTL
}
