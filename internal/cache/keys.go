package cache

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jbeshir/feed-ranking/internal/domain"
)

// keyVersion is bumped whenever the serialized page format changes.
const keyVersion = "v1"

// Policy controls caching of one kind of result.
type Policy struct {
	TTL     time.Duration
	Enabled bool
}

// Policies is the single table of cache lifetimes, indexed by result kind.
type Policies map[domain.FeedKind]Policy

func DefaultPolicies() Policies {
	return Policies{
		domain.FeedKindPersonalized:      {TTL: 300 * time.Second, Enabled: true},
		domain.FeedKindTrending:          {TTL: 600 * time.Second, Enabled: true},
		domain.FeedKindExplore:           {TTL: 30 * time.Second, Enabled: true},
		domain.FeedKindRecommendUsers:    {TTL: 300 * time.Second, Enabled: true},
		domain.FeedKindRecommendContent:  {TTL: 300 * time.Second, Enabled: true},
		domain.FeedKindRecommendHashtags: {TTL: 600 * time.Second, Enabled: true},
	}
}

// For returns the policy for kind. Unknown kinds are not cached.
func (p Policies) For(kind domain.FeedKind) Policy {
	policy, ok := p[kind]
	if !ok || policy.TTL <= 0 {
		return Policy{}
	}
	return policy
}

func PersonalizedKey(viewerID string, page, pageSize int) string {
	return buildKey(domain.FeedKindPersonalized, viewerID, pagePart(page), sizePart(pageSize))
}

func TrendingKey(window domain.TrendingWindow, page, pageSize int) string {
	return buildKey(domain.FeedKindTrending, string(window), pagePart(page), sizePart(pageSize))
}

// ExploreKey includes the shuffle seed, so two requests only share an entry
// when they asked for the same permutation.
func ExploreKey(viewerID string, category domain.Category, seed uint64, page, pageSize int) string {
	cat := string(category)
	if cat == "" {
		cat = "all"
	}
	return buildKey(domain.FeedKindExplore, viewerID, cat, strconv.FormatUint(seed, 10),
		pagePart(page), sizePart(pageSize))
}

func RecommendUsersKey(viewerID string, limit int) string {
	return buildKey(domain.FeedKindRecommendUsers, viewerID, limitPart(limit))
}

func RecommendContentKey(viewerID string, limit int) string {
	return buildKey(domain.FeedKindRecommendContent, viewerID, limitPart(limit))
}

// RecommendHashtagsKey has no viewer component: hashtag suggestions are the
// same for everyone.
func RecommendHashtagsKey(limit int) string {
	return buildKey(domain.FeedKindRecommendHashtags, "global", limitPart(limit))
}

func pagePart(page int) string {
	return "p" + strconv.Itoa(page)
}

func sizePart(pageSize int) string {
	return "s" + strconv.Itoa(pageSize)
}

func limitPart(limit int) string {
	return "l" + strconv.Itoa(limit)
}

// buildKey escapes each part so identifiers containing ':' cannot collide.
func buildKey(kind domain.FeedKind, parts ...string) string {
	var b strings.Builder
	b.WriteString("feed:")
	b.WriteString(keyVersion)
	b.WriteString(":")
	b.WriteString(string(kind))
	for _, part := range parts {
		b.WriteString(":")
		b.WriteString(url.QueryEscape(part))
	}
	return b.String()
}
