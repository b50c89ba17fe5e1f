package command

import (
	"context"
	"time"

	"github.com/goccy/go-json"
	"github.com/jbeshir/feed-ranking/internal/cache"
	"github.com/jbeshir/feed-ranking/internal/domain"
	"github.com/jbeshir/feed-ranking/internal/metrics"
)

// ResultCache is a best-effort cache. It never reports errors: failures read
// as a miss and failed writes are dropped.
type ResultCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
}

// Cached serves results from the cache when present and writes computed
// results through on a miss.
type Cached[Req, Res any] struct {
	Next   Command[Req, Res]
	Cache  ResultCache
	Kind   domain.FeedKind
	Policy cache.Policy
	Key    func(Req) string
}

func (c *Cached[Req, Res]) Execute(ctx context.Context, req Req) (Res, error) {
	if !c.Policy.Enabled {
		return c.compute(ctx, req)
	}

	logger := domain.LoggerFromContext(ctx)
	key := c.Key(req)

	if data, found := c.Cache.Get(ctx, key); found {
		var res Res
		err := json.Unmarshal(data, &res)
		if err == nil {
			metrics.RecordCacheLookup(string(c.Kind), true)
			return res, nil
		}
		logger.WarnContext(ctx, "discarding undecodable cache entry", "key", key, "error", err)
	}
	metrics.RecordCacheLookup(string(c.Kind), false)

	res, err := c.compute(ctx, req)
	if err != nil {
		return res, err
	}

	data, err := json.Marshal(res)
	if err != nil {
		logger.WarnContext(ctx, "unable to serialize result for cache", "key", key, "error", err)
		return res, nil
	}
	c.Cache.Set(ctx, key, data, c.Policy.TTL)

	return res, nil
}

func (c *Cached[Req, Res]) compute(ctx context.Context, req Req) (Res, error) {
	start := time.Now()
	res, err := c.Next.Execute(ctx, req)
	metrics.RecordEngine(string(c.Kind), time.Since(start))
	return res, err
}
