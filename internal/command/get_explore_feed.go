package command

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sort"

	"github.com/jbeshir/feed-ranking/internal/datasources"
	"github.com/jbeshir/feed-ranking/internal/domain"
)

type ExploreFeedRequest struct {
	ViewerID string          `json:"viewer_id" validate:"required"`
	Category domain.Category `json:"category" validate:"omitempty,category"`
	Seed     uint64          `json:"seed"`
	Page     int             `json:"page" validate:"page"`
	PageSize int             `json:"page_size" validate:"page_size"`
}

// GetExploreFeed shuffles recent items the viewer neither owns nor has
// interacted with. The permutation is a pure function of the seed and the
// candidate pool, so paging with one seed walks a single shuffle.
type GetExploreFeed struct {
	Content datasources.ApprovedContentFetcher
	Config  EngineConfig
}

func NewGetExploreFeed(content datasources.ApprovedContentFetcher, config EngineConfig) *GetExploreFeed {
	return &GetExploreFeed{
		Content: content,
		Config:  config,
	}
}

func (c *GetExploreFeed) Execute(ctx context.Context, req ExploreFeedRequest) (domain.FeedPage, error) {
	now := c.Config.now()
	filter := domain.ContentFilter{
		CreatedAfter:        now.Add(-domain.ExploreFeedMaxAge),
		ExcludeOwner:        req.ViewerID,
		ExcludeInteractedBy: req.ViewerID,
		Category:            req.Category,
	}

	items, err := callRepository(ctx, c.Config.RepositoryTimeout, "fetch_approved_items",
		func(ctx context.Context) ([]domain.ContentItem, error) {
			return c.Content.FetchApprovedItems(ctx, filter, domain.ContentOrderNewest, 0, c.Config.ExplorePoolSize)
		})
	if err != nil {
		return domain.FeedPage{}, fmt.Errorf("fetching candidate items: %w", err)
	}

	pool := visibleItems(items, filter)
	sort.Slice(pool, func(i, j int) bool { return pool[i].ID < pool[j].ID })

	rng := rand.New(rand.NewPCG(req.Seed, req.Seed^exploreSeedSalt))
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	shuffled := make([]domain.RankedItem, len(pool))
	for i, item := range pool {
		shuffled[i] = domain.RankedItem{ContentItem: item}
	}

	page := domain.NewFeedPage(shuffled, req.Page, req.PageSize)
	page.Seed = req.Seed
	return page, nil
}

const exploreSeedSalt = 0x9e3779b97f4a7c15

// MaxExploreSeed bounds drawn seeds to integers a float64 holds exactly, so a
// seed echoed as a JSON number survives a round trip through JavaScript.
const MaxExploreSeed = 1<<53 - 1

// SeedExplore fills in a random seed for explore requests that carry none, so
// the seed is known before the cache key is built and can be echoed back.
type SeedExplore struct {
	Next Command[ExploreFeedRequest, domain.FeedPage]
}

func (c *SeedExplore) Execute(ctx context.Context, req ExploreFeedRequest) (domain.FeedPage, error) {
	if req.Seed == 0 {
		req.Seed = rand.Uint64N(MaxExploreSeed) + 1
	}
	return c.Next.Execute(ctx, req)
}
