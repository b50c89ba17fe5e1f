package controller

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jbeshir/feed-ranking/internal/domain"
)

var testTime = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func testContext() func(r *http.Request) *http.Request {
	return func(r *http.Request) *http.Request {
		ctx := domain.ContextWithLogger(r.Context(), slog.New(slog.DiscardHandler))
		return r.WithContext(ctx)
	}
}

func testContextWithViewerID(viewerID string) func(r *http.Request) *http.Request {
	return func(r *http.Request) *http.Request {
		ctx := domain.ContextWithLogger(r.Context(), slog.New(slog.DiscardHandler))
		ctx = domain.ContextWithViewerID(ctx, viewerID)
		return r.WithContext(ctx)
	}
}

func testPage(ids ...string) domain.FeedPage {
	items := make([]domain.RankedItem, 0, len(ids))
	for i, id := range ids {
		items = append(items, domain.RankedItem{
			ContentItem: domain.ContentItem{
				ID:        id,
				OwnerID:   "bob",
				Category:  domain.CategoryPhoto,
				MediaURL:  "https://cdn.example.com/" + id,
				Approved:  true,
				CreatedAt: testTime,
			},
			Score: float64(10 - i),
			Rank:  i + 1,
		})
	}
	return domain.FeedPage{Items: items, Page: 1, PageSize: 20, Total: len(items)}
}
