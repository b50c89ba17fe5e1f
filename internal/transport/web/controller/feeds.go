package controller

import (
	"net/http"
	"time"

	"github.com/jbeshir/feed-ranking/internal/command"
	"github.com/jbeshir/feed-ranking/internal/domain"
)

const defaultTrendingWindow = domain.TrendingWindow24h

type PersonalizedFeed struct {
	Command command.Command[command.PersonalizedFeedRequest, domain.FeedPage]
}

func (c PersonalizedFeed) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := requireViewer(w, r)
	if !ok {
		return
	}

	page, pageSize, err := parsePagination(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}

	feed, err := c.Command.Execute(r.Context(), command.PersonalizedFeedRequest{
		ViewerID: viewerID,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, privateCacheControl, newFeedResponse(feed))
}

type TrendingFeed struct {
	Command     command.Command[command.TrendingFeedRequest, domain.FeedPage]
	CacheMaxAge time.Duration
}

func (c TrendingFeed) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, pageSize, err := parsePagination(q)
	if err != nil {
		writeError(w, r, err)
		return
	}

	window := defaultTrendingWindow
	if q.Has("window") {
		window = domain.TrendingWindow(q.Get("window"))
	}

	feed, err := c.Command.Execute(r.Context(), command.TrendingFeedRequest{
		Window:   window,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, maxAgeCacheControl(c.CacheMaxAge), newFeedResponse(feed))
}

type ExploreFeed struct {
	Command command.Command[command.ExploreFeedRequest, domain.FeedPage]
}

func (c ExploreFeed) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := requireViewer(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	page, pageSize, err := parsePagination(q)
	if err != nil {
		writeError(w, r, err)
		return
	}

	seed, err := parseSeed(q)
	if err != nil {
		writeError(w, r, err)
		return
	}

	feed, err := c.Command.Execute(r.Context(), command.ExploreFeedRequest{
		ViewerID: viewerID,
		Category: domain.Category(q.Get("category")),
		Seed:     seed,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, privateCacheControl, newFeedResponse(feed))
}
