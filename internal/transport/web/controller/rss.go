package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/feeds"
	"github.com/jbeshir/feed-ranking/internal/command"
	"github.com/jbeshir/feed-ranking/internal/domain"
)

const rssPageSize = 50

// TrendingRSS renders the first trending page for a window as RSS.
type TrendingRSS struct {
	FeedHostname    string
	FeedPath        string
	FeedAuthorName  string
	FeedAuthorEmail string
	Command         command.Command[command.TrendingFeedRequest, domain.FeedPage]
	CacheMaxAge     time.Duration
	Now             func() time.Time
}

func (c TrendingRSS) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	window := defaultTrendingWindow
	if q := r.URL.Query(); q.Has("window") {
		window = domain.TrendingWindow(q.Get("window"))
	}

	page, err := c.Command.Execute(ctx, command.TrendingFeedRequest{
		Window:   window,
		Page:     1,
		PageSize: rssPageSize,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	now := time.Now
	if c.Now != nil {
		now = c.Now
	}

	feed := &feeds.Feed{
		Title:       fmt.Sprintf("Trending (%s)", window),
		Link:        &feeds.Link{Href: c.FeedHostname + c.FeedPath + "?window=" + string(window)},
		Description: fmt.Sprintf("Most engaged approved posts from the last %s", window),
		Author:      &feeds.Author{Name: c.FeedAuthorName, Email: c.FeedAuthorEmail},
		Created:     now(),
	}

	for _, item := range page.Items {
		title := item.Caption
		if title == "" {
			title = fmt.Sprintf("%s by %s", item.Category, item.OwnerID)
		}

		feed.Items = append(feed.Items, &feeds.Item{
			Id:          item.ID,
			IsPermaLink: "false",
			Title:       title,
			Link:        &feeds.Link{Href: item.MediaURL},
			Description: item.Caption,
			Author:      &feeds.Author{Name: item.OwnerID},
			Created:     item.CreatedAt,
		})
	}

	rss, err := feed.ToRss()
	if err != nil {
		logger.ErrorContext(ctx, "unable to format feed as RSS", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/xml")
	w.Header().Set("Cache-Control", maxAgeCacheControl(c.CacheMaxAge))

	if _, err := w.Write([]byte(rss)); err != nil {
		logger.ErrorContext(ctx, "unable to write feed to response", "error", err)
	}
}
