package controller

import (
	"net/http"

	"github.com/jbeshir/feed-ranking/internal/command"
	"github.com/jbeshir/feed-ranking/internal/domain"
)

const (
	defaultUserRecommendationLimit    = 20
	defaultContentRecommendationLimit = 20
	defaultHashtagRecommendationLimit = 10
)

type RecommendedUsers struct {
	Command command.Command[command.RecommendUsersRequest, []domain.UserRecommendation]
}

func (c RecommendedUsers) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := requireViewer(w, r)
	if !ok {
		return
	}

	limit, err := parseIntParam(r.URL.Query(), "limit", defaultUserRecommendationLimit)
	if err != nil {
		writeError(w, r, err)
		return
	}

	recs, err := c.Command.Execute(r.Context(), command.RecommendUsersRequest{ViewerID: viewerID, Limit: limit})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, privateCacheControl, newListResponse(recs))
}

type RecommendedContent struct {
	Command command.Command[command.RecommendContentRequest, []domain.ContentRecommendation]
}

func (c RecommendedContent) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := requireViewer(w, r)
	if !ok {
		return
	}

	limit, err := parseIntParam(r.URL.Query(), "limit", defaultContentRecommendationLimit)
	if err != nil {
		writeError(w, r, err)
		return
	}

	recs, err := c.Command.Execute(r.Context(), command.RecommendContentRequest{ViewerID: viewerID, Limit: limit})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, privateCacheControl, newListResponse(recs))
}

type RecommendedHashtags struct {
	Command command.Command[command.RecommendHashtagsRequest, []domain.HashtagRecommendation]
}

func (c RecommendedHashtags) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := requireViewer(w, r)
	if !ok {
		return
	}

	limit, err := parseIntParam(r.URL.Query(), "limit", defaultHashtagRecommendationLimit)
	if err != nil {
		writeError(w, r, err)
		return
	}

	recs, err := c.Command.Execute(r.Context(), command.RecommendHashtagsRequest{ViewerID: viewerID, Limit: limit})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, privateCacheControl, newListResponse(recs))
}
