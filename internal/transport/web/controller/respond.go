package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/jbeshir/feed-ranking/internal/domain"
)

// RetryAfter is the hint sent with 503 responses for repository failures.
const RetryAfter = 2 * time.Second

const privateCacheControl = "private, no-store"

type ErrorResponse struct {
	Message string `json:"message"`
}

type FeedMetadata struct {
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
	Total    int    `json:"total"`
	HasMore  bool   `json:"has_more"`
	Seed     uint64 `json:"seed,omitempty"`
}

type FeedResponse struct {
	Data     []domain.RankedItem `json:"data"`
	Metadata FeedMetadata        `json:"metadata"`
}

type ListResponse[T any] struct {
	Data []T `json:"data"`
}

func newFeedResponse(page domain.FeedPage) FeedResponse {
	items := page.Items
	if items == nil {
		items = []domain.RankedItem{}
	}
	return FeedResponse{
		Data: items,
		Metadata: FeedMetadata{
			Page:     page.Page,
			PageSize: page.PageSize,
			Total:    page.Total,
			HasMore:  page.HasMore,
			Seed:     page.Seed,
		},
	}
}

func newListResponse[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Data: items}
}

func maxAgeCacheControl(maxAge time.Duration) string {
	return "max-age=" + strconv.Itoa(int(maxAge.Seconds()))
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, cacheControl string, body any) {
	w.Header().Set("Content-Type", "application/json")
	if cacheControl != "" {
		w.Header().Set("Cache-Control", cacheControl)
	}
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write response", "error", err)
	}
}

// writeError maps invalid input to 400, repository failures to 503 with a
// Retry-After hint, and anything else to 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		logger.InfoContext(ctx, "rejected invalid request", "error", err)

		var invalid domain.InvalidInputError
		message := err.Error()
		if errors.As(err, &invalid) {
			message = invalid.Error()
		}
		writeJSON(w, r, http.StatusBadRequest, "", ErrorResponse{Message: message})

	case domain.IsRetryable(err):
		logger.ErrorContext(ctx, "repository unavailable", "error", err)

		w.Header().Set("Retry-After", strconv.Itoa(int(RetryAfter.Seconds())))
		writeJSON(w, r, http.StatusServiceUnavailable, "", ErrorResponse{Message: "temporarily unavailable, retry later"})

	default:
		logger.ErrorContext(ctx, "unable to handle request", "error", err)
		writeJSON(w, r, http.StatusInternalServerError, "", ErrorResponse{Message: "internal error"})
	}
}

func requireViewer(w http.ResponseWriter, r *http.Request) (string, bool) {
	viewerID := domain.ViewerIDFromContext(r.Context())
	if viewerID == "" {
		writeJSON(w, r, http.StatusUnauthorized, "", ErrorResponse{Message: "authentication required"})
		return "", false
	}
	return viewerID, true
}
