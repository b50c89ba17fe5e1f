package router

import (
	"net/http"

	"github.com/jbeshir/feed-ranking/internal/domain"
)

func requireAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		viewerID := domain.ViewerIDFromContext(r.Context())
		if viewerID == "" {
			logger := domain.LoggerFromContext(r.Context())
			logger.InfoContext(r.Context(), "attempt to use endpoint requiring a viewer without one")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"authentication required"}`))
			return
		}

		next.ServeHTTP(w, r)
	})
}
