package router

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/jbeshir/feed-ranking/internal/domain"
)

// AuthResult represents the result of a successful authentication.
type AuthResult struct {
	ViewerID string
	Method   domain.AuthMethod
}

// AuthValidator attempts to validate authentication from a request.
// Returns nil, nil if this validator doesn't apply (wrong auth type).
// Returns AuthResult, nil on success.
// Returns nil, error if validation was attempted but failed.
type AuthValidator func(r *http.Request) (*AuthResult, error)

// NewAuthMiddleware creates a middleware that validates requests using multiple authentication methods.
func NewAuthMiddleware(validators []AuthValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, validate := range validators {
				result, err := validate(r)
				if result == nil && err == nil {
					continue // This validator doesn't apply
				}

				if err != nil {
					logger := domain.LoggerFromContext(r.Context())
					logger.WarnContext(r.Context(), "authentication failed", "error", err)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusUnauthorized)
					_, _ = fmt.Fprintf(w, `{"message":%q}`, err.Error())
					return
				}

				ctx := domain.ContextWithViewerID(r.Context(), result.ViewerID)
				logger := domain.LoggerFromContext(ctx).With(
					"viewer_id", result.ViewerID,
					"auth_method", result.Method,
				)
				ctx = domain.ContextWithLogger(ctx, logger)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			// No validator matched - continue without auth (for public endpoints)
			next.ServeHTTP(w, r)
		})
	}
}

// DefaultGatewayHeader carries the viewer identity resolved by an upstream gateway.
const DefaultGatewayHeader = "X-Viewer-ID"

// NewGatewayValidator trusts a viewer identity header set by an upstream
// gateway. Only enable it when the service is unreachable except through that
// gateway.
func NewGatewayValidator(header string) AuthValidator {
	return func(r *http.Request) (*AuthResult, error) {
		values, ok := r.Header[http.CanonicalHeaderKey(header)]
		if !ok {
			return nil, nil
		}

		viewerID := strings.TrimSpace(strings.Join(values, ""))
		if viewerID == "" || len(values) > 1 {
			return nil, fmt.Errorf("malformed %s header", header)
		}

		return &AuthResult{
			ViewerID: viewerID,
			Method:   domain.AuthMethodGateway,
		}, nil
	}
}
