package domain

import (
	"context"
	"log/slog"
)

type contextKey string

const loggerContextKey contextKey = "logger"

func ContextWithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey, logger)
}

func LoggerFromContext(ctx context.Context) *slog.Logger {
	logger := ctx.Value(loggerContextKey)
	if logger == nil {
		logger = slog.Default()
	}

	return logger.(*slog.Logger)
}

const viewerContextKey contextKey = "viewer"

// ContextWithViewerID attaches the already-authenticated viewer identity.
func ContextWithViewerID(ctx context.Context, viewerID string) context.Context {
	return context.WithValue(ctx, viewerContextKey, viewerID)
}

func ViewerIDFromContext(ctx context.Context) string {
	viewerID := ctx.Value(viewerContextKey)
	if viewerID == nil {
		viewerID = ""
	}
	return viewerID.(string)
}

// AuthMethod names the validator that authenticated a request.
type AuthMethod string

const (
	AuthMethodAuth0   AuthMethod = "auth0"
	AuthMethodGateway AuthMethod = "gateway"
)
