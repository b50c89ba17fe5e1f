// Package server provides the MCP server implementation.
package server

import (
	"context"

	"github.com/jbeshir/feed-ranking/cmd/mcp/client"
	"github.com/jbeshir/feed-ranking/internal/domain"
	"github.com/jbeshir/feed-ranking/internal/transport/web/controller"
	"github.com/mark3labs/mcp-go/server"
)

// FeedAPI is the subset of the feed ranking API the tools call.
type FeedAPI interface {
	PersonalizedFeed(ctx context.Context, opts client.PageOptions) (controller.FeedResponse, error)
	TrendingFeed(ctx context.Context, window string, opts client.PageOptions) (controller.FeedResponse, error)
	ExploreFeed(
		ctx context.Context, category string, seed uint64, opts client.PageOptions,
	) (controller.FeedResponse, error)
	RecommendUsers(ctx context.Context, limit int) ([]domain.UserRecommendation, error)
	RecommendContent(ctx context.Context, limit int) ([]domain.ContentRecommendation, error)
	RecommendHashtags(ctx context.Context, limit int) ([]domain.HashtagRecommendation, error)
}

// Server is the MCP server for the feed ranking API.
type Server struct {
	api       FeedAPI
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server with the given API client.
func NewServer(api FeedAPI) *Server {
	s := &Server{
		api: api,
	}

	s.mcpServer = server.NewMCPServer(
		"feed-ranking",
		"1.0.0",
		server.WithResourceCapabilities(true, false),
		server.WithLogging(),
	)

	s.registerTools()
	s.registerResources()

	return s
}

// Run starts the MCP server with stdio transport.
func (s *Server) Run() error {
	return server.ServeStdio(s.mcpServer)
}
