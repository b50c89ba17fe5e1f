package server

import (
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/jbeshir/feed-ranking/cmd/mcp/client"
	"github.com/mark3labs/mcp-go/mcp"
)

const trendingURIPrefix = "trending://"

func (s *Server) registerResources() {
	s.mcpServer.AddResourceTemplate(
		mcp.NewResourceTemplate(
			trendingURIPrefix+"{window}",
			"Trending posts for a time window",
			mcp.WithTemplateDescription(
				"First page of the trending feed for a window (1h, 6h, 12h, 24h or 7d), "+
					"with each post's engagement counts, hashtags and trending score."),
			mcp.WithTemplateMIMEType("application/json"),
		),
		s.handleTrendingResource,
	)
}

func (s *Server) handleTrendingResource(
	ctx context.Context,
	request mcp.ReadResourceRequest,
) ([]mcp.ResourceContents, error) {
	uri := request.Params.URI
	if !strings.HasPrefix(uri, trendingURIPrefix) {
		return nil, fmt.Errorf("invalid trending URI format: %s", uri)
	}

	window := strings.TrimPrefix(uri, trendingURIPrefix)
	if window == "" {
		return nil, fmt.Errorf("missing window in URI: %s", uri)
	}

	feed, err := s.api.TrendingFeed(ctx, window, client.PageOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch trending feed %s: %w", window, err)
	}

	data, err := json.MarshalIndent(feed, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal trending feed: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
