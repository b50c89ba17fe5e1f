package server

import (
	"context"
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/jbeshir/feed-ranking/cmd/mcp/client"
	"github.com/mark3labs/mcp-go/mcp"
)

const maxToolLimit = 100

const exploreFeedDescription = "Get a random shuffle of posts from the last 30 days that the viewer " +
	"has not posted, liked or viewed, including posts from accounts they follow. " +
	"The response carries a seed; pass it back to page through the same shuffle."

func pageOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithNumber("page",
			mcp.Description("Page number (1-indexed, default: 1)"),
		),
		mcp.WithNumber("page_size",
			mcp.Description("Number of posts per page (default: 20, max: 100)"),
		),
	}
}

func limitOption(defaultLimit int) mcp.ToolOption {
	return mcp.WithNumber("limit",
		mcp.Description(fmt.Sprintf("Maximum number of results (default: %d, max: %d)", defaultLimit, maxToolLimit)),
	)
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("get_personalized_feed",
		append([]mcp.ToolOption{
			mcp.WithDescription(
				"Get the viewer's personalized feed: recent posts from accounts they follow, " +
					"ranked by engagement and recency."),
		}, pageOptions()...)...,
	), s.handlePersonalizedFeed)

	s.mcpServer.AddTool(mcp.NewTool("get_trending_feed",
		append([]mcp.ToolOption{
			mcp.WithDescription("Get posts trending across the whole platform within a time window."),
			mcp.WithString("window",
				mcp.Description("Time window: one of 1h, 6h, 12h, 24h, 7d (default: 24h)"),
			),
		}, pageOptions()...)...,
	), s.handleTrendingFeed)

	s.mcpServer.AddTool(mcp.NewTool("get_explore_feed",
		append([]mcp.ToolOption{
			mcp.WithDescription(exploreFeedDescription),
			mcp.WithString("category",
				mcp.Description("Restrict to one category: photo, video or reel"),
			),
			mcp.WithString("seed",
				mcp.Description("Shuffle seed returned by an earlier page"),
			),
		}, pageOptions()...)...,
	), s.handleExploreFeed)

	s.mcpServer.AddTool(mcp.NewTool("recommend_users",
		mcp.WithDescription("Suggest accounts to follow, based on who the viewer's follows follow."),
		limitOption(20),
	), s.handleRecommendUsers)

	s.mcpServer.AddTool(mcp.NewTool("recommend_content",
		mcp.WithDescription("Suggest posts liked by accounts the viewer follows."),
		limitOption(20),
	), s.handleRecommendContent)

	s.mcpServer.AddTool(mcp.NewTool("recommend_hashtags",
		mcp.WithDescription("List hashtags used most in the last week."),
		limitOption(10),
	), s.handleRecommendHashtags)
}

func (s *Server) handlePersonalizedFeed(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	feed, err := s.api.PersonalizedFeed(ctx, parsePageOptions(request.GetArguments()))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get personalized feed: %v", err)), nil
	}
	return formatJSONResult(feed)
}

func (s *Server) handleTrendingFeed(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	window, _ := args["window"].(string)

	feed, err := s.api.TrendingFeed(ctx, window, parsePageOptions(args))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get trending feed: %v", err)), nil
	}
	return formatJSONResult(feed)
}

func (s *Server) handleExploreFeed(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	category, _ := args["category"].(string)

	var seed uint64
	if raw, ok := args["seed"].(string); ok && raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return mcp.NewToolResultError("seed must be a non-negative integer"), nil
		}
		seed = parsed
	}

	feed, err := s.api.ExploreFeed(ctx, category, seed, parsePageOptions(args))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get explore feed: %v", err)), nil
	}
	return formatJSONResult(feed)
}

func (s *Server) handleRecommendUsers(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	users, err := s.api.RecommendUsers(ctx, parseLimit(request.GetArguments()))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to recommend users: %v", err)), nil
	}
	return formatJSONResult(users)
}

func (s *Server) handleRecommendContent(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	posts, err := s.api.RecommendContent(ctx, parseLimit(request.GetArguments()))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to recommend content: %v", err)), nil
	}
	return formatJSONResult(posts)
}

func (s *Server) handleRecommendHashtags(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	tags, err := s.api.RecommendHashtags(ctx, parseLimit(request.GetArguments()))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to recommend hashtags: %v", err)), nil
	}
	return formatJSONResult(tags)
}

// Numbers arrive as float64 from JSON; out-of-range values are left for the
// API to reject so the agent sees its validation message.
func parsePageOptions(args map[string]any) client.PageOptions {
	var opts client.PageOptions
	if page, ok := args["page"].(float64); ok {
		opts.Page = int(page)
	}
	if pageSize, ok := args["page_size"].(float64); ok {
		opts.PageSize = int(pageSize)
	}
	return opts
}

func parseLimit(args map[string]any) int {
	if limit, ok := args["limit"].(float64); ok {
		return int(limit)
	}
	return 0
}

func formatJSONResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
