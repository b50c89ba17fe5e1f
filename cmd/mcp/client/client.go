// Package client provides an HTTP client for the feed ranking API.
package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/jbeshir/feed-ranking/internal/domain"
	"github.com/jbeshir/feed-ranking/internal/transport/web/controller"
)

// PageOptions selects a page of a feed. Zero values use the server defaults.
type PageOptions struct {
	Page     int
	PageSize int
}

func (o PageOptions) apply(params url.Values) {
	if o.Page > 0 {
		params.Set("page", strconv.Itoa(o.Page))
	}
	if o.PageSize > 0 {
		params.Set("page_size", strconv.Itoa(o.PageSize))
	}
}

// Client is an HTTP client for the feed ranking API.
type Client struct {
	baseURL    string
	apiToken   string
	viewerID   string
	httpClient *http.Client
}

// NewClient creates a new API client. apiToken is sent as a bearer token and
// viewerID as the gateway viewer header; either may be empty.
func NewClient(baseURL, apiToken, viewerID string) *Client {
	return &Client{
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		apiToken: apiToken,
		viewerID: viewerID,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) get(ctx context.Context, path string, params url.Values, result interface{}) error {
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	if c.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
	}
	if c.viewerID != "" {
		req.Header.Set("X-Viewer-ID", c.viewerID)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func (c *Client) feed(ctx context.Context, path string, params url.Values) (controller.FeedResponse, error) {
	var result controller.FeedResponse
	if err := c.get(ctx, path, params, &result); err != nil {
		return controller.FeedResponse{}, err
	}
	return result, nil
}

// PersonalizedFeed retrieves the viewer's personalized feed.
func (c *Client) PersonalizedFeed(ctx context.Context, opts PageOptions) (controller.FeedResponse, error) {
	params := url.Values{}
	opts.apply(params)
	return c.feed(ctx, "/v1/feeds/personalized", params)
}

// TrendingFeed retrieves the trending feed for a window such as "24h".
func (c *Client) TrendingFeed(ctx context.Context, window string, opts PageOptions) (controller.FeedResponse, error) {
	params := url.Values{}
	if window != "" {
		params.Set("window", window)
	}
	opts.apply(params)
	return c.feed(ctx, "/v1/feeds/trending", params)
}

// ExploreFeed retrieves a page of the explore feed. Pass the seed returned by
// the first page to keep paging through the same shuffle.
func (c *Client) ExploreFeed(
	ctx context.Context, category string, seed uint64, opts PageOptions,
) (controller.FeedResponse, error) {
	params := url.Values{}
	if category != "" {
		params.Set("category", category)
	}
	if seed != 0 {
		params.Set("seed", strconv.FormatUint(seed, 10))
	}
	opts.apply(params)
	return c.feed(ctx, "/v1/feeds/explore", params)
}

func limitParams(limit int) url.Values {
	params := url.Values{}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	return params
}

// RecommendUsers retrieves accounts suggested for the viewer to follow.
func (c *Client) RecommendUsers(ctx context.Context, limit int) ([]domain.UserRecommendation, error) {
	var result controller.ListResponse[domain.UserRecommendation]
	if err := c.get(ctx, "/v1/recommendations/users", limitParams(limit), &result); err != nil {
		return nil, err
	}
	return result.Data, nil
}

// RecommendContent retrieves posts liked by people the viewer follows.
func (c *Client) RecommendContent(ctx context.Context, limit int) ([]domain.ContentRecommendation, error) {
	var result controller.ListResponse[domain.ContentRecommendation]
	if err := c.get(ctx, "/v1/recommendations/content", limitParams(limit), &result); err != nil {
		return nil, err
	}
	return result.Data, nil
}

// RecommendHashtags retrieves currently popular hashtags.
func (c *Client) RecommendHashtags(ctx context.Context, limit int) ([]domain.HashtagRecommendation, error) {
	var result controller.ListResponse[domain.HashtagRecommendation]
	if err := c.get(ctx, "/v1/recommendations/hashtags", limitParams(limit), &result); err != nil {
		return nil, err
	}
	return result.Data, nil
}
