// Package main provides the entry point for the feed ranking MCP server.
//
// The server lets AI agents read a viewer's feeds and recommendations over
// the HTTP API.
//
// Configuration:
//
//	FEED_API_URL   - Base URL of the API (default: http://localhost:8080)
//	FEED_API_TOKEN - Bearer token for Auth0 authentication
//	FEED_VIEWER_ID - Viewer ID sent as X-Viewer-ID when the API trusts a gateway header
//
// One of FEED_API_TOKEN or FEED_VIEWER_ID is required.
package main

import (
	"log"
	"os"

	"github.com/jbeshir/feed-ranking/cmd/mcp/client"
	"github.com/jbeshir/feed-ranking/cmd/mcp/server"
)

func main() {
	apiURL := os.Getenv("FEED_API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8080"
	}

	apiToken := os.Getenv("FEED_API_TOKEN")
	viewerID := os.Getenv("FEED_VIEWER_ID")
	if apiToken == "" && viewerID == "" {
		log.Fatal("FEED_API_TOKEN or FEED_VIEWER_ID environment variable is required")
	}

	apiClient := client.NewClient(apiURL, apiToken, viewerID)
	srv := server.NewServer(apiClient)

	if err := srv.Run(); err != nil {
		log.Fatal(err)
	}
}
