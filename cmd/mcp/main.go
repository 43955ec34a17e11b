// Package main provides the entry point for the Fritter engagement MCP server.
//
// This MCP server lets AI agents browse the ranked freet feed and react to,
// bookmark and follow engagement on freets on a user's behalf.
//
// Configuration:
//
//	FRITTER_API_URL   - Base URL of the engagement API (default: http://localhost:8080)
//	FRITTER_API_TOKEN - API token for authentication (required, format: freet_api|xxx)
//
// Usage with an MCP client:
//
//	mcp add fritter-engagement --transport stdio \
//	  --env FRITTER_API_TOKEN=freet_api|xxx \
//	  -- /path/to/fritter-engagement-mcp
package main

import (
	"log"
	"os"

	"github.com/jbeshir/fritter-engagement/cmd/mcp/client"
	"github.com/jbeshir/fritter-engagement/cmd/mcp/server"
)

func main() {
	apiURL := os.Getenv("FRITTER_API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8080"
	}

	apiToken := os.Getenv("FRITTER_API_TOKEN")
	if apiToken == "" {
		log.Fatal("FRITTER_API_TOKEN environment variable is required")
	}

	apiClient := client.NewClient(apiURL, apiToken)
	srv := server.NewServer(apiClient)

	if err := srv.Run(); err != nil {
		log.Fatal(err)
	}
}
