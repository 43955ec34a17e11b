package server

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jbeshir/fritter-engagement/cmd/mcp/client"
	"github.com/mark3labs/mcp-go/mcp"
)

const freetURIPrefix = "freet://"

func (s *Server) registerResources() {
	s.mcpServer.AddResourceTemplate(
		mcp.NewResourceTemplate(
			freetURIPrefix+"{freet_id}",
			"Individual freet",
			mcp.WithTemplateDescription(
				"Fetch a freet by its ID, together with the reactions on it."),
			mcp.WithTemplateMIMEType("application/json"),
		),
		s.handleFreetResource,
	)
}

type freetResource struct {
	Freet     *client.Freet     `json:"freet"`
	Reactions []client.Reaction `json:"reactions"`
}

func freetIDFromURI(uri string) (string, error) {
	if !strings.HasPrefix(uri, freetURIPrefix) {
		return "", fmt.Errorf("invalid freet URI format: %s", uri)
	}

	freetID := strings.TrimPrefix(uri, freetURIPrefix)
	if freetID == "" {
		return "", fmt.Errorf("missing freet_id in URI: %s", uri)
	}
	return freetID, nil
}

func (s *Server) handleFreetResource(
	ctx context.Context,
	request mcp.ReadResourceRequest,
) ([]mcp.ResourceContents, error) {
	uri := request.Params.URI
	freetID, err := freetIDFromURI(uri)
	if err != nil {
		return nil, err
	}

	freet, err := s.client.GetFreet(ctx, freetID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch freet %s: %w", freetID, err)
	}

	reactions, err := s.client.ListReactions(ctx, "", freetID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reactions for freet %s: %w", freetID, err)
	}
	if reactions == nil {
		reactions = []client.Reaction{}
	}

	data, err := json.MarshalIndent(freetResource{Freet: freet, Reactions: reactions}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal freet: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
