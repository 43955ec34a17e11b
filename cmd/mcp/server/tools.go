package server

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) handleRankedFreets(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	limit := parseLimit(request.Params.Arguments, 20, 200)

	freets, err := s.client.RankedFreets(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to rank freets: %v", err)), nil
	}
	if len(freets) > limit {
		freets = freets[:limit]
	}

	return formatListResult("ranked freets", freets)
}

func (s *Server) handleGetFreet(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	freetID, ok := requiredString(request.Params.Arguments, "freet_id")
	if !ok {
		return mcp.NewToolResultError("freet_id is required"), nil
	}

	freet, err := s.client.GetFreet(ctx, freetID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get freet: %v", err)), nil
	}

	return formatResult(freet)
}

func (s *Server) handleListReactions(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments
	author, _ := requiredString(args, "author")
	freetID, _ := requiredString(args, "freet_id")
	if author == "" && freetID == "" {
		return mcp.NewToolResultError("author or freet_id is required"), nil
	}

	reactions, err := s.client.ListReactions(ctx, author, freetID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list reactions: %v", err)), nil
	}

	return formatListResult("reactions", reactions)
}

func (s *Server) handleReact(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments

	freetID, ok := requiredString(args, "freet_id")
	if !ok {
		return mcp.NewToolResultError("freet_id is required"), nil
	}

	kind, ok := requiredString(args, "reaction")
	if !ok {
		return mcp.NewToolResultError("reaction is required (must be 'like', 'happy', or 'sad')"), nil
	}
	kind = strings.ToLower(kind)
	switch kind {
	case "like", "happy", "sad":
	default:
		return mcp.NewToolResultError("reaction must be 'like', 'happy', or 'sad'"), nil
	}

	reaction, err := s.client.CreateReaction(ctx, freetID, kind)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to react to freet: %v", err)), nil
	}

	return formatResult(reaction)
}

func (s *Server) handleResolveReaction(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments

	reactionID, ok := requiredString(args, "reaction_id")
	if !ok {
		return mcp.NewToolResultError("reaction_id is required"), nil
	}

	decision, ok := requiredString(args, "recommended")
	if !ok || (decision != "yes" && decision != "no") {
		return mcp.NewToolResultError("recommended is required (must be 'yes' or 'no')"), nil
	}

	reaction, err := s.client.ResolveReaction(ctx, reactionID, decision)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to resolve reaction: %v", err)), nil
	}

	return formatResult(reaction)
}

func (s *Server) handleDeleteReaction(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	reactionID, ok := requiredString(request.Params.Arguments, "reaction_id")
	if !ok {
		return mcp.NewToolResultError("reaction_id is required"), nil
	}

	if err := s.client.DeleteReaction(ctx, reactionID); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to delete reaction: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Successfully deleted reaction %s", reactionID)), nil
}

func (s *Server) handleBookmark(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments

	freetID, ok := requiredString(args, "freet_id")
	if !ok {
		return mcp.NewToolResultError("freet_id is required"), nil
	}

	bookmarked := true
	if b, ok := args["bookmarked"].(bool); ok {
		bookmarked = b
	}

	if !bookmarked {
		if err := s.client.DeleteBookmark(ctx, freetID); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to remove bookmark: %v", err)), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("Successfully removed bookmark from freet %s", freetID)), nil
	}

	bookmark, err := s.client.CreateBookmark(ctx, freetID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to bookmark freet: %v", err)), nil
	}

	return formatResult(bookmark)
}

func (s *Server) handleListBookmarks(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	author, _ := requiredString(request.Params.Arguments, "author")

	freets, err := s.client.ListBookmarks(ctx, author)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list bookmarks: %v", err)), nil
	}

	return formatListResult("bookmarked freets", freets)
}

func (s *Server) handleListStatuses(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	author, _ := requiredString(request.Params.Arguments, "author")

	statuses, err := s.client.ListStatuses(ctx, author)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list statuses: %v", err)), nil
	}

	return formatListResult("statuses", statuses)
}

func (s *Server) handleListNotifications(
	ctx context.Context,
	_ mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	notifications, err := s.client.ListNotifications(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list notifications: %v", err)), nil
	}

	return formatListResult("notifications", notifications)
}

func requiredString(args map[string]any, name string) (string, bool) {
	v, ok := args[name].(string)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func parseLimit(args map[string]any, fallback, maximum int) int {
	if l, ok := args["limit"].(float64); ok && l > 0 {
		return min(int(l), maximum)
	}
	return fallback
}

func formatListResult[T any](noun string, items []T) (*mcp.CallToolResult, error) {
	if len(items) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No %s found.", noun)), nil
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to format %s: %v", noun, err)), nil
	}

	msg := fmt.Sprintf("Found %d %s:\n\n%s", len(items), noun, string(data))
	return mcp.NewToolResultText(msg), nil
}

func formatResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to format result: %v", err)), nil
	}

	return mcp.NewToolResultText(string(data)), nil
}
