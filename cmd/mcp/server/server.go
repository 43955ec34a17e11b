// Package server provides the MCP server implementation.
package server

import (
	"github.com/jbeshir/fritter-engagement/cmd/mcp/client"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Server is the MCP server for Fritter engagement.
type Server struct {
	client    *client.Client
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server with the given API client.
func NewServer(apiClient *client.Client) *Server {
	s := &Server{
		client: apiClient,
	}

	s.mcpServer = server.NewMCPServer(
		"fritter-engagement",
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

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("ranked_freets",
		mcp.WithDescription(
			"List every freet ordered by aggregate recommendation score, highest first. "+
				"Each like or happy reaction adds one; sad reactions add one, subtract one "+
				"or nothing depending on the reactor's decision."),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of freets to return (default: 20, max: 200)"),
		),
	), s.handleRankedFreets)

	s.mcpServer.AddTool(mcp.NewTool("get_freet",
		mcp.WithDescription("Get a single freet by its ID."),
		mcp.WithString("freet_id",
			mcp.Required(),
			mcp.Description("The ID of the freet to retrieve"),
		),
	), s.handleGetFreet)

	s.mcpServer.AddTool(mcp.NewTool("list_reactions",
		mcp.WithDescription("List reactions by author username, on a freet, or both."),
		mcp.WithString("author",
			mcp.Description("Username whose reactions to list"),
		),
		mcp.WithString("freet_id",
			mcp.Description("ID of the freet whose reactions to list"),
		),
	), s.handleListReactions)

	s.mcpServer.AddTool(mcp.NewTool("react",
		mcp.WithDescription(
			"React to a freet. Like and happy reactions boost the freet immediately; "+
				"sad reactions stay undecided until resolved with resolve_reaction."),
		mcp.WithString("freet_id",
			mcp.Required(),
			mcp.Description("ID of the freet to react to"),
		),
		mcp.WithString("reaction",
			mcp.Required(),
			mcp.Description("Reaction kind: 'like', 'happy' or 'sad'"),
			mcp.Enum("like", "happy", "sad"),
		),
	), s.handleReact)

	s.mcpServer.AddTool(mcp.NewTool("resolve_reaction",
		mcp.WithDescription("Decide whether one of your sad reactions should boost its freet."),
		mcp.WithString("reaction_id",
			mcp.Required(),
			mcp.Description("ID of the sad reaction"),
		),
		mcp.WithString("recommended",
			mcp.Required(),
			mcp.Description("'yes' to boost the freet, 'no' to demote it"),
			mcp.Enum("yes", "no"),
		),
	), s.handleResolveReaction)

	s.mcpServer.AddTool(mcp.NewTool("delete_reaction",
		mcp.WithDescription("Remove one of your reactions."),
		mcp.WithString("reaction_id",
			mcp.Required(),
			mcp.Description("ID of the reaction to remove"),
		),
	), s.handleDeleteReaction)

	s.mcpServer.AddTool(mcp.NewTool("bookmark",
		mcp.WithDescription("Bookmark a freet, or remove your bookmark from it."),
		mcp.WithString("freet_id",
			mcp.Required(),
			mcp.Description("ID of the freet"),
		),
		mcp.WithBoolean("bookmarked",
			mcp.Description("Whether the freet should be bookmarked (default: true)"),
		),
	), s.handleBookmark)

	s.mcpServer.AddTool(mcp.NewTool("list_bookmarks",
		mcp.WithDescription("List bookmarked freets of a user, or your own when no author is given."),
		mcp.WithString("author",
			mcp.Description("Username whose bookmarks to list"),
		),
	), s.handleListBookmarks)

	s.mcpServer.AddTool(mcp.NewTool("list_statuses",
		mcp.WithDescription("List statuses that have not yet expired."),
		mcp.WithString("author",
			mcp.Description("Only list statuses by this username"),
		),
	), s.handleListStatuses)

	s.mcpServer.AddTool(mcp.NewTool("list_notifications",
		mcp.WithDescription("List your unexpired notifications about engagement on your freets."),
	), s.handleListNotifications)
}
