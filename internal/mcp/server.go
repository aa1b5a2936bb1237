// Package mcpserver exposes the resolution pipeline as an MCP tool over
// stdio, so MCP-capable clients can answer questions through the same
// cache-first path the HTTP route uses.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/quizd/quizd/internal/resolver"
)

// Server wraps the MCP server around the resolver.
type Server struct {
	mcpServer *mcp.Server
	resolver  *resolver.Resolver
	logger    zerolog.Logger
}

// AnswerToolArgs defines the arguments for the answer_question tool.
type AnswerToolArgs struct {
	Title   string `json:"title" jsonschema:"description:Full question text"`
	Type    string `json:"type" jsonschema:"description:Question category: single, multiple, judgement, completion, line, fill or reader"`
	Options string `json:"options" jsonschema:"description:Option text shown with the question, empty for fill-in-the-blank"`
}

// New creates a new MCP server.
func New(res *resolver.Resolver, logger zerolog.Logger) (*Server, error) {
	s := &Server{
		resolver: res,
		logger:   logger,
	}

	impl := &mcp.Implementation{
		Name:    "quizd",
		Version: "1.0.0",
	}

	mcpServer := mcp.NewServer(impl, nil)

	mcp.AddTool(
		mcpServer,
		&mcp.Tool{
			Name:        "answer_question",
			Description: "Answer a quiz question. Previously seen questions are served from the answer cache; new ones are resolved through the configured LLM provider.",
		},
		s.handleAnswerTool,
	)

	s.mcpServer = mcpServer

	logger.Info().
		Str("tool", "answer_question").
		Msg("MCP server initialized")

	return s, nil
}

// ServeStdio starts the MCP server in stdio mode.
func (s *Server) ServeStdio(ctx context.Context) error {
	s.logger.Info().Msg("Starting MCP server in stdio mode")

	transport := &mcp.StdioTransport{}

	return s.mcpServer.Run(ctx, transport)
}

// handleAnswerTool handles the answer_question tool invocation.
func (s *Server) handleAnswerTool(ctx context.Context, request *mcp.CallToolRequest, args AnswerToolArgs) (*mcp.CallToolResult, any, error) {
	s.logger.Info().
		Str("title", args.Title).
		Str("type", args.Type).
		Msg("MCP tool invoked")

	result := s.resolver.Resolve(ctx, resolver.Question{
		Title:   args.Title,
		Type:    args.Type,
		Options: args.Options,
	})

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: result.Answer},
		},
		IsError: result.Status != resolver.StatusSuccess,
	}, result, nil
}
