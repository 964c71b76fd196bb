// Package tools exposes the agent-facing tools (add, get_page_content,
// search_documentation) over the Model Context Protocol. Tool failures are
// reported as tool result text, never as protocol errors, so the agent always
// receives something it can show or act on.
package tools

import (
	"context"
	"fmt"
	"strconv"
	"time"
	"toolserver/internal/docindex"
	"toolserver/internal/fetcher"
	"toolserver/pkg/logger"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

const serverName = "toolserver"

// Server wires the tool handlers into an MCP server served over stdio.
type Server struct {
	mcp     *server.MCPServer
	fetcher *fetcher.Fetcher
	index   *docindex.Index
}

// New creates a Server exposing the three tools backed by the provided
// fetcher and documentation index.
func New(version string, f *fetcher.Fetcher, idx *docindex.Index) *Server {
	s := &Server{
		mcp:     server.NewMCPServer(serverName, version, server.WithToolCapabilities(false)),
		fetcher: f,
		index:   idx,
	}

	s.mcp.AddTool(mcp.NewTool("add",
		mcp.WithDescription("Add two numbers."),
		mcp.WithNumber("a", mcp.Required(), mcp.Description("First integer")),
		mcp.WithNumber("b", mcp.Required(), mcp.Description("Second integer")),
	), s.handleAdd)

	s.mcp.AddTool(mcp.NewTool("get_page_content",
		mcp.WithDescription("Get the content of the webpage as Markdown."),
		mcp.WithString("url", mcp.Required(), mcp.Description("The URL of the webpage to fetch")),
		mcp.WithNumber("timeout", mcp.Description("Request timeout in seconds (default: 30)")),
	), s.handleGetPageContent)

	s.mcp.AddTool(mcp.NewTool("search_documentation",
		mcp.WithDescription("Search the documentation for specific topics."),
		mcp.WithString("query", mcp.Required(), mcp.Description("The search term or question (e.g., \"how to use context\")")),
	), s.handleSearchDocumentation)

	return s
}

// Serve blocks serving MCP requests on stdin/stdout until the stream closes.
func (s *Server) Serve(ctx context.Context) error {
	logger.Info(ctx, "serving tools over stdio")

	if err := server.ServeStdio(s.mcp); err != nil {
		return fmt.Errorf("could not serve MCP over stdio: %w", err)
	}

	return nil
}

func (s *Server) handleAdd(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	a, err := req.RequireInt("a")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	b, err := req.RequireInt("b")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(strconv.Itoa(a + b)), nil
}

func (s *Server) handleGetPageContent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rawURL, err := req.RequireString("url")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	timeout := req.GetInt("timeout", 30)

	// FetchPage reports every failure through the result string, so the agent
	// sees the precise rejection reason instead of a protocol error.
	result := s.fetcher.FetchPage(ctx, rawURL, time.Duration(timeout)*time.Second)

	return mcp.NewToolResultText(result), nil
}

func (s *Server) handleSearchDocumentation(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	results, err := s.index.Search(ctx, query)
	if err != nil {
		logger.Error(ctx, "error searching documentation", zap.Error(err))

		return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
	}

	contents := make([]mcp.Content, 0, len(results))
	for _, res := range results {
		contents = append(contents, mcp.NewTextContent(res))
	}

	return &mcp.CallToolResult{Content: contents}, nil
}
