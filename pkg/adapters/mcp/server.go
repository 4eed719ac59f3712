package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/tovenja/blocksift"
	"github.com/tovenja/blocksift/pkg/domain"
	"github.com/tovenja/blocksift/pkg/ports"
)

// Engine defines the interface required by the MCP server.
type Engine interface {
	Evaluate(ctx context.Context, session domain.Session) (*domain.Report, error)
}

// Server exposes the engine as an MCP server so agents can search and
// rewrite a block document as tools.
type Server struct {
	engine    Engine
	store     ports.BlockStore
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(engine Engine, store ports.BlockStore) *Server {
	s := &Server{
		engine:    engine,
		store:     store,
		mcpServer: server.NewMCPServer("blocksift-mcp", strings.TrimSpace(blocksift.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	// TOOL: search
	searchTool := mcp.NewTool("search",
		mcp.WithDescription("Count and list whole-word matches in the document without changing it."),
		mcp.WithString("search", mcp.Required(), mcp.Description("The term to look for")),
		mcp.WithBoolean("case_sensitive", mcp.Description("Match case exactly (default: case folded)")),
		mcp.WithOutputSchema[domain.Report](),
	)
	s.mcpServer.AddTool(searchTool, mcp.NewStructuredToolHandler(s.handleSearch))

	// TOOL: replace
	replaceTool := mcp.NewTool("replace",
		mcp.WithDescription("Replace every whole-word match and write the changed fields back."),
		mcp.WithString("search", mcp.Required(), mcp.Description("The term to look for")),
		mcp.WithString("replace", mcp.Required(), mcp.Description("The replacement text")),
		mcp.WithBoolean("case_sensitive", mcp.Description("Match case exactly (default: case folded)")),
		mcp.WithOutputSchema[domain.Report](),
	)
	s.mcpServer.AddTool(replaceTool, mcp.NewStructuredToolHandler(s.handleReplace))

	// TOOL: get_document
	s.mcpServer.AddTool(mcp.NewTool("get_document",
		mcp.WithDescription("Get the full block tree for inspection."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		blocks, err := s.store.GetBlocks(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("loading document failed: %v", err)), nil
		}
		jsonBytes, _ := json.Marshal(blocks)
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})
}

func (s *Server) handleSearch(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (domain.Report, error) {
	term, _ := args["search"].(string)
	caseSensitive, _ := args["case_sensitive"].(bool)

	report, err := s.engine.Evaluate(ctx, domain.Session{
		Search:        term,
		CaseSensitive: caseSensitive,
	})
	if err != nil {
		return domain.Report{}, fmt.Errorf("search failed: %w", err)
	}
	return *report, nil
}

func (s *Server) handleReplace(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (domain.Report, error) {
	term, _ := args["search"].(string)
	replacement, _ := args["replace"].(string)
	caseSensitive, _ := args["case_sensitive"].(bool)

	report, err := s.engine.Evaluate(ctx, domain.Session{
		Search:        term,
		Replace:       replacement,
		CaseSensitive: caseSensitive,
		Commit:        true,
	})
	if err != nil {
		return domain.Report{}, fmt.Errorf("replace failed: %w", err)
	}
	return *report, nil
}

func (s *Server) registerResources() {
	// EXPOSE: blocksift://document
	s.mcpServer.AddResource(mcp.NewResource("blocksift://document", "Current Block Document",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		blocks, err := s.store.GetBlocks(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load document: %w", err)
		}
		jsonBytes, _ := json.Marshal(blocks)

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "blocksift://document",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
