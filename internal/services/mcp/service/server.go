package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/louisbranch/dwelling.space/internal/listings"
	"github.com/louisbranch/dwelling.space/internal/services/mcp/domain"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// serverName identifies this MCP server to clients.
	serverName = "dwelling.space MCP"
	// serverVersion identifies the MCP server version.
	serverVersion = "0.1.0"
)

// Config configures the MCP server.
type Config struct {
	Listings listings.Source
}

// Server hosts the MCP server.
type Server struct {
	mcpServer *mcp.Server
}

type mcpRegistrationTarget interface {
	AddTool(*mcp.Tool, any) error
}

type mcpServerRegistrationAdapter struct {
	server *mcp.Server
}

func (r mcpServerRegistrationAdapter) AddTool(tool *mcp.Tool, handler any) error {
	return addMCPTool(r.server, tool, handler)
}

type mcpToolRegistrar struct {
	matches func(any) bool
	add     func(*mcp.Server, *mcp.Tool, any)
}

func newMCPToolRegistrar[I any, O any]() mcpToolRegistrar {
	return mcpToolRegistrar{
		matches: func(handler any) bool {
			_, ok := handler.(mcp.ToolHandlerFor[I, O])
			return ok
		},
		add: func(server *mcp.Server, tool *mcp.Tool, handler any) {
			mcp.AddTool(server, tool, handler.(mcp.ToolHandlerFor[I, O]))
		},
	}
}

var mcpToolRegistrars = []mcpToolRegistrar{
	newMCPToolRegistrar[domain.CashFlowInput, domain.CashFlowResult](),
	newMCPToolRegistrar[domain.SearchPropertiesInput, domain.SearchPropertiesResult](),
	newMCPToolRegistrar[domain.PropertyDetailInput, domain.PropertyDetailResult](),
}

func addMCPTool(server *mcp.Server, tool *mcp.Tool, handler any) error {
	for _, registrar := range mcpToolRegistrars {
		if registrar.matches(handler) {
			registrar.add(server, tool, handler)
			return nil
		}
	}
	toolName := "<nil>"
	if tool != nil {
		toolName = tool.Name
	}
	return fmt.Errorf("mcp registration adapter does not support handler type %T for tool %q", handler, toolName)
}

// New creates an MCP server whose listing tools read from source.
func New(source listings.Source) (*Server, error) {
	if source == nil {
		return nil, errors.New("listings source is required")
	}
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)
	if err := registerTools(mcpServerRegistrationAdapter{server: mcpServer}, source); err != nil {
		return nil, err
	}
	return &Server{mcpServer: mcpServer}, nil
}

// Run is the service entrypoint for MCP and blocks until the client
// disconnects or ctx is canceled.
func Run(ctx context.Context, cfg Config) error {
	server, err := New(cfg.Listings)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}

// Serve runs the server over stdio.
func (s *Server) Serve(ctx context.Context) error {
	return s.serveWithTransport(ctx, &mcp.StdioTransport{})
}

func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}
