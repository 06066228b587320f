package service

import (
	"fmt"

	"github.com/louisbranch/dwelling.space/internal/listings"
	"github.com/louisbranch/dwelling.space/internal/services/mcp/domain"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerTools(registrar mcpRegistrationTarget, source listings.Source) error {
	registrations := []struct {
		tool    *mcp.Tool
		handler any
	}{
		{tool: domain.CashFlowTool(), handler: domain.CashFlowHandler()},
		{tool: domain.SearchPropertiesTool(), handler: domain.SearchPropertiesHandler(source)},
		{tool: domain.PropertyDetailTool(), handler: domain.PropertyDetailHandler(source)},
	}
	for _, registration := range registrations {
		if err := registerTool(registrar, registration.tool, registration.handler); err != nil {
			return err
		}
	}
	return nil
}

func registerTool(registrar mcpRegistrationTarget, tool *mcp.Tool, handler any) error {
	if registrar == nil {
		return fmt.Errorf("mcp registrar is nil")
	}
	if err := registrar.AddTool(tool, handler); err != nil {
		return fmt.Errorf("register tool %q: %w", tool.Name, err)
	}
	return nil
}
