// Package mcp parses MCP command flags and serves the tools over stdio.
package mcp

import (
	"context"
	"flag"
	"log"

	"github.com/louisbranch/dwelling.space/internal/cmd/listingsource"
	entrypoint "github.com/louisbranch/dwelling.space/internal/platform/cmd"
	mcpservice "github.com/louisbranch/dwelling.space/internal/services/mcp/service"
)

// Config holds MCP command configuration.
type Config struct {
	Listings listingsource.Config
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	cfg.Listings.BindFlags(fs)
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the MCP server.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceMCP, func(ctx context.Context) error {
		source, closeSource, err := listingsource.Open(ctx, cfg.Listings)
		if err != nil {
			return err
		}
		defer func() {
			if err := closeSource(); err != nil {
				log.Printf("close listings cache: %v", err)
			}
		}()
		return mcpservice.Run(ctx, mcpservice.Config{Listings: source})
	})
}
