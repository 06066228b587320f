// Package web parses web command flags and launches the browsing site.
package web

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/louisbranch/dwelling.space/internal/cmd/listingsource"
	entrypoint "github.com/louisbranch/dwelling.space/internal/platform/cmd"
	"github.com/louisbranch/dwelling.space/internal/services/web"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr string `env:"DWELLING_SPACE_WEB_HTTP_ADDR" envDefault:"localhost:8080"`
	Listings listingsource.Config
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	cfg.Listings.BindFlags(fs)
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the web server.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		source, closeSource, err := listingsource.Open(ctx, cfg.Listings)
		if err != nil {
			return err
		}
		defer func() {
			if err := closeSource(); err != nil {
				log.Printf("close listings cache: %v", err)
			}
		}()

		server, err := web.NewServer(web.Config{
			HTTPAddr: cfg.HTTPAddr,
			Listings: source,
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}
