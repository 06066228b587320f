package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/louisbranch/dwelling.space/internal/listings"
	"github.com/louisbranch/dwelling.space/internal/platform/timeouts"
	"github.com/louisbranch/dwelling.space/internal/services/web/app"
	module "github.com/louisbranch/dwelling.space/internal/services/web/module"
	"github.com/louisbranch/dwelling.space/internal/services/web/modules"
	"github.com/louisbranch/dwelling.space/internal/services/web/platform/httpx"
	"github.com/louisbranch/dwelling.space/internal/services/web/platform/observability"
	"github.com/louisbranch/dwelling.space/internal/services/web/routepath"
	"github.com/louisbranch/dwelling.space/internal/services/web/static"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Config defines the inputs for the web server.
type Config struct {
	HTTPAddr string
	Listings listings.Source
	// NewRand overrides the per-request random source of investment pages.
	NewRand module.NewRand
	// Logger receives one line per request. Nil uses the standard logger.
	Logger *log.Logger
}

// Server hosts the web HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler composes the static assets and every page module.
func NewHandler(config Config) (http.Handler, error) {
	if config.Listings == nil {
		return nil, errors.New("listings source is required")
	}
	deps := module.Dependencies{
		Listings: config.Listings,
		NewRand:  config.NewRand,
	}
	pages, err := app.Compose(app.ComposeInput{Modules: modules.DefaultModules(deps)})
	if err != nil {
		return nil, fmt.Errorf("compose modules: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(static.FS))))
	mux.Handle(routepath.Root, pages)

	handler := httpx.Chain(mux,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		observability.RequestLogger(config.Logger),
	)
	return otelhttp.NewHandler(handler, "web"), nil
}

// NewServer builds a server listening on config.HTTPAddr.
func NewServer(config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(config)
	if err != nil {
		return nil, fmt.Errorf("build handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// ListenAndServe serves HTTP until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	log.Printf("web listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close releases server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	if err := s.httpServer.Close(); err != nil {
		log.Printf("close web server: %v", err)
	}
}
