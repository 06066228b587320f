// Package markettrends serves the Dubai market trends dashboard.
package markettrends

import (
	"net/http"

	module "github.com/louisbranch/dwelling.space/internal/services/web/module"
	"github.com/louisbranch/dwelling.space/internal/services/web/routepath"
)

// Module provides the dashboard routes.
type Module struct {
	deps module.Dependencies
}

// New returns a market trends module.
func New(deps module.Dependencies) Module {
	return Module{deps: deps}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "markettrends" }

// Mount wires the dashboard handlers. The dashboard data is static so the
// module needs no listings source.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m.deps))
	return module.Mount{Prefix: routepath.MarketTrendsPrefix, Handler: mux}, nil
}
