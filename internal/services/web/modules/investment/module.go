// Package investment serves the investment summary of a listing.
package investment

import (
	"errors"
	"net/http"

	module "github.com/louisbranch/dwelling.space/internal/services/web/module"
	"github.com/louisbranch/dwelling.space/internal/services/web/routepath"
)

// Module provides investment summary routes.
type Module struct {
	deps module.Dependencies
}

// New returns an investment module.
func New(deps module.Dependencies) Module {
	return Module{deps: deps}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "investment" }

// Mount wires the investment summary handlers.
func (m Module) Mount() (module.Mount, error) {
	if m.deps.Listings == nil {
		return module.Mount{}, errors.New("listings source is required")
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(m.deps.Listings, m.deps.Rand), m.deps))
	return module.Mount{Prefix: routepath.InvestmentPrefix, Handler: mux}, nil
}
