// Package home serves the landing page and the health check.
package home

import (
	"errors"
	"net/http"

	module "github.com/louisbranch/dwelling.space/internal/services/web/module"
	"github.com/louisbranch/dwelling.space/internal/services/web/routepath"
)

// Module provides the root routes.
type Module struct {
	deps module.Dependencies
}

// New returns a home module.
func New(deps module.Dependencies) Module {
	return Module{deps: deps}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "home" }

// Mount wires the root route handlers.
func (m Module) Mount() (module.Mount, error) {
	if m.deps.Listings == nil {
		return module.Mount{}, errors.New("listings source is required")
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(m.deps.Listings), m.deps))
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
