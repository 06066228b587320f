// Package property serves the listing detail page.
package property

import (
	"errors"
	"net/http"

	module "github.com/louisbranch/dwelling.space/internal/services/web/module"
	"github.com/louisbranch/dwelling.space/internal/services/web/routepath"
)

// Module provides listing detail routes.
type Module struct {
	deps module.Dependencies
}

// New returns a property module.
func New(deps module.Dependencies) Module {
	return Module{deps: deps}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "property" }

// Mount wires the listing detail handlers.
func (m Module) Mount() (module.Mount, error) {
	if m.deps.Listings == nil {
		return module.Mount{}, errors.New("listings source is required")
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(m.deps.Listings), m.deps))
	return module.Mount{Prefix: routepath.PropertyPrefix, Handler: mux}, nil
}
