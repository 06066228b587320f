// Package modules defines the web module registry.
package modules

import (
	module "github.com/louisbranch/dwelling.space/internal/services/web/module"
	"github.com/louisbranch/dwelling.space/internal/services/web/modules/home"
	"github.com/louisbranch/dwelling.space/internal/services/web/modules/investment"
	"github.com/louisbranch/dwelling.space/internal/services/web/modules/markettrends"
	"github.com/louisbranch/dwelling.space/internal/services/web/modules/property"
	"github.com/louisbranch/dwelling.space/internal/services/web/modules/search"
)

// Module aliases the module interface contract.
type Module = module.Module

// DefaultModules returns every page module in mount order.
func DefaultModules(deps module.Dependencies) []Module {
	return []Module{
		home.New(deps),
		search.New(deps),
		property.New(deps),
		investment.New(deps),
		markettrends.New(deps),
	}
}
