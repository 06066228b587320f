package markettrends

import (
	"net/http"

	"github.com/louisbranch/dwelling.space/internal/markettrends"
	module "github.com/louisbranch/dwelling.space/internal/services/web/module"
	webi18n "github.com/louisbranch/dwelling.space/internal/services/web/platform/i18n"
	"github.com/louisbranch/dwelling.space/internal/services/web/platform/pagerender"
	"github.com/louisbranch/dwelling.space/internal/services/web/platform/weberror"
	webtemplates "github.com/louisbranch/dwelling.space/internal/services/web/templates"
)

type handlers struct {
	dashboard markettrends.Dashboard
	deps      module.Dependencies
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{dashboard: markettrends.BuildDashboard(), deps: deps}
}

func (h handlers) handleDashboard(w http.ResponseWriter, r *http.Request) {
	err := pagerender.WriteLocalizedPage(w, r, h.deps, func(loc webi18n.Localizer) pagerender.ModulePage {
		return pagerender.ModulePage{
			Title:    webtemplates.T(loc, "trends.page_title"),
			Fragment: webtemplates.MarketTrendsPage(loc, h.dashboard),
		}
	})
	if err != nil {
		weberror.WriteModuleError(w, r, err, h.deps)
	}
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, h.deps)
}
