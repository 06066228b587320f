package investment

import (
	"log"
	"net/http"

	module "github.com/louisbranch/dwelling.space/internal/services/web/module"
	webi18n "github.com/louisbranch/dwelling.space/internal/services/web/platform/i18n"
	"github.com/louisbranch/dwelling.space/internal/services/web/platform/pagerender"
	"github.com/louisbranch/dwelling.space/internal/services/web/platform/weberror"
	"github.com/louisbranch/dwelling.space/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/dwelling.space/internal/services/web/templates"
)

type handlers struct {
	service service
	deps    module.Dependencies
}

func newHandlers(s service, deps module.Dependencies) handlers {
	return handlers{service: s, deps: deps}
}

func (h handlers) handleSummary(w http.ResponseWriter, r *http.Request) {
	p, sum, err := h.service.load(r.Context(), r.PathValue(routepath.ListingIDPathValueKey))
	if err != nil {
		log.Printf("investment summary failed path=%s err=%v", r.URL.Path, err)
		weberror.WriteModuleError(w, r, err, h.deps)
		return
	}
	err = pagerender.WriteLocalizedPage(w, r, h.deps, func(loc webi18n.Localizer) pagerender.ModulePage {
		return pagerender.ModulePage{
			Title:    webtemplates.T(loc, "investment.title"),
			Fragment: webtemplates.InvestmentPage(loc, p, sum),
		}
	})
	if err != nil {
		weberror.WriteModuleError(w, r, err, h.deps)
	}
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, h.deps)
}
