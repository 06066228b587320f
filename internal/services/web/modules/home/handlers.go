package home

import (
	"net/http"

	module "github.com/louisbranch/dwelling.space/internal/services/web/module"
	"github.com/louisbranch/dwelling.space/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/dwelling.space/internal/services/web/platform/i18n"
	"github.com/louisbranch/dwelling.space/internal/services/web/platform/pagerender"
	"github.com/louisbranch/dwelling.space/internal/services/web/platform/weberror"
	webtemplates "github.com/louisbranch/dwelling.space/internal/services/web/templates"
)

type handlers struct {
	service service
	deps    module.Dependencies
}

func newHandlers(s service, deps module.Dependencies) handlers {
	return handlers{service: s, deps: deps}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	rentals := h.service.loadRentals(r.Context())
	err := pagerender.WriteLocalizedPage(w, r, h.deps, func(loc webi18n.Localizer) pagerender.ModulePage {
		return pagerender.ModulePage{
			Title:    webtemplates.T(loc, "home.title"),
			Fragment: webtemplates.HomePage(loc, rentals),
		}
	})
	if err != nil {
		weberror.WriteModuleError(w, r, err, h.deps)
	}
}

func (h handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	_ = httpx.WriteText(w, http.StatusOK, "ok")
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, h.deps)
}
