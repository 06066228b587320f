package search

import (
	"bytes"
	"net/http"

	"github.com/louisbranch/dwelling.space/internal/listings"
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

func (h handlers) handleSearch(w http.ResponseWriter, r *http.Request) {
	current := r.URL.Query()
	properties := h.service.search(r.Context(), listings.ParseSearchQuery(current))
	view := buildView(current, properties)
	err := pagerender.WriteLocalizedPage(w, r, h.deps, func(loc webi18n.Localizer) pagerender.ModulePage {
		return pagerender.ModulePage{
			Title:    webtemplates.T(loc, "search.title"),
			Fragment: webtemplates.SearchPage(loc, view),
		}
	})
	if err != nil {
		weberror.WriteModuleError(w, r, err, h.deps)
	}
}

// handleLocations renders the suggestion list swapped under the location
// input. It never renders the page shell.
func (h handlers) handleLocations(w http.ResponseWriter, r *http.Request) {
	current := r.URL.Query()
	term := current.Get(routepath.SearchLocationQuery)
	suggestions := h.service.suggest(r.Context(), current, term)
	loc, _ := webi18n.ResolveLocalizer(w, r, h.deps.ResolveLanguage)

	var buf bytes.Buffer
	if err := webtemplates.LocationSuggestions(loc, term, suggestions).Render(r.Context(), &buf); err != nil {
		weberror.WriteModuleError(w, r, err, h.deps)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, h.deps)
}
