package templates

import (
	"context"

	"github.com/a-h/templ"
	"github.com/louisbranch/dwelling.space/internal/listings"
	"github.com/louisbranch/dwelling.space/internal/services/web/routepath"
)

// FilterOptionView is one option of a filter select. URL is the search page
// with the option applied.
type FilterOptionView struct {
	Label    string
	URL      string
	Selected bool
}

// FilterView is one filter select. Label is a message key.
type FilterView struct {
	Name    string
	Label   string
	Options []FilterOptionView
}

// SearchView is everything the search page renders.
type SearchView struct {
	Purpose      string
	LocationTerm string
	LocationsURL string
	ShowFilters  bool
	Filters      []FilterView
	Properties   []listings.Property
}

// LocationSuggestion is one auto-complete entry.
type LocationSuggestion struct {
	Name string
	URL  string
}

// SearchPage renders the filter form and the result grid.
func SearchPage(loc Localizer, view SearchView) templ.Component {
	return htmlComponent(func(ctx context.Context, h *htmlWriter) {
		h.component(ctx, searchFilters(loc, view))
		h.raw(`<h1 class="search-heading">`)
		h.text(T(loc, "search.heading", view.Purpose))
		h.raw("</h1>")
		h.component(ctx, PropertyGrid(loc, view.Properties))
		if len(view.Properties) == 0 {
			h.raw(`<div class="empty-state"><img src="/static/noresult.svg" width="240" height="180"`)
			h.attr("alt", T(loc, "search.empty.image_alt"))
			h.raw("><p>")
			h.text(T(loc, "search.empty.message"))
			h.raw("</p></div>")
		}
	})
}

func searchFilters(loc Localizer, view SearchView) templ.Component {
	return htmlComponent(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<section class="search-filters"><div class="location-search"><input type="search" autocomplete="off"`)
		h.attr("name", routepath.SearchLocationQuery)
		h.attr("value", view.LocationTerm)
		h.attr("placeholder", T(loc, "search.location.placeholder"))
		h.attr("aria-label", T(loc, "search.location.placeholder"))
		h.url("hx-get", view.LocationsURL)
		h.attr("hx-trigger", "input changed delay:300ms, search")
		h.attr("hx-target", "#location-suggestions")
		h.attr("hx-indicator", "#location-spinner")
		h.raw(`><span id="location-spinner" class="htmx-indicator spinner"></span></div><div id="location-suggestions" class="location-suggestions" aria-live="polite"></div><details class="filter-panel"`)
		h.flag("open", view.ShowFilters)
		h.raw(`><summary class="button button-outline" data-label-open="`)
		h.text(T(loc, "search.filters.hide"))
		h.raw(`" data-label-closed="`)
		h.text(T(loc, "search.filters.show"))
		h.raw(`">`)
		if view.ShowFilters {
			h.text(T(loc, "search.filters.hide"))
		} else {
			h.text(T(loc, "search.filters.show"))
		}
		h.raw(`</summary><div class="filter-grid">`)
		for _, filter := range view.Filters {
			h.component(ctx, filterSelect(loc, filter))
		}
		h.raw("</div></details></section>")
	})
}

func filterSelect(loc Localizer, filter FilterView) templ.Component {
	return htmlComponent(func(_ context.Context, h *htmlWriter) {
		label := T(loc, filter.Label)
		id := "filter-" + filter.Name
		h.raw(`<div class="filter"><label`)
		h.attr("for", id)
		h.raw(">")
		h.text(label)
		h.raw("</label><select data-navigate")
		h.attr("id", id)
		h.attr("name", filter.Name)
		h.raw(`><option value="">`)
		h.text(T(loc, "search.filters.select", label))
		h.raw("</option>")
		for _, option := range filter.Options {
			h.raw("<option")
			h.attr("value", string(templ.URL(option.URL)))
			h.flag("selected", option.Selected)
			h.raw(">")
			h.text(option.Label)
			h.raw("</option>")
		}
		h.raw("</select></div>")
	})
}

// LocationSuggestions renders the auto-complete fragment.
func LocationSuggestions(loc Localizer, term string, suggestions []LocationSuggestion) templ.Component {
	return htmlComponent(func(_ context.Context, h *htmlWriter) {
		if term == "" {
			return
		}
		h.raw(`<ul class="suggestions">`)
		for _, suggestion := range suggestions {
			h.raw("<li><a")
			h.url("href", suggestion.URL)
			h.raw(">")
			h.text(suggestion.Name)
			h.raw("</a></li>")
		}
		if len(suggestions) == 0 {
			h.raw(`<li class="suggestions-empty">`)
			h.text(T(loc, "search.location.no_results"))
			h.raw("</li>")
		}
		h.raw("</ul>")
	})
}
