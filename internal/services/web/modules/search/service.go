package search

import (
	"context"
	"log"
	"net/url"
	"strings"

	"github.com/louisbranch/dwelling.space/internal/listings"
	"github.com/louisbranch/dwelling.space/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/dwelling.space/internal/services/web/templates"
)

type service struct {
	source listings.Source
}

func newService(source listings.Source) service {
	return service{source: source}
}

// search returns the listings matching query. A failed fetch yields an
// empty result set.
func (s service) search(ctx context.Context, query listings.SearchQuery) []listings.Property {
	properties, err := s.source.ListProperties(ctx, query)
	if err != nil {
		log.Printf("listings fetch failed page=search err=%v", err)
		return nil
	}
	return properties
}

// suggest returns location suggestions for term. Each suggestion links to
// the search page with the location applied to current.
func (s service) suggest(ctx context.Context, current url.Values, term string) []webtemplates.LocationSuggestion {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil
	}
	locations, err := s.source.AutoComplete(ctx, term)
	if err != nil {
		log.Printf("listings auto-complete failed term=%q err=%v", term, err)
		return nil
	}
	base := withoutLocationTerm(current)
	out := make([]webtemplates.LocationSuggestion, 0, len(locations))
	for _, location := range locations {
		externalID := strings.TrimSpace(location.ExternalID)
		if externalID == "" {
			continue
		}
		out = append(out, webtemplates.LocationSuggestion{
			Name: location.Name,
			URL:  routepath.SearchWith(listings.MergeFilter(base, listings.ParamLocationExternalIDs, externalID)),
		})
	}
	return out
}

// buildView assembles the search page from the raw page parameters and the
// fetched listings.
func buildView(current url.Values, properties []listings.Property) webtemplates.SearchView {
	base := withoutLocationTerm(current)
	filters := listings.Filters()
	views := make([]webtemplates.FilterView, 0, len(filters))
	showFilters := false
	for _, filter := range filters {
		selected := strings.TrimSpace(base.Get(filter.Name))
		if selected != "" && filter.Name != listings.ParamPurpose {
			showFilters = true
		}
		view := webtemplates.FilterView{Name: filter.Name, Label: filter.Label}
		for _, option := range filter.Options {
			view.Options = append(view.Options, webtemplates.FilterOptionView{
				Label:    option.Label,
				URL:      routepath.SearchWith(listings.MergeFilter(base, filter.Name, option.Value)),
				Selected: selected == option.Value,
			})
		}
		views = append(views, view)
	}
	return webtemplates.SearchView{
		Purpose:      strings.TrimSpace(base.Get(listings.ParamPurpose)),
		LocationTerm: strings.TrimSpace(current.Get(routepath.SearchLocationQuery)),
		LocationsURL: routepath.SearchLocationsWith(base),
		ShowFilters:  showFilters,
		Filters:      views,
		Properties:   properties,
	}
}

func withoutLocationTerm(values url.Values) url.Values {
	out := url.Values{}
	for k, v := range values {
		if k == routepath.SearchLocationQuery {
			continue
		}
		out[k] = append([]string(nil), v...)
	}
	return out
}
