// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root                  = "/"
	Health                = "/up"
	Search                = "/search"
	SearchPrefix          = "/search/"
	SearchLocations       = "/search/locations"
	PropertyPrefix        = "/property/"
	PropertyPattern       = PropertyPrefix + "{id}"
	InvestmentPrefix      = "/investment/"
	InvestmentPattern     = InvestmentPrefix + "{id}"
	MarketTrends          = "/market-trends"
	MarketTrendsPrefix    = "/market-trends/"
	StaticPrefix          = "/static/"
	SearchLocationQuery   = "query"
	ListingIDPathValueKey = "id"
)

// Property returns the listing detail route.
func Property(externalID string) string {
	return PropertyPrefix + escapeSegment(externalID)
}

// Investment returns the listing investment summary route.
func Investment(externalID string) string {
	return InvestmentPrefix + escapeSegment(externalID)
}

// SearchWith returns the search route carrying values.
func SearchWith(values url.Values) string {
	encoded := values.Encode()
	if encoded == "" {
		return Search
	}
	return Search + "?" + encoded
}

// SearchLocationsWith returns the location suggestion route carrying the
// current search values.
func SearchLocationsWith(values url.Values) string {
	encoded := values.Encode()
	if encoded == "" {
		return SearchLocations
	}
	return SearchLocations + "?" + encoded
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
