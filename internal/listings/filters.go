package listings

import (
	"net/url"
	"strconv"
	"strings"
)

// FilterOption is one selectable value of a filter.
type FilterOption struct {
	Label string
	Value string
}

// Filter is one select box of the search form. Label is a message key.
type Filter struct {
	Name    string
	Label   string
	Options []FilterOption
}

var filterCatalog = []Filter{
	{
		Name:  ParamPurpose,
		Label: "search.filter.purpose",
		Options: []FilterOption{
			{Label: "Buy", Value: PurposeForSale},
			{Label: "Rent", Value: PurposeForRent},
		},
	},
	{
		Name:  ParamRentFrequency,
		Label: "search.filter.rent_frequency",
		Options: []FilterOption{
			{Label: "Daily", Value: "daily"},
			{Label: "Weekly", Value: "weekly"},
			{Label: "Monthly", Value: "monthly"},
			{Label: "Yearly", Value: "yearly"},
		},
	},
	{
		Name:  ParamMinPrice,
		Label: "search.filter.min_price",
		Options: []FilterOption{
			{Label: "10,000", Value: "10000"},
			{Label: "20,000", Value: "20000"},
			{Label: "30,000", Value: "30000"},
			{Label: "40,000", Value: "40000"},
			{Label: "50,000", Value: "50000"},
			{Label: "60,000", Value: "60000"},
			{Label: "85,000", Value: "85000"},
		},
	},
	{
		Name:  ParamMaxPrice,
		Label: "search.filter.max_price",
		Options: []FilterOption{
			{Label: "50,000", Value: "50000"},
			{Label: "60,000", Value: "60000"},
			{Label: "85,000", Value: "85000"},
			{Label: "110,000", Value: "110000"},
			{Label: "135,000", Value: "135000"},
			{Label: "160,000", Value: "160000"},
			{Label: "185,000", Value: "185000"},
			{Label: "200,000", Value: "200000"},
			{Label: "300,000", Value: "300000"},
			{Label: "400,000", Value: "400000"},
			{Label: "500,000", Value: "500000"},
			{Label: "600,000", Value: "600000"},
			{Label: "700,000", Value: "700000"},
			{Label: "800,000", Value: "800000"},
			{Label: "900,000", Value: "900000"},
			{Label: "1,000,000", Value: "1000000"},
		},
	},
	{
		Name:  ParamSort,
		Label: "search.filter.sort",
		Options: []FilterOption{
			{Label: "Lowest Price", Value: "price-asc"},
			{Label: "Highest Price", Value: "price-desc"},
			{Label: "Newest", Value: "date-asc"},
			{Label: "Oldest", Value: "date-desc"},
			{Label: "Verified", Value: "verified-score"},
			{Label: "City Level Score", Value: "city-level-score"},
		},
	},
	{
		Name:  ParamAreaMax,
		Label: "search.filter.area_max",
		Options: []FilterOption{
			{Label: "1000", Value: "1000"},
			{Label: "2000", Value: "2000"},
			{Label: "3000", Value: "3000"},
			{Label: "4000", Value: "4000"},
			{Label: "5000", Value: "5000"},
			{Label: "10000", Value: "10000"},
			{Label: "20000", Value: "20000"},
		},
	},
	{
		Name:    ParamRoomsMin,
		Label:   "search.filter.rooms",
		Options: countOptions(10),
	},
	{
		Name:    ParamBathsMin,
		Label:   "search.filter.baths",
		Options: countOptions(10),
	},
	{
		Name:  ParamFurnishingStatus,
		Label: "search.filter.furnishing",
		Options: []FilterOption{
			{Label: "Furnished", Value: "furnished"},
			{Label: "Unfurnished", Value: "unfurnished"},
		},
	},
	{
		Name:  ParamCategoryExternalID,
		Label: "search.filter.property_type",
		Options: []FilterOption{
			{Label: "Apartment", Value: "4"},
			{Label: "Townhouses", Value: "16"},
			{Label: "Villas", Value: "3"},
			{Label: "Penthouses", Value: "18"},
			{Label: "Hotel Apartments", Value: "21"},
			{Label: "Villa Compound", Value: "19"},
			{Label: "Residential Plot", Value: "14"},
			{Label: "Residential Floor", Value: "12"},
			{Label: "Residential Building", Value: "17"},
		},
	},
}

// Filters returns the search form filters in display order.
func Filters() []Filter {
	out := make([]Filter, len(filterCatalog))
	for i, f := range filterCatalog {
		f.Options = append([]FilterOption(nil), f.Options...)
		out[i] = f
	}
	return out
}

// FilterByName returns the named filter.
func FilterByName(name string) (Filter, bool) {
	for _, f := range filterCatalog {
		if f.Name == name {
			f.Options = append([]FilterOption(nil), f.Options...)
			return f, true
		}
	}
	return Filter{}, false
}

// MergeFilter returns a copy of current with name set to value. Every other
// parameter is kept, the page is reset, and a blank value leaves current
// untouched.
func MergeFilter(current url.Values, name, value string) url.Values {
	out := url.Values{}
	for k, v := range current {
		out[k] = append([]string(nil), v...)
	}
	name = strings.TrimSpace(name)
	value = strings.TrimSpace(value)
	if name == "" || value == "" {
		return out
	}
	out.Set(name, value)
	out.Del(ParamPage)
	return out
}

func countOptions(n int) []FilterOption {
	options := make([]FilterOption, 0, n)
	for i := 1; i <= n; i++ {
		s := strconv.Itoa(i)
		options = append(options, FilterOption{Label: s, Value: s})
	}
	return options
}
