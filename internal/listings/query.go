package listings

import (
	"net/url"
	"strconv"
	"strings"
)

// Query parameter names accepted by the search page.
const (
	ParamPurpose             = "purpose"
	ParamRentFrequency       = "rentFrequency"
	ParamMinPrice            = "minPrice"
	ParamMaxPrice            = "maxPrice"
	ParamRoomsMin            = "roomsMin"
	ParamBathsMin            = "bathsMin"
	ParamSort                = "sort"
	ParamAreaMax             = "areaMax"
	ParamLocationExternalIDs = "locationExternalIDs"
	ParamCategoryExternalID  = "categoryExternalID"
	ParamFurnishingStatus    = "furnishingStatus"
	ParamPage                = "page"
)

// Purposes.
const (
	PurposeForSale = "for-sale"
	PurposeForRent = "for-rent"
)

// DubaiLocationExternalID is the listings API identifier for Dubai.
const DubaiLocationExternalID = "5002"

// HomeHitsPerPage is the size of each home page rail.
const HomeHitsPerPage = 6

// SearchQuery is the set of filters sent to the list endpoint. Every field
// is kept as the string the user picked so it can be echoed back into the
// filter form unchanged.
type SearchQuery struct {
	Purpose             string
	RentFrequency       string
	MinPrice            string
	MaxPrice            string
	RoomsMin            string
	BathsMin            string
	Sort                string
	AreaMax             string
	LocationExternalIDs string
	CategoryExternalID  string
	FurnishingStatus    string
	HitsPerPage         int
	Page                int
}

// DefaultSearchQuery returns the filters used when the search page is opened
// without any.
func DefaultSearchQuery() SearchQuery {
	return SearchQuery{
		Purpose:             PurposeForRent,
		RentFrequency:       "yearly",
		MinPrice:            "0",
		MaxPrice:            "1000000",
		RoomsMin:            "0",
		BathsMin:            "0",
		Sort:                "price-desc",
		AreaMax:             "35000",
		LocationExternalIDs: DubaiLocationExternalID,
		CategoryExternalID:  "4",
	}
}

// ParseSearchQuery reads search filters from page query parameters. Missing
// or blank values take the defaults.
func ParseSearchQuery(values url.Values) SearchQuery {
	q := DefaultSearchQuery()
	pick := func(name string, target *string) {
		if v := strings.TrimSpace(values.Get(name)); v != "" {
			*target = v
		}
	}
	pick(ParamPurpose, &q.Purpose)
	pick(ParamRentFrequency, &q.RentFrequency)
	pick(ParamMinPrice, &q.MinPrice)
	pick(ParamMaxPrice, &q.MaxPrice)
	pick(ParamRoomsMin, &q.RoomsMin)
	pick(ParamBathsMin, &q.BathsMin)
	pick(ParamSort, &q.Sort)
	pick(ParamAreaMax, &q.AreaMax)
	pick(ParamLocationExternalIDs, &q.LocationExternalIDs)
	pick(ParamCategoryExternalID, &q.CategoryExternalID)
	pick(ParamFurnishingStatus, &q.FurnishingStatus)
	if page, err := strconv.Atoi(strings.TrimSpace(values.Get(ParamPage))); err == nil && page > 0 {
		q.Page = page
	}
	return q
}

// HomeQuery returns the query behind one home page rail.
func HomeQuery(purpose string) SearchQuery {
	return SearchQuery{
		Purpose:             purpose,
		LocationExternalIDs: DubaiLocationExternalID,
		HitsPerPage:         HomeHitsPerPage,
	}
}

// Values encodes the query for the list endpoint. Price bounds are renamed
// to the API's priceMin and priceMax; empty fields are omitted.
func (q SearchQuery) Values() url.Values {
	v := url.Values{}
	set := func(name, value string) {
		if value = strings.TrimSpace(value); value != "" {
			v.Set(name, value)
		}
	}
	set("locationExternalIDs", q.LocationExternalIDs)
	set("purpose", q.Purpose)
	set("categoryExternalID", q.CategoryExternalID)
	set("bathsMin", q.BathsMin)
	set("rentFrequency", q.RentFrequency)
	set("priceMin", q.MinPrice)
	set("priceMax", q.MaxPrice)
	set("roomsMin", q.RoomsMin)
	set("sort", q.Sort)
	set("areaMax", q.AreaMax)
	set("furnishingStatus", q.FurnishingStatus)
	if q.HitsPerPage > 0 {
		v.Set("hitsPerPage", strconv.Itoa(q.HitsPerPage))
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	return v
}

// PageValues encodes the query with the search page's own parameter names,
// the inverse of ParseSearchQuery.
func (q SearchQuery) PageValues() url.Values {
	v := url.Values{}
	set := func(name, value string) {
		if value = strings.TrimSpace(value); value != "" {
			v.Set(name, value)
		}
	}
	set(ParamPurpose, q.Purpose)
	set(ParamRentFrequency, q.RentFrequency)
	set(ParamMinPrice, q.MinPrice)
	set(ParamMaxPrice, q.MaxPrice)
	set(ParamRoomsMin, q.RoomsMin)
	set(ParamBathsMin, q.BathsMin)
	set(ParamSort, q.Sort)
	set(ParamAreaMax, q.AreaMax)
	set(ParamLocationExternalIDs, q.LocationExternalIDs)
	set(ParamCategoryExternalID, q.CategoryExternalID)
	set(ParamFurnishingStatus, q.FurnishingStatus)
	if q.Page > 0 {
		v.Set(ParamPage, strconv.Itoa(q.Page))
	}
	return v
}

// Get returns the value of the named page parameter.
func (q SearchQuery) Get(name string) string {
	return q.PageValues().Get(name)
}
