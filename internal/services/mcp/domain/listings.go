package domain

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/louisbranch/dwelling.space/internal/listings"
	"github.com/louisbranch/dwelling.space/internal/platform/timeouts"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// SearchPropertiesInput represents the MCP tool input for a listing search.
type SearchPropertiesInput struct {
	Purpose             string `json:"purpose,omitempty" jsonschema:"for-sale or for-rent, defaults to for-rent"`
	RentFrequency       string `json:"rent_frequency,omitempty" jsonschema:"yearly, monthly, weekly or daily"`
	MinPrice            string `json:"min_price,omitempty" jsonschema:"minimum price"`
	MaxPrice            string `json:"max_price,omitempty" jsonschema:"maximum price"`
	RoomsMin            string `json:"rooms_min,omitempty" jsonschema:"minimum bedrooms"`
	BathsMin            string `json:"baths_min,omitempty" jsonschema:"minimum bathrooms"`
	Sort                string `json:"sort,omitempty" jsonschema:"price-asc, price-desc, date-asc, date-desc, verified-score or city-level-score"`
	AreaMax             string `json:"area_max,omitempty" jsonschema:"maximum area in square feet"`
	LocationExternalIDs string `json:"location_external_ids,omitempty" jsonschema:"comma separated location ids"`
	CategoryExternalID  string `json:"category_external_id,omitempty" jsonschema:"property type id"`
	FurnishingStatus    string `json:"furnishing_status,omitempty" jsonschema:"furnished or unfurnished"`
	Page                int    `json:"page,omitempty" jsonschema:"zero based result page"`
}

func (in SearchPropertiesInput) query() listings.SearchQuery {
	values := map[string]string{
		listings.ParamPurpose:             in.Purpose,
		listings.ParamRentFrequency:       in.RentFrequency,
		listings.ParamMinPrice:            in.MinPrice,
		listings.ParamMaxPrice:            in.MaxPrice,
		listings.ParamRoomsMin:            in.RoomsMin,
		listings.ParamBathsMin:            in.BathsMin,
		listings.ParamSort:                in.Sort,
		listings.ParamAreaMax:             in.AreaMax,
		listings.ParamLocationExternalIDs: in.LocationExternalIDs,
		listings.ParamCategoryExternalID:  in.CategoryExternalID,
		listings.ParamFurnishingStatus:    in.FurnishingStatus,
	}
	raw := url.Values{}
	for name, value := range values {
		if value = strings.TrimSpace(value); value != "" {
			raw.Set(name, value)
		}
	}
	if in.Page > 0 {
		raw.Set(listings.ParamPage, strconv.Itoa(in.Page))
	}
	return listings.ParseSearchQuery(raw)
}

// PropertySummary is one listing in a search result.
type PropertySummary struct {
	ExternalID    string  `json:"external_id" jsonschema:"listing id accepted by property_detail"`
	Title         string  `json:"title" jsonschema:"listing title"`
	Price         float64 `json:"price" jsonschema:"asking price or rent in AED"`
	RentFrequency string  `json:"rent_frequency,omitempty" jsonschema:"rent period for rentals"`
	Rooms         int     `json:"rooms" jsonschema:"bedrooms"`
	Baths         int     `json:"baths" jsonschema:"bathrooms"`
	Area          float64 `json:"area" jsonschema:"area in square feet"`
	IsVerified    bool    `json:"is_verified" jsonschema:"whether the listing is verified"`
	CoverURL      string  `json:"cover_url,omitempty" jsonschema:"cover photo url"`
}

func summarize(p listings.Property) PropertySummary {
	return PropertySummary{
		ExternalID:    p.ExternalID,
		Title:         p.Title,
		Price:         p.Price,
		RentFrequency: p.RentFrequency,
		Rooms:         p.Rooms,
		Baths:         p.Baths,
		Area:          p.Area,
		IsVerified:    p.IsVerified,
		CoverURL:      p.CoverURL(),
	}
}

// SearchPropertiesResult represents the MCP tool output for a listing search.
type SearchPropertiesResult struct {
	Properties []PropertySummary `json:"properties" jsonschema:"matching listings"`
}

// PropertyDetailInput represents the MCP tool input for one listing.
type PropertyDetailInput struct {
	ExternalID string `json:"external_id" jsonschema:"listing id"`
}

// PropertyDetailResult represents the MCP tool output for one listing.
type PropertyDetailResult struct {
	Listing          PropertySummary `json:"listing" jsonschema:"listing headline figures"`
	Description      string          `json:"description,omitempty" jsonschema:"listing description"`
	Purpose          string          `json:"purpose,omitempty" jsonschema:"for-sale or for-rent"`
	Type             string          `json:"type,omitempty" jsonschema:"property type"`
	FurnishingStatus string          `json:"furnishing_status,omitempty" jsonschema:"furnishing status"`
	Agency           string          `json:"agency,omitempty" jsonschema:"advertising agency"`
	Amenities        []string        `json:"amenities,omitempty" jsonschema:"facility labels"`
	Photos           []string        `json:"photos,omitempty" jsonschema:"photo urls"`
	Latitude         float64         `json:"latitude,omitempty" jsonschema:"latitude"`
	Longitude        float64         `json:"longitude,omitempty" jsonschema:"longitude"`
}

// SearchPropertiesTool defines the MCP tool schema for listing searches.
func SearchPropertiesTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "search_properties",
		Description: "Searches Dubai property listings by purpose, price, rooms and location",
	}
}

// PropertyDetailTool defines the MCP tool schema for listing detail.
func PropertyDetailTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "property_detail",
		Description: "Returns the full detail of one property listing",
	}
}

// SearchPropertiesHandler lists properties matching the input filters.
func SearchPropertiesHandler(source listings.Source) mcp.ToolHandlerFor[SearchPropertiesInput, SearchPropertiesResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SearchPropertiesInput) (*mcp.CallToolResult, SearchPropertiesResult, error) {
		if source == nil {
			return nil, SearchPropertiesResult{}, errors.New("listings source is not configured")
		}
		runCtx, cancel := context.WithTimeout(ctx, timeouts.UpstreamRequest)
		defer cancel()

		properties, err := source.ListProperties(runCtx, input.query())
		if err != nil {
			return nil, SearchPropertiesResult{}, fmt.Errorf("search properties: %w", err)
		}
		result := SearchPropertiesResult{Properties: make([]PropertySummary, 0, len(properties))}
		for _, p := range properties {
			result.Properties = append(result.Properties, summarize(p))
		}
		return &mcp.CallToolResult{}, result, nil
	}
}

// PropertyDetailHandler fetches one listing.
func PropertyDetailHandler(source listings.Source) mcp.ToolHandlerFor[PropertyDetailInput, PropertyDetailResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input PropertyDetailInput) (*mcp.CallToolResult, PropertyDetailResult, error) {
		if source == nil {
			return nil, PropertyDetailResult{}, errors.New("listings source is not configured")
		}
		externalID := strings.TrimSpace(input.ExternalID)
		if externalID == "" {
			return nil, PropertyDetailResult{}, errors.New("external_id is required")
		}
		runCtx, cancel := context.WithTimeout(ctx, timeouts.UpstreamRequest)
		defer cancel()

		p, err := source.PropertyDetail(runCtx, externalID)
		if err != nil {
			return nil, PropertyDetailResult{}, fmt.Errorf("property detail %s: %w", externalID, err)
		}
		result := PropertyDetailResult{
			Listing:          summarize(p),
			Description:      p.Description,
			Purpose:          p.Purpose,
			Type:             p.Type,
			FurnishingStatus: p.FurnishingStatus,
			Amenities:        p.AmenityLabels(),
		}
		if p.Agency != nil {
			result.Agency = p.Agency.Name
		}
		for _, photo := range p.Photos {
			result.Photos = append(result.Photos, photo.URL)
		}
		if p.Geography.Valid() {
			result.Latitude = p.Geography.Lat
			result.Longitude = p.Geography.Lng
		}
		return &mcp.CallToolResult{}, result, nil
	}
}
