package domain

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/louisbranch/dwelling.space/internal/listings"
)

type fakeSource struct {
	properties []listings.Property
	property   listings.Property
	err        error
	queries    []listings.SearchQuery
	ids        []string
}

func (f *fakeSource) ListProperties(_ context.Context, query listings.SearchQuery) ([]listings.Property, error) {
	f.queries = append(f.queries, query)
	return f.properties, f.err
}

func (f *fakeSource) PropertyDetail(_ context.Context, externalID string) (listings.Property, error) {
	f.ids = append(f.ids, externalID)
	return f.property, f.err
}

func (f *fakeSource) AutoComplete(context.Context, string) ([]listings.Location, error) {
	return nil, f.err
}

func TestSearchPropertiesHandler(t *testing.T) {
	t.Run("maps filters and summaries", func(t *testing.T) {
		source := &fakeSource{properties: []listings.Property{{
			ExternalID: "81",
			Title:      "JVC studio",
			Price:      45000,
			CoverPhoto: &listings.Photo{URL: "https://images.example/81.jpg"},
		}}}
		_, result, err := SearchPropertiesHandler(source)(context.Background(), nil, SearchPropertiesInput{
			Purpose:  "for-sale",
			RoomsMin: " 2 ",
			Page:     3,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(result.Properties) != 1 || result.Properties[0].ExternalID != "81" {
			t.Fatalf("properties = %+v", result.Properties)
		}
		if result.Properties[0].CoverURL != "https://images.example/81.jpg" {
			t.Errorf("cover url = %q", result.Properties[0].CoverURL)
		}
		query := source.queries[0]
		if query.Purpose != "for-sale" || query.RoomsMin != "2" || query.Page != 3 {
			t.Errorf("query = %+v", query)
		}
	})

	t.Run("defaults purpose", func(t *testing.T) {
		source := &fakeSource{}
		if _, _, err := SearchPropertiesHandler(source)(context.Background(), nil, SearchPropertiesInput{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := source.queries[0].Purpose; got != listings.PurposeForRent {
			t.Errorf("purpose = %q, want %q", got, listings.PurposeForRent)
		}
	})

	t.Run("upstream error", func(t *testing.T) {
		source := &fakeSource{err: listings.ErrRateLimited}
		_, _, err := SearchPropertiesHandler(source)(context.Background(), nil, SearchPropertiesInput{})
		if !errors.Is(err, listings.ErrRateLimited) {
			t.Fatalf("err = %v, want ErrRateLimited", err)
		}
	})

	t.Run("nil source", func(t *testing.T) {
		if _, _, err := SearchPropertiesHandler(nil)(context.Background(), nil, SearchPropertiesInput{}); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestPropertyDetailHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		source := &fakeSource{property: listings.Property{
			ExternalID:  "5",
			Title:       "Hills villa",
			Description: "Quiet street.",
			Agency:      &listings.Agency{Name: "Acme Realty"},
			Photos:      []listings.Photo{{URL: "https://images.example/1.jpg"}, {URL: "https://images.example/2.jpg"}},
			Geography:   &listings.Geography{Lat: 25.1, Lng: 55.2},
			Amenities: []listings.AmenityGroup{{
				Text:      "Building",
				Amenities: []listings.Amenity{{Text: "Gym"}},
			}},
		}}
		_, result, err := PropertyDetailHandler(source)(context.Background(), nil, PropertyDetailInput{ExternalID: " 5 "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(source.ids) != 1 || source.ids[0] != "5" {
			t.Fatalf("ids = %v, want [5]", source.ids)
		}
		if result.Listing.Title != "Hills villa" || result.Agency != "Acme Realty" {
			t.Errorf("result = %+v", result)
		}
		if len(result.Photos) != 2 || len(result.Amenities) != 1 || result.Amenities[0] != "Gym" {
			t.Errorf("photos = %v amenities = %v", result.Photos, result.Amenities)
		}
		if result.Latitude != 25.1 || result.Longitude != 55.2 {
			t.Errorf("coordinates = %v,%v", result.Latitude, result.Longitude)
		}
	})

	t.Run("missing id", func(t *testing.T) {
		source := &fakeSource{}
		if _, _, err := PropertyDetailHandler(source)(context.Background(), nil, PropertyDetailInput{}); err == nil {
			t.Fatal("expected error")
		}
		if len(source.ids) != 0 {
			t.Fatalf("unexpected detail calls: %v", source.ids)
		}
	})

	t.Run("not found", func(t *testing.T) {
		source := &fakeSource{err: listings.ErrNotFound}
		_, _, err := PropertyDetailHandler(source)(context.Background(), nil, PropertyDetailInput{ExternalID: "x"})
		if !errors.Is(err, listings.ErrNotFound) {
			t.Fatalf("err = %v, want ErrNotFound", err)
		}
	})
}

func TestSearchSortHintListsCatalogValues(t *testing.T) {
	field, ok := reflect.TypeOf(SearchPropertiesInput{}).FieldByName("Sort")
	if !ok {
		t.Fatal("missing Sort field")
	}
	hint := field.Tag.Get("jsonschema")
	hinted := map[string]bool{}
	for _, token := range strings.FieldsFunc(hint, func(r rune) bool { return r == ',' || r == ' ' }) {
		hinted[token] = true
	}
	sortFilter, ok := listings.FilterByName(listings.ParamSort)
	if !ok {
		t.Fatal("missing sort filter")
	}
	for _, option := range sortFilter.Options {
		if !hinted[option.Value] {
			t.Fatalf("sort hint %q missing %q", hint, option.Value)
		}
	}
	if len(hinted) != len(sortFilter.Options)+1 { // + "or"
		t.Fatalf("sort hint %q lists values outside the catalog", hint)
	}
}
