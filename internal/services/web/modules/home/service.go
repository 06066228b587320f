package home

import (
	"context"
	"log"

	"github.com/louisbranch/dwelling.space/internal/listings"
)

type service struct {
	source listings.Source
}

func newService(source listings.Source) service {
	return service{source: source}
}

// loadRentals returns the home page rail. A failed fetch yields an empty
// rail.
func (s service) loadRentals(ctx context.Context) []listings.Property {
	properties, err := s.source.ListProperties(ctx, listings.HomeQuery(listings.PurposeForRent))
	if err != nil {
		log.Printf("listings fetch failed page=home err=%v", err)
		return nil
	}
	return properties
}
