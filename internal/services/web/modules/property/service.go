package property

import (
	"context"
	"strings"

	"github.com/louisbranch/dwelling.space/internal/listings"
	apperrors "github.com/louisbranch/dwelling.space/internal/services/web/platform/errors"
)

type service struct {
	source listings.Source
}

func newService(source listings.Source) service {
	return service{source: source}
}

// load fetches one listing. Every upstream failure surfaces as not found.
func (s service) load(ctx context.Context, externalID string) (listings.Property, error) {
	externalID = strings.TrimSpace(externalID)
	if externalID == "" {
		return listings.Property{}, apperrors.E(apperrors.KindNotFound, "listing id is required")
	}
	p, err := s.source.PropertyDetail(ctx, externalID)
	if err != nil {
		return listings.Property{}, apperrors.Wrap(apperrors.KindNotFound, "web.error.listing_missing", err)
	}
	return p, nil
}
