package investment

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/louisbranch/dwelling.space/internal/investment/summary"
	"github.com/louisbranch/dwelling.space/internal/listings"
	apperrors "github.com/louisbranch/dwelling.space/internal/services/web/platform/errors"
)

type service struct {
	source  listings.Source
	newRand func() (*rand.Rand, error)
}

func newService(source listings.Source, newRand func() (*rand.Rand, error)) service {
	return service{source: source, newRand: newRand}
}

// load fetches one listing and computes its summary. A failed fetch surfaces
// as not found; a failed computation is an internal error.
func (s service) load(ctx context.Context, externalID string) (listings.Property, summary.Summary, error) {
	externalID = strings.TrimSpace(externalID)
	if externalID == "" {
		return listings.Property{}, summary.Summary{}, apperrors.E(apperrors.KindNotFound, "listing id is required")
	}
	p, err := s.source.PropertyDetail(ctx, externalID)
	if err != nil {
		return listings.Property{}, summary.Summary{}, apperrors.Wrap(apperrors.KindNotFound, "web.error.listing_missing", err)
	}
	rng, err := s.newRand()
	if err != nil {
		return listings.Property{}, summary.Summary{}, fmt.Errorf("seed summary: %w", err)
	}
	sum, err := summary.Build(p.Price, rng)
	if err != nil {
		return listings.Property{}, summary.Summary{}, fmt.Errorf("build summary listing=%s: %w", externalID, err)
	}
	return p, sum, nil
}
