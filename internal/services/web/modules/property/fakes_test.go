package property

import (
	"context"
	"sync"

	"github.com/louisbranch/dwelling.space/internal/listings"
)

type fakeSource struct {
	mu        sync.Mutex
	property  listings.Property
	detailErr error
	ids       []string
}

func (f *fakeSource) ListProperties(context.Context, listings.SearchQuery) ([]listings.Property, error) {
	return nil, nil
}

func (f *fakeSource) PropertyDetail(_ context.Context, externalID string) (listings.Property, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ids = append(f.ids, externalID)
	if f.detailErr != nil {
		return listings.Property{}, f.detailErr
	}
	return f.property, nil
}

func (f *fakeSource) AutoComplete(context.Context, string) ([]listings.Location, error) {
	return nil, nil
}
