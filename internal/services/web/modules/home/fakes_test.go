package home

import (
	"context"
	"sync"

	"github.com/louisbranch/dwelling.space/internal/listings"
)

type fakeSource struct {
	mu         sync.Mutex
	properties []listings.Property
	listErr    error
	queries    []listings.SearchQuery
}

func (f *fakeSource) ListProperties(_ context.Context, query listings.SearchQuery) ([]listings.Property, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, query)
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.properties, nil
}

func (f *fakeSource) PropertyDetail(context.Context, string) (listings.Property, error) {
	return listings.Property{}, listings.ErrNotFound
}

func (f *fakeSource) AutoComplete(context.Context, string) ([]listings.Location, error) {
	return nil, nil
}
