package search

import (
	"context"
	"sync"

	"github.com/louisbranch/dwelling.space/internal/listings"
)

type fakeSource struct {
	mu          sync.Mutex
	properties  []listings.Property
	locations   []listings.Location
	listErr     error
	completeErr error
	queries     []listings.SearchQuery
	terms       []string
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

func (f *fakeSource) AutoComplete(_ context.Context, term string) ([]listings.Location, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.terms = append(f.terms, term)
	if f.completeErr != nil {
		return nil, f.completeErr
	}
	return f.locations, nil
}
