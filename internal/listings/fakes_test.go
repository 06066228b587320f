package listings

import (
	"context"
	"sync"
)

type fakeSource struct {
	mu          sync.Mutex
	listCalls   int
	detailCalls int
	autoCalls   int
	hits        []Property
	detail      Property
	locations   []Location
	err         error
}

func (f *fakeSource) ListProperties(context.Context, SearchQuery) ([]Property, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	return f.hits, f.err
}

func (f *fakeSource) PropertyDetail(context.Context, string) (Property, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.detailCalls++
	return f.detail, f.err
}

func (f *fakeSource) AutoComplete(context.Context, string) ([]Location, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.autoCalls++
	return f.locations, f.err
}
