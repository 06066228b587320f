package listings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/louisbranch/dwelling.space/internal/listings/storage"
	"github.com/louisbranch/dwelling.space/internal/listings/storage/memory"
)

type failingStore struct{}

func (failingStore) Close() error { return nil }
func (failingStore) GetCacheEntry(context.Context, string) (storage.CacheEntry, bool, error) {
	return storage.CacheEntry{}, false, errors.New("boom")
}
func (failingStore) PutCacheEntry(context.Context, storage.CacheEntry) error {
	return errors.New("boom")
}
func (failingStore) DeleteCacheEntry(context.Context, string) error { return nil }

func TestCachedSourceServesRepeatReadsFromCache(t *testing.T) {
	t.Parallel()

	source := &fakeSource{
		hits:      []Property{{ExternalID: "1", Title: "One"}},
		detail:    Property{ExternalID: "9", Title: "Nine"},
		locations: []Location{{ExternalID: "5003", Name: "Dubai Marina"}},
	}
	cached := NewCachedSource(source, memory.New(time.Minute), time.Minute)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		hits, err := cached.ListProperties(ctx, DefaultSearchQuery())
		if err != nil || len(hits) != 1 || hits[0].Title != "One" {
			t.Fatalf("ListProperties() = %v, %v", hits, err)
		}
		p, err := cached.PropertyDetail(ctx, "9")
		if err != nil || p.Title != "Nine" {
			t.Fatalf("PropertyDetail() = %v, %v", p, err)
		}
		locations, err := cached.AutoComplete(ctx, "Marina")
		if err != nil || len(locations) != 1 {
			t.Fatalf("AutoComplete() = %v, %v", locations, err)
		}
	}
	if source.listCalls != 1 || source.detailCalls != 1 || source.autoCalls != 1 {
		t.Fatalf("calls list=%d detail=%d auto=%d, want 1 each", source.listCalls, source.detailCalls, source.autoCalls)
	}
}

func TestCachedSourceDistinguishesQueries(t *testing.T) {
	t.Parallel()

	source := &fakeSource{hits: []Property{{ExternalID: "1"}}}
	cached := NewCachedSource(source, memory.New(time.Minute), time.Minute)
	ctx := context.Background()

	_, _ = cached.ListProperties(ctx, HomeQuery(PurposeForRent))
	_, _ = cached.ListProperties(ctx, HomeQuery(PurposeForSale))
	if source.listCalls != 2 {
		t.Fatalf("list calls = %d, want 2", source.listCalls)
	}
}

func TestCachedSourceExpiresEntries(t *testing.T) {
	t.Parallel()

	source := &fakeSource{detail: Property{ExternalID: "9"}}
	cached := NewCachedSource(source, memory.New(time.Minute), time.Millisecond)
	start := time.Now()
	cached.now = func() time.Time { return start.Add(-time.Hour) }
	ctx := context.Background()

	_, _ = cached.PropertyDetail(ctx, "9")
	_, _ = cached.PropertyDetail(ctx, "9")
	if source.detailCalls != 2 {
		t.Fatalf("detail calls = %d, want 2 after expiry", source.detailCalls)
	}
}

func TestCachedSourceDoesNotCacheErrors(t *testing.T) {
	t.Parallel()

	source := &fakeSource{err: ErrNotFound}
	cached := NewCachedSource(source, memory.New(time.Minute), time.Minute)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := cached.PropertyDetail(ctx, "404"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("PropertyDetail() error = %v, want ErrNotFound", err)
		}
	}
	if source.detailCalls != 2 {
		t.Fatalf("detail calls = %d, want 2", source.detailCalls)
	}
}

func TestCachedSourceBypassesFailingStore(t *testing.T) {
	t.Parallel()

	source := &fakeSource{hits: []Property{{ExternalID: "1"}}}
	cached := NewCachedSource(source, failingStore{}, time.Minute)
	hits, err := cached.ListProperties(context.Background(), DefaultSearchQuery())
	if err != nil || len(hits) != 1 {
		t.Fatalf("ListProperties() = %v, %v", hits, err)
	}
}

func TestCachedSourceWithoutStore(t *testing.T) {
	t.Parallel()

	source := &fakeSource{hits: []Property{{ExternalID: "1"}}}
	cached := NewCachedSource(source, nil, 0)
	_, _ = cached.ListProperties(context.Background(), DefaultSearchQuery())
	_, _ = cached.ListProperties(context.Background(), DefaultSearchQuery())
	if source.listCalls != 2 {
		t.Fatalf("list calls = %d, want 2", source.listCalls)
	}
}
