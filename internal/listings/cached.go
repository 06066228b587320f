package listings

import (
	"context"
	"encoding/json"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/louisbranch/dwelling.space/internal/listings/storage"
	"github.com/louisbranch/dwelling.space/internal/platform/timeouts"
)

// DefaultCacheTTL is how long a cached API response is served.
const DefaultCacheTTL = 10 * time.Minute

// Cache scopes.
const (
	ScopePropertyList   = "property_list"
	ScopePropertyDetail = "property_detail"
	ScopeAutoComplete   = "auto_complete"
)

// CachedSource serves listings API responses from a cache store, falling
// through to the wrapped source on a miss. Store failures are logged and
// never fail a read.
type CachedSource struct {
	source Source
	store  storage.Store
	ttl    time.Duration
	now    func() time.Time
}

// NewCachedSource wraps source with store. A nil store disables caching.
func NewCachedSource(source Source, store storage.Store, ttl time.Duration) *CachedSource {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedSource{source: source, store: store, ttl: ttl, now: time.Now}
}

// ListProperties returns cached hits for query or fetches them.
func (c *CachedSource) ListProperties(ctx context.Context, query SearchQuery) ([]Property, error) {
	key := cacheKey(PathPropertiesList, query.Values())
	var hits []Property
	if c.load(ctx, key, &hits) {
		return hits, nil
	}
	hits, err := c.source.ListProperties(ctx, query)
	if err != nil {
		return nil, err
	}
	c.save(ctx, key, ScopePropertyList, hits)
	return hits, nil
}

// PropertyDetail returns a cached listing or fetches it.
func (c *CachedSource) PropertyDetail(ctx context.Context, externalID string) (Property, error) {
	key := cacheKey(PathPropertiesDetail, url.Values{"externalID": {strings.TrimSpace(externalID)}})
	var p Property
	if c.load(ctx, key, &p) {
		return p, nil
	}
	p, err := c.source.PropertyDetail(ctx, externalID)
	if err != nil {
		return Property{}, err
	}
	c.save(ctx, key, ScopePropertyDetail, p)
	return p, nil
}

// AutoComplete returns cached locations for term or fetches them.
func (c *CachedSource) AutoComplete(ctx context.Context, term string) ([]Location, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, nil
	}
	key := cacheKey(PathAutoComplete, url.Values{"query": {strings.ToLower(term)}})
	var locations []Location
	if c.load(ctx, key, &locations) {
		return locations, nil
	}
	locations, err := c.source.AutoComplete(ctx, term)
	if err != nil {
		return nil, err
	}
	c.save(ctx, key, ScopeAutoComplete, locations)
	return locations, nil
}

func (c *CachedSource) load(ctx context.Context, key string, target any) bool {
	if c.store == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, timeouts.CacheOperation)
	defer cancel()

	entry, found, err := c.store.GetCacheEntry(ctx, key)
	if err != nil {
		log.Printf("listings cache read failed key=%q err=%v", key, err)
		return false
	}
	if !found {
		return false
	}
	if err := json.Unmarshal(entry.PayloadBytes, target); err != nil {
		log.Printf("listings cache decode failed key=%q err=%v", key, err)
		return false
	}
	return true
}

func (c *CachedSource) save(ctx context.Context, key, scope string, value any) {
	if c.store == nil {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		log.Printf("listings cache encode failed key=%q err=%v", key, err)
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeouts.CacheOperation)
	defer cancel()

	now := c.now().UTC()
	if err := c.store.PutCacheEntry(ctx, storage.CacheEntry{
		CacheKey:     key,
		Scope:        scope,
		PayloadBytes: payload,
		CheckedAt:    now,
		ExpiresAt:    now.Add(c.ttl),
	}); err != nil {
		log.Printf("listings cache write failed key=%q err=%v", key, err)
	}
}

func cacheKey(path string, query url.Values) string {
	return path + "?" + query.Encode()
}

var _ Source = (*CachedSource)(nil)
