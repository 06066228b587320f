// Package memory provides an in-process listings cache backed by go-cache.
package memory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/louisbranch/dwelling.space/internal/listings/storage"
	gocache "github.com/patrickmn/go-cache"
)

// DefaultCleanupInterval is how often expired entries are evicted.
const DefaultCleanupInterval = 5 * time.Minute

// Store keeps cache entries in process memory. Contents are lost on restart.
type Store struct {
	items *gocache.Cache
	now   func() time.Time
}

// New returns an empty store that evicts expired entries every
// cleanupInterval.
func New(cleanupInterval time.Duration) *Store {
	if cleanupInterval <= 0 {
		cleanupInterval = DefaultCleanupInterval
	}
	return &Store{
		items: gocache.New(gocache.NoExpiration, cleanupInterval),
		now:   time.Now,
	}
}

// Close flushes all entries.
func (s *Store) Close() error {
	if s == nil || s.items == nil {
		return nil
	}
	s.items.Flush()
	return nil
}

// GetCacheEntry returns the entry stored under cacheKey.
func (s *Store) GetCacheEntry(_ context.Context, cacheKey string) (storage.CacheEntry, bool, error) {
	if s == nil || s.items == nil {
		return storage.CacheEntry{}, false, fmt.Errorf("storage is not configured")
	}
	cacheKey = strings.TrimSpace(cacheKey)
	if cacheKey == "" {
		return storage.CacheEntry{}, false, fmt.Errorf("cache key is required")
	}
	value, ok := s.items.Get(cacheKey)
	if !ok {
		return storage.CacheEntry{}, false, nil
	}
	entry, ok := value.(storage.CacheEntry)
	if !ok {
		return storage.CacheEntry{}, false, fmt.Errorf("cache entry %q has unexpected type %T", cacheKey, value)
	}
	if entry.Expired(s.now()) {
		return storage.CacheEntry{}, false, nil
	}
	return entry, true, nil
}

// PutCacheEntry stores entry until its ExpiresAt.
func (s *Store) PutCacheEntry(_ context.Context, entry storage.CacheEntry) error {
	if s == nil || s.items == nil {
		return fmt.Errorf("storage is not configured")
	}
	entry.CacheKey = strings.TrimSpace(entry.CacheKey)
	if entry.CacheKey == "" {
		return fmt.Errorf("cache key is required")
	}
	if len(entry.PayloadBytes) == 0 {
		return fmt.Errorf("cache payload is required")
	}
	now := s.now()
	if entry.CheckedAt.IsZero() {
		entry.CheckedAt = now.UTC()
	}

	ttl := gocache.NoExpiration
	if !entry.ExpiresAt.IsZero() {
		ttl = entry.ExpiresAt.Sub(now)
		if ttl <= 0 {
			s.items.Delete(entry.CacheKey)
			return nil
		}
	}
	payload := make([]byte, len(entry.PayloadBytes))
	copy(payload, entry.PayloadBytes)
	entry.PayloadBytes = payload
	s.items.Set(entry.CacheKey, entry, ttl)
	return nil
}

// DeleteCacheEntry removes the entry stored under cacheKey.
func (s *Store) DeleteCacheEntry(_ context.Context, cacheKey string) error {
	if s == nil || s.items == nil {
		return fmt.Errorf("storage is not configured")
	}
	s.items.Delete(strings.TrimSpace(cacheKey))
	return nil
}

// Len returns the number of stored entries, including expired entries not
// yet evicted.
func (s *Store) Len() int {
	if s == nil || s.items == nil {
		return 0
	}
	return s.items.ItemCount()
}

var _ storage.Store = (*Store)(nil)
