package storage

import (
	"context"
	"time"
)

// CacheEntry stores one listings API payload and freshness metadata.
type CacheEntry struct {
	CacheKey     string
	Scope        string
	PayloadBytes []byte
	CheckedAt    time.Time
	ExpiresAt    time.Time
}

// Expired reports whether the entry is past its expiry at now. Entries with
// no expiry never expire.
func (e CacheEntry) Expired(now time.Time) bool {
	if e.ExpiresAt.IsZero() {
		return false
	}
	return !now.Before(e.ExpiresAt)
}

// Store is the contract shared by every cache backend.
type Store interface {
	Close() error
	GetCacheEntry(ctx context.Context, cacheKey string) (CacheEntry, bool, error)
	PutCacheEntry(ctx context.Context, entry CacheEntry) error
	DeleteCacheEntry(ctx context.Context, cacheKey string) error
}
