// Package redis provides a listings cache shared between processes through
// Redis. Each entry is a hash whose key expiry mirrors the entry expiry.
package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/louisbranch/dwelling.space/internal/listings/storage"
	goredis "github.com/redis/go-redis/v9"
)

// DefaultKeyPrefix namespaces cache keys inside a shared Redis database.
const DefaultKeyPrefix = "dwelling:listings:"

const (
	fieldScope     = "scope"
	fieldPayload   = "payload"
	fieldCheckedAt = "checked_at"
	fieldExpiresAt = "expires_at"
)

// Store persists cache entries in Redis.
type Store struct {
	client *goredis.Client
	prefix string
	now    func() time.Time
}

// Open connects to addr and verifies the connection with PING.
func Open(ctx context.Context, addr string) (*Store, error) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return nil, fmt.Errorf("redis address is required")
	}
	client := goredis.NewClient(&goredis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", addr, err)
	}
	return New(client, DefaultKeyPrefix), nil
}

// New wraps an existing client.
func New(client *goredis.Client, prefix string) *Store {
	return &Store{client: client, prefix: prefix, now: time.Now}
}

// Close closes the underlying client.
func (s *Store) Close() error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Close()
}

// GetCacheEntry loads the entry stored under cacheKey.
func (s *Store) GetCacheEntry(ctx context.Context, cacheKey string) (storage.CacheEntry, bool, error) {
	if s == nil || s.client == nil {
		return storage.CacheEntry{}, false, fmt.Errorf("storage is not configured")
	}
	cacheKey = strings.TrimSpace(cacheKey)
	if cacheKey == "" {
		return storage.CacheEntry{}, false, fmt.Errorf("cache key is required")
	}

	fields, err := s.client.HGetAll(ctx, s.key(cacheKey)).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return storage.CacheEntry{}, false, nil
		}
		return storage.CacheEntry{}, false, fmt.Errorf("get cache entry: %w", err)
	}
	if len(fields) == 0 {
		return storage.CacheEntry{}, false, nil
	}
	entry, err := decodeEntry(cacheKey, fields)
	if err != nil {
		return storage.CacheEntry{}, false, fmt.Errorf("decode cache entry %q: %w", cacheKey, err)
	}
	if entry.Expired(s.now()) {
		return storage.CacheEntry{}, false, nil
	}
	return entry, true, nil
}

// PutCacheEntry writes entry and sets the key to expire with it.
func (s *Store) PutCacheEntry(ctx context.Context, entry storage.CacheEntry) error {
	if s == nil || s.client == nil {
		return fmt.Errorf("storage is not configured")
	}
	entry.CacheKey = strings.TrimSpace(entry.CacheKey)
	if entry.CacheKey == "" {
		return fmt.Errorf("cache key is required")
	}
	if len(entry.PayloadBytes) == 0 {
		return fmt.Errorf("cache payload is required")
	}
	if entry.CheckedAt.IsZero() {
		entry.CheckedAt = s.now().UTC()
	}

	key := s.key(entry.CacheKey)
	_, err := s.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.HSet(ctx, key, encodeEntry(entry))
		if !entry.ExpiresAt.IsZero() {
			pipe.PExpireAt(ctx, key, entry.ExpiresAt)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("put cache entry: %w", err)
	}
	return nil
}

// DeleteCacheEntry removes the entry stored under cacheKey.
func (s *Store) DeleteCacheEntry(ctx context.Context, cacheKey string) error {
	if s == nil || s.client == nil {
		return fmt.Errorf("storage is not configured")
	}
	cacheKey = strings.TrimSpace(cacheKey)
	if cacheKey == "" {
		return fmt.Errorf("cache key is required")
	}
	if err := s.client.Del(ctx, s.key(cacheKey)).Err(); err != nil {
		return fmt.Errorf("delete cache entry: %w", err)
	}
	return nil
}

func (s *Store) key(cacheKey string) string {
	return s.prefix + cacheKey
}

func encodeEntry(entry storage.CacheEntry) map[string]any {
	return map[string]any{
		fieldScope:     entry.Scope,
		fieldPayload:   entry.PayloadBytes,
		fieldCheckedAt: timeToUnixMillis(entry.CheckedAt),
		fieldExpiresAt: timeToUnixMillis(entry.ExpiresAt),
	}
}

func decodeEntry(cacheKey string, fields map[string]string) (storage.CacheEntry, error) {
	payload, ok := fields[fieldPayload]
	if !ok || payload == "" {
		return storage.CacheEntry{}, fmt.Errorf("payload is missing")
	}
	checkedAt, err := parseMillis(fields[fieldCheckedAt])
	if err != nil {
		return storage.CacheEntry{}, fmt.Errorf("checked at: %w", err)
	}
	expiresAt, err := parseMillis(fields[fieldExpiresAt])
	if err != nil {
		return storage.CacheEntry{}, fmt.Errorf("expires at: %w", err)
	}
	return storage.CacheEntry{
		CacheKey:     cacheKey,
		Scope:        fields[fieldScope],
		PayloadBytes: []byte(payload),
		CheckedAt:    checkedAt,
		ExpiresAt:    expiresAt,
	}, nil
}

func parseMillis(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	millis, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	if millis <= 0 {
		return time.Time{}, nil
	}
	return time.UnixMilli(millis).UTC(), nil
}

func timeToUnixMillis(value time.Time) int64 {
	if value.IsZero() {
		return 0
	}
	return value.UTC().UnixMilli()
}

var _ storage.Store = (*Store)(nil)
