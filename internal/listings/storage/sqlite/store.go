package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/louisbranch/dwelling.space/internal/listings/storage"
	"github.com/louisbranch/dwelling.space/internal/listings/storage/sqlite/migrations"
	sqlitemigrate "github.com/louisbranch/dwelling.space/internal/platform/storage/sqlitemigrate"
	_ "modernc.org/sqlite"
)

// DefaultPurgeInterval is how often PurgeEvery removes expired rows when no
// interval is given.
const DefaultPurgeInterval = 5 * time.Minute

// Store provides SQLite-backed persistence for listings cache data.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

// Open opens and migrates a listings cache SQLite store, then drops rows that
// expired while it was closed.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{sqlDB: sqlDB, now: time.Now}
	if err := sqlitemigrate.ApplyMigrations(context.Background(), sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	if _, err := store.PurgeExpired(context.Background(), store.now()); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return store, nil
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// GetCacheEntry loads a cache payload and metadata by key. Expired rows are
// reported as missing and left for PurgeExpired.
func (s *Store) GetCacheEntry(ctx context.Context, cacheKey string) (storage.CacheEntry, bool, error) {
	if s == nil || s.sqlDB == nil {
		return storage.CacheEntry{}, false, fmt.Errorf("storage is not configured")
	}
	cacheKey = strings.TrimSpace(cacheKey)
	if cacheKey == "" {
		return storage.CacheEntry{}, false, fmt.Errorf("cache key is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT cache_key, scope, payload_json, checked_at, expires_at
		 FROM cache_entries
		 WHERE cache_key = ?`,
		cacheKey,
	)

	var entry storage.CacheEntry
	var checkedAt int64
	var expiresAt int64
	if err := row.Scan(
		&entry.CacheKey,
		&entry.Scope,
		&entry.PayloadBytes,
		&checkedAt,
		&expiresAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.CacheEntry{}, false, nil
		}
		return storage.CacheEntry{}, false, fmt.Errorf("get cache entry: %w", err)
	}
	entry.CheckedAt = unixMillisToTime(checkedAt)
	entry.ExpiresAt = unixMillisToTime(expiresAt)

	if entry.Expired(s.now()) {
		return storage.CacheEntry{}, false, nil
	}
	return entry, true, nil
}

// PutCacheEntry upserts a cache payload and metadata by key.
func (s *Store) PutCacheEntry(ctx context.Context, entry storage.CacheEntry) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	entry.CacheKey = strings.TrimSpace(entry.CacheKey)
	if entry.CacheKey == "" {
		return fmt.Errorf("cache key is required")
	}
	entry.Scope = strings.TrimSpace(entry.Scope)
	if entry.Scope == "" {
		return fmt.Errorf("cache scope is required")
	}
	if len(entry.PayloadBytes) == 0 {
		return fmt.Errorf("cache payload is required")
	}
	if entry.CheckedAt.IsZero() {
		entry.CheckedAt = s.now().UTC()
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO cache_entries (cache_key, scope, payload_json, checked_at, expires_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(cache_key) DO UPDATE SET
		    scope = excluded.scope,
		    payload_json = excluded.payload_json,
		    checked_at = excluded.checked_at,
		    expires_at = excluded.expires_at`,
		entry.CacheKey,
		entry.Scope,
		entry.PayloadBytes,
		timeToUnixMillis(entry.CheckedAt),
		timeToUnixMillis(entry.ExpiresAt),
	)
	if err != nil {
		return fmt.Errorf("put cache entry: %w", err)
	}
	return nil
}

// DeleteCacheEntry removes a cache entry by key.
func (s *Store) DeleteCacheEntry(ctx context.Context, cacheKey string) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	cacheKey = strings.TrimSpace(cacheKey)
	if cacheKey == "" {
		return fmt.Errorf("cache key is required")
	}
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM cache_entries WHERE cache_key = ?`, cacheKey); err != nil {
		return fmt.Errorf("delete cache entry: %w", err)
	}
	return nil
}

// PurgeExpired deletes entries that expired before now and returns how many
// rows were removed.
func (s *Store) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}
	result, err := s.sqlDB.ExecContext(
		ctx,
		`DELETE FROM cache_entries WHERE expires_at > 0 AND expires_at <= ?`,
		timeToUnixMillis(now),
	)
	if err != nil {
		return 0, fmt.Errorf("purge expired cache entries: %w", err)
	}
	removed, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("purge expired cache entries: %w", err)
	}
	return removed, nil
}

// PurgeEvery runs PurgeExpired every interval until ctx is done. Failures are
// logged and retried on the next tick.
func (s *Store) PurgeEvery(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultPurgeInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := s.PurgeExpired(ctx, s.now())
			if err != nil {
				if ctx.Err() == nil {
					log.Printf("listings cache purge failed err=%v", err)
				}
				continue
			}
			if removed > 0 {
				log.Printf("listings cache purged expired=%d", removed)
			}
		}
	}
}

func timeToUnixMillis(value time.Time) int64 {
	if value.IsZero() {
		return 0
	}
	return value.UTC().UnixMilli()
}

func unixMillisToTime(value int64) time.Time {
	if value <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(value).UTC()
}

var _ storage.Store = (*Store)(nil)
