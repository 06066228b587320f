// Package listingsource builds the cached listings source shared by the web
// and MCP commands.
package listingsource

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/louisbranch/dwelling.space/internal/listings"
	"github.com/louisbranch/dwelling.space/internal/listings/storage"
	"github.com/louisbranch/dwelling.space/internal/listings/storage/memory"
	"github.com/louisbranch/dwelling.space/internal/listings/storage/redis"
	"github.com/louisbranch/dwelling.space/internal/listings/storage/sqlite"
)

// Cache backends.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendNone   = "none"
)

// Config holds listings API and cache settings.
type Config struct {
	BaseURL       string        `env:"DWELLING_SPACE_LISTINGS_BASE_URL"        envDefault:"https://bayut.p.rapidapi.com"`
	APIKey        string        `env:"DWELLING_SPACE_LISTINGS_API_KEY"`
	RatePerSecond float64       `env:"DWELLING_SPACE_LISTINGS_RATE_PER_SECOND" envDefault:"5"`
	CacheBackend  string        `env:"DWELLING_SPACE_CACHE_BACKEND"            envDefault:"memory"`
	CachePath     string        `env:"DWELLING_SPACE_CACHE_PATH"               envDefault:"data/listings-cache.db"`
	RedisAddr     string        `env:"DWELLING_SPACE_REDIS_ADDR"               envDefault:"localhost:6379"`
	CacheTTL      time.Duration `env:"DWELLING_SPACE_CACHE_TTL"                envDefault:"10m"`
}

// BindFlags registers flag overrides for cfg on fs.
func (cfg *Config) BindFlags(fs *flag.FlagSet) {
	fs.StringVar(&cfg.BaseURL, "listings-base-url", cfg.BaseURL, "Listings API base URL")
	fs.StringVar(&cfg.CacheBackend, "cache-backend", cfg.CacheBackend, "Listings cache backend: memory, sqlite, redis or none")
	fs.StringVar(&cfg.CachePath, "cache-path", cfg.CachePath, "SQLite cache file path")
	fs.StringVar(&cfg.RedisAddr, "redis-addr", cfg.RedisAddr, "Redis address for the redis cache backend")
	fs.DurationVar(&cfg.CacheTTL, "cache-ttl", cfg.CacheTTL, "Listings cache entry lifetime")
}

// Open returns the listings source described by cfg and a function that
// releases its cache.
func Open(ctx context.Context, cfg Config) (listings.Source, func() error, error) {
	noop := func() error { return nil }
	client, err := listings.NewClient(listings.Config{
		BaseURL:       cfg.BaseURL,
		APIKey:        cfg.APIKey,
		RatePerSecond: cfg.RatePerSecond,
	})
	if err != nil {
		return nil, noop, fmt.Errorf("init listings client: %w", err)
	}
	if strings.TrimSpace(cfg.APIKey) == "" {
		log.Printf("listings api key is empty; upstream calls will be rejected")
	}

	backend := strings.ToLower(strings.TrimSpace(cfg.CacheBackend))
	store, err := openStore(ctx, backend, cfg)
	if err != nil {
		return nil, noop, err
	}
	if store == nil {
		log.Printf("listings cache disabled")
		return client, noop, nil
	}
	log.Printf("listings cache backend=%s ttl=%s", backend, cfg.CacheTTL)
	return listings.NewCachedSource(client, store, cfg.CacheTTL), startPurge(ctx, store), nil
}

// startPurge runs the SQLite expiry loop until the returned close func is
// called or ctx ends. Other backends expire entries on their own.
func startPurge(ctx context.Context, store storage.Store) func() error {
	sqliteStore, ok := store.(*sqlite.Store)
	if !ok {
		return store.Close
	}
	purgeCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		sqliteStore.PurgeEvery(purgeCtx, sqlite.DefaultPurgeInterval)
	}()
	return func() error {
		cancel()
		<-done
		return sqliteStore.Close()
	}
}

func openStore(ctx context.Context, backend string, cfg Config) (storage.Store, error) {
	switch backend {
	case "", BackendMemory:
		return memory.New(memory.DefaultCleanupInterval), nil
	case BackendSQLite:
		path := strings.TrimSpace(cfg.CachePath)
		if path == "" {
			return nil, errors.New("cache path is required for the sqlite backend")
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create cache dir: %w", err)
		}
		store, err := sqlite.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open sqlite cache: %w", err)
		}
		return store, nil
	case BackendRedis:
		store, err := redis.Open(ctx, cfg.RedisAddr)
		if err != nil {
			return nil, fmt.Errorf("open redis cache: %w", err)
		}
		return store, nil
	case BackendNone:
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.CacheBackend)
	}
}
