// Package timeouts defines shared timeout constants used across services.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// UpstreamRequest caps a single call to the listings API.
const UpstreamRequest = 10 * time.Second

// CacheOperation caps a single listings cache read or write.
const CacheOperation = 500 * time.Millisecond
