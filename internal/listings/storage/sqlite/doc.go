// Package sqlite provides the listings cache backed by SQLite.
//
// Entries survive restarts, which keeps the API quota usage low while
// developing against the rate-limited listings API.
package sqlite
