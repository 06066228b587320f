// Package storage declares persistence interfaces for cached listings API
// responses.
//
// The cache is a derived read optimization. Every entry can be discarded and
// fetched again from the listings API.
package storage
