// Package listings reads property listings from the Bayut listings API.
//
// It owns the search query vocabulary (filters, defaults, encoding), the
// listing types as the API returns them, and a rate-limited HTTP client that
// can be wrapped with a response cache.
package listings
