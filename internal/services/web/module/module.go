// Package module defines the feature contract used by web composition.
package module

import (
	"math/rand/v2"
	"net/http"

	"github.com/louisbranch/dwelling.space/internal/listings"
	"github.com/louisbranch/dwelling.space/internal/random"
)

// ResolveLanguage returns the effective request language.
type ResolveLanguage func(*http.Request) string

// NewRand returns a fresh random source for one request.
type NewRand func() (*rand.Rand, error)

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount() (Mount, error)
}

// Dependencies carries the collaborators shared by page modules.
type Dependencies struct {
	Listings        listings.Source
	NewRand         NewRand
	ResolveLanguage ResolveLanguage
}

// ResolveRequestLanguage implements the page rendering resolver contract.
func (d Dependencies) ResolveRequestLanguage(r *http.Request) string {
	if d.ResolveLanguage == nil {
		return ""
	}
	return d.ResolveLanguage(r)
}

// Rand returns a request random source, seeded from crypto/rand unless a
// NewRand override is configured.
func (d Dependencies) Rand() (*rand.Rand, error) {
	if d.NewRand != nil {
		return d.NewRand()
	}
	return random.New()
}
