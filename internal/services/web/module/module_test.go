package module

import (
	"errors"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/louisbranch/dwelling.space/internal/random"
)

func TestDependenciesRand(t *testing.T) {
	t.Parallel()

	fixed := Dependencies{NewRand: func() (*rand.Rand, error) { return random.FromSeed(7), nil }}
	a, err := fixed.Rand()
	if err != nil {
		t.Fatalf("Rand() error = %v", err)
	}
	b, _ := fixed.Rand()
	if a.Uint64() != b.Uint64() {
		t.Fatal("expected the override to control seeding")
	}

	failing := Dependencies{NewRand: func() (*rand.Rand, error) { return nil, errors.New("no entropy") }}
	if _, err := failing.Rand(); err == nil {
		t.Fatal("expected override error")
	}

	if rng, err := (Dependencies{}).Rand(); err != nil || rng == nil {
		t.Fatalf("default Rand() = %v, %v", rng, err)
	}
}

func TestDependenciesResolveRequestLanguage(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := (Dependencies{}).ResolveRequestLanguage(req); got != "" {
		t.Fatalf("ResolveRequestLanguage() = %q, want empty", got)
	}
	deps := Dependencies{ResolveLanguage: func(*http.Request) string { return "ar-AE" }}
	if got := deps.ResolveRequestLanguage(req); got != "ar-AE" {
		t.Fatalf("ResolveRequestLanguage() = %q, want ar-AE", got)
	}
}
