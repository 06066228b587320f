package investment

import (
	"errors"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/louisbranch/dwelling.space/internal/listings"
	"github.com/louisbranch/dwelling.space/internal/random"
	module "github.com/louisbranch/dwelling.space/internal/services/web/module"
	"github.com/louisbranch/dwelling.space/internal/services/web/routepath"
)

func fixedRand() (*rand.Rand, error) {
	return random.FromSeed(42), nil
}

func mountInvestment(t *testing.T, deps module.Dependencies) module.Mount {
	t.Helper()
	mount, err := New(deps).Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != routepath.InvestmentPrefix {
		t.Fatalf("prefix = %q, want %q", mount.Prefix, routepath.InvestmentPrefix)
	}
	return mount
}

func get(mount module.Mount, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, req)
	return rr
}

func TestMountRequiresListingsSource(t *testing.T) {
	t.Parallel()

	if _, err := New(module.Dependencies{NewRand: fixedRand}).Mount(); err == nil {
		t.Fatal("expected missing source error")
	}
}

func TestSummaryRendersListingFigures(t *testing.T) {
	t.Parallel()

	source := &fakeSource{property: listings.Property{ExternalID: "4711", Title: "Palm villa", Price: 1000000, Purpose: "for-sale"}}
	mount := mountInvestment(t, module.Dependencies{Listings: source, NewRand: fixedRand})

	rr := get(mount, routepath.Investment("4711"))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	for _, marker := range []string{
		"<title>Investment summary | Real Estate</title>",
		"Palm villa",
		"AED 1,000,000",
		`class="tile tile-coc"`,
		`id="chart-cash-flow"`,
		`href="/property/4711"`,
	} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing marker %q: %q", marker, body)
		}
	}
	if got := strings.Count(body, "<tr><td>"); got != 10 {
		t.Fatalf("projection rows = %d, want 10", got)
	}
}

func TestSummaryIsStableForFixedSeed(t *testing.T) {
	t.Parallel()

	source := &fakeSource{property: listings.Property{ExternalID: "1", Price: 750000}}
	mount := mountInvestment(t, module.Dependencies{Listings: source, NewRand: fixedRand})

	first := get(mount, routepath.Investment("1")).Body.String()
	second := get(mount, routepath.Investment("1")).Body.String()
	if first != second {
		t.Fatal("expected identical renders for a fixed seed")
	}
}

func TestSummaryMissingListingRendersNotFound(t *testing.T) {
	t.Parallel()

	mount := mountInvestment(t, module.Dependencies{Listings: &fakeSource{detailErr: listings.ErrNotFound}, NewRand: fixedRand})
	rr := get(mount, routepath.Investment("gone"))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestSummarySeedFailureRendersServerError(t *testing.T) {
	t.Parallel()

	failing := func() (*rand.Rand, error) { return nil, errors.New("entropy exhausted") }
	mount := mountInvestment(t, module.Dependencies{
		Listings: &fakeSource{property: listings.Property{ExternalID: "1", Price: 1}},
		NewRand:  failing,
	})
	rr := get(mount, routepath.Investment("1"))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
	if !strings.Contains(rr.Body.String(), `id="app-error-state"`) {
		t.Fatalf("body missing error state: %q", rr.Body.String())
	}
}

func TestInvestmentWithoutIDRendersNotFound(t *testing.T) {
	t.Parallel()

	source := &fakeSource{}
	mount := mountInvestment(t, module.Dependencies{Listings: source, NewRand: fixedRand})
	for _, target := range []string{"/investment", routepath.InvestmentPrefix} {
		if rr := get(mount, target); rr.Code != http.StatusNotFound {
			t.Fatalf("GET %s status = %d, want %d", target, rr.Code, http.StatusNotFound)
		}
	}
	if len(source.ids) != 0 {
		t.Fatalf("unexpected detail calls: %v", source.ids)
	}
}
