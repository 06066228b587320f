package property

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/louisbranch/dwelling.space/internal/listings"
	module "github.com/louisbranch/dwelling.space/internal/services/web/module"
	"github.com/louisbranch/dwelling.space/internal/services/web/routepath"
)

func mountProperty(t *testing.T, source listings.Source) module.Mount {
	t.Helper()
	mount, err := New(module.Dependencies{Listings: source}).Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != routepath.PropertyPrefix {
		t.Fatalf("prefix = %q, want %q", mount.Prefix, routepath.PropertyPrefix)
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

	if _, err := New(module.Dependencies{}).Mount(); err == nil {
		t.Fatal("expected missing source error")
	}
}

func TestDetailRendersListing(t *testing.T) {
	t.Parallel()

	source := &fakeSource{property: listings.Property{
		ExternalID:    "4711",
		Title:         "Palm villa",
		Description:   "Beachfront living.",
		Price:         250000,
		RentFrequency: "yearly",
		Rooms:         4,
		Baths:         5,
		Area:          4200,
	}}
	mount := mountProperty(t, source)

	rr := get(mount, routepath.Property("4711"))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	for _, marker := range []string{
		"<title>Palm villa | Real Estate</title>",
		"AED 250,000/yearly",
		"Beachfront living.",
		`href="/investment/4711"`,
	} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing marker %q: %q", marker, body)
		}
	}
	if len(source.ids) != 1 || source.ids[0] != "4711" {
		t.Fatalf("detail ids = %v, want [4711]", source.ids)
	}
}

func TestDetailFailuresRenderNotFound(t *testing.T) {
	t.Parallel()

	for _, cause := range []error{listings.ErrNotFound, listings.ErrUpstream, listings.ErrRateLimited, errors.New("boom")} {
		mount := mountProperty(t, &fakeSource{detailErr: cause})
		rr := get(mount, routepath.Property("missing"))
		if rr.Code != http.StatusNotFound {
			t.Fatalf("cause %v status = %d, want %d", cause, rr.Code, http.StatusNotFound)
		}
		if !strings.Contains(rr.Body.String(), `id="app-error-state"`) {
			t.Fatalf("cause %v body missing error state: %q", cause, rr.Body.String())
		}
	}
}

func TestPropertyWithoutIDRendersNotFound(t *testing.T) {
	t.Parallel()

	source := &fakeSource{}
	mount := mountProperty(t, source)
	for _, target := range []string{"/property", routepath.PropertyPrefix, routepath.PropertyPrefix + "a/b"} {
		rr := get(mount, target)
		if rr.Code != http.StatusNotFound {
			t.Fatalf("GET %s status = %d, want %d", target, rr.Code, http.StatusNotFound)
		}
	}
	if len(source.ids) != 0 {
		t.Fatalf("unexpected detail calls: %v", source.ids)
	}
}

func TestDetailHTMXRendersFragment(t *testing.T) {
	t.Parallel()

	mount := mountProperty(t, &fakeSource{property: listings.Property{ExternalID: "9", Title: "Studio"}})
	req := httptest.NewRequest(http.MethodGet, routepath.Property("9"), nil)
	req.Header.Set("HX-Request", "true")
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, req)

	body := rr.Body.String()
	if strings.Contains(body, "<html") {
		t.Fatalf("htmx response rendered document shell: %q", body)
	}
	if !strings.Contains(body, "Studio") {
		t.Fatalf("htmx response missing listing: %q", body)
	}
}
