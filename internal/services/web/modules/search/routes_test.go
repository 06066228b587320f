package search

import (
	"net/http"
	"net/http/httptest"
	"testing"

	module "github.com/louisbranch/dwelling.space/internal/services/web/module"
	"github.com/louisbranch/dwelling.space/internal/services/web/routepath"
)

func TestRegisterRoutesHandlesNilMux(t *testing.T) {
	t.Parallel()

	registerRoutes(nil, newHandlers(newService(&fakeSource{}), module.Dependencies{}))
}

func TestRegisterRoutesMethodContract(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(&fakeSource{}), module.Dependencies{}))

	for _, path := range []string{routepath.Search, routepath.SearchPrefix, routepath.SearchLocations} {
		req := httptest.NewRequest(http.MethodPost, path, nil)
		rr := httptest.NewRecorder()
		mux.ServeHTTP(rr, req)
		if rr.Code != http.StatusMethodNotAllowed {
			t.Fatalf("POST %s status = %d, want %d", path, rr.Code, http.StatusMethodNotAllowed)
		}
		if got := rr.Header().Get("Allow"); got != "GET, HEAD" {
			t.Fatalf("POST %s Allow = %q, want %q", path, got, "GET, HEAD")
		}
	}
}
