package observability

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRequestLogger(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    string
		headers map[string]string
		handler http.HandlerFunc
		status  int
		markers []string
	}{
		{
			name:    "explicit status and request id",
			path:    "/property/12",
			headers: map[string]string{"X-Request-ID": "req-123"},
			handler: func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNotFound) },
			status:  http.StatusNotFound,
			markers: []string{"method=GET", "path=/property/12", "status=404", "request_id=req-123", "htmx=false"},
		},
		{
			name:    "implicit ok counts bytes",
			path:    "/search",
			headers: map[string]string{"HX-Request": "true"},
			handler: func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte("results")) },
			status:  http.StatusOK,
			markers: []string{"path=/search", "status=200", "bytes=7", "request_id=-", "htmx=true", "latency="},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			h := RequestLogger(log.New(&buf, "", 0))(tc.handler)
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			if rr.Code != tc.status {
				t.Fatalf("status = %d, want %d", rr.Code, tc.status)
			}
			line := buf.String()
			for _, marker := range tc.markers {
				if !strings.Contains(line, marker) {
					t.Fatalf("log line missing %q: %q", marker, line)
				}
			}
		})
	}
}

func TestRequestLoggerNilNext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := RequestLogger(log.New(&buf, "", 0))(nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
}
