package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ferdiebergado/eventsapi/internal/platform/router"
)

func TestGoexpressRouter_Routes(t *testing.T) {
	t.Parallel()

	const headerMW = "X-Group-Middleware"

	r := router.NewGoexpressRouter()
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Mount("/files/", http.StripPrefix("/files", http.FileServer(http.Dir(t.TempDir()))))
	list := func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("list"))
	}
	r.Get("/api/events", list)
	r.Group("/api/events", func(gr router.Router) {
		gr.Get("/{$}", list)
		gr.Get("/{event_id}", func(w http.ResponseWriter, req *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(req.PathValue("event_id")))
		})
	}, func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set(headerMW, "true")
			next.ServeHTTP(w, req)
		})
	})

	tests := []struct {
		name, method, target string
		code                 int
		body, header         string
	}{
		{"Top level route", http.MethodGet, "/health", http.StatusOK, "", ""},
		{"Grouped route with wildcard", http.MethodGet, "/api/events/42", http.StatusOK, "42", "true"},
		{"Unknown route", http.MethodGet, "/missing", http.StatusNotFound, "", ""},
		{"Route without trailing slash", http.MethodGet, "/api/events", http.StatusOK, "list", ""},
		{"Group root with trailing slash", http.MethodGet, "/api/events/", http.StatusOK, "list", "true"},
		{"Unknown route inside group", http.MethodGet, "/api/events/42/extra", http.StatusNotFound, "", "true"},
		{"Mounted handler", http.MethodGet, "/files/missing.txt", http.StatusNotFound, "", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(tc.method, tc.target, http.NoBody)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			if rec.Code != tc.code {
				t.Fatalf("rec.Code = %d, want: %d", rec.Code, tc.code)
			}

			if tc.body != "" && rec.Body.String() != tc.body {
				t.Errorf("rec.Body.String() = %q, want: %q", rec.Body.String(), tc.body)
			}

			if got := rec.Header().Get(headerMW); got != tc.header {
				t.Errorf("rec.Header().Get(%q) = %q, want: %q", headerMW, got, tc.header)
			}
		})
	}
}
