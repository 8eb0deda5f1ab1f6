package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetIPAddress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		want       string
	}{
		{"X-Real-IP wins", map[string]string{"X-Real-IP": "10.0.0.1", "X-Forwarded-For": "10.0.0.2"}, "10.0.0.3:1234", "10.0.0.1"},
		{"First forwarded address", map[string]string{"X-Forwarded-For": "203.0.113.5, 10.0.0.2"}, "10.0.0.3:1234", "203.0.113.5"},
		{"Remote address", nil, "192.0.2.10:5678", "192.0.2.10"},
		{"Remote address without port", nil, "192.0.2.10", "192.0.2.10"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			req.RemoteAddr = tc.remoteAddr
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}

			if got := getIPAddress(req); got != tc.want {
				t.Errorf("getIPAddress(req) = %q, want: %q", got, tc.want)
			}
		})
	}
}
