package middleware

import (
	"net/http"
	"slices"
	"strings"
)

const (
	HeaderOrigin         = "Origin"
	HeaderVary           = "Vary"
	HeaderAllowOrigin    = "Access-Control-Allow-Origin"
	HeaderAllowMethods   = "Access-Control-Allow-Methods"
	HeaderAllowHeaders   = "Access-Control-Allow-Headers"
	HeaderAllowCreds     = "Access-Control-Allow-Credentials"
	HeaderMaxAge         = "Access-Control-Max-Age"
	HeaderRequestMethod  = "Access-Control-Request-Method"
	HeaderRequestHeaders = "Access-Control-Request-Headers"

	AllowedMethods  = "GET, POST, PUT, PATCH, DELETE, OPTIONS"
	AllowedHeaders  = "Accept, Accept-Language, Content-Type, Authorization"
	PreflightMaxAge = "600"

	anyOrigin = "*"
)

// CORS allows cross-origin requests from the given origins, with credentials.
//
// An allowed request Origin is echoed back in Access-Control-Allow-Origin.
// A "*" entry in origins allows every origin. Requests from other origins
// pass through without CORS headers.
func CORS(origins []string) func(http.Handler) http.Handler {
	allowAll := slices.Contains(origins, anyOrigin)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get(HeaderOrigin)
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Add(HeaderVary, HeaderOrigin)

			if !allowAll && !slices.Contains(origins, origin) {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set(HeaderAllowOrigin, origin)
			w.Header().Set(HeaderAllowCreds, "true")

			if r.Method == http.MethodOptions && r.Header.Get(HeaderRequestMethod) != "" {
				w.Header().Set(HeaderAllowMethods, AllowedMethods)
				w.Header().Set(HeaderAllowHeaders, allowedHeaders(r))
				w.Header().Set(HeaderMaxAge, PreflightMaxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// allowedHeaders echoes the headers a preflight asks for, so any header is accepted.
func allowedHeaders(r *http.Request) string {
	requested := strings.TrimSpace(r.Header.Get(HeaderRequestHeaders))
	if requested == "" {
		return AllowedHeaders
	}
	return requested
}
