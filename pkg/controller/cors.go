package controller

import (
	"net/http"
	"slices"
	"strings"
)

var corsMethods = strings.Join([]string{ //nolint: gochecknoglobals
	http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions,
}, ", ")

// WithCORS returns a middleware that sets CORS headers for the allowed origins
// and answers OPTIONS preflight requests with 204 No Content. An empty list or
// a "*" entry allows any origin.
func WithCORS(allowedOrigins []string) func(http.Handler) http.Handler {
	anyOrigin := len(allowedOrigins) == 0 || slices.Contains(allowedOrigins, "*")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			switch {
			case anyOrigin:
				w.Header().Set("Access-Control-Allow-Origin", "*")
			case origin != "" && slices.Contains(allowedOrigins, origin):
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Add("Vary", "Origin")
			}
			w.Header().Set("Access-Control-Allow-Headers",
				"Content-Type, Content-Length, Accept-Encoding, X-Request-Id, accept, origin, Cache-Control")
			w.Header().Set("Access-Control-Allow-Methods", corsMethods)

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
