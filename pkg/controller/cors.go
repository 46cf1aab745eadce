package controller

import "net/http"

// corsHeaders are set on every response; the API is served to browser
// dashboards on other origins.
var corsHeaders = map[string]string{ //nolint: gochecknoglobals
	"Access-Control-Allow-Origin":      "*",
	"Access-Control-Allow-Credentials": "true",
	"Access-Control-Allow-Headers": "Content-Type, Content-Length, Accept-Encoding, " +
		"Authorization, accept, origin, Cache-Control",
	"Access-Control-Allow-Methods": "POST, OPTIONS, GET, PUT, PATCH, DELETE",
}

// WithCORS returns a middleware that sets permissive CORS headers and answers
// OPTIONS preflight requests with 204 without invoking the next handler.
func WithCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for name, value := range corsHeaders {
			w.Header().Set(name, value)
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)

			return
		}

		next.ServeHTTP(w, r)
	})
}
