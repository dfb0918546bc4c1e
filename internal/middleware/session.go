package middleware

import (
	"net/http"

	"github.com/courseadmin/dashboard/internal/client"
)

// SessionMiddleware forwards the caller's session cookies to upstream calls made while serving the request
func SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if cookie := r.Header.Get("Cookie"); cookie != "" {
			r = r.WithContext(client.WithSession(r.Context(), cookie))
		}
		next.ServeHTTP(w, r)
	})
}
