package middleware

import (
	"fmt"
	"net/http"
)

// RequestSizeLimitMiddleware rejects bodies larger than maxRequestSize bytes.
// A declared Content-Length over the limit is refused with 413 up front; bodies
// without one are capped by http.MaxBytesReader and fail when decoded.
func RequestSizeLimitMiddleware(maxRequestSize int64) func(http.Handler) http.Handler {
	message := fmt.Sprintf("request body exceeds %s limit", formatSize(maxRequestSize))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > maxRequestSize {
				WriteError(w, http.StatusRequestEntityTooLarge, message)
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, maxRequestSize)
			next.ServeHTTP(w, r)
		})
	}
}

func formatSize(n int64) string {
	const (
		kb = 1024
		mb = 1024 * kb
	)
	switch {
	case n >= mb && n%mb == 0:
		return fmt.Sprintf("%dMB", n/mb)
	case n >= kb && n%kb == 0:
		return fmt.Sprintf("%dKB", n/kb)
	default:
		return fmt.Sprintf("%d bytes", n)
	}
}
