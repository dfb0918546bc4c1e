package middleware

import (
	"context"
	"net/http"

	"github.com/courseadmin/dashboard/internal/client"
	"github.com/google/uuid"
)

const maxRequestIDLength = 64

// RequestIDMiddleware tags each request with an id and forwards it on upstream calls.
// Incoming X-Request-ID values are kept when they are short printable ASCII,
// otherwise a fresh UUID is generated.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if !validRequestID(requestID) {
			requestID = uuid.New().String()
		}

		w.Header().Set("X-Request-ID", requestID)
		next.ServeHTTP(w, r.WithContext(client.WithRequestID(r.Context(), requestID)))
	})
}

// GetRequestID retrieves the request ID from context
func GetRequestID(ctx context.Context) string {
	return client.RequestIDFrom(ctx)
}

func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}
	return true
}
