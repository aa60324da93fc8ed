package middleware

import (
	"context"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// maxRequestIDLength caps the size of a client-supplied X-Request-Id.
const maxRequestIDLength = 128

// RequestID returns middleware that ensures every request carries a
// correlation ID. A client-supplied X-Request-Id is reused when it is
// printable ASCII of acceptable length; anything else is replaced with a
// fresh UUIDv4. The final ID lands in the request context and is echoed
// on the response so callers can correlate log entries.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := r.Header.Get(chimiddleware.RequestIDHeader)
			if !validRequestID(reqID) {
				reqID = uuid.NewString()
			}

			ctx := context.WithValue(r.Context(), chimiddleware.RequestIDKey, reqID)
			w.Header().Set(chimiddleware.RequestIDHeader, reqID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// validRequestID reports whether id is safe to log verbatim: non-empty,
// bounded, and printable ASCII. Control characters and high bytes are
// rejected so a hostile header cannot inject log lines.
func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for _, c := range []byte(id) {
		if c < 0x20 || c > 0x7E {
			return false
		}
	}
	return true
}
