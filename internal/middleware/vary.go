package middleware

import "net/http"

// Vary returns middleware that marks responses as varying on Accept:
// content negotiation can serve the same route as JSON or CBOR, so caches
// must key on the request's Accept header. The CORS middleware adds
// "Origin" to Vary by itself.
func Vary() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("Vary", "Accept")
			next.ServeHTTP(w, r)
		})
	}
}
