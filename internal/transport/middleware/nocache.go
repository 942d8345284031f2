package middleware

import "net/http"

// NoCache marks every response as uncacheable. Admin reads must always show
// the current catalog state; a cached product list after a delete would look
// like a broken delete.
func NoCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}
