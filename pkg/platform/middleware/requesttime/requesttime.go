// Package requesttime pins a single "now" per request so every timestamp
// written while handling it (createdAt, completedAt, token expiry) agrees.
package requesttime

import (
	"net/http"
	"time"

	"ecrc42/pkg/requestcontext"
)

func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithTime(r.Context(), time.Now().UTC())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
