package api

import (
	"net/http"

	"golang.org/x/time/rate"

	"github.com/coreybb/studio/webutil"
)

// SetHeader is a middleware to set a response header.
func SetHeader(key, value string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(key, value)
			next.ServeHTTP(w, r)
		})
	}
}

// RateLimit rejects requests with 429 once the shared limiter is exhausted.
// A nil limiter disables limiting.
func RateLimit(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if limiter == nil {
			return next
		}
		return webutil.MakeHandler(func(w http.ResponseWriter, r *http.Request) error {
			if !limiter.Allow() {
				return webutil.ErrTooManyRequests("")
			}
			next.ServeHTTP(w, r)
			return nil
		})
	}
}
