package middleware

import (
	"net/http"

	apperrors "molstd/pkg/errors"
	httputil "molstd/pkg/http"
)

// MaxRequestSize caps the request body. Requests announcing a larger
// Content-Length are refused up front; the rest fail on read.
func MaxRequestSize(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				httputil.WriteError(w, apperrors.PayloadTooLarge(limit))
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}
