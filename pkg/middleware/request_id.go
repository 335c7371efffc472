package middleware

import (
	"net/http"

	"ticket-purchase/pkg/utils"
)

const RequestIDHeader = "X-Request-ID"

// RequestID middleware
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := utils.EnsureRequestID(r.Header.Get(RequestIDHeader))
			w.Header().Set(RequestIDHeader, requestID)

			ctx := utils.SetRequestIDContext(r.Context(), requestID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
