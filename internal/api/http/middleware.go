package http

import (
	"net/http"

	"github.com/google/uuid"

	"eventrental-backend/internal/logger"
)

// RequestLogging tags each request with an id and logs method and path,
// mirroring the request log line the API has always emitted.
func RequestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-Id")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", requestID)
		logger.WithRequest(requestID, r.Method, r.URL.Path).Info("Request received")
		next.ServeHTTP(w, r)
	})
}
