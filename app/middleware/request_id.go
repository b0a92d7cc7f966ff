// Package middleware holds HTTP middleware shared by all routes.
package middleware

import (
	"net/http"
	"time"

	"todo-go/app/logging"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// RequestIDHeader carries the per-request ID on responses.
const RequestIDHeader = "X-Request-ID"

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// RequestLogger tags every request with a fresh ID and logs it once the
// handler returns.
func RequestLogger(logger logging.Logger) mux.MiddlewareFunc {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := uuid.NewString()
			w.Header().Set(RequestIDHeader, id)

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()
			next.ServeHTTP(rec, r)

			logger.Info("request handled",
				"request_id", id,
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration", time.Since(start),
			)
		})
	}
}
