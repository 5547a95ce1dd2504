package middlewares

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/Rakhulsr/go-catalog/app/helpers"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(helpers.ContextKeyRequestID).(string)
	return id
}

// RequestLogger tags each request with an id (reusing an incoming
// X-Request-ID) and logs it once the response is done.
func RequestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			requestID := r.Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, requestID)

			ctx := context.WithValue(r.Context(), helpers.ContextKeyRequestID, requestID)
			rec := wrapWriter(w)

			next.ServeHTTP(rec, r.WithContext(ctx))

			logger.InfoContext(ctx, "request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration", time.Since(start),
				"request_id", requestID,
			)
		})
	}
}
