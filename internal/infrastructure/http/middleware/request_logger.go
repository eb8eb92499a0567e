package middlewares

import (
	"net/http"
	"time"
	ports "training-hub/internal/domain/ports/output"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func RequestLoggerMiddleware(log ports.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.Info("http",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration_ms", float64(time.Since(start).Microseconds())/1000.0,
				"request_id", chiMiddleware.GetReqID(r.Context()),
			)
		})
	}
}
