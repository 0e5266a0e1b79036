package middleware

import (
	"context"
	"net/http"
	"time"

	"ilac-otomasyon/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// GetRequestID devuelve el id que pone chimw.RequestID ("" si no hay).
func GetRequestID(ctx context.Context) string {
	return chimw.GetReqID(ctx)
}

// RequestLogger loguea una línea por request al terminar.
func RequestLogger(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			fields := map[string]any{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      status,
				"bytes":       ww.BytesWritten(),
				"duration_ms": time.Since(start).Milliseconds(),
				"remote_addr": r.RemoteAddr,
				"request_id":  GetRequestID(r.Context()),
			}
			if id := GetKioskID(r.Context()); id != "" {
				fields["kiosk_id"] = id
			}

			switch {
			case status >= 500:
				log.Error("request", fields)
			case status >= 400:
				log.Warn("request", fields)
			default:
				log.Info("request", fields)
			}
		})
	}
}
