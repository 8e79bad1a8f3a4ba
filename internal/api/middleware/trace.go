package middleware

import (
	"log/slog"
	"net/http"

	"github.com/studyhelper/study-api/internal/api/shared"
)

// TraceMiddleware stamps each request context with a trace ID before any
// handler runs, so generation responses and error bodies can be
// correlated with their log lines. Apply it ahead of the route handlers.
func TraceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())

		slog.Debug("request received",
			slog.String("trace_id", shared.GetTraceID(ctx)),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
