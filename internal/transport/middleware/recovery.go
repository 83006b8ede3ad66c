package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/heartmarshall/mooddiary-backend/internal/domain"
)

// Recovery returns middleware that recovers from panics, logs the value
// with a stack trace and answers 500 with an UNKNOWN error body.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.Any("error", rec),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)

				writeAppError(w, http.StatusInternalServerError, domain.ErrUnknown)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
