package middleware

import (
	"log/slog"
	"net/http"

	"github.com/paperhub/paperhub/internal/httpx"
)

// Recover catches panics from downstream handlers, logs them, and returns a
// generic 500 so no failure crosses the request boundary unhandled.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec != nil {
				slog.Error("panic recovered",
					"error", rec,
					"method", r.Method,
					"path", r.URL.Path,
				)
				httpx.Error(w, http.StatusInternalServerError, "Internal server error")
			}
		}()

		next.ServeHTTP(w, r)
	})
}
