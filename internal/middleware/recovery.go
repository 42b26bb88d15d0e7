package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
)

const internalErrorMessage = "An unexpected error occurred."

func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			recovered := recover()
			if recovered == nil {
				return
			}
			if recovered == http.ErrAbortHandler {
				panic(recovered)
			}

			slog.Error("panic recovered",
				"error", fmt.Sprintf("%v", recovered),
				"method", r.Method,
				"path", r.URL.Path,
				"stack", string(debug.Stack()),
			)
			writeJSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", internalErrorMessage)
		}()

		next.ServeHTTP(w, r)
	})
}
