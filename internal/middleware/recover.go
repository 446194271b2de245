package middleware

import (
	"net/http"
	"runtime/debug"

	"animal-rescue-portal/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// Recover es chimw.Recoverer con log estructurado y una página de error
// propia: onPanic escribe la respuesta (nil = 500 en texto plano).
func Recover(log logger.Logger, onPanic http.HandlerFunc) func(http.Handler) http.Handler {
	if log == nil {
		log = logger.Nop()
	}
	if onPanic == nil {
		onPanic = func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rvr := recover()
				if rvr == nil {
					return
				}
				if rvr == http.ErrAbortHandler {
					// El cliente cortó; que net/http lo maneje.
					panic(rvr)
				}

				log.Error("panic recovered", map[string]any{
					"request_id": chimw.GetReqID(r.Context()),
					"method":     r.Method,
					"path":       r.URL.Path,
					"panic":      rvr,
					"stack":      string(debug.Stack()),
				})

				if r.Header.Get("Connection") != "Upgrade" {
					onPanic(w, r)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
