package middleware

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/habitatum/HBT-AppointmentService/internal/api/handlers"
)

const adminKeyHeader = "X-Admin-Key"

const msgUnauthorized = "acceso no autorizado"

// Auth guards the administrative routes with a static API key carried
// in the X-Admin-Key header
func Auth(apiKey string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if apiKey == "" || r.Header.Get(adminKeyHeader) != apiKey {
				handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
