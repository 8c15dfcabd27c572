package middleware

import (
	"net/http"

	"github.com/AjwadDaiki/isopen-service/internal/api/handlers"
)

const adminTokenHeader = "X-Admin-Token"

// Auth проверяет админский токен для защищённых маршрутов
func Auth(adminToken string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(adminTokenHeader)
			if token == "" || token != adminToken {
				handlers.RespondUnauthorized(w, "требуется валидный X-Admin-Token")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
