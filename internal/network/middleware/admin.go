package middleware

import (
	"net/http"

	"github.com/denmor86/profit-gainer/internal/helpers"
	"github.com/denmor86/profit-gainer/internal/logger"
)

// AdminOnly — middleware доступа к админке, пропускает только администраторов
func AdminOnly(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !helpers.IsAdmin(r.Context()) {
			logger.Warn("Access denied. Admin privileges required", "uri", r.RequestURI)
			http.Error(w, "Access denied. Admin privileges required", http.StatusForbidden)
			return
		}
		h.ServeHTTP(w, r)
	})
}
