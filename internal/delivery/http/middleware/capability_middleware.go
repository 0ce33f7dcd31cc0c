package middleware

import (
	"net/http"

	"hospital-admin-backend/internal/domain/entity"
	"hospital-admin-backend/pkg/response"
)

// RequireCapability gates a route on the capability table. The role comes
// from context (set by AuthMiddleware from JWT claims), so no user lookup
// happens per request.
func RequireCapability(capability entity.Capability) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetUserRoleFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			if !role.Can(capability) {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
