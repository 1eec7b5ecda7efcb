package middleware

import (
	"net/http"
	"slices"

	"project-calendar-service/internal/domain/entity"
	"project-calendar-service/pkg/response"
)

// RequireRole rejects requests whose token role is not one of allowedRoleIDs.
// It must run after AuthMiddleware.Authenticate.
func RequireRole(allowedRoleIDs ...int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			roleID, ok := GetRoleIDFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			if !slices.Contains(allowedRoleIDs, roleID) {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDAdmin)(next)
}
