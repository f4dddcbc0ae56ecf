package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oryfolks/hrms-backend-go/internal/domain/user"
	"github.com/oryfolks/hrms-backend-go/internal/handler/http/response"
)

// Authorizer decides whether a role holds a permission.
type Authorizer interface {
	AllowedAny(role user.Role, perms ...user.Permission) (bool, error)
}

// RequirePermission lets the request through when the caller's role holds
// any of perms.
func RequirePermission(az Authorizer, perms ...user.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Unauthorized")
				return
			}

			if !allowed(az, claims.Role, perms) {
				response.Forbidden(w, fmt.Sprintf("Insufficient permissions: role '%s' lacks %v", claims.Role, perms))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireSelfOr lets the request through when the employee named by the URL
// parameter is the caller, or when the caller holds any of perms.
func RequireSelfOr(az Authorizer, param string, perms ...user.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := ClaimsFromContext(r.Context()); !ok {
				response.Unauthorized(w, "Unauthorized")
				return
			}

			if !CanActFor(r, az, chi.URLParam(r, param), perms...) {
				response.Forbidden(w, "You may only access your own records")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// CanActFor reports whether the caller is employeeID or holds any of perms.
func CanActFor(r *http.Request, az Authorizer, employeeID string, perms ...user.Permission) bool {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		return false
	}
	if claims.EmployeeID != nil && *claims.EmployeeID == employeeID {
		return true
	}
	return allowed(az, claims.Role, perms)
}

func allowed(az Authorizer, role user.Role, perms []user.Permission) bool {
	if len(perms) == 0 {
		return false
	}
	ok, err := az.AllowedAny(role, perms...)
	if err != nil {
		slog.Error("Authorization check failed", "role", role, "error", err)
		return false
	}
	return ok
}
