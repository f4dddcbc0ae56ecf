package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/oryfolks/hrms-backend-go/internal/handler/http/middleware"
	"github.com/oryfolks/hrms-backend-go/internal/handler/http/response"
	"github.com/oryfolks/hrms-backend-go/internal/pkg/jwt"
)

// decodeJSON reads the request body into dst, answering 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, op string, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		slog.Error(op+" decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return false
	}
	return true
}

// callerClaims returns the authenticated identity, answering 401 when absent.
func callerClaims(w http.ResponseWriter, r *http.Request) (jwt.Claims, bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return jwt.Claims{}, false
	}
	return claims, true
}

// callerEmployeeID returns the caller's employee ID, answering 403 when the
// account has no employee record.
func callerEmployeeID(w http.ResponseWriter, r *http.Request) (string, bool) {
	claims, ok := callerClaims(w, r)
	if !ok {
		return "", false
	}
	if claims.EmployeeID == nil || *claims.EmployeeID == "" {
		response.Forbidden(w, "Employee ID not found in token")
		return "", false
	}
	return *claims.EmployeeID, true
}

func queryInt(r *http.Request, key string, fallback int) int {
	if v := r.URL.Query().Get(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
