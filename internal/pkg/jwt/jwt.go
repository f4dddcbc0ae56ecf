package jwt

import (
	"errors"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/oryfolks/hrms-backend-go/internal/domain/user"
)

const TokenTypeAccess = "access"

var ErrInvalidClaims = errors.New("token claims are missing or malformed")

// Claims is the identity carried by an access token.
type Claims struct {
	UserID     string
	Username   string
	EmployeeID *string
	Role       user.Role
}

type Service interface {
	GenerateAccessToken(userID, username string, employeeID *string, role user.Role) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	accessTokenExpiration time.Duration
	tokenAuth             *jwtauth.JWTAuth
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpiration time.Duration) Service {
	return &JWTService{
		accessTokenExpiration: accessTokenExpiration,
		tokenAuth:             jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) GenerateAccessToken(userID, username string, employeeID *string, role user.Role) (token string, expiresAt int64, err error) {
	expiresAt = time.Now().Add(j.accessTokenExpiration).Unix()

	claims := map[string]interface{}{
		"user_id":     userID,
		"username":    username,
		"employee_id": valueOrNil(employeeID),
		"role":        string(role),
		"type":        TokenTypeAccess,
		"exp":         expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

// ParseClaims reads the access claims out of a decoded claim map.
func ParseClaims(raw map[string]interface{}) (Claims, error) {
	if t, _ := raw["type"].(string); t != TokenTypeAccess {
		return Claims{}, ErrInvalidClaims
	}

	userID, _ := raw["user_id"].(string)
	roleStr, _ := raw["role"].(string)
	role, ok := user.ParseRole(roleStr)
	if userID == "" || !ok {
		return Claims{}, ErrInvalidClaims
	}

	claims := Claims{UserID: userID, Role: role}
	claims.Username, _ = raw["username"].(string)
	if employeeID, ok := raw["employee_id"].(string); ok && employeeID != "" {
		claims.EmployeeID = &employeeID
	}
	return claims, nil
}

func valueOrNil(value *string) interface{} {
	if value == nil {
		return nil
	}
	return *value
}
