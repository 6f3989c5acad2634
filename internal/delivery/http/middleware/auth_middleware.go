// Package middleware contains the HTTP middleware of the delivery layer.
package middleware

import (
	"net/http"
	"strings"

	"jobsearch/config"
	"jobsearch/internal/domain/entity"
	"jobsearch/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	contextKeyUserID      = "userID"
	contextKeyProfileKind = "profileKind"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	cfg      *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, cfg: cfg}
}

// Authenticate validates the JWT access token and stores the caller's user ID
// and profile kind on the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		token, err := m.tokenSvc.ValidateToken(tokenString, m.cfg.SecretKey.Access)
		if err != nil || !token.Valid {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Failed to parse token claims"})
		}

		userIDStr, ok := claims["sub"].(string)
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "User ID missing from token"})
		}
		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid user ID format in token"})
		}

		kindStr, _ := claims["kind"].(string)
		kind := entity.ProfileKind(kindStr)

		c.Set(contextKeyUserID, userID)
		c.Set(contextKeyProfileKind, kind)

		return next(c)
	}
}

// RequireKind gates a route group on the caller's profile kind. It must be
// used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireKind(required entity.ProfileKind) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			kind, ok := GetProfileKind(c)
			if !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: profile kind missing"})
			}

			if kind != required {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: require '" + required.String() + "' profile"})
			}

			return next(c)
		}
	}
}

// GetUserID extracts the authenticated user's ID from the request context.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(contextKeyUserID).(uuid.UUID)

	return userID, ok
}

// GetProfileKind extracts the authenticated user's profile kind from the
// request context.
func GetProfileKind(c echo.Context) (entity.ProfileKind, bool) {
	kind, ok := c.Get(contextKeyProfileKind).(entity.ProfileKind)
	if !ok || !kind.IsValid() {
		return "", false
	}

	return kind, true
}
