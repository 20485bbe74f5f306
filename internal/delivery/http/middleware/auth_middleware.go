// Package middleware holds Echo middlewares specific to the HTTP delivery.
package middleware

import (
	"strings"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	contextKeyUserID   = "userID"
	contextKeyUserKind = "userKind"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the JWT access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid or expired token")
		}

		// Refresh tokens cannot be used to call the API directly.
		if claims.Type != "access" {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Access token required")
		}

		// Set account info on the context for handlers to use
		c.Set(contextKeyUserID, claims.UserID)
		c.Set(contextKeyUserKind, claims.Kind)

		return next(c)
	}
}

// RequireShop only lets supplier-side shop accounts through.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireShop(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		kind, ok := GetUserKind(c)
		if !ok || kind != entity.UserKindShop.String() {
			return response.Forbidden(c, "SHOPS_ONLY", "Only shop accounts may perform this operation")
		}

		return next(c)
	}
}

// GetUserID extracts the authenticated user's ID placed by Authenticate.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(contextKeyUserID).(uuid.UUID)

	return userID, ok
}

// GetUserKind extracts the authenticated account kind placed by Authenticate.
func GetUserKind(c echo.Context) (string, bool) {
	kind, ok := c.Get(contextKeyUserKind).(string)

	return kind, ok
}
