// Package middleware holds the echo middleware of the ingestion API.
package middleware

import (
	"net/http"
	"strings"

	"herald/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// ContextKeyApplicationToken is the echo context key holding the raw
// application token after authentication.
const ContextKeyApplicationToken = "applicationToken"

// ContextKeyApplicationID is the echo context key holding the authenticated
// application's ID.
const ContextKeyApplicationID = "applicationID"

// AuthMiddleware authenticates application tokens presented at ingestion.
type AuthMiddleware struct {
	authSvc service.AuthenticationService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authSvc service.AuthenticationService) *AuthMiddleware {
	return &AuthMiddleware{authSvc: authSvc}
}

// Authenticate validates the bearer token as an application token. The raw
// token stays on the context so the use case can resolve the application
// behind it.
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

		info, err := m.authSvc.GetTokenInfo(c.Request().Context(), tokenString, service.TokenTypeApplication)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired application token"})
		}

		c.Set(ContextKeyApplicationToken, tokenString)
		c.Set(ContextKeyApplicationID, info.ApplicationID)

		return next(c)
	}
}
