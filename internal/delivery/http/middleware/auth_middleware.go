package middleware

import (
	"strings"

	"accounts/internal/delivery/http/response"
	"accounts/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// SessionCookieName is the cookie carrying the session token for browser
// clients. API clients use the Authorization header instead.
const SessionCookieName = "auth_token"

// AuthMiddleware provides middleware for session authentication.
type AuthMiddleware struct {
	sessions service.SessionService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(sessions service.SessionService) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// Authenticate is the core middleware function that validates the session token.
// The token is read from the Authorization header first, falling back to the
// session cookie.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := extractToken(c)
		if tokenString == "" {
			return response.Unauthorized(c, "SESSION_TOKEN_MISSING", "Authentication required")
		}

		claims, err := m.sessions.Verify(tokenString)
		if err != nil {
			return response.Unauthorized(c, "SESSION_TOKEN_INVALID", "Invalid or expired session token")
		}

		// Set user info on the context for handlers to use
		c.Set("userID", claims.UserID)
		c.Set("userEmail", claims.Email)

		return next(c)
	}
}

// extractToken pulls the session token from the Authorization header or the
// session cookie. A header without the Bearer prefix is rejected.
func extractToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader != "" {
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return ""
		}

		return tokenString
	}

	cookie, err := c.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}

	return cookie.Value
}
