package middleware

import (
	"strings"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/delivery/http/response"
	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware resolves the session identity from the session cookie or a
// bearer token.
type AuthMiddleware struct {
	tokenSvc   service.SessionTokenService
	cookieName string
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.SessionTokenService, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, cookieName: cfg.Session.CookieName}
}

// Identify resolves the identity when a valid token is present and passes
// anonymous requests through. An invalid or expired token is treated as
// anonymous rather than rejected.
func (m *AuthMiddleware) Identify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if info, ok := m.resolve(c); ok {
			deliverycontext.SetUserInfo(c, info)
		}

		return next(c)
	}
}

// Authenticate rejects requests that carry no valid session.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		info, ok := m.resolve(c)
		if !ok {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Login required")
		}

		deliverycontext.SetUserInfo(c, info)

		return next(c)
	}
}

// resolve extracts and validates the session token. The cookie takes
// precedence; a bearer header is accepted for non-browser clients.
func (m *AuthMiddleware) resolve(c echo.Context) (entity.UserInfo, bool) {
	token := ""
	if cookie, err := c.Cookie(m.cookieName); err == nil && cookie.Value != "" {
		token = cookie.Value
	} else if authHeader := c.Request().Header.Get("Authorization"); authHeader != "" {
		if bearer := strings.TrimPrefix(authHeader, "Bearer "); bearer != authHeader {
			token = bearer
		}
	}
	if token == "" {
		return entity.UserInfo{}, false
	}

	info, err := m.tokenSvc.Validate(token)
	if err != nil {
		return entity.UserInfo{}, false
	}

	return info, true
}
