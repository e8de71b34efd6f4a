package handler

import (
	"net/http"
	"time"

	"marketplace/config"

	"github.com/labstack/echo/v4"
)

// setSessionCookie writes the signed session token as an HTTP-only cookie.
// Login and every cart mutation reissue it so the embedded cart count stays
// fresh.
func setSessionCookie(c echo.Context, cfg *config.Config, token string) {
	c.SetCookie(&http.Cookie{
		Name:     cfg.Session.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(cfg.Session.TTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie expires the session cookie immediately.
func clearSessionCookie(c echo.Context, cfg *config.Config) {
	c.SetCookie(&http.Cookie{
		Name:     cfg.Session.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
