// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"marketplace/config"
	"marketplace/internal/delivery/http/response"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for registration, login and logout.
type AuthHandler struct {
	uc     usecase.UserUsecase
	cfg    *config.Config
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.UserUsecase, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		cfg:    cfg,
		logger: logger,
	}
}

// RegisterForm describes the registration form for clients that render it.
func (h *AuthHandler) RegisterForm(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"fields": []string{"username", "password"},
	}, "Registration form")
}

// Register handles the user registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var input usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "User registered successfully")
}

// LoginForm describes the login form for clients that render it.
func (h *AuthHandler) LoginForm(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"fields": []string{"username", "password"},
	}, "Login form")
}

// Login verifies credentials and installs the session cookie.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	setSessionCookie(c, h.cfg, output.Token)

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// Logout clears the session cookie. The token itself simply expires.
func (h *AuthHandler) Logout(c echo.Context) error {
	clearSessionCookie(c, h.cfg)

	return response.Success(c, http.StatusOK, nil, "Logout successful")
}
