package handler

import (
	"log/slog"
	"net/http"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/delivery/http/response"
	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CartHandler holds dependencies for shopping cart endpoints. Mutations
// reissue the session cookie so the embedded cart count stays current.
type CartHandler struct {
	uc       usecase.CartUsecase
	tokenSvc service.SessionTokenService
	cfg      *config.Config
	logger   *slog.Logger
}

// CartHandlerParams groups the CartHandler dependencies.
type CartHandlerParams struct {
	fx.In

	Usecase  usecase.CartUsecase
	TokenSvc service.SessionTokenService
	Config   *config.Config
	Logger   *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		uc:       params.Usecase,
		tokenSvc: params.TokenSvc,
		cfg:      params.Config,
		logger:   params.Logger,
	}
}

// View returns the cart contents with the total price.
func (h *CartHandler) View(c echo.Context) error {
	user := deliverycontext.GetUserInfo(c)

	output, err := h.uc.ViewCart(c.Request().Context(), user.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// Add puts a product in the cart and refreshes the session cookie.
func (h *CartHandler) Add(c echo.Context) error {
	productID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	user := deliverycontext.GetUserInfo(c)
	count, err := h.uc.AddToCart(c.Request().Context(), user.UserID, productID)
	if err != nil {
		return errors.WithStack(err)
	}

	h.refreshSession(c, user, count)

	return response.Success(c, http.StatusOK, map[string]any{"cart_count": count}, "Product added to cart")
}

// Remove takes a product out of the cart and refreshes the session cookie.
func (h *CartHandler) Remove(c echo.Context) error {
	productID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	user := deliverycontext.GetUserInfo(c)
	count, err := h.uc.RemoveFromCart(c.Request().Context(), user.UserID, productID)
	if err != nil {
		return errors.WithStack(err)
	}

	h.refreshSession(c, user, count)

	return response.Success(c, http.StatusOK, map[string]any{"cart_count": count}, "Product removed from cart")
}

// refreshSession reissues the session cookie with the new cart count. On
// failure the stale cookie stays in place; the count corrects itself on the
// next successful reissue.
func (h *CartHandler) refreshSession(c echo.Context, user entity.UserInfo, count int64) {
	user.CartCount = count
	token, err := h.tokenSvc.Issue(user)
	if err != nil {
		h.logger.Warn("Failed to reissue session token", slog.Any("userID", user.UserID), slog.Any("error", err))

		return
	}

	setSessionCookie(c, h.cfg, token)
}
