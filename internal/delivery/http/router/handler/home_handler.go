package handler

import (
	"net/http"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/delivery/http/response"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HomeHandler serves the public pages of the site.
type HomeHandler struct {
	uc usecase.CatalogUsecase
}

// NewHomeHandler is the constructor for HomeHandler, injected by Fx.
func NewHomeHandler(uc usecase.CatalogUsecase) *HomeHandler {
	return &HomeHandler{uc: uc}
}

// Home returns the first catalog page together with the viewer identity.
func (h *HomeHandler) Home(c echo.Context) error {
	output, err := h.uc.Home(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"products":   output.Products,
		"pagination": output.Pagination,
		"user":       deliverycontext.GetUserInfo(c),
	}, "")
}

// Browse returns one page of the full catalog.
func (h *HomeHandler) Browse(c echo.Context) error {
	output, err := h.uc.ListProducts(c.Request().Context(), parsePageParam(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// Contact returns the static contact page data plus the viewer identity.
func (h *HomeHandler) Contact(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"email": "support@marketplace.local",
		"user":  deliverycontext.GetUserInfo(c),
	}, "")
}

// HealthCheck reports service liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
