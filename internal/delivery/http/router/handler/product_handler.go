package handler

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/delivery/http/response"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler holds dependencies for catalog browsing and listing
// management.
type ProductHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: logger,
	}
}

// Detail returns a product with recommendations and the viewer's cart flag.
func (h *ProductHandler) Detail(c echo.Context) error {
	productID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	output, err := h.uc.ViewProduct(c.Request().Context(), productID, deliverycontext.GetUserInfo(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// AddForm returns the category list needed to render the listing form.
func (h *ProductHandler) AddForm(c echo.Context) error {
	categories, err := h.uc.Categories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"categories": categories}, "")
}

// Add creates a listing from a multipart form. The image part is optional.
func (h *ProductHandler) Add(c echo.Context) error {
	seller := deliverycontext.GetUserInfo(c)

	categoryID, err := parseFormUint(c, "category")
	if err != nil {
		return err
	}

	input := &usecase.CreateProductInput{
		Title:       c.FormValue("title"),
		Price:       c.FormValue("price"),
		Description: c.FormValue("description"),
		CategoryID:  categoryID,
		SellerID:    seller.UserID,
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	closeImage, err := attachImage(c, &input.Image, &input.ImageFilename)
	if err != nil {
		return err
	}
	defer closeImage()

	product, err := h.uc.CreateProduct(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product listed successfully")
}

// UpdateForm returns the current listing plus the category list.
func (h *ProductHandler) UpdateForm(c echo.Context) error {
	productID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	detail, err := h.uc.ViewProduct(c.Request().Context(), productID, deliverycontext.GetUserInfo(c))
	if err != nil {
		return errors.WithStack(err)
	}
	categories, err := h.uc.Categories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"product":    detail.Product,
		"categories": categories,
	}, "")
}

// Update applies a partial edit to the caller's own listing.
func (h *ProductHandler) Update(c echo.Context) error {
	productID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	input := &usecase.UpdateProductInput{
		ProductID:   productID,
		RequesterID: deliverycontext.GetUserInfo(c).UserID,
		Title:       c.FormValue("title"),
		Price:       c.FormValue("price"),
		Description: c.FormValue("description"),
	}
	if raw := c.FormValue("category"); raw != "" {
		categoryID, err := parseFormUint(c, "category")
		if err != nil {
			return err
		}
		input.CategoryID = categoryID
	}

	closeImage, err := attachImage(c, &input.Image, &input.ImageFilename)
	if err != nil {
		return err
	}
	defer closeImage()

	product, err := h.uc.UpdateProduct(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated successfully")
}

// Delete removes the caller's own listing along with any cart references.
func (h *ProductHandler) Delete(c echo.Context) error {
	productID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	requesterID := deliverycontext.GetUserInfo(c).UserID
	if err := h.uc.DeleteProduct(c.Request().Context(), productID, requesterID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted successfully")
}

// Search returns one page of products matching the query parameters.
func (h *ProductHandler) Search(c echo.Context) error {
	input := &usecase.SearchInput{
		Text: c.QueryParam("q"),
		Page: parsePageParam(c),
	}
	queryParams := c.QueryParams()
	categoryParams := append(queryParams["category"], queryParams["category[]"]...)
	for _, raw := range categoryParams {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("category must be a number")
		}
		input.CategoryIDs = append(input.CategoryIDs, uint(id))
	}

	output, err := h.uc.Search(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// MyProducts returns every listing owned by the caller.
func (h *ProductHandler) MyProducts(c echo.Context) error {
	sellerID := deliverycontext.GetUserInfo(c).UserID
	products, err := h.uc.MyProducts(c.Request().Context(), sellerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"products": products}, "")
}

// parseIDParam reads the :id route parameter.
func parseIDParam(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WithDetails("id must be a number")
	}

	return uint(id), nil
}

// parsePageParam reads the page query parameter, defaulting to 1.
func parsePageParam(c echo.Context) int {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		return 1
	}

	return page
}

func parseFormUint(c echo.Context, field string) (uint, error) {
	value, err := strconv.ParseUint(c.FormValue(field), 10, 32)
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WithDetails(field + " must be a number")
	}

	return uint(value), nil
}

// attachImage opens the optional multipart image part. The returned close
// function is a no-op when no image was uploaded.
func attachImage(c echo.Context, reader *io.Reader, filename *string) (func(), error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		// No image part in the form.
		return func() {}, nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open uploaded image")
	}

	*reader = file
	*filename = fileHeader.Filename

	return func() { _ = file.Close() }, nil
}
