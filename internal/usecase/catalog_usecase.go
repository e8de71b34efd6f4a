package usecase

import (
	"context"
	"io"

	"marketplace/internal/domain/entity"
)

// ProductListOutput carries one page of products plus pagination metadata.
type ProductListOutput struct {
	Products   []*entity.Product  `json:"products"`
	Pagination *entity.Pagination `json:"pagination"`
}

// ProductDetailOutput carries a single product together with up to four
// recommendations from the same category. AddedToCart reflects whether the
// viewing user already has the product in their cart.
type ProductDetailOutput struct {
	Product     *entity.Product   `json:"product"`
	Recommended []*entity.Product `json:"recommended"`
	AddedToCart bool              `json:"added_to_cart"`
}

// SearchInput captures the search form: free text plus any number of
// category filters, combined with AND semantics.
type SearchInput struct {
	Text        string `json:"text" form:"q"`
	CategoryIDs []uint `json:"category_ids" form:"category"`
	Page        int    `json:"page" form:"page"`
}

// CreateProductInput defines the data required to list a product for sale.
// Price arrives as the raw form value and is validated during creation.
// Image is optional; when nil the default placeholder image is used.
type CreateProductInput struct {
	Title         string `validate:"required,max=200"`
	Price         string `validate:"required"`
	Description   string `validate:"max=500"`
	CategoryID    uint   `validate:"required"`
	SellerID      uint
	Image         io.Reader
	ImageFilename string
}

// UpdateProductInput defines a partial update of an existing listing.
// Empty fields keep their current values.
type UpdateProductInput struct {
	ProductID     uint
	RequesterID   uint
	Title         string
	Price         string
	Description   string
	CategoryID    uint
	Image         io.Reader
	ImageFilename string
}

// CatalogUsecase defines the interface for browsing and managing the
// product catalog.
type CatalogUsecase interface {
	// Home returns the first page of the catalog sized for the home view.
	Home(ctx context.Context) (*ProductListOutput, error)

	// ListProducts returns one page of the full catalog.
	ListProducts(ctx context.Context, page int) (*ProductListOutput, error)

	// Search returns one page of products matching the text and category
	// filters. Empty input matches the whole catalog.
	Search(ctx context.Context, input *SearchInput) (*ProductListOutput, error)

	// ViewProduct returns a product with recommendations from the same
	// category, excluding the product itself.
	ViewProduct(ctx context.Context, productID uint, viewer entity.UserInfo) (*ProductDetailOutput, error)

	// CreateProduct lists a new product for sale on behalf of the seller.
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)

	// UpdateProduct applies a partial update. Only the seller may update
	// their own listing.
	UpdateProduct(ctx context.Context, input *UpdateProductInput) (*entity.Product, error)

	// DeleteProduct removes a listing and every cart entry that references
	// it. Only the seller may delete their own listing.
	DeleteProduct(ctx context.Context, productID uint, requesterID uint) error

	// MyProducts returns every listing owned by the seller.
	MyProducts(ctx context.Context, sellerID uint) ([]*entity.Product, error)

	// Categories returns all product categories.
	Categories(ctx context.Context) ([]*entity.Category, error)
}
