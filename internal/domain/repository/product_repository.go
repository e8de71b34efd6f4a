package repository

import (
	"context"
	"errors"

	"marketplace/internal/domain/entity"
)

// ErrProductNotFound is returned when a product lookup or mutation misses.
var ErrProductNotFound = errors.New("product not found")

// ProductPage is a page of products together with its pagination metadata.
type ProductPage struct {
	Products   []*entity.Product
	Pagination entity.Pagination
}

// ProductUpdate carries the fields of a partial product update. Nil fields
// leave the stored value untouched.
type ProductUpdate struct {
	Title       *string
	Price       *float64
	Description *string
	CategoryID  *uint
	ImageURL    *string
}

// ProductRepository defines the persistence operations of the product catalog.
type ProductRepository interface {
	// Create persists a new product and fills in the generated ID.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a product with its category name resolved.
	FindByID(ctx context.Context, id uint) (*entity.Product, error)

	// ListAll returns one page of the whole catalog in stable id order.
	ListAll(ctx context.Context, page, perPage int) (*ProductPage, error)

	// ListByCategory returns every product of one category, unpaginated.
	ListByCategory(ctx context.Context, categoryID uint) ([]*entity.Product, error)

	// ListBySeller returns every product owned by a seller, unpaginated.
	ListBySeller(ctx context.Context, sellerID uint) ([]*entity.Product, error)

	// Search returns products whose title or description contains text as a
	// case-insensitive substring (empty text matches everything), restricted
	// to the given categories when the set is non-empty.
	Search(ctx context.Context, text string, categoryIDs []uint, page, perPage int) (*ProductPage, error)

	// Update applies a partial update and reports ErrProductNotFound when the
	// id does not exist.
	Update(ctx context.Context, id uint, update ProductUpdate) error

	// Delete removes a product row. Cart cascade is handled by the usecase
	// inside a transaction; see TransactionManager.
	Delete(ctx context.Context, id uint) error
}
