package usecase

import (
	"context"

	"marketplace/internal/domain/entity"
)

// CartOutput carries the cart contents and the precomputed total price.
type CartOutput struct {
	Items      []*entity.CartItem `json:"items"`
	TotalPrice float64            `json:"total_price"`
}

// CartUsecase defines the interface for shopping cart operations.
// Mutations return the new cart count so the session snapshot can be
// refreshed immediately.
type CartUsecase interface {
	// ViewCart returns the user's cart items with the summed total.
	ViewCart(ctx context.Context, userID uint) (*CartOutput, error)

	// AddToCart puts a product in the user's cart. Adding a product that
	// is already present, or one the user sells, is a silent no-op.
	AddToCart(ctx context.Context, userID uint, productID uint) (int64, error)

	// RemoveFromCart removes a product from the user's cart.
	RemoveFromCart(ctx context.Context, userID uint, productID uint) (int64, error)

	// Count returns the number of items in the user's cart.
	Count(ctx context.Context, userID uint) (int64, error)
}
