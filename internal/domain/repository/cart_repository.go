package repository

import (
	"context"

	"marketplace/internal/domain/entity"
)

// CartRepository defines the persistence operations of per-user carts.
// Entries have set semantics: at most one row per (user, product) pair.
type CartRepository interface {
	// Add inserts a cart entry. Inserting an entry that already exists is a
	// silent no-op.
	Add(ctx context.Context, userID, productID uint) error

	// Remove deletes the matching entry if present; no-op otherwise.
	Remove(ctx context.Context, userID, productID uint) error

	// RemoveByProduct deletes every cart entry referencing a product,
	// regardless of user. Used by the product-delete cascade.
	RemoveByProduct(ctx context.Context, productID uint) error

	// Exists reports whether the (user, product) entry is present.
	Exists(ctx context.Context, userID, productID uint) (bool, error)

	// Count returns the number of entries in a user's cart.
	Count(ctx context.Context, userID uint) (int64, error)

	// ListItems joins cart entries with product data. Total price is the
	// caller's responsibility.
	ListItems(ctx context.Context, userID uint) ([]*entity.CartItem, error)
}
