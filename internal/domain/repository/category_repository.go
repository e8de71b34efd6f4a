package repository

import (
	"context"

	"marketplace/internal/domain/entity"
)

// CategoryRepository defines the read-mostly category operations.
type CategoryRepository interface {
	// ListAll returns all categories in id order.
	ListAll(ctx context.Context) ([]*entity.Category, error)

	// SeedDefaults inserts the fixed category list, skipping names that
	// already exist. Called once at startup.
	SeedDefaults(ctx context.Context) error
}
