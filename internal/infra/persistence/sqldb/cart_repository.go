package sqldb

import (
	"context"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// cartRepository implements the repository.CartRepository interface using GORM.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

// Add inserts a cart entry. The composite primary key plus ON CONFLICT DO
// NOTHING makes re-adding an existing entry a silent no-op.
func (repo *cartRepository) Add(ctx context.Context, userID, productID uint) error {
	cartM := model.CartModel{UserID: userID, ProductID: productID}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&cartM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound.WrapMessage("invalid cart reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add cart entry")
	}

	return nil
}

// Remove deletes the matching entry if present; no-op otherwise.
func (repo *cartRepository) Remove(ctx context.Context, userID, productID uint) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&model.CartModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to remove cart entry")
	}

	return nil
}

// RemoveByProduct deletes every cart entry referencing a product. Used by the
// product-delete cascade inside its transaction.
func (repo *cartRepository) RemoveByProduct(ctx context.Context, productID uint) error {
	if err := repo.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Delete(&model.CartModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to remove cart entries for product")
	}

	return nil
}

// Exists reports whether the (user, product) entry is present.
func (repo *cartRepository) Exists(ctx context.Context, userID, productID uint) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.CartModel{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check cart entry")
	}

	return count > 0, nil
}

// Count returns the number of entries in a user's cart.
func (repo *cartRepository) Count(ctx context.Context, userID uint) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.CartModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count cart entries")
	}

	return count, nil
}

// ListItems joins cart entries with product data. The total price is summed
// by the caller, not here.
func (repo *cartRepository) ListItems(ctx context.Context, userID uint) ([]*entity.CartItem, error) {
	var items []*entity.CartItem

	if err := repo.db.WithContext(ctx).
		Model(&model.CartModel{}).
		Select("products.id AS product_id, products.title AS title, products.price AS price, products.image_url AS image_url").
		Joins("JOIN products ON products.id = carts.product_id").
		Where("carts.user_id = ?", userID).
		Order("products.id").
		Scan(&items).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list cart items")
	}

	return items, nil
}
