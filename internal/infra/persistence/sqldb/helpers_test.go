package sqldb

import (
	"context"
	"path/filepath"
	"testing"

	"marketplace/internal/domain/entity"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a throwaway SQLite database with the full schema applied.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *entity.User {
	t.Helper()

	user := &entity.User{Username: username, PasswordHash: "x"}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))

	return user
}

func seedCategories(t *testing.T, db *gorm.DB) []*entity.Category {
	t.Helper()

	repo := NewCategoryRepository(db)
	require.NoError(t, repo.SeedDefaults(context.Background()))
	categories, err := repo.ListAll(context.Background())
	require.NoError(t, err)

	return categories
}

func seedProduct(t *testing.T, db *gorm.DB, title string, price float64, categoryID, sellerID uint) *entity.Product {
	t.Helper()

	product := &entity.Product{
		Title:       title,
		Price:       price,
		Currency:    entity.DefaultCurrency,
		Description: title + " description",
		ImageURL:    "/static/images/no_image.jpg",
		CategoryID:  categoryID,
		SellerID:    sellerID,
	}
	require.NoError(t, NewProductRepository(db).Create(context.Background(), product))

	return product
}
