package sqldb

import (
	"context"
	"testing"

	"marketplace/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartRepository_AddIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	categories := seedCategories(t, db)
	seller := seedUser(t, db, "seller")
	buyer := seedUser(t, db, "buyer")
	product := seedProduct(t, db, "Laptop", 450, categories[0].ID, seller.ID)
	repo := NewCartRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, buyer.ID, product.ID))
	// Re-adding the same entry is a silent no-op, not a duplicate row.
	require.NoError(t, repo.Add(ctx, buyer.ID, product.ID))

	count, err := repo.Count(ctx, buyer.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	exists, err := repo.Exists(ctx, buyer.ID, product.ID)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestCartRepository_RemoveAndCount(t *testing.T) {
	db := newTestDB(t)
	categories := seedCategories(t, db)
	seller := seedUser(t, db, "seller")
	buyer := seedUser(t, db, "buyer")
	laptop := seedProduct(t, db, "Laptop", 450, categories[0].ID, seller.ID)
	phone := seedProduct(t, db, "Phone", 350, categories[0].ID, seller.ID)
	repo := NewCartRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, buyer.ID, laptop.ID))
	require.NoError(t, repo.Add(ctx, buyer.ID, phone.ID))

	count, err := repo.Count(ctx, buyer.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	require.NoError(t, repo.Remove(ctx, buyer.ID, laptop.ID))

	count, err = repo.Count(ctx, buyer.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	exists, err := repo.Exists(ctx, buyer.ID, laptop.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	// Removing an absent entry is a no-op.
	require.NoError(t, repo.Remove(ctx, buyer.ID, laptop.ID))
}

func TestCartRepository_ListItemsJoinsProductData(t *testing.T) {
	db := newTestDB(t)
	categories := seedCategories(t, db)
	seller := seedUser(t, db, "seller")
	buyer := seedUser(t, db, "buyer")
	laptop := seedProduct(t, db, "Laptop", 450, categories[0].ID, seller.ID)
	phone := seedProduct(t, db, "Phone", 350, categories[0].ID, seller.ID)
	repo := NewCartRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, buyer.ID, laptop.ID))
	require.NoError(t, repo.Add(ctx, buyer.ID, phone.ID))

	items, err := repo.ListItems(ctx, buyer.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, laptop.ID, items[0].ProductID)
	assert.Equal(t, "Laptop", items[0].Title)
	assert.Equal(t, 450.0, items[0].Price)
	assert.Equal(t, laptop.ImageURL, items[0].ImageURL)
	assert.Equal(t, phone.ID, items[1].ProductID)
}

func TestTransactionManager_DeleteCascadesCartEntries(t *testing.T) {
	db := newTestDB(t)
	categories := seedCategories(t, db)
	seller := seedUser(t, db, "seller")
	buyer := seedUser(t, db, "buyer")
	product := seedProduct(t, db, "Laptop", 450, categories[0].ID, seller.ID)
	cartRepo := NewCartRepository(db)
	ctx := context.Background()

	require.NoError(t, cartRepo.Add(ctx, buyer.ID, product.ID))

	tm := NewTransactionManager(db)
	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.NewCartRepository().RemoveByProduct(ctx, product.ID); err != nil {
			return err
		}

		return f.NewProductRepository().Delete(ctx, product.ID)
	})
	require.NoError(t, err)

	_, err = NewProductRepository(db).FindByID(ctx, product.ID)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)

	exists, err := cartRepo.Exists(ctx, buyer.ID, product.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	items, err := cartRepo.ListItems(ctx, buyer.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	categories := seedCategories(t, db)
	seller := seedUser(t, db, "seller")
	buyer := seedUser(t, db, "buyer")
	product := seedProduct(t, db, "Laptop", 450, categories[0].ID, seller.ID)
	cartRepo := NewCartRepository(db)
	ctx := context.Background()

	require.NoError(t, cartRepo.Add(ctx, buyer.ID, product.ID))

	tm := NewTransactionManager(db)
	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.NewCartRepository().RemoveByProduct(ctx, product.ID); err != nil {
			return err
		}

		// Deleting a missing product fails the transaction.
		return f.NewProductRepository().Delete(ctx, 9999)
	})
	require.Error(t, err)

	// The cart entry survived the rollback.
	exists, err := cartRepo.Exists(ctx, buyer.ID, product.ID)
	require.NoError(t, err)
	assert.True(t, exists)
}
