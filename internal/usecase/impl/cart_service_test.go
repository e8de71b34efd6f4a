package impl

import (
	"context"
	"testing"

	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartService_AddViewRemove(t *testing.T) {
	env := newTestEnv(t)
	sellerID := env.register(t, "seller")
	buyerID := env.register(t, "buyer")
	ctx := context.Background()

	lamp := env.listProduct(t, sellerID, "Lamp", "12.50")
	chair := env.listProduct(t, sellerID, "Chair", "30.00")

	count, err := env.cart.AddToCart(ctx, buyerID, lamp.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = env.cart.AddToCart(ctx, buyerID, chair.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	cart, err := env.cart.ViewCart(ctx, buyerID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 2)
	assert.InDelta(t, 42.50, cart.TotalPrice, 0.001)

	count, err = env.cart.RemoveFromCart(ctx, buyerID, lamp.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestCartService_AddTwiceIsNoOp(t *testing.T) {
	env := newTestEnv(t)
	sellerID := env.register(t, "seller")
	buyerID := env.register(t, "buyer")
	ctx := context.Background()

	product := env.listProduct(t, sellerID, "Mug", "4")

	for i := 0; i < 2; i++ {
		count, err := env.cart.AddToCart(ctx, buyerID, product.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	}
}

func TestCartService_OwnListingNotAddable(t *testing.T) {
	env := newTestEnv(t)
	sellerID := env.register(t, "seller")
	ctx := context.Background()

	product := env.listProduct(t, sellerID, "Mine", "9")

	// Sellers cannot cart their own listings; the request succeeds but
	// nothing changes.
	count, err := env.cart.AddToCart(ctx, sellerID, product.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	cart, err := env.cart.ViewCart(ctx, sellerID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestCartService_AddMissingProduct(t *testing.T) {
	env := newTestEnv(t)
	buyerID := env.register(t, "buyer")

	_, err := env.cart.AddToCart(context.Background(), buyerID, 9999)
	requireAppErrorCode(t, err, domainerrors.ErrProductNotFound)
}

func TestCartService_RemoveMissingEntry(t *testing.T) {
	env := newTestEnv(t)
	sellerID := env.register(t, "seller")
	buyerID := env.register(t, "buyer")

	product := env.listProduct(t, sellerID, "Never carted", "1")

	_, err := env.cart.RemoveFromCart(context.Background(), buyerID, product.ID)
	requireAppErrorCode(t, err, domainerrors.ErrCartItemNotFound)
}

func TestCartService_EmptyCart(t *testing.T) {
	env := newTestEnv(t)
	buyerID := env.register(t, "buyer")

	cart, err := env.cart.ViewCart(context.Background(), buyerID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.TotalPrice)
}

func TestMarketplaceFlow(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	sellerID := env.register(t, "flow-seller")
	login, err := env.users.Login(ctx, &usecase.LoginInput{
		Username: "flow-seller",
		Password: "password123",
	})
	require.NoError(t, err)

	product, err := env.catalog.CreateProduct(ctx, &usecase.CreateProductInput{
		Title:      "Bicycle",
		Price:      "150",
		CategoryID: 1,
		SellerID:   login.UserInfo.UserID,
	})
	require.NoError(t, err)
	assert.Equal(t, sellerID, product.SellerID)

	buyerID := env.register(t, "flow-buyer")
	count, err := env.cart.AddToCart(ctx, buyerID, product.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = env.cart.RemoveFromCart(ctx, buyerID, product.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}
