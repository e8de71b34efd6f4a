package impl

import (
	"context"
	"testing"

	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_RegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	out, err := env.users.Register(ctx, &usecase.RegisterInput{
		Username: "alice",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.NotZero(t, out.UserID)
	assert.Equal(t, "alice", out.Username)

	login, err := env.users.Login(ctx, &usecase.LoginInput{
		Username: "alice",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, out.UserID, login.UserInfo.UserID)
	assert.Equal(t, "alice", login.UserInfo.Username)
	assert.Zero(t, login.UserInfo.CartCount)

	info, err := env.tokens.Validate(login.Token)
	require.NoError(t, err)
	assert.Equal(t, out.UserID, info.UserID)
}

func TestUserService_RegisterDuplicateUsername(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.register(t, "bob")

	_, err := env.users.Register(ctx, &usecase.RegisterInput{
		Username: "bob",
		Password: "another-password",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrDuplicateUsername.ErrorCode(), appErr.ErrorCode())
}

func TestUserService_LoginFailuresLookAlike(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.register(t, "carol")

	_, wrongPassword := env.users.Login(ctx, &usecase.LoginInput{
		Username: "carol",
		Password: "not-the-password",
	})
	_, unknownUser := env.users.Login(ctx, &usecase.LoginInput{
		Username: "nobody",
		Password: "whatever",
	})

	require.Error(t, wrongPassword)
	require.Error(t, unknownUser)

	// Both failure modes must be indistinguishable to the caller.
	assert.True(t, errors.Is(wrongPassword, domainerrors.ErrInvalidCredentials))
	assert.True(t, errors.Is(unknownUser, domainerrors.ErrInvalidCredentials))
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
}

func TestUserService_LoginCarriesCartCount(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	sellerID := env.register(t, "seller")
	buyerID := env.register(t, "buyer")
	product := env.listProduct(t, sellerID, "Lamp", "12.50")

	_, err := env.cart.AddToCart(ctx, buyerID, product.ID)
	require.NoError(t, err)

	login, err := env.users.Login(ctx, &usecase.LoginInput{
		Username: "buyer",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), login.UserInfo.CartCount)
}
