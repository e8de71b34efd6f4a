package impl

import (
	"context"
	"log/slog"

	deliverycontext "marketplace/internal/delivery/context"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for cartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo    repository.CartRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo:    params.CartRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ViewCart returns the cart items with the summed total price.
func (srv *cartService) ViewCart(ctx context.Context, userID uint) (*usecase.CartOutput, error) {
	items, err := srv.cartRepo.ListItems(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cart items")
	}

	total := 0.0
	for _, item := range items {
		total += item.Price
	}

	return &usecase.CartOutput{Items: items, TotalPrice: total}, nil
}

// AddToCart puts a product in the user's cart and returns the new count.
// Re-adding a present product, or adding one's own listing, changes nothing.
func (srv *cartService) AddToCart(ctx context.Context, userID uint, productID uint) (int64, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repository.ErrProductNotFound) {
		return 0, domainerrors.ErrProductNotFound
	}
	if err != nil {
		return 0, errors.Wrap(err, "failed to find product")
	}

	if !product.IsSoldBy(userID) {
		if err := srv.cartRepo.Add(ctx, userID, productID); err != nil {
			return 0, errors.Wrap(err, "failed to add cart entry")
		}
		srv.log(ctx).Debug("Cart entry added",
			slog.Any("userID", userID),
			slog.Any("productID", productID))
	}

	return srv.count(ctx, userID)
}

// RemoveFromCart removes a product from the cart and returns the new count.
func (srv *cartService) RemoveFromCart(ctx context.Context, userID uint, productID uint) (int64, error) {
	present, err := srv.cartRepo.Exists(ctx, userID, productID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to check cart entry")
	}
	if !present {
		return 0, domainerrors.ErrCartItemNotFound
	}

	if err := srv.cartRepo.Remove(ctx, userID, productID); err != nil {
		return 0, errors.Wrap(err, "failed to remove cart entry")
	}

	srv.log(ctx).Debug("Cart entry removed",
		slog.Any("userID", userID),
		slog.Any("productID", productID))

	return srv.count(ctx, userID)
}

// Count returns the number of items in the user's cart.
func (srv *cartService) Count(ctx context.Context, userID uint) (int64, error) {
	return srv.count(ctx, userID)
}

func (srv *cartService) count(ctx context.Context, userID uint) (int64, error) {
	count, err := srv.cartRepo.Count(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count cart items")
	}

	return count, nil
}
