package impl

import (
	"context"
	"log/slog"
	"math"
	"strconv"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// maxRecommended caps the number of same-category recommendations shown on
// a product page.
const maxRecommended = 4

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	txManager    repository.TransactionManager
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	cartRepo     repository.CartRepository
	imageStore   service.ImageStore
	homePageSize int
	listPageSize int
	logger       *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository
	CartRepo     repository.CartRepository
	ImageStore   service.ImageStore
	Config       *config.Config
	Logger       *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		txManager:    params.TxManager,
		productRepo:  params.ProductRepo,
		categoryRepo: params.CategoryRepo,
		cartRepo:     params.CartRepo,
		imageStore:   params.ImageStore,
		homePageSize: params.Config.Catalog.HomePageSize,
		listPageSize: params.Config.Catalog.ListPageSize,
		logger:       params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Home returns the first catalog page sized for the home view.
func (srv *catalogService) Home(ctx context.Context) (*usecase.ProductListOutput, error) {
	page, err := srv.productRepo.ListAll(ctx, 1, srv.homePageSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products for home page")
	}

	return &usecase.ProductListOutput{Products: page.Products, Pagination: &page.Pagination}, nil
}

// ListProducts returns one page of the full catalog.
func (srv *catalogService) ListProducts(ctx context.Context, page int) (*usecase.ProductListOutput, error) {
	result, err := srv.productRepo.ListAll(ctx, page, srv.listPageSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return &usecase.ProductListOutput{Products: result.Products, Pagination: &result.Pagination}, nil
}

// Search returns one page of matching products. Empty input falls back to
// the full catalog.
func (srv *catalogService) Search(ctx context.Context, input *usecase.SearchInput) (*usecase.ProductListOutput, error) {
	srv.log(ctx).Debug("Searching products",
		slog.String("text", input.Text),
		slog.Int("categories", len(input.CategoryIDs)),
		slog.Int("page", input.Page))

	result, err := srv.productRepo.Search(ctx, input.Text, input.CategoryIDs, input.Page, srv.listPageSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search products")
	}

	return &usecase.ProductListOutput{Products: result.Products, Pagination: &result.Pagination}, nil
}

// ViewProduct returns one product plus recommendations from its category.
// The product itself is never recommended.
func (srv *catalogService) ViewProduct(ctx context.Context, productID uint, viewer entity.UserInfo) (*usecase.ProductDetailOutput, error) {
	product, err := srv.findProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	sameCategory, err := srv.productRepo.ListByCategory(ctx, product.CategoryID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recommendations")
	}

	recommended := make([]*entity.Product, 0, maxRecommended)
	for _, candidate := range sameCategory {
		if candidate.ID == product.ID {
			continue
		}
		recommended = append(recommended, candidate)
		if len(recommended) == maxRecommended {
			break
		}
	}

	addedToCart := false
	if viewer.IsAuthenticated() {
		addedToCart, err = srv.cartRepo.Exists(ctx, viewer.UserID, product.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to check cart membership")
		}
	}

	return &usecase.ProductDetailOutput{
		Product:     product,
		Recommended: recommended,
		AddedToCart: addedToCart,
	}, nil
}

// CreateProduct validates the listing and persists it. A missing image
// falls back to the default placeholder.
func (srv *catalogService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	srv.log(ctx).Info("Creating product",
		slog.String("title", input.Title),
		slog.Any("sellerID", input.SellerID))

	price, err := parsePrice(input.Price)
	if err != nil {
		return nil, err
	}

	if err := srv.checkCategoryExists(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	imageURL := srv.imageStore.DefaultURL()
	if input.Image != nil {
		imageURL, err = srv.imageStore.Save(input.ImageFilename, input.Image)
		if err != nil {
			return nil, errors.Wrap(err, "failed to store product image")
		}
	}

	product := &entity.Product{
		Title:       input.Title,
		Price:       price,
		Currency:    entity.DefaultCurrency,
		Description: input.Description,
		ImageURL:    imageURL,
		CategoryID:  input.CategoryID,
		SellerID:    input.SellerID,
	}
	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Debug("Product created", slog.Any("productID", product.ID))

	return srv.findProduct(ctx, product.ID)
}

// UpdateProduct applies a partial update after verifying ownership.
func (srv *catalogService) UpdateProduct(ctx context.Context, input *usecase.UpdateProductInput) (*entity.Product, error) {
	product, err := srv.findProduct(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if !product.IsSoldBy(input.RequesterID) {
		return nil, domainerrors.ErrNotProductSeller
	}

	update := repository.ProductUpdate{}
	if input.Title != "" {
		update.Title = &input.Title
	}
	if input.Price != "" {
		price, err := parsePrice(input.Price)
		if err != nil {
			return nil, err
		}
		update.Price = &price
	}
	if input.Description != "" {
		update.Description = &input.Description
	}
	if input.CategoryID != 0 && input.CategoryID != product.CategoryID {
		if err := srv.checkCategoryExists(ctx, input.CategoryID); err != nil {
			return nil, err
		}
		update.CategoryID = &input.CategoryID
	}
	if input.Image != nil {
		imageURL, err := srv.imageStore.Save(input.ImageFilename, input.Image)
		if err != nil {
			return nil, errors.Wrap(err, "failed to store product image")
		}
		update.ImageURL = &imageURL
	}

	if err := srv.productRepo.Update(ctx, input.ProductID, update); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to update product")
	}

	srv.log(ctx).Debug("Product updated", slog.Any("productID", input.ProductID))

	return srv.findProduct(ctx, input.ProductID)
}

// DeleteProduct removes a listing and its cart entries atomically.
func (srv *catalogService) DeleteProduct(ctx context.Context, productID uint, requesterID uint) error {
	product, err := srv.findProduct(ctx, productID)
	if err != nil {
		return err
	}
	if !product.IsSoldBy(requesterID) {
		return domainerrors.ErrNotProductSeller
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewCartRepository().RemoveByProduct(ctx, productID); err != nil {
			return errors.Wrap(err, "failed to remove cart entries")
		}
		if err := repoFactory.NewProductRepository().Delete(ctx, productID); err != nil {
			return errors.Wrap(err, "failed to delete product")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to delete product", slog.Any("productID", productID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute product deletion transaction")
	}

	srv.log(ctx).Info("Product deleted", slog.Any("productID", productID))

	return nil
}

// MyProducts returns every listing owned by the seller.
func (srv *catalogService) MyProducts(ctx context.Context, sellerID uint) ([]*entity.Product, error) {
	products, err := srv.productRepo.ListBySeller(ctx, sellerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list seller products")
	}

	return products, nil
}

// Categories returns all product categories.
func (srv *catalogService) Categories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

func (srv *catalogService) findProduct(ctx context.Context, productID uint) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

func (srv *catalogService) checkCategoryExists(ctx context.Context, categoryID uint) error {
	categories, err := srv.categoryRepo.ListAll(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to list categories")
	}
	for _, category := range categories {
		if category.ID == categoryID {
			return nil
		}
	}

	return domainerrors.ErrCategoryNotFound
}

// parsePrice validates the raw price form value. Prices must be finite and
// non-negative.
func parsePrice(raw string) (float64, error) {
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(price, 0) || math.IsNaN(price) {
		return 0, domainerrors.ErrValidationFailed.WrapMessage("price must be a number")
	}
	if price < 0 {
		return 0, domainerrors.ErrValidationFailed.WrapMessage("price must not be negative")
	}

	return price, nil
}
