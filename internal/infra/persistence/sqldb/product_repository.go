package sqldb

import (
	"context"
	"strings"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// Create persists a new product. Currency and image URL defaults are expected
// to be applied by the caller.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		// Convert storage errors to domain errors
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid category or seller reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required product information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	// Update the entity with generated values
	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// FindByID retrieves a product with its category name resolved.
func (repo *productRepository) FindByID(ctx context.Context, id uint) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Preload("Category").
		First(&productM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// ListAll returns one page of the catalog in stable id order together with
// the pagination metadata.
func (repo *productRepository) ListAll(ctx context.Context, page, perPage int) (*repository.ProductPage, error) {
	newQuery := func() *gorm.DB {
		return repo.db.WithContext(ctx).Model(&model.ProductModel{})
	}

	return repo.paginate(newQuery, page, perPage)
}

// Search filters by case-insensitive substring on title or description and,
// when the category set is non-empty, by category membership.
func (repo *productRepository) Search(ctx context.Context, text string, categoryIDs []uint, page, perPage int) (*repository.ProductPage, error) {
	pattern := "%" + strings.ToLower(text) + "%"
	newQuery := func() *gorm.DB {
		query := repo.db.WithContext(ctx).
			Model(&model.ProductModel{}).
			Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
		if len(categoryIDs) > 0 {
			query = query.Where("category_id IN ?", categoryIDs)
		}

		return query
	}

	return repo.paginate(newQuery, page, perPage)
}

// paginate applies the shared count-then-page pattern: total pages are
// ceil(total/perPage) and an out-of-range page yields an empty list.
// newQuery builds a fresh statement each time so the count cannot leak
// clauses into the page query.
func (repo *productRepository) paginate(newQuery func() *gorm.DB, page, perPage int) (*repository.ProductPage, error) {
	var total int64
	if err := newQuery().Count(&total).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count products")
	}

	pagination := entity.NewPagination(page, perPage, total)

	var productMs []model.ProductModel
	if err := newQuery().
		Preload("Category").
		Order("id").
		Offset(pagination.Offset()).
		Limit(pagination.PerPage).
		Find(&productMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return &repository.ProductPage{
		Products:   toProductDomains(productMs),
		Pagination: pagination,
	}, nil
}

// ListByCategory returns every product of one category, unpaginated.
func (repo *productRepository) ListByCategory(ctx context.Context, categoryID uint) ([]*entity.Product, error) {
	var productMs []model.ProductModel

	if err := repo.db.WithContext(ctx).
		Preload("Category").
		Where("category_id = ?", categoryID).
		Order("id").
		Find(&productMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products by category")
	}

	return toProductDomains(productMs), nil
}

// ListBySeller returns every product owned by a seller, unpaginated.
func (repo *productRepository) ListBySeller(ctx context.Context, sellerID uint) ([]*entity.Product, error) {
	var productMs []model.ProductModel

	if err := repo.db.WithContext(ctx).
		Preload("Category").
		Where("seller_id = ?", sellerID).
		Order("id").
		Find(&productMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products by seller")
	}

	return toProductDomains(productMs), nil
}

// Update applies only the fields set in the update; nil fields leave the
// stored values untouched.
func (repo *productRepository) Update(ctx context.Context, id uint, update repository.ProductUpdate) error {
	fields := map[string]any{}
	if update.Title != nil {
		fields["title"] = *update.Title
	}
	if update.Price != nil {
		fields["price"] = *update.Price
	}
	if update.Description != nil {
		fields["description"] = *update.Description
	}
	if update.CategoryID != nil {
		fields["category_id"] = *update.CategoryID
	}
	if update.ImageURL != nil {
		fields["image_url"] = *update.ImageURL
	}

	if len(fields) == 0 {
		return nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid category reference")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// Delete removes a product row. The cart cascade runs in the same transaction,
// driven by the usecase through the TransactionManager.
func (repo *productRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.ProductModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity,
// denormalizing the category name when the relation was preloaded.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	product := &entity.Product{
		ID:          data.ID,
		Title:       data.Title,
		Price:       data.Price,
		Currency:    data.Currency,
		Description: data.Description,
		ImageURL:    data.ImageURL,
		CategoryID:  data.CategoryID,
		SellerID:    data.SellerID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
	if data.Category != nil {
		product.CategoryName = data.Category.Name
	}

	return product
}

func toProductDomains(data []model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(data))
	for i := range data {
		products = append(products, toProductDomain(&data[i]))
	}

	return products
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel for persistence.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:          data.ID,
		Title:       data.Title,
		Price:       data.Price,
		Currency:    data.Currency,
		Description: data.Description,
		ImageURL:    data.ImageURL,
		CategoryID:  data.CategoryID,
		SellerID:    data.SellerID,
	}
}
