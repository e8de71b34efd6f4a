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

// categoryRepository implements the repository.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

// ListAll returns all categories in id order.
func (repo *categoryRepository) ListAll(ctx context.Context) ([]*entity.Category, error) {
	var categoryMs []model.CategoryModel

	if err := repo.db.WithContext(ctx).
		Order("id").
		Find(&categoryMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(categoryMs))
	for i := range categoryMs {
		categories = append(categories, toCategoryDomain(&categoryMs[i]))
	}

	return categories, nil
}

// SeedDefaults inserts the fixed category list, skipping names already present.
func (repo *categoryRepository) SeedDefaults(ctx context.Context) error {
	categoryMs := make([]model.CategoryModel, 0, len(entity.SeededCategories))
	for _, name := range entity.SeededCategories {
		categoryMs = append(categoryMs, model.CategoryModel{Name: name})
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&categoryMs).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to seed categories")
	}

	return nil
}

// toCategoryDomain converts a GORM CategoryModel to a domain Category entity.
func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	return &entity.Category{
		ID:   data.ID,
		Name: data.Name,
	}
}
