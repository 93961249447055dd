package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/tjcichra/tira-backend/internal/domain/category"
	"github.com/tjcichra/tira-backend/internal/infrastructure/persistence/mappers"
	"github.com/tjcichra/tira-backend/internal/infrastructure/persistence/models"
	"github.com/tjcichra/tira-backend/internal/shared/db"
	"github.com/tjcichra/tira-backend/internal/shared/errors"
)

type CategoryRepository struct {
	db     *gorm.DB
	mapper mappers.CategoryMapper
}

func NewCategoryRepository(database *gorm.DB) category.Repository {
	return &CategoryRepository{
		db:     database,
		mapper: mappers.NewCategoryMapper(),
	}
}

func (r *CategoryRepository) Create(ctx context.Context, c *category.Category) error {
	model := r.mapper.ToModel(c)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	c.ID = model.ID
	return nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*category.Category, error) {
	var model models.CategoryModel
	err := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("category not found")
		}
		return nil, fmt.Errorf("failed to get category by ID: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *CategoryRepository) List(ctx context.Context, archived *bool) ([]*category.Category, error) {
	filterArchived := false
	if archived != nil {
		filterArchived = *archived
	}

	var categoryModels []models.CategoryModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("archived = ?", filterArchived).
		Order("id").
		Find(&categoryModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	categories := make([]*category.Category, len(categoryModels))
	for i := range categoryModels {
		categories[i] = r.mapper.ToDomain(&categoryModels[i])
	}
	return categories, nil
}

func (r *CategoryRepository) Archive(ctx context.Context, id int64) (int64, error) {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.CategoryModel{}).
		Where("id = ? AND archived = ?", id, false).
		Update("archived", true)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to archive category: %w", result.Error)
	}
	return result.RowsAffected, nil
}
