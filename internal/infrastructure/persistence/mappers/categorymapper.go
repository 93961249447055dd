package mappers

import (
	"github.com/tjcichra/tira-backend/internal/domain/category"
	"github.com/tjcichra/tira-backend/internal/infrastructure/persistence/models"
)

// CategoryMapper handles the conversion between Category domain entities and persistence models.
type CategoryMapper interface {
	ToModel(entity *category.Category) *models.CategoryModel
	ToDomain(model *models.CategoryModel) *category.Category
}

type CategoryMapperImpl struct{}

func NewCategoryMapper() CategoryMapper {
	return &CategoryMapperImpl{}
}

func (m *CategoryMapperImpl) ToModel(entity *category.Category) *models.CategoryModel {
	if entity == nil {
		return nil
	}
	return &models.CategoryModel{
		ID:          entity.ID,
		Name:        entity.Name,
		Description: entity.Description,
		CreatorID:   entity.CreatorID,
		CreatedAt:   entity.CreatedAt,
		Archived:    entity.Archived,
	}
}

func (m *CategoryMapperImpl) ToDomain(model *models.CategoryModel) *category.Category {
	if model == nil {
		return nil
	}
	return &category.Category{
		ID:          model.ID,
		Name:        model.Name,
		Description: model.Description,
		CreatorID:   model.CreatorID,
		CreatedAt:   model.CreatedAt,
		Archived:    model.Archived,
	}
}
