package usecases

import (
	"context"

	"github.com/tjcichra/tira-backend/internal/domain/category"
	"github.com/tjcichra/tira-backend/internal/shared/errors"
	"github.com/tjcichra/tira-backend/internal/shared/logger"
)

type CreateCategoryCommand struct {
	Name        string
	Description *string
	CreatorID   int64
}

type CreateCategoryUseCase struct {
	categoryRepo category.Repository
	logger       logger.Interface
}

func NewCreateCategoryUseCase(categoryRepo category.Repository, logger logger.Interface) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *CreateCategoryUseCase) Execute(ctx context.Context, cmd CreateCategoryCommand) (*category.Category, error) {
	newCategory, err := category.NewCategory(cmd.Name, cmd.Description, cmd.CreatorID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.categoryRepo.Create(ctx, newCategory); err != nil {
		uc.logger.Errorw("failed to create category", "error", err, "name", cmd.Name)
		return nil, err
	}

	uc.logger.Infow("category created", "category_id", newCategory.ID, "name", newCategory.Name)
	return newCategory, nil
}

type GetCategoryUseCase struct {
	categoryRepo category.Repository
	logger       logger.Interface
}

func NewGetCategoryUseCase(categoryRepo category.Repository, logger logger.Interface) *GetCategoryUseCase {
	return &GetCategoryUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *GetCategoryUseCase) Execute(ctx context.Context, categoryID int64) (*category.Category, error) {
	return uc.categoryRepo.GetByID(ctx, categoryID)
}

type ListCategoriesCommand struct {
	Archived *bool
}

type ListCategoriesUseCase struct {
	categoryRepo category.Repository
	logger       logger.Interface
}

func NewListCategoriesUseCase(categoryRepo category.Repository, logger logger.Interface) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *ListCategoriesUseCase) Execute(ctx context.Context, cmd ListCategoriesCommand) ([]*category.Category, error) {
	return uc.categoryRepo.List(ctx, cmd.Archived)
}

type ArchiveCategoryUseCase struct {
	categoryRepo category.Repository
	logger       logger.Interface
}

func NewArchiveCategoryUseCase(categoryRepo category.Repository, logger logger.Interface) *ArchiveCategoryUseCase {
	return &ArchiveCategoryUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *ArchiveCategoryUseCase) Execute(ctx context.Context, categoryID int64) error {
	rows, err := uc.categoryRepo.Archive(ctx, categoryID)
	if err != nil {
		uc.logger.Errorw("failed to archive category", "error", err, "category_id", categoryID)
		return err
	}
	if err := errors.CheckExactlyOneRow(rows, "archive category"); err != nil {
		return err
	}

	uc.logger.Infow("category archived", "category_id", categoryID)
	return nil
}
