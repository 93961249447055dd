package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tjcichra/tira-backend/internal/application/category/usecases"
	"github.com/tjcichra/tira-backend/internal/domain/category"
	"github.com/tjcichra/tira-backend/internal/interfaces/http/middleware"
	"github.com/tjcichra/tira-backend/internal/shared/logger"
	"github.com/tjcichra/tira-backend/internal/shared/utils"
)

type CategoryHandler struct {
	createUseCase  *usecases.CreateCategoryUseCase
	getUseCase     *usecases.GetCategoryUseCase
	listUseCase    *usecases.ListCategoriesUseCase
	archiveUseCase *usecases.ArchiveCategoryUseCase
	logger         logger.Interface
}

func NewCategoryHandler(
	createUseCase *usecases.CreateCategoryUseCase,
	getUseCase *usecases.GetCategoryUseCase,
	listUseCase *usecases.ListCategoriesUseCase,
	archiveUseCase *usecases.ArchiveCategoryUseCase,
	logger logger.Interface,
) *CategoryHandler {
	return &CategoryHandler{
		createUseCase:  createUseCase,
		getUseCase:     getUseCase,
		listUseCase:    listUseCase,
		archiveUseCase: archiveUseCase,
		logger:         logger,
	}
}

type CreateCategoryRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

type CategoryResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatorID   int64     `json:"creator_id"`
	Created     time.Time `json:"created"`
	Archived    bool      `json:"archived"`
}

func toCategoryResponse(cat *category.Category) CategoryResponse {
	return CategoryResponse{
		ID:          cat.ID,
		Name:        cat.Name,
		Description: cat.Description,
		CreatorID:   cat.CreatorID,
		Created:     cat.CreatedAt,
		Archived:    cat.Archived,
	}
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, err.Error())
		return
	}

	created, err := h.createUseCase.Execute(c.Request.Context(), usecases.CreateCategoryCommand{
		Name:        req.Name,
		Description: req.Description,
		CreatorID:   middleware.CurrentUserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toCategoryResponse(created), "category created successfully")
}

func (h *CategoryHandler) GetCategory(c *gin.Context) {
	categoryID, err := utils.ParseIDParam(c, "id", "category")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cat, err := h.getUseCase.Execute(c.Request.Context(), categoryID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, toCategoryResponse(cat))
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	archived, err := utils.ParseOptionalBoolQuery(c, "archived")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	categories, err := h.listUseCase.Execute(c.Request.Context(), usecases.ListCategoriesCommand{Archived: archived})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	responses := make([]CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		responses = append(responses, toCategoryResponse(cat))
	}
	utils.OKResponse(c, responses)
}

func (h *CategoryHandler) ArchiveCategory(c *gin.Context) {
	categoryID, err := utils.ParseIDParam(c, "id", "category")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.archiveUseCase.Execute(c.Request.Context(), categoryID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, nil, "category archived successfully")
}
