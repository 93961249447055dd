package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tjcichra/tira-backend/internal/application/user/usecases"
	"github.com/tjcichra/tira-backend/internal/domain/user"
	"github.com/tjcichra/tira-backend/internal/shared/logger"
	"github.com/tjcichra/tira-backend/internal/shared/utils"
)

type UserHandler struct {
	createUseCase          *usecases.CreateUserUseCase
	getUseCase             *usecases.GetUserUseCase
	listUseCase            *usecases.ListUsersUseCase
	archiveUseCase         *usecases.ArchiveUserUseCase
	listAssignmentsUseCase *usecases.ListUserAssignmentsUseCase
	logger                 logger.Interface
}

func NewUserHandler(
	createUseCase *usecases.CreateUserUseCase,
	getUseCase *usecases.GetUserUseCase,
	listUseCase *usecases.ListUsersUseCase,
	archiveUseCase *usecases.ArchiveUserUseCase,
	listAssignmentsUseCase *usecases.ListUserAssignmentsUseCase,
	logger logger.Interface,
) *UserHandler {
	return &UserHandler{
		createUseCase:          createUseCase,
		getUseCase:             getUseCase,
		listUseCase:            listUseCase,
		archiveUseCase:         archiveUseCase,
		listAssignmentsUseCase: listAssignmentsUseCase,
		logger:                 logger,
	}
}

type CreateUserRequest struct {
	Username          string  `json:"username" binding:"required"`
	Password          string  `json:"password" binding:"required"`
	EmailAddress      *string `json:"email_address"`
	FirstName         *string `json:"first_name"`
	LastName          *string `json:"last_name"`
	ProfilePictureURL *string `json:"profile_picture_url"`
}

// UserResponse never carries the password hash.
type UserResponse struct {
	ID                int64     `json:"id"`
	Username          string    `json:"username"`
	EmailAddress      *string   `json:"email_address"`
	FirstName         *string   `json:"first_name"`
	LastName          *string   `json:"last_name"`
	ProfilePictureURL *string   `json:"profile_picture_url"`
	Created           time.Time `json:"created"`
	Archived          bool      `json:"archived"`
}

func toUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:                u.ID,
		Username:          u.Username,
		EmailAddress:      u.EmailAddress,
		FirstName:         u.FirstName,
		LastName:          u.LastName,
		ProfilePictureURL: u.ProfilePictureURL,
		Created:           u.CreatedAt,
		Archived:          u.Archived,
	}
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, err.Error())
		return
	}

	created, err := h.createUseCase.Execute(c.Request.Context(), usecases.CreateUserCommand{
		Username:          req.Username,
		Password:          req.Password,
		EmailAddress:      req.EmailAddress,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		ProfilePictureURL: req.ProfilePictureURL,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toUserResponse(created), "user created successfully")
}

func (h *UserHandler) GetUser(c *gin.Context) {
	userID, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	u, err := h.getUseCase.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, toUserResponse(u))
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	archived, err := utils.ParseOptionalBoolQuery(c, "archived")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	users, err := h.listUseCase.Execute(c.Request.Context(), usecases.ListUsersCommand{Archived: archived})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	responses := make([]UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, toUserResponse(u))
	}
	utils.OKResponse(c, responses)
}

func (h *UserHandler) ArchiveUser(c *gin.Context) {
	userID, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.archiveUseCase.Execute(c.Request.Context(), userID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, nil, "user archived successfully")
}

func (h *UserHandler) ListUserAssignments(c *gin.Context) {
	userID, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	assignments, err := h.listAssignmentsUseCase.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	responses := make([]AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		responses = append(responses, toAssignmentResponse(a))
	}
	utils.OKResponse(c, responses)
}
