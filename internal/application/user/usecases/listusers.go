package usecases

import (
	"context"

	"github.com/tjcichra/tira-backend/internal/domain/user"
	"github.com/tjcichra/tira-backend/internal/shared/logger"
)

type ListUsersCommand struct {
	// Archived filters by archive state; nil means non-archived only.
	Archived *bool
}

type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, cmd ListUsersCommand) ([]*user.User, error) {
	return uc.userRepo.List(ctx, cmd.Archived)
}
