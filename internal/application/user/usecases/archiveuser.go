package usecases

import (
	"context"

	"github.com/tjcichra/tira-backend/internal/domain/user"
	"github.com/tjcichra/tira-backend/internal/shared/errors"
	"github.com/tjcichra/tira-backend/internal/shared/logger"
)

// ArchiveUserUseCase soft-deletes a user. Archived users keep their
// history but stop receiving notifications and drop out of listings.
type ArchiveUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewArchiveUserUseCase(userRepo user.Repository, logger logger.Interface) *ArchiveUserUseCase {
	return &ArchiveUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ArchiveUserUseCase) Execute(ctx context.Context, userID int64) error {
	rows, err := uc.userRepo.Archive(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to archive user", "error", err, "user_id", userID)
		return err
	}
	if err := errors.CheckExactlyOneRow(rows, "archive user"); err != nil {
		return err
	}

	uc.logger.Infow("user archived", "user_id", userID)
	return nil
}
