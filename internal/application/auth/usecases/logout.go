package usecases

import (
	"context"

	"github.com/tjcichra/tira-backend/internal/domain/user"
	"github.com/tjcichra/tira-backend/internal/shared/errors"
	"github.com/tjcichra/tira-backend/internal/shared/logger"
)

type LogoutCommand struct {
	UserID int64
	Token  string
}

type LogoutUseCase struct {
	sessionRepo user.SessionRepository
	logger      logger.Interface
}

func NewLogoutUseCase(sessionRepo user.SessionRepository, logger logger.Interface) *LogoutUseCase {
	return &LogoutUseCase{
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

func (uc *LogoutUseCase) Execute(ctx context.Context, cmd LogoutCommand) error {
	// Scoping the delete to the owning user means a stolen token
	// cannot end someone else's session through this path.
	rows, err := uc.sessionRepo.DeleteByUserIDAndToken(ctx, cmd.UserID, cmd.Token)
	if err != nil {
		uc.logger.Errorw("failed to delete session", "error", err, "user_id", cmd.UserID)
		return err
	}

	if err := errors.CheckExactlyOneRow(rows, "delete session"); err != nil {
		return err
	}

	uc.logger.Infow("user logged out", "user_id", cmd.UserID)
	return nil
}
