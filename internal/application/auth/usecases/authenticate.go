package usecases

import (
	"context"
	"time"

	"github.com/tjcichra/tira-backend/internal/domain/user"
	"github.com/tjcichra/tira-backend/internal/shared/errors"
	"github.com/tjcichra/tira-backend/internal/shared/logger"
)

type AuthenticateCommand struct {
	Token string
}

type AuthenticateResult struct {
	UserID int64
	Token  string
}

// AuthenticateUseCase resolves a session token to its user. Expired
// sessions are deleted on sight so the store does not accumulate them.
type AuthenticateUseCase struct {
	sessionRepo user.SessionRepository
	logger      logger.Interface
	now         func() time.Time
}

func NewAuthenticateUseCase(sessionRepo user.SessionRepository, logger logger.Interface) *AuthenticateUseCase {
	return &AuthenticateUseCase{
		sessionRepo: sessionRepo,
		logger:      logger,
		now:         time.Now,
	}
}

func (uc *AuthenticateUseCase) Execute(ctx context.Context, cmd AuthenticateCommand) (*AuthenticateResult, error) {
	if cmd.Token == "" {
		return nil, errors.NewUnauthenticatedError("missing session token")
	}

	session, err := uc.sessionRepo.GetByToken(ctx, cmd.Token)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NewUnauthenticatedError("invalid session token")
		}
		uc.logger.Errorw("failed to look up session", "error", err)
		return nil, err
	}

	if session.IsExpired(uc.now().UTC()) {
		// Cleanup is best effort; the request is rejected either way,
		// and a token that lost the delete race still authenticates to
		// nothing on retry.
		if _, err := uc.sessionRepo.DeleteByToken(ctx, cmd.Token); err != nil {
			uc.logger.Warnw("failed to delete expired session", "error", err, "user_id", session.UserID)
		}
		return nil, errors.NewSessionExpiredError("session expired")
	}

	return &AuthenticateResult{UserID: session.UserID, Token: session.Token}, nil
}
