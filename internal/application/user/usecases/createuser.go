package usecases

import (
	"context"

	"github.com/tjcichra/tira-backend/internal/domain/user"
	"github.com/tjcichra/tira-backend/internal/shared/errors"
	"github.com/tjcichra/tira-backend/internal/shared/logger"
)

// PasswordHasher produces the stored digest for a plaintext password.
type PasswordHasher interface {
	Hash(password string) string
}

type CreateUserCommand struct {
	Username          string
	Password          string
	EmailAddress      *string
	FirstName         *string
	LastName          *string
	ProfilePictureURL *string
}

type CreateUserUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewCreateUserUseCase(userRepo user.Repository, hasher PasswordHasher, logger logger.Interface) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (*user.User, error) {
	if cmd.Password == "" {
		return nil, errors.NewValidationError("password is required")
	}

	newUser, err := user.NewUser(
		cmd.Username,
		uc.hasher.Hash(cmd.Password),
		cmd.EmailAddress,
		cmd.FirstName,
		cmd.LastName,
		cmd.ProfilePictureURL,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		uc.logger.Errorw("failed to create user", "error", err, "username", cmd.Username)
		return nil, err
	}

	uc.logger.Infow("user created", "user_id", newUser.ID, "username", newUser.Username)
	return newUser, nil
}
