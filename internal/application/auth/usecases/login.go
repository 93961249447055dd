package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tjcichra/tira-backend/internal/domain/user"
	"github.com/tjcichra/tira-backend/internal/shared/config"
	"github.com/tjcichra/tira-backend/internal/shared/errors"
	"github.com/tjcichra/tira-backend/internal/shared/logger"
)

// PasswordHasher produces the stored digest for a plaintext password.
type PasswordHasher interface {
	Hash(password string) string
}

type LoginCommand struct {
	Username   string
	Password   string
	RememberMe bool
}

type LoginResult struct {
	User    *user.User
	Session *user.Session
}

type LoginUseCase struct {
	userRepo      user.Repository
	sessionRepo   user.SessionRepository
	hasher        PasswordHasher
	sessionConfig config.SessionConfig
	logger        logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	sessionRepo user.SessionRepository,
	hasher PasswordHasher,
	sessionConfig config.SessionConfig,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:      userRepo,
		sessionRepo:   sessionRepo,
		hasher:        hasher,
		sessionConfig: sessionConfig,
		logger:        logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if cmd.Username == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("username and password are required")
	}

	hash := uc.hasher.Hash(cmd.Password)

	// Credentials are checked as a single lookup; a miss on either
	// field yields the same generic error.
	existingUser, err := uc.userRepo.GetByUsernameAndHash(ctx, cmd.Username, hash)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NewInvalidCredentialsError("invalid username or password")
		}
		uc.logger.Errorw("failed to look up user credentials", "error", err, "username", cmd.Username)
		return nil, err
	}

	// Remember-me sessions never expire.
	var expiresAt *time.Time
	if !cmd.RememberMe {
		t := time.Now().UTC().Add(time.Duration(uc.sessionConfig.SessionLengthMinutes) * time.Minute)
		expiresAt = &t
	}

	session, err := user.NewSession(uuid.NewString(), existingUser.ID, expiresAt)
	if err != nil {
		return nil, err
	}

	if err := uc.sessionRepo.Create(ctx, session); err != nil {
		uc.logger.Errorw("failed to create session", "error", err, "user_id", existingUser.ID)
		return nil, err
	}

	uc.logger.Infow("user logged in",
		"user_id", existingUser.ID,
		"remember_me", cmd.RememberMe)

	return &LoginResult{User: existingUser, Session: session}, nil
}
