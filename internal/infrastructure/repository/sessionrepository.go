package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/tjcichra/tira-backend/internal/domain/user"
	"github.com/tjcichra/tira-backend/internal/infrastructure/persistence/mappers"
	"github.com/tjcichra/tira-backend/internal/infrastructure/persistence/models"
	"github.com/tjcichra/tira-backend/internal/shared/db"
	"github.com/tjcichra/tira-backend/internal/shared/errors"
)

type SessionRepository struct {
	db     *gorm.DB
	mapper mappers.SessionMapper
}

func NewSessionRepository(database *gorm.DB) user.SessionRepository {
	return &SessionRepository{
		db:     database,
		mapper: mappers.NewSessionMapper(),
	}
}

func (r *SessionRepository) Create(ctx context.Context, s *user.Session) error {
	model := r.mapper.ToModel(s)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// GetByToken returns the session for a token without judging expiry;
// the authentication gate owns the expiry decision and its cleanup.
func (r *SessionRepository) GetByToken(ctx context.Context, token string) (*user.Session, error) {
	var model models.SessionModel
	err := db.GetTxFromContext(ctx, r.db).Where("token = ?", token).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("session not found")
		}
		return nil, fmt.Errorf("failed to get session by token: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *SessionRepository) DeleteByToken(ctx context.Context, token string) (int64, error) {
	result := db.GetTxFromContext(ctx, r.db).
		Where("token = ?", token).
		Delete(&models.SessionModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete session: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *SessionRepository) DeleteByUserIDAndToken(ctx context.Context, userID int64, token string) (int64, error) {
	result := db.GetTxFromContext(ctx, r.db).
		Where("user_id = ? AND token = ?", userID, token).
		Delete(&models.SessionModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete session: %w", result.Error)
	}
	return result.RowsAffected, nil
}
