package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/tjcichra/tira-backend/internal/domain/ticket"
	"github.com/tjcichra/tira-backend/internal/infrastructure/persistence/mappers"
	"github.com/tjcichra/tira-backend/internal/infrastructure/persistence/models"
	"github.com/tjcichra/tira-backend/internal/shared/db"
)

type CommentRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewCommentRepository(database *gorm.DB) ticket.CommentRepository {
	return &CommentRepository{
		db:     database,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *CommentRepository) Create(ctx context.Context, c *ticket.Comment) error {
	model := r.mapper.CommentToModel(c)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	c.ID = model.ID
	return nil
}

func (r *CommentRepository) ListByTicketID(ctx context.Context, ticketID int64) ([]*ticket.Comment, error) {
	var commentModels []models.CommentModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("ticket_id = ?", ticketID).
		Order("id").
		Find(&commentModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	comments := make([]*ticket.Comment, len(commentModels))
	for i := range commentModels {
		comments[i] = r.mapper.CommentToDomain(&commentModels[i])
	}
	return comments, nil
}

func (r *CommentRepository) UpdateContent(ctx context.Context, commentID int64, content string) (int64, error) {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.CommentModel{}).
		Where("id = ?", commentID).
		Update("content", content)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to update comment: %w", result.Error)
	}
	return result.RowsAffected, nil
}
