package usecases

import (
	"context"

	"github.com/tjcichra/tira-backend/internal/domain/ticket"
	"github.com/tjcichra/tira-backend/internal/infrastructure/content"
	"github.com/tjcichra/tira-backend/internal/shared/errors"
	"github.com/tjcichra/tira-backend/internal/shared/logger"
)

type UpdateCommentCommand struct {
	CommentID int64
	Content   string
}

type UpdateCommentUseCase struct {
	commentRepo ticket.CommentRepository
	content     content.Service
	logger      logger.Interface
}

func NewUpdateCommentUseCase(
	commentRepo ticket.CommentRepository,
	contentService content.Service,
	logger logger.Interface,
) *UpdateCommentUseCase {
	return &UpdateCommentUseCase{
		commentRepo: commentRepo,
		content:     contentService,
		logger:      logger,
	}
}

func (uc *UpdateCommentUseCase) Execute(ctx context.Context, cmd UpdateCommentCommand) error {
	if uc.content.IsBlank(cmd.Content) {
		return errors.NewValidationError("comment cannot be blank")
	}

	rows, err := uc.commentRepo.UpdateContent(ctx, cmd.CommentID, cmd.Content)
	if err != nil {
		uc.logger.Errorw("failed to update comment", "error", err, "comment_id", cmd.CommentID)
		return err
	}
	if err := errors.CheckExactlyOneRow(rows, "update comment"); err != nil {
		return err
	}

	uc.logger.Infow("comment updated", "comment_id", cmd.CommentID)
	return nil
}
