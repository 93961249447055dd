package usecases

import (
	"context"

	"github.com/tjcichra/tira-backend/internal/domain/ticket"
	"github.com/tjcichra/tira-backend/internal/domain/user"
	"github.com/tjcichra/tira-backend/internal/infrastructure/content"
	"github.com/tjcichra/tira-backend/internal/shared/errors"
	"github.com/tjcichra/tira-backend/internal/shared/logger"
)

type AddCommentCommand struct {
	TicketID    int64
	CommenterID int64
	Content     string
}

type AddCommentUseCase struct {
	commentRepo ticket.CommentRepository
	ticketRepo  ticket.Repository
	userRepo    user.Repository
	content     content.Service
	notifier    Notifier
	logger      logger.Interface
}

func NewAddCommentUseCase(
	commentRepo ticket.CommentRepository,
	ticketRepo ticket.Repository,
	userRepo user.Repository,
	contentService content.Service,
	notifier Notifier,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		commentRepo: commentRepo,
		ticketRepo:  ticketRepo,
		userRepo:    userRepo,
		content:     contentService,
		notifier:    notifier,
		logger:      logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*ticket.Comment, error) {
	// Markup-only content counts as blank: "<p>   </p>" is rejected.
	if uc.content.IsBlank(cmd.Content) {
		return nil, errors.NewValidationError("comment cannot be blank")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	commenter, err := uc.userRepo.GetByID(ctx, cmd.CommenterID)
	if err != nil {
		return nil, err
	}

	comment, err := ticket.NewComment(cmd.TicketID, cmd.CommenterID, cmd.Content)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.commentRepo.Create(ctx, comment); err != nil {
		uc.logger.Errorw("failed to create comment", "error", err, "ticket_id", cmd.TicketID)
		return nil, err
	}

	uc.logger.Infow("comment created", "comment_id", comment.ID, "ticket_id", cmd.TicketID)

	uc.notifier.Commented(ctx, commenter, t, comment)

	return comment, nil
}
