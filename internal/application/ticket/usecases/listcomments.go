package usecases

import (
	"context"

	"github.com/tjcichra/tira-backend/internal/domain/ticket"
	"github.com/tjcichra/tira-backend/internal/domain/user"
	"github.com/tjcichra/tira-backend/internal/shared/logger"
)

type CommentWithCommenter struct {
	Comment   *ticket.Comment
	Commenter *user.User
}

type ListCommentsUseCase struct {
	commentRepo ticket.CommentRepository
	userRepo    user.Repository
	logger      logger.Interface
}

func NewListCommentsUseCase(commentRepo ticket.CommentRepository, userRepo user.Repository, logger logger.Interface) *ListCommentsUseCase {
	return &ListCommentsUseCase{
		commentRepo: commentRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

func (uc *ListCommentsUseCase) Execute(ctx context.Context, ticketID int64) ([]CommentWithCommenter, error) {
	comments, err := uc.commentRepo.ListByTicketID(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	commenters := make(map[int64]*user.User)
	result := make([]CommentWithCommenter, 0, len(comments))
	for _, c := range comments {
		commenter, ok := commenters[c.CommenterID]
		if !ok {
			commenter, err = uc.userRepo.GetByID(ctx, c.CommenterID)
			if err != nil {
				uc.logger.Errorw("failed to load commenter", "error", err, "comment_id", c.ID)
				return nil, err
			}
			commenters[c.CommenterID] = commenter
		}
		result = append(result, CommentWithCommenter{Comment: c, Commenter: commenter})
	}

	return result, nil
}
