package usecases

import (
	"context"

	"github.com/tjcichra/tira-backend/internal/domain/ticket"
	"github.com/tjcichra/tira-backend/internal/shared/logger"
)

// ListUserAssignmentsUseCase returns every assignment where the user
// is the assignee.
type ListUserAssignmentsUseCase struct {
	assignmentRepo ticket.AssignmentRepository
	logger         logger.Interface
}

func NewListUserAssignmentsUseCase(assignmentRepo ticket.AssignmentRepository, logger logger.Interface) *ListUserAssignmentsUseCase {
	return &ListUserAssignmentsUseCase{
		assignmentRepo: assignmentRepo,
		logger:         logger,
	}
}

func (uc *ListUserAssignmentsUseCase) Execute(ctx context.Context, userID int64) ([]*ticket.Assignment, error) {
	return uc.assignmentRepo.List(ctx, ticket.AssignmentFilter{AssigneeID: &userID})
}
