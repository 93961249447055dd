package usecases

import (
	"context"

	"github.com/tjcichra/tira-backend/internal/domain/ticket"
	"github.com/tjcichra/tira-backend/internal/shared/logger"
)

type ListAssignmentsCommand struct {
	AssigneeID *int64
	TicketID   *int64
}

type ListAssignmentsUseCase struct {
	assignmentRepo ticket.AssignmentRepository
	logger         logger.Interface
}

func NewListAssignmentsUseCase(assignmentRepo ticket.AssignmentRepository, logger logger.Interface) *ListAssignmentsUseCase {
	return &ListAssignmentsUseCase{
		assignmentRepo: assignmentRepo,
		logger:         logger,
	}
}

func (uc *ListAssignmentsUseCase) Execute(ctx context.Context, cmd ListAssignmentsCommand) ([]*ticket.Assignment, error) {
	return uc.assignmentRepo.List(ctx, ticket.AssignmentFilter{
		AssigneeID: cmd.AssigneeID,
		TicketID:   cmd.TicketID,
	})
}
