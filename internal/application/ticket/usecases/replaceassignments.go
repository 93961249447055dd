package usecases

import (
	"context"

	"github.com/tjcichra/tira-backend/internal/domain/ticket"
	"github.com/tjcichra/tira-backend/internal/shared/errors"
	"github.com/tjcichra/tira-backend/internal/shared/logger"
)

type ReplaceAssignmentsCommand struct {
	TicketID    int64
	AssigneeIDs []int64
	AssignerID  int64
}

// ReplaceAssignmentsUseCase swaps the full assignee set of a ticket.
// The delete and the inserts share one transaction so a failure cannot
// leave the ticket half-assigned.
type ReplaceAssignmentsUseCase struct {
	assignmentRepo ticket.AssignmentRepository
	ticketRepo     ticket.Repository
	txManager      TxManager
	logger         logger.Interface
}

func NewReplaceAssignmentsUseCase(
	assignmentRepo ticket.AssignmentRepository,
	ticketRepo ticket.Repository,
	txManager TxManager,
	logger logger.Interface,
) *ReplaceAssignmentsUseCase {
	return &ReplaceAssignmentsUseCase{
		assignmentRepo: assignmentRepo,
		ticketRepo:     ticketRepo,
		txManager:      txManager,
		logger:         logger,
	}
}

func (uc *ReplaceAssignmentsUseCase) Execute(ctx context.Context, cmd ReplaceAssignmentsCommand) error {
	if _, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID); err != nil {
		return err
	}

	assignments := make([]*ticket.Assignment, 0, len(cmd.AssigneeIDs))
	for _, assigneeID := range cmd.AssigneeIDs {
		a, err := ticket.NewAssignment(cmd.TicketID, assigneeID, cmd.AssignerID)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		assignments = append(assignments, a)
	}

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if _, err := uc.assignmentRepo.DeleteByTicketID(txCtx, cmd.TicketID); err != nil {
			return err
		}
		return uc.assignmentRepo.CreateBatch(txCtx, assignments)
	})
	if err != nil {
		uc.logger.Errorw("failed to replace assignments", "error", err, "ticket_id", cmd.TicketID)
		return err
	}

	uc.logger.Infow("assignments replaced",
		"ticket_id", cmd.TicketID,
		"assignees", len(cmd.AssigneeIDs))
	return nil
}
