package usecases

import (
	"context"

	"github.com/tjcichra/tira-backend/internal/domain/ticket"
	"github.com/tjcichra/tira-backend/internal/domain/user"
	"github.com/tjcichra/tira-backend/internal/shared/errors"
	"github.com/tjcichra/tira-backend/internal/shared/logger"
)

type AssignTicketCommand struct {
	TicketID   int64
	AssigneeID int64
	AssignerID int64
}

type AssignTicketUseCase struct {
	assignmentRepo ticket.AssignmentRepository
	ticketRepo     ticket.Repository
	userRepo       user.Repository
	notifier       Notifier
	logger         logger.Interface
}

func NewAssignTicketUseCase(
	assignmentRepo ticket.AssignmentRepository,
	ticketRepo ticket.Repository,
	userRepo user.Repository,
	notifier Notifier,
	logger logger.Interface,
) *AssignTicketUseCase {
	return &AssignTicketUseCase{
		assignmentRepo: assignmentRepo,
		ticketRepo:     ticketRepo,
		userRepo:       userRepo,
		notifier:       notifier,
		logger:         logger,
	}
}

func (uc *AssignTicketUseCase) Execute(ctx context.Context, cmd AssignTicketCommand) (*ticket.Assignment, error) {
	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	assigner, err := uc.userRepo.GetByID(ctx, cmd.AssignerID)
	if err != nil {
		return nil, err
	}

	assignment, err := ticket.NewAssignment(cmd.TicketID, cmd.AssigneeID, cmd.AssignerID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.assignmentRepo.Create(ctx, assignment); err != nil {
		uc.logger.Errorw("failed to create assignment", "error", err, "ticket_id", cmd.TicketID)
		return nil, err
	}

	uc.logger.Infow("assignment created",
		"assignment_id", assignment.ID,
		"ticket_id", cmd.TicketID,
		"assignee_id", cmd.AssigneeID)

	uc.notifier.Assigned(ctx, assigner, cmd.AssigneeID, t)

	return assignment, nil
}
