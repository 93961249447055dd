package usecases

import (
	"context"

	"github.com/tjcichra/tira-backend/internal/domain/ticket"
	vo "github.com/tjcichra/tira-backend/internal/domain/ticket/valueobjects"
	"github.com/tjcichra/tira-backend/internal/domain/user"
	"github.com/tjcichra/tira-backend/internal/shared/errors"
	"github.com/tjcichra/tira-backend/internal/shared/logger"
)

// Notifier announces ticket activity. Implementations are best effort
// and must never fail the calling workflow.
type Notifier interface {
	TicketCreated(ctx context.Context, creator *user.User, t *ticket.Ticket)
	Assigned(ctx context.Context, assigner *user.User, assigneeID int64, t *ticket.Ticket)
	Commented(ctx context.Context, commenter *user.User, t *ticket.Ticket, c *ticket.Comment)
}

// TxManager runs a function inside a database transaction.
type TxManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type CreateTicketCommand struct {
	Subject     string
	Description *string
	CategoryID  *int64
	Priority    string
	Status      string
	AssigneeIDs []int64
	ReporterID  int64
}

type CreateTicketResult struct {
	Ticket *ticket.Ticket
}

type CreateTicketUseCase struct {
	ticketRepo     ticket.Repository
	assignmentRepo ticket.AssignmentRepository
	userRepo       user.Repository
	txManager      TxManager
	notifier       Notifier
	logger         logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	assignmentRepo ticket.AssignmentRepository,
	userRepo user.Repository,
	txManager TxManager,
	notifier Notifier,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:     ticketRepo,
		assignmentRepo: assignmentRepo,
		userRepo:       userRepo,
		txManager:      txManager,
		notifier:       notifier,
		logger:         logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	// All validation happens before any write.
	newTicket, err := ticket.NewTicket(
		cmd.Subject,
		cmd.Description,
		cmd.CategoryID,
		vo.Priority(cmd.Priority),
		vo.Status(cmd.Status),
		cmd.ReporterID,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	reporter, err := uc.userRepo.GetByID(ctx, cmd.ReporterID)
	if err != nil {
		return nil, err
	}

	// The ticket and its initial assignments land together or not at all.
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Create(txCtx, newTicket); err != nil {
			return err
		}

		if len(cmd.AssigneeIDs) == 0 {
			return nil
		}

		assignments := make([]*ticket.Assignment, 0, len(cmd.AssigneeIDs))
		for _, assigneeID := range cmd.AssigneeIDs {
			a, err := ticket.NewAssignment(newTicket.ID, assigneeID, cmd.ReporterID)
			if err != nil {
				return errors.NewValidationError(err.Error())
			}
			assignments = append(assignments, a)
		}
		return uc.assignmentRepo.CreateBatch(txCtx, assignments)
	})
	if err != nil {
		uc.logger.Errorw("failed to create ticket", "error", err, "reporter_id", cmd.ReporterID)
		return nil, err
	}

	uc.logger.Infow("ticket created",
		"ticket_id", newTicket.ID,
		"reporter_id", cmd.ReporterID,
		"assignees", len(cmd.AssigneeIDs))

	// Notification happens after commit so a delivery problem can
	// never roll back the ticket.
	uc.notifier.TicketCreated(ctx, reporter, newTicket)
	for _, assigneeID := range cmd.AssigneeIDs {
		uc.notifier.Assigned(ctx, reporter, assigneeID, newTicket)
	}

	return &CreateTicketResult{Ticket: newTicket}, nil
}
