package usecases

import (
	"context"

	"github.com/tjcichra/tira-backend/internal/domain/ticket"
	vo "github.com/tjcichra/tira-backend/internal/domain/ticket/valueobjects"
	"github.com/tjcichra/tira-backend/internal/shared/errors"
	"github.com/tjcichra/tira-backend/internal/shared/logger"
)

// UpdateTicketCommand is a patch: nil fields are left unchanged.
type UpdateTicketCommand struct {
	TicketID    int64
	Subject     *string
	Description *string
	CategoryID  *int64
	Priority    *string
	Status      *string
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewUpdateTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*ticket.Ticket, error) {
	// Validate the whole patch before touching the row.
	if cmd.Subject != nil && *cmd.Subject == "" {
		return nil, errors.NewValidationError("subject cannot be empty")
	}
	if cmd.Priority != nil && !vo.Priority(*cmd.Priority).IsValid() {
		return nil, errors.NewValidationError("invalid priority", *cmd.Priority)
	}
	if cmd.Status != nil && !vo.Status(*cmd.Status).IsValid() {
		return nil, errors.NewValidationError("invalid status", *cmd.Status)
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if cmd.Subject != nil {
		t.Subject = *cmd.Subject
	}
	if cmd.Description != nil {
		t.Description = cmd.Description
	}
	if cmd.CategoryID != nil {
		t.CategoryID = cmd.CategoryID
	}
	if cmd.Priority != nil {
		t.Priority = vo.Priority(*cmd.Priority)
	}
	if cmd.Status != nil {
		t.Status = vo.Status(*cmd.Status)
	}

	rows, err := uc.ticketRepo.Update(ctx, t)
	if err != nil {
		uc.logger.Errorw("failed to update ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, err
	}
	if err := errors.CheckExactlyOneRow(rows, "update ticket"); err != nil {
		return nil, err
	}

	uc.logger.Infow("ticket updated", "ticket_id", cmd.TicketID)
	return t, nil
}
