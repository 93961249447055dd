package usecases

import (
	"context"

	"github.com/tjcichra/tira-backend/internal/domain/ticket"
	"github.com/tjcichra/tira-backend/internal/domain/user"
	"github.com/tjcichra/tira-backend/internal/shared/logger"
)

type GetTicketResult struct {
	Ticket   *ticket.Ticket
	Reporter *user.User
}

type GetTicketUseCase struct {
	ticketRepo ticket.Repository
	userRepo   user.Repository
	logger     logger.Interface
}

func NewGetTicketUseCase(ticketRepo ticket.Repository, userRepo user.Repository, logger logger.Interface) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, ticketID int64) (*GetTicketResult, error) {
	t, err := uc.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	reporter, err := uc.userRepo.GetByID(ctx, t.ReporterID)
	if err != nil {
		uc.logger.Errorw("failed to load ticket reporter", "error", err, "ticket_id", ticketID)
		return nil, err
	}

	return &GetTicketResult{Ticket: t, Reporter: reporter}, nil
}
