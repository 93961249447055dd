package usecases

import (
	"context"

	"github.com/tjcichra/tira-backend/internal/domain/ticket"
	"github.com/tjcichra/tira-backend/internal/domain/user"
	"github.com/tjcichra/tira-backend/internal/shared/logger"
)

type ListTicketsCommand struct {
	ReporterID *int64
	Open       *bool
}

type TicketWithReporter struct {
	Ticket   *ticket.Ticket
	Reporter *user.User
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	userRepo   user.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.Repository, userRepo user.Repository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, cmd ListTicketsCommand) ([]TicketWithReporter, error) {
	tickets, err := uc.ticketRepo.List(ctx, ticket.Filter{ReporterID: cmd.ReporterID, Open: cmd.Open})
	if err != nil {
		return nil, err
	}

	// Reporter profiles repeat across tickets; fetch each one once.
	reporters := make(map[int64]*user.User)
	result := make([]TicketWithReporter, 0, len(tickets))
	for _, t := range tickets {
		reporter, ok := reporters[t.ReporterID]
		if !ok {
			reporter, err = uc.userRepo.GetByID(ctx, t.ReporterID)
			if err != nil {
				uc.logger.Errorw("failed to load ticket reporter", "error", err, "ticket_id", t.ID)
				return nil, err
			}
			reporters[t.ReporterID] = reporter
		}
		result = append(result, TicketWithReporter{Ticket: t, Reporter: reporter})
	}

	return result, nil
}
