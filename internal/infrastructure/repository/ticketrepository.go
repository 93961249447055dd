package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/tjcichra/tira-backend/internal/domain/ticket"
	vo "github.com/tjcichra/tira-backend/internal/domain/ticket/valueobjects"
	"github.com/tjcichra/tira-backend/internal/infrastructure/persistence/mappers"
	"github.com/tjcichra/tira-backend/internal/infrastructure/persistence/models"
	"github.com/tjcichra/tira-backend/internal/shared/db"
	"github.com/tjcichra/tira-backend/internal/shared/errors"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(database *gorm.DB) ticket.Repository {
	return &TicketRepository{
		db:     database,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create ticket: %w", err)
	}
	t.ID = model.ID
	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, id int64) (*ticket.Ticket, error) {
	var model models.TicketModel
	err := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to get ticket by ID: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.TicketModel{})

	if filter.ReporterID != nil {
		query = query.Where("reporter_id = ?", *filter.ReporterID)
	}
	if filter.Open != nil {
		closedStatuses := []string{vo.StatusDone.String(), vo.StatusClosed.String()}
		if *filter.Open {
			query = query.Where("status NOT IN ?", closedStatuses)
		} else {
			query = query.Where("status IN ?", closedStatuses)
		}
	}

	var ticketModels []models.TicketModel
	if err := query.Order("id").Find(&ticketModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, len(ticketModels))
	for i := range ticketModels {
		tickets[i] = r.mapper.ToDomain(&ticketModels[i])
	}
	return tickets, nil
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) (int64, error) {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.TicketModel{}).
		Where("id = ?", t.ID).
		Updates(map[string]interface{}{
			"subject":     t.Subject,
			"description": t.Description,
			"category_id": t.CategoryID,
			"priority":    t.Priority.String(),
			"status":      t.Status.String(),
		})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to update ticket: %w", result.Error)
	}
	return result.RowsAffected, nil
}
