package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/tjcichra/tira-backend/internal/domain/ticket"
	"github.com/tjcichra/tira-backend/internal/infrastructure/persistence/mappers"
	"github.com/tjcichra/tira-backend/internal/infrastructure/persistence/models"
	"github.com/tjcichra/tira-backend/internal/shared/db"
)

type AssignmentRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewAssignmentRepository(database *gorm.DB) ticket.AssignmentRepository {
	return &AssignmentRepository{
		db:     database,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *AssignmentRepository) Create(ctx context.Context, a *ticket.Assignment) error {
	model := r.mapper.AssignmentToModel(a)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create assignment: %w", err)
	}
	a.ID = model.ID
	return nil
}

func (r *AssignmentRepository) CreateBatch(ctx context.Context, assignments []*ticket.Assignment) error {
	if len(assignments) == 0 {
		return nil
	}

	assignmentModels := make([]*models.AssignmentModel, len(assignments))
	for i, a := range assignments {
		assignmentModels[i] = r.mapper.AssignmentToModel(a)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(&assignmentModels).Error; err != nil {
		return fmt.Errorf("failed to create assignments: %w", err)
	}

	for i, model := range assignmentModels {
		assignments[i].ID = model.ID
	}
	return nil
}

func (r *AssignmentRepository) List(ctx context.Context, filter ticket.AssignmentFilter) ([]*ticket.Assignment, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.AssignmentModel{})

	if filter.AssigneeID != nil {
		query = query.Where("assignee_id = ?", *filter.AssigneeID)
	}
	if filter.TicketID != nil {
		query = query.Where("ticket_id = ?", *filter.TicketID)
	}

	var assignmentModels []models.AssignmentModel
	if err := query.Order("id").Find(&assignmentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}

	assignments := make([]*ticket.Assignment, len(assignmentModels))
	for i := range assignmentModels {
		assignments[i] = r.mapper.AssignmentToDomain(&assignmentModels[i])
	}
	return assignments, nil
}

func (r *AssignmentRepository) DeleteByTicketID(ctx context.Context, ticketID int64) (int64, error) {
	result := db.GetTxFromContext(ctx, r.db).
		Where("ticket_id = ?", ticketID).
		Delete(&models.AssignmentModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete assignments: %w", result.Error)
	}
	return result.RowsAffected, nil
}
