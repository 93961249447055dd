package mappers

import (
	"github.com/tjcichra/tira-backend/internal/domain/ticket"
	vo "github.com/tjcichra/tira-backend/internal/domain/ticket/valueobjects"
	"github.com/tjcichra/tira-backend/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between ticket-domain entities and persistence models.
type TicketMapper interface {
	ToModel(entity *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) *ticket.Ticket
	CommentToModel(entity *ticket.Comment) *models.CommentModel
	CommentToDomain(model *models.CommentModel) *ticket.Comment
	AssignmentToModel(entity *ticket.Assignment) *models.AssignmentModel
	AssignmentToDomain(model *models.AssignmentModel) *ticket.Assignment
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(entity *ticket.Ticket) *models.TicketModel {
	if entity == nil {
		return nil
	}
	return &models.TicketModel{
		ID:          entity.ID,
		Subject:     entity.Subject,
		Description: entity.Description,
		CategoryID:  entity.CategoryID,
		Priority:    entity.Priority.String(),
		Status:      entity.Status.String(),
		CreatedAt:   entity.CreatedAt,
		ReporterID:  entity.ReporterID,
	}
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) *ticket.Ticket {
	if model == nil {
		return nil
	}
	return &ticket.Ticket{
		ID:          model.ID,
		Subject:     model.Subject,
		Description: model.Description,
		CategoryID:  model.CategoryID,
		Priority:    vo.Priority(model.Priority),
		Status:      vo.Status(model.Status),
		CreatedAt:   model.CreatedAt,
		ReporterID:  model.ReporterID,
	}
}

func (m *TicketMapperImpl) CommentToModel(entity *ticket.Comment) *models.CommentModel {
	if entity == nil {
		return nil
	}
	return &models.CommentModel{
		ID:          entity.ID,
		TicketID:    entity.TicketID,
		CommenterID: entity.CommenterID,
		Content:     entity.Content,
		CreatedAt:   entity.CreatedAt,
	}
}

func (m *TicketMapperImpl) CommentToDomain(model *models.CommentModel) *ticket.Comment {
	if model == nil {
		return nil
	}
	return &ticket.Comment{
		ID:          model.ID,
		TicketID:    model.TicketID,
		CommenterID: model.CommenterID,
		Content:     model.Content,
		CreatedAt:   model.CreatedAt,
	}
}

func (m *TicketMapperImpl) AssignmentToModel(entity *ticket.Assignment) *models.AssignmentModel {
	if entity == nil {
		return nil
	}
	return &models.AssignmentModel{
		ID:         entity.ID,
		TicketID:   entity.TicketID,
		AssigneeID: entity.AssigneeID,
		AssignerID: entity.AssignerID,
		AssignedAt: entity.AssignedAt,
	}
}

func (m *TicketMapperImpl) AssignmentToDomain(model *models.AssignmentModel) *ticket.Assignment {
	if model == nil {
		return nil
	}
	return &ticket.Assignment{
		ID:         model.ID,
		TicketID:   model.TicketID,
		AssigneeID: model.AssigneeID,
		AssignerID: model.AssignerID,
		AssignedAt: model.AssignedAt,
	}
}
