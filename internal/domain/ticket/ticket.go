package ticket

import (
	"fmt"
	"time"

	vo "github.com/tjcichra/tira-backend/internal/domain/ticket/valueobjects"
)

// Ticket is a tracked work item. Subject must be non-empty and status
// and priority must come from the enumerated sets; violations are
// rejected before any write.
type Ticket struct {
	ID          int64
	Subject     string
	Description *string
	CategoryID  *int64
	Priority    vo.Priority
	Status      vo.Status
	CreatedAt   time.Time
	ReporterID  int64
}

func NewTicket(subject string, description *string, categoryID *int64, priority vo.Priority, status vo.Status, reporterID int64) (*Ticket, error) {
	if subject == "" {
		return nil, fmt.Errorf("subject can not be empty")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("status must be one of %v", vo.AllStatuses())
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("priority must be one of %v", vo.AllPriorities())
	}
	if reporterID == 0 {
		return nil, fmt.Errorf("reporter ID is required")
	}

	return &Ticket{
		Subject:     subject,
		Description: description,
		CategoryID:  categoryID,
		Priority:    priority,
		Status:      status,
		CreatedAt:   time.Now().UTC(),
		ReporterID:  reporterID,
	}, nil
}
