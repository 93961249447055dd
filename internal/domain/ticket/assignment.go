package ticket

import (
	"fmt"
	"time"
)

// Assignment links a ticket to an assignee, recording who made the
// assignment. A ticket may have any number of current assignees.
type Assignment struct {
	ID         int64
	TicketID   int64
	AssigneeID int64
	AssignerID int64
	AssignedAt time.Time
}

func NewAssignment(ticketID, assigneeID, assignerID int64) (*Assignment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if assigneeID == 0 {
		return nil, fmt.Errorf("assignee ID is required")
	}
	if assignerID == 0 {
		return nil, fmt.Errorf("assigner ID is required")
	}

	return &Assignment{
		TicketID:   ticketID,
		AssigneeID: assigneeID,
		AssignerID: assignerID,
		AssignedAt: time.Now().UTC(),
	}, nil
}
