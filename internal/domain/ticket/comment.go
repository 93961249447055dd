package ticket

import (
	"fmt"
	"time"
)

// Comment is a remark on a ticket. Content blankness (nothing left after
// stripping markup and whitespace) is checked by the use case, which has
// the sanitizer; the entity only enforces structural requirements.
type Comment struct {
	ID          int64
	TicketID    int64
	CommenterID int64
	Content     string
	CreatedAt   time.Time
}

func NewComment(ticketID, commenterID int64, content string) (*Comment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if commenterID == 0 {
		return nil, fmt.Errorf("commenter ID is required")
	}

	return &Comment{
		TicketID:    ticketID,
		CommenterID: commenterID,
		Content:     content,
		CreatedAt:   time.Now().UTC(),
	}, nil
}
