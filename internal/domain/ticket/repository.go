package ticket

import "context"

// Filter narrows ticket listings.
type Filter struct {
	ReporterID *int64
	// Open filters on whether the status is still open (not Done or
	// Closed). Nil means no filtering.
	Open *bool
}

// AssignmentFilter narrows assignment listings.
type AssignmentFilter struct {
	AssigneeID *int64
	TicketID   *int64
}

// Repository persists tickets.
type Repository interface {
	Create(ctx context.Context, t *Ticket) error
	GetByID(ctx context.Context, id int64) (*Ticket, error)
	List(ctx context.Context, filter Filter) ([]*Ticket, error)
	// Update persists changed ticket fields and reports the
	// affected-row count.
	Update(ctx context.Context, t *Ticket) (int64, error)
}

// CommentRepository persists ticket comments.
type CommentRepository interface {
	Create(ctx context.Context, c *Comment) error
	ListByTicketID(ctx context.Context, ticketID int64) ([]*Comment, error)
	// UpdateContent replaces a comment's content and reports the
	// affected-row count.
	UpdateContent(ctx context.Context, commentID int64, content string) (int64, error)
}

// AssignmentRepository persists ticket assignments.
type AssignmentRepository interface {
	Create(ctx context.Context, a *Assignment) error
	CreateBatch(ctx context.Context, assignments []*Assignment) error
	List(ctx context.Context, filter AssignmentFilter) ([]*Assignment, error)
	// DeleteByTicketID removes every assignment for a ticket and
	// reports the affected-row count. Paired with CreateBatch inside
	// one transaction for full-replace semantics.
	DeleteByTicketID(ctx context.Context, ticketID int64) (int64, error)
}
