// Package notification builds and enqueues outbound email notices for
// ticket activity. Notification is always best effort: failures are
// logged and never surfaced to the request that triggered them.
package notification

import (
	"context"
	"fmt"

	"github.com/tjcichra/tira-backend/internal/domain/notification"
	"github.com/tjcichra/tira-backend/internal/domain/ticket"
	"github.com/tjcichra/tira-backend/internal/domain/user"
	"github.com/tjcichra/tira-backend/internal/infrastructure/content"
	"github.com/tjcichra/tira-backend/internal/shared/logger"
)

// Enqueuer hands a job to the delivery queue, blocking while it is full.
type Enqueuer interface {
	Enqueue(job notification.Job) error
}

type Notifier struct {
	userRepo      user.Repository
	queue         Enqueuer
	content       content.Service
	ticketLinkURL string
	logger        logger.Interface
}

func NewNotifier(
	userRepo user.Repository,
	queue Enqueuer,
	contentService content.Service,
	ticketLinkURL string,
	logger logger.Interface,
) *Notifier {
	return &Notifier{
		userRepo:      userRepo,
		queue:         queue,
		content:       contentService,
		ticketLinkURL: ticketLinkURL,
		logger:        logger,
	}
}

// TicketCreated notifies every non-archived user with an email address,
// except the reporter, that a ticket was opened.
func (n *Notifier) TicketCreated(ctx context.Context, creator *user.User, t *ticket.Ticket) {
	recipients, err := n.recipients(ctx, creator.ID)
	if err != nil {
		n.logger.Errorw("failed to load notification recipients", "error", err, "ticket_id", t.ID)
		return
	}

	var description string
	if t.Description != nil {
		rendered, err := n.content.RenderMarkdown(*t.Description)
		if err != nil {
			n.logger.Warnw("failed to render ticket description", "error", err, "ticket_id", t.ID)
		} else {
			description = rendered
		}
	}

	body := fmt.Sprintf("<p>%s created ticket '%s'.</p>%s%s",
		creator.DisplayName(), t.Subject, description, n.ticketLink(t.ID))
	subject := fmt.Sprintf("New ticket: %s", t.Subject)

	for _, r := range recipients {
		n.enqueue(*r.EmailAddress, subject, body)
	}
}

// Assigned notifies the assignee, unless they assigned themselves or
// have no email address.
func (n *Notifier) Assigned(ctx context.Context, assigner *user.User, assigneeID int64, t *ticket.Ticket) {
	if assigneeID == assigner.ID {
		return
	}

	assignee, err := n.userRepo.GetByID(ctx, assigneeID)
	if err != nil {
		n.logger.Errorw("failed to load assignee", "error", err, "assignee_id", assigneeID)
		return
	}
	if !assignee.HasEmail() {
		return
	}

	body := fmt.Sprintf("<p>%s assigned you to ticket '%s'.</p>%s",
		assigner.DisplayName(), t.Subject, n.ticketLink(t.ID))
	subject := fmt.Sprintf("Assigned to ticket: %s", t.Subject)

	n.enqueue(*assignee.EmailAddress, subject, body)
}

// Commented notifies every other user with an email address, with the
// sanitized comment body inlined.
func (n *Notifier) Commented(ctx context.Context, commenter *user.User, t *ticket.Ticket, c *ticket.Comment) {
	recipients, err := n.recipients(ctx, commenter.ID)
	if err != nil {
		n.logger.Errorw("failed to load notification recipients", "error", err, "ticket_id", t.ID)
		return
	}

	body := fmt.Sprintf("<p>%s commented on ticket '%s':</p>%s%s",
		commenter.DisplayName(), t.Subject, n.content.Sanitize(c.Content), n.ticketLink(t.ID))
	subject := fmt.Sprintf("New comment on ticket: %s", t.Subject)

	for _, r := range recipients {
		n.enqueue(*r.EmailAddress, subject, body)
	}
}

func (n *Notifier) recipients(ctx context.Context, excludeUserID int64) ([]*user.User, error) {
	// Default listing already excludes archived users.
	users, err := n.userRepo.List(ctx, nil)
	if err != nil {
		return nil, err
	}

	out := make([]*user.User, 0, len(users))
	for _, u := range users {
		if u.ID == excludeUserID || !u.HasEmail() {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

func (n *Notifier) ticketLink(ticketID int64) string {
	return fmt.Sprintf("<p><a href=\"%s/%d\">Link to ticket</a></p>", n.ticketLinkURL, ticketID)
}

func (n *Notifier) enqueue(to, subject, body string) {
	if err := n.queue.Enqueue(notification.Job{To: to, Subject: subject, Body: body}); err != nil {
		n.logger.Warnw("failed to enqueue notification", "error", err, "to", to)
	}
}
