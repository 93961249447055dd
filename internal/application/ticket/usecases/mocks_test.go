package usecases

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/tjcichra/tira-backend/internal/domain/ticket"
	"github.com/tjcichra/tira-backend/internal/domain/user"
)

type mockTicketRepository struct {
	mock.Mock
}

func (m *mockTicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *mockTicketRepository) GetByID(ctx context.Context, id int64) (*ticket.Ticket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ticket.Ticket), args.Error(1)
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ticket.Ticket), args.Error(1)
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) (int64, error) {
	args := m.Called(ctx, t)
	return args.Get(0).(int64), args.Error(1)
}

type mockCommentRepository struct {
	mock.Mock
}

func (m *mockCommentRepository) Create(ctx context.Context, c *ticket.Comment) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *mockCommentRepository) ListByTicketID(ctx context.Context, ticketID int64) ([]*ticket.Comment, error) {
	args := m.Called(ctx, ticketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ticket.Comment), args.Error(1)
}

func (m *mockCommentRepository) UpdateContent(ctx context.Context, commentID int64, content string) (int64, error) {
	args := m.Called(ctx, commentID, content)
	return args.Get(0).(int64), args.Error(1)
}

type mockAssignmentRepository struct {
	mock.Mock
}

func (m *mockAssignmentRepository) Create(ctx context.Context, a *ticket.Assignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *mockAssignmentRepository) CreateBatch(ctx context.Context, assignments []*ticket.Assignment) error {
	args := m.Called(ctx, assignments)
	return args.Error(0)
}

func (m *mockAssignmentRepository) List(ctx context.Context, filter ticket.AssignmentFilter) ([]*ticket.Assignment, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ticket.Assignment), args.Error(1)
}

func (m *mockAssignmentRepository) DeleteByTicketID(ctx context.Context, ticketID int64) (int64, error) {
	args := m.Called(ctx, ticketID)
	return args.Get(0).(int64), args.Error(1)
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id int64) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *mockUserRepository) GetByUsernameAndHash(ctx context.Context, username, passwordHash string) (*user.User, error) {
	args := m.Called(ctx, username, passwordHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *mockUserRepository) List(ctx context.Context, archived *bool) ([]*user.User, error) {
	args := m.Called(ctx, archived)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*user.User), args.Error(1)
}

func (m *mockUserRepository) Archive(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// recordingNotifier captures notification calls without delivering.
type recordingNotifier struct {
	ticketsCreated []int64
	assigned       [][2]int64 // (ticketID, assigneeID)
	commented      []int64
}

func (n *recordingNotifier) TicketCreated(ctx context.Context, creator *user.User, t *ticket.Ticket) {
	n.ticketsCreated = append(n.ticketsCreated, t.ID)
}

func (n *recordingNotifier) Assigned(ctx context.Context, assigner *user.User, assigneeID int64, t *ticket.Ticket) {
	n.assigned = append(n.assigned, [2]int64{t.ID, assigneeID})
}

func (n *recordingNotifier) Commented(ctx context.Context, commenter *user.User, t *ticket.Ticket, c *ticket.Comment) {
	n.commented = append(n.commented, c.ID)
}

// passthroughTxManager runs the function without a real transaction.
type passthroughTxManager struct {
	err error
}

func (m *passthroughTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.err != nil {
		return m.err
	}
	return fn(ctx)
}
