package notification

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	notif "github.com/tjcichra/tira-backend/internal/domain/notification"
	"github.com/tjcichra/tira-backend/internal/domain/ticket"
	vo "github.com/tjcichra/tira-backend/internal/domain/ticket/valueobjects"
	"github.com/tjcichra/tira-backend/internal/domain/user"
	"github.com/tjcichra/tira-backend/internal/infrastructure/content"
	"github.com/tjcichra/tira-backend/internal/shared/logger"
)

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

type captureQueue struct {
	jobs []notif.Job
}

func (q *captureQueue) Enqueue(job notif.Job) error {
	q.jobs = append(q.jobs, job)
	return nil
}

func mkUser(id int64, username string, email *string) *user.User {
	u, _ := user.NewUser(username, "hash", email, nil, nil, nil)
	u.ID = id
	return u
}

func strPtr(s string) *string { return &s }

func mkTicket(id int64, subject string, description *string, reporterID int64) *ticket.Ticket {
	t, _ := ticket.NewTicket(subject, description, nil, vo.PriorityMedium, vo.StatusBacklog, reporterID)
	t.ID = id
	return t
}

func newNotifier(userRepo *mockUserRepository, queue Enqueuer) *Notifier {
	return NewNotifier(userRepo, queue, content.NewService(), "https://tira.example.com/tickets", logger.NewLogger())
}

func TestNotifier_TicketCreatedSkipsReporterAndNoEmailUsers(t *testing.T) {
	userRepo := new(mockUserRepository)
	queue := &captureQueue{}

	reporter := mkUser(1, "reporter", strPtr("reporter@example.com"))
	users := []*user.User{
		reporter,
		mkUser(2, "watcher", strPtr("watcher@example.com")),
		mkUser(3, "no-email", nil),
	}
	userRepo.On("List", mock.Anything, (*bool)(nil)).Return(users, nil)

	n := newNotifier(userRepo, queue)
	n.TicketCreated(context.Background(), reporter, mkTicket(42, "broken build", nil, 1))

	require.Len(t, queue.jobs, 1)
	job := queue.jobs[0]
	assert.Equal(t, "watcher@example.com", job.To)
	assert.Equal(t, "New ticket: broken build", job.Subject)
	assert.Contains(t, job.Body, "reporter created ticket 'broken build'.")
	assert.Contains(t, job.Body, "https://tira.example.com/tickets/42")
}

func TestNotifier_TicketCreatedRendersDescriptionMarkdown(t *testing.T) {
	userRepo := new(mockUserRepository)
	queue := &captureQueue{}

	reporter := mkUser(1, "reporter", nil)
	userRepo.On("List", mock.Anything, (*bool)(nil)).
		Return([]*user.User{mkUser(2, "watcher", strPtr("watcher@example.com"))}, nil)

	n := newNotifier(userRepo, queue)
	tk := mkTicket(42, "broken build", strPtr("it is **bad**"), 1)
	n.TicketCreated(context.Background(), reporter, tk)

	require.Len(t, queue.jobs, 1)
	assert.Contains(t, queue.jobs[0].Body, "<strong>bad</strong>")
}

func TestNotifier_TicketCreatedUsesDisplayName(t *testing.T) {
	userRepo := new(mockUserRepository)
	queue := &captureQueue{}

	reporter, err := user.NewUser("grace", "hash", nil, strPtr("Grace"), strPtr("Hopper"), nil)
	require.NoError(t, err)
	reporter.ID = 1

	userRepo.On("List", mock.Anything, (*bool)(nil)).
		Return([]*user.User{mkUser(2, "watcher", strPtr("watcher@example.com"))}, nil)

	n := newNotifier(userRepo, queue)
	n.TicketCreated(context.Background(), reporter, mkTicket(42, "broken build", nil, 1))

	require.Len(t, queue.jobs, 1)
	assert.Contains(t, queue.jobs[0].Body, "Grace Hopper created ticket")
}

func TestNotifier_AssignedSelfAssignmentSkipped(t *testing.T) {
	userRepo := new(mockUserRepository)
	queue := &captureQueue{}

	assigner := mkUser(1, "ada", strPtr("ada@example.com"))

	n := newNotifier(userRepo, queue)
	n.Assigned(context.Background(), assigner, 1, mkTicket(42, "broken build", nil, 1))

	assert.Empty(t, queue.jobs)
	userRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestNotifier_AssignedNotifiesAssignee(t *testing.T) {
	userRepo := new(mockUserRepository)
	queue := &captureQueue{}

	assigner := mkUser(1, "ada", nil)
	userRepo.On("GetByID", mock.Anything, int64(2)).Return(mkUser(2, "bob", strPtr("bob@example.com")), nil)

	n := newNotifier(userRepo, queue)
	n.Assigned(context.Background(), assigner, 2, mkTicket(42, "broken build", nil, 1))

	require.Len(t, queue.jobs, 1)
	assert.Equal(t, "bob@example.com", queue.jobs[0].To)
	assert.Contains(t, queue.jobs[0].Body, "ada assigned you to ticket 'broken build'.")
}

func TestNotifier_AssignedAssigneeWithoutEmailSkipped(t *testing.T) {
	userRepo := new(mockUserRepository)
	queue := &captureQueue{}

	userRepo.On("GetByID", mock.Anything, int64(2)).Return(mkUser(2, "bob", nil), nil)

	n := newNotifier(userRepo, queue)
	n.Assigned(context.Background(), mkUser(1, "ada", nil), 2, mkTicket(42, "broken build", nil, 1))

	assert.Empty(t, queue.jobs)
}

func TestNotifier_CommentedSanitizesContent(t *testing.T) {
	userRepo := new(mockUserRepository)
	queue := &captureQueue{}

	commenter := mkUser(1, "ada", nil)
	userRepo.On("List", mock.Anything, (*bool)(nil)).
		Return([]*user.User{mkUser(2, "watcher", strPtr("watcher@example.com"))}, nil)

	c, err := ticket.NewComment(42, 1, "<p>looks fine</p><script>alert(1)</script>")
	require.NoError(t, err)

	n := newNotifier(userRepo, queue)
	n.Commented(context.Background(), commenter, mkTicket(42, "broken build", nil, 1), c)

	require.Len(t, queue.jobs, 1)
	assert.Contains(t, queue.jobs[0].Body, "looks fine")
	assert.NotContains(t, queue.jobs[0].Body, "<script>")
}
