package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tjcichra/tira-backend/internal/domain/ticket"
	vo "github.com/tjcichra/tira-backend/internal/domain/ticket/valueobjects"
	"github.com/tjcichra/tira-backend/internal/infrastructure/content"
	"github.com/tjcichra/tira-backend/internal/shared/errors"
	"github.com/tjcichra/tira-backend/internal/shared/logger"
)

func mkTicket(id int64, reporterID int64) *ticket.Ticket {
	t, _ := ticket.NewTicket("broken build", nil, nil, vo.PriorityLow, vo.StatusBacklog, reporterID)
	t.ID = id
	return t
}

func newAddCommentUseCase(commentRepo *mockCommentRepository, ticketRepo *mockTicketRepository, userRepo *mockUserRepository, notifier *recordingNotifier) *AddCommentUseCase {
	return NewAddCommentUseCase(commentRepo, ticketRepo, userRepo, content.NewService(), notifier, logger.NewLogger())
}

func TestAddCommentUseCase_Success(t *testing.T) {
	commentRepo := new(mockCommentRepository)
	ticketRepo := new(mockTicketRepository)
	userRepo := new(mockUserRepository)
	notifier := &recordingNotifier{}

	ticketRepo.On("GetByID", mock.Anything, int64(42)).Return(mkTicket(42, 1), nil)
	userRepo.On("GetByID", mock.Anything, int64(2)).Return(mkUser(2, "bob"), nil)
	commentRepo.On("Create", mock.Anything, mock.AnythingOfType("*ticket.Comment")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*ticket.Comment).ID = 9
		}).Return(nil)

	uc := newAddCommentUseCase(commentRepo, ticketRepo, userRepo, notifier)
	comment, err := uc.Execute(context.Background(), AddCommentCommand{
		TicketID:    42,
		CommenterID: 2,
		Content:     "<p>looks fine to me</p>",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(9), comment.ID)
	assert.Equal(t, []int64{9}, notifier.commented)
}

func TestAddCommentUseCase_BlankContent(t *testing.T) {
	commentRepo := new(mockCommentRepository)
	ticketRepo := new(mockTicketRepository)
	userRepo := new(mockUserRepository)
	notifier := &recordingNotifier{}

	uc := newAddCommentUseCase(commentRepo, ticketRepo, userRepo, notifier)

	for _, blank := range []string{"", "   ", "<p>   </p>", "<div><br></div>"} {
		_, err := uc.Execute(context.Background(), AddCommentCommand{TicketID: 42, CommenterID: 2, Content: blank})
		assert.True(t, errors.IsValidation(err), "content %q should be rejected", blank)
	}

	commentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	ticketRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	assert.Empty(t, notifier.commented)
}

func TestAddCommentUseCase_MarkupWithTextAccepted(t *testing.T) {
	commentRepo := new(mockCommentRepository)
	ticketRepo := new(mockTicketRepository)
	userRepo := new(mockUserRepository)
	notifier := &recordingNotifier{}

	ticketRepo.On("GetByID", mock.Anything, int64(42)).Return(mkTicket(42, 1), nil)
	userRepo.On("GetByID", mock.Anything, int64(2)).Return(mkUser(2, "bob"), nil)
	commentRepo.On("Create", mock.Anything, mock.AnythingOfType("*ticket.Comment")).Return(nil)

	uc := newAddCommentUseCase(commentRepo, ticketRepo, userRepo, notifier)
	_, err := uc.Execute(context.Background(), AddCommentCommand{TicketID: 42, CommenterID: 2, Content: "<p>ok</p>"})

	require.NoError(t, err)
}

func TestAddCommentUseCase_UnknownTicket(t *testing.T) {
	commentRepo := new(mockCommentRepository)
	ticketRepo := new(mockTicketRepository)
	userRepo := new(mockUserRepository)
	notifier := &recordingNotifier{}

	ticketRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, errors.NewNotFoundError("ticket not found"))

	uc := newAddCommentUseCase(commentRepo, ticketRepo, userRepo, notifier)
	_, err := uc.Execute(context.Background(), AddCommentCommand{TicketID: 99, CommenterID: 2, Content: "hello"})

	assert.True(t, errors.IsNotFound(err))
	commentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
