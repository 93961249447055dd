package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tjcichra/tira-backend/internal/domain/ticket"
	"github.com/tjcichra/tira-backend/internal/domain/user"
	"github.com/tjcichra/tira-backend/internal/shared/errors"
	"github.com/tjcichra/tira-backend/internal/shared/logger"
)

func TestCreateUserUseCase_HashesPassword(t *testing.T) {
	userRepo := new(mockUserRepository)
	hasher := new(mockPasswordHasher)

	hasher.On("Hash", "secret").Return("digest")
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*user.User")).Return(nil)

	uc := NewCreateUserUseCase(userRepo, hasher, logger.NewLogger())
	created, err := uc.Execute(context.Background(), CreateUserCommand{Username: "ada", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "digest", created.PasswordHash)
	assert.Equal(t, "ada", created.Username)
}

func TestCreateUserUseCase_Validation(t *testing.T) {
	userRepo := new(mockUserRepository)
	hasher := new(mockPasswordHasher)
	hasher.On("Hash", mock.Anything).Return("digest")

	uc := NewCreateUserUseCase(userRepo, hasher, logger.NewLogger())

	_, err := uc.Execute(context.Background(), CreateUserCommand{Username: "ada", Password: ""})
	assert.True(t, errors.IsValidation(err))

	_, err = uc.Execute(context.Background(), CreateUserCommand{Username: "", Password: "secret"})
	assert.True(t, errors.IsValidation(err))

	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestArchiveUserUseCase_Success(t *testing.T) {
	userRepo := new(mockUserRepository)
	userRepo.On("Archive", mock.Anything, int64(7)).Return(int64(1), nil)

	uc := NewArchiveUserUseCase(userRepo, logger.NewLogger())
	require.NoError(t, uc.Execute(context.Background(), 7))
}

// Archiving an already archived (or missing) user changes no rows.
func TestArchiveUserUseCase_AlreadyArchived(t *testing.T) {
	userRepo := new(mockUserRepository)
	userRepo.On("Archive", mock.Anything, int64(7)).Return(int64(0), nil)

	uc := NewArchiveUserUseCase(userRepo, logger.NewLogger())
	err := uc.Execute(context.Background(), 7)

	assert.True(t, errors.IsConsistency(err))
}

func TestListUsersUseCase_PassesFilter(t *testing.T) {
	userRepo := new(mockUserRepository)
	archived := true
	userRepo.On("List", mock.Anything, &archived).Return([]*user.User{}, nil)

	uc := NewListUsersUseCase(userRepo, logger.NewLogger())
	users, err := uc.Execute(context.Background(), ListUsersCommand{Archived: &archived})

	require.NoError(t, err)
	assert.Empty(t, users)
	userRepo.AssertExpectations(t)
}

func TestListUserAssignmentsUseCase_FiltersByAssignee(t *testing.T) {
	assignmentRepo := new(mockAssignmentRepository)

	a, err := ticket.NewAssignment(42, 7, 1)
	require.NoError(t, err)
	assignmentRepo.On("List", mock.Anything, mock.MatchedBy(func(f ticket.AssignmentFilter) bool {
		return f.AssigneeID != nil && *f.AssigneeID == 7 && f.TicketID == nil
	})).Return([]*ticket.Assignment{a}, nil)

	uc := NewListUserAssignmentsUseCase(assignmentRepo, logger.NewLogger())
	assignments, err := uc.Execute(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, assignments, 1)
	assert.Equal(t, int64(7), assignments[0].AssigneeID)
}
