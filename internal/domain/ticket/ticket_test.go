package ticket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/tjcichra/tira-backend/internal/domain/ticket/valueobjects"
)

func TestNewTicket(t *testing.T) {
	tests := []struct {
		name     string
		subject  string
		priority vo.Priority
		status   vo.Status
		reporter int64
		wantErr  bool
	}{
		{name: "valid", subject: "Broken build", priority: vo.PriorityHigh, status: vo.StatusBacklog, reporter: 1},
		{name: "empty subject", subject: "", priority: vo.PriorityLow, status: vo.StatusBacklog, reporter: 1, wantErr: true},
		{name: "bad status", subject: "x", priority: vo.PriorityLow, status: vo.Status("Waiting"), reporter: 1, wantErr: true},
		{name: "bad priority", subject: "x", priority: vo.Priority("Urgent"), status: vo.StatusDone, reporter: 1, wantErr: true},
		{name: "missing reporter", subject: "x", priority: vo.PriorityLow, status: vo.StatusBacklog, reporter: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTicket(tt.subject, nil, nil, tt.priority, tt.status, tt.reporter)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.subject, got.Subject)
			assert.Equal(t, tt.reporter, got.ReporterID)
		})
	}
}

func TestNewAssignment_Validation(t *testing.T) {
	_, err := NewAssignment(0, 2, 3)
	assert.Error(t, err)
	_, err = NewAssignment(1, 0, 3)
	assert.Error(t, err)
	_, err = NewAssignment(1, 2, 0)
	assert.Error(t, err)

	a, err := NewAssignment(1, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(2), a.AssigneeID)
	assert.Equal(t, int64(3), a.AssignerID)
}
