package valueobjects

// Status is the workflow state of a ticket. No transition graph is
// enforced; any status may follow any other.
type Status string

const (
	StatusBacklog    Status = "Backlog"
	StatusInProgress Status = "In Progress"
	StatusInReview   Status = "In Review"
	StatusDone       Status = "Done"
	StatusClosed     Status = "Closed"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusBacklog, StatusInProgress, StatusInReview, StatusDone, StatusClosed:
		return true
	}
	return false
}

// IsOpen reports whether the ticket still needs work.
func (s Status) IsOpen() bool {
	return s != StatusDone && s != StatusClosed
}

func (s Status) String() string {
	return string(s)
}

// AllStatuses lists the accepted status values for error messages.
func AllStatuses() []Status {
	return []Status{StatusBacklog, StatusInProgress, StatusInReview, StatusDone, StatusClosed}
}
