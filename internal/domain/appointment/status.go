package appointment

import (
	"fmt"

	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
)

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusConfirmed  Status = "confirmed"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
	StatusNoShow     Status = "no_show"
)

// BlockingStatuses occupy their slot.
var BlockingStatuses = []Status{StatusScheduled, StatusConfirmed, StatusInProgress}

func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusScheduled, StatusConfirmed, StatusInProgress,
		StatusCompleted, StatusCancelled, StatusNoShow:
		return st, nil
	}
	return "", fmt.Errorf("appointment: unknown status %q", s)
}

func (s Status) IsBlocking() bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusInProgress:
		return true
	}
	return false
}

// BlocksTransition reports whether cancel and complete are refused. no_show
// is final but still accepts both.
func (s Status) BlocksTransition() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// ===============================
// Validations
// ===============================

func CanCancel(current Status) error {
	if current.BlocksTransition() {
		return httperr.ErrConflict("invalid_state",
			fmt.Sprintf("Cannot cancel a %s appointment", current))
	}
	return nil
}

func CanComplete(current Status) error {
	if current.BlocksTransition() {
		return httperr.ErrConflict("invalid_state",
			fmt.Sprintf("Cannot complete a %s appointment", current))
	}
	return nil
}

func InitialStatus() Status {
	return StatusScheduled
}
