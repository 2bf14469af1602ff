package domain

import (
	"fmt"
	"time"
)

// Operation is one manufacturing step on an order's route, tied to a
// section and optionally a worker. SortOrder is unique within an order
// and defines the processing sequence.
type Operation struct {
	ID               string
	OrderID          string
	SectionID        string
	AssignedWorkerID *string
	Name             string
	SortOrder        int
	Quantity         int
	NormPerUnitMin   float64
	Status           OperationStatus
	ScheduledStartAt *time.Time
	ScheduledEndAt   *time.Time
	CompletedQty     int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (op *Operation) Validate() error {
	if op.OrderID == "" {
		return fmt.Errorf("operation must belong to an order")
	}
	if op.SectionID == "" {
		return fmt.Errorf("operation must reference a section")
	}
	if op.SortOrder <= 0 {
		return fmt.Errorf("sort order must be positive, got %d", op.SortOrder)
	}
	return nil
}

// Transition moves the operation to a new status, enforcing the state
// machine. The scheduler never calls this; status is operator-driven.
func (op *Operation) Transition(to OperationStatus, now time.Time) error {
	if !CanTransition(op.Status, to) {
		return fmt.Errorf("cannot move operation from %s to %s", op.Status, to)
	}
	op.Status = to
	op.UpdatedAt = now
	return nil
}

// Scheduled reports whether the operation has both window endpoints set.
func (op *Operation) Scheduled() bool {
	return op.ScheduledStartAt != nil && op.ScheduledEndAt != nil
}

// BusyWindow is a worker's committed time interval, read system-wide by
// the availability check.
type BusyWindow struct {
	OperationID string
	WorkerID    string
	StartAt     time.Time
	EndAt       time.Time
}
