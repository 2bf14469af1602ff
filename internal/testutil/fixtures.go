package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/vkravets/tsekh/internal/domain"
)

var testOrderCounter atomic.Int64

// Order options
type OrderOption func(*domain.Order)

func WithStartDate(d time.Time) OrderOption {
	return func(o *domain.Order) {
		o.StartDate = &d
	}
}

func WithShipDate(d time.Time) OrderOption {
	return func(o *domain.Order) {
		o.ShipDate = &d
	}
}

func WithOrderQuantity(q int) OrderOption {
	return func(o *domain.Order) {
		o.Quantity = q
	}
}

func NewTestOrder(product string, opts ...OrderOption) *domain.Order {
	now := time.Now().UTC()
	o := &domain.Order{
		ID:           uuid.New().String(),
		OrderNumber:  fmt.Sprintf("ORD-%04d", testOrderCounter.Add(1)),
		CustomerName: "Test Customer",
		ProductName:  product,
		Quantity:     10,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Section options
type SectionOption func(*domain.Section)

func WithCapacity(minutes int) SectionOption {
	return func(s *domain.Section) {
		s.CapacityMinutes = minutes
	}
}

func WithSectionLabels(labels ...string) SectionOption {
	return func(s *domain.Section) {
		s.OperationTypes = labels
	}
}

func NewTestSection(name string, opts ...SectionOption) *domain.Section {
	now := time.Now().UTC()
	s := &domain.Section{
		ID:              uuid.New().String(),
		Name:            name,
		CapacityMinutes: 8 * 60,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Worker options
type WorkerOption func(*domain.Worker)

func WithSectionAffinity(sectionID string) WorkerOption {
	return func(w *domain.Worker) {
		w.SectionID = &sectionID
	}
}

func WithCapabilities(labels ...string) WorkerOption {
	return func(w *domain.Worker) {
		w.OperationTypes = labels
	}
}

func NewTestWorker(fullName string, opts ...WorkerOption) *domain.Worker {
	now := time.Now().UTC()
	w := &domain.Worker{
		ID:        uuid.New().String(),
		FullName:  fullName,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Operation options
type OperationOption func(*domain.Operation)

func WithSortOrder(n int) OperationOption {
	return func(op *domain.Operation) {
		op.SortOrder = n
	}
}

func WithNorm(quantity int, normPerUnitMin float64) OperationOption {
	return func(op *domain.Operation) {
		op.Quantity = quantity
		op.NormPerUnitMin = normPerUnitMin
	}
}

func WithStatus(s domain.OperationStatus) OperationOption {
	return func(op *domain.Operation) {
		op.Status = s
	}
}

func WithAssignedWorker(workerID string) OperationOption {
	return func(op *domain.Operation) {
		op.AssignedWorkerID = &workerID
	}
}

func WithWindow(start, end time.Time) OperationOption {
	return func(op *domain.Operation) {
		op.ScheduledStartAt = &start
		op.ScheduledEndAt = &end
	}
}

func NewTestOperation(orderID, sectionID string, opts ...OperationOption) *domain.Operation {
	now := time.Now().UTC()
	op := &domain.Operation{
		ID:             uuid.New().String(),
		OrderID:        orderID,
		SectionID:      sectionID,
		Name:           "operation",
		SortOrder:      1,
		Quantity:       10,
		NormPerUnitMin: 6,
		Status:         domain.OperationNotStarted,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	for _, opt := range opts {
		opt(op)
	}
	return op
}
