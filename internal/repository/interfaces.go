package repository

import (
	"context"
	"errors"
	"time"

	"github.com/vkravets/tsekh/internal/domain"
)

// ErrNotFound is wrapped by repositories when a looked-up record does not
// exist. The chain scheduler treats a missing order as a no-op; CRUD
// callers surface it to the user.
var ErrNotFound = errors.New("not found")

type OrderRepo interface {
	Create(ctx context.Context, o *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	GetByNumber(ctx context.Context, number string) (*domain.Order, error)
	List(ctx context.Context) ([]*domain.Order, error)
	Update(ctx context.Context, o *domain.Order) error
	Delete(ctx context.Context, id string) error
}

type OperationRepo interface {
	Create(ctx context.Context, op *domain.Operation) error
	GetByID(ctx context.Context, id string) (*domain.Operation, error)
	// ListByOrder returns the order's route in ascending sort_order, the
	// sequence the chain scheduler folds over.
	ListByOrder(ctx context.Context, orderID string) ([]*domain.Operation, error)
	ListByWorker(ctx context.Context, workerID string) ([]*domain.Operation, error)
	// ListAssignedWindows returns every scheduled window with a non-null
	// assigned worker, across all orders. The availability check re-reads
	// this on every candidate window.
	ListAssignedWindows(ctx context.Context) ([]domain.BusyWindow, error)
	Update(ctx context.Context, op *domain.Operation) error
	// UpdateSchedule persists only what the scheduler owns: the window
	// endpoints and, when non-nil, the assigned worker.
	UpdateSchedule(ctx context.Context, id string, start, end time.Time, workerID *string) error
	UpdateStatus(ctx context.Context, id string, status domain.OperationStatus, completedQty int) error
	Delete(ctx context.Context, id string) error
}

type SectionRepo interface {
	Create(ctx context.Context, s *domain.Section) error
	GetByID(ctx context.Context, id string) (*domain.Section, error)
	GetByName(ctx context.Context, name string) (*domain.Section, error)
	List(ctx context.Context) ([]*domain.Section, error)
	Update(ctx context.Context, s *domain.Section) error
	Delete(ctx context.Context, id string) error
}

type WorkerRepo interface {
	Create(ctx context.Context, w *domain.Worker) error
	GetByID(ctx context.Context, id string) (*domain.Worker, error)
	List(ctx context.Context) ([]*domain.Worker, error)
	Update(ctx context.Context, w *domain.Worker) error
	Delete(ctx context.Context, id string) error
}
