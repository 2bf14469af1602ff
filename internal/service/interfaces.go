package service

import (
	"context"

	"github.com/vkravets/tsekh/internal/domain"
)

// ScheduleService is the chain scheduler: it time-phases an order's
// operations and optionally staffs them.
type ScheduleService interface {
	// ScheduleOrder recomputes the full operation chain for one order.
	// When assignWorkers is true it also picks a free qualified worker
	// per operation. A missing order or an empty route is a no-op
	// success. A persistence failure mid-chain is returned to the
	// caller; operations already written stay written.
	ScheduleOrder(ctx context.Context, orderID string, assignWorkers bool) error
}

// LocationService answers "where is this order right now".
type LocationService interface {
	CurrentLocation(ctx context.Context, orderID string) (domain.OrderLocation, error)
	// Distribution counts orders per current location across the whole
	// catalog, the dashboard view of the factory floor.
	Distribution(ctx context.Context) (map[string]int, error)
}

type OrderService interface {
	Create(ctx context.Context, o *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	GetByNumber(ctx context.Context, number string) (*domain.Order, error)
	List(ctx context.Context) ([]*domain.Order, error)
	Update(ctx context.Context, o *domain.Order) error
	Delete(ctx context.Context, id string) error
}

type OperationService interface {
	Create(ctx context.Context, op *domain.Operation) error
	GetByID(ctx context.Context, id string) (*domain.Operation, error)
	ListByOrder(ctx context.Context, orderID string) ([]*domain.Operation, error)
	// ListWorkerTasks returns a worker's assigned operations in
	// scheduled order, the "my tasks" view.
	ListWorkerTasks(ctx context.Context, workerID string) ([]*domain.Operation, error)
	Update(ctx context.Context, op *domain.Operation) error
	// SetStatus applies an operator-driven status transition, enforcing
	// the state machine, and records completed quantity when given.
	SetStatus(ctx context.Context, id string, status domain.OperationStatus, completedQty int) error
	Delete(ctx context.Context, id string) error
}

type SectionService interface {
	Create(ctx context.Context, s *domain.Section) error
	GetByID(ctx context.Context, id string) (*domain.Section, error)
	GetByName(ctx context.Context, name string) (*domain.Section, error)
	List(ctx context.Context) ([]*domain.Section, error)
	Update(ctx context.Context, s *domain.Section) error
	Delete(ctx context.Context, id string) error
}

type WorkerService interface {
	Create(ctx context.Context, w *domain.Worker) error
	GetByID(ctx context.Context, id string) (*domain.Worker, error)
	List(ctx context.Context) ([]*domain.Worker, error)
	Update(ctx context.Context, w *domain.Worker) error
	Delete(ctx context.Context, id string) error
}
