package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/vkravets/tsekh/internal/domain"
	"github.com/vkravets/tsekh/internal/repository"
	"github.com/vkravets/tsekh/internal/scheduler"
)

type scheduleService struct {
	orders     repository.OrderRepo
	operations repository.OperationRepo
	sections   repository.SectionRepo
	workers    repository.WorkerRepo
	observer   UseCaseObserver
	now        func() time.Time

	// mu serializes entire scheduling runs. The availability check and
	// the assignment write are a read-then-write pair over the shared
	// window table; two interleaved runs could both read the same "free"
	// snapshot and double-book a worker without this.
	mu sync.Mutex
}

func NewScheduleService(
	orders repository.OrderRepo,
	operations repository.OperationRepo,
	sections repository.SectionRepo,
	workers repository.WorkerRepo,
	observers ...UseCaseObserver,
) ScheduleService {
	return &scheduleService{
		orders:     orders,
		operations: operations,
		sections:   sections,
		workers:    workers,
		observer:   useCaseObserverOrNoop(observers),
		now:        time.Now,
	}
}

func (s *scheduleService) ScheduleOrder(ctx context.Context, orderID string, assignWorkers bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	started := time.Now()
	scheduled, err := s.scheduleChain(ctx, orderID, assignWorkers)
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "schedule_order",
		Duration:  time.Since(started),
		Success:   err == nil,
		Err:       err,
		Fields:    map[string]any{"order_id": orderID, "assign_workers": assignWorkers, "operations": scheduled},
		StartedAt: started,
	})
	return err
}

// scheduleChain threads one running clock through the order's operations:
// each starts when its predecessor ends, so no two operations of the same
// order can ever overlap. Returns how many operations were written.
func (s *scheduleService) scheduleChain(ctx context.Context, orderID string, assignWorkers bool) (int, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// An order without a record (or route) is nothing to
			// schedule, not a failure.
			return 0, nil
		}
		return 0, fmt.Errorf("loading order: %w", err)
	}

	ops, err := s.operations.ListByOrder(ctx, orderID)
	if err != nil {
		return 0, fmt.Errorf("loading operations: %w", err)
	}
	if len(ops) == 0 {
		return 0, nil
	}

	var pool []domain.Worker
	if assignWorkers {
		all, err := s.workers.List(ctx)
		if err != nil {
			return 0, fmt.Errorf("loading workers: %w", err)
		}
		pool = make([]domain.Worker, len(all))
		for i, w := range all {
			pool[i] = *w
		}
	}

	sectionCache := make(map[string]*domain.Section)
	// Timestamps are stored at second granularity; a fractional base
	// clock would make the persisted windows end earlier than the
	// computed ones and free workers ahead of time.
	clock := order.BaseClock(s.now().UTC()).Truncate(time.Second)

	for i, op := range ops {
		duration := scheduler.OperationDuration(op.Quantity, op.NormPerUnitMin)
		start := clock
		end := start.Add(duration)

		var pick *string
		if assignWorkers {
			sec, err := s.resolveSection(ctx, sectionCache, op.SectionID)
			if err != nil {
				return i, err
			}
			// An unresolvable section skips assignment only;
			// the timestamps are still written.
			if sec != nil {
				pick, err = s.pickWorker(ctx, *sec, pool, start, end)
				if err != nil {
					return i, err
				}
			}
		}

		if err := s.operations.UpdateSchedule(ctx, op.ID, start, end, pick); err != nil {
			// No rollback: operations already written stay written.
			return i, fmt.Errorf("persisting schedule for operation %s: %w", op.ID, err)
		}

		clock = end
	}
	return len(ops), nil
}

// pickWorker returns the ID of a qualified worker free in [start, end), or
// nil when there is none. The busy set is re-read from storage for every
// window: each persisted assignment changes the truth for the next one.
func (s *scheduleService) pickWorker(ctx context.Context, sec domain.Section, pool []domain.Worker, start, end time.Time) (*string, error) {
	qualified := scheduler.QualifiedWorkers(sec, pool)
	if len(qualified) == 0 {
		return nil, nil
	}

	windows, err := s.operations.ListAssignedWindows(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading assigned windows: %w", err)
	}

	busy := scheduler.BusyWorkers(windows, start, end)
	w := scheduler.PickWorker(qualified, busy)
	if w == nil {
		return nil, nil
	}
	return &w.ID, nil
}

func (s *scheduleService) resolveSection(ctx context.Context, cache map[string]*domain.Section, sectionID string) (*domain.Section, error) {
	if sectionID == "" {
		return nil, nil
	}
	if sec, ok := cache[sectionID]; ok {
		return sec, nil
	}
	sec, err := s.sections.GetByID(ctx, sectionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			cache[sectionID] = nil
			return nil, nil
		}
		return nil, fmt.Errorf("loading section: %w", err)
	}
	cache[sectionID] = sec
	return sec, nil
}
