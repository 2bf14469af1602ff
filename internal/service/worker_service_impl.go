package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/vkravets/tsekh/internal/db"
	"github.com/vkravets/tsekh/internal/domain"
	"github.com/vkravets/tsekh/internal/repository"
)

type workerService struct {
	workers repository.WorkerRepo
	uow     db.UnitOfWork
}

func NewWorkerService(workers repository.WorkerRepo, uow db.UnitOfWork) WorkerService {
	return &workerService{workers: workers, uow: uow}
}

// Create writes the worker row and their capability labels in one
// transaction.
func (s *workerService) Create(ctx context.Context, w *domain.Worker) error {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	w.CreatedAt = now
	w.UpdatedAt = now
	if err := w.Validate(); err != nil {
		return err
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteWorkerRepo(tx).Create(ctx, w)
	})
}

func (s *workerService) GetByID(ctx context.Context, id string) (*domain.Worker, error) {
	return s.workers.GetByID(ctx, id)
}

func (s *workerService) List(ctx context.Context) ([]*domain.Worker, error) {
	return s.workers.List(ctx)
}

// Update replaces the row and the capability set atomically.
func (s *workerService) Update(ctx context.Context, w *domain.Worker) error {
	if err := w.Validate(); err != nil {
		return err
	}
	w.UpdatedAt = time.Now().UTC()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteWorkerRepo(tx).Update(ctx, w)
	})
}

func (s *workerService) Delete(ctx context.Context, id string) error {
	return s.workers.Delete(ctx, id)
}
