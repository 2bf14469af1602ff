package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vkravets/tsekh/internal/domain"
	"github.com/vkravets/tsekh/internal/repository"
)

type operationService struct {
	operations repository.OperationRepo
}

func NewOperationService(operations repository.OperationRepo) OperationService {
	return &operationService{operations: operations}
}

func (s *operationService) Create(ctx context.Context, op *domain.Operation) error {
	if op.ID == "" {
		op.ID = uuid.New().String()
	}
	if op.Status == "" {
		op.Status = domain.OperationNotStarted
	}
	now := time.Now().UTC()
	op.CreatedAt = now
	op.UpdatedAt = now
	if err := op.Validate(); err != nil {
		return err
	}
	return s.operations.Create(ctx, op)
}

func (s *operationService) GetByID(ctx context.Context, id string) (*domain.Operation, error) {
	return s.operations.GetByID(ctx, id)
}

func (s *operationService) ListByOrder(ctx context.Context, orderID string) ([]*domain.Operation, error) {
	return s.operations.ListByOrder(ctx, orderID)
}

func (s *operationService) ListWorkerTasks(ctx context.Context, workerID string) ([]*domain.Operation, error) {
	return s.operations.ListByWorker(ctx, workerID)
}

func (s *operationService) Update(ctx context.Context, op *domain.Operation) error {
	if err := op.Validate(); err != nil {
		return err
	}
	op.UpdatedAt = time.Now().UTC()
	return s.operations.Update(ctx, op)
}

func (s *operationService) SetStatus(ctx context.Context, id string, status domain.OperationStatus, completedQty int) error {
	op, err := s.operations.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("loading operation: %w", err)
	}
	if err := op.Transition(status, time.Now().UTC()); err != nil {
		return err
	}
	if completedQty < 0 {
		completedQty = op.CompletedQty
	}
	return s.operations.UpdateStatus(ctx, id, status, completedQty)
}

func (s *operationService) Delete(ctx context.Context, id string) error {
	return s.operations.Delete(ctx, id)
}
