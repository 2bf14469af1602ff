package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/vkravets/tsekh/internal/domain"
	"github.com/vkravets/tsekh/internal/repository"
)

type orderService struct {
	orders repository.OrderRepo
}

func NewOrderService(orders repository.OrderRepo) OrderService {
	return &orderService{orders: orders}
}

func (s *orderService) Create(ctx context.Context, o *domain.Order) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	o.CreatedAt = now
	o.UpdatedAt = now
	if err := o.Validate(); err != nil {
		return err
	}
	return s.orders.Create(ctx, o)
}

func (s *orderService) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	return s.orders.GetByID(ctx, id)
}

func (s *orderService) GetByNumber(ctx context.Context, number string) (*domain.Order, error) {
	return s.orders.GetByNumber(ctx, number)
}

func (s *orderService) List(ctx context.Context) ([]*domain.Order, error) {
	return s.orders.List(ctx)
}

func (s *orderService) Update(ctx context.Context, o *domain.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	o.UpdatedAt = time.Now().UTC()
	return s.orders.Update(ctx, o)
}

func (s *orderService) Delete(ctx context.Context, id string) error {
	return s.orders.Delete(ctx, id)
}
