package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/vkravets/tsekh/internal/domain"
	"github.com/vkravets/tsekh/internal/repository"
)

type locationService struct {
	orders     repository.OrderRepo
	operations repository.OperationRepo
	sections   repository.SectionRepo
}

func NewLocationService(orders repository.OrderRepo, operations repository.OperationRepo, sections repository.SectionRepo) LocationService {
	return &locationService{orders: orders, operations: operations, sections: sections}
}

// CurrentLocation reports where an order physically sits on the floor: the
// section of its first not-yet-done operation. All operations done means
// the order is complete; no operations (or no such order) means unplanned.
func (s *locationService) CurrentLocation(ctx context.Context, orderID string) (domain.OrderLocation, error) {
	ops, err := s.operations.ListByOrder(ctx, orderID)
	if err != nil {
		return domain.OrderLocation{}, fmt.Errorf("loading operations: %w", err)
	}
	if len(ops) == 0 {
		return domain.NewUnplannedLocation(), nil
	}

	for _, op := range ops {
		if op.Status == domain.OperationDone {
			continue
		}
		name := ""
		if op.SectionID != "" {
			sec, err := s.sections.GetByID(ctx, op.SectionID)
			if err != nil && !errors.Is(err, repository.ErrNotFound) {
				return domain.OrderLocation{}, fmt.Errorf("loading section: %w", err)
			}
			if sec != nil {
				name = sec.Name
			}
		}
		return domain.NewSectionLocation(op.SectionID, name), nil
	}
	return domain.NewCompleteLocation(), nil
}

// Distribution counts active orders per location, keyed by section name.
// Complete and unplanned orders land in their own buckets.
func (s *locationService) Distribution(ctx context.Context) (map[string]int, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading orders: %w", err)
	}

	dist := make(map[string]int)
	for _, o := range orders {
		loc, err := s.CurrentLocation(ctx, o.ID)
		if err != nil {
			return nil, err
		}
		switch loc.Kind {
		case domain.LocationComplete:
			dist["Complete"]++
		case domain.LocationUnplanned:
			dist["Unplanned"]++
		default:
			key := loc.SectionName
			if key == "" {
				key = loc.SectionID
			}
			dist[key]++
		}
	}
	return dist, nil
}
