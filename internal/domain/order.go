package domain

import (
	"fmt"
	"time"
)

type Order struct {
	ID           string
	OrderNumber  string
	CustomerName string
	ProductName  string
	Article      string
	Quantity     int
	StartDate    *time.Time
	ShipDate     *time.Time
	Comment      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Validate checks the fields order intake is responsible for.
func (o *Order) Validate() error {
	if o.OrderNumber == "" {
		return fmt.Errorf("order number is required")
	}
	if o.ProductName == "" {
		return fmt.Errorf("product name is required")
	}
	if o.Quantity <= 0 {
		return fmt.Errorf("quantity must be positive, got %d", o.Quantity)
	}
	return nil
}

// BaseClock returns the instant the order's schedule should start from:
// the declared start date when present, otherwise now.
func (o *Order) BaseClock(now time.Time) time.Time {
	if o.StartDate != nil {
		return *o.StartDate
	}
	return now
}

// DisplayID returns the best short identifier for display.
// It prefers OrderNumber; if empty it truncates ID to 8 characters.
func (o *Order) DisplayID() string {
	if o.OrderNumber != "" {
		return o.OrderNumber
	}
	if len(o.ID) >= 8 {
		return o.ID[:8]
	}
	return o.ID
}
