package domain

import (
	"fmt"
	"time"
)

// Section is a production area with its own worker pool. OperationTypes
// is a secondary matching key: workers tagged with one of these labels
// qualify for the section even without a direct affinity.
type Section struct {
	ID              string
	Name            string
	CapacityMinutes int
	OperationTypes  []string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (s *Section) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("section name is required")
	}
	if s.CapacityMinutes < 0 {
		return fmt.Errorf("capacity minutes cannot be negative, got %d", s.CapacityMinutes)
	}
	return nil
}
