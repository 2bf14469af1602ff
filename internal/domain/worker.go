package domain

import (
	"fmt"
	"time"
)

// Worker is a member of the production staff. SectionID is an optional
// direct affinity; OperationTypes is an optional capability list matched
// against section names. Qualification honors either relation.
type Worker struct {
	ID             string
	FullName       string
	SectionID      *string
	OperationTypes []string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (w *Worker) Validate() error {
	if w.FullName == "" {
		return fmt.Errorf("worker name is required")
	}
	return nil
}

// HasCapability reports whether the worker's capability list contains the
// given label.
func (w *Worker) HasCapability(label string) bool {
	for _, t := range w.OperationTypes {
		if t == label {
			return true
		}
	}
	return false
}
