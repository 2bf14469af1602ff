package cli

import (
	"context"
	"fmt"
	"strings"
)

// resolveOrderID turns user input into an order UUID. Lookup tries the
// order number first, then an exact UUID, then a UUID prefix.
func resolveOrderID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("order is required")
	}

	if o, err := app.Orders.GetByNumber(ctx, input); err == nil {
		return o.ID, nil
	}

	orders, err := app.Orders.List(ctx)
	if err != nil {
		return "", err
	}

	for _, o := range orders {
		if o.ID == input {
			return o.ID, nil
		}
	}

	var matches []string
	for _, o := range orders {
		if strings.HasPrefix(o.ID, input) {
			matches = append(matches, o.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("order not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("order %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveSectionID accepts a section name (case-insensitive), an exact
// UUID, or a UUID prefix.
func resolveSectionID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("section is required")
	}

	sections, err := app.Sections.List(ctx)
	if err != nil {
		return "", err
	}

	for _, s := range sections {
		if strings.EqualFold(s.Name, input) {
			return s.ID, nil
		}
	}
	for _, s := range sections {
		if s.ID == input {
			return s.ID, nil
		}
	}

	var matches []string
	for _, s := range sections {
		if strings.HasPrefix(s.ID, input) {
			matches = append(matches, s.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("section not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("section %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveWorkerID accepts a full name (case-insensitive), an exact UUID,
// or a UUID prefix.
func resolveWorkerID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("worker is required")
	}

	workers, err := app.Workers.List(ctx)
	if err != nil {
		return "", err
	}

	for _, w := range workers {
		if strings.EqualFold(w.FullName, input) {
			return w.ID, nil
		}
	}
	for _, w := range workers {
		if w.ID == input {
			return w.ID, nil
		}
	}

	var matches []string
	for _, w := range workers {
		if strings.HasPrefix(w.ID, input) {
			matches = append(matches, w.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("worker not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("worker %q is ambiguous (%d matches)", input, len(matches))
	}
}
