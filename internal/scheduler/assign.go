package scheduler

import (
	"sort"

	"github.com/vkravets/tsekh/internal/domain"
)

// PickWorker selects the assignee for an operation: the qualified worker
// with the lowest ID who is not busy in the candidate window. Ascending ID
// keeps recomputing an unchanged order reproducible. Returns nil when no
// qualified worker is free; the caller keeps any existing assignment in
// that case.
func PickWorker(qualified []domain.Worker, busy map[string]struct{}) *domain.Worker {
	free := make([]domain.Worker, 0, len(qualified))
	for _, w := range qualified {
		if _, taken := busy[w.ID]; !taken {
			free = append(free, w)
		}
	}
	if len(free) == 0 {
		return nil
	}
	sort.Slice(free, func(i, j int) bool { return free[i].ID < free[j].ID })
	return &free[0]
}

// QualifiedWorkers resolves the section's eligible pool from the full
// worker list: the union of workers pinned to the section directly and
// workers whose capability labels include the section's name. Duplicates
// are removed; an empty result simply means no eligible worker.
func QualifiedWorkers(section domain.Section, workers []domain.Worker) []domain.Worker {
	seen := make(map[string]struct{})
	var out []domain.Worker
	for _, w := range workers {
		if _, dup := seen[w.ID]; dup {
			continue
		}
		direct := w.SectionID != nil && *w.SectionID == section.ID
		byLabel := section.Name != "" && w.HasCapability(section.Name)
		if direct || byLabel {
			seen[w.ID] = struct{}{}
			out = append(out, w)
		}
	}
	return out
}
