package scheduler

import (
	"time"

	"github.com/vkravets/tsekh/internal/domain"
)

// Overlaps reports whether [s1,e1) and [s2,e2) intersect. Windows that
// only touch at a boundary do not overlap, so a worker may be scheduled
// back-to-back.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && e1.After(s2)
}

// BusyWorkers returns the IDs of workers whose committed windows intersect
// the candidate window. Callers pass the full system-wide window list,
// re-fetched fresh for every check: each write inside a scheduling run
// changes the truth for the next one.
func BusyWorkers(windows []domain.BusyWindow, start, end time.Time) map[string]struct{} {
	busy := make(map[string]struct{})
	for _, w := range windows {
		if Overlaps(w.StartAt, w.EndAt, start, end) {
			busy[w.WorkerID] = struct{}{}
		}
	}
	return busy
}
