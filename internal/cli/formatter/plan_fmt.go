package formatter

import (
	"fmt"
	"time"

	"github.com/vkravets/tsekh/internal/domain"
)

// FormatPlan renders the computed schedule for one order after a planning
// run: the route with its time windows and staffing.
func FormatPlan(o *domain.Order, ops []*domain.Operation, sections map[string]*domain.Section, workers map[string]*domain.Worker) string {
	title := fmt.Sprintf("Plan for %s", o.DisplayID())

	body := formatRoute(ops, sections, workers)

	var total time.Duration
	unstaffed := 0
	for _, op := range ops {
		if op.Scheduled() {
			total += op.ScheduledEndAt.Sub(*op.ScheduledStartAt)
		}
		if op.AssignedWorkerID == nil {
			unstaffed++
		}
	}

	summary := fmt.Sprintf("\n%s %s",
		Dim("Total planned time:"),
		Bold(FormatMinutes(int(total.Minutes()))))
	if unstaffed > 0 {
		summary += "\n" + StyleYellow.Render(fmt.Sprintf("%d operation(s) have no worker assigned", unstaffed))
	}

	return RenderBox(title, body+summary)
}
