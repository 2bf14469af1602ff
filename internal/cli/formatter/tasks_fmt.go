package formatter

import (
	"fmt"

	"github.com/vkravets/tsekh/internal/domain"
)

// FormatWorkerTasks renders the assigned operations of one worker in
// scheduled order.
func FormatWorkerTasks(w *domain.Worker, ops []*domain.Operation, orders map[string]*domain.Order, sections map[string]*domain.Section) string {
	headers := []string{"ORDER", "OPERATION", "SECTION", "WINDOW", "STATUS", "QTY"}
	rows := make([][]string, 0, len(ops))

	for _, op := range ops {
		orderID := TruncID(op.OrderID)
		if o, ok := orders[op.OrderID]; ok {
			orderID = Bold(o.DisplayID())
		}

		secName := Dim("--")
		if sec, ok := sections[op.SectionID]; ok {
			secName = StyleBlue.Render(sec.Name)
		}

		rows = append(rows, []string{
			orderID,
			StyleFg.Render(op.Name),
			secName,
			TimeWindow(op.ScheduledStartAt, op.ScheduledEndAt),
			StatusPill(op.Status),
			FormatQty(op.CompletedQty, op.Quantity),
		})
	}

	title := fmt.Sprintf("Tasks for %s", w.FullName)
	return RenderBox(title, RenderTable(headers, rows))
}
