package formatter

import (
	"fmt"
	"strings"

	"github.com/vkravets/tsekh/internal/domain"
)

// FormatOrderList renders a styled order list inside a bordered box.
func FormatOrderList(orders []*domain.Order, locations map[string]domain.OrderLocation) string {
	headers := []string{"ORDER", "CUSTOMER", "PRODUCT", "QTY", "SHIP", "LOCATION"}
	rows := make([][]string, 0, len(orders))

	for _, o := range orders {
		ship := Dim("--")
		if o.ShipDate != nil {
			ship = StyleFg.Render(HumanDate(*o.ShipDate))
		}

		loc := Dim("--")
		if l, ok := locations[o.ID]; ok {
			loc = LocationPill(l)
		}

		rows = append(rows, []string{
			Bold(o.DisplayID()),
			StyleFg.Render(o.CustomerName),
			StyleFg.Render(o.ProductName),
			fmt.Sprintf("%d", o.Quantity),
			ship,
			loc,
		})
	}

	return RenderBox("Orders", RenderTable(headers, rows))
}

// FormatOrderInspect renders an order card with its operation route.
func FormatOrderInspect(o *domain.Order, ops []*domain.Operation, sections map[string]*domain.Section, workers map[string]*domain.Worker) string {
	var b strings.Builder

	b.WriteString(StyleBold.Render(o.ProductName) + "  " + Dim(o.DisplayID()) + "\n\n")
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("CUSTOMER"), StyleFg.Render(o.CustomerName)))
	if o.Article != "" {
		b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("ARTICLE "), StyleFg.Render(o.Article)))
	}
	b.WriteString(fmt.Sprintf("%s  %d\n", StyleDim.Render("QUANTITY"), o.Quantity))
	if o.StartDate != nil {
		b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("START   "), StyleFg.Render(HumanDate(*o.StartDate))))
	}
	if o.ShipDate != nil {
		b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("SHIP    "), StyleFg.Render(HumanDate(*o.ShipDate))))
	}
	if o.Comment != "" {
		b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("COMMENT "), Dim(o.Comment)))
	}

	if len(ops) > 0 {
		b.WriteString("\n" + Header("Route") + "\n")
		b.WriteString(formatRoute(ops, sections, workers))
	}

	return RenderBox("", b.String())
}

func formatRoute(ops []*domain.Operation, sections map[string]*domain.Section, workers map[string]*domain.Worker) string {
	headers := []string{"#", "OPERATION", "SECTION", "WORKER", "WINDOW", "STATUS", "QTY"}
	rows := make([][]string, 0, len(ops))

	for _, op := range ops {
		secName := Dim("--")
		if sec, ok := sections[op.SectionID]; ok {
			secName = StyleBlue.Render(sec.Name)
		}

		worker := Dim("--")
		if op.AssignedWorkerID != nil {
			if w, ok := workers[*op.AssignedWorkerID]; ok {
				worker = StyleFg.Render(w.FullName)
			} else {
				worker = TruncID(*op.AssignedWorkerID)
			}
		}

		rows = append(rows, []string{
			fmt.Sprintf("%d", op.SortOrder),
			Bold(op.Name),
			secName,
			worker,
			TimeWindow(op.ScheduledStartAt, op.ScheduledEndAt),
			StatusPill(op.Status),
			FormatQty(op.CompletedQty, op.Quantity),
		})
	}

	return RenderTable(headers, rows)
}
