package formatter

import (
	"fmt"
	"strings"

	"github.com/vkravets/tsekh/internal/domain"
)

// FormatSectionList renders the section catalog.
func FormatSectionList(sections []*domain.Section, workerCounts map[string]int) string {
	headers := []string{"NAME", "CAPACITY", "LABELS", "WORKERS"}
	rows := make([][]string, 0, len(sections))

	for _, s := range sections {
		labels := Dim("--")
		if len(s.OperationTypes) > 0 {
			labels = StylePurple.Render(strings.Join(s.OperationTypes, ", "))
		}

		rows = append(rows, []string{
			Bold(s.Name),
			StyleFg.Render(FormatMinutes(s.CapacityMinutes)),
			labels,
			fmt.Sprintf("%d", workerCounts[s.ID]),
		})
	}

	return RenderBox("Sections", RenderTable(headers, rows))
}

// FormatWorkerList renders the worker roster.
func FormatWorkerList(workers []*domain.Worker, sections map[string]*domain.Section) string {
	headers := []string{"NAME", "SECTION", "CAPABILITIES"}
	rows := make([][]string, 0, len(workers))

	for _, w := range workers {
		secName := Dim("--")
		if w.SectionID != nil {
			if sec, ok := sections[*w.SectionID]; ok {
				secName = StyleBlue.Render(sec.Name)
			} else {
				secName = TruncID(*w.SectionID)
			}
		}

		caps := Dim("--")
		if len(w.OperationTypes) > 0 {
			caps = StylePurple.Render(strings.Join(w.OperationTypes, ", "))
		}

		rows = append(rows, []string{
			Bold(w.FullName),
			secName,
			caps,
		})
	}

	return RenderBox("Workers", RenderTable(headers, rows))
}
