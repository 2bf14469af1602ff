package formatter

import (
	"fmt"
	"sort"
	"strings"
)

const boardBarWidth = 24

// FormatDistribution renders a horizontal bar chart of order counts per
// location. Section rows come first alphabetically, then Complete, then
// Unplanned.
func FormatDistribution(dist map[string]int) string {
	if len(dist) == 0 {
		return RenderBox("Floor", Dim("No orders."))
	}

	sections := make([]string, 0, len(dist))
	max := 0
	for name, n := range dist {
		if name != "Complete" && name != "Unplanned" {
			sections = append(sections, name)
		}
		if n > max {
			max = n
		}
	}
	sort.Strings(sections)

	ordered := sections
	if _, ok := dist["Complete"]; ok {
		ordered = append(ordered, "Complete")
	}
	if _, ok := dist["Unplanned"]; ok {
		ordered = append(ordered, "Unplanned")
	}

	width := 0
	for _, name := range ordered {
		if len(name) > width {
			width = len(name)
		}
	}

	var b strings.Builder
	for i, name := range ordered {
		n := dist[name]
		bar := barFor(n, max)

		style := StyleBlue
		switch name {
		case "Complete":
			style = StyleGreen
		case "Unplanned":
			style = StyleDim
		}

		b.WriteString(fmt.Sprintf("%-*s  %s %s",
			width, name,
			style.Render(bar),
			Bold(fmt.Sprintf("%d", n))))
		if i < len(ordered)-1 {
			b.WriteString("\n")
		}
	}

	return RenderBox("Floor", b.String())
}

func barFor(n, max int) string {
	if max <= 0 || n <= 0 {
		return ""
	}
	w := n * boardBarWidth / max
	if w < 1 {
		w = 1
	}
	return strings.Repeat("█", w)
}
