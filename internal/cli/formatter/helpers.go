package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}

	return boxStyle.Render(content)
}

// HumanDate returns a human-friendly absolute date string.
func HumanDate(t time.Time) string {
	now := time.Now()
	y1, m1, d1 := now.Date()
	y2, m2, d2 := t.Date()

	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "Today"
	}
	return t.Format("Jan 2, 2006")
}

// ClockTime formats a scheduled timestamp as a compact date-and-time string.
func ClockTime(t time.Time) string {
	return t.Format("Jan 2 15:04")
}

// TimeWindow renders a scheduled interval, or a dimmed placeholder when the
// endpoints are missing.
func TimeWindow(start, end *time.Time) string {
	if start == nil || end == nil {
		return Dim("--")
	}
	return fmt.Sprintf("%s %s %s",
		StyleFg.Render(ClockTime(*start)),
		Dim("→"),
		StyleFg.Render(ClockTime(*end)))
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// FormatMinutes converts raw minutes into human-friendly format.
func FormatMinutes(min int) string {
	if min <= 0 {
		return "0m"
	}
	h := min / 60
	m := min % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}

// FormatQty renders completed progress against a target quantity.
func FormatQty(done, total int) string {
	if total <= 0 {
		return Dim("--")
	}
	text := fmt.Sprintf("%d/%d", done, total)
	if done >= total {
		return StyleGreen.Render(text)
	}
	if done > 0 {
		return StyleYellow.Render(text)
	}
	return StyleFg.Render(text)
}
