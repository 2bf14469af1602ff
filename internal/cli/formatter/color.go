package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vkravets/tsekh/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusPill returns a colored indicator for an operation status.
func StatusPill(status domain.OperationStatus) string {
	switch status {
	case domain.OperationNotStarted:
		return StyleBlue.Render("○ Not started")
	case domain.OperationInProgress:
		return StyleGreen.Render("● In progress")
	case domain.OperationPaused:
		return StyleYellow.Render("◐ Paused")
	case domain.OperationDone:
		return StyleDim.Render("✔ Done")
	case domain.OperationProblem:
		return StyleRed.Render("▲ Problem")
	default:
		return StyleDim.Render(string(status))
	}
}

// LocationPill returns a colored indicator for an order location.
func LocationPill(loc domain.OrderLocation) string {
	switch loc.Kind {
	case domain.LocationComplete:
		return StyleGreen.Render("✔ Complete")
	case domain.LocationUnplanned:
		return StyleDim.Render("○ Unplanned")
	default:
		name := loc.SectionName
		if name == "" {
			name = loc.SectionID
		}
		return StyleBlue.Render("● " + name)
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
