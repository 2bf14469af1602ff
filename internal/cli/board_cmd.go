package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/vkravets/tsekh/internal/cli/formatter"
)

func newBoardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Live view of order distribution across the floor",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			// Plain output for pipes and scripts.
			if !app.interactive() {
				dist, err := app.Location.Distribution(ctx)
				if err != nil {
					return err
				}
				fmt.Printf("%s\n", formatter.FormatDistribution(dist))
				return nil
			}

			m := newBoardModel(app)
			_, err := tea.NewProgram(m).Run()
			return err
		},
	}
}

// boardLoadedMsg signals that distribution data has been loaded.
type boardLoadedMsg struct {
	dist map[string]int
	err  error
}

type boardKeys struct {
	Refresh key.Binding
	Quit    key.Binding
}

var defaultBoardKeys = boardKeys{
	Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// boardModel is a minimal read-only bubbletea view over the floor
// distribution.
type boardModel struct {
	app     *App
	keys    boardKeys
	dist    map[string]int
	loading bool
	err     error
}

func newBoardModel(app *App) boardModel {
	return boardModel{
		app:     app,
		keys:    defaultBoardKeys,
		loading: true,
	}
}

func (m boardModel) loadData() tea.Cmd {
	return func() tea.Msg {
		dist, err := m.app.Location.Distribution(context.Background())
		return boardLoadedMsg{dist: dist, err: err}
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadData()
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case boardLoadedMsg:
		m.loading = false
		m.dist = msg.dist
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Refresh):
			m.loading = true
			return m, m.loadData()
		}
	}

	return m, nil
}

func (m boardModel) View() string {
	if m.loading {
		return formatter.Dim("Loading…") + "\n"
	}
	if m.err != nil {
		return formatter.StyleRed.Render(fmt.Sprintf("Error: %v", m.err)) + "\n"
	}

	help := lipgloss.JoinHorizontal(lipgloss.Top,
		formatter.Dim("r"), " ", formatter.Dim("refresh"), "   ",
		formatter.Dim("q"), " ", formatter.Dim("quit"))

	return formatter.FormatDistribution(m.dist) + "\n" + help + "\n"
}
