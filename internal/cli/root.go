package cli

import (
	"github.com/spf13/cobra"
	"github.com/vkravets/tsekh/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Orders     service.OrderService
	Operations service.OperationService
	Sections   service.SectionService
	Workers    service.WorkerService
	Schedule   service.ScheduleService
	Location   service.LocationService

	// IsInteractive reports whether stdin is a terminal; interactive
	// forms are only offered when it returns true.
	IsInteractive func() bool
}

func (app *App) interactive() bool {
	return app.IsInteractive != nil && app.IsInteractive()
}

// NewRootCmd creates the top-level "tsekh" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "tsekh",
		Short: "Factory production planner and worker dispatcher",
	}

	root.AddCommand(
		newOrderCmd(app),
		newOpCmd(app),
		newSectionCmd(app),
		newWorkerCmd(app),
		newScheduleCmd(app),
		newWhereCmd(app),
		newTasksCmd(app),
		newBoardCmd(app),
	)

	return root
}
