package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vkravets/tsekh/internal/cli/formatter"
	"github.com/vkravets/tsekh/internal/domain"
)

func newScheduleCmd(app *App) *cobra.Command {
	var assign bool

	cmd := &cobra.Command{
		Use:   "schedule ORDER",
		Short: "Compute the timeline for an order's route",
		Long: `Compute start and end times for every operation of an order.

Operations run back to back from the order's start date (or now). With
--assign, each operation also gets a free qualified worker from its
section; operations nobody can take keep their previous assignment.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			orderID, err := resolveOrderID(ctx, app, args[0])
			if err != nil {
				return err
			}

			if err := app.Schedule.ScheduleOrder(ctx, orderID, assign); err != nil {
				return err
			}

			o, err := app.Orders.GetByID(ctx, orderID)
			if err != nil {
				return err
			}
			ops, err := app.Operations.ListByOrder(ctx, orderID)
			if err != nil {
				return err
			}
			if len(ops) == 0 {
				fmt.Println("Nothing to schedule: the order has no operations.")
				return nil
			}

			sections, workers, err := lookupMaps(ctx, app)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatPlan(o, ops, sections, workers))
			return nil
		},
	}

	cmd.Flags().BoolVar(&assign, "assign", false, "Also assign free qualified workers")

	return cmd
}

func newWhereCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "where ORDER",
		Short: "Show where an order currently sits on the floor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			orderID, err := resolveOrderID(ctx, app, args[0])
			if err != nil {
				return err
			}

			loc, err := app.Location.CurrentLocation(ctx, orderID)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.LocationPill(loc))
			return nil
		},
	}
}

func newTasksCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tasks WORKER",
		Short: "List a worker's assigned operations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			workerID, err := resolveWorkerID(ctx, app, args[0])
			if err != nil {
				return err
			}
			w, err := app.Workers.GetByID(ctx, workerID)
			if err != nil {
				return err
			}

			ops, err := app.Operations.ListWorkerTasks(ctx, workerID)
			if err != nil {
				return err
			}
			if len(ops) == 0 {
				fmt.Printf("No tasks assigned to %s.\n", w.FullName)
				return nil
			}

			orders, err := app.Orders.List(ctx)
			if err != nil {
				return err
			}
			orderByID := make(map[string]*domain.Order, len(orders))
			for _, o := range orders {
				orderByID[o.ID] = o
			}

			sections, _, err := lookupMaps(ctx, app)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatWorkerTasks(w, ops, orderByID, sections))
			return nil
		},
	}
}
