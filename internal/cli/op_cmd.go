package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vkravets/tsekh/internal/cli/formatter"
	"github.com/vkravets/tsekh/internal/domain"
)

func newOpCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "op",
		Short: "Manage order operations",
	}

	cmd.AddCommand(
		newOpAddCmd(app),
		newOpListCmd(app),
		newOpUpdateCmd(app),
		newOpStatusCmd(app),
		newOpProgressCmd(app),
		newOpRemoveCmd(app),
	)

	return cmd
}

func newOpAddCmd(app *App) *cobra.Command {
	var orderArg, sectionArg, name string
	var sortOrder, qty int
	var norm float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an operation to an order's route",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			orderID, err := resolveOrderID(ctx, app, orderArg)
			if err != nil {
				return err
			}
			sectionID, err := resolveSectionID(ctx, app, sectionArg)
			if err != nil {
				return err
			}

			if qty == 0 {
				// Default to the order quantity; most operations
				// process the full batch.
				o, err := app.Orders.GetByID(ctx, orderID)
				if err != nil {
					return err
				}
				qty = o.Quantity
			}

			if sortOrder == 0 {
				ops, err := app.Operations.ListByOrder(ctx, orderID)
				if err != nil {
					return err
				}
				for _, existing := range ops {
					if existing.SortOrder >= sortOrder {
						sortOrder = existing.SortOrder + 1
					}
				}
				if sortOrder == 0 {
					sortOrder = 1
				}
			}

			op := &domain.Operation{
				OrderID:        orderID,
				SectionID:      sectionID,
				Name:           name,
				SortOrder:      sortOrder,
				Quantity:       qty,
				NormPerUnitMin: norm,
			}
			if err := app.Operations.Create(ctx, op); err != nil {
				return err
			}

			fmt.Printf("Added operation %q (#%d)\n", op.Name, op.SortOrder)
			return nil
		},
	}

	cmd.Flags().StringVar(&orderArg, "order", "", "Order number or ID")
	cmd.Flags().StringVar(&sectionArg, "section", "", "Section name or ID")
	cmd.Flags().StringVar(&name, "name", "", "Operation name")
	cmd.Flags().IntVar(&sortOrder, "seq", 0, "Position in the route (default: append)")
	cmd.Flags().IntVar(&qty, "qty", 0, "Units to process (default: order quantity)")
	cmd.Flags().Float64Var(&norm, "norm", 0, "Minutes per unit (0 means unknown)")
	_ = cmd.MarkFlagRequired("order")
	_ = cmd.MarkFlagRequired("section")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newOpListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list ORDER",
		Short: "List an order's operations in route order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			orderID, err := resolveOrderID(ctx, app, args[0])
			if err != nil {
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
				fmt.Println("No operations on this order.")
				return nil
			}

			sections, workers, err := lookupMaps(ctx, app)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatOrderInspect(o, ops, sections, workers))
			return nil
		},
	}
}

func newOpUpdateCmd(app *App) *cobra.Command {
	var sectionArg, name string
	var sortOrder, qty int
	var norm float64

	cmd := &cobra.Command{
		Use:   "update OP_ID",
		Short: "Update operation fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if !anyFlagChanged(cmd.Flags(), "section", "name", "seq", "qty", "norm") {
				return fmt.Errorf("nothing to update: pass at least one field flag")
			}

			op, err := app.Operations.GetByID(ctx, args[0])
			if err != nil {
				return err
			}

			if sectionArg != "" {
				sectionID, err := resolveSectionID(ctx, app, sectionArg)
				if err != nil {
					return err
				}
				op.SectionID = sectionID
			}
			op.Name = domain.CoalesceStr(name, op.Name)
			op.SortOrder = domain.IntFromPtrWithDefault(op.SortOrder, intFlagPtr(cmd.Flags(), "seq", &sortOrder))
			op.Quantity = domain.IntFromPtrWithDefault(op.Quantity, intFlagPtr(cmd.Flags(), "qty", &qty))
			op.NormPerUnitMin = domain.Float64FromPtrWithDefault(op.NormPerUnitMin, float64FlagPtr(cmd.Flags(), "norm", &norm))

			if err := app.Operations.Update(ctx, op); err != nil {
				return err
			}

			fmt.Printf("Updated operation %q\n", op.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&sectionArg, "section", "", "Section name or ID")
	cmd.Flags().StringVar(&name, "name", "", "Operation name")
	cmd.Flags().IntVar(&sortOrder, "seq", 0, "Position in the route")
	cmd.Flags().IntVar(&qty, "qty", 0, "Units to process")
	cmd.Flags().Float64Var(&norm, "norm", 0, "Minutes per unit")

	return cmd
}

func newOpProgressCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "progress OP_ID QTY",
		Short: "Record completed units without changing status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			n, err := parseQty(args[1])
			if err != nil {
				return err
			}

			op, err := app.Operations.GetByID(ctx, args[0])
			if err != nil {
				return err
			}
			op.CompletedQty = n

			if err := app.Operations.Update(ctx, op); err != nil {
				return err
			}

			fmt.Printf("Recorded %d/%d units on %q\n", op.CompletedQty, op.Quantity, op.Name)
			return nil
		},
	}
}

func newOpStatusCmd(app *App) *cobra.Command {
	var done int

	cmd := &cobra.Command{
		Use:   "status OP_ID STATUS",
		Short: "Move an operation through its status flow",
		Long: `Move an operation to a new status.

Valid statuses: not_started, in_progress, paused, done, problem.
Work starts before it finishes: not_started goes to in_progress, which can
pause or complete. Problem can be flagged from any status.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			status := domain.OperationStatus(args[1])
			if !domain.ValidOperationStatuses[args[1]] {
				return fmt.Errorf("unknown status %q", args[1])
			}

			if err := app.Operations.SetStatus(ctx, args[0], status, done); err != nil {
				return err
			}

			fmt.Printf("Operation moved to %s\n", status)
			return nil
		},
	}

	cmd.Flags().IntVar(&done, "done", -1, "Completed quantity recorded with the change")

	return cmd
}

func newOpRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove OP_ID",
		Short: "Delete an operation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Operations.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Operation removed.")
			return nil
		},
	}
}
