package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/vkravets/tsekh/internal/cli/formatter"
	"github.com/vkravets/tsekh/internal/domain"
)

func newOrderCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Manage production orders",
	}

	cmd.AddCommand(
		newOrderAddCmd(app),
		newOrderListCmd(app),
		newOrderInspectCmd(app),
		newOrderUpdateCmd(app),
		newOrderRemoveCmd(app),
	)

	return cmd
}

func newOrderAddCmd(app *App) *cobra.Command {
	var number, customer, product, article, start, ship, comment string
	var qty int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new order",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Offer the form when the required flags were not given
			// and we are on a terminal.
			if number == "" && product == "" && app.interactive() {
				if err := runOrderForm(&number, &customer, &product, &qty, &ship); err != nil {
					return err
				}
			}

			o := &domain.Order{
				OrderNumber:  number,
				CustomerName: customer,
				ProductName:  product,
				Article:      article,
				Quantity:     qty,
				Comment:      comment,
			}

			if start != "" {
				d, err := time.Parse("2006-01-02", start)
				if err != nil {
					return fmt.Errorf("invalid start date %q: %w", start, err)
				}
				o.StartDate = &d
			}
			if ship != "" {
				d, err := time.Parse("2006-01-02", ship)
				if err != nil {
					return fmt.Errorf("invalid ship date %q: %w", ship, err)
				}
				o.ShipDate = &d
			}

			if err := app.Orders.Create(context.Background(), o); err != nil {
				return err
			}

			fmt.Printf("Created order %s (%s x%d)\n", o.DisplayID(), o.ProductName, o.Quantity)
			return nil
		},
	}

	cmd.Flags().StringVar(&number, "number", "", "Order number (e.g. ORD-0042)")
	cmd.Flags().StringVar(&customer, "customer", "", "Customer name")
	cmd.Flags().StringVar(&product, "product", "", "Product name")
	cmd.Flags().StringVar(&article, "article", "", "Product article")
	cmd.Flags().IntVar(&qty, "qty", 0, "Quantity of units")
	cmd.Flags().StringVar(&start, "start", "", "Production start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&ship, "ship", "", "Ship date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&comment, "comment", "", "Free-form comment")

	return cmd
}

func newOrderListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List orders with their current location",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			orders, err := app.Orders.List(ctx)
			if err != nil {
				return err
			}
			if len(orders) == 0 {
				fmt.Println("No orders found.")
				return nil
			}

			locations := make(map[string]domain.OrderLocation, len(orders))
			for _, o := range orders {
				loc, err := app.Location.CurrentLocation(ctx, o.ID)
				if err != nil {
					return err
				}
				locations[o.ID] = loc
			}

			fmt.Printf("%s\n", formatter.FormatOrderList(orders, locations))
			return nil
		},
	}
}

func newOrderInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect ORDER",
		Short: "Show an order with its operation route",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			id, err := resolveOrderID(ctx, app, args[0])
			if err != nil {
				return err
			}
			o, err := app.Orders.GetByID(ctx, id)
			if err != nil {
				return err
			}
			ops, err := app.Operations.ListByOrder(ctx, id)
			if err != nil {
				return err
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

func newOrderUpdateCmd(app *App) *cobra.Command {
	var customer, product, article, ship, comment string
	var qty int

	cmd := &cobra.Command{
		Use:   "update ORDER",
		Short: "Update order fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if !anyFlagChanged(cmd.Flags(), "customer", "product", "article", "qty", "ship", "comment") {
				return fmt.Errorf("nothing to update: pass at least one field flag")
			}

			id, err := resolveOrderID(ctx, app, args[0])
			if err != nil {
				return err
			}
			o, err := app.Orders.GetByID(ctx, id)
			if err != nil {
				return err
			}

			o.CustomerName = domain.CoalesceStr(customer, o.CustomerName)
			o.ProductName = domain.CoalesceStr(product, o.ProductName)
			o.Article = domain.CoalesceStr(article, o.Article)
			o.Comment = domain.CoalesceStr(comment, o.Comment)
			o.Quantity = domain.IntFromPtrWithDefault(o.Quantity, intFlagPtr(cmd.Flags(), "qty", &qty))
			if ship != "" {
				d, err := time.Parse("2006-01-02", ship)
				if err != nil {
					return fmt.Errorf("invalid ship date %q: %w", ship, err)
				}
				o.ShipDate = &d
			}

			if err := app.Orders.Update(ctx, o); err != nil {
				return err
			}

			fmt.Printf("Updated order %s\n", o.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&customer, "customer", "", "Customer name")
	cmd.Flags().StringVar(&product, "product", "", "Product name")
	cmd.Flags().StringVar(&article, "article", "", "Product article")
	cmd.Flags().IntVar(&qty, "qty", 0, "Quantity of units")
	cmd.Flags().StringVar(&ship, "ship", "", "Ship date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&comment, "comment", "", "Free-form comment")

	return cmd
}

func newOrderRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ORDER",
		Short: "Delete an order and its operations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			id, err := resolveOrderID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Orders.Delete(ctx, id); err != nil {
				return err
			}

			fmt.Println("Order removed.")
			return nil
		},
	}
}

// lookupMaps loads sections and workers keyed by ID for display joins.
func lookupMaps(ctx context.Context, app *App) (map[string]*domain.Section, map[string]*domain.Worker, error) {
	sections, err := app.Sections.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	secByID := make(map[string]*domain.Section, len(sections))
	for _, s := range sections {
		secByID[s.ID] = s
	}

	workers, err := app.Workers.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	workerByID := make(map[string]*domain.Worker, len(workers))
	for _, w := range workers {
		workerByID[w.ID] = w
	}

	return secByID, workerByID, nil
}

// parseQty parses a positive integer quantity from form input.
func parseQty(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("quantity must be a positive integer, got %q", s)
	}
	return n, nil
}
