package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vkravets/tsekh/internal/cli/formatter"
	"github.com/vkravets/tsekh/internal/domain"
)

func newWorkerCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "worker",
		Short: "Manage workers",
	}

	cmd.AddCommand(
		newWorkerAddCmd(app),
		newWorkerListCmd(app),
		newWorkerUpdateCmd(app),
		newWorkerRemoveCmd(app),
	)

	return cmd
}

func newWorkerAddCmd(app *App) *cobra.Command {
	var name, sectionArg, caps string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new worker",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			w := &domain.Worker{
				FullName:       name,
				OperationTypes: splitLabels(caps),
			}

			if sectionArg != "" {
				sectionID, err := resolveSectionID(ctx, app, sectionArg)
				if err != nil {
					return err
				}
				w.SectionID = &sectionID
			}

			if err := app.Workers.Create(ctx, w); err != nil {
				return err
			}

			fmt.Printf("Created worker %s\n", w.FullName)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Full name")
	cmd.Flags().StringVar(&sectionArg, "section", "", "Home section name or ID")
	cmd.Flags().StringVar(&caps, "can", "", "Comma-separated capability labels")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newWorkerListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List workers",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			workers, err := app.Workers.List(ctx)
			if err != nil {
				return err
			}
			if len(workers) == 0 {
				fmt.Println("No workers found.")
				return nil
			}

			sections, _, err := lookupMaps(ctx, app)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatWorkerList(workers, sections))
			return nil
		},
	}
}

func newWorkerUpdateCmd(app *App) *cobra.Command {
	var name, sectionArg, caps string

	cmd := &cobra.Command{
		Use:   "update WORKER",
		Short: "Update worker fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if !anyFlagChanged(cmd.Flags(), "name", "section", "can") {
				return fmt.Errorf("nothing to update: pass at least one field flag")
			}

			id, err := resolveWorkerID(ctx, app, args[0])
			if err != nil {
				return err
			}
			w, err := app.Workers.GetByID(ctx, id)
			if err != nil {
				return err
			}

			w.FullName = domain.CoalesceStr(name, w.FullName)
			if sectionArg != "" {
				sectionID, err := resolveSectionID(ctx, app, sectionArg)
				if err != nil {
					return err
				}
				w.SectionID = &sectionID
			}
			if caps != "" {
				w.OperationTypes = splitLabels(caps)
			}

			if err := app.Workers.Update(ctx, w); err != nil {
				return err
			}

			fmt.Printf("Updated worker %s\n", w.FullName)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Full name")
	cmd.Flags().StringVar(&sectionArg, "section", "", "Home section name or ID")
	cmd.Flags().StringVar(&caps, "can", "", "Comma-separated capability labels (replaces existing)")

	return cmd
}

func newWorkerRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove WORKER",
		Short: "Delete a worker",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			id, err := resolveWorkerID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Workers.Delete(ctx, id); err != nil {
				return err
			}

			fmt.Println("Worker removed.")
			return nil
		},
	}
}
