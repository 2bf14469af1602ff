package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vkravets/tsekh/internal/cli/formatter"
	"github.com/vkravets/tsekh/internal/domain"
)

func newSectionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "section",
		Short: "Manage production sections",
	}

	cmd.AddCommand(
		newSectionAddCmd(app),
		newSectionListCmd(app),
		newSectionUpdateCmd(app),
		newSectionRemoveCmd(app),
	)

	return cmd
}

func splitLabels(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	labels := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			labels = append(labels, trimmed)
		}
	}
	return labels
}

func newSectionAddCmd(app *App) *cobra.Command {
	var name, labels string
	var capacity int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new section",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := &domain.Section{
				Name:            name,
				CapacityMinutes: capacity,
				OperationTypes:  splitLabels(labels),
			}
			if err := app.Sections.Create(context.Background(), s); err != nil {
				return err
			}

			fmt.Printf("Created section %s\n", s.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Section name")
	cmd.Flags().IntVar(&capacity, "capacity", 8*60, "Daily capacity in minutes")
	cmd.Flags().StringVar(&labels, "labels", "", "Comma-separated operation type labels")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newSectionListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List sections",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			sections, err := app.Sections.List(ctx)
			if err != nil {
				return err
			}
			if len(sections) == 0 {
				fmt.Println("No sections found.")
				return nil
			}

			workers, err := app.Workers.List(ctx)
			if err != nil {
				return err
			}
			counts := make(map[string]int)
			for _, w := range workers {
				if w.SectionID != nil {
					counts[*w.SectionID]++
				}
			}

			fmt.Printf("%s\n", formatter.FormatSectionList(sections, counts))
			return nil
		},
	}
}

func newSectionUpdateCmd(app *App) *cobra.Command {
	var name, labels string
	var capacity int

	cmd := &cobra.Command{
		Use:   "update SECTION",
		Short: "Update section fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if !anyFlagChanged(cmd.Flags(), "name", "capacity", "labels") {
				return fmt.Errorf("nothing to update: pass at least one field flag")
			}

			id, err := resolveSectionID(ctx, app, args[0])
			if err != nil {
				return err
			}
			s, err := app.Sections.GetByID(ctx, id)
			if err != nil {
				return err
			}

			s.Name = domain.CoalesceStr(name, s.Name)
			if capacity > 0 {
				s.CapacityMinutes = capacity
			}
			if labels != "" {
				s.OperationTypes = splitLabels(labels)
			}

			if err := app.Sections.Update(ctx, s); err != nil {
				return err
			}

			fmt.Printf("Updated section %s\n", s.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Section name")
	cmd.Flags().IntVar(&capacity, "capacity", 0, "Daily capacity in minutes")
	cmd.Flags().StringVar(&labels, "labels", "", "Comma-separated operation type labels (replaces existing)")

	return cmd
}

func newSectionRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove SECTION",
		Short: "Delete a section",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			id, err := resolveSectionID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Sections.Delete(ctx, id); err != nil {
				return err
			}

			fmt.Println("Section removed.")
			return nil
		},
	}
}
