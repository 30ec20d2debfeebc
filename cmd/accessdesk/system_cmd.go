package main

import (
	"context"

	"github.com/spf13/cobra"
)

func newSystemCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "system",
		Short: "Manage systems in the catalog",
	}
	cmd.AddCommand(newSystemListCmd())
	cmd.AddCommand(newSystemAddCmd())
	cmd.AddCommand(newSystemUpdateCmd())
	cmd.AddCommand(newSystemDeleteCmd())
	return cmd
}

func newSystemListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List systems in catalog order",
		RunE: runWithApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			systems, err := a.Systems.GetAll(ctx)
			if err != nil {
				return err
			}
			for _, s := range systems {
				err := writeJSONLine(map[string]any{
					"id":         s.ID(),
					"name":       s.Name(),
					"categoryId": s.CategoryID(),
				})
				if err != nil {
					return err
				}
			}
			return nil
		}),
	}
}

func newSystemAddCmd() *cobra.Command {
	var categoryID int
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a system",
		Args:  cobra.ExactArgs(1),
		RunE: runWithApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			created, err := a.Systems.Create(ctx, args[0], categoryID)
			if err != nil {
				return err
			}
			return writeJSONLine(map[string]any{
				"id":         created.ID(),
				"name":       created.Name(),
				"categoryId": created.CategoryID(),
			})
		}),
	}
	cmd.Flags().IntVar(&categoryID, "category", 0, "Category id (0 for uncategorized)")
	return cmd
}

func newSystemUpdateCmd() *cobra.Command {
	var categoryID int
	cmd := &cobra.Command{
		Use:   "update <id> <name>",
		Short: "Update a system's name and category",
		Args:  cobra.ExactArgs(2),
		RunE: runWithApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return a.Systems.Update(ctx, id, args[1], categoryID)
		}),
	}
	cmd.Flags().IntVar(&categoryID, "category", 0, "Category id (0 for uncategorized)")
	return cmd
}

func newSystemDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a system and clear its matrix assignments",
		Args:  cobra.ExactArgs(1),
		RunE: runWithApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return a.Systems.Delete(ctx, id)
		}),
	}
}
