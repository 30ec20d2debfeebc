package main

import (
	"context"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newCategoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage system categories",
	}
	cmd.AddCommand(newCategoryListCmd())
	cmd.AddCommand(newCategoryAddCmd())
	cmd.AddCommand(newCategoryRenameCmd())
	cmd.AddCommand(newCategoryDeleteCmd())
	return cmd
}

func newCategoryListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories",
		RunE: runWithApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			categories, err := a.Categories.GetAll(ctx)
			if err != nil {
				return err
			}
			for _, c := range categories {
				if err := writeJSONLine(map[string]any{"id": c.ID(), "name": c.Name()}); err != nil {
					return err
				}
			}
			return nil
		}),
	}
}

func newCategoryAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Create a category",
		Args:  cobra.ExactArgs(1),
		RunE: runWithApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			created, err := a.Categories.Create(ctx, args[0])
			if err != nil {
				return err
			}
			return writeJSONLine(map[string]any{"id": created.ID(), "name": created.Name()})
		}),
	}
}

func newCategoryRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <id> <name>",
		Short: "Rename a category",
		Args:  cobra.ExactArgs(2),
		RunE: runWithApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return a.Categories.Update(ctx, id, args[1])
		}),
	}
}

func newCategoryDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a category (fails while systems reference it)",
		Args:  cobra.ExactArgs(1),
		RunE: runWithApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return a.Categories.Delete(ctx, id)
		}),
	}
}

func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.Wrapf(errUsage, "invalid id %q", raw)
	}
	return id, nil
}
