package main

import (
	"context"

	"github.com/spf13/cobra"
)

func newMatrixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Manage position-to-system assignments",
	}
	cmd.AddCommand(newMatrixShowCmd())
	cmd.AddCommand(newMatrixSetCmd())
	cmd.AddCommand(newMatrixUnsetCmd())
	return cmd
}

func newMatrixShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [position-id]",
		Short: "Show assignments, optionally for a single position",
		Args:  cobra.MaximumNArgs(1),
		RunE: runWithApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				positionID, err := parseID(args[0])
				if err != nil {
					return err
				}
				ids, err := a.Matrix.SystemsForPosition(ctx, positionID)
				if err != nil {
					return err
				}
				return writeJSONLine(map[string]any{"position": positionID, "systems": ids})
			}
			assignments, err := a.Matrix.Assignments(ctx)
			if err != nil {
				return err
			}
			for positionID, ids := range assignments {
				if err := writeJSONLine(map[string]any{"position": positionID, "systems": ids}); err != nil {
					return err
				}
			}
			return nil
		}),
	}
}

func newMatrixSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <position-id> <system-id>",
		Short: "Assign a system to a position",
		Args:  cobra.ExactArgs(2),
		RunE:  runMatrixToggle(true),
	}
}

func newMatrixUnsetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unset <position-id> <system-id>",
		Short: "Remove a system from a position",
		Args:  cobra.ExactArgs(2),
		RunE:  runMatrixToggle(false),
	}
}

func runMatrixToggle(enabled bool) func(*cobra.Command, []string) error {
	return runWithApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
		positionID, err := parseID(args[0])
		if err != nil {
			return err
		}
		systemID, err := parseID(args[1])
		if err != nil {
			return err
		}
		return a.Matrix.SetSystemForPosition(ctx, positionID, systemID, enabled)
	})
}
