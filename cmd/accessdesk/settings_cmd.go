package main

import (
	"context"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Manage application settings",
	}
	cmd.AddCommand(newSettingsShowCmd())
	cmd.AddCommand(newSettingsCheckedOnlyCmd())
	return cmd
}

func newSettingsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		RunE: runWithApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			checkedOnly, err := a.Settings.GenerateCheckedOnly(ctx)
			if err != nil {
				return err
			}
			return writeJSONLine(map[string]any{"generate_checked_only": checkedOnly})
		}),
	}
}

func newSettingsCheckedOnlyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checked-only <true|false>",
		Short: "Toggle generating forms with assigned systems only",
		Args:  cobra.ExactArgs(1),
		RunE: runWithApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			enabled, err := strconv.ParseBool(args[0])
			if err != nil {
				return errors.Wrapf(errUsage, "invalid boolean %q", args[0])
			}
			return a.Settings.SetGenerateCheckedOnly(ctx, enabled)
		}),
	}
}
