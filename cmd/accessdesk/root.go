package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/grupo-altia/accessdesk/pkg/composables"
)

const (
	exitOK        = 0
	exitErr       = 1
	exitUsage     = 3
	exitAuth      = 4
	exitForbidden = 5
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "accessdesk",
		Short:         "IT access entitlement manager",
		Long:          "Manages the system catalog, the position access matrix, roles and users, and generates onboarding and separation forms.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("user", "", "Username (defaults to $ACCESSDESK_USER)")
	cmd.PersistentFlags().String("password", "", "Password (defaults to $ACCESSDESK_PASSWORD)")

	cmd.AddCommand(newCategoryCmd())
	cmd.AddCommand(newSystemCmd())
	cmd.AddCommand(newRoleCmd())
	cmd.AddCommand(newUserCmd())
	cmd.AddCommand(newMatrixCmd())
	cmd.AddCommand(newSettingsCmd())
	cmd.AddCommand(newSearchCmd())
	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newExportCmd())
	return cmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, composables.ErrUnauthorized):
		return exitAuth
	case errors.Is(err, composables.ErrForbidden):
		return exitForbidden
	case errors.Is(err, errUsage):
		return exitUsage
	default:
		return exitErr
	}
}
