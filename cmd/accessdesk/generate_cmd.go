package main

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	formservices "github.com/grupo-altia/accessdesk/modules/forms/services"
)

const flagDateLayout = "2006-01-02"

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate onboarding and separation forms",
	}
	cmd.AddCommand(newGenerateHireCmd())
	cmd.AddCommand(newGenerateDepartureCmd())
	return cmd
}

func newGenerateHireCmd() *cobra.Command {
	var (
		departmentID, positionID int
		onqUser, email           string
		date, kind               string
	)
	cmd := &cobra.Command{
		Use:   "hire <employee-name>",
		Short: "Generate the access request and the IT checklist",
		Args:  cobra.ExactArgs(1),
		RunE: runWithApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			input := formservices.GenerateHireInput{
				EmployeeName: args[0],
				DepartmentID: departmentID,
				PositionID:   positionID,
				OnQUser:      onqUser,
				Email:        email,
				DateKind:     formservices.DateKind(kind),
			}
			parsed, err := parseDateFlag(date)
			if err != nil {
				return err
			}
			input.Date = parsed

			paths, err := a.Generation.GenerateHireForms(ctx, input)
			if err != nil {
				return err
			}
			return writeJSONLine(map[string]any{"status": "generated", "paths": paths})
		}),
	}
	cmd.Flags().IntVar(&departmentID, "department", 0, "Department id (required)")
	cmd.Flags().IntVar(&positionID, "position", 0, "Position id (required)")
	cmd.Flags().StringVar(&onqUser, "onq-user", "", "OnQ / IDM login")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&date, "date", "", "Form date as YYYY-MM-DD (defaults to today)")
	cmd.Flags().StringVar(&kind, "date-kind", "", "Date label: ingreso or modificacion")
	_ = cmd.MarkFlagRequired("department")
	_ = cmd.MarkFlagRequired("position")
	return cmd
}

func newGenerateDepartureCmd() *cobra.Command {
	var (
		departmentID, positionID int
		onqUser, date            string
	)
	cmd := &cobra.Command{
		Use:   "departure <employee-name>",
		Short: "Generate the separation checklist",
		Args:  cobra.ExactArgs(1),
		RunE: runWithApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			input := formservices.GenerateDepartureInput{
				EmployeeName: args[0],
				DepartmentID: departmentID,
				PositionID:   positionID,
				OnQUser:      onqUser,
			}
			parsed, err := parseDateFlag(date)
			if err != nil {
				return err
			}
			input.Date = parsed

			path, err := a.Generation.GenerateDepartureForm(ctx, input)
			if err != nil {
				return err
			}
			return writeJSONLine(map[string]any{"status": "generated", "path": path})
		}),
	}
	cmd.Flags().IntVar(&departmentID, "department", 0, "Department id (required)")
	cmd.Flags().IntVar(&positionID, "position", 0, "Position id (required)")
	cmd.Flags().StringVar(&onqUser, "onq-user", "", "OnQ / IDM login")
	cmd.Flags().StringVar(&date, "date", "", "Termination date as YYYY-MM-DD")
	_ = cmd.MarkFlagRequired("department")
	_ = cmd.MarkFlagRequired("position")
	return cmd
}

func parseDateFlag(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(flagDateLayout, raw)
	if err != nil {
		return nil, errors.Wrapf(errUsage, "invalid date %q, expected YYYY-MM-DD", raw)
	}
	return &t, nil
}
