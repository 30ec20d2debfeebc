package main

import (
	"context"

	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the access matrix to an Excel workbook",
		RunE: runWithApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			if err := a.Export.ExportMatrix(ctx, output); err != nil {
				return err
			}
			return writeJSONLine(map[string]any{"status": "exported", "path": output})
		}),
	}
	cmd.Flags().StringVar(&output, "output", "access-matrix.xlsx", "Output workbook path")
	return cmd
}
