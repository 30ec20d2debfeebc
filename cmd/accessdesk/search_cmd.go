package main

import (
	"context"

	"github.com/spf13/cobra"
)

func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Fuzzy-search systems, categories, positions and users by name",
		Args:  cobra.ExactArgs(1),
		RunE: runWithApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			result, err := a.Search.Search(ctx, args[0])
			if err != nil {
				return err
			}
			for _, s := range result.Systems {
				if err := writeJSONLine(map[string]any{"kind": "system", "id": s.ID(), "name": s.Name()}); err != nil {
					return err
				}
			}
			for _, c := range result.Categories {
				if err := writeJSONLine(map[string]any{"kind": "category", "id": c.ID(), "name": c.Name()}); err != nil {
					return err
				}
			}
			for _, hit := range result.Positions {
				err := writeJSONLine(map[string]any{
					"kind":       "position",
					"id":         hit.Position.ID(),
					"name":       hit.Position.Name(),
					"department": hit.Department.Name(),
				})
				if err != nil {
					return err
				}
			}
			for _, u := range result.Users {
				if err := writeJSONLine(map[string]any{"kind": "user", "id": u.ID(), "name": u.Username()}); err != nil {
					return err
				}
			}
			return nil
		}),
	}
}
