package main

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/grupo-altia/accessdesk/modules/catalog/domain/permission"
	catalogservices "github.com/grupo-altia/accessdesk/modules/catalog/services"
)

func newRoleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "role",
		Short: "Manage roles and their permission grids",
	}
	cmd.AddCommand(newRoleListCmd())
	cmd.AddCommand(newRoleShowCmd())
	cmd.AddCommand(newRoleAddCmd())
	cmd.AddCommand(newRoleGrantCmd())
	cmd.AddCommand(newRoleRevokeCmd())
	cmd.AddCommand(newRoleDeleteCmd())
	return cmd
}

func newRoleListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List roles",
		RunE: runWithApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			roles, err := a.Roles.GetAll(ctx)
			if err != nil {
				return err
			}
			for _, r := range roles {
				err := writeJSONLine(map[string]any{
					"id":          r.ID(),
					"name":        r.Name(),
					"description": r.Description(),
				})
				if err != nil {
					return err
				}
			}
			return nil
		}),
	}
}

func newRoleShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a role including its permission grid",
		Args:  cobra.ExactArgs(1),
		RunE: runWithApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			r, err := a.Roles.GetByID(ctx, args[0])
			if err != nil {
				return err
			}
			return writeJSONLine(map[string]any{
				"id":          r.ID(),
				"name":        r.Name(),
				"description": r.Description(),
				"permissions": r.Permissions(),
			})
		}),
	}
}

func newRoleAddCmd() *cobra.Command {
	var description string
	var grants []string
	cmd := &cobra.Command{
		Use:   "add <id> <name>",
		Short: "Create a role",
		Args:  cobra.ExactArgs(2),
		RunE: runWithApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			grid := permission.Grid{}
			for _, g := range grants {
				resource, action, err := parseGrant(g)
				if err != nil {
					return err
				}
				grid.Set(resource, action, true)
			}
			created, err := a.Roles.Create(ctx, args[0], args[1], description, grid)
			if err != nil {
				return err
			}
			return writeJSONLine(map[string]any{"id": created.ID(), "name": created.Name()})
		}),
	}
	cmd.Flags().StringVar(&description, "description", "", "Role description")
	cmd.Flags().StringArrayVar(&grants, "grant", nil, "Permission cell to allow, as resource:action (repeatable)")
	return cmd
}

func newRoleGrantCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "grant <id> <resource:action>",
		Short: "Allow a permission cell on a role",
		Args:  cobra.ExactArgs(2),
		RunE: runWithApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			return setRoleCell(ctx, a, args[0], args[1], true)
		}),
	}
}

func newRoleRevokeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "revoke <id> <resource:action>",
		Short: "Deny a permission cell on a role",
		Args:  cobra.ExactArgs(2),
		RunE: runWithApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			return setRoleCell(ctx, a, args[0], args[1], false)
		}),
	}
}

func newRoleDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a role (fails while users hold it)",
		Args:  cobra.ExactArgs(1),
		RunE: runWithApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			return a.Roles.Delete(ctx, args[0])
		}),
	}
}

func setRoleCell(ctx context.Context, a *app, roleID, cell string, allowed bool) error {
	resource, action, err := parseGrant(cell)
	if err != nil {
		return err
	}
	r, err := a.Roles.GetByID(ctx, roleID)
	if err != nil {
		return err
	}
	grid := r.Permissions()
	grid.Set(resource, action, allowed)
	_, err = a.Roles.Update(ctx, roleID, catalogservices.RoleUpdateParams{Permissions: grid})
	return err
}

func parseGrant(raw string) (permission.Resource, permission.Action, error) {
	parts := strings.SplitN(raw, ":", 2)
	if len(parts) != 2 {
		return "", "", errors.Wrapf(errUsage, "invalid permission %q, expected resource:action", raw)
	}
	resource := permission.Resource(parts[0])
	action := permission.Action(parts[1])
	if !resource.IsValid() || !action.IsValid() {
		return "", "", errors.Wrapf(errUsage, "unknown permission %q", raw)
	}
	return resource, action, nil
}
