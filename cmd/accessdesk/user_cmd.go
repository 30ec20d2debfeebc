package main

import (
	"context"

	"github.com/spf13/cobra"

	catalogservices "github.com/grupo-altia/accessdesk/modules/catalog/services"
)

func newUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage application users",
	}
	cmd.AddCommand(newUserListCmd())
	cmd.AddCommand(newUserAddCmd())
	cmd.AddCommand(newUserUpdateCmd())
	cmd.AddCommand(newUserDeleteCmd())
	return cmd
}

func newUserListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List users",
		RunE: runWithApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			users, err := a.Users.GetAll(ctx)
			if err != nil {
				return err
			}
			for _, u := range users {
				err := writeJSONLine(map[string]any{
					"id":       u.ID(),
					"username": u.Username(),
					"name":     u.Name(),
					"role":     u.RoleID(),
					"active":   u.Active(),
				})
				if err != nil {
					return err
				}
			}
			return nil
		}),
	}
}

func newUserAddCmd() *cobra.Command {
	var data catalogservices.CreateUserDTO
	cmd := &cobra.Command{
		Use:   "add <username>",
		Short: "Create a user",
		Args:  cobra.ExactArgs(1),
		RunE: runWithApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			data.Username = args[0]
			created, err := a.Users.Create(ctx, data)
			if err != nil {
				return err
			}
			return writeJSONLine(map[string]any{"id": created.ID(), "username": created.Username()})
		}),
	}
	cmd.Flags().StringVar(&data.Password, "new-password", "", "Initial password (required)")
	cmd.Flags().StringVar(&data.Name, "name", "", "Display name (required)")
	cmd.Flags().StringVar(&data.RoleID, "role", "", "Role id (required)")
	cmd.Flags().BoolVar(&data.Active, "active", true, "Whether the account is active")
	_ = cmd.MarkFlagRequired("new-password")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("role")
	return cmd
}

func newUserUpdateCmd() *cobra.Command {
	var username, password, name, roleID string
	var active bool
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a user; only the given flags change",
		Args:  cobra.ExactArgs(1),
		RunE: runWithApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			var data catalogservices.UpdateUserDTO
			if cmd.Flags().Changed("username") {
				data.Username = &username
			}
			if cmd.Flags().Changed("new-password") {
				data.Password = &password
			}
			if cmd.Flags().Changed("name") {
				data.Name = &name
			}
			if cmd.Flags().Changed("role") {
				data.RoleID = &roleID
			}
			if cmd.Flags().Changed("active") {
				data.Active = &active
			}
			_, err = a.Users.Update(ctx, id, data)
			return err
		}),
	}
	cmd.Flags().StringVar(&username, "username", "", "New username")
	cmd.Flags().StringVar(&password, "new-password", "", "New password")
	cmd.Flags().StringVar(&name, "name", "", "New display name")
	cmd.Flags().StringVar(&roleID, "role", "", "New role id")
	cmd.Flags().BoolVar(&active, "active", true, "Whether the account is active")
	return cmd
}

func newUserDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a user",
		Args:  cobra.ExactArgs(1),
		RunE: runWithApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return a.Users.Delete(ctx, id)
		}),
	}
}
