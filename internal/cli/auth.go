package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osokin/teachdesk/internal/service"
)

func newRegisterCommand(app *App) *cobra.Command {
	var email, password, name string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.Auth.Register(cmd.Context(), service.RegisterParams{
				Email:    email,
				Password: password,
				Name:     name,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(app.Out, "registered %s (%s)\n", user.Name, user.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	cmd.MarkFlagRequired("name")

	return cmd
}

func newLoginCommand(app *App) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with an existing account",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.Auth.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}

			fmt.Fprintf(app.Out, "logged in as %s (%s)\n", user.Name, user.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the active session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Auth.Logout(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintln(app.Out, "logged out")
			return nil
		},
	}
}

func newWhoamiCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the active session user",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.requireUser(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(app.Out, "%s (%s)\n", user.Name, user.Email)
			return nil
		},
	}
}
