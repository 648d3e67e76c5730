package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sulabook/sulabook/internal/core/ports"
)

func newRegisterCommand(app *App) *cobra.Command {
	var name, email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.sessions.Register(cmd.Context(), ports.RegisterInput{
				Name:     name,
				Email:    email,
				Password: password,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s! Signed in as %s (%s).\n", sess.Name, sess.Email, sess.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&password, "password", "", "password")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLoginCommand(app *App) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with email and password",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.sessions.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s (%s).\n", sess.Email, sess.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&password, "password", "", "password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.sessions.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
			return nil
		},
	}
}

func newWhoamiCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := app.sessions.Current()
			if sess == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Not signed in.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s <%s> (%s)\n", sess.Name, sess.Email, sess.Role)
			return nil
		},
	}
}

func newProfileCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage the signed-in profile",
	}
	cmd.AddCommand(newProfileUpdateCommand(app))
	return cmd
}

func newProfileUpdateCommand(app *App) *cobra.Command {
	var name, email string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update name and/or email",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.requireSession(); err != nil {
				return err
			}

			var patch ports.ProfilePatch
			if cmd.Flags().Changed("name") {
				patch.Name = &name
			}
			if cmd.Flags().Changed("email") {
				patch.Email = &email
			}

			sess, err := app.sessions.UpdateProfile(cmd.Context(), patch)
			if err != nil {
				return err
			}
			if sess == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing to update.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Profile updated: %s <%s>\n", sess.Name, sess.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new display name")
	cmd.Flags().StringVar(&email, "email", "", "new email address")

	return cmd
}
