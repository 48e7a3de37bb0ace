package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marketcrew/mc-cli/internal/application"
)

func newLoginCmd(app *app) *cobra.Command {
	var email string
	var password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := app.sessions.Login(cmd.Context(), application.LoginCommand{
				Email:    email,
				Password: password,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", result.Session.Email)
			if result.Profile != nil && result.Profile.BrandName != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Brand profile on file: %s\n", result.Profile.BrandName)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newRegisterCmd(app *app) *cobra.Command {
	var email string
	var password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account (does not sign in)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := app.sessions.Register(cmd.Context(), application.RegisterCommand{
				Email:    email,
				Password: password,
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Account created. Run `mc login` to sign in.")
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.sessions.Logout(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
			return nil
		},
	}
}

func newWhoamiCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := app.sessions.Restore(cmd.Context())
			if err != nil {
				return err
			}
			if !session.IsLoggedIn() {
				return fmt.Errorf("not signed in; run `mc login`")
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s (signed in %s)\n", session.Email, session.CreatedAt.Format("2006-01-02 15:04"))
			return nil
		},
	}
}
