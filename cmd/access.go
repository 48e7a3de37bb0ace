package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marketcrew/mc-cli/internal/application"
)

func newRequestAccessCmd(app *app) *cobra.Command {
	var name string
	var email string
	var message string

	cmd := &cobra.Command{
		Use:   "request-access",
		Short: "Ask for an account on a MarketCrew backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := app.access.Request(cmd.Context(), application.AccessRequestCommand{
				Name:    name,
				Email:   email,
				Message: message,
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Access request submitted. You will hear back by email.")
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Your name")
	cmd.Flags().StringVar(&email, "email", "", "Contact email")
	cmd.Flags().StringVar(&message, "message", "", "Optional message for the operators")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}
