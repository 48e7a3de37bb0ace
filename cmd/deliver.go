package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marketcrew/mc-cli/internal/application"
)

func newDeliverCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deliver",
		Short: "Deliver previously generated content",
	}

	cmd.AddCommand(
		newDeliverDownloadCmd(app),
		newDeliverEmailCmd(app),
	)

	return cmd
}

func newDeliverDownloadCmd(app *app) *cobra.Command {
	var brand string
	var outPath string

	cmd := &cobra.Command{
		Use:   "download",
		Short: "Download the rendered content bundle for a brand",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := app.sessions.Restore(cmd.Context())
			if err != nil {
				return err
			}
			if !session.IsLoggedIn() {
				return fmt.Errorf("not signed in; run `mc login`")
			}

			path := outPath
			if path == "" {
				path = defaultDownloadPath(brand)
			}

			if err := downloadToFile(cmd.Context(), app, session, brand, path); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&brand, "brand", "", "Brand name the bundle was generated for")
	cmd.Flags().StringVar(&outPath, "out", "", "Target path (default: <brand>-content.txt)")
	_ = cmd.MarkFlagRequired("brand")

	return cmd
}

func newDeliverEmailCmd(app *app) *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "email",
		Short: "Email the latest generated content to an address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := app.sessions.Restore(cmd.Context())
			if err != nil {
				return err
			}
			if !session.IsLoggedIn() {
				return fmt.Errorf("not signed in; run `mc login`")
			}

			// The backend holds the account's latest generation, so a
			// standalone send does not require local content.
			err = app.delivery.Email(cmd.Context(), session, application.EmailCommand{
				To:               to,
				ContentAvailable: true,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Content emailed to %s\n", to)
			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "Recipient email address")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func defaultDownloadPath(brandName string) string {
	slug := strings.ReplaceAll(strings.TrimSpace(brandName), " ", "-")
	return fmt.Sprintf("%s-content.txt", slug)
}
