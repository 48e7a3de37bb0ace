package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "mc",
		Short:         "MarketCrew CLI (mc): generate and deliver AI marketing content",
		Long:          "mc (MarketCrew CLI) signs in to a MarketCrew backend, generates a full set of marketing artifacts for your brand, and delivers the result by download or email, from the terminal or an interactive studio.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(app),
		newRegisterCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newGenerateCmd(app),
		newDeliverCmd(app),
		newRequestAccessCmd(app),
		newStudioCmd(app),
	)

	return rootCmd
}
