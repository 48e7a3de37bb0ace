package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/marketcrew/mc-cli/internal/adapters/studio"
)

func newStudioCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "studio",
		Short: "Open the interactive content studio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := app.sessions.Restore(cmd.Context())
			if err != nil {
				return err
			}

			// Diagnostics go to a file while the terminal is owned by the
			// studio.
			logFile, err := openStudioLog()
			if err != nil {
				return err
			}
			defer logFile.Close()
			app.logger.SetOutput(logFile)

			model := studio.New(studio.Services{
				Sessions:     app.sessions,
				Orchestrator: app.orchestrator,
				Delivery:     app.delivery,
			}, session)

			p := tea.NewProgram(
				model,
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
			)

			_, err = p.Run()
			return err
		},
	}
}

func openStudioLog() (*os.File, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	path := envOrDefault("MC_LOG_FILE", filepath.Join(homeDir, ".marketcrew", "mc.log"))
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	return f, nil
}
