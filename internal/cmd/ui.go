package cmd

import (
	"github.com/socfin/societyctl/internal/tui"

	"github.com/spf13/cobra"
)

// uiCmd starts the interactive terminal interface
var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Open the interactive terminal interface",
	Long: `Open the full-screen terminal interface: dashboard, transactions,
bills, approvals and notifications in one place, gated by your role.
Starts at the login screen when no session is stored.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmdCtx, err := NewCommandContext(cmd)
		if err != nil {
			return err
		}
		app, err := newApp(cmdCtx)
		if err != nil {
			return err
		}

		return tui.Run(tui.Deps{
			Client:  app.Client,
			Session: app.Session,
			Society: app.Society,
			Logger:  app.Logger,
		})
	},
}

func init() {
	rootCmd.AddCommand(uiCmd)
}
