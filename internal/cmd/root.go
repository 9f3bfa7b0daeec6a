package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "societyctl",
	Short: "Housing society finance from the terminal",
	Long: `societyctl is a terminal client for housing society financial management.
It talks to a society backend to track members, flats, maintenance bills,
transactions, expense approvals and reports, with role-based access for
managers, committee members, auditors and regular members.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with a cancellable context
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringP("format", "f", "text", "output format (text, json, yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().String("home", "", "config directory (default $HOME/.societyctl)")
	rootCmd.PersistentFlags().String("api-url", "", "backend API URL (overrides config and SOCIETYCTL_API_URL)")
}
