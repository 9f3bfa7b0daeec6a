package cmd

import (
	"github.com/spf13/cobra"
)

// CommandContext holds the flag values shared by every command. Commands
// extract it in their RunE instead of reading package-level globals, so
// tests can run commands concurrently without flag interference.
type CommandContext struct {
	Format  string
	Verbose bool
	Home    string
	APIURL  string
}

// NewCommandContext extracts the persistent flags from a cobra command
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return nil, err
	}

	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return nil, err
	}

	home, err := cmd.Flags().GetString("home")
	if err != nil {
		return nil, err
	}

	apiURL, err := cmd.Flags().GetString("api-url")
	if err != nil {
		return nil, err
	}

	return &CommandContext{
		Format:  format,
		Verbose: verbose,
		Home:    home,
		APIURL:  apiURL,
	}, nil
}
