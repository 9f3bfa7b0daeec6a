package cmd

import (
	"testing"

	"github.com/spf13/cobra"
)

// TestReportsSubcommands tests that all report views are registered
func TestReportsSubcommands(t *testing.T) {
	subcommands := map[string]bool{
		"monthly":    false,
		"categories": false,
		"dues":       false,
		"annual":     false,
		"export":     false,
	}

	for _, cmd := range reportsCmd.Commands() {
		if _, exists := subcommands[cmd.Name()]; exists {
			subcommands[cmd.Name()] = true
		}
	}

	for name, found := range subcommands {
		if !found {
			t.Errorf("subcommand '%s' not found in reports command", name)
		}
	}
}

// TestReportsExportFlags tests the export command's flags
func TestReportsExportFlags(t *testing.T) {
	var exportCmd *cobra.Command
	for _, cmd := range reportsCmd.Commands() {
		if cmd.Name() == "export" {
			exportCmd = cmd
			break
		}
	}

	if exportCmd == nil {
		t.Fatal("export subcommand not found")
	}

	for _, name := range []string{"format", "year", "output"} {
		if exportCmd.Flags().Lookup(name) == nil {
			t.Errorf("flag '%s' not found on reports export command", name)
		}
	}

	if exportCmd.Flags().Lookup("format").DefValue != "excel" {
		t.Error("export format should default to excel")
	}
}
