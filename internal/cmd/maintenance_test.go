package cmd

import (
	"testing"

	"github.com/spf13/cobra"
)

// TestMaintenanceSubcommands tests that the billing command family is registered
func TestMaintenanceSubcommands(t *testing.T) {
	subcommands := map[string]bool{
		"generate":   false,
		"preview":    false,
		"bills":      false,
		"pay":        false,
		"payment":    false,
		"ledger":     false,
		"settings":   false,
		"schemes":    false,
		"collection": false,
	}

	for _, cmd := range maintenanceCmd.Commands() {
		if _, exists := subcommands[cmd.Name()]; exists {
			subcommands[cmd.Name()] = true
		}
	}

	for name, found := range subcommands {
		if !found {
			t.Errorf("subcommand '%s' not found in maintenance command", name)
		}
	}
}

// TestMaintenanceSettingsSubcommands tests the settings group
func TestMaintenanceSettingsSubcommands(t *testing.T) {
	found := false
	for _, cmd := range maintenanceSettingsCmd.Commands() {
		if cmd.Name() == "set" {
			found = true
		}
	}
	if !found {
		t.Error("subcommand 'set' not found in maintenance settings command")
	}

	for _, name := range []string{"rate", "cycle", "due-day", "late-fee", "late-fee-type", "discounts"} {
		if maintenanceSettingsSetCmd.Flags().Lookup(name) == nil {
			t.Errorf("flag '%s' not found on maintenance settings set command", name)
		}
	}
}

// TestMaintenanceSchemeSubcommands tests the schemes group
func TestMaintenanceSchemeSubcommands(t *testing.T) {
	subcommands := map[string]bool{
		"add":    false,
		"remove": false,
		"toggle": false,
	}

	for _, cmd := range maintenanceSchemesCmd.Commands() {
		if _, exists := subcommands[cmd.Name()]; exists {
			subcommands[cmd.Name()] = true
		}
	}

	for name, found := range subcommands {
		if !found {
			t.Errorf("subcommand '%s' not found in maintenance schemes command", name)
		}
	}
}

// TestMaintenancePaymentFlags tests that flat payments expose the full entry form
func TestMaintenancePaymentFlags(t *testing.T) {
	var paymentCmd *cobra.Command
	for _, cmd := range maintenanceCmd.Commands() {
		if cmd.Name() == "payment" {
			paymentCmd = cmd
			break
		}
	}

	if paymentCmd == nil {
		t.Fatal("payment subcommand not found")
	}

	for _, name := range []string{"flat", "bills", "amount", "mode", "date", "ref", "remarks", "annual", "scheme"} {
		if paymentCmd.Flags().Lookup(name) == nil {
			t.Errorf("flag '%s' not found on maintenance payment command", name)
		}
	}
}

// TestMaintenanceGenerateFlags tests both run modes of bill generation
func TestMaintenanceGenerateFlags(t *testing.T) {
	for _, name := range []string{"month", "year", "amount", "due", "late-fee", "period", "scheme", "yes"} {
		if maintenanceGenerateCmd.Flags().Lookup(name) == nil {
			t.Errorf("flag '%s' not found on maintenance generate command", name)
		}
	}
}
