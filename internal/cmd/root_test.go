package cmd

import (
	"testing"
)

// TestTopLevelCommands tests that every command group is registered
func TestTopLevelCommands(t *testing.T) {
	expected := map[string]bool{
		"auth":          false,
		"society":       false,
		"dashboard":     false,
		"tx":            false,
		"flats":         false,
		"maintenance":   false,
		"approvals":     false,
		"reports":       false,
		"members":       false,
		"notifications": false,
		"ui":            false,
		"version":       false,
	}

	for _, cmd := range rootCmd.Commands() {
		if _, exists := expected[cmd.Name()]; exists {
			expected[cmd.Name()] = true
		}
	}

	for name, found := range expected {
		if !found {
			t.Errorf("command '%s' not registered on root", name)
		}
	}
}

// TestPersistentFlags tests the shared flag surface
func TestPersistentFlags(t *testing.T) {
	for _, name := range []string{"format", "verbose", "home", "api-url"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("persistent flag '%s' not found", name)
		}
	}
}
