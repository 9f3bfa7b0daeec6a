package cmd

import (
	"os"

	"github.com/socfin/societyctl/internal/ux"
)

// printStructured writes data via the requested formatter and reports
// whether it did. Text format returns false so the command can render
// its human-readable view instead.
func printStructured(cmdCtx *CommandContext, data interface{}) (bool, error) {
	if cmdCtx.Format == "" || cmdCtx.Format == "text" {
		return false, nil
	}
	formatter, err := ux.NewFormatter(cmdCtx.Format, nil)
	if err != nil {
		return false, err
	}
	return true, formatter.Format(data)
}

// renderTable renders a table to stdout
func renderTable(t *ux.Table) error {
	return t.Render(os.Stdout)
}
