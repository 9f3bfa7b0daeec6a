package cmd

import (
	"fmt"

	"github.com/socfin/societyctl/internal/api"
	"github.com/socfin/societyctl/internal/capability"
	"github.com/socfin/societyctl/internal/ux"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var flatsCmd = &cobra.Command{
	Use:   "flats",
	Short: "Manage the society's flats",
}

// flatsListCmd lists the active society's flats
var flatsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List flats of the active society",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmdCtx, err := NewCommandContext(cmd)
		if err != nil {
			return err
		}
		app, err := newApp(cmdCtx)
		if err != nil {
			return err
		}
		soc, err := requireSociety(app)
		if err != nil {
			return err
		}

		flats, err := app.Client.ListFlats(cmd.Context(), soc.ID)
		if err != nil {
			return err
		}

		if done, err := printStructured(cmdCtx, flats); done || err != nil {
			return err
		}

		if len(flats) == 0 {
			fmt.Println("No flats registered.")
			return nil
		}

		table := ux.NewTable("ID", "FLAT", "WING", "FLOOR", "TYPE", "AREA")
		for _, flat := range flats {
			table.AddRow(flat.ID, flat.FlatNumber, flat.Wing, flat.Floor,
				flat.FlatType, flat.AreaSqft.StringFixed(0))
		}
		return renderTable(table)
	},
}

// flatsAddCmd registers a flat; manager only
var flatsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a flat (manager only)",
	Long: `Register a flat in the active society.

Examples:
  societyctl flats add --number A-101 --wing A --floor 1 --type 2BHK --area 950`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmdCtx, err := NewCommandContext(cmd)
		if err != nil {
			return err
		}
		app, err := newApp(cmdCtx)
		if err != nil {
			return err
		}
		soc, err := requireCapability(app, capability.ManageSociety, "register flats")
		if err != nil {
			return err
		}

		number, _ := cmd.Flags().GetString("number")
		wing, _ := cmd.Flags().GetString("wing")
		floor, _ := cmd.Flags().GetInt("floor")
		flatType, _ := cmd.Flags().GetString("type")
		rawArea, _ := cmd.Flags().GetString("area")

		if number == "" {
			return fmt.Errorf("--number is required")
		}

		flat := api.Flat{
			FlatNumber: number,
			Wing:       wing,
			Floor:      floor,
			FlatType:   flatType,
		}
		if rawArea != "" {
			area, err := decimal.NewFromString(rawArea)
			if err != nil {
				return fmt.Errorf("invalid --area: %w", err)
			}
			flat.AreaSqft = area
		}

		created, err := app.Client.CreateFlat(cmd.Context(), soc.ID, flat)
		if err != nil {
			return err
		}

		fmt.Printf("Registered flat %s (%s)\n", created.FlatNumber, created.ID)
		return nil
	},
}

func init() {
	flatsAddCmd.Flags().String("number", "", "flat number")
	flatsAddCmd.Flags().String("wing", "", "wing")
	flatsAddCmd.Flags().Int("floor", 0, "floor")
	flatsAddCmd.Flags().String("type", "", "flat type (1BHK, 2BHK, 3BHK)")
	flatsAddCmd.Flags().String("area", "", "area in square feet")

	flatsCmd.AddCommand(flatsListCmd)
	flatsCmd.AddCommand(flatsAddCmd)
	rootCmd.AddCommand(flatsCmd)
}
