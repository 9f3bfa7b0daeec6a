package cmd

import (
	"fmt"

	"github.com/socfin/societyctl/internal/api"
	"github.com/socfin/societyctl/internal/capability"
	"github.com/socfin/societyctl/internal/tui"
	"github.com/socfin/societyctl/internal/ux"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var societyCmd = &cobra.Command{
	Use:   "society",
	Short: "Manage society memberships and selection",
	Long:  `List your societies, create one, switch the active society and edit its details.`,
}

// societyListCmd lists memberships and marks the active selection
var societyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List societies you belong to",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmdCtx, err := NewCommandContext(cmd)
		if err != nil {
			return err
		}
		app, err := newApp(cmdCtx)
		if err != nil {
			return err
		}
		if err := requireUser(app); err != nil {
			return err
		}

		if err := app.Society.Refresh(cmd.Context()); err != nil {
			return err
		}
		societies := app.Society.Societies()

		if done, err := printStructured(cmdCtx, societies); done || err != nil {
			return err
		}

		if len(societies) == 0 {
			fmt.Println("You are not a member of any society yet.")
			fmt.Println("Use 'societyctl society create' to start one.")
			return nil
		}

		current := app.Society.Current()
		table := ux.NewTable("", "ID", "NAME", "ROLE", "FLATS")
		for _, soc := range societies {
			marker := ""
			if current != nil && current.ID == soc.ID {
				marker = "*"
			}
			table.AddRow(marker, soc.ID, soc.Name, soc.Role, soc.TotalFlats)
		}
		return renderTable(table)
	},
}

// societyCreateCmd creates a society; the caller becomes its manager
var societyCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new society",
	Long: `Create a new society. You become its manager.

Examples:
  societyctl society create --name "Green Acres" --address "12 Hill Rd" --flats 24
  societyctl society create --name "Green Acres" --address "12 Hill Rd" --flats 24 --approval-threshold 10000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmdCtx, err := NewCommandContext(cmd)
		if err != nil {
			return err
		}
		app, err := newApp(cmdCtx)
		if err != nil {
			return err
		}
		if err := requireUser(app); err != nil {
			return err
		}

		name, _ := cmd.Flags().GetString("name")
		address, _ := cmd.Flags().GetString("address")
		flats, _ := cmd.Flags().GetInt("flats")
		description, _ := cmd.Flags().GetString("description")
		threshold, _ := cmd.Flags().GetString("approval-threshold")

		if name == "" {
			return fmt.Errorf("--name is required")
		}
		if address == "" {
			return fmt.Errorf("--address is required")
		}
		if flats <= 0 {
			return fmt.Errorf("--flats must be positive")
		}

		req := api.CreateSocietyRequest{
			Name:        name,
			Address:     address,
			TotalFlats:  flats,
			Description: description,
		}
		if threshold != "" {
			amount, err := decimal.NewFromString(threshold)
			if err != nil {
				return fmt.Errorf("invalid --approval-threshold: %w", err)
			}
			req.ApprovalThreshold = amount
		}

		detail, err := app.Client.CreateSociety(cmd.Context(), req)
		if err != nil {
			return err
		}

		// Pick up the new membership so the selection can land on it
		if err := app.Society.Refresh(cmd.Context()); err != nil {
			return err
		}
		for _, soc := range app.Society.Societies() {
			if soc.ID == detail.ID {
				app.Society.Select(soc)
				break
			}
		}

		fmt.Printf("Created society %s (%s)\n", detail.Name, detail.ID)
		return nil
	},
}

// societySwitchCmd changes the active society. Without an argument it
// prompts with the membership list.
var societySwitchCmd = &cobra.Command{
	Use:   "switch [society-id]",
	Short: "Switch the active society",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmdCtx, err := NewCommandContext(cmd)
		if err != nil {
			return err
		}
		app, err := newApp(cmdCtx)
		if err != nil {
			return err
		}
		if err := requireUser(app); err != nil {
			return err
		}

		if err := app.Society.Refresh(cmd.Context()); err != nil {
			return err
		}
		societies := app.Society.Societies()

		var target string
		if len(args) == 1 {
			target = args[0]
		} else {
			if len(societies) == 0 {
				return fmt.Errorf("you are not a member of any society")
			}
			options := make([]string, len(societies))
			for i, soc := range societies {
				options[i] = soc.ID
			}
			target, err = tui.PromptForSelect("Select a society", options)
			if err != nil {
				return err
			}
		}

		for _, soc := range societies {
			if soc.ID == target || soc.Name == target {
				app.Society.Select(soc)
				fmt.Printf("Switched to %s (%s)\n", soc.Name, soc.Role)
				return nil
			}
		}
		return fmt.Errorf("no membership in society %q", target)
	},
}

// societyShowCmd shows the full record of the active society
var societyShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active society's details",
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

		detail, err := app.Client.GetSociety(cmd.Context(), soc.ID)
		if err != nil {
			return err
		}

		if done, err := printStructured(cmdCtx, detail); done || err != nil {
			return err
		}

		fmt.Printf("Name:        %s\n", detail.Name)
		fmt.Printf("Address:     %s\n", detail.Address)
		fmt.Printf("Flats:       %d\n", detail.TotalFlats)
		fmt.Printf("Your role:   %s\n", soc.Role)
		fmt.Printf("Approval threshold: %s\n", detail.ApprovalThreshold.StringFixed(2))
		if detail.Description != "" {
			fmt.Printf("Description: %s\n", detail.Description)
		}
		return nil
	},
}

// societyUpdateCmd edits the active society; manager only
var societyUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update the active society (manager only)",
	Long: `Update details of the active society. Only flags you pass are changed.

Examples:
  societyctl society update --approval-threshold 15000
  societyctl society update --name "Green Acres Phase II" --flats 36`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmdCtx, err := NewCommandContext(cmd)
		if err != nil {
			return err
		}
		app, err := newApp(cmdCtx)
		if err != nil {
			return err
		}
		soc, err := requireCapability(app, capability.ManageSociety, "update the society")
		if err != nil {
			return err
		}

		var req api.UpdateSocietyRequest
		changed := false
		if cmd.Flags().Changed("name") {
			name, _ := cmd.Flags().GetString("name")
			req.Name = &name
			changed = true
		}
		if cmd.Flags().Changed("address") {
			address, _ := cmd.Flags().GetString("address")
			req.Address = &address
			changed = true
		}
		if cmd.Flags().Changed("flats") {
			flats, _ := cmd.Flags().GetInt("flats")
			req.TotalFlats = &flats
			changed = true
		}
		if cmd.Flags().Changed("description") {
			description, _ := cmd.Flags().GetString("description")
			req.Description = &description
			changed = true
		}
		if cmd.Flags().Changed("approval-threshold") {
			raw, _ := cmd.Flags().GetString("approval-threshold")
			amount, err := decimal.NewFromString(raw)
			if err != nil {
				return fmt.Errorf("invalid --approval-threshold: %w", err)
			}
			req.ApprovalThreshold = &amount
			changed = true
		}
		if !changed {
			return fmt.Errorf("nothing to update; pass at least one flag")
		}

		detail, err := app.Client.UpdateSociety(cmd.Context(), soc.ID, req)
		if err != nil {
			return err
		}

		fmt.Printf("Updated society %s\n", detail.Name)
		return nil
	},
}

func init() {
	societyCreateCmd.Flags().String("name", "", "society name")
	societyCreateCmd.Flags().String("address", "", "society address")
	societyCreateCmd.Flags().Int("flats", 0, "total number of flats")
	societyCreateCmd.Flags().String("description", "", "description")
	societyCreateCmd.Flags().String("approval-threshold", "", "outward amount above which approval is required")

	societyUpdateCmd.Flags().String("name", "", "society name")
	societyUpdateCmd.Flags().String("address", "", "society address")
	societyUpdateCmd.Flags().Int("flats", 0, "total number of flats")
	societyUpdateCmd.Flags().String("description", "", "description")
	societyUpdateCmd.Flags().String("approval-threshold", "", "outward amount above which approval is required")

	societyCmd.AddCommand(societyListCmd)
	societyCmd.AddCommand(societyCreateCmd)
	societyCmd.AddCommand(societySwitchCmd)
	societyCmd.AddCommand(societyShowCmd)
	societyCmd.AddCommand(societyUpdateCmd)
	rootCmd.AddCommand(societyCmd)
}
