package cmd

import (
	"fmt"

	"github.com/socfin/societyctl/internal/api"
	"github.com/socfin/societyctl/internal/capability"
	"github.com/socfin/societyctl/internal/ux"

	"github.com/spf13/cobra"
)

var membersCmd = &cobra.Command{
	Use:   "members",
	Short: "Manage society members and flat assignments",
}

// membersListCmd lists the society's memberships
var membersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List members of the active society",
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

		members, err := app.Client.ListMembers(cmd.Context(), soc.ID)
		if err != nil {
			return err
		}

		if done, err := printStructured(cmdCtx, members); done || err != nil {
			return err
		}

		if len(members) == 0 {
			fmt.Println("No members found.")
			return nil
		}

		table := ux.NewTable("ID", "NAME", "EMAIL", "ROLE", "STATUS")
		for _, member := range members {
			table.AddRow(member.ID, member.UserName, member.UserEmail, member.Role, member.Status)
		}
		return renderTable(table)
	},
}

// membersAddCmd adds an existing user to the society by email; manager only
var membersAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a member by email (manager only)",
	Long: `Add an existing registered user to the active society.

Examples:
  societyctl members add --email ravi@example.com --role member
  societyctl members add --email uma@example.com --role committee`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmdCtx, err := NewCommandContext(cmd)
		if err != nil {
			return err
		}
		app, err := newApp(cmdCtx)
		if err != nil {
			return err
		}
		soc, err := requireCapability(app, capability.ManageMembers, "add members")
		if err != nil {
			return err
		}

		email, _ := cmd.Flags().GetString("email")
		role, _ := cmd.Flags().GetString("role")

		if email == "" {
			return fmt.Errorf("--email is required")
		}
		if role == "" {
			role = api.RoleMember
		}

		member, err := app.Client.AddMember(cmd.Context(), soc.ID, api.AddMemberRequest{
			Email: email,
			Role:  role,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Added %s as %s\n", member.UserName, member.Role)
		return nil
	},
}

// membersUpdateCmd changes a membership's role or status; manager only
var membersUpdateCmd = &cobra.Command{
	Use:   "update <membership-id>",
	Short: "Change a member's role or status (manager only)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmdCtx, err := NewCommandContext(cmd)
		if err != nil {
			return err
		}
		app, err := newApp(cmdCtx)
		if err != nil {
			return err
		}
		soc, err := requireCapability(app, capability.ManageMembers, "update members")
		if err != nil {
			return err
		}

		role, _ := cmd.Flags().GetString("role")
		status, _ := cmd.Flags().GetString("status")
		if role == "" && status == "" {
			return fmt.Errorf("pass --role or --status")
		}

		if err := app.Client.UpdateMembership(cmd.Context(), soc.ID, args[0], role, status); err != nil {
			return err
		}

		fmt.Printf("Updated membership %s\n", args[0])
		return nil
	},
}

var membersFlatCmd = &cobra.Command{
	Use:   "flat",
	Short: "Manage flat occupants",
}

// membersFlatListCmd lists a flat's occupants
var membersFlatListCmd = &cobra.Command{
	Use:   "list <flat-id>",
	Short: "List a flat's occupants",
	Args:  cobra.ExactArgs(1),
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

		occupants, err := app.Client.ListFlatMembers(cmd.Context(), soc.ID, args[0])
		if err != nil {
			return err
		}

		if done, err := printStructured(cmdCtx, occupants); done || err != nil {
			return err
		}

		if len(occupants) == 0 {
			fmt.Println("No occupants assigned.")
			return nil
		}

		table := ux.NewTable("ID", "NAME", "EMAIL", "RELATION", "PRIMARY")
		for _, occ := range occupants {
			table.AddRow(occ.ID, occ.UserName, occ.UserEmail, occ.RelationType, occ.IsPrimary)
		}
		return renderTable(table)
	},
}

// membersFlatAddCmd assigns a user to a flat; manager only
var membersFlatAddCmd = &cobra.Command{
	Use:   "add <flat-id>",
	Short: "Assign a user to a flat (manager only)",
	Long: `Assign a registered user to a flat as owner or tenant.

Examples:
  societyctl members flat add flat-7 --user user-12 --relation owner --primary`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmdCtx, err := NewCommandContext(cmd)
		if err != nil {
			return err
		}
		app, err := newApp(cmdCtx)
		if err != nil {
			return err
		}
		soc, err := requireCapability(app, capability.ManageMembers, "assign flat occupants")
		if err != nil {
			return err
		}

		userID, _ := cmd.Flags().GetString("user")
		relation, _ := cmd.Flags().GetString("relation")
		primary, _ := cmd.Flags().GetBool("primary")

		if userID == "" {
			return fmt.Errorf("--user is required")
		}
		if relation == "" {
			relation = "owner"
		}

		occ, err := app.Client.AddFlatMember(cmd.Context(), soc.ID, args[0], api.AddFlatMemberRequest{
			UserID:       userID,
			RelationType: relation,
			IsPrimary:    primary,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Assigned %s to flat as %s\n", occ.UserName, occ.RelationType)
		return nil
	},
}

// membersFlatRemoveCmd removes an occupant; manager only
var membersFlatRemoveCmd = &cobra.Command{
	Use:   "remove <flat-id> <flat-member-id>",
	Short: "Remove a flat occupant (manager only)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmdCtx, err := NewCommandContext(cmd)
		if err != nil {
			return err
		}
		app, err := newApp(cmdCtx)
		if err != nil {
			return err
		}
		soc, err := requireCapability(app, capability.ManageMembers, "remove flat occupants")
		if err != nil {
			return err
		}

		if err := app.Client.RemoveFlatMember(cmd.Context(), soc.ID, args[0], args[1]); err != nil {
			return err
		}

		fmt.Println("Removed flat occupant.")
		return nil
	},
}

func init() {
	membersAddCmd.Flags().String("email", "", "email of the registered user to add")
	membersAddCmd.Flags().String("role", "", "membership role (manager, committee, auditor, member)")

	membersUpdateCmd.Flags().String("role", "", "new role")
	membersUpdateCmd.Flags().String("status", "", "new status (active, inactive)")

	membersFlatAddCmd.Flags().String("user", "", "user ID to assign")
	membersFlatAddCmd.Flags().String("relation", "", "relation type (owner, tenant)")
	membersFlatAddCmd.Flags().Bool("primary", false, "mark as the flat's primary contact")

	membersFlatCmd.AddCommand(membersFlatListCmd)
	membersFlatCmd.AddCommand(membersFlatAddCmd)
	membersFlatCmd.AddCommand(membersFlatRemoveCmd)

	membersCmd.AddCommand(membersListCmd)
	membersCmd.AddCommand(membersAddCmd)
	membersCmd.AddCommand(membersUpdateCmd)
	membersCmd.AddCommand(membersFlatCmd)
	rootCmd.AddCommand(membersCmd)
}
