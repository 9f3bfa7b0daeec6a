package cmd

import (
	"fmt"

	"github.com/socfin/societyctl/internal/capability"
	"github.com/socfin/societyctl/internal/ux"

	"github.com/spf13/cobra"
)

var approvalsCmd = &cobra.Command{
	Use:   "approvals",
	Short: "Review pending expense approvals",
	Long:  `List, approve and reject outward transactions that crossed the society's approval threshold.`,
}

// approvalsListCmd lists approvals; committee and manager only
var approvalsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List expense approvals",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmdCtx, err := NewCommandContext(cmd)
		if err != nil {
			return err
		}
		app, err := newApp(cmdCtx)
		if err != nil {
			return err
		}
		soc, err := requireCapability(app, capability.ViewApprovals, "view approvals")
		if err != nil {
			return err
		}

		status, _ := cmd.Flags().GetString("status")
		approvals, err := app.Client.ListApprovals(cmd.Context(), soc.ID, status)
		if err != nil {
			return err
		}

		if done, err := printStructured(cmdCtx, approvals); done || err != nil {
			return err
		}

		if len(approvals) == 0 {
			fmt.Println("No approvals found.")
			return nil
		}

		table := ux.NewTable("ID", "AMOUNT", "CATEGORY", "REQUESTED BY", "STATUS")
		for _, approval := range approvals {
			amount, category := "", ""
			if approval.Transaction != nil {
				amount = approval.Transaction.Amount.StringFixed(2)
				category = approval.Transaction.Category
			}
			table.AddRow(approval.ID, amount, category, approval.RequestedByName, approval.Status)
		}
		return renderTable(table)
	},
}

// approvalsApproveCmd authorizes a pending expense
var approvalsApproveCmd = &cobra.Command{
	Use:   "approve <approval-id>",
	Short: "Approve a pending expense",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return decideApproval(cmd, args[0], true)
	},
}

// approvalsRejectCmd declines a pending expense
var approvalsRejectCmd = &cobra.Command{
	Use:   "reject <approval-id>",
	Short: "Reject a pending expense",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return decideApproval(cmd, args[0], false)
	},
}

func decideApproval(cmd *cobra.Command, approvalID string, approve bool) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	app, err := newApp(cmdCtx)
	if err != nil {
		return err
	}
	soc, err := requireCapability(app, capability.DecideApprovals, "decide approvals")
	if err != nil {
		return err
	}

	comments, _ := cmd.Flags().GetString("comments")

	if approve {
		if err := app.Client.ApproveExpense(cmd.Context(), soc.ID, approvalID, comments); err != nil {
			return err
		}
		fmt.Printf("Approved %s\n", approvalID)
		return nil
	}

	if err := app.Client.RejectExpense(cmd.Context(), soc.ID, approvalID, comments); err != nil {
		return err
	}
	fmt.Printf("Rejected %s\n", approvalID)
	return nil
}

func init() {
	approvalsListCmd.Flags().String("status", "", "filter by status (pending, approved, rejected)")
	approvalsApproveCmd.Flags().String("comments", "", "reviewer comments")
	approvalsRejectCmd.Flags().String("comments", "", "reviewer comments")

	approvalsCmd.AddCommand(approvalsListCmd)
	approvalsCmd.AddCommand(approvalsApproveCmd)
	approvalsCmd.AddCommand(approvalsRejectCmd)
	rootCmd.AddCommand(approvalsCmd)
}
