package cmd

import (
	"fmt"
	"strings"

	"github.com/socfin/societyctl/internal/api"
	"github.com/socfin/societyctl/internal/capability"
	"github.com/socfin/societyctl/internal/ux"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var txCmd = &cobra.Command{
	Use:   "tx",
	Short: "Record and inspect society transactions",
}

// txListCmd lists transactions with optional filters
var txListCmd = &cobra.Command{
	Use:   "list",
	Short: "List transactions of the active society",
	Long: `List transactions of the active society, newest first.

Examples:
  societyctl tx list
  societyctl tx list --type outward --category Repairs
  societyctl tx list --page 2 --limit 50`,
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

		txType, _ := cmd.Flags().GetString("type")
		category, _ := cmd.Flags().GetString("category")
		page, _ := cmd.Flags().GetInt("page")
		limit, _ := cmd.Flags().GetInt("limit")

		if txType != "" && txType != api.TxnInward && txType != api.TxnOutward {
			return fmt.Errorf("--type must be %q or %q", api.TxnInward, api.TxnOutward)
		}

		filter := api.TransactionFilter{Type: txType, Category: category, Page: page, Limit: limit}
		txns, err := app.Client.ListTransactions(cmd.Context(), soc.ID, filter)
		if err != nil {
			return err
		}

		if done, err := printStructured(cmdCtx, txns); done || err != nil {
			return err
		}

		if len(txns) == 0 {
			fmt.Println("No transactions found.")
			return nil
		}

		table := ux.NewTable("ID", "DATE", "TYPE", "CATEGORY", "AMOUNT", "STATUS", "BY")
		for _, txn := range txns {
			table.AddRow(txn.ID, txn.Date, txn.Type, txn.Category,
				txn.Amount.StringFixed(2), txn.ApprovalStatus, txn.CreatedByName)
		}
		if err := renderTable(table); err != nil {
			return err
		}

		if total, err := app.Client.CountTransactions(cmd.Context(), soc.ID, filter); err == nil && total > len(txns) {
			fmt.Printf("Showing %d of %d. Use --page and --limit for more.\n", len(txns), total)
		}
		return nil
	},
}

// txAddCmd records a transaction; manager only. Outward amounts at or above
// the society's approval threshold come back pending.
var txAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a transaction (manager only)",
	Long: `Record an inward or outward transaction. Outward amounts at or above
the society's approval threshold are created in pending state and need
committee or manager approval before they count.

Examples:
  societyctl tx add --type inward --category "Maintenance Collection" --amount 5000
  societyctl tx add --type outward --category Repairs --amount 12000 --vendor "Apex Plumbing" --mode upi`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmdCtx, err := NewCommandContext(cmd)
		if err != nil {
			return err
		}
		app, err := newApp(cmdCtx)
		if err != nil {
			return err
		}
		soc, err := requireCapability(app, capability.AddTransaction, "record transactions")
		if err != nil {
			return err
		}

		txType, _ := cmd.Flags().GetString("type")
		category, _ := cmd.Flags().GetString("category")
		rawAmount, _ := cmd.Flags().GetString("amount")
		description, _ := cmd.Flags().GetString("description")
		vendor, _ := cmd.Flags().GetString("vendor")
		mode, _ := cmd.Flags().GetString("mode")
		date, _ := cmd.Flags().GetString("date")

		if txType != api.TxnInward && txType != api.TxnOutward {
			return fmt.Errorf("--type must be %q or %q", api.TxnInward, api.TxnOutward)
		}
		if category == "" {
			return fmt.Errorf("--category is required")
		}
		amount, err := decimal.NewFromString(rawAmount)
		if err != nil {
			return fmt.Errorf("invalid --amount: %w", err)
		}
		if amount.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("--amount must be positive")
		}

		txn, err := app.Client.CreateTransaction(cmd.Context(), soc.ID, api.CreateTransactionRequest{
			Type:        txType,
			Category:    category,
			Amount:      amount,
			Description: description,
			VendorName:  vendor,
			PaymentMode: mode,
			Date:        date,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Recorded %s transaction %s for %s\n", txn.Type, txn.ID, txn.Amount.StringFixed(2))
		if txn.ApprovalStatus == "pending" {
			fmt.Println("This transaction needs approval before it takes effect.")
		}
		return nil
	},
}

// txShowCmd shows one transaction
var txShowCmd = &cobra.Command{
	Use:   "show <transaction-id>",
	Short: "Show a transaction",
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

		txn, err := app.Client.GetTransaction(cmd.Context(), soc.ID, args[0])
		if err != nil {
			return err
		}

		if done, err := printStructured(cmdCtx, txn); done || err != nil {
			return err
		}

		fmt.Printf("ID:          %s\n", txn.ID)
		fmt.Printf("Date:        %s\n", txn.Date)
		fmt.Printf("Type:        %s\n", txn.Type)
		fmt.Printf("Category:    %s\n", txn.Category)
		fmt.Printf("Amount:      %s\n", txn.Amount.StringFixed(2))
		fmt.Printf("Status:      %s\n", txn.ApprovalStatus)
		if txn.VendorName != "" {
			fmt.Printf("Vendor:      %s\n", txn.VendorName)
		}
		if txn.PaymentMode != "" {
			fmt.Printf("Payment:     %s\n", txn.PaymentMode)
		}
		if txn.Description != "" {
			fmt.Printf("Description: %s\n", txn.Description)
		}
		fmt.Printf("Recorded by: %s\n", txn.CreatedByName)
		return nil
	},
}

// txCategoriesCmd lists the backend's transaction categories
var txCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List transaction categories",
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

		categories, err := app.Client.GetCategories(cmd.Context(), soc.ID)
		if err != nil {
			return err
		}

		if done, err := printStructured(cmdCtx, categories); done || err != nil {
			return err
		}

		fmt.Printf("Inward:  %s\n", strings.Join(categories.Inward, ", "))
		fmt.Printf("Outward: %s\n", strings.Join(categories.Outward, ", "))
		return nil
	},
}

func init() {
	txListCmd.Flags().String("type", "", "filter by type (inward, outward)")
	txListCmd.Flags().String("category", "", "filter by category")
	txListCmd.Flags().Int("page", 1, "page number")
	txListCmd.Flags().Int("limit", 20, "page size")

	txAddCmd.Flags().String("type", "", "transaction type (inward, outward)")
	txAddCmd.Flags().String("category", "", "transaction category")
	txAddCmd.Flags().String("amount", "", "amount")
	txAddCmd.Flags().String("description", "", "description")
	txAddCmd.Flags().String("vendor", "", "vendor name (outward)")
	txAddCmd.Flags().String("mode", "", "payment mode (cash, cheque, upi, bank_transfer)")
	txAddCmd.Flags().String("date", "", "transaction date (YYYY-MM-DD, default today)")

	txCmd.AddCommand(txListCmd)
	txCmd.AddCommand(txAddCmd)
	txCmd.AddCommand(txShowCmd)
	txCmd.AddCommand(txCategoriesCmd)
	rootCmd.AddCommand(txCmd)
}
