package cmd

import (
	"fmt"
	"time"

	"github.com/socfin/societyctl/internal/api"
	"github.com/socfin/societyctl/internal/capability"
	"github.com/socfin/societyctl/internal/tui"
	"github.com/socfin/societyctl/internal/ux"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var maintenanceCmd = &cobra.Command{
	Use:     "maintenance",
	Aliases: []string{"maint"},
	Short:   "Maintenance billing and payments",
}

// maintenanceGenerateCmd creates one bill per flat for a period; manager only.
// With --amount the bill is a fixed charge per flat; without it the backend
// bills rate-per-sqft from the society's maintenance settings.
var maintenanceGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate maintenance bills for a period (manager only)",
	Long: `Generate one maintenance bill per flat for a billing period. The backend
rejects a second generation for the same period.

With --amount every flat is charged the same fixed amount. Without it the
bills come from the society's rate settings (rate per sqft times each
flat's area); a yearly run may apply a discount scheme. Use
'maintenance preview' to project a settings-based run first.

Examples:
  societyctl maintenance generate --month 8 --year 2026 --amount 2500 --due 2026-09-10
  societyctl maintenance generate --month 8 --year 2026
  societyctl maintenance generate --period yearly --year 2026 --scheme sch-1`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmdCtx, err := NewCommandContext(cmd)
		if err != nil {
			return err
		}
		app, err := newApp(cmdCtx)
		if err != nil {
			return err
		}
		soc, err := requireCapability(app, capability.GenerateBills, "generate bills")
		if err != nil {
			return err
		}

		month, _ := cmd.Flags().GetInt("month")
		year, _ := cmd.Flags().GetInt("year")
		rawAmount, _ := cmd.Flags().GetString("amount")
		due, _ := cmd.Flags().GetString("due")
		rawLateFee, _ := cmd.Flags().GetString("late-fee")
		period, _ := cmd.Flags().GetString("period")
		scheme, _ := cmd.Flags().GetString("scheme")
		yes, _ := cmd.Flags().GetBool("yes")

		if year == 0 {
			return fmt.Errorf("--year is required")
		}
		if period == "monthly" && (month < 1 || month > 12) {
			return fmt.Errorf("--month must be between 1 and 12")
		}

		if !yes {
			label := fmt.Sprintf("%d/%d", month, year)
			if period == "yearly" {
				label = fmt.Sprintf("year %d", year)
			}
			confirmed, err := tui.PromptForConfirmation(
				fmt.Sprintf("Generate bills for all flats for %s?", label), false)
			if err != nil {
				return err
			}
			if !confirmed {
				fmt.Println("Cancelled.")
				return nil
			}
		}

		// Fixed-amount run against the flat-rate endpoint.
		if rawAmount != "" {
			amount, err := decimal.NewFromString(rawAmount)
			if err != nil {
				return fmt.Errorf("invalid --amount: %w", err)
			}
			if due == "" {
				return fmt.Errorf("--due is required (YYYY-MM-DD)")
			}

			req := api.GenerateBillsRequest{
				Month:         month,
				Year:          year,
				AmountPerFlat: amount,
				DueDate:       due,
			}
			if rawLateFee != "" {
				lateFee, err := decimal.NewFromString(rawLateFee)
				if err != nil {
					return fmt.Errorf("invalid --late-fee: %w", err)
				}
				req.LateFee = lateFee
			}

			result, err := app.Client.GenerateBills(cmd.Context(), soc.ID, req)
			if err != nil {
				return err
			}
			fmt.Printf("Generated %d bills for %d/%d\n", result.BillsCreated, month, year)
			return nil
		}

		req, err := billRunRequest(period, month, year, scheme)
		if err != nil {
			return err
		}
		result, err := app.Client.GenerateBillRun(cmd.Context(), soc.ID, *req)
		if err != nil {
			return err
		}
		fmt.Printf("Generated %d bills\n", result.BillsCreated)
		return nil
	},
}

// billRunRequest validates the period flags shared by preview and generate
func billRunRequest(period string, month, year int, scheme string) (*api.BillRunRequest, error) {
	if period != "monthly" && period != "yearly" {
		return nil, fmt.Errorf("--period must be monthly or yearly")
	}
	req := api.BillRunRequest{
		BillPeriodType: period,
		Year:           year,
	}
	if period == "monthly" {
		req.Month = month
	}
	if scheme != "" {
		if period != "yearly" {
			return nil, fmt.Errorf("--scheme applies to yearly runs only")
		}
		req.ApplyDiscountScheme = true
		req.DiscountSchemeID = scheme
	}
	return &req, nil
}

// maintenancePreviewCmd projects a settings-based bill run
var maintenancePreviewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview a bill run before generating (manager only)",
	Long: `Project a settings-based bill run: per-flat amounts, total collection and
the discount a yearly scheme would grant. Nothing is created.

Examples:
  societyctl maintenance preview --month 8 --year 2026
  societyctl maintenance preview --period yearly --year 2026 --scheme sch-1`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmdCtx, err := NewCommandContext(cmd)
		if err != nil {
			return err
		}
		app, err := newApp(cmdCtx)
		if err != nil {
			return err
		}
		soc, err := requireCapability(app, capability.GenerateBills, "preview bill runs")
		if err != nil {
			return err
		}

		month, _ := cmd.Flags().GetInt("month")
		year, _ := cmd.Flags().GetInt("year")
		period, _ := cmd.Flags().GetString("period")
		scheme, _ := cmd.Flags().GetString("scheme")

		if year == 0 {
			year = time.Now().Year()
		}
		if period == "monthly" && month == 0 {
			month = int(time.Now().Month())
		}

		req, err := billRunRequest(period, month, year, scheme)
		if err != nil {
			return err
		}
		preview, err := app.Client.PreviewBillRun(cmd.Context(), soc.ID, *req)
		if err != nil {
			return err
		}

		if done, err := printStructured(cmdCtx, preview); done || err != nil {
			return err
		}

		fmt.Printf("Flats:      %d (%s sqft)\n", preview.TotalFlats, preview.TotalAreaSqft.StringFixed(0))
		fmt.Printf("Billed:     %s\n", preview.TotalCollectionBeforeDiscount.StringFixed(2))
		if preview.EstimatedDiscount.IsPositive() {
			fmt.Printf("Discount:   -%s\n", preview.EstimatedDiscount.StringFixed(2))
		}
		fmt.Printf("Collection: %s\n", preview.TotalCollectionAfterDiscount.StringFixed(2))

		if len(preview.BillsPreview) == 0 {
			return nil
		}
		fmt.Println()
		table := ux.NewTable("FLAT", "WING", "AREA", "AMOUNT", "DISCOUNT", "PAYABLE", "PRIMARY MEMBER")
		for _, line := range preview.BillsPreview {
			table.AddRow(line.FlatNumber, line.Wing, line.AreaSqft.StringFixed(0),
				line.AmountBeforeDiscount.StringFixed(2), line.Discount.StringFixed(2),
				line.FinalAmount.StringFixed(2), line.PrimaryUser)
		}
		return renderTable(table)
	},
}

// maintenanceSettingsCmd shows the billing configuration
var maintenanceSettingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change maintenance billing settings",
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

		settings, err := app.Client.GetMaintenanceSettings(cmd.Context(), soc.ID)
		if err != nil {
			return err
		}

		if done, err := printStructured(cmdCtx, settings); done || err != nil {
			return err
		}

		fmt.Printf("Rate per sqft:    %s\n", settings.DefaultRatePerSqft.StringFixed(2))
		fmt.Printf("Billing cycle:    %s\n", settings.BillingCycle)
		fmt.Printf("Due day of month: %d\n", settings.DueDateDay)
		fmt.Printf("Late fee:         %s (%s)\n", settings.LateFeeAmount.StringFixed(2), settings.LateFeeType)
		fmt.Printf("Discount schemes: %s\n", enabledWord(settings.IsDiscountSchemeEnabled))
		return nil
	},
}

func enabledWord(on bool) string {
	if on {
		return "enabled"
	}
	return "disabled"
}

// maintenanceSettingsSetCmd changes billing settings field by field; the
// current settings are fetched first so omitted flags keep their value
var maintenanceSettingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change maintenance billing settings (manager only)",
	Long: `Change one or more billing settings. Unset flags keep their current value.

Examples:
  societyctl maintenance settings set --rate 5.50
  societyctl maintenance settings set --late-fee 100 --late-fee-type flat
  societyctl maintenance settings set --discounts=false`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmdCtx, err := NewCommandContext(cmd)
		if err != nil {
			return err
		}
		app, err := newApp(cmdCtx)
		if err != nil {
			return err
		}
		soc, err := requireCapability(app, capability.ManageBilling, "change billing settings")
		if err != nil {
			return err
		}

		settings, err := app.Client.GetMaintenanceSettings(cmd.Context(), soc.ID)
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("rate") {
			raw, _ := cmd.Flags().GetString("rate")
			rate, err := decimal.NewFromString(raw)
			if err != nil {
				return fmt.Errorf("invalid --rate: %w", err)
			}
			settings.DefaultRatePerSqft = rate
		}
		if cmd.Flags().Changed("cycle") {
			settings.BillingCycle, _ = cmd.Flags().GetString("cycle")
		}
		if cmd.Flags().Changed("due-day") {
			settings.DueDateDay, _ = cmd.Flags().GetInt("due-day")
			if settings.DueDateDay < 1 || settings.DueDateDay > 28 {
				return fmt.Errorf("--due-day must be between 1 and 28")
			}
		}
		if cmd.Flags().Changed("late-fee") {
			raw, _ := cmd.Flags().GetString("late-fee")
			fee, err := decimal.NewFromString(raw)
			if err != nil {
				return fmt.Errorf("invalid --late-fee: %w", err)
			}
			settings.LateFeeAmount = fee
		}
		if cmd.Flags().Changed("late-fee-type") {
			settings.LateFeeType, _ = cmd.Flags().GetString("late-fee-type")
			if settings.LateFeeType != "flat" && settings.LateFeeType != "percentage" {
				return fmt.Errorf("--late-fee-type must be flat or percentage")
			}
		}
		if cmd.Flags().Changed("discounts") {
			settings.IsDiscountSchemeEnabled, _ = cmd.Flags().GetBool("discounts")
		}

		if err := app.Client.UpdateMaintenanceSettings(cmd.Context(), soc.ID, *settings); err != nil {
			return err
		}
		fmt.Println("Settings saved.")
		return nil
	},
}

// maintenanceSchemesCmd lists discount schemes
var maintenanceSchemesCmd = &cobra.Command{
	Use:   "schemes",
	Short: "Manage annual payment discount schemes",
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

		schemes, err := app.Client.ListDiscountSchemes(cmd.Context(), soc.ID)
		if err != nil {
			return err
		}

		if done, err := printStructured(cmdCtx, schemes); done || err != nil {
			return err
		}

		if len(schemes) == 0 {
			fmt.Println("No discount schemes configured.")
			return nil
		}

		table := ux.NewTable("ID", "NAME", "TERMS", "ACTIVE")
		for _, scheme := range schemes {
			table.AddRow(scheme.ID, scheme.SchemeName, schemeTerms(scheme), scheme.IsActive)
		}
		return renderTable(table)
	},
}

// schemeTerms renders a scheme's benefit in one line
func schemeTerms(s api.DiscountScheme) string {
	switch s.DiscountType {
	case "free_months":
		return fmt.Sprintf("pay %d months, %d free", s.EligibleMonths, s.FreeMonths)
	case "percentage":
		return fmt.Sprintf("pay %d months, %s%% off", s.EligibleMonths, s.DiscountValue.StringFixed(0))
	default:
		return fmt.Sprintf("pay %d months, %s off", s.EligibleMonths, s.DiscountValue.StringFixed(2))
	}
}

// maintenanceSchemesAddCmd creates a discount scheme; manager only
var maintenanceSchemesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a discount scheme (manager only)",
	Long: `Create an annual payment discount scheme.

Examples:
  societyctl maintenance schemes add --name "Pay 12 Get 1 Free" --months 12 --free-months 1
  societyctl maintenance schemes add --name "Annual 10% off" --months 12 --type percentage --value 10`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmdCtx, err := NewCommandContext(cmd)
		if err != nil {
			return err
		}
		app, err := newApp(cmdCtx)
		if err != nil {
			return err
		}
		soc, err := requireCapability(app, capability.ManageBilling, "create discount schemes")
		if err != nil {
			return err
		}

		name, _ := cmd.Flags().GetString("name")
		months, _ := cmd.Flags().GetInt("months")
		freeMonths, _ := cmd.Flags().GetInt("free-months")
		schemeType, _ := cmd.Flags().GetString("type")
		rawValue, _ := cmd.Flags().GetString("value")

		if name == "" {
			return fmt.Errorf("--name is required")
		}
		switch schemeType {
		case "free_months", "percentage", "flat":
		default:
			return fmt.Errorf("--type must be free_months, percentage or flat")
		}

		req := api.CreateDiscountSchemeRequest{
			SchemeName:     name,
			EligibleMonths: months,
			FreeMonths:     freeMonths,
			DiscountType:   schemeType,
			IsActive:       true,
		}
		if rawValue != "" {
			value, err := decimal.NewFromString(rawValue)
			if err != nil {
				return fmt.Errorf("invalid --value: %w", err)
			}
			req.DiscountValue = value
		}

		scheme, err := app.Client.CreateDiscountScheme(cmd.Context(), soc.ID, req)
		if err != nil {
			return err
		}
		fmt.Printf("Created scheme %s (%s)\n", scheme.SchemeName, scheme.ID)
		return nil
	},
}

// maintenanceSchemesRemoveCmd deletes a scheme after confirmation
var maintenanceSchemesRemoveCmd = &cobra.Command{
	Use:   "remove <scheme-id>",
	Short: "Delete a discount scheme (manager only)",
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
		soc, err := requireCapability(app, capability.ManageBilling, "delete discount schemes")
		if err != nil {
			return err
		}

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			confirmed, err := tui.PromptForConfirmation("Delete this discount scheme?", false)
			if err != nil {
				return err
			}
			if !confirmed {
				fmt.Println("Cancelled.")
				return nil
			}
		}

		if err := app.Client.DeleteDiscountScheme(cmd.Context(), soc.ID, args[0]); err != nil {
			return err
		}
		fmt.Println("Scheme deleted.")
		return nil
	},
}

// maintenanceSchemesToggleCmd flips a scheme's active flag
var maintenanceSchemesToggleCmd = &cobra.Command{
	Use:   "toggle <scheme-id>",
	Short: "Activate or deactivate a discount scheme (manager only)",
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
		soc, err := requireCapability(app, capability.ManageBilling, "change discount schemes")
		if err != nil {
			return err
		}

		schemes, err := app.Client.ListDiscountSchemes(cmd.Context(), soc.ID)
		if err != nil {
			return err
		}
		for _, scheme := range schemes {
			if scheme.ID != args[0] {
				continue
			}
			scheme.IsActive = !scheme.IsActive
			if err := app.Client.UpdateDiscountScheme(cmd.Context(), soc.ID, scheme); err != nil {
				return err
			}
			fmt.Printf("Scheme %s is now %s\n", scheme.SchemeName, activeWord(scheme.IsActive))
			return nil
		}
		return fmt.Errorf("no scheme with ID %q", args[0])
	},
}

func activeWord(active bool) string {
	if active {
		return "active"
	}
	return "inactive"
}

// maintenancePaymentCmd records a flat-level payment; manager only
var maintenancePaymentCmd = &cobra.Command{
	Use:   "payment",
	Short: "Record a payment for a flat (manager only)",
	Long: `Record a maintenance payment for a flat, settling one or more bills or a
whole year upfront under a discount scheme. The backend issues a receipt
number and books the inward transaction.

Examples:
  societyctl maintenance payment --flat flat-1 --bills bill-1,bill-2 --amount 5000 --mode upi
  societyctl maintenance payment --flat flat-1 --annual --scheme sch-1 --amount 55000 --mode bank_transfer`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmdCtx, err := NewCommandContext(cmd)
		if err != nil {
			return err
		}
		app, err := newApp(cmdCtx)
		if err != nil {
			return err
		}
		soc, err := requireCapability(app, capability.RecordPayment, "record payments")
		if err != nil {
			return err
		}

		flatID, _ := cmd.Flags().GetString("flat")
		billIDs, _ := cmd.Flags().GetStringSlice("bills")
		rawAmount, _ := cmd.Flags().GetString("amount")
		mode, _ := cmd.Flags().GetString("mode")
		date, _ := cmd.Flags().GetString("date")
		ref, _ := cmd.Flags().GetString("ref")
		remarks, _ := cmd.Flags().GetString("remarks")
		annual, _ := cmd.Flags().GetBool("annual")
		scheme, _ := cmd.Flags().GetString("scheme")

		if flatID == "" {
			return fmt.Errorf("--flat is required")
		}
		if annual && scheme == "" {
			return fmt.Errorf("--scheme is required for annual payments")
		}
		if date == "" {
			date = time.Now().Format("2006-01-02")
		}

		// Show the projected payable for an annual payment before booking.
		if annual {
			preview, err := app.Client.PreviewAnnualPayment(cmd.Context(), soc.ID, api.AnnualPaymentPreviewRequest{
				FlatID:           flatID,
				Year:             time.Now().Year(),
				DiscountSchemeID: scheme,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Annual total: %s", preview.TotalBeforeDiscount.StringFixed(2))
			if preview.DiscountAmount.IsPositive() {
				fmt.Printf(", discount -%s (%d months free)", preview.DiscountAmount.StringFixed(2), preview.FreeMonths)
			}
			fmt.Printf(", payable %s\n", preview.FinalPayable.StringFixed(2))
			if rawAmount == "" {
				rawAmount = preview.FinalPayable.String()
			}
		}

		amount, err := decimal.NewFromString(rawAmount)
		if err != nil {
			return fmt.Errorf("invalid --amount: %w", err)
		}
		if amount.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("--amount must be positive")
		}

		req := api.FlatPaymentRequest{
			FlatID:               flatID,
			BillIDs:              billIDs,
			AmountPaid:           amount,
			PaymentMode:          mode,
			PaymentDate:          date,
			TransactionReference: ref,
			Remarks:              remarks,
			IsAnnualPayment:      annual,
		}
		if annual {
			req.BillIDs = nil
			req.DiscountSchemeID = scheme
		}

		result, err := app.Client.RecordFlatPayment(cmd.Context(), soc.ID, req)
		if err != nil {
			return err
		}
		fmt.Printf("Payment recorded. Receipt: %s\n", result.ReceiptNumber)
		return nil
	},
}

// maintenanceCollectionCmd shows billed versus collected for a period
var maintenanceCollectionCmd = &cobra.Command{
	Use:     "collection",
	Aliases: []string{"collect"},
	Short:   "Show the maintenance collection dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmdCtx, err := NewCommandContext(cmd)
		if err != nil {
			return err
		}
		app, err := newApp(cmdCtx)
		if err != nil {
			return err
		}
		soc, err := requireCapability(app, capability.ViewMaintenance, "view the collection dashboard")
		if err != nil {
			return err
		}

		year, _ := cmd.Flags().GetInt("year")
		month, _ := cmd.Flags().GetInt("month")

		dashboard, err := app.Client.GetCollectionDashboard(cmd.Context(), soc.ID, year, month)
		if err != nil {
			return err
		}

		if done, err := printStructured(cmdCtx, dashboard); done || err != nil {
			return err
		}

		fmt.Printf("Billed:      %s (%d flats)\n", dashboard.TotalBilled.StringFixed(2), dashboard.TotalFlats)
		fmt.Printf("Collected:   %s (%.1f%%)\n", dashboard.TotalCollected.StringFixed(2), dashboard.CollectionPercentage)
		fmt.Printf("Outstanding: %s\n", dashboard.TotalOutstanding.StringFixed(2))
		fmt.Printf("Flats:       %d paid, %d pending, %d overdue\n",
			dashboard.PaidFlats, dashboard.PendingFlats, dashboard.OverdueFlats)

		if len(dashboard.MonthWiseCollection) > 0 {
			fmt.Println()
			table := ux.NewTable("MONTH", "BILLED", "COLLECTED", "PENDING")
			for _, m := range dashboard.MonthWiseCollection {
				table.AddRow(time.Month(m.Month).String()[:3],
					m.Billed.StringFixed(2), m.Collected.StringFixed(2), m.Pending.StringFixed(2))
			}
			if err := renderTable(table); err != nil {
				return err
			}
		}

		if len(dashboard.RecentPayments) > 0 {
			fmt.Println()
			fmt.Println("Recent payments:")
			table := ux.NewTable("FLAT", "DATE", "AMOUNT", "MODE")
			for _, p := range dashboard.RecentPayments {
				table.AddRow(p.FlatNumber, p.Date, p.Amount.StringFixed(2), p.Mode)
			}
			return renderTable(table)
		}
		return nil
	},
}

// maintenanceBillsCmd lists bills with optional filters
var maintenanceBillsCmd = &cobra.Command{
	Use:   "bills",
	Short: "List maintenance bills",
	Long: `List maintenance bills of the active society. Managers and auditors see
all flats; members see their own.

Examples:
  societyctl maintenance bills
  societyctl maintenance bills --month 8 --year 2026 --status pending`,
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

		month, _ := cmd.Flags().GetInt("month")
		year, _ := cmd.Flags().GetInt("year")
		status, _ := cmd.Flags().GetString("status")
		flatID, _ := cmd.Flags().GetString("flat")

		bills, err := app.Client.ListBills(cmd.Context(), soc.ID, api.BillFilter{
			Month:  month,
			Year:   year,
			Status: status,
			FlatID: flatID,
		})
		if err != nil {
			return err
		}

		if done, err := printStructured(cmdCtx, bills); done || err != nil {
			return err
		}

		if len(bills) == 0 {
			fmt.Println("No bills found.")
			return nil
		}

		table := ux.NewTable("ID", "FLAT", "PERIOD", "AMOUNT", "PAID", "DUE DATE", "STATUS")
		for _, bill := range bills {
			table.AddRow(bill.ID, bill.FlatNumber,
				fmt.Sprintf("%d/%d", bill.Month, bill.Year),
				bill.Amount.StringFixed(2), bill.PaidAmount.StringFixed(2),
				bill.DueDate, bill.Status)
		}
		return renderTable(table)
	},
}

// maintenancePayCmd records a payment against a bill; manager only
var maintenancePayCmd = &cobra.Command{
	Use:   "pay <bill-id>",
	Short: "Record a payment against a bill (manager only)",
	Long: `Record a payment against a maintenance bill. The backend creates the
matching inward transaction and marks the bill paid or partial.

Examples:
  societyctl maintenance pay bill-42 --amount 2500 --mode upi`,
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
		soc, err := requireCapability(app, capability.RecordPayment, "record payments")
		if err != nil {
			return err
		}

		rawAmount, _ := cmd.Flags().GetString("amount")
		mode, _ := cmd.Flags().GetString("mode")

		amount, err := decimal.NewFromString(rawAmount)
		if err != nil {
			return fmt.Errorf("invalid --amount: %w", err)
		}
		if amount.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("--amount must be positive")
		}

		result, err := app.Client.RecordPayment(cmd.Context(), soc.ID, api.RecordPaymentRequest{
			BillID:      args[0],
			AmountPaid:  amount,
			PaymentMode: mode,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Recorded payment of %s (transaction %s)\n",
			result.PaidAmount.StringFixed(2), result.TransactionID)
		return nil
	},
}

// maintenanceLedgerCmd shows a flat's bill history
var maintenanceLedgerCmd = &cobra.Command{
	Use:   "ledger <flat-id>",
	Short: "Show a flat's maintenance ledger",
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

		bills, err := app.Client.GetFlatLedger(cmd.Context(), soc.ID, args[0])
		if err != nil {
			return err
		}

		if done, err := printStructured(cmdCtx, bills); done || err != nil {
			return err
		}

		if len(bills) == 0 {
			fmt.Println("No bills for this flat.")
			return nil
		}

		table := ux.NewTable("PERIOD", "AMOUNT", "LATE FEE", "PAID", "STATUS")
		for _, bill := range bills {
			table.AddRow(fmt.Sprintf("%d/%d", bill.Month, bill.Year),
				bill.Amount.StringFixed(2), bill.LateFee.StringFixed(2),
				bill.PaidAmount.StringFixed(2), bill.Status)
		}
		return renderTable(table)
	},
}

func init() {
	maintenanceGenerateCmd.Flags().Int("month", 0, "billing month (1-12)")
	maintenanceGenerateCmd.Flags().Int("year", 0, "billing year")
	maintenanceGenerateCmd.Flags().String("amount", "", "fixed amount per flat (omit to bill from rate settings)")
	maintenanceGenerateCmd.Flags().String("due", "", "due date (YYYY-MM-DD), fixed-amount runs only")
	maintenanceGenerateCmd.Flags().String("late-fee", "", "late fee after the due date, fixed-amount runs only")
	maintenanceGenerateCmd.Flags().String("period", "monthly", "billing period (monthly, yearly)")
	maintenanceGenerateCmd.Flags().String("scheme", "", "discount scheme ID for yearly runs")
	maintenanceGenerateCmd.Flags().Bool("yes", false, "skip the confirmation prompt")

	maintenancePreviewCmd.Flags().Int("month", 0, "billing month (defaults to the current month)")
	maintenancePreviewCmd.Flags().Int("year", 0, "billing year (defaults to the current year)")
	maintenancePreviewCmd.Flags().String("period", "monthly", "billing period (monthly, yearly)")
	maintenancePreviewCmd.Flags().String("scheme", "", "discount scheme ID for yearly runs")

	maintenanceBillsCmd.Flags().Int("month", 0, "filter by month")
	maintenanceBillsCmd.Flags().Int("year", 0, "filter by year")
	maintenanceBillsCmd.Flags().String("status", "", "filter by status (pending, partial, paid)")
	maintenanceBillsCmd.Flags().String("flat", "", "filter by flat ID")

	maintenancePayCmd.Flags().String("amount", "", "amount paid")
	maintenancePayCmd.Flags().String("mode", "", "payment mode (cash, cheque, upi, bank_transfer)")

	maintenanceSettingsSetCmd.Flags().String("rate", "", "default rate per sqft")
	maintenanceSettingsSetCmd.Flags().String("cycle", "", "billing cycle (monthly, quarterly, yearly)")
	maintenanceSettingsSetCmd.Flags().Int("due-day", 0, "due day of month (1-28)")
	maintenanceSettingsSetCmd.Flags().String("late-fee", "", "late fee amount")
	maintenanceSettingsSetCmd.Flags().String("late-fee-type", "", "late fee type (flat, percentage)")
	maintenanceSettingsSetCmd.Flags().Bool("discounts", true, "enable annual discount schemes")

	maintenanceSchemesAddCmd.Flags().String("name", "", "scheme name")
	maintenanceSchemesAddCmd.Flags().Int("months", 12, "months paid upfront to qualify")
	maintenanceSchemesAddCmd.Flags().Int("free-months", 1, "free months granted (free_months type)")
	maintenanceSchemesAddCmd.Flags().String("type", "free_months", "discount type (free_months, percentage, flat)")
	maintenanceSchemesAddCmd.Flags().String("value", "", "discount value (percentage or flat types)")

	maintenanceSchemesRemoveCmd.Flags().Bool("yes", false, "skip the confirmation prompt")

	maintenancePaymentCmd.Flags().String("flat", "", "flat ID")
	maintenancePaymentCmd.Flags().StringSlice("bills", nil, "bill IDs to settle")
	maintenancePaymentCmd.Flags().String("amount", "", "amount paid (annual payments default to the projected payable)")
	maintenancePaymentCmd.Flags().String("mode", "upi", "payment mode (cash, cheque, upi, bank_transfer)")
	maintenancePaymentCmd.Flags().String("date", "", "payment date (YYYY-MM-DD, defaults to today)")
	maintenancePaymentCmd.Flags().String("ref", "", "transaction reference")
	maintenancePaymentCmd.Flags().String("remarks", "", "remarks")
	maintenancePaymentCmd.Flags().Bool("annual", false, "settle a whole year under a discount scheme")
	maintenancePaymentCmd.Flags().String("scheme", "", "discount scheme ID for annual payments")

	maintenanceCollectionCmd.Flags().Int("year", 0, "period year (defaults to the current year)")
	maintenanceCollectionCmd.Flags().Int("month", 0, "period month (defaults to the current month)")

	maintenanceSettingsCmd.AddCommand(maintenanceSettingsSetCmd)
	maintenanceSchemesCmd.AddCommand(maintenanceSchemesAddCmd)
	maintenanceSchemesCmd.AddCommand(maintenanceSchemesRemoveCmd)
	maintenanceSchemesCmd.AddCommand(maintenanceSchemesToggleCmd)

	maintenanceCmd.AddCommand(maintenanceGenerateCmd)
	maintenanceCmd.AddCommand(maintenancePreviewCmd)
	maintenanceCmd.AddCommand(maintenanceBillsCmd)
	maintenanceCmd.AddCommand(maintenancePayCmd)
	maintenanceCmd.AddCommand(maintenancePaymentCmd)
	maintenanceCmd.AddCommand(maintenanceLedgerCmd)
	maintenanceCmd.AddCommand(maintenanceSettingsCmd)
	maintenanceCmd.AddCommand(maintenanceSchemesCmd)
	maintenanceCmd.AddCommand(maintenanceCollectionCmd)
	rootCmd.AddCommand(maintenanceCmd)
}
