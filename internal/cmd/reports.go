package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/socfin/societyctl/internal/api"
	"github.com/socfin/societyctl/internal/ux"

	"github.com/spf13/cobra"
)

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "Financial reports for the active society",
}

// reportsMonthlyCmd shows month-by-month totals for a year
var reportsMonthlyCmd = &cobra.Command{
	Use:   "monthly",
	Short: "Monthly inward/outward summary for a year",
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

		year, _ := cmd.Flags().GetInt("year")
		if year == 0 {
			year = time.Now().Year()
		}

		summaries, err := app.Client.GetMonthlySummary(cmd.Context(), soc.ID, year)
		if err != nil {
			return err
		}

		if done, err := printStructured(cmdCtx, summaries); done || err != nil {
			return err
		}

		if len(summaries) == 0 {
			fmt.Printf("No activity in %d.\n", year)
			return nil
		}

		table := ux.NewTable("MONTH", "INWARD", "OUTWARD", "NET", "TXNS")
		for _, s := range summaries {
			table.AddRow(fmt.Sprintf("%d/%d", s.Month, s.Year),
				s.TotalInward.StringFixed(2), s.TotalOutward.StringFixed(2),
				s.Net.StringFixed(2), s.TransactionCount)
		}
		return renderTable(table)
	},
}

// reportsCategoriesCmd shows outward spend per category for a month
var reportsCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Category-wise spending for a month",
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

		now := time.Now()
		year, _ := cmd.Flags().GetInt("year")
		month, _ := cmd.Flags().GetInt("month")
		if year == 0 {
			year = now.Year()
		}
		if month == 0 {
			month = int(now.Month())
		}

		spending, err := app.Client.GetCategorySpending(cmd.Context(), soc.ID, year, month)
		if err != nil {
			return err
		}

		if done, err := printStructured(cmdCtx, spending); done || err != nil {
			return err
		}

		if len(spending) == 0 {
			fmt.Printf("No spending in %d/%d.\n", month, year)
			return nil
		}

		table := ux.NewTable("CATEGORY", "TOTAL", "TXNS", "SHARE")
		for _, s := range spending {
			table.AddRow(s.Category, s.Total.StringFixed(2), s.Count,
				fmt.Sprintf("%.1f%%", s.Percentage))
		}
		return renderTable(table)
	},
}

// reportsDuesCmd lists bills with an outstanding balance
var reportsDuesCmd = &cobra.Command{
	Use:   "dues",
	Short: "Outstanding maintenance dues",
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

		dues, err := app.Client.GetOutstandingDues(cmd.Context(), soc.ID)
		if err != nil {
			return err
		}

		if done, err := printStructured(cmdCtx, dues); done || err != nil {
			return err
		}

		if len(dues) == 0 {
			fmt.Println("No outstanding dues.")
			return nil
		}

		table := ux.NewTable("FLAT", "MEMBER", "PERIOD", "AMOUNT", "PAID", "OUTSTANDING")
		for _, due := range dues {
			table.AddRow(due.FlatNumber, due.MemberName,
				fmt.Sprintf("%d/%d", due.Month, due.Year),
				due.Amount.StringFixed(2), due.PaidAmount.StringFixed(2),
				due.Outstanding.StringFixed(2))
		}
		return renderTable(table)
	},
}

// reportsAnnualCmd shows a full-year rollup
var reportsAnnualCmd = &cobra.Command{
	Use:   "annual",
	Short: "Annual financial summary",
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

		year, _ := cmd.Flags().GetInt("year")
		if year == 0 {
			year = time.Now().Year()
		}

		summary, err := app.Client.GetAnnualSummary(cmd.Context(), soc.ID, year)
		if err != nil {
			return err
		}

		if done, err := printStructured(cmdCtx, summary); done || err != nil {
			return err
		}

		fmt.Printf("%s - %d\n\n", soc.Name, summary.Year)
		fmt.Printf("Total inward:  %s\n", summary.TotalInward.StringFixed(2))
		fmt.Printf("Total outward: %s\n", summary.TotalOutward.StringFixed(2))
		fmt.Printf("Net:           %s\n", summary.Net.StringFixed(2))
		fmt.Printf("Transactions:  %d\n", summary.TransactionCount)

		if len(summary.Monthly) > 0 {
			fmt.Println()
			table := ux.NewTable("MONTH", "INWARD", "OUTWARD", "NET")
			for _, s := range summary.Monthly {
				table.AddRow(fmt.Sprintf("%d/%d", s.Month, s.Year),
					s.TotalInward.StringFixed(2), s.TotalOutward.StringFixed(2),
					s.Net.StringFixed(2))
			}
			return renderTable(table)
		}
		return nil
	},
}

// reportsExportCmd downloads a year's transactions as a file the backend
// renders; the client just streams bytes to disk
var reportsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the year's transactions as an Excel or PDF file",
	Long: `Download a transaction report rendered by the backend.

Examples:
  societyctl reports export --format excel
  societyctl reports export --format pdf --year 2025 --output /tmp/report.pdf`,
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

		format, _ := cmd.Flags().GetString("format")
		year, _ := cmd.Flags().GetInt("year")
		output, _ := cmd.Flags().GetString("output")

		if year == 0 {
			year = time.Now().Year()
		}
		if output == "" {
			ext := "xlsx"
			if format == api.ExportPDF {
				ext = "pdf"
			}
			name := strings.ReplaceAll(soc.Name, " ", "_")
			output = fmt.Sprintf("%s_transactions_%d.%s", name, year, ext)
		}

		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("cannot create %s: %w", output, err)
		}

		if err := app.Client.ExportReport(cmd.Context(), soc.ID, format, year, f); err != nil {
			f.Close()
			os.Remove(output)
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}

		fmt.Printf("Saved %s report to %s\n", format, output)
		return nil
	},
}

func init() {
	reportsMonthlyCmd.Flags().Int("year", 0, "report year (default current)")
	reportsCategoriesCmd.Flags().Int("year", 0, "report year (default current)")
	reportsCategoriesCmd.Flags().Int("month", 0, "report month (default current)")
	reportsAnnualCmd.Flags().Int("year", 0, "report year (default current)")
	reportsExportCmd.Flags().String("format", "excel", "export format (excel, pdf)")
	reportsExportCmd.Flags().Int("year", 0, "report year (default current)")
	reportsExportCmd.Flags().String("output", "", "output file (default <society>_transactions_<year>.<ext>)")

	reportsCmd.AddCommand(reportsMonthlyCmd)
	reportsCmd.AddCommand(reportsCategoriesCmd)
	reportsCmd.AddCommand(reportsDuesCmd)
	reportsCmd.AddCommand(reportsAnnualCmd)
	reportsCmd.AddCommand(reportsExportCmd)
	rootCmd.AddCommand(reportsCmd)
}
