package cmd

import (
	"fmt"

	"github.com/socfin/societyctl/internal/ux"

	"github.com/spf13/cobra"
)

// dashboardCmd shows the society overview the backend computes
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the active society's financial overview",
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

		dash, err := app.Client.GetDashboard(cmd.Context(), soc.ID)
		if err != nil {
			return err
		}

		if done, err := printStructured(cmdCtx, dash); done || err != nil {
			return err
		}

		fmt.Printf("%s - overview\n\n", soc.Name)
		fmt.Printf("Balance:           %s\n", dash.SocietyBalance.StringFixed(2))
		fmt.Printf("Total inward:      %s\n", dash.TotalInward.StringFixed(2))
		fmt.Printf("Total outward:     %s\n", dash.TotalOutward.StringFixed(2))
		fmt.Printf("Pending dues:      %d\n", dash.PendingDues)
		fmt.Printf("Pending approvals: %d\n", dash.PendingApprovals)
		fmt.Printf("Members:           %d\n", dash.MemberCount)
		fmt.Printf("Flats:             %d\n", dash.FlatCount)

		if len(dash.RecentTransactions) > 0 {
			fmt.Println("\nRecent transactions:")
			table := ux.NewTable("DATE", "TYPE", "CATEGORY", "AMOUNT", "STATUS")
			for _, txn := range dash.RecentTransactions {
				table.AddRow(txn.Date, txn.Type, txn.Category, txn.Amount.StringFixed(2), txn.ApprovalStatus)
			}
			if err := renderTable(table); err != nil {
				return err
			}
		}

		if len(dash.MonthlyTrend) > 0 {
			fmt.Println("\nMonthly trend:")
			table := ux.NewTable("MONTH", "INWARD", "OUTWARD")
			for _, point := range dash.MonthlyTrend {
				table.AddRow(point.Month, point.Inward.StringFixed(2), point.Outward.StringFixed(2))
			}
			if err := renderTable(table); err != nil {
				return err
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
