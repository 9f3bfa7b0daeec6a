package tui

import (
	"fmt"
	"strings"

	"github.com/socfin/societyctl/internal/api"
	"github.com/socfin/societyctl/internal/capability"
)

// View renders the TUI (required by Bubble Tea)
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.currentView {
	case ViewLogin:
		return m.renderLogin()
	case ViewSocietySelect:
		return m.renderSocietySelect()
	case ViewHelp:
		return m.renderHelp()
	default:
		return m.renderDataView()
	}
}

func (m Model) renderLogin() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("societyctl"))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtitle.Render("Log in to your society backend"))
	b.WriteString("\n\n")
	b.WriteString("Email\n")
	b.WriteString(m.emailInput.View())
	b.WriteString("\n\nPassword\n")
	b.WriteString(m.passwordInput.View())
	b.WriteString("\n")

	if m.lastError != "" {
		b.WriteString("\n" + m.styles.Error.Render(m.lastError) + "\n")
	}

	b.WriteString(m.styles.Help.Render("tab: switch field • enter: log in • ctrl+c: quit"))
	return m.styles.Border.Render(b.String())
}

func (m Model) renderSocietySelect() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Select a society"))
	b.WriteString("\n")

	societies := m.deps.Society.Societies()
	if m.loading {
		b.WriteString(m.spin.View() + " Loading memberships...\n")
	} else if len(societies) == 0 {
		b.WriteString(m.styles.Muted.Render("You are not a member of any society yet.") + "\n")
	}

	for i, soc := range societies {
		line := fmt.Sprintf("%s (%s)", soc.Name, soc.Role)
		if i == m.cursor {
			line = m.styles.Selected.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	if m.lastError != "" {
		b.WriteString("\n" + m.styles.Error.Render(m.lastError) + "\n")
	}

	b.WriteString(m.styles.Help.Render("↑/↓: move • enter: select • r: refresh • q: quit"))
	return m.styles.Border.Render(b.String())
}

func (m Model) renderDataView() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	if m.loading {
		b.WriteString(m.spin.View() + " Loading...\n")
	} else {
		switch m.currentView {
		case ViewDashboard:
			b.WriteString(m.renderDashboard())
		case ViewTransactions:
			b.WriteString(m.renderTransactions())
		case ViewBills:
			b.WriteString(m.renderBills())
		case ViewApprovals:
			b.WriteString(m.renderApprovals())
		case ViewNotifications:
			b.WriteString(m.renderNotifications())
		}
	}

	if m.lastError != "" {
		b.WriteString("\n" + m.styles.Error.Render(m.lastError) + "\n")
	}

	b.WriteString(m.renderHelpLine())
	return b.String()
}

func (m Model) renderHeader() string {
	soc := m.deps.Society.Current()
	title := "societyctl"
	if soc != nil {
		title = fmt.Sprintf("%s - %s", soc.Name, soc.Role)
	}

	var tabs []string
	for _, tab := range m.tabs() {
		label := m.tabLabel(tab)
		if tab == m.currentView {
			tabs = append(tabs, m.styles.TabOn.Render(label))
		} else {
			tabs = append(tabs, m.styles.Tab.Render(label))
		}
	}

	return m.styles.Title.Render(title) + "\n" + strings.Join(tabs, " ")
}

func (m Model) tabLabel(view ViewType) string {
	switch view {
	case ViewDashboard:
		return "Dashboard"
	case ViewTransactions:
		return "Transactions"
	case ViewBills:
		return "Bills"
	case ViewApprovals:
		return "Approvals"
	case ViewNotifications:
		return "Notifications"
	}
	return ""
}

func (m Model) renderDashboard() string {
	if m.dashboard == nil {
		return m.styles.Muted.Render("No data yet. Press r to refresh.") + "\n"
	}

	var b strings.Builder
	dash := m.dashboard

	b.WriteString(fmt.Sprintf("Balance:           %s\n", m.styles.Amount.Render(dash.SocietyBalance.StringFixed(2))))
	b.WriteString(fmt.Sprintf("Total inward:      %s\n", dash.TotalInward.StringFixed(2)))
	b.WriteString(fmt.Sprintf("Total outward:     %s\n", dash.TotalOutward.StringFixed(2)))
	b.WriteString(fmt.Sprintf("Pending dues:      %d\n", dash.PendingDues))
	b.WriteString(fmt.Sprintf("Pending approvals: %d\n", dash.PendingApprovals))
	b.WriteString(fmt.Sprintf("Members / flats:   %d / %d\n", dash.MemberCount, dash.FlatCount))

	if len(dash.RecentTransactions) > 0 {
		b.WriteString("\nRecent transactions:\n")
		for _, txn := range dash.RecentTransactions {
			b.WriteString(fmt.Sprintf("  %s  %-8s %-20s %s\n",
				txn.Date, txn.Type, txn.Category, txn.Amount.StringFixed(2)))
		}
	}
	return b.String()
}

func (m Model) renderTransactions() string {
	if len(m.transactions) == 0 {
		return m.styles.Muted.Render("No transactions.") + "\n"
	}

	var b strings.Builder
	for i, txn := range m.transactions {
		marker := "  "
		if i == m.listCursor {
			marker = m.styles.Key.Render("> ")
		}
		direction := "+"
		if txn.Type == api.TxnOutward {
			direction = "-"
		}
		line := fmt.Sprintf("%s%s  %-8s %-20s %s%s  %s",
			marker, txn.Date, txn.Type, txn.Category,
			direction, txn.Amount.StringFixed(2), txn.ApprovalStatus)
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (m Model) renderBills() string {
	if len(m.bills) == 0 {
		return m.styles.Muted.Render("No bills.") + "\n"
	}

	var b strings.Builder
	for i, bill := range m.bills {
		marker := "  "
		if i == m.listCursor {
			marker = m.styles.Key.Render("> ")
		}
		status := bill.Status
		switch status {
		case "paid":
			status = m.styles.Success.Render(status)
		case "pending":
			status = m.styles.Warning.Render(status)
		}
		b.WriteString(fmt.Sprintf("%s%-8s %d/%d  %s due %s  %s\n",
			marker, bill.FlatNumber, bill.Month, bill.Year,
			bill.Amount.StringFixed(2), bill.DueDate, status))
	}
	return b.String()
}

func (m Model) renderApprovals() string {
	if len(m.approvals) == 0 {
		return m.styles.Muted.Render("No approvals.") + "\n"
	}

	var b strings.Builder
	for i, approval := range m.approvals {
		marker := "  "
		if i == m.listCursor {
			marker = m.styles.Key.Render("> ")
		}
		amount, category := "", ""
		if approval.Transaction != nil {
			amount = approval.Transaction.Amount.StringFixed(2)
			category = approval.Transaction.Category
		}
		b.WriteString(fmt.Sprintf("%s%-20s %-10s by %s  %s\n",
			marker, category, amount, approval.RequestedByName, approval.Status))
	}
	return b.String()
}

func (m Model) renderNotifications() string {
	if len(m.notifications) == 0 {
		return m.styles.Muted.Render("No notifications.") + "\n"
	}

	var b strings.Builder
	for i, n := range m.notifications {
		marker := "  "
		if i == m.listCursor {
			marker = m.styles.Key.Render("> ")
		}
		title := n.Title
		if !n.Read {
			title = m.styles.Amount.Render("• " + title)
		}
		b.WriteString(fmt.Sprintf("%s%s - %s\n", marker, title, n.Message))
	}
	return b.String()
}

func (m Model) renderHelp() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Help"))
	b.WriteString("\n")

	lines := [][2]string{
		{"tab / shift+tab", "cycle views"},
		{"↑/↓, j/k", "move selection"},
		{"r", "refresh current view"},
		{"s", "switch society"},
		{"m / M", "mark notification / all read"},
		{"?", "toggle this help"},
		{"q, ctrl+c", "quit"},
	}
	if m.caps.Has(capability.DecideApprovals) {
		lines = append(lines, [2]string{"a / x", "approve / reject expense"})
	}

	for _, line := range lines {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			m.styles.Key.Render(fmt.Sprintf("%-16s", line[0])),
			m.styles.Muted.Render(line[1])))
	}
	return m.styles.Border.Render(b.String())
}

func (m Model) renderHelpLine() string {
	hints := []string{"tab: views", "r: refresh", "s: society", "?: help", "q: quit"}
	if m.currentView == ViewApprovals && m.caps.Has(capability.DecideApprovals) {
		hints = append([]string{"a: approve", "x: reject"}, hints...)
	}
	if m.currentView == ViewNotifications {
		hints = append([]string{"m: read", "M: read all"}, hints...)
	}
	return m.styles.Help.Render(strings.Join(hints, " • "))
}
