package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/socfin/societyctl/internal/api"
	"github.com/socfin/societyctl/internal/capability"
	"github.com/socfin/societyctl/internal/fetch"
	"github.com/socfin/societyctl/internal/guard"
	"github.com/socfin/societyctl/internal/log"
	"github.com/socfin/societyctl/internal/session"
	"github.com/socfin/societyctl/internal/society"
)

// ViewType represents the current view being displayed
type ViewType int

// View type constants
const (
	// ViewLogin is the login form
	ViewLogin ViewType = iota
	// ViewSocietySelect picks the active society
	ViewSocietySelect
	// ViewDashboard is the financial overview
	ViewDashboard
	// ViewTransactions lists transactions
	ViewTransactions
	// ViewBills lists maintenance bills
	ViewBills
	// ViewApprovals lists expense approvals
	ViewApprovals
	// ViewNotifications lists notifications
	ViewNotifications
	// ViewHelp is the help screen
	ViewHelp
)

// Deps are the services the TUI drives. The session and society services
// carry all state transitions; the model only mirrors them for rendering.
type Deps struct {
	Client  *api.Client
	Session *session.Service
	Society *society.Service
	Logger  *log.Logger
}

// keyMap defines the keyboard shortcuts
type keyMap struct {
	Quit    key.Binding
	Help    key.Binding
	Refresh key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Up      key.Binding
	Down    key.Binding
	Select  key.Binding
	Switch  key.Binding
	Approve key.Binding
	Reject  key.Binding
	Read    key.Binding
	ReadAll key.Binding
}

var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "q"),
		key.WithHelp("q", "quit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	NextTab: key.NewBinding(
		key.WithKeys("tab", "right"),
		key.WithHelp("tab", "next tab"),
	),
	PrevTab: key.NewBinding(
		key.WithKeys("shift+tab", "left"),
		key.WithHelp("shift+tab", "previous tab"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Switch: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "switch society"),
	),
	Approve: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "approve"),
	),
	Reject: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "reject"),
	),
	Read: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "mark read"),
	),
	ReadAll: key.NewBinding(
		key.WithKeys("M"),
		key.WithHelp("M", "mark all read"),
	),
}

// Model represents the TUI application state
type Model struct {
	deps Deps

	currentView ViewType
	prevView    ViewType
	caps        capability.Set

	// Login form
	emailInput    textinput.Model
	passwordInput textinput.Model
	focusPassword bool

	// Society selection
	cursor int

	// Loaded data. Each load carries a fetch token; stale arrivals are
	// discarded so a fast view change never shows the old view's data.
	fetches       *fetch.Coordinator
	loading       bool
	spin          spinner.Model
	dashboard     *api.Dashboard
	transactions  []api.Transaction
	bills         []api.Bill
	approvals     []api.Approval
	notifications []api.Notification
	listCursor    int

	width     int
	height    int
	quitting  bool
	lastError string
	styles    Styles
}

// NewModel creates the TUI model from the wired services
func NewModel(deps Deps) Model {
	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.Focus()
	email.CharLimit = 128

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	password.CharLimit = 128

	m := Model{
		deps:          deps,
		emailInput:    email,
		passwordInput: password,
		fetches:       fetch.NewCoordinator(),
		spin:          spinner.New(spinner.WithSpinner(spinner.Dot)),
		styles:        DefaultStyles(),
	}
	m.caps = capability.ForRole(deps.Society.Role())
	m.currentView = m.route()
	return m
}

// route maps the guard state to a view
func (m Model) route() ViewType {
	switch guard.Resolve(m.deps.Session, m.deps.Society) {
	case guard.StateLogin:
		return ViewLogin
	case guard.StateSelectSociety:
		return ViewSocietySelect
	default:
		return ViewDashboard
	}
}

// tabs returns the data views the current role may open, in display order
func (m Model) tabs() []ViewType {
	tabs := []ViewType{ViewDashboard, ViewTransactions}
	if m.caps.Has(capability.ViewMaintenance) || m.caps.Has(capability.ViewOwnBills) {
		tabs = append(tabs, ViewBills)
	}
	if m.caps.Has(capability.ViewApprovals) {
		tabs = append(tabs, ViewApprovals)
	}
	tabs = append(tabs, ViewNotifications)
	return tabs
}

// Init starts the initial data load (required by Bubble Tea)
func (m Model) Init() tea.Cmd {
	if m.currentView == ViewLogin {
		return textinput.Blink
	}
	if m.currentView == ViewSocietySelect {
		return m.refreshSocietiesCmd()
	}
	_, cmd := m.enterView(m.currentView)
	return cmd
}

// Update handles messages and updates the model state (required by Bubble Tea)
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case loginResultMsg:
		if !msg.Result.OK {
			m.lastError = msg.Result.Err
			m.passwordInput.SetValue("")
			return m, nil
		}
		m.lastError = ""
		m.caps = capability.ForRole(m.deps.Society.Role())
		if m.deps.Society.HasSelection() {
			return m.enterView(ViewDashboard)
		}
		m.currentView = ViewSocietySelect
		m.cursor = 0
		return m, nil

	case societiesRefreshedMsg:
		m.loading = false
		if msg.Err != nil {
			return m.fetchFailed(msg.Err)
		}
		m.currentView = m.route()
		if m.currentView == ViewDashboard {
			return m.enterView(ViewDashboard)
		}
		return m, nil

	case dashboardLoadedMsg:
		if !m.fetches.Current(msg.Token) {
			return m, nil
		}
		m.loading = false
		if msg.Err != nil {
			return m.fetchFailed(msg.Err)
		}
		m.dashboard = msg.Dashboard
		return m, nil

	case transactionsLoadedMsg:
		if !m.fetches.Current(msg.Token) {
			return m, nil
		}
		m.loading = false
		if msg.Err != nil {
			return m.fetchFailed(msg.Err)
		}
		m.transactions = msg.Transactions
		m.listCursor = 0
		return m, nil

	case billsLoadedMsg:
		if !m.fetches.Current(msg.Token) {
			return m, nil
		}
		m.loading = false
		if msg.Err != nil {
			return m.fetchFailed(msg.Err)
		}
		m.bills = msg.Bills
		m.listCursor = 0
		return m, nil

	case approvalsLoadedMsg:
		if !m.fetches.Current(msg.Token) {
			return m, nil
		}
		m.loading = false
		if msg.Err != nil {
			return m.fetchFailed(msg.Err)
		}
		m.approvals = msg.Approvals
		m.listCursor = 0
		return m, nil

	case notificationsLoadedMsg:
		if !m.fetches.Current(msg.Token) {
			return m, nil
		}
		m.loading = false
		if msg.Err != nil {
			return m.fetchFailed(msg.Err)
		}
		m.notifications = msg.Notifications
		m.listCursor = 0
		return m, nil

	case approvalDecidedMsg:
		if msg.Err != nil {
			return m.fetchFailed(msg.Err)
		}
		return m.enterView(ViewApprovals)

	case notificationsReadMsg:
		if msg.Err != nil {
			return m.fetchFailed(msg.Err)
		}
		return m.enterView(ViewNotifications)
	}

	return m, nil
}

// fetchFailed records a failed backend call. A 401 has already torn the
// session down through the client hook, so the guard decides whether we
// fall back to the login screen.
func (m Model) fetchFailed(err error) (tea.Model, tea.Cmd) {
	m.loading = false
	if !m.deps.Session.Authenticated() {
		m.fetches.Invalidate()
		m.lastError = "Session expired. Please log in again."
		m.currentView = ViewLogin
		m.focusPassword = false
		m.emailInput.Focus()
		m.passwordInput.Blur()
		m.passwordInput.SetValue("")
		return m, textinput.Blink
	}
	m.lastError = err.Error()
	return m, nil
}

// enterView switches to a data view and starts its load. Issuing a fresh
// fetch token invalidates whatever load the previous view had in flight.
func (m Model) enterView(view ViewType) (Model, tea.Cmd) {
	soc := m.deps.Society.Current()
	if soc == nil {
		m.currentView = m.route()
		return m, nil
	}

	m.currentView = view
	m.loading = true
	m.lastError = ""
	token := m.fetches.Issue()

	var load tea.Cmd
	switch view {
	case ViewDashboard:
		load = m.loadDashboardCmd(token, soc.ID)
	case ViewTransactions:
		load = m.loadTransactionsCmd(token, soc.ID)
	case ViewBills:
		load = m.loadBillsCmd(token, soc.ID)
	case ViewApprovals:
		load = m.loadApprovalsCmd(token, soc.ID)
	case ViewNotifications:
		load = m.loadNotificationsCmd(token, soc.ID)
	default:
		m.loading = false
		return m, nil
	}
	return m, tea.Batch(m.spin.Tick, load)
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if m.currentView == ViewLogin {
		return m.handleLoginKeys(msg)
	}

	if m.currentView == ViewSocietySelect {
		return m.handleSocietySelectKeys(msg)
	}

	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, keys.Help):
		if m.currentView == ViewHelp {
			m.currentView = m.prevView
		} else {
			m.prevView = m.currentView
			m.currentView = ViewHelp
		}
		return m, nil

	case key.Matches(msg, keys.Refresh):
		return m.enterView(m.currentView)

	case key.Matches(msg, keys.Switch):
		// The selection is about to change; any response still in flight
		// belongs to the old society.
		m.fetches.Invalidate()
		m.loading = true
		m.cursor = 0
		m.currentView = ViewSocietySelect
		return m, tea.Batch(m.spin.Tick, m.refreshSocietiesCmd())

	case key.Matches(msg, keys.NextTab):
		return m.cycleTab(1)

	case key.Matches(msg, keys.PrevTab):
		return m.cycleTab(-1)

	case key.Matches(msg, keys.Up):
		if m.listCursor > 0 {
			m.listCursor--
		}
		return m, nil

	case key.Matches(msg, keys.Down):
		if m.listCursor < m.listLen()-1 {
			m.listCursor++
		}
		return m, nil

	case key.Matches(msg, keys.Approve):
		return m.decideApproval(true)

	case key.Matches(msg, keys.Reject):
		return m.decideApproval(false)

	case key.Matches(msg, keys.Read):
		if m.currentView == ViewNotifications && m.listCursor < len(m.notifications) {
			return m, m.markReadCmd(m.notifications[m.listCursor].ID)
		}
		return m, nil

	case key.Matches(msg, keys.ReadAll):
		if m.currentView == ViewNotifications {
			if soc := m.deps.Society.Current(); soc != nil {
				return m, m.markAllReadCmd(soc.ID)
			}
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleLoginKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab", "up", "down":
		m.focusPassword = !m.focusPassword
		if m.focusPassword {
			m.emailInput.Blur()
			m.passwordInput.Focus()
		} else {
			m.passwordInput.Blur()
			m.emailInput.Focus()
		}
		return m, textinput.Blink

	case "enter":
		if !m.focusPassword {
			m.focusPassword = true
			m.emailInput.Blur()
			m.passwordInput.Focus()
			return m, textinput.Blink
		}
		if m.emailInput.Value() == "" || m.passwordInput.Value() == "" {
			m.lastError = "Email and password are required."
			return m, nil
		}
		m.lastError = ""
		return m, m.loginCmd()
	}

	var cmd tea.Cmd
	if m.focusPassword {
		m.passwordInput, cmd = m.passwordInput.Update(msg)
	} else {
		m.emailInput, cmd = m.emailInput.Update(msg)
	}
	return m, cmd
}

func (m Model) handleSocietySelectKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	societies := m.deps.Society.Societies()

	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, keys.Down):
		if m.cursor < len(societies)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, keys.Refresh):
		m.loading = true
		return m, tea.Batch(m.spin.Tick, m.refreshSocietiesCmd())

	case key.Matches(msg, keys.Select):
		if m.cursor < len(societies) {
			m.deps.Society.Select(societies[m.cursor])
			m.caps = capability.ForRole(m.deps.Society.Role())
			return m.enterView(ViewDashboard)
		}
		return m, nil
	}

	return m, nil
}

func (m Model) cycleTab(direction int) (tea.Model, tea.Cmd) {
	tabs := m.tabs()
	current := 0
	for i, tab := range tabs {
		if tab == m.currentView {
			current = i
			break
		}
	}
	next := (current + direction + len(tabs)) % len(tabs)
	return m.enterView(tabs[next])
}

func (m Model) listLen() int {
	switch m.currentView {
	case ViewTransactions:
		return len(m.transactions)
	case ViewBills:
		return len(m.bills)
	case ViewApprovals:
		return len(m.approvals)
	case ViewNotifications:
		return len(m.notifications)
	}
	return 0
}

func (m Model) decideApproval(approve bool) (tea.Model, tea.Cmd) {
	if m.currentView != ViewApprovals || !m.caps.Has(capability.DecideApprovals) {
		return m, nil
	}
	if m.listCursor >= len(m.approvals) {
		return m, nil
	}
	approval := m.approvals[m.listCursor]
	if approval.Status != "pending" {
		return m, nil
	}
	soc := m.deps.Society.Current()
	if soc == nil {
		return m, nil
	}
	return m, m.decideApprovalCmd(soc.ID, approval.ID, approve)
}

// Commands. Each closure runs on its own goroutine under Bubble Tea; the
// model is never touched from inside them.

func (m Model) loginCmd() tea.Cmd {
	sess := m.deps.Session
	email := m.emailInput.Value()
	password := m.passwordInput.Value()
	return func() tea.Msg {
		return loginResultMsg{Result: sess.Login(context.Background(), email, password)}
	}
}

func (m Model) refreshSocietiesCmd() tea.Cmd {
	soc := m.deps.Society
	return func() tea.Msg {
		return societiesRefreshedMsg{Err: soc.Refresh(context.Background())}
	}
}

func (m Model) loadDashboardCmd(token fetch.Token, societyID string) tea.Cmd {
	client := m.deps.Client
	return func() tea.Msg {
		dash, err := client.GetDashboard(context.Background(), societyID)
		return dashboardLoadedMsg{Token: token, Dashboard: dash, Err: err}
	}
}

func (m Model) loadTransactionsCmd(token fetch.Token, societyID string) tea.Cmd {
	client := m.deps.Client
	return func() tea.Msg {
		txns, err := client.ListTransactions(context.Background(), societyID, api.TransactionFilter{Limit: 50})
		return transactionsLoadedMsg{Token: token, Transactions: txns, Err: err}
	}
}

func (m Model) loadBillsCmd(token fetch.Token, societyID string) tea.Cmd {
	client := m.deps.Client
	return func() tea.Msg {
		bills, err := client.ListBills(context.Background(), societyID, api.BillFilter{})
		return billsLoadedMsg{Token: token, Bills: bills, Err: err}
	}
}

func (m Model) loadApprovalsCmd(token fetch.Token, societyID string) tea.Cmd {
	client := m.deps.Client
	return func() tea.Msg {
		approvals, err := client.ListApprovals(context.Background(), societyID, "")
		return approvalsLoadedMsg{Token: token, Approvals: approvals, Err: err}
	}
}

func (m Model) loadNotificationsCmd(token fetch.Token, societyID string) tea.Cmd {
	client := m.deps.Client
	return func() tea.Msg {
		notifications, err := client.ListNotifications(context.Background(), societyID)
		return notificationsLoadedMsg{Token: token, Notifications: notifications, Err: err}
	}
}

func (m Model) decideApprovalCmd(societyID, approvalID string, approve bool) tea.Cmd {
	client := m.deps.Client
	return func() tea.Msg {
		var err error
		if approve {
			err = client.ApproveExpense(context.Background(), societyID, approvalID, "")
		} else {
			err = client.RejectExpense(context.Background(), societyID, approvalID, "")
		}
		return approvalDecidedMsg{ID: approvalID, Approved: approve, Err: err}
	}
}

func (m Model) markReadCmd(notificationID string) tea.Cmd {
	client := m.deps.Client
	return func() tea.Msg {
		return notificationsReadMsg{Err: client.MarkRead(context.Background(), notificationID)}
	}
}

func (m Model) markAllReadCmd(societyID string) tea.Cmd {
	client := m.deps.Client
	return func() tea.Msg {
		_, err := client.MarkAllRead(context.Background(), societyID)
		return notificationsReadMsg{Err: err}
	}
}

// Run starts the TUI and blocks until it exits
func Run(deps Deps) error {
	program := tea.NewProgram(NewModel(deps), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
