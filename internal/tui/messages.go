package tui

import (
	"github.com/socfin/societyctl/internal/api"
	"github.com/socfin/societyctl/internal/fetch"
	"github.com/socfin/societyctl/internal/session"
)

// loginResultMsg carries the outcome of a login attempt
type loginResultMsg struct {
	Result session.Result
}

// societiesRefreshedMsg signals that the membership set was refetched
type societiesRefreshedMsg struct {
	Err error
}

// Data-loading messages carry the fetch token they were issued with.
// A message whose token is no longer current belongs to an abandoned
// view and is dropped without touching the model.
type dashboardLoadedMsg struct {
	Token     fetch.Token
	Dashboard *api.Dashboard
	Err       error
}

type transactionsLoadedMsg struct {
	Token        fetch.Token
	Transactions []api.Transaction
	Err          error
}

type billsLoadedMsg struct {
	Token fetch.Token
	Bills []api.Bill
	Err   error
}

type approvalsLoadedMsg struct {
	Token     fetch.Token
	Approvals []api.Approval
	Err       error
}

type notificationsLoadedMsg struct {
	Token         fetch.Token
	Notifications []api.Notification
	Err           error
}

// approvalDecidedMsg reports an approve/reject action
type approvalDecidedMsg struct {
	ID       string
	Approved bool
	Err      error
}

// notificationsReadMsg reports a mark-read action
type notificationsReadMsg struct {
	Err error
}
