// Package capability maps a membership role to the set of actions its
// holder may request. This is a UX convenience only: the backend is the
// authority and re-checks every mutation.
package capability

import (
	"github.com/socfin/societyctl/internal/api"
)

// Capability identifies an action or view a role may use
type Capability string

const (
	ViewDashboard     Capability = "view-dashboard"
	ViewTransactions  Capability = "view-transactions"
	AddTransaction    Capability = "add-transaction"
	ViewMaintenance   Capability = "view-maintenance"
	GenerateBills     Capability = "generate-bills"
	RecordPayment     Capability = "record-payment"
	ManageBilling     Capability = "manage-billing"
	ViewOwnBills      Capability = "view-own-bills"
	ViewApprovals     Capability = "view-approvals"
	DecideApprovals   Capability = "decide-approvals"
	ViewReports       Capability = "view-reports"
	ManageMembers     Capability = "manage-members"
	ManageSociety     Capability = "manage-society"
	ViewNotifications Capability = "view-notifications"
)

// Set is the resolved capability set for one role
type Set map[Capability]bool

// Has reports whether the capability is in the set
func (s Set) Has(c Capability) bool {
	return s[c]
}

// ForRole resolves a role to its capability set. Unknown roles get the
// member set, matching the stores' member default.
func ForRole(role string) Set {
	common := []Capability{
		ViewDashboard,
		ViewTransactions,
		ViewReports,
		ViewNotifications,
	}

	var extra []Capability
	switch role {
	case api.RoleManager:
		extra = []Capability{
			AddTransaction,
			ViewMaintenance,
			GenerateBills,
			RecordPayment,
			ManageBilling,
			ViewApprovals,
			DecideApprovals,
			ManageMembers,
			ManageSociety,
		}
	case api.RoleCommittee:
		extra = []Capability{
			ViewApprovals,
			DecideApprovals,
		}
	case api.RoleAuditor:
		extra = []Capability{
			ViewMaintenance,
		}
	default:
		extra = []Capability{
			ViewOwnBills,
		}
	}

	set := make(Set, len(common)+len(extra))
	for _, c := range common {
		set[c] = true
	}
	for _, c := range extra {
		set[c] = true
	}
	return set
}
