package api

import (
	"github.com/shopspring/decimal"
)

// Role names as the backend knows them
const (
	RoleManager   = "manager"
	RoleCommittee = "committee"
	RoleAuditor   = "auditor"
	RoleMember    = "member"
)

// User represents a registered account
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// Society represents a housing society with the caller's role in it.
// Fetched as a set keyed by ID; the role comes from the caller's membership.
type Society struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Address      string `json:"address"`
	TotalFlats   int    `json:"total_flats"`
	Description  string `json:"description"`
	Role         string `json:"role"`
	MembershipID string `json:"membership_id"`
}

// SocietyDetail is the full society record, manager-editable
type SocietyDetail struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Address           string          `json:"address"`
	TotalFlats        int             `json:"total_flats"`
	Description       string          `json:"description"`
	ApprovalThreshold decimal.Decimal `json:"approval_threshold"`
	CreatedAt         string          `json:"created_at"`
	CreatedBy         string          `json:"created_by"`
}

// CreateSocietyRequest creates a society; the creator becomes its manager
type CreateSocietyRequest struct {
	Name              string          `json:"name"`
	Address           string          `json:"address"`
	TotalFlats        int             `json:"total_flats"`
	Description       string          `json:"description"`
	ApprovalThreshold decimal.Decimal `json:"approval_threshold"`
}

// UpdateSocietyRequest carries partial society updates
type UpdateSocietyRequest struct {
	Name              *string          `json:"name,omitempty"`
	Address           *string          `json:"address,omitempty"`
	TotalFlats        *int             `json:"total_flats,omitempty"`
	Description       *string          `json:"description,omitempty"`
	ApprovalThreshold *decimal.Decimal `json:"approval_threshold,omitempty"`
}

// Membership links a user to a society with a role
type Membership struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	SocietyID string `json:"society_id"`
	Role      string `json:"role"`
	Status    string `json:"status"`
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
}

// AddMemberRequest adds an existing user to a society by email
type AddMemberRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Flat represents one flat in a society
type Flat struct {
	ID         string          `json:"id"`
	SocietyID  string          `json:"society_id"`
	FlatNumber string          `json:"flat_number"`
	Floor      int             `json:"floor"`
	Wing       string          `json:"wing"`
	AreaSqft   decimal.Decimal `json:"area_sqft"`
	FlatType   string          `json:"flat_type"`
}

// FlatMember links a user to a flat
type FlatMember struct {
	ID           string `json:"id"`
	FlatID       string `json:"flat_id"`
	UserID       string `json:"user_id"`
	SocietyID    string `json:"society_id"`
	RelationType string `json:"relation_type"`
	IsPrimary    bool   `json:"is_primary"`
	UserName     string `json:"user_name"`
	UserEmail    string `json:"user_email"`
}

// AddFlatMemberRequest assigns a user to a flat
type AddFlatMemberRequest struct {
	UserID       string `json:"user_id"`
	RelationType string `json:"relation_type"`
	IsPrimary    bool   `json:"is_primary"`
}

// Transaction types
const (
	TxnInward  = "inward"
	TxnOutward = "outward"
)

// Transaction is an inward or outward money movement
type Transaction struct {
	ID             string          `json:"id"`
	SocietyID      string          `json:"society_id"`
	Type           string          `json:"type"`
	Category       string          `json:"category"`
	Amount         decimal.Decimal `json:"amount"`
	Description    string          `json:"description"`
	VendorName     string          `json:"vendor_name"`
	PaymentMode    string          `json:"payment_mode"`
	InvoicePath    string          `json:"invoice_path"`
	Date           string          `json:"date"`
	CreatedBy      string          `json:"created_by"`
	CreatedByName  string          `json:"created_by_name"`
	CreatedAt      string          `json:"created_at"`
	ApprovalStatus string          `json:"approval_status"`
}

// CreateTransactionRequest records a new transaction. Outward amounts at or
// above the society's approval threshold come back with a pending status.
type CreateTransactionRequest struct {
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	VendorName  string          `json:"vendor_name,omitempty"`
	PaymentMode string          `json:"payment_mode,omitempty"`
	Date        string          `json:"date,omitempty"`
}

// Categories groups the backend's transaction categories by direction
type Categories struct {
	Inward  []string `json:"inward"`
	Outward []string `json:"outward"`
}

// Bill is a maintenance charge owed by a flat for a period
type Bill struct {
	ID         string          `json:"id"`
	SocietyID  string          `json:"society_id"`
	FlatID     string          `json:"flat_id"`
	FlatNumber string          `json:"flat_number"`
	MemberID   string          `json:"member_id"`
	MemberName string          `json:"member_name"`
	Month      int             `json:"month"`
	Year       int             `json:"year"`
	Amount     decimal.Decimal `json:"amount"`
	DueDate    string          `json:"due_date"`
	LateFee    decimal.Decimal `json:"late_fee"`
	Status     string          `json:"status"`
	PaidAmount decimal.Decimal `json:"paid_amount"`
	CreatedAt  string          `json:"created_at"`
}

// GenerateBillsRequest creates one bill per flat for a billing period
type GenerateBillsRequest struct {
	Month         int             `json:"month"`
	Year          int             `json:"year"`
	AmountPerFlat decimal.Decimal `json:"amount_per_flat"`
	DueDate       string          `json:"due_date"`
	LateFee       decimal.Decimal `json:"late_fee"`
}

// GenerateBillsResult reports how many bills were created
type GenerateBillsResult struct {
	Status       string `json:"status"`
	BillsCreated int    `json:"bills_created"`
}

// MaintenanceSettings is the society's billing configuration. Bills
// generated from settings charge rate-per-sqft times the flat's area.
type MaintenanceSettings struct {
	DefaultRatePerSqft      decimal.Decimal `json:"default_rate_per_sqft"`
	BillingCycle            string          `json:"billing_cycle"`
	DueDateDay              int             `json:"due_date_day"`
	LateFeeAmount           decimal.Decimal `json:"late_fee_amount"`
	LateFeeType             string          `json:"late_fee_type"`
	IsDiscountSchemeEnabled bool            `json:"is_discount_scheme_enabled"`
}

// DiscountScheme rewards advance payment, either with free months or a
// percentage or flat reduction
type DiscountScheme struct {
	ID             string          `json:"id"`
	SchemeName     string          `json:"scheme_name"`
	EligibleMonths int             `json:"eligible_months"`
	FreeMonths     int             `json:"free_months"`
	DiscountType   string          `json:"discount_type"`
	DiscountValue  decimal.Decimal `json:"discount_value"`
	IsActive       bool            `json:"is_active"`
}

// CreateDiscountSchemeRequest creates a discount scheme
type CreateDiscountSchemeRequest struct {
	SchemeName     string          `json:"scheme_name"`
	EligibleMonths int             `json:"eligible_months"`
	FreeMonths     int             `json:"free_months"`
	DiscountType   string          `json:"discount_type"`
	DiscountValue  decimal.Decimal `json:"discount_value"`
	IsActive       bool            `json:"is_active"`
}

// BillRunRequest describes a settings-based bill run: monthly charges one
// period, yearly charges twelve and may apply a discount scheme
type BillRunRequest struct {
	BillPeriodType      string `json:"bill_period_type"`
	Month               int    `json:"month,omitempty"`
	Year                int    `json:"year"`
	ApplyDiscountScheme bool   `json:"apply_discount_scheme"`
	DiscountSchemeID    string `json:"discount_scheme_id,omitempty"`
}

// BillRunPreviewLine is one flat's projected bill in a run preview
type BillRunPreviewLine struct {
	FlatNumber           string          `json:"flat_number"`
	Wing                 string          `json:"wing"`
	AreaSqft             decimal.Decimal `json:"area_sqft"`
	AmountBeforeDiscount decimal.Decimal `json:"amount_before_discount"`
	Discount             decimal.Decimal `json:"discount"`
	FinalAmount          decimal.Decimal `json:"final_amount"`
	PrimaryUser          string          `json:"primary_user"`
}

// BillRunPreview projects a bill run without creating anything
type BillRunPreview struct {
	TotalFlats                    int                  `json:"total_flats"`
	TotalAreaSqft                 decimal.Decimal      `json:"total_area_sqft"`
	TotalCollectionBeforeDiscount decimal.Decimal      `json:"total_collection_before_discount"`
	EstimatedDiscount             decimal.Decimal      `json:"estimated_discount"`
	TotalCollectionAfterDiscount  decimal.Decimal      `json:"total_collection_after_discount"`
	BillsPreview                  []BillRunPreviewLine `json:"bills_preview"`
}

// AnnualPaymentPreviewRequest asks what a flat owes for a full year under
// a discount scheme
type AnnualPaymentPreviewRequest struct {
	FlatID           string `json:"flat_id"`
	Year             int    `json:"year"`
	DiscountSchemeID string `json:"discount_scheme_id"`
}

// AnnualPaymentPreview is the projected annual payable for one flat
type AnnualPaymentPreview struct {
	TotalBeforeDiscount decimal.Decimal `json:"total_before_discount"`
	DiscountAmount      decimal.Decimal `json:"discount_amount"`
	FreeMonths          int             `json:"free_months"`
	FinalPayable        decimal.Decimal `json:"final_payable"`
}

// FlatPaymentRequest records a payment for a flat, settling the listed
// bills or a whole year when IsAnnualPayment is set
type FlatPaymentRequest struct {
	FlatID               string          `json:"flat_id"`
	BillIDs              []string        `json:"bill_ids"`
	AmountPaid           decimal.Decimal `json:"amount_paid"`
	PaymentMode          string          `json:"payment_mode"`
	PaymentDate          string          `json:"payment_date"`
	TransactionReference string          `json:"transaction_reference,omitempty"`
	Remarks              string          `json:"remarks,omitempty"`
	IsAnnualPayment      bool            `json:"is_annual_payment"`
	DiscountSchemeID     string          `json:"discount_scheme_id,omitempty"`
}

// FlatPaymentResult is the outcome of a flat payment, with the receipt
// number the backend issued
type FlatPaymentResult struct {
	Status        string          `json:"status"`
	ReceiptNumber string          `json:"receipt_number"`
	PaidAmount    decimal.Decimal `json:"paid_amount"`
	TransactionID string          `json:"transaction_id"`
}

// MonthCollection is one month of billed versus collected amounts
type MonthCollection struct {
	Month     int             `json:"month"`
	Billed    decimal.Decimal `json:"billed"`
	Collected decimal.Decimal `json:"collected"`
	Pending   decimal.Decimal `json:"pending"`
}

// CollectionPayment is a recent payment shown on the collection dashboard
type CollectionPayment struct {
	FlatNumber string          `json:"flat_number"`
	Date       string          `json:"date"`
	Amount     decimal.Decimal `json:"amount"`
	Mode       string          `json:"mode"`
}

// CollectionDashboard summarizes maintenance collection for a period
type CollectionDashboard struct {
	TotalBilled          decimal.Decimal     `json:"total_billed"`
	TotalCollected       decimal.Decimal     `json:"total_collected"`
	TotalOutstanding     decimal.Decimal     `json:"total_outstanding"`
	CollectionPercentage float64             `json:"collection_percentage"`
	TotalFlats           int                 `json:"total_flats"`
	PaidFlats            int                 `json:"paid_flats"`
	PendingFlats         int                 `json:"pending_flats"`
	OverdueFlats         int                 `json:"overdue_flats"`
	MonthWiseCollection  []MonthCollection   `json:"month_wise_collection"`
	RecentPayments       []CollectionPayment `json:"recent_payments"`
}

// RecordPaymentRequest records a payment against a bill
type RecordPaymentRequest struct {
	BillID      string          `json:"bill_id"`
	AmountPaid  decimal.Decimal `json:"amount_paid"`
	PaymentMode string          `json:"payment_mode"`
}

// PaymentResult is the outcome of recording a payment
type PaymentResult struct {
	Status        string          `json:"status"`
	PaidAmount    decimal.Decimal `json:"paid_amount"`
	TransactionID string          `json:"transaction_id"`
}

// Approval is a pending authorization for an outward transaction that
// crossed the society's approval threshold
type Approval struct {
	ID              string       `json:"id"`
	TransactionID   string       `json:"transaction_id"`
	Transaction     *Transaction `json:"transaction,omitempty"`
	RequestedBy     string       `json:"requested_by"`
	RequestedByName string       `json:"requested_by_name"`
	Status          string       `json:"status"`
	ApprovedBy      string       `json:"approved_by"`
	ApprovedByName  string       `json:"approved_by_name"`
	Comments        string       `json:"comments"`
	CreatedAt       string       `json:"created_at"`
}

// ApprovalActionRequest carries optional reviewer comments
type ApprovalActionRequest struct {
	Comments string `json:"comments"`
}

// Notification is a per-user message scoped to a society
type Notification struct {
	ID        string `json:"id"`
	SocietyID string `json:"society_id"`
	UserID    string `json:"user_id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Type      string `json:"type"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"created_at"`
}

// MonthlySummary aggregates one month of approved transactions
type MonthlySummary struct {
	Month            int             `json:"month"`
	Year             int             `json:"year"`
	TotalInward      decimal.Decimal `json:"total_inward"`
	TotalOutward     decimal.Decimal `json:"total_outward"`
	Net              decimal.Decimal `json:"net"`
	TransactionCount int             `json:"transaction_count"`
}

// CategorySpending aggregates outward spend per category
type CategorySpending struct {
	Category   string          `json:"category"`
	Total      decimal.Decimal `json:"total"`
	Count      int             `json:"count"`
	Percentage float64         `json:"percentage"`
}

// OutstandingDue is an unpaid or partially paid bill with the balance owed
type OutstandingDue struct {
	Bill
	Outstanding decimal.Decimal `json:"outstanding"`
}

// AnnualSummary aggregates a full year of approved transactions
type AnnualSummary struct {
	Year             int              `json:"year"`
	TotalInward      decimal.Decimal  `json:"total_inward"`
	TotalOutward     decimal.Decimal  `json:"total_outward"`
	Net              decimal.Decimal  `json:"net"`
	TransactionCount int              `json:"transaction_count"`
	Monthly          []MonthlySummary `json:"monthly"`
}

// MonthlyTrendPoint is one month of the dashboard trend chart
type MonthlyTrendPoint struct {
	Month   string          `json:"month"`
	Inward  decimal.Decimal `json:"inward"`
	Outward decimal.Decimal `json:"outward"`
}

// Dashboard is the society overview the backend computes
type Dashboard struct {
	SocietyBalance     decimal.Decimal     `json:"society_balance"`
	TotalInward        decimal.Decimal     `json:"total_inward"`
	TotalOutward       decimal.Decimal     `json:"total_outward"`
	PendingDues        int                 `json:"pending_dues"`
	PendingApprovals   int                 `json:"pending_approvals"`
	RecentTransactions []Transaction       `json:"recent_transactions"`
	MonthlyTrend       []MonthlyTrendPoint `json:"monthly_trend"`
	MemberCount        int                 `json:"member_count"`
	FlatCount          int                 `json:"flat_count"`
}
