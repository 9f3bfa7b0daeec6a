package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

// fixtureBackend is a minimal in-memory society backend for client tests.
// It checks the bearer header the way the real backend does and records
// what it saw for assertions.
type fixtureBackend struct {
	mu sync.Mutex

	validToken string
	seenAuth   []string
	societies  []Society
	dashboard  *Dashboard

	settings        MaintenanceSettings
	schemes         []DiscountScheme
	lastPayment     *FlatPaymentRequest
	collectionQuery string
	exportQuery     string
}

func newFixtureBackend() *fixtureBackend {
	return &fixtureBackend{
		validToken: "good-token",
		settings: MaintenanceSettings{
			DefaultRatePerSqft: decimal.NewFromInt(5),
			BillingCycle:       "monthly",
			DueDateDay:         10,
			LateFeeType:        "flat",
		},
	}
}

func (b *fixtureBackend) start(t interface{ Cleanup(func()) }) (*httptest.Server, *Client) {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/auth/login", b.handleLogin).Methods(http.MethodPost)
	api.HandleFunc("/auth/register", b.handleRegister).Methods(http.MethodPost)

	authed := api.NewRoute().Subrouter()
	authed.Use(b.requireToken)
	authed.HandleFunc("/societies/", b.handleListSocieties).Methods(http.MethodGet)
	authed.HandleFunc("/societies/{id}/dashboard", b.handleDashboard).Methods(http.MethodGet)
	authed.HandleFunc("/societies/{id}/transactions/", b.handleListTransactions).Methods(http.MethodGet)
	authed.HandleFunc("/societies/{id}/transactions/", b.handleCreateTransaction).Methods(http.MethodPost)
	authed.HandleFunc("/societies/{id}/approvals/{aid}/approve", b.handleApprove).Methods(http.MethodPost)
	authed.HandleFunc("/notifications/unread-count", b.handleUnreadCount).Methods(http.MethodGet)
	authed.HandleFunc("/societies/{id}/maintenance/settings", b.handleGetSettings).Methods(http.MethodGet)
	authed.HandleFunc("/societies/{id}/maintenance/settings", b.handlePutSettings).Methods(http.MethodPut)
	authed.HandleFunc("/societies/{id}/maintenance/discount-schemes", b.handleListSchemes).Methods(http.MethodGet)
	authed.HandleFunc("/societies/{id}/maintenance/discount-schemes", b.handleCreateScheme).Methods(http.MethodPost)
	authed.HandleFunc("/societies/{id}/maintenance/discount-schemes/{sid}", b.handleUpdateScheme).Methods(http.MethodPut)
	authed.HandleFunc("/societies/{id}/maintenance/discount-schemes/{sid}", b.handleDeleteScheme).Methods(http.MethodDelete)
	authed.HandleFunc("/societies/{id}/maintenance/bills/preview", b.handleBillRunPreview).Methods(http.MethodPost)
	authed.HandleFunc("/societies/{id}/maintenance/annual-payment/preview", b.handleAnnualPreview).Methods(http.MethodPost)
	authed.HandleFunc("/societies/{id}/maintenance/payments", b.handleFlatPayment).Methods(http.MethodPost)
	authed.HandleFunc("/societies/{id}/maintenance/collection-dashboard", b.handleCollectionDashboard).Methods(http.MethodGet)
	authed.HandleFunc("/societies/{id}/reports/export/{format}", b.handleExport).Methods(http.MethodGet)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return srv, NewClient(srv.URL)
}

func (b *fixtureBackend) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		b.mu.Lock()
		b.seenAuth = append(b.seenAuth, auth)
		valid := auth == "Bearer "+b.validToken
		b.mu.Unlock()

		if !valid {
			writeDetail(w, http.StatusUnauthorized, "Could not validate credentials")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (b *fixtureBackend) token() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.validToken
}

func (b *fixtureBackend) setToken(token string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.validToken = token
}

func (b *fixtureBackend) authHeaders() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.seenAuth...)
}

func (b *fixtureBackend) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid body")
		return
	}
	if req.Password != "secret" {
		writeDetail(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	writeJSON(w, TokenResponse{
		AccessToken: b.token(),
		TokenType:   "bearer",
		User:        User{ID: "u1", Name: "Asha Rao", Email: req.Email},
	})
}

func (b *fixtureBackend) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid body")
		return
	}
	if strings.Contains(req.Email, "taken") {
		writeDetail(w, http.StatusBadRequest, "Email already registered")
		return
	}
	writeJSON(w, TokenResponse{
		AccessToken: b.token(),
		TokenType:   "bearer",
		User:        User{ID: "u2", Name: req.Name, Email: req.Email, Phone: req.Phone},
	})
}

func (b *fixtureBackend) handleListSocieties(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	societies := append([]Society(nil), b.societies...)
	b.mu.Unlock()
	writeJSON(w, societies)
}

func (b *fixtureBackend) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if b.dashboard == nil {
		writeDetail(w, http.StatusNotFound, "Society not found")
		return
	}
	writeJSON(w, b.dashboard)
}

func (b *fixtureBackend) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	// Echo the filter back as a single fake transaction so tests can
	// assert on the query string the client built.
	writeJSON(w, []Transaction{{
		ID:        "t1",
		SocietyID: mux.Vars(r)["id"],
		Type:      r.URL.Query().Get("type"),
		Category:  r.URL.Query().Get("category"),
	}})
}

func (b *fixtureBackend) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid body")
		return
	}
	if req.Category == "" {
		writeDetail(w, http.StatusBadRequest, "Category is required")
		return
	}
	writeJSON(w, Transaction{
		ID:             "t-new",
		SocietyID:      mux.Vars(r)["id"],
		Type:           req.Type,
		Category:       req.Category,
		Amount:         req.Amount,
		ApprovalStatus: "approved",
	})
}

func (b *fixtureBackend) handleApprove(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "approved"})
}

func (b *fixtureBackend) handleUnreadCount(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]int{"count": 4})
}

func (b *fixtureBackend) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	settings := b.settings
	b.mu.Unlock()
	writeJSON(w, settings)
}

func (b *fixtureBackend) handlePutSettings(w http.ResponseWriter, r *http.Request) {
	var settings MaintenanceSettings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid body")
		return
	}
	b.mu.Lock()
	b.settings = settings
	b.mu.Unlock()
	writeJSON(w, settings)
}

func (b *fixtureBackend) handleListSchemes(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	schemes := append([]DiscountScheme(nil), b.schemes...)
	b.mu.Unlock()
	writeJSON(w, schemes)
}

func (b *fixtureBackend) handleCreateScheme(w http.ResponseWriter, r *http.Request) {
	var req CreateDiscountSchemeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid body")
		return
	}
	b.mu.Lock()
	scheme := DiscountScheme{
		ID:             fmt.Sprintf("sch-%d", len(b.schemes)+1),
		SchemeName:     req.SchemeName,
		EligibleMonths: req.EligibleMonths,
		FreeMonths:     req.FreeMonths,
		DiscountType:   req.DiscountType,
		DiscountValue:  req.DiscountValue,
		IsActive:       req.IsActive,
	}
	b.schemes = append(b.schemes, scheme)
	b.mu.Unlock()
	writeJSON(w, scheme)
}

func (b *fixtureBackend) handleUpdateScheme(w http.ResponseWriter, r *http.Request) {
	var scheme DiscountScheme
	if err := json.NewDecoder(r.Body).Decode(&scheme); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid body")
		return
	}
	id := mux.Vars(r)["sid"]
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.schemes {
		if b.schemes[i].ID == id {
			b.schemes[i] = scheme
			writeJSON(w, scheme)
			return
		}
	}
	writeDetail(w, http.StatusNotFound, "Scheme not found")
}

func (b *fixtureBackend) handleDeleteScheme(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["sid"]
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.schemes {
		if b.schemes[i].ID == id {
			b.schemes = append(b.schemes[:i], b.schemes[i+1:]...)
			writeJSON(w, map[string]string{"status": "deleted"})
			return
		}
	}
	writeDetail(w, http.StatusNotFound, "Scheme not found")
}

// handleBillRunPreview projects one 1000 sqft flat at the stored rate so
// tests can assert the period arithmetic the client sent.
func (b *fixtureBackend) handleBillRunPreview(w http.ResponseWriter, r *http.Request) {
	var req BillRunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid body")
		return
	}
	months := int64(1)
	if req.BillPeriodType == "yearly" {
		months = 12
	}
	b.mu.Lock()
	rate := b.settings.DefaultRatePerSqft
	b.mu.Unlock()

	area := decimal.NewFromInt(1000)
	amount := rate.Mul(area).Mul(decimal.NewFromInt(months))
	discount := decimal.Zero
	if req.ApplyDiscountScheme {
		discount = rate.Mul(area) // one month free
	}
	writeJSON(w, BillRunPreview{
		TotalFlats:                    1,
		TotalAreaSqft:                 area,
		TotalCollectionBeforeDiscount: amount,
		EstimatedDiscount:             discount,
		TotalCollectionAfterDiscount:  amount.Sub(discount),
		BillsPreview: []BillRunPreviewLine{{
			FlatNumber:           "A-101",
			Wing:                 "A",
			AreaSqft:             area,
			AmountBeforeDiscount: amount,
			Discount:             discount,
			FinalAmount:          amount.Sub(discount),
			PrimaryUser:          "Asha Rao",
		}},
	})
}

func (b *fixtureBackend) handleAnnualPreview(w http.ResponseWriter, r *http.Request) {
	var req AnnualPaymentPreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid body")
		return
	}
	if req.DiscountSchemeID == "" {
		writeDetail(w, http.StatusBadRequest, "Discount scheme required")
		return
	}
	total := decimal.NewFromInt(60000)
	discount := decimal.NewFromInt(5000)
	writeJSON(w, AnnualPaymentPreview{
		TotalBeforeDiscount: total,
		DiscountAmount:      discount,
		FreeMonths:          1,
		FinalPayable:        total.Sub(discount),
	})
}

func (b *fixtureBackend) handleFlatPayment(w http.ResponseWriter, r *http.Request) {
	var req FlatPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid body")
		return
	}
	b.mu.Lock()
	b.lastPayment = &req
	b.mu.Unlock()
	writeJSON(w, FlatPaymentResult{
		Status:        "paid",
		ReceiptNumber: "RCP-2026-0001",
		PaidAmount:    req.AmountPaid,
		TransactionID: "t-77",
	})
}

func (b *fixtureBackend) handleCollectionDashboard(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	b.collectionQuery = r.URL.RawQuery
	b.mu.Unlock()
	writeJSON(w, CollectionDashboard{
		TotalBilled:          decimal.NewFromInt(50000),
		TotalCollected:       decimal.NewFromInt(40000),
		TotalOutstanding:     decimal.NewFromInt(10000),
		CollectionPercentage: 80,
		TotalFlats:           10,
		PaidFlats:            8,
		PendingFlats:         2,
		MonthWiseCollection: []MonthCollection{
			{Month: 8, Billed: decimal.NewFromInt(50000), Collected: decimal.NewFromInt(40000), Pending: decimal.NewFromInt(10000)},
		},
		RecentPayments: []CollectionPayment{
			{FlatNumber: "A-101", Date: "2026-08-12", Amount: decimal.NewFromInt(5000), Mode: "upi"},
		},
	})
}

func (b *fixtureBackend) handleExport(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	b.exportQuery = r.URL.RawQuery
	b.mu.Unlock()
	format := mux.Vars(r)["format"]
	if format != "excel" && format != "pdf" {
		writeDetail(w, http.StatusNotFound, "Unknown format")
		return
	}
	w.Header().Set("Content-Type", "application/octet-stream")
	_, _ = w.Write([]byte("report-bytes-" + format))
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}

// tokenFunc adapts a function to the TokenSource interface
type tokenFunc func() string

func (f tokenFunc) Token() string { return f() }
