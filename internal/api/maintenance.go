package api

import (
	"context"
	"fmt"
	"strconv"
)

// BillFilter narrows bill listings. Members only ever see their own bills;
// the backend enforces that regardless of the filter.
type BillFilter struct {
	Month  int
	Year   int
	Status string
	FlatID string
	Page   int
	Limit  int
}

// GetMaintenanceSettings returns the society's billing configuration
func (c *Client) GetMaintenanceSettings(ctx context.Context, societyID string) (*MaintenanceSettings, error) {
	var settings MaintenanceSettings
	if err := c.get(ctx, fmt.Sprintf("/societies/%s/maintenance/settings", societyID), &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// UpdateMaintenanceSettings replaces the billing configuration; manager only
func (c *Client) UpdateMaintenanceSettings(ctx context.Context, societyID string, settings MaintenanceSettings) error {
	return c.put(ctx, fmt.Sprintf("/societies/%s/maintenance/settings", societyID), settings, nil)
}

// ListDiscountSchemes returns all discount schemes, active and inactive
func (c *Client) ListDiscountSchemes(ctx context.Context, societyID string) ([]DiscountScheme, error) {
	var schemes []DiscountScheme
	if err := c.get(ctx, fmt.Sprintf("/societies/%s/maintenance/discount-schemes", societyID), &schemes); err != nil {
		return nil, err
	}
	return schemes, nil
}

// CreateDiscountScheme creates a discount scheme; manager only
func (c *Client) CreateDiscountScheme(ctx context.Context, societyID string, req CreateDiscountSchemeRequest) (*DiscountScheme, error) {
	var scheme DiscountScheme
	if err := c.post(ctx, fmt.Sprintf("/societies/%s/maintenance/discount-schemes", societyID), req, &scheme); err != nil {
		return nil, err
	}
	return &scheme, nil
}

// UpdateDiscountScheme replaces a scheme, including its active flag; manager only
func (c *Client) UpdateDiscountScheme(ctx context.Context, societyID string, scheme DiscountScheme) error {
	return c.put(ctx, fmt.Sprintf("/societies/%s/maintenance/discount-schemes/%s", societyID, scheme.ID), scheme, nil)
}

// DeleteDiscountScheme removes a scheme; manager only
func (c *Client) DeleteDiscountScheme(ctx context.Context, societyID, schemeID string) error {
	return c.delete(ctx, fmt.Sprintf("/societies/%s/maintenance/discount-schemes/%s", societyID, schemeID), nil)
}

// PreviewBillRun projects a settings-based bill run without creating bills
func (c *Client) PreviewBillRun(ctx context.Context, societyID string, req BillRunRequest) (*BillRunPreview, error) {
	var preview BillRunPreview
	if err := c.post(ctx, fmt.Sprintf("/societies/%s/maintenance/bills/preview", societyID), req, &preview); err != nil {
		return nil, err
	}
	return &preview, nil
}

// GenerateBillRun creates bills from the society's rate settings; manager
// only. The backend rejects a second run for the same period.
func (c *Client) GenerateBillRun(ctx context.Context, societyID string, req BillRunRequest) (*GenerateBillsResult, error) {
	var result GenerateBillsResult
	if err := c.post(ctx, fmt.Sprintf("/societies/%s/maintenance/bills/generate", societyID), req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// PreviewAnnualPayment projects a flat's annual payable under a scheme
func (c *Client) PreviewAnnualPayment(ctx context.Context, societyID string, req AnnualPaymentPreviewRequest) (*AnnualPaymentPreview, error) {
	var preview AnnualPaymentPreview
	if err := c.post(ctx, fmt.Sprintf("/societies/%s/maintenance/annual-payment/preview", societyID), req, &preview); err != nil {
		return nil, err
	}
	return &preview, nil
}

// RecordFlatPayment records a flat-level payment and returns the receipt;
// manager only. The backend settles the listed bills and books the inward
// transaction.
func (c *Client) RecordFlatPayment(ctx context.Context, societyID string, req FlatPaymentRequest) (*FlatPaymentResult, error) {
	var result FlatPaymentResult
	if err := c.post(ctx, fmt.Sprintf("/societies/%s/maintenance/payments", societyID), req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetCollectionDashboard returns the collection summary for a period
// (defaults to the current month when year and month are zero)
func (c *Client) GetCollectionDashboard(ctx context.Context, societyID string, year, month int) (*CollectionDashboard, error) {
	params := map[string]string{}
	if year > 0 {
		params["year"] = strconv.Itoa(year)
	}
	if month > 0 {
		params["month"] = strconv.Itoa(month)
	}

	var dashboard CollectionDashboard
	path := fmt.Sprintf("/societies/%s/maintenance/collection-dashboard", societyID) + query(params)
	if err := c.get(ctx, path, &dashboard); err != nil {
		return nil, err
	}
	return &dashboard, nil
}

// GenerateBills creates one bill per flat for a billing period; manager only.
// The backend rejects a second generation for the same month.
func (c *Client) GenerateBills(ctx context.Context, societyID string, req GenerateBillsRequest) (*GenerateBillsResult, error) {
	var result GenerateBillsResult
	if err := c.post(ctx, fmt.Sprintf("/societies/%s/maintenance/generate", societyID), req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListBills returns maintenance bills matching the filter, newest first
func (c *Client) ListBills(ctx context.Context, societyID string, filter BillFilter) ([]Bill, error) {
	params := map[string]string{
		"status":  filter.Status,
		"flat_id": filter.FlatID,
	}
	if filter.Month > 0 {
		params["month"] = strconv.Itoa(filter.Month)
	}
	if filter.Year > 0 {
		params["year"] = strconv.Itoa(filter.Year)
	}
	if filter.Page > 0 {
		params["page"] = strconv.Itoa(filter.Page)
	}
	if filter.Limit > 0 {
		params["limit"] = strconv.Itoa(filter.Limit)
	}

	var bills []Bill
	path := fmt.Sprintf("/societies/%s/maintenance/bills", societyID) + query(params)
	if err := c.get(ctx, path, &bills); err != nil {
		return nil, err
	}
	return bills, nil
}

// RecordPayment records a payment against a bill; manager only. The backend
// also books the matching inward transaction.
func (c *Client) RecordPayment(ctx context.Context, societyID string, req RecordPaymentRequest) (*PaymentResult, error) {
	var result PaymentResult
	if err := c.post(ctx, fmt.Sprintf("/societies/%s/maintenance/pay", societyID), req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetFlatLedger returns a flat's bills, most recent period first
func (c *Client) GetFlatLedger(ctx context.Context, societyID, flatID string) ([]Bill, error) {
	var bills []Bill
	if err := c.get(ctx, fmt.Sprintf("/societies/%s/maintenance/ledger/%s", societyID, flatID), &bills); err != nil {
		return nil, err
	}
	return bills, nil
}
