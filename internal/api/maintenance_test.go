package api

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authedClient(t *testing.T) (*fixtureBackend, *Client) {
	t.Helper()
	backend := newFixtureBackend()
	_, client := backend.start(t)
	client.Tokens = tokenFunc(func() string { return "good-token" })
	return backend, client
}

func TestMaintenanceSettingsRoundTrip(t *testing.T) {
	_, client := authedClient(t)

	settings, err := client.GetMaintenanceSettings(context.Background(), "s1")
	require.NoError(t, err)
	assert.True(t, settings.DefaultRatePerSqft.Equal(decimal.NewFromInt(5)))
	assert.Equal(t, "monthly", settings.BillingCycle)

	settings.DefaultRatePerSqft = decimal.RequireFromString("6.50")
	settings.LateFeeAmount = decimal.NewFromInt(100)
	require.NoError(t, client.UpdateMaintenanceSettings(context.Background(), "s1", *settings))

	updated, err := client.GetMaintenanceSettings(context.Background(), "s1")
	require.NoError(t, err)
	assert.True(t, updated.DefaultRatePerSqft.Equal(decimal.RequireFromString("6.50")))
	assert.True(t, updated.LateFeeAmount.Equal(decimal.NewFromInt(100)))
}

func TestDiscountSchemeLifecycle(t *testing.T) {
	_, client := authedClient(t)
	ctx := context.Background()

	scheme, err := client.CreateDiscountScheme(ctx, "s1", CreateDiscountSchemeRequest{
		SchemeName:     "Pay 12 Get 1 Free",
		EligibleMonths: 12,
		FreeMonths:     1,
		DiscountType:   "free_months",
		IsActive:       true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, scheme.ID)

	schemes, err := client.ListDiscountSchemes(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, schemes, 1)
	assert.Equal(t, "Pay 12 Get 1 Free", schemes[0].SchemeName)

	scheme.IsActive = false
	require.NoError(t, client.UpdateDiscountScheme(ctx, "s1", *scheme))

	schemes, err = client.ListDiscountSchemes(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, schemes, 1)
	assert.False(t, schemes[0].IsActive)

	require.NoError(t, client.DeleteDiscountScheme(ctx, "s1", scheme.ID))

	schemes, err = client.ListDiscountSchemes(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, schemes)
}

func TestDeleteMissingSchemeSurfacesDetail(t *testing.T) {
	_, client := authedClient(t)

	err := client.DeleteDiscountScheme(context.Background(), "s1", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Scheme not found")
}

func TestPreviewBillRunMonthly(t *testing.T) {
	_, client := authedClient(t)

	preview, err := client.PreviewBillRun(context.Background(), "s1", BillRunRequest{
		BillPeriodType: "monthly",
		Month:          8,
		Year:           2026,
	})
	require.NoError(t, err)

	// 1000 sqft at rate 5 for one month.
	assert.Equal(t, 1, preview.TotalFlats)
	assert.True(t, preview.TotalCollectionBeforeDiscount.Equal(decimal.NewFromInt(5000)))
	assert.True(t, preview.EstimatedDiscount.IsZero())
	require.Len(t, preview.BillsPreview, 1)
	assert.Equal(t, "A-101", preview.BillsPreview[0].FlatNumber)
}

func TestPreviewBillRunYearlyWithScheme(t *testing.T) {
	_, client := authedClient(t)

	preview, err := client.PreviewBillRun(context.Background(), "s1", BillRunRequest{
		BillPeriodType:      "yearly",
		Year:                2026,
		ApplyDiscountScheme: true,
		DiscountSchemeID:    "sch-1",
	})
	require.NoError(t, err)

	// Twelve months billed, one month free.
	assert.True(t, preview.TotalCollectionBeforeDiscount.Equal(decimal.NewFromInt(60000)))
	assert.True(t, preview.EstimatedDiscount.Equal(decimal.NewFromInt(5000)))
	assert.True(t, preview.TotalCollectionAfterDiscount.Equal(decimal.NewFromInt(55000)))
}

func TestAnnualPaymentPreview(t *testing.T) {
	_, client := authedClient(t)

	preview, err := client.PreviewAnnualPayment(context.Background(), "s1", AnnualPaymentPreviewRequest{
		FlatID:           "flat-1",
		Year:             2026,
		DiscountSchemeID: "sch-1",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, preview.FreeMonths)
	assert.True(t, preview.FinalPayable.Equal(decimal.NewFromInt(55000)))
}

func TestRecordFlatPayment(t *testing.T) {
	backend, client := authedClient(t)

	result, err := client.RecordFlatPayment(context.Background(), "s1", FlatPaymentRequest{
		FlatID:      "flat-1",
		BillIDs:     []string{"bill-1", "bill-2"},
		AmountPaid:  decimal.NewFromInt(5000),
		PaymentMode: "upi",
		PaymentDate: "2026-08-30",
	})
	require.NoError(t, err)
	assert.Equal(t, "RCP-2026-0001", result.ReceiptNumber)
	assert.True(t, result.PaidAmount.Equal(decimal.NewFromInt(5000)))

	backend.mu.Lock()
	recorded := backend.lastPayment
	backend.mu.Unlock()
	require.NotNil(t, recorded)
	assert.Equal(t, []string{"bill-1", "bill-2"}, recorded.BillIDs)
	assert.False(t, recorded.IsAnnualPayment)
}

func TestCollectionDashboardQuery(t *testing.T) {
	backend, client := authedClient(t)

	dashboard, err := client.GetCollectionDashboard(context.Background(), "s1", 2026, 8)
	require.NoError(t, err)
	assert.Equal(t, 80.0, dashboard.CollectionPercentage)
	assert.Equal(t, 8, dashboard.PaidFlats)
	require.Len(t, dashboard.MonthWiseCollection, 1)
	assert.True(t, dashboard.MonthWiseCollection[0].Collected.Equal(decimal.NewFromInt(40000)))

	backend.mu.Lock()
	query := backend.collectionQuery
	backend.mu.Unlock()
	assert.Contains(t, query, "year=2026")
	assert.Contains(t, query, "month=8")
}
