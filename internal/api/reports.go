package api

import (
	"context"
	"fmt"
	"io"
	"strconv"
)

// GetMonthlySummary returns per-month totals for a year (defaults to the
// current year when year is zero)
func (c *Client) GetMonthlySummary(ctx context.Context, societyID string, year int) ([]MonthlySummary, error) {
	params := map[string]string{}
	if year > 0 {
		params["year"] = strconv.Itoa(year)
	}

	var summary []MonthlySummary
	path := fmt.Sprintf("/societies/%s/reports/monthly-summary", societyID) + query(params)
	if err := c.get(ctx, path, &summary); err != nil {
		return nil, err
	}
	return summary, nil
}

// GetCategorySpending returns outward spend grouped by category
func (c *Client) GetCategorySpending(ctx context.Context, societyID string, year, month int) ([]CategorySpending, error) {
	params := map[string]string{}
	if year > 0 {
		params["year"] = strconv.Itoa(year)
	}
	if month > 0 {
		params["month"] = strconv.Itoa(month)
	}

	var spending []CategorySpending
	path := fmt.Sprintf("/societies/%s/reports/category-spending", societyID) + query(params)
	if err := c.get(ctx, path, &spending); err != nil {
		return nil, err
	}
	return spending, nil
}

// GetOutstandingDues returns unpaid and partially paid bills with balances
func (c *Client) GetOutstandingDues(ctx context.Context, societyID string) ([]OutstandingDue, error) {
	var dues []OutstandingDue
	if err := c.get(ctx, fmt.Sprintf("/societies/%s/reports/outstanding-dues", societyID), &dues); err != nil {
		return nil, err
	}
	return dues, nil
}

// Report export formats the backend renders
const (
	ExportExcel = "excel"
	ExportPDF   = "pdf"
)

// ExportReport streams a year's transaction report to w in the given
// format (excel or pdf). The backend renders the file; the client only
// copies bytes.
func (c *Client) ExportReport(ctx context.Context, societyID, format string, year int, w io.Writer) error {
	if format != ExportExcel && format != ExportPDF {
		return fmt.Errorf("unsupported export format %q", format)
	}

	params := map[string]string{}
	if year > 0 {
		params["year"] = strconv.Itoa(year)
	}
	path := fmt.Sprintf("/societies/%s/reports/export/%s", societyID, format) + query(params)
	return c.download(ctx, path, w)
}

// GetAnnualSummary returns a full year's totals with the monthly breakdown
func (c *Client) GetAnnualSummary(ctx context.Context, societyID string, year int) (*AnnualSummary, error) {
	params := map[string]string{}
	if year > 0 {
		params["year"] = strconv.Itoa(year)
	}

	var summary AnnualSummary
	path := fmt.Sprintf("/societies/%s/reports/annual-summary", societyID) + query(params)
	if err := c.get(ctx, path, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}
