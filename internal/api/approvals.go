package api

import (
	"context"
	"fmt"
)

// ListApprovals returns the society's approval requests, optionally filtered
// by status ("pending", "approved", "rejected")
func (c *Client) ListApprovals(ctx context.Context, societyID, status string) ([]Approval, error) {
	var approvals []Approval
	path := fmt.Sprintf("/societies/%s/approvals/", societyID) + query(map[string]string{"status": status})
	if err := c.get(ctx, path, &approvals); err != nil {
		return nil, err
	}
	return approvals, nil
}

// ApproveExpense approves a pending request; committee or manager only
func (c *Client) ApproveExpense(ctx context.Context, societyID, approvalID, comments string) error {
	req := ApprovalActionRequest{Comments: comments}
	return c.post(ctx, fmt.Sprintf("/societies/%s/approvals/%s/approve", societyID, approvalID), req, nil)
}

// RejectExpense rejects a pending request; committee or manager only
func (c *Client) RejectExpense(ctx context.Context, societyID, approvalID, comments string) error {
	req := ApprovalActionRequest{Comments: comments}
	return c.post(ctx, fmt.Sprintf("/societies/%s/approvals/%s/reject", societyID, approvalID), req, nil)
}
