package api

import (
	"context"
	"fmt"
	"strconv"
)

// TransactionFilter narrows transaction listings
type TransactionFilter struct {
	Type     string
	Category string
	Page     int
	Limit    int
}

// ListTransactions returns a page of the society's transactions, newest first
func (c *Client) ListTransactions(ctx context.Context, societyID string, filter TransactionFilter) ([]Transaction, error) {
	params := map[string]string{
		"type":     filter.Type,
		"category": filter.Category,
	}
	if filter.Page > 0 {
		params["page"] = strconv.Itoa(filter.Page)
	}
	if filter.Limit > 0 {
		params["limit"] = strconv.Itoa(filter.Limit)
	}

	var txns []Transaction
	path := fmt.Sprintf("/societies/%s/transactions/", societyID) + query(params)
	if err := c.get(ctx, path, &txns); err != nil {
		return nil, err
	}
	return txns, nil
}

// CountTransactions returns the number of transactions matching the filter
func (c *Client) CountTransactions(ctx context.Context, societyID string, filter TransactionFilter) (int, error) {
	params := map[string]string{
		"type":     filter.Type,
		"category": filter.Category,
	}

	var result struct {
		Count int `json:"count"`
	}
	path := fmt.Sprintf("/societies/%s/transactions/count", societyID) + query(params)
	if err := c.get(ctx, path, &result); err != nil {
		return 0, err
	}
	return result.Count, nil
}

// CreateTransaction records a transaction; manager only. The response's
// approval status is "pending" when the amount crossed the society's
// approval threshold.
func (c *Client) CreateTransaction(ctx context.Context, societyID string, req CreateTransactionRequest) (*Transaction, error) {
	var txn Transaction
	if err := c.post(ctx, fmt.Sprintf("/societies/%s/transactions/", societyID), req, &txn); err != nil {
		return nil, err
	}
	return &txn, nil
}

// GetTransaction retrieves a single transaction
func (c *Client) GetTransaction(ctx context.Context, societyID, txnID string) (*Transaction, error) {
	var txn Transaction
	if err := c.get(ctx, fmt.Sprintf("/societies/%s/transactions/%s", societyID, txnID), &txn); err != nil {
		return nil, err
	}
	return &txn, nil
}

// GetCategories returns the backend's transaction categories by direction
func (c *Client) GetCategories(ctx context.Context, societyID string) (*Categories, error) {
	var cats Categories
	if err := c.get(ctx, fmt.Sprintf("/societies/%s/transactions/categories", societyID), &cats); err != nil {
		return nil, err
	}
	return &cats, nil
}
