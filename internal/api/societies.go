package api

import (
	"context"
	"fmt"
)

// ListSocieties returns the caller's active memberships as societies with roles
func (c *Client) ListSocieties(ctx context.Context) ([]Society, error) {
	var societies []Society
	if err := c.get(ctx, "/societies/", &societies); err != nil {
		return nil, err
	}
	return societies, nil
}

// CreateSociety creates a society; the backend makes the caller its manager
func (c *Client) CreateSociety(ctx context.Context, req CreateSocietyRequest) (*SocietyDetail, error) {
	var soc SocietyDetail
	if err := c.post(ctx, "/societies/", req, &soc); err != nil {
		return nil, err
	}
	return &soc, nil
}

// GetSociety retrieves the full society record
func (c *Client) GetSociety(ctx context.Context, societyID string) (*SocietyDetail, error) {
	var soc SocietyDetail
	if err := c.get(ctx, fmt.Sprintf("/societies/%s", societyID), &soc); err != nil {
		return nil, err
	}
	return &soc, nil
}

// UpdateSociety applies a partial update; manager only
func (c *Client) UpdateSociety(ctx context.Context, societyID string, req UpdateSocietyRequest) (*SocietyDetail, error) {
	var soc SocietyDetail
	if err := c.put(ctx, fmt.Sprintf("/societies/%s", societyID), req, &soc); err != nil {
		return nil, err
	}
	return &soc, nil
}

// GetDashboard retrieves the backend-computed society overview
func (c *Client) GetDashboard(ctx context.Context, societyID string) (*Dashboard, error) {
	var dash Dashboard
	if err := c.get(ctx, fmt.Sprintf("/societies/%s/dashboard", societyID), &dash); err != nil {
		return nil, err
	}
	return &dash, nil
}

// ListFlats returns the society's flats
func (c *Client) ListFlats(ctx context.Context, societyID string) ([]Flat, error) {
	var flats []Flat
	if err := c.get(ctx, fmt.Sprintf("/societies/%s/flats", societyID), &flats); err != nil {
		return nil, err
	}
	return flats, nil
}

// CreateFlat adds a flat to the society; manager only
func (c *Client) CreateFlat(ctx context.Context, societyID string, flat Flat) (*Flat, error) {
	var created Flat
	if err := c.post(ctx, fmt.Sprintf("/societies/%s/flats", societyID), flat, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
