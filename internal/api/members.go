package api

import (
	"context"
	"fmt"
)

// ListMembers returns all memberships of a society
func (c *Client) ListMembers(ctx context.Context, societyID string) ([]Membership, error) {
	var members []Membership
	if err := c.get(ctx, fmt.Sprintf("/societies/%s/members", societyID), &members); err != nil {
		return nil, err
	}
	return members, nil
}

// AddMember adds an existing user to the society by email; manager only
func (c *Client) AddMember(ctx context.Context, societyID string, req AddMemberRequest) (*Membership, error) {
	var member Membership
	if err := c.post(ctx, fmt.Sprintf("/societies/%s/members", societyID), req, &member); err != nil {
		return nil, err
	}
	return &member, nil
}

// UpdateMembership changes a membership's role or status; manager only.
// Empty fields are left unchanged.
func (c *Client) UpdateMembership(ctx context.Context, societyID, membershipID, role, status string) error {
	path := fmt.Sprintf("/societies/%s/members/%s", societyID, membershipID) +
		query(map[string]string{"role": role, "status": status})
	return c.put(ctx, path, nil, nil)
}

// ListFlatMembers returns the users assigned to a flat
func (c *Client) ListFlatMembers(ctx context.Context, societyID, flatID string) ([]FlatMember, error) {
	var members []FlatMember
	if err := c.get(ctx, fmt.Sprintf("/societies/%s/flats/%s/members", societyID, flatID), &members); err != nil {
		return nil, err
	}
	return members, nil
}

// AddFlatMember assigns a user to a flat; manager only
func (c *Client) AddFlatMember(ctx context.Context, societyID, flatID string, req AddFlatMemberRequest) (*FlatMember, error) {
	var member FlatMember
	if err := c.post(ctx, fmt.Sprintf("/societies/%s/flats/%s/members", societyID, flatID), req, &member); err != nil {
		return nil, err
	}
	return &member, nil
}

// RemoveFlatMember removes a user from a flat; manager only
func (c *Client) RemoveFlatMember(ctx context.Context, societyID, flatID, flatMemberID string) error {
	return c.delete(ctx, fmt.Sprintf("/societies/%s/flats/%s/members/%s", societyID, flatID, flatMemberID), nil)
}
