package api

import (
	"context"
)

// LoginRequest carries login credentials
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest creates a new account
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// TokenResponse is returned by both login and registration; registration
// implies immediate authentication.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}

// Login authenticates with email and password
func (c *Client) Login(ctx context.Context, email, password string) (*TokenResponse, error) {
	req := LoginRequest{Email: email, Password: password}

	var resp TokenResponse
	if err := c.post(ctx, "/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates an account and returns a live session
func (c *Client) Register(ctx context.Context, name, email, phone, password string) (*TokenResponse, error) {
	req := RegisterRequest{Name: name, Email: email, Phone: phone, Password: password}

	var resp TokenResponse
	if err := c.post(ctx, "/auth/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
