package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/socfin/societyctl/internal/errors"
)

// TokenSource supplies the bearer credential for outgoing requests.
// It is consulted on every call, never cached, so a token rotation on
// disk takes effect on the very next request.
type TokenSource interface {
	Token() string
}

// Client is the society backend API client. All paths are namespaced
// under BaseURL + /api.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	// Tokens supplies the bearer credential; nil means unauthenticated.
	Tokens TokenSource

	// OnUnauthorized runs once per call that the backend rejects with 401,
	// before the error is returned to the caller. The session layer uses it
	// to tear down persisted credentials.
	OnUnauthorized func()
}

// NewClient creates a new API client for the given backend base URL
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// errorResponse is the backend's error body shape
type errorResponse struct {
	Detail string `json:"detail"`
}

// doRequest performs an HTTP request with authentication
func (c *Client) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeAPIRequest, "failed to marshal request body", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+"/api"+path, reqBody)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeAPIRequest, "failed to create request", err)
	}

	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Tokens != nil {
		if token := c.Tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeAPIRequest, "request failed", err)
	}

	return resp, nil
}

// parseResponse decodes the response body into target, or extracts the
// backend's detail message into a typed error. A 401 additionally tears
// down the session via OnUnauthorized; the error still reaches the caller
// so its own error handling runs.
func (c *Client) parseResponse(resp *http.Response, target interface{}) error {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)

		detail := ""
		var errResp errorResponse
		if err := json.Unmarshal(body, &errResp); err == nil {
			detail = errResp.Detail
		}

		if resp.StatusCode == http.StatusUnauthorized {
			if c.OnUnauthorized != nil {
				c.OnUnauthorized()
			}
			if detail == "" {
				return errors.NewUnauthorizedError()
			}
			return errors.NewAPIError(resp.StatusCode, detail)
		}

		if detail == "" {
			detail = fmt.Sprintf("request failed with status %d", resp.StatusCode)
		}
		return errors.NewAPIError(resp.StatusCode, detail)
	}

	if target != nil {
		if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
			return errors.Wrap(errors.ErrCodeAPIResponse, "failed to decode response", err)
		}
	}

	return nil
}

// download issues a GET and streams the raw response body to w. Error
// responses go through the same detail extraction as JSON calls.
func (c *Client) download(ctx context.Context, path string, w io.Writer) error {
	resp, err := c.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.parseResponse(resp, nil)
	}
	defer resp.Body.Close()

	if _, err := io.Copy(w, resp.Body); err != nil {
		return errors.Wrap(errors.ErrCodeAPIResponse, "failed to read download", err)
	}
	return nil
}

// get issues a GET and decodes the result into target
func (c *Client) get(ctx context.Context, path string, target interface{}) error {
	resp, err := c.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return c.parseResponse(resp, target)
}

// post issues a POST with a JSON body and decodes the result into target
func (c *Client) post(ctx context.Context, path string, body, target interface{}) error {
	resp, err := c.doRequest(ctx, http.MethodPost, path, body)
	if err != nil {
		return err
	}
	return c.parseResponse(resp, target)
}

// put issues a PUT with a JSON body and decodes the result into target
func (c *Client) put(ctx context.Context, path string, body, target interface{}) error {
	resp, err := c.doRequest(ctx, http.MethodPut, path, body)
	if err != nil {
		return err
	}
	return c.parseResponse(resp, target)
}

// delete issues a DELETE and decodes the result into target
func (c *Client) delete(ctx context.Context, path string, target interface{}) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, path, nil)
	if err != nil {
		return err
	}
	return c.parseResponse(resp, target)
}

// query builds a query string from non-empty values
func query(params map[string]string) string {
	values := url.Values{}
	for k, v := range params {
		if v != "" {
			values.Set(k, v)
		}
	}
	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}
