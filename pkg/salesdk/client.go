package salesdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client is a typed HTTP client for the token sale service. The zero value
// is not usable; construct one with NewClient.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	// AdminToken, when set, is attached as a bearer token to admin
	// endpoint calls.
	AdminToken string
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// APIError is a structured error response from the service.
type APIError struct {
	StatusCode  int
	Code        string
	Description string
}

func (e *APIError) Error() string {
	if e.Description != "" {
		return fmt.Sprintf("%s: %s (status %d)", e.Code, e.Description, e.StatusCode)
	}
	return fmt.Sprintf("%s (status %d)", e.Code, e.StatusCode)
}

func (c *Client) url(path string) string {
	return c.BaseURL + path
}

// doJSON sends a request with an optional JSON body and decodes the
// response into target when it is non-nil. Non-2xx responses become
// *APIError values.
func (c *Client) doJSON(
	ctx context.Context,
	method, path string,
	body any,
	target any,
	admin bool,
) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if admin {
		req.Header.Set("Authorization", "Bearer "+c.AdminToken)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp ErrorResponse
		if json.Unmarshal(raw, &errResp) == nil && errResp.Error != "" {
			return &APIError{
				StatusCode:  resp.StatusCode,
				Code:        errResp.Error,
				Description: errResp.ErrorDescription,
			}
		}
		return &APIError{
			StatusCode: resp.StatusCode,
			Code:       ErrorCodeServerError,
		}
	}

	if target == nil {
		return nil
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
