package salesdk

import (
	"context"
	"net/http"
	"net/url"
)

// Apply signs up a new applicant. The returned view carries the private ID
// the applicant needs for every follow-up call; it is also emailed to them.
func (c *Client) Apply(ctx context.Context, req ApplyRequest) (ApplicationView, error) {
	var view ApplicationView
	err := c.doJSON(ctx, http.MethodPost, "/v1/applications", req, &view, false)
	return view, err
}

// GetApplication fetches the applicant's view of their application.
func (c *Client) GetApplication(ctx context.Context, privateID string) (ApplicationView, error) {
	var view ApplicationView
	path := "/v1/applications/" + url.PathEscape(privateID)
	err := c.doJSON(ctx, http.MethodGet, path, nil, &view, false)
	return view, err
}

// UpdateApplication applies a partial profile update. With validate set
// the program's mandatory fields must all be present on the patch.
func (c *Client) UpdateApplication(
	ctx context.Context,
	privateID string,
	req UpdateApplicationRequest,
	validate bool,
) (ApplicationView, error) {
	var view ApplicationView
	path := "/v1/applications/" + url.PathEscape(privateID)
	if !validate {
		path += "?validate=false"
	}
	err := c.doJSON(ctx, http.MethodPatch, path, req, &view, false)
	return view, err
}

// LockApplication finalizes the application against further edits.
func (c *Client) LockApplication(ctx context.Context, privateID string) (ApplicationView, error) {
	var view ApplicationView
	path := "/v1/applications/" + url.PathEscape(privateID) + "/lock"
	err := c.doJSON(ctx, http.MethodPost, path, nil, &view, false)
	return view, err
}

// AddTransaction records a payment transaction hash.
func (c *Client) AddTransaction(
	ctx context.Context,
	privateID string,
	txHash string,
) (ApplicationView, error) {
	var view ApplicationView
	path := "/v1/applications/" + url.PathEscape(privateID) + "/transactions"
	err := c.doJSON(ctx, http.MethodPost, path, AddTransactionRequest{TxHash: txHash}, &view, false)
	return view, err
}

// Livez reports process liveness.
func (c *Client) Livez(ctx context.Context) (HealthResponse, error) {
	var health HealthResponse
	err := c.doJSON(ctx, http.MethodGet, "/livez", nil, &health, false)
	return health, err
}

// Readyz reports service readiness, store connectivity included.
func (c *Client) Readyz(ctx context.Context) (HealthResponse, error) {
	var health HealthResponse
	err := c.doJSON(ctx, http.MethodGet, "/readyz", nil, &health, false)
	return health, err
}
