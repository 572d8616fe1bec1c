package salesdk

import (
	"context"
	"net/http"
	"net/url"
)

// ListApplications returns every application in creation order. Requires a
// token with the sale:read scope.
func (c *Client) ListApplications(ctx context.Context) ([]AdminApplication, error) {
	var apps []AdminApplication
	err := c.doJSON(ctx, http.MethodGet, "/v1/admin/applications", nil, &apps, true)
	return apps, err
}

// GetApplicationByPublicID returns the full record, audit dates included.
// Requires a token with the sale:read scope.
func (c *Client) GetApplicationByPublicID(ctx context.Context, publicID string) (AdminApplication, error) {
	var app AdminApplication
	path := "/v1/admin/applications/" + url.PathEscape(publicID)
	err := c.doJSON(ctx, http.MethodGet, path, nil, &app, true)
	return app, err
}

// CreateGenesis registers a sponsorless applicant to seed the referral
// graph. Requires a token with the sale:write scope.
func (c *Client) CreateGenesis(ctx context.Context, req GenesisRequest) (ApplicationView, error) {
	var view ApplicationView
	err := c.doJSON(ctx, http.MethodPost, "/v1/admin/applications", req, &view, true)
	return view, err
}

// SendReminder triggers the one-shot reminder email for an application.
// Requires a token with the sale:write scope.
func (c *Client) SendReminder(ctx context.Context, publicID string) error {
	path := "/v1/admin/applications/" + url.PathEscape(publicID) + "/reminder"
	return c.doJSON(ctx, http.MethodPost, path, nil, nil, true)
}

// AcceptApplication moves an application to the accepted terminal state.
// Requires a token with the sale:write scope.
func (c *Client) AcceptApplication(ctx context.Context, publicID string) error {
	path := "/v1/admin/applications/" + url.PathEscape(publicID) + "/accept"
	return c.doJSON(ctx, http.MethodPost, path, nil, nil, true)
}

// RejectApplication moves an application to the rejected terminal state.
// Requires a token with the sale:write scope.
func (c *Client) RejectApplication(ctx context.Context, publicID string) error {
	path := "/v1/admin/applications/" + url.PathEscape(publicID) + "/reject"
	return c.doJSON(ctx, http.MethodPost, path, nil, nil, true)
}

// Referrals returns the referral structure rooted at publicID. The shape
// (flat or recursive) follows the program the service runs. Requires a
// token with the sale:read scope.
func (c *Client) Referrals(ctx context.Context, publicID string) (ReferralNode, error) {
	var node ReferralNode
	path := "/v1/admin/applications/" + url.PathEscape(publicID) + "/referrals"
	err := c.doJSON(ctx, http.MethodGet, path, nil, &node, true)
	return node, err
}
