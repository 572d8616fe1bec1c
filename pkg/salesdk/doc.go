/*
Package salesdk provides a client SDK for the Blockbite token sale service.

# Overview

A single Client type covers both the public applicant endpoints and the
bearer-token-protected admin endpoints.

Applicant flow:

	client := salesdk.NewClient("https://sale.example.com")

	// Sign up. The private ID in the response is the applicant's secret
	// handle for everything that follows.
	view, err := client.Apply(ctx, salesdk.ApplyRequest{
		Email:   "ada@example.com",
		Sponsor: sponsorPublicID,
	})

	// Complete the profile and lock it in.
	view, err = client.UpdateApplication(ctx, view.PrivateID, patch, true)
	view, err = client.LockApplication(ctx, view.PrivateID)

Admin operations require a token on the client:

	client.AdminToken = token

	apps, err := client.ListApplications(ctx)
	err = client.AcceptApplication(ctx, publicID)

# Errors

Non-2xx responses are returned as *APIError values carrying the HTTP status
and the service's error code:

	var apiErr *salesdk.APIError
	if errors.As(err, &apiErr) && apiErr.Code == salesdk.ErrorCodeApplicationLocked {
		// the application can no longer be edited
	}
*/
package salesdk
