package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/blockbite/tokensale/internal/tokensale/service"
	"github.com/blockbite/tokensale/pkg/httpx"
	"github.com/blockbite/tokensale/pkg/salesdk"
)

// AdminHandler handles the back-office endpoints. All routes require a
// bearer token with the sale:read or sale:write scope.
type AdminHandler struct {
	ApplicantService *service.ApplicantService
	AdminService     *service.AdminService
	ReferralService  *service.ReferralService
}

// HandleList handles GET /v1/admin/applications
//
//	@Summary		List Applications Endpoint
//	@Description	Returns every application in creation order, audit dates included
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string						true	"Bearer token with sale:read scope"
//	@Success		200				{array}		salesdk.AdminApplication	"applications"
//	@Failure		401				{object}	salesdk.ErrorResponse		"error, error_description"
//	@Failure		403				{object}	salesdk.ErrorResponse		"error, error_description"
//	@Failure		500				{object}	salesdk.ErrorResponse		"error, error_description"
//	@Router			/v1/admin/applications [get].
func (h *AdminHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	apps, err := h.AdminService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]salesdk.AdminApplication, 0, len(apps))
	for _, app := range apps {
		out = append(out, toAdminApplication(app))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet handles GET /v1/admin/applications/{publicId}
//
//	@Summary		Get Application (Admin) Endpoint
//	@Description	Returns the full record for one application, audit dates included
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string						true	"Bearer token with sale:read scope"
//	@Param			publicId		path		string						true	"public application id"
//	@Success		200				{object}	salesdk.AdminApplication	"the application"
//	@Failure		401				{object}	salesdk.ErrorResponse		"error, error_description"
//	@Failure		403				{object}	salesdk.ErrorResponse		"error, error_description"
//	@Failure		404				{object}	salesdk.ErrorResponse		"error, error_description"
//	@Failure		500				{object}	salesdk.ErrorResponse		"error, error_description"
//	@Router			/v1/admin/applications/{publicId} [get].
func (h *AdminHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	app, err := h.AdminService.GetByPublicID(r.Context(), r.PathValue("publicId"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, toAdminApplication(app))
}

// HandleCreateGenesis handles POST /v1/admin/applications
//
//	@Summary		Create Genesis Application Endpoint
//	@Description	Registers a sponsorless applicant to seed the referral graph. Their public id becomes the first shareable referral code.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string					true	"Bearer token with sale:write scope"
//	@Param			request			body		salesdk.GenesisRequest	true	"email"
//	@Success		201				{object}	salesdk.ApplicationView	"the new application"
//	@Failure		400				{object}	salesdk.ErrorResponse	"error, error_description"
//	@Failure		401				{object}	salesdk.ErrorResponse	"error, error_description"
//	@Failure		403				{object}	salesdk.ErrorResponse	"error, error_description"
//	@Failure		500				{object}	salesdk.ErrorResponse	"error, error_description"
//	@Router			/v1/admin/applications [post].
func (h *AdminHandler) HandleCreateGenesis(w http.ResponseWriter, r *http.Request) {
	var req salesdk.GenesisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequest(w, "Invalid JSON in request body")
		return
	}
	if strings.TrimSpace(req.Email) == "" {
		writeInvalidRequest(w, "email is required")
		return
	}

	app, err := h.ApplicantService.Add(r.Context(), req.Email, "", true)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	view := h.ApplicantService.Program.Policy.ExportView(app)
	httpx.WriteJSON(w, http.StatusCreated, toApplicationView(view))
}

// HandleSendReminder handles POST /v1/admin/applications/{publicId}/reminder
//
//	@Summary		Send Reminder Endpoint
//	@Description	Sends the one-shot reminder email. Repeat calls are no-ops and never resend.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Param			Authorization	header	string	true	"Bearer token with sale:write scope"
//	@Param			publicId		path	string	true	"public application id"
//	@Success		204				"reminder sent or already sent"
//	@Failure		401				{object}	salesdk.ErrorResponse	"error, error_description"
//	@Failure		403				{object}	salesdk.ErrorResponse	"error, error_description"
//	@Failure		404				{object}	salesdk.ErrorResponse	"error, error_description"
//	@Failure		500				{object}	salesdk.ErrorResponse	"error, error_description"
//	@Router			/v1/admin/applications/{publicId}/reminder [post].
func (h *AdminHandler) HandleSendReminder(w http.ResponseWriter, r *http.Request) {
	if err := h.AdminService.SendReminder(r.Context(), r.PathValue("publicId")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleAccept handles POST /v1/admin/applications/{publicId}/accept
//
//	@Summary		Accept Application Endpoint
//	@Description	Moves the application to the accepted terminal state and sends the acceptance email. Accepting twice is a no-op.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Param			Authorization	header	string	true	"Bearer token with sale:write scope"
//	@Param			publicId		path	string	true	"public application id"
//	@Success		204				"application accepted"
//	@Failure		401				{object}	salesdk.ErrorResponse	"error, error_description"
//	@Failure		403				{object}	salesdk.ErrorResponse	"error, error_description"
//	@Failure		404				{object}	salesdk.ErrorResponse	"error, error_description"
//	@Failure		409				{object}	salesdk.ErrorResponse	"error, error_description"
//	@Failure		500				{object}	salesdk.ErrorResponse	"error, error_description"
//	@Router			/v1/admin/applications/{publicId}/accept [post].
func (h *AdminHandler) HandleAccept(w http.ResponseWriter, r *http.Request) {
	if err := h.AdminService.Accept(r.Context(), r.PathValue("publicId")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleReject handles POST /v1/admin/applications/{publicId}/reject
//
//	@Summary		Reject Application Endpoint
//	@Description	Moves the application to the rejected terminal state and sends the rejection email. Rejecting twice is a no-op.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Param			Authorization	header	string	true	"Bearer token with sale:write scope"
//	@Param			publicId		path	string	true	"public application id"
//	@Success		204				"application rejected"
//	@Failure		401				{object}	salesdk.ErrorResponse	"error, error_description"
//	@Failure		403				{object}	salesdk.ErrorResponse	"error, error_description"
//	@Failure		404				{object}	salesdk.ErrorResponse	"error, error_description"
//	@Failure		409				{object}	salesdk.ErrorResponse	"error, error_description"
//	@Failure		500				{object}	salesdk.ErrorResponse	"error, error_description"
//	@Router			/v1/admin/applications/{publicId}/reject [post].
func (h *AdminHandler) HandleReject(w http.ResponseWriter, r *http.Request) {
	if err := h.AdminService.Reject(r.Context(), r.PathValue("publicId")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleReferrals handles GET /v1/admin/applications/{publicId}/referrals
//
//	@Summary		Referral Tree Endpoint
//	@Description	Returns the referral structure rooted at the given public id. Pre-sale reports direct referrals only; air-drop expands the full subtree.
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string					true	"Bearer token with sale:read scope"
//	@Param			publicId		path		string					true	"public application id"
//	@Success		200				{object}	salesdk.ReferralNode	"the referral tree"
//	@Failure		401				{object}	salesdk.ErrorResponse	"error, error_description"
//	@Failure		403				{object}	salesdk.ErrorResponse	"error, error_description"
//	@Failure		404				{object}	salesdk.ErrorResponse	"error, error_description"
//	@Failure		500				{object}	salesdk.ErrorResponse	"error, error_description"
//	@Router			/v1/admin/applications/{publicId}/referrals [get].
func (h *AdminHandler) HandleReferrals(w http.ResponseWriter, r *http.Request) {
	node, err := h.ReferralService.Referrals(r.Context(), r.PathValue("publicId"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toReferralNode(node))
}
