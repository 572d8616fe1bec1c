package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/blockbite/tokensale/internal/tokensale/service"
	"github.com/blockbite/tokensale/pkg/httpx"
	"github.com/blockbite/tokensale/pkg/salesdk"
)

// ApplyHandler handles public sign-ups.
type ApplyHandler struct {
	ApplicantService *service.ApplicantService
}

// ServeHTTP godoc
//
//	@Summary		Sign Up Endpoint
//	@Description	Registers a new applicant under the sponsor's referral code and emails them their private application link
//	@Tags			Applications
//	@Accept			json
//	@Produce		json
//	@Param			request	body		salesdk.ApplyRequest		true	"email and sponsor public id"
//	@Success		201		{object}	salesdk.ApplicationView		"the new application, private id included"
//	@Failure		400		{object}	salesdk.ErrorResponse		"error, error_description"
//	@Failure		409		{object}	salesdk.ErrorResponse		"error, error_description"
//	@Failure		500		{object}	salesdk.ErrorResponse		"error, error_description"
//	@Router			/v1/applications [post].
func (h *ApplyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req salesdk.ApplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequest(w, "Invalid JSON in request body")
		return
	}

	if strings.TrimSpace(req.Email) == "" {
		writeInvalidRequest(w, "email is required")
		return
	}

	app, err := h.ApplicantService.Add(ctx, req.Email, req.Sponsor, false)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	view := h.ApplicantService.Program.Policy.ExportView(app)
	httpx.WriteJSON(w, http.StatusCreated, toApplicationView(view))
}
