package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/blockbite/tokensale/internal/tokensale/service"
	"github.com/blockbite/tokensale/pkg/httpx"
	"github.com/blockbite/tokensale/pkg/salesdk"
)

// ApplicationHandler handles the private-link applicant endpoints. Every
// route carries the caller-secret private id as a path value; possession of
// the id is the authentication.
type ApplicationHandler struct {
	ApplicantService *service.ApplicantService
}

// HandleGet handles GET /v1/applications/{privateId}
//
//	@Summary		Get Application Endpoint
//	@Description	Returns the applicant's view of their application, reduced to the program's exported fields
//	@Tags			Applications
//	@Produce		json
//	@Param			privateId	path		string					true	"private application id"
//	@Success		200			{object}	salesdk.ApplicationView	"the application"
//	@Failure		404			{object}	salesdk.ErrorResponse	"error, error_description"
//	@Failure		500			{object}	salesdk.ErrorResponse	"error, error_description"
//	@Router			/v1/applications/{privateId} [get].
func (h *ApplicationHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	view, err := h.ApplicantService.Get(r.Context(), r.PathValue("privateId"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, toApplicationView(view))
}

// HandlePatch handles PATCH /v1/applications/{privateId}
//
//	@Summary		Update Application Endpoint
//	@Description	Applies a partial profile update. Fields outside the program's editable set are silently ignored.
//	@Description	With validate=false the program's mandatory fields are not enforced, allowing incremental saves.
//	@Tags			Applications
//	@Accept			json
//	@Produce		json
//	@Param			privateId	path		string								true	"private application id"
//	@Param			validate	query		bool								false	"enforce mandatory fields (default true)"
//	@Param			request		body		salesdk.UpdateApplicationRequest	true	"fields to change"
//	@Success		200			{object}	salesdk.ApplicationView				"the updated application"
//	@Failure		400			{object}	salesdk.ErrorResponse				"error, error_description"
//	@Failure		404			{object}	salesdk.ErrorResponse				"error, error_description"
//	@Failure		409			{object}	salesdk.ErrorResponse				"error, error_description"
//	@Failure		500			{object}	salesdk.ErrorResponse				"error, error_description"
//	@Router			/v1/applications/{privateId} [patch].
func (h *ApplicationHandler) HandlePatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req salesdk.UpdateApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequest(w, "Invalid JSON in request body")
		return
	}

	validate := !strings.EqualFold(r.URL.Query().Get("validate"), "false")

	view, err := h.ApplicantService.Update(ctx, r.PathValue("privateId"), toPatch(req), validate)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toApplicationView(view))
}

// HandleLock handles POST /v1/applications/{privateId}/lock
//
//	@Summary		Lock Application Endpoint
//	@Description	Finalizes the application against further edits. Locking twice is a no-op.
//	@Tags			Applications
//	@Produce		json
//	@Param			privateId	path		string					true	"private application id"
//	@Success		200			{object}	salesdk.ApplicationView	"the locked application"
//	@Failure		404			{object}	salesdk.ErrorResponse	"error, error_description"
//	@Failure		500			{object}	salesdk.ErrorResponse	"error, error_description"
//	@Router			/v1/applications/{privateId}/lock [post].
func (h *ApplicationHandler) HandleLock(w http.ResponseWriter, r *http.Request) {
	view, err := h.ApplicantService.Lock(r.Context(), r.PathValue("privateId"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toApplicationView(view))
}

// HandleAddTransaction handles POST /v1/applications/{privateId}/transactions
//
//	@Summary		Register Transaction Endpoint
//	@Description	Appends a payment transaction hash to the application. Hashes accumulate and are never removed.
//	@Tags			Applications
//	@Accept			json
//	@Produce		json
//	@Param			privateId	path		string							true	"private application id"
//	@Param			request		body		salesdk.AddTransactionRequest	true	"transaction hash"
//	@Success		200			{object}	salesdk.ApplicationView			"the updated application"
//	@Failure		400			{object}	salesdk.ErrorResponse			"error, error_description"
//	@Failure		404			{object}	salesdk.ErrorResponse			"error, error_description"
//	@Failure		500			{object}	salesdk.ErrorResponse			"error, error_description"
//	@Router			/v1/applications/{privateId}/transactions [post].
func (h *ApplicationHandler) HandleAddTransaction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req salesdk.AddTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequest(w, "Invalid JSON in request body")
		return
	}
	if strings.TrimSpace(req.TxHash) == "" {
		writeInvalidRequest(w, "txHash is required")
		return
	}

	view, err := h.ApplicantService.AddTransaction(ctx, r.PathValue("privateId"), req.TxHash)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toApplicationView(view))
}
