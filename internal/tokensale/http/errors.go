package http

import (
	"errors"
	"net/http"

	"github.com/blockbite/tokensale/internal/tokensale/service"
	"github.com/blockbite/tokensale/pkg/httpx"
	"github.com/blockbite/tokensale/pkg/salesdk"
	"github.com/blockbite/tokensale/pkg/slogx"
)

// writeServiceError maps service sentinel errors onto the wire error codes.
// Unrecognized errors are logged and reported as opaque server errors.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var missing *service.MissingFieldsError

	switch {
	case errors.Is(err, service.ErrApplicationNotFound):
		httpx.WriteJSON(w, http.StatusNotFound, salesdk.ErrorResponse{
			Error:            salesdk.ErrorCodeNotFound,
			ErrorDescription: "Application not found",
		})
	case errors.Is(err, service.ErrInvalidEmail):
		httpx.WriteJSON(w, http.StatusBadRequest, salesdk.ErrorResponse{
			Error:            salesdk.ErrorCodeInvalidEmail,
			ErrorDescription: "Email address is invalid",
		})
	case errors.Is(err, service.ErrInvalidSponsor):
		httpx.WriteJSON(w, http.StatusBadRequest, salesdk.ErrorResponse{
			Error:            salesdk.ErrorCodeInvalidSponsor,
			ErrorDescription: "Sponsor does not reference an existing applicant",
		})
	case errors.Is(err, service.ErrInvalidTxHash):
		httpx.WriteJSON(w, http.StatusBadRequest, salesdk.ErrorResponse{
			Error:            salesdk.ErrorCodeInvalidTxHash,
			ErrorDescription: "Transaction hash is not a valid 32-byte hex hash",
		})
	case errors.As(err, &missing):
		httpx.WriteJSON(w, http.StatusBadRequest, salesdk.ErrorResponse{
			Error:            salesdk.ErrorCodeMissingFields,
			ErrorDescription: missing.Error(),
		})
	case errors.Is(err, service.ErrApplicationLocked):
		httpx.WriteJSON(w, http.StatusConflict, salesdk.ErrorResponse{
			Error:            salesdk.ErrorCodeApplicationLocked,
			ErrorDescription: "Application is locked and can no longer be edited",
		})
	case errors.Is(err, service.ErrAlreadyAccepted):
		httpx.WriteJSON(w, http.StatusConflict, salesdk.ErrorResponse{
			Error:            salesdk.ErrorCodeAlreadyAccepted,
			ErrorDescription: "Application has already been accepted",
		})
	case errors.Is(err, service.ErrAlreadyRejected):
		httpx.WriteJSON(w, http.StatusConflict, salesdk.ErrorResponse{
			Error:            salesdk.ErrorCodeAlreadyRejected,
			ErrorDescription: "Application has already been rejected",
		})
	case errors.Is(err, service.ErrProgramFull):
		httpx.WriteJSON(w, http.StatusConflict, salesdk.ErrorResponse{
			Error:            salesdk.ErrorCodeProgramFull,
			ErrorDescription: "The program has reached its applicant limit",
		})
	default:
		slogx.FromContext(r.Context()).Error("request failed", "error", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, salesdk.ErrorResponse{
			Error:            salesdk.ErrorCodeServerError,
			ErrorDescription: "Internal server error",
		})
	}
}

func writeInvalidRequest(w http.ResponseWriter, description string) {
	httpx.WriteJSON(w, http.StatusBadRequest, salesdk.ErrorResponse{
		Error:            salesdk.ErrorCodeInvalidRequest,
		ErrorDescription: description,
	})
}
