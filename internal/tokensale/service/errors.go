package service

import (
	"errors"
	"strings"

	"github.com/blockbite/tokensale/internal/tokensale/domain"
)

var (
	ErrInvalidEmail        = errors.New("invalid email")
	ErrInvalidSponsor      = errors.New("invalid sponsor")
	ErrApplicationNotFound = errors.New("application not found")
	ErrApplicationLocked   = errors.New("application is locked")
	ErrAlreadyAccepted     = errors.New("application already accepted")
	ErrAlreadyRejected     = errors.New("application already rejected")
	ErrProgramFull         = errors.New("program is full")
	ErrInvalidTxHash       = errors.New("invalid transaction hash")
)

// MissingFieldsError reports which mandatory fields a validated update
// lacks, in the policy's declared order.
type MissingFieldsError struct {
	Fields []domain.Field
}

func (e *MissingFieldsError) Error() string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = string(f)
	}
	return "missing fields: " + strings.Join(names, ", ")
}
