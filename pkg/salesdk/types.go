package salesdk

import "time"

// Error codes returned by the token sale service.
const (
	ErrorCodeInvalidRequest    = "invalid_request"
	ErrorCodeInvalidEmail      = "invalid_email"
	ErrorCodeInvalidSponsor    = "invalid_sponsor"
	ErrorCodeInvalidTxHash     = "invalid_tx_hash"
	ErrorCodeMissingFields     = "missing_fields"
	ErrorCodeNotFound          = "not_found"
	ErrorCodeApplicationLocked = "application_locked"
	ErrorCodeAlreadyAccepted   = "already_accepted"
	ErrorCodeAlreadyRejected   = "already_rejected"
	ErrorCodeProgramFull       = "program_full"
	ErrorCodeServerError       = "server_error"
)

// ErrorResponse is the error body returned by every endpoint.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// ApplyRequest is the public sign-up request.
type ApplyRequest struct {
	Email   string `json:"email"`
	Sponsor string `json:"sponsor"`
}

// UpdateApplicationRequest is a partial profile update. Absent fields are
// left untouched; fields outside the program's editable set are ignored.
type UpdateApplicationRequest struct {
	FirstName  *string `json:"firstName,omitempty"`
	LastName   *string `json:"lastName,omitempty"`
	Country    *string `json:"country,omitempty"`
	EthAddress *string `json:"ethAddress,omitempty"`
	Telegram   *string `json:"telegram,omitempty"`
	Twitter    *string `json:"twitter,omitempty"`
	Sponsor    *string `json:"sponsor,omitempty"`
}

// AddTransactionRequest registers a payment transaction hash.
type AddTransactionRequest struct {
	TxHash string `json:"txHash"`
}

// ApplicationView is the applicant-facing projection of an application.
// Which fields are populated depends on the program's exported field set.
type ApplicationView struct {
	PrivateID  string   `json:"privateId,omitempty"`
	PublicID   string   `json:"publicId,omitempty"`
	Email      string   `json:"email,omitempty"`
	Sponsor    string   `json:"sponsor,omitempty"`
	FirstName  string   `json:"firstName,omitempty"`
	LastName   string   `json:"lastName,omitempty"`
	Country    string   `json:"country,omitempty"`
	EthAddress string   `json:"ethAddress,omitempty"`
	Telegram   string   `json:"telegram,omitempty"`
	Twitter    string   `json:"twitter,omitempty"`
	TxHashes   []string `json:"txHashes,omitempty"`
	IsLocked   *bool    `json:"isLocked,omitempty"`
}

// AdminApplication is the full back-office record, audit dates included.
type AdminApplication struct {
	PrivateID    string     `json:"privateId"`
	PublicID     string     `json:"publicId"`
	Email        string     `json:"email"`
	Sponsor      string     `json:"sponsor,omitempty"`
	FirstName    string     `json:"firstName,omitempty"`
	LastName     string     `json:"lastName,omitempty"`
	Country      string     `json:"country,omitempty"`
	EthAddress   string     `json:"ethAddress,omitempty"`
	Telegram     string     `json:"telegram,omitempty"`
	Twitter      string     `json:"twitter,omitempty"`
	TxHashes     []string   `json:"txHashes"`
	IsLocked     bool       `json:"isLocked"`
	LockDate     *time.Time `json:"lockDate,omitempty"`
	ReminderDate *time.Time `json:"reminderDate,omitempty"`
	AcceptDate   *time.Time `json:"acceptDate,omitempty"`
	RejectDate   *time.Time `json:"rejectDate,omitempty"`
	CreatedAt    time.Time  `json:"creation"`
	UpdatedAt    time.Time  `json:"lastUpdate"`
}

// GenesisRequest seeds the referral graph with a sponsorless applicant.
type GenesisRequest struct {
	Email string `json:"email"`
}

// ReferralNode is one applicant in a referral tree.
type ReferralNode struct {
	PublicID   string         `json:"publicId"`
	Referrents []ReferralNode `json:"referrents"`
}

// HealthResponse is returned by the livez and readyz endpoints.
type HealthResponse struct {
	Status  string        `json:"status"`
	Version string        `json:"version"`
	Uptime  string        `json:"uptime"`
	Program string        `json:"program,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks carries per-dependency readiness results.
type HealthChecks struct {
	Database string `json:"database"`
}
