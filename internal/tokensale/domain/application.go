package domain

import "time"

// Application is one signup to a token sale program. The private ID is the
// applicant's secret handle (never shared), the public ID is the shareable
// referral handle.
type Application struct {
	PrivateID string
	PublicID  string
	Email     string
	Sponsor   string // public ID of the referring applicant; empty for genesis entries

	FirstName  string
	LastName   string
	Country    string
	EthAddress string
	Telegram   string
	Twitter    string

	TxHashes []string // ordered, append-only

	IsLocked     bool
	LockDate     *time.Time
	ReminderDate *time.Time
	AcceptDate   *time.Time // mutually exclusive with RejectDate
	RejectDate   *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Accepted reports whether the application reached the accepted terminal state.
func (a Application) Accepted() bool { return a.AcceptDate != nil }

// Rejected reports whether the application reached the rejected terminal state.
func (a Application) Rejected() bool { return a.RejectDate != nil }

// Patch is a partial update to the applicant-editable fields of an
// Application. Nil pointers leave the stored value untouched. Fields that can
// never be edited by the applicant (ids, email, audit dates, lock state) are
// not representable here at all.
type Patch struct {
	FirstName  *string
	LastName   *string
	Country    *string
	EthAddress *string
	Telegram   *string
	Twitter    *string
	Sponsor    *string
}

// IsZero reports whether the patch carries no field at all.
func (p Patch) IsZero() bool {
	return p.FirstName == nil && p.LastName == nil && p.Country == nil &&
		p.EthAddress == nil && p.Telegram == nil && p.Twitter == nil &&
		p.Sponsor == nil
}

// Value returns the patch's value for f, and whether the patch sets f.
func (p Patch) Value(f Field) (string, bool) {
	ptr := p.fieldPtr(f)
	if ptr == nil || *ptr == nil {
		return "", false
	}
	return **ptr, true
}

// Clear removes f from the patch. Unknown or non-patchable fields are a no-op.
func (p *Patch) Clear(f Field) {
	if ptr := p.fieldPtr(f); ptr != nil {
		*ptr = nil
	}
}

func (p *Patch) fieldPtr(f Field) **string {
	switch f {
	case FieldFirstName:
		return &p.FirstName
	case FieldLastName:
		return &p.LastName
	case FieldCountry:
		return &p.Country
	case FieldEthAddress:
		return &p.EthAddress
	case FieldTelegram:
		return &p.Telegram
	case FieldTwitter:
		return &p.Twitter
	case FieldSponsor:
		return &p.Sponsor
	default:
		return nil
	}
}
