package service

import (
	"fmt"
	"strings"

	"github.com/blockbite/tokensale/internal/tokensale/domain"
)

// Program names accepted by ProgramByName.
const (
	ProgramPreSale = "pre-sale"
	ProgramAirDrop = "air-drop"
)

// Program bundles the behavioural knobs that differ between the token sale
// campaigns. A single process serves exactly one program.
type Program struct {
	// Name of the program, used in logs and config.
	Name string

	// Policy governs which fields applicants must, may and can see.
	Policy FieldPolicy

	// MaxApplicants caps the number of applications. Zero means unlimited.
	MaxApplicants int64

	// RecursiveReferrals selects the full referral tree over a flat list of
	// direct referrals.
	RecursiveReferrals bool

	// NotifyOnLock sends a reminder email as soon as an applicant locks
	// their application.
	NotifyOnLock bool
}

// PreSale is the token pre-sale program: identity fields are mandatory,
// only a small set stays editable, and applicants see their transaction
// hashes and lock state.
func PreSale() Program {
	return Program{
		Name: ProgramPreSale,
		Policy: FieldPolicy{
			Mandatory: []domain.Field{
				domain.FieldFirstName,
				domain.FieldLastName,
				domain.FieldCountry,
			},
			Editable: []domain.Field{
				domain.FieldFirstName,
				domain.FieldLastName,
				domain.FieldCountry,
				domain.FieldSponsor,
			},
			Exported: []domain.Field{
				domain.FieldPrivateID,
				domain.FieldPublicID,
				domain.FieldEmail,
				domain.FieldSponsor,
				domain.FieldFirstName,
				domain.FieldLastName,
				domain.FieldCountry,
				domain.FieldTxHashes,
				domain.FieldIsLocked,
			},
		},
		NotifyOnLock: true,
	}
}

// AirDrop is the air-drop program: contact handles are mandatory, every
// patchable field stays editable, sign-ups are capped and referrals are
// resolved recursively.
func AirDrop(maxApplicants int64) Program {
	return Program{
		Name: ProgramAirDrop,
		Policy: FieldPolicy{
			Mandatory: []domain.Field{
				domain.FieldEthAddress,
				domain.FieldTelegram,
				domain.FieldTwitter,
			},
			Exported: []domain.Field{
				domain.FieldPrivateID,
				domain.FieldPublicID,
				domain.FieldEmail,
				domain.FieldSponsor,
				domain.FieldFirstName,
				domain.FieldLastName,
				domain.FieldCountry,
				domain.FieldEthAddress,
				domain.FieldTelegram,
				domain.FieldTwitter,
			},
		},
		MaxApplicants:      maxApplicants,
		RecursiveReferrals: true,
	}
}

// ProgramByName resolves a configured program name to its definition.
func ProgramByName(name string, maxApplicants int64) (Program, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case ProgramPreSale:
		return PreSale(), nil
	case ProgramAirDrop:
		return AirDrop(maxApplicants), nil
	default:
		return Program{}, fmt.Errorf("unknown program %q", name)
	}
}
