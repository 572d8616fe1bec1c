package service

import "github.com/blockbite/tokensale/internal/tokensale/domain"

// FieldPolicy defines, per program, which fields an update must carry, which
// it may change, and which are returned to the applicant-facing caller.
// All policy functions are pure.
type FieldPolicy struct {
	// Mandatory fields must be present and non-empty for a validated update.
	Mandatory []domain.Field

	// Editable fields an update request may change. A nil set means every
	// patchable field is accepted.
	Editable []domain.Field

	// Exported fields are returned to the applicant-facing caller. Anything
	// outside this set (internal audit dates in particular) is stripped.
	Exported []domain.Field
}

// Validate reports whether every mandatory field is present and non-empty on
// the candidate patch.
func (p FieldPolicy) Validate(patch domain.Patch) bool {
	return len(p.MissingFields(patch)) == 0
}

// MissingFields returns the mandatory fields absent or empty on the patch,
// in the policy's declared order, so error messages are deterministic.
func (p FieldPolicy) MissingFields(patch domain.Patch) []domain.Field {
	var missing []domain.Field
	for _, f := range p.Mandatory {
		if v, ok := patch.Value(f); !ok || v == "" {
			missing = append(missing, f)
		}
	}
	return missing
}

// NarrowPatch returns the patch reduced to the editable field set. Fields
// outside the set are silently dropped, never persisted. A nil editable set
// passes the patch through unchanged.
func (p FieldPolicy) NarrowPatch(patch domain.Patch) domain.Patch {
	if p.Editable == nil {
		return patch
	}

	allowed := make(map[domain.Field]struct{}, len(p.Editable))
	for _, f := range p.Editable {
		allowed[f] = struct{}{}
	}

	narrowed := patch
	for _, f := range []domain.Field{
		domain.FieldFirstName,
		domain.FieldLastName,
		domain.FieldCountry,
		domain.FieldEthAddress,
		domain.FieldTelegram,
		domain.FieldTwitter,
		domain.FieldSponsor,
	} {
		if _, ok := allowed[f]; !ok {
			narrowed.Clear(f)
		}
	}
	return narrowed
}

// ExportView projects an application onto the policy's exported field set.
func (p FieldPolicy) ExportView(app domain.Application) domain.View {
	var view domain.View
	for _, f := range p.Exported {
		switch f {
		case domain.FieldPublicID:
			view.PublicID = app.PublicID
		case domain.FieldPrivateID:
			view.PrivateID = app.PrivateID
		case domain.FieldEmail:
			view.Email = app.Email
		case domain.FieldSponsor:
			view.Sponsor = app.Sponsor
		case domain.FieldFirstName:
			view.FirstName = app.FirstName
		case domain.FieldLastName:
			view.LastName = app.LastName
		case domain.FieldCountry:
			view.Country = app.Country
		case domain.FieldEthAddress:
			view.EthAddress = app.EthAddress
		case domain.FieldTelegram:
			view.Telegram = app.Telegram
		case domain.FieldTwitter:
			view.Twitter = app.Twitter
		case domain.FieldTxHashes:
			view.TxHashes = app.TxHashes
		case domain.FieldIsLocked:
			locked := app.IsLocked
			view.IsLocked = &locked
		}
	}
	return view
}
