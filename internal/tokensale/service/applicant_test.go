package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/blockbite/tokensale/internal/tokensale/domain"
	"github.com/stretchr/testify/require"
)

func newApplicantService(t *testing.T, program Program) (*ApplicantService, *recorderSequence) {
	t.Helper()

	rec := &recorderSequence{}
	svc := &ApplicantService{
		Store:   newTestStore(t),
		Mail:    rec,
		Program: program,
		Now:     fixedClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)),
	}
	return svc, rec
}

func TestAdd(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects invalid email", func(t *testing.T) {
		svc, rec := newApplicantService(t, PreSale())

		_, err := svc.Add(ctx, "not-an-email", "", true)
		require.ErrorIs(t, err, ErrInvalidEmail)

		_, err = svc.Add(ctx, "", "", true)
		require.ErrorIs(t, err, ErrInvalidEmail)

		require.Empty(t, rec.Sent())
	})

	t.Run("genesis applicant needs no sponsor", func(t *testing.T) {
		svc, rec := newApplicantService(t, PreSale())

		app, err := svc.Add(ctx, "ada@example.com", "", true)
		require.NoError(t, err)
		require.NotEmpty(t, app.PrivateID)
		require.NotEmpty(t, app.PublicID)
		require.NotEqual(t, app.PrivateID, app.PublicID)
		require.Empty(t, app.Sponsor)

		sent := rec.Sent()
		require.Len(t, sent, 1)
		require.Equal(t, "invitation", sent[0].Kind)
		require.Equal(t, "ada@example.com", sent[0].Email)
		require.Equal(t, app.PrivateID, sent[0].Payload.PrivateID)
		require.Equal(t, app.PublicID, sent[0].Payload.PublicID)
	})

	t.Run("non-genesis applicant requires an existing sponsor", func(t *testing.T) {
		svc, _ := newApplicantService(t, PreSale())

		_, err := svc.Add(ctx, "bob@example.com", "", false)
		require.ErrorIs(t, err, ErrInvalidSponsor)

		_, err = svc.Add(ctx, "bob@example.com", "nope", false)
		require.ErrorIs(t, err, ErrInvalidSponsor)

		genesis, err := svc.Add(ctx, "ada@example.com", "", true)
		require.NoError(t, err)

		app, err := svc.Add(ctx, "bob@example.com", genesis.PublicID, false)
		require.NoError(t, err)
		require.Equal(t, genesis.PublicID, app.Sponsor)
	})

	t.Run("enforces the program cap", func(t *testing.T) {
		svc, rec := newApplicantService(t, AirDrop(2))

		genesis, err := svc.Add(ctx, "ada@example.com", "", true)
		require.NoError(t, err)
		_, err = svc.Add(ctx, "bob@example.com", genesis.PublicID, false)
		require.NoError(t, err)

		_, err = svc.Add(ctx, "eve@example.com", genesis.PublicID, false)
		require.ErrorIs(t, err, ErrProgramFull)

		// Only the two successful sign-ups were invited.
		require.Equal(t, []string{"invitation", "invitation"}, rec.Kinds())
	})

	t.Run("delivery failure does not fail the sign-up", func(t *testing.T) {
		svc, rec := newApplicantService(t, PreSale())
		rec.Err = context.DeadlineExceeded

		app, err := svc.Add(ctx, "ada@example.com", "", true)
		require.NoError(t, err)

		got, err := svc.Get(ctx, app.PrivateID)
		require.NoError(t, err)
		require.Equal(t, app.PublicID, got.PublicID)
	})
}

func TestGet(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown private id", func(t *testing.T) {
		svc, _ := newApplicantService(t, PreSale())

		_, err := svc.Get(ctx, "nope")
		require.ErrorIs(t, err, ErrApplicationNotFound)
	})

	t.Run("returns the projected view", func(t *testing.T) {
		svc, _ := newApplicantService(t, PreSale())

		app, err := svc.Add(ctx, "ada@example.com", "", true)
		require.NoError(t, err)

		view, err := svc.Get(ctx, app.PrivateID)
		require.NoError(t, err)
		require.Equal(t, app.PrivateID, view.PrivateID)
		require.Equal(t, app.PublicID, view.PublicID)
		require.Equal(t, "ada@example.com", view.Email)
		require.NotNil(t, view.IsLocked)
		require.False(t, *view.IsLocked)
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown private id", func(t *testing.T) {
		svc, _ := newApplicantService(t, PreSale())

		_, err := svc.Update(ctx, "nope", domain.Patch{FirstName: strptr("Ada")}, false)
		require.ErrorIs(t, err, ErrApplicationNotFound)
	})

	t.Run("validated update reports missing fields in order", func(t *testing.T) {
		svc, _ := newApplicantService(t, PreSale())

		app, err := svc.Add(ctx, "ada@example.com", "", true)
		require.NoError(t, err)

		_, err = svc.Update(ctx, app.PrivateID, domain.Patch{FirstName: strptr("Ada")}, true)
		var missing *MissingFieldsError
		require.ErrorAs(t, err, &missing)
		require.Equal(t, []domain.Field{domain.FieldLastName, domain.FieldCountry}, missing.Fields)
		require.EqualError(t, err, "missing fields: lastName, country")
	})

	t.Run("unvalidated update never reports missing fields", func(t *testing.T) {
		svc, _ := newApplicantService(t, PreSale())

		app, err := svc.Add(ctx, "ada@example.com", "", true)
		require.NoError(t, err)

		view, err := svc.Update(ctx, app.PrivateID, domain.Patch{FirstName: strptr("Ada")}, false)
		require.NoError(t, err)
		require.Equal(t, "Ada", view.FirstName)
	})

	t.Run("non-editable fields are silently dropped", func(t *testing.T) {
		svc, _ := newApplicantService(t, PreSale())

		app, err := svc.Add(ctx, "ada@example.com", "", true)
		require.NoError(t, err)

		view, err := svc.Update(ctx, app.PrivateID, domain.Patch{
			FirstName:  strptr("Ada"),
			EthAddress: strptr("0xabc"),
		}, false)
		require.NoError(t, err)
		require.Equal(t, "Ada", view.FirstName)
		require.Empty(t, view.EthAddress)
	})

	t.Run("sponsor change must name an existing applicant", func(t *testing.T) {
		svc, _ := newApplicantService(t, PreSale())

		app, err := svc.Add(ctx, "ada@example.com", "", true)
		require.NoError(t, err)

		_, err = svc.Update(ctx, app.PrivateID, domain.Patch{Sponsor: strptr("nope")}, false)
		require.ErrorIs(t, err, ErrInvalidSponsor)

		// Self-sponsorship is not a thing either.
		_, err = svc.Update(ctx, app.PrivateID, domain.Patch{Sponsor: strptr(app.PublicID)}, false)
		require.ErrorIs(t, err, ErrInvalidSponsor)
	})

	t.Run("locked applications reject every update", func(t *testing.T) {
		svc, _ := newApplicantService(t, PreSale())

		app, err := svc.Add(ctx, "ada@example.com", "", true)
		require.NoError(t, err)
		_, err = svc.Lock(ctx, app.PrivateID)
		require.NoError(t, err)

		_, err = svc.Update(ctx, app.PrivateID, domain.Patch{FirstName: strptr("Ada")}, false)
		require.ErrorIs(t, err, ErrApplicationLocked)

		// The store is left unmodified.
		view, err := svc.Get(ctx, app.PrivateID)
		require.NoError(t, err)
		require.Empty(t, view.FirstName)
	})
}

func TestLock(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown private id", func(t *testing.T) {
		svc, _ := newApplicantService(t, PreSale())

		_, err := svc.Lock(ctx, "nope")
		require.ErrorIs(t, err, ErrApplicationNotFound)
	})

	t.Run("locks and sends the next-step reminder once", func(t *testing.T) {
		svc, rec := newApplicantService(t, PreSale())

		app, err := svc.Add(ctx, "ada@example.com", "", true)
		require.NoError(t, err)

		view, err := svc.Lock(ctx, app.PrivateID)
		require.NoError(t, err)
		require.NotNil(t, view.IsLocked)
		require.True(t, *view.IsLocked)

		// Re-locking is a no-op and never resends.
		_, err = svc.Lock(ctx, app.PrivateID)
		require.NoError(t, err)

		require.Equal(t, []string{"invitation", "reminder"}, rec.Kinds())
	})

	t.Run("air-drop lock sends no reminder", func(t *testing.T) {
		svc, rec := newApplicantService(t, AirDrop(0))

		app, err := svc.Add(ctx, "ada@example.com", "", true)
		require.NoError(t, err)

		_, err = svc.Lock(ctx, app.PrivateID)
		require.NoError(t, err)

		require.Equal(t, []string{"invitation"}, rec.Kinds())
	})
}

func TestAddTransaction(t *testing.T) {
	ctx := context.Background()

	validHash := "0x" + strings.Repeat("a", 64)

	t.Run("rejects malformed hashes", func(t *testing.T) {
		svc, _ := newApplicantService(t, PreSale())

		app, err := svc.Add(ctx, "ada@example.com", "", true)
		require.NoError(t, err)

		for _, bad := range []string{"", "0x123", "abcdef", validHash + "00"} {
			_, err := svc.AddTransaction(ctx, app.PrivateID, bad)
			require.ErrorIs(t, err, ErrInvalidTxHash, "hash %q", bad)
		}
	})

	t.Run("appends hashes in order", func(t *testing.T) {
		svc, _ := newApplicantService(t, PreSale())

		app, err := svc.Add(ctx, "ada@example.com", "", true)
		require.NoError(t, err)

		second := "0x" + validHash[3:] + "b"
		_, err = svc.AddTransaction(ctx, app.PrivateID, validHash)
		require.NoError(t, err)
		view, err := svc.AddTransaction(ctx, app.PrivateID, second)
		require.NoError(t, err)

		require.Equal(t, []string{validHash, second}, view.TxHashes)
	})

	t.Run("unknown private id", func(t *testing.T) {
		svc, _ := newApplicantService(t, PreSale())

		_, err := svc.AddTransaction(ctx, "nope", validHash)
		require.ErrorIs(t, err, ErrApplicationNotFound)
	})
}
