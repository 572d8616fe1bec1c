package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newAdminService(t *testing.T) (*ApplicantService, *AdminService, *recorderSequence) {
	t.Helper()

	rec := &recorderSequence{}
	st := newTestStore(t)
	clock := fixedClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	applicants := &ApplicantService{Store: st, Mail: rec, Program: AirDrop(0), Now: clock}
	admin := &AdminService{Store: st, Mail: rec, Now: clock}
	return applicants, admin, rec
}

func TestAdminGetAndList(t *testing.T) {
	ctx := context.Background()
	applicants, admin, _ := newAdminService(t)

	t.Run("unknown public id", func(t *testing.T) {
		_, err := admin.GetByPublicID(ctx, "nope")
		require.ErrorIs(t, err, ErrApplicationNotFound)
	})

	genesis, err := applicants.Add(ctx, "ada@example.com", "", true)
	require.NoError(t, err)
	second, err := applicants.Add(ctx, "bob@example.com", genesis.PublicID, false)
	require.NoError(t, err)

	t.Run("returns the full record including audit dates", func(t *testing.T) {
		require.NoError(t, admin.SendReminder(ctx, genesis.PublicID))

		app, err := admin.GetByPublicID(ctx, genesis.PublicID)
		require.NoError(t, err)
		require.Equal(t, "ada@example.com", app.Email)
		require.NotNil(t, app.ReminderDate)
		require.Nil(t, app.AcceptDate)
	})

	t.Run("lists in creation order", func(t *testing.T) {
		apps, err := admin.List(ctx)
		require.NoError(t, err)
		require.Len(t, apps, 2)
		require.Equal(t, genesis.PublicID, apps[0].PublicID)
		require.Equal(t, second.PublicID, apps[1].PublicID)
	})
}

func TestSendReminder(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown public id", func(t *testing.T) {
		_, admin, _ := newAdminService(t)
		require.ErrorIs(t, admin.SendReminder(ctx, "nope"), ErrApplicationNotFound)
	})

	t.Run("sends once, repeat calls are silent no-ops", func(t *testing.T) {
		applicants, admin, rec := newAdminService(t)

		app, err := applicants.Add(ctx, "ada@example.com", "", true)
		require.NoError(t, err)

		require.NoError(t, admin.SendReminder(ctx, app.PublicID))
		require.NoError(t, admin.SendReminder(ctx, app.PublicID))
		require.NoError(t, admin.SendReminder(ctx, app.PublicID))

		require.Equal(t, []string{"invitation", "reminder"}, rec.Kinds())

		first, err := admin.GetByPublicID(ctx, app.PublicID)
		require.NoError(t, err)
		require.NotNil(t, first.ReminderDate)

		// The original stamp survives repeat calls.
		stamp := *first.ReminderDate
		require.NoError(t, admin.SendReminder(ctx, app.PublicID))
		again, err := admin.GetByPublicID(ctx, app.PublicID)
		require.NoError(t, err)
		require.Equal(t, stamp, *again.ReminderDate)
	})
}

func TestAcceptReject(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown public id", func(t *testing.T) {
		_, admin, _ := newAdminService(t)
		require.ErrorIs(t, admin.Accept(ctx, "nope"), ErrApplicationNotFound)
		require.ErrorIs(t, admin.Reject(ctx, "nope"), ErrApplicationNotFound)
	})

	t.Run("accept is terminal and idempotent", func(t *testing.T) {
		applicants, admin, rec := newAdminService(t)

		app, err := applicants.Add(ctx, "ada@example.com", "", true)
		require.NoError(t, err)

		require.NoError(t, admin.Accept(ctx, app.PublicID))
		require.NoError(t, admin.Accept(ctx, app.PublicID))

		require.Equal(t, []string{"invitation", "acceptance"}, rec.Kinds())

		require.ErrorIs(t, admin.Reject(ctx, app.PublicID), ErrAlreadyAccepted)

		got, err := admin.GetByPublicID(ctx, app.PublicID)
		require.NoError(t, err)
		require.NotNil(t, got.AcceptDate)
		require.Nil(t, got.RejectDate)
	})

	t.Run("reject is terminal and idempotent", func(t *testing.T) {
		applicants, admin, rec := newAdminService(t)

		app, err := applicants.Add(ctx, "ada@example.com", "", true)
		require.NoError(t, err)

		require.NoError(t, admin.Reject(ctx, app.PublicID))
		require.NoError(t, admin.Reject(ctx, app.PublicID))

		require.Equal(t, []string{"invitation", "rejection"}, rec.Kinds())

		require.ErrorIs(t, admin.Accept(ctx, app.PublicID), ErrAlreadyRejected)
	})

	t.Run("reminder flag is orthogonal to the outcome", func(t *testing.T) {
		applicants, admin, _ := newAdminService(t)

		app, err := applicants.Add(ctx, "ada@example.com", "", true)
		require.NoError(t, err)

		require.NoError(t, admin.SendReminder(ctx, app.PublicID))
		require.NoError(t, admin.Accept(ctx, app.PublicID))
		require.NoError(t, admin.SendReminder(ctx, app.PublicID))

		got, err := admin.GetByPublicID(ctx, app.PublicID)
		require.NoError(t, err)
		require.NotNil(t, got.ReminderDate)
		require.NotNil(t, got.AcceptDate)
	})
}
