package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/blockbite/tokensale/internal/tokensale/mail"
	"github.com/blockbite/tokensale/internal/tokensale/store"
	"github.com/blockbite/tokensale/internal/tokensale/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

// sentMail records one delivery made through recorderSequence.
type sentMail struct {
	Kind    string
	Email   string
	Payload mail.Payload
}

// recorderSequence captures deliveries instead of sending them. Err, when
// set, is returned from every send.
type recorderSequence struct {
	mu   sync.Mutex
	sent []sentMail
	Err  error
}

func (r *recorderSequence) record(kind, email string, p mail.Payload) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, sentMail{Kind: kind, Email: email, Payload: p})
	return r.Err
}

func (r *recorderSequence) SendInvitation(_ context.Context, email string, p mail.Payload) error {
	return r.record("invitation", email, p)
}

func (r *recorderSequence) SendReminder(_ context.Context, email string, p mail.Payload) error {
	return r.record("reminder", email, p)
}

func (r *recorderSequence) SendAcceptance(_ context.Context, email string, p mail.Payload) error {
	return r.record("acceptance", email, p)
}

func (r *recorderSequence) SendRejection(_ context.Context, email string, p mail.Payload) error {
	return r.record("rejection", email, p)
}

func (r *recorderSequence) Sent() []sentMail {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]sentMail(nil), r.sent...)
}

func (r *recorderSequence) Kinds() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	kinds := make([]string, len(r.sent))
	for i, m := range r.sent {
		kinds[i] = m.Kind
	}
	return kinds
}

// fixedClock returns a deterministic, strictly increasing clock starting at
// the given instant.
func fixedClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	now := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now = now.Add(time.Second)
		return now
	}
}
