package mail

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type recorderSender struct {
	sent []Message
}

func (r *recorderSender) Send(_ context.Context, msg Message) error {
	r.sent = append(r.sent, msg)
	return nil
}

func testSequence(t *testing.T, rec *recorderSender) *TemplateSequence {
	t.Helper()
	seq, err := NewTemplateSequence(rec, func(p Payload) string {
		return "https://example.com/pre-sale#privateId=" + p.PrivateID
	})
	require.NoError(t, err)
	return seq
}

func TestInvitationCarriesPrivateLink(t *testing.T) {
	t.Parallel()

	rec := &recorderSender{}
	seq := testSequence(t, rec)

	err := seq.SendInvitation(context.Background(), "alice@example.com", Payload{
		PrivateID: "priv-123",
		PublicID:  "pub-456",
	})
	require.NoError(t, err)

	require.Len(t, rec.sent, 1)
	msg := rec.sent[0]
	require.Equal(t, "alice@example.com", msg.To)
	require.Equal(t, SubjectInvitation, msg.Subject)
	require.Contains(t, msg.HTML, "https://example.com/pre-sale#privateId=priv-123")
	require.NotContains(t, msg.HTML, "pub-456") // the public id has no place in a private link
}

func TestReminderGreetsByFirstName(t *testing.T) {
	t.Parallel()

	rec := &recorderSender{}
	seq := testSequence(t, rec)

	err := seq.SendReminder(context.Background(), "bob@example.com", Payload{
		PrivateID: "priv-9",
		FirstName: "Bob",
	})
	require.NoError(t, err)

	require.Len(t, rec.sent, 1)
	require.Contains(t, rec.sent[0].HTML, "Dear Bob,")
}

func TestTemplatesEscapeApplicantInput(t *testing.T) {
	t.Parallel()

	rec := &recorderSender{}
	seq := testSequence(t, rec)

	err := seq.SendAcceptance(context.Background(), "eve@example.com", Payload{
		FirstName: `<script>alert("x")</script>`,
	})
	require.NoError(t, err)

	require.Len(t, rec.sent, 1)
	require.NotContains(t, rec.sent[0].HTML, "<script>")
}

func TestOutcomeSubjects(t *testing.T) {
	t.Parallel()

	rec := &recorderSender{}
	seq := testSequence(t, rec)

	ctx := context.Background()
	require.NoError(t, seq.SendAcceptance(ctx, "a@example.com", Payload{}))
	require.NoError(t, seq.SendRejection(ctx, "b@example.com", Payload{}))

	require.Len(t, rec.sent, 2)
	require.Equal(t, SubjectAcceptance, rec.sent[0].Subject)
	require.Equal(t, SubjectRejection, rec.sent[1].Subject)
}
