package mail_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/blockbite/tokensale/internal/tokensale/mail"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * End-to-end delivery tests for the SMTP sender and the notification
 * sequence, run against a Mailpit container acting as the relay.
 */

const mailpitImage = "axllent/mailpit:v1.21"

// mailpitMessage is the subset of Mailpit's message summary we assert on.
type mailpitMessage struct {
	Subject string `json:"Subject"`
	To      []struct {
		Address string `json:"Address"`
	} `json:"To"`
	Snippet string `json:"Snippet"`
}

type mailpitMessages struct {
	Total    int              `json:"total"`
	Messages []mailpitMessage `json:"messages"`
}

// setupMailpit starts a Mailpit container and returns the SMTP host/port and
// the HTTP API base URL.
func setupMailpit(t *testing.T) (smtpHost string, smtpPort int, apiURL string) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        mailpitImage,
		ExposedPorts: []string{"1025/tcp", "8025/tcp"},
		WaitingFor: wait.ForHTTP("/api/v1/info").
			WithPort("8025/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)

	smtpMapped, err := container.MappedPort(ctx, "1025")
	require.NoError(t, err)
	apiMapped, err := container.MappedPort(ctx, "8025")
	require.NoError(t, err)

	return host, smtpMapped.Int(), fmt.Sprintf("http://%s:%s", host, apiMapped.Port())
}

func fetchMessages(t *testing.T, apiURL string) mailpitMessages {
	t.Helper()

	resp, err := http.Get(apiURL + "/api/v1/messages")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var msgs mailpitMessages
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&msgs))
	return msgs
}

func TestSMTPDelivery(t *testing.T) {
	smtpHost, smtpPort, apiURL := setupMailpit(t)
	ctx := context.Background()

	sender, err := mail.NewSMTPSender(smtpHost, smtpPort, "presale@blockbite.io", []mail.Account{{}})
	require.NoError(t, err)

	t.Run("raw message delivery", func(t *testing.T) {
		err := sender.Send(ctx, mail.Message{
			To:      "raw@example.com",
			Subject: "Delivery check",
			HTML:    "<p>hello</p>",
		})
		require.NoError(t, err)

		msgs := fetchMessages(t, apiURL)
		require.Equal(t, 1, msgs.Total)
		require.Equal(t, "Delivery check", msgs.Messages[0].Subject)
		require.Equal(t, "raw@example.com", msgs.Messages[0].To[0].Address)
	})

	t.Run("notification sequence end to end", func(t *testing.T) {
		sequence, err := mail.NewTemplateSequence(sender, func(p mail.Payload) string {
			return "https://presale.blockbite.io/application/" + p.PrivateID
		})
		require.NoError(t, err)

		payload := mail.Payload{
			PrivateID: "private-123",
			PublicID:  "public-456",
			FirstName: "Ada",
		}

		require.NoError(t, sequence.SendInvitation(ctx, "ada@example.com", payload))
		require.NoError(t, sequence.SendReminder(ctx, "ada@example.com", payload))
		require.NoError(t, sequence.SendAcceptance(ctx, "ada@example.com", payload))
		require.NoError(t, sequence.SendRejection(ctx, "ada@example.com", payload))

		msgs := fetchMessages(t, apiURL)
		require.Equal(t, 5, msgs.Total)

		subjects := make([]string, 0, len(msgs.Messages))
		for _, m := range msgs.Messages {
			subjects = append(subjects, m.Subject)
		}
		require.Contains(t, subjects, mail.SubjectInvitation)
		require.Contains(t, subjects, mail.SubjectReminder)
		require.Contains(t, subjects, mail.SubjectAcceptance)
		require.Contains(t, subjects, mail.SubjectRejection)
	})
}
