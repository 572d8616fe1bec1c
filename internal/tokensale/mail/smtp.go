package mail

import (
	"context"
	"crypto/tls"
	"fmt"
	"math/rand/v2"
	"net"
	"net/smtp"
	"strings"
)

// Account is one set of SMTP credentials. Providers throttle per account, so
// the sender spreads load by picking an account at random for every message.
type Account struct {
	User string
	Pass string
}

// SMTPSender delivers messages over SMTP using a pool of accounts.
type SMTPSender struct {
	Host     string
	Port     int
	From     string
	Accounts []Account

	// pick is overridable in tests; defaults to a uniform random choice.
	pick func(n int) int
}

// NewSMTPSender builds a sender over a pool of accounts. At least one
// account is required.
func NewSMTPSender(host string, port int, from string, accounts []Account) (*SMTPSender, error) {
	if len(accounts) == 0 {
		return nil, fmt.Errorf("mail: at least one smtp account is required")
	}
	return &SMTPSender{
		Host:     host,
		Port:     port,
		From:     from,
		Accounts: accounts,
		pick:     rand.IntN,
	}, nil
}

// Send delivers one message through a randomly chosen account.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	account := s.Accounts[s.pick(len(s.Accounts))]

	addr := net.JoinHostPort(s.Host, fmt.Sprint(s.Port))

	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("mail: dial %s: %w", addr, err)
	}

	client, err := smtp.NewClient(conn, s.Host)
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("mail: smtp handshake: %w", err)
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: s.Host}); err != nil {
			return fmt.Errorf("mail: starttls: %w", err)
		}
	}

	if account.User != "" {
		auth := smtp.PlainAuth("", account.User, account.Pass, s.Host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("mail: auth as %s: %w", account.User, err)
		}
	}

	if err := client.Mail(s.From); err != nil {
		return fmt.Errorf("mail: MAIL FROM: %w", err)
	}
	if err := client.Rcpt(msg.To); err != nil {
		return fmt.Errorf("mail: RCPT TO: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("mail: DATA: %w", err)
	}
	if _, err := w.Write(buildMIME(s.From, msg)); err != nil {
		_ = w.Close()
		return fmt.Errorf("mail: write body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("mail: close body: %w", err)
	}

	return client.Quit()
}

func buildMIME(from string, msg Message) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + msg.To + "\r\n")
	b.WriteString("Subject: " + msg.Subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.HTML)
	b.WriteString("\r\n")
	return []byte(b.String())
}
