package mail

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Subjects of the sequence messages.
const (
	SubjectInvitation = "Blockbite - Next step for your application"
	SubjectReminder   = "Blockbite - There is still time to finalize your application"
	SubjectAcceptance = "Blockbite - Your application has been accepted"
	SubjectRejection  = "Blockbite - Your application has been declined"
)

// TemplateSequence renders the embedded HTML templates and hands the result
// to a Sender.
type TemplateSequence struct {
	sender      Sender
	nextStepURL func(Payload) string
	tmpl        *template.Template
}

// NewTemplateSequence parses the embedded templates. nextStepURL builds the
// private applicant link included in invitation and reminder messages.
func NewTemplateSequence(sender Sender, nextStepURL func(Payload) string) (*TemplateSequence, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("mail: parse templates: %w", err)
	}
	return &TemplateSequence{
		sender:      sender,
		nextStepURL: nextStepURL,
		tmpl:        tmpl,
	}, nil
}

type templateData struct {
	Subject     string
	FirstName   string
	NextStepURL string
}

func (s *TemplateSequence) send(ctx context.Context, name, email, subject string, p Payload) error {
	data := templateData{
		Subject:   subject,
		FirstName: p.FirstName,
	}
	if s.nextStepURL != nil {
		data.NextStepURL = s.nextStepURL(p)
	}

	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("mail: render %s: %w", name, err)
	}

	return s.sender.Send(ctx, Message{
		To:      email,
		Subject: subject,
		HTML:    buf.String(),
	})
}

func (s *TemplateSequence) SendInvitation(ctx context.Context, email string, p Payload) error {
	return s.send(ctx, "invitation.html.tmpl", email, SubjectInvitation, p)
}

func (s *TemplateSequence) SendReminder(ctx context.Context, email string, p Payload) error {
	return s.send(ctx, "reminder.html.tmpl", email, SubjectReminder, p)
}

func (s *TemplateSequence) SendAcceptance(ctx context.Context, email string, p Payload) error {
	return s.send(ctx, "acceptance.html.tmpl", email, SubjectAcceptance, p)
}

func (s *TemplateSequence) SendRejection(ctx context.Context, email string, p Payload) error {
	return s.send(ctx, "rejection.html.tmpl", email, SubjectRejection, p)
}
