// Package mail drives the applicant notification sequence: invitation on
// signup, reminder, and the acceptance/rejection outcome messages.
package mail

import "context"

// Payload carries the applicant context a message template may reference.
type Payload struct {
	PrivateID string
	PublicID  string
	FirstName string
}

// Sequence sends the typed messages of the applicant lifecycle. The service
// layer decides when each fires; implementations only render and deliver.
type Sequence interface {
	SendInvitation(ctx context.Context, email string, p Payload) error
	SendReminder(ctx context.Context, email string, p Payload) error
	SendAcceptance(ctx context.Context, email string, p Payload) error
	SendRejection(ctx context.Context, email string, p Payload) error
}

// Message is a rendered mail ready for transport.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Sender delivers rendered messages. SMTPSender is the production
// implementation; tests substitute a recorder.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
