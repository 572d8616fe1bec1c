package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/blockbite/tokensale/internal/tokensale/domain"
	tsmail "github.com/blockbite/tokensale/internal/tokensale/mail"
	"github.com/blockbite/tokensale/internal/tokensale/store"
	"github.com/blockbite/tokensale/pkg/slogx"
)

// AdminService handles back-office operations: listing and inspecting full
// records, and driving the reminder/accept/reject outcome transitions.
type AdminService struct {
	Store store.Store
	Mail  tsmail.Sequence

	// Now is the clock used for audit timestamps. Defaults to time.Now.
	Now func() time.Time
}

func (s *AdminService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// GetByPublicID returns the full, unprojected record. Admin callers see the
// audit dates the applicant-facing view strips.
func (s *AdminService) GetByPublicID(ctx context.Context, publicID string) (domain.Application, error) {
	log := slogx.FromContext(ctx)

	app, err := s.Store.Applications().GetApplicationByPublicID(ctx, publicID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Application{}, ErrApplicationNotFound
		}
		log.Error("failed to fetch application", slog.Any("error", err))
		return domain.Application{}, err
	}
	return app, nil
}

// List returns every application in creation order.
func (s *AdminService) List(ctx context.Context) ([]domain.Application, error) {
	log := slogx.FromContext(ctx)

	apps, err := s.Store.Applications().ListApplications(ctx)
	if err != nil {
		log.Error("failed to list applications", slog.Any("error", err))
		return nil, err
	}
	return apps, nil
}

// SendReminder stamps the reminder date and sends the reminder email, at
// most once per application. Repeat calls are no-ops and never resend.
func (s *AdminService) SendReminder(ctx context.Context, publicID string) error {
	log := slogx.FromContext(ctx)

	// 1. The application must exist.
	app, err := s.Store.Applications().GetApplicationByPublicID(ctx, publicID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrApplicationNotFound
		}
		log.Error("failed to fetch application", slog.Any("error", err))
		return err
	}

	// 2. Stamp the sentinel date conditionally, so concurrent calls cannot
	// both win and double-send.
	stamped, err := s.Store.Applications().SetReminderDate(ctx, app.PrivateID, s.now())
	if err != nil {
		log.Error("failed to stamp reminder date",
			slog.String("public_id", publicID),
			slog.Any("error", err),
		)
		return err
	}
	if !stamped {
		log.Debug("reminder already sent", slog.String("public_id", publicID))
		return nil
	}

	// 3. Notify only after winning the transition.
	if err := s.Mail.SendReminder(ctx, app.Email, payloadFor(app)); err != nil {
		log.Error("failed to send reminder email",
			slog.String("public_id", publicID),
			slog.Any("error", err),
		)
	}

	log.Info("reminder sent", slog.String("public_id", publicID))
	return nil
}

// Accept moves the application to the accepted terminal state and sends the
// acceptance email. Accepting twice is a no-op; accepting a rejected
// application fails with ErrAlreadyRejected.
func (s *AdminService) Accept(ctx context.Context, publicID string) error {
	return s.transition(ctx, publicID, outcomeAccept)
}

// Reject moves the application to the rejected terminal state and sends the
// rejection email. Rejecting twice is a no-op; rejecting an accepted
// application fails with ErrAlreadyAccepted.
func (s *AdminService) Reject(ctx context.Context, publicID string) error {
	return s.transition(ctx, publicID, outcomeReject)
}

type outcome int

const (
	outcomeAccept outcome = iota
	outcomeReject
)

// transition drives the two-terminal outcome state machine. The decision is
// a single conditional update keyed by both sentinel dates, so of any number
// of concurrent accept/reject calls exactly one wins.
func (s *AdminService) transition(ctx context.Context, publicID string, o outcome) error {
	log := slogx.FromContext(ctx)

	// 1. Read the record to classify the request up front: repeat calls are
	// no-ops, calls against the opposite terminal state are conflicts.
	app, err := s.Store.Applications().GetApplicationByPublicID(ctx, publicID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrApplicationNotFound
		}
		log.Error("failed to fetch application", slog.Any("error", err))
		return err
	}

	switch o {
	case outcomeAccept:
		if app.Accepted() {
			return nil
		}
		if app.Rejected() {
			return ErrAlreadyRejected
		}
	case outcomeReject:
		if app.Rejected() {
			return nil
		}
		if app.Accepted() {
			return ErrAlreadyAccepted
		}
	}

	// 2. Attempt the transition. The store only stamps when both outcome
	// dates are still unset, which closes the race the read above leaves
	// open.
	var stamped bool
	switch o {
	case outcomeAccept:
		stamped, err = s.Store.Applications().SetAcceptDate(ctx, app.PrivateID, s.now())
	case outcomeReject:
		stamped, err = s.Store.Applications().SetRejectDate(ctx, app.PrivateID, s.now())
	}
	if err != nil {
		log.Error("failed to stamp outcome date",
			slog.String("public_id", publicID),
			slog.Any("error", err),
		)
		return err
	}
	if !stamped {
		// Lost to a concurrent transition. Re-read to tell a benign repeat
		// from a conflicting outcome.
		current, err := s.Store.Applications().GetApplicationByPublicID(ctx, publicID)
		if err != nil {
			log.Error("failed to re-fetch application", slog.Any("error", err))
			return err
		}
		switch o {
		case outcomeAccept:
			if current.Rejected() {
				return ErrAlreadyRejected
			}
		case outcomeReject:
			if current.Accepted() {
				return ErrAlreadyAccepted
			}
		}
		return nil
	}

	// 3. Notify only after winning the transition.
	switch o {
	case outcomeAccept:
		if err := s.Mail.SendAcceptance(ctx, app.Email, payloadFor(app)); err != nil {
			log.Error("failed to send acceptance email",
				slog.String("public_id", publicID),
				slog.Any("error", err),
			)
		}
		log.Info("application accepted", slog.String("public_id", publicID))
	case outcomeReject:
		if err := s.Mail.SendRejection(ctx, app.Email, payloadFor(app)); err != nil {
			log.Error("failed to send rejection email",
				slog.String("public_id", publicID),
				slog.Any("error", err),
			)
		}
		log.Info("application rejected", slog.String("public_id", publicID))
	}

	return nil
}
