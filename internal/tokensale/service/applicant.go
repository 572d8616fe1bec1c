package service

import (
	"context"
	"errors"
	"log/slog"
	"net/mail"
	"regexp"
	"strings"
	"time"

	"github.com/blockbite/tokensale/internal/tokensale/domain"
	tsmail "github.com/blockbite/tokensale/internal/tokensale/mail"
	"github.com/blockbite/tokensale/internal/tokensale/store"
	"github.com/blockbite/tokensale/pkg/cryptox"
	"github.com/blockbite/tokensale/pkg/idx"
	"github.com/blockbite/tokensale/pkg/slogx"
)

// txHashPattern matches a 32-byte Ethereum transaction hash.
var txHashPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)

// ApplicantService handles the applicant-facing lifecycle: sign-up, profile
// updates, locking and transaction registration.
type ApplicantService struct {
	Store   store.Store
	Mail    tsmail.Sequence
	Program Program

	// Now is the clock used for audit timestamps. Defaults to time.Now.
	Now func() time.Time
}

func (s *ApplicantService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// Add registers a new applicant and sends the invitation email carrying the
// private link. Genesis applicants skip the sponsor requirement and seed the
// referral graph.
func (s *ApplicantService) Add(
	ctx context.Context,
	email string,
	sponsor string,
	genesis bool,
) (domain.Application, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate the email address.
	email = strings.TrimSpace(email)
	if _, err := mail.ParseAddress(email); err != nil || email == "" {
		log.Warn("sign-up attempted with invalid email")
		return domain.Application{}, ErrInvalidEmail
	}

	// 2. Resolve the sponsor. Every non-genesis applicant must name an
	// existing applicant's public ID.
	sponsor = strings.TrimSpace(sponsor)
	if !genesis {
		if sponsor == "" {
			log.Warn("sign-up attempted without sponsor")
			return domain.Application{}, ErrInvalidSponsor
		}
		_, err := s.Store.Applications().GetApplicationByPublicID(ctx, sponsor)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				log.Warn("sign-up attempted with unknown sponsor",
					slog.String("sponsor", sponsor),
				)
				return domain.Application{}, ErrInvalidSponsor
			}
			log.Error("failed to resolve sponsor", slog.Any("error", err))
			return domain.Application{}, err
		}
	}

	// 3. Generate the identifier pair. The private ID is a secret capability
	// token, the public ID is safe to share as a referral code.
	privateID, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		log.Error("failed to generate private id", slog.Any("error", err))
		return domain.Application{}, err
	}

	now := s.now()
	app := domain.Application{
		PrivateID: privateID,
		PublicID:  idx.New().String(),
		Email:     email,
		Sponsor:   sponsor,
		TxHashes:  []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	// 4. Enforce the program cap and persist atomically, so concurrent
	// sign-ups cannot overshoot the limit.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if s.Program.MaxApplicants > 0 {
			count, err := tx.Applications().CountApplications(ctx)
			if err != nil {
				log.Error("failed to count applications", slog.Any("error", err))
				return err
			}
			if count >= s.Program.MaxApplicants {
				return ErrProgramFull
			}
		}
		if err := tx.Applications().CreateApplication(ctx, app); err != nil {
			log.Error("failed to create application", slog.Any("error", err))
			return err
		}
		return nil
	})
	if err != nil {
		return domain.Application{}, err
	}

	log.Info("applicant registered",
		slog.String("public_id", app.PublicID),
		slog.String("program", s.Program.Name),
		slog.Bool("genesis", genesis),
	)

	// 5. Send the invitation email. The record is already persisted, so a
	// delivery failure is logged rather than surfaced as a sign-up error.
	if err := s.Mail.SendInvitation(ctx, app.Email, payloadFor(app)); err != nil {
		log.Error("failed to send invitation email",
			slog.String("public_id", app.PublicID),
			slog.Any("error", err),
		)
	}

	return app, nil
}

// Get returns the applicant's view of their application, projected through
// the program's exported field set.
func (s *ApplicantService) Get(ctx context.Context, privateID string) (domain.View, error) {
	log := slogx.FromContext(ctx)

	app, err := s.Store.Applications().GetApplication(ctx, privateID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.View{}, ErrApplicationNotFound
		}
		log.Error("failed to fetch application", slog.Any("error", err))
		return domain.View{}, err
	}
	return s.Program.Policy.ExportView(app), nil
}

// Update applies a profile patch. Fields outside the program's editable set
// are silently dropped. When validate is set the patch must also satisfy the
// program's mandatory fields, which is how an applicant completes their
// application before locking.
func (s *ApplicantService) Update(
	ctx context.Context,
	privateID string,
	patch domain.Patch,
	validate bool,
) (domain.View, error) {
	log := slogx.FromContext(ctx)

	// 1. The application must exist and still be open.
	app, err := s.Store.Applications().GetApplication(ctx, privateID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.View{}, ErrApplicationNotFound
		}
		log.Error("failed to fetch application", slog.Any("error", err))
		return domain.View{}, err
	}
	if app.IsLocked {
		log.Warn("update attempted on locked application",
			slog.String("public_id", app.PublicID),
		)
		return domain.View{}, ErrApplicationLocked
	}

	// 2. Check mandatory fields before narrowing, so a field that is
	// mandatory but not editable still satisfies validation when supplied.
	if validate {
		if missing := s.Program.Policy.MissingFields(patch); len(missing) > 0 {
			return domain.View{}, &MissingFieldsError{Fields: missing}
		}
	}

	// 3. Drop fields the program does not allow to change.
	narrowed := s.Program.Policy.NarrowPatch(patch)
	if narrowed.IsZero() {
		return s.Program.Policy.ExportView(app), nil
	}

	// 4. A sponsor change must still point at a real applicant.
	if v, ok := narrowed.Value(domain.FieldSponsor); ok {
		if err := s.checkSponsor(ctx, app, v); err != nil {
			return domain.View{}, err
		}
	}

	// 5. Persist the narrowed patch and return the fresh projection.
	if err := s.Store.Applications().PatchApplication(ctx, privateID, narrowed, s.now()); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.View{}, ErrApplicationNotFound
		}
		log.Error("failed to patch application",
			slog.String("public_id", app.PublicID),
			slog.Any("error", err),
		)
		return domain.View{}, err
	}

	log.Debug("application updated", slog.String("public_id", app.PublicID))

	return s.Get(ctx, privateID)
}

func (s *ApplicantService) checkSponsor(ctx context.Context, app domain.Application, sponsor string) error {
	log := slogx.FromContext(ctx)

	if sponsor == "" || sponsor == app.PublicID {
		return ErrInvalidSponsor
	}
	_, err := s.Store.Applications().GetApplicationByPublicID(ctx, sponsor)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvalidSponsor
		}
		log.Error("failed to resolve sponsor", slog.Any("error", err))
		return err
	}
	return nil
}

// Lock finalizes the application, after which no further applicant edits
// are accepted. Locking an already locked application is a no-op.
func (s *ApplicantService) Lock(ctx context.Context, privateID string) (domain.View, error) {
	log := slogx.FromContext(ctx)

	// 1. Fetch and check lock state.
	app, err := s.Store.Applications().GetApplication(ctx, privateID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.View{}, ErrApplicationNotFound
		}
		log.Error("failed to fetch application", slog.Any("error", err))
		return domain.View{}, err
	}
	if app.IsLocked {
		return s.Program.Policy.ExportView(app), nil
	}

	// 2. Flip the lock flag and stamp the lock date.
	if err := s.Store.Applications().LockApplication(ctx, privateID, s.now()); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.View{}, ErrApplicationNotFound
		}
		log.Error("failed to lock application",
			slog.String("public_id", app.PublicID),
			slog.Any("error", err),
		)
		return domain.View{}, err
	}

	log.Info("application locked", slog.String("public_id", app.PublicID))

	// 3. Some programs follow up with the next-step email immediately.
	if s.Program.NotifyOnLock {
		s.notifyReminder(ctx, app)
	}

	return s.Get(ctx, privateID)
}

// notifyReminder stamps the reminder date and sends the reminder email. The
// stamp is conditional, so only the first caller for a given application
// triggers a delivery.
func (s *ApplicantService) notifyReminder(ctx context.Context, app domain.Application) {
	log := slogx.FromContext(ctx)

	stamped, err := s.Store.Applications().SetReminderDate(ctx, app.PrivateID, s.now())
	if err != nil {
		log.Error("failed to stamp reminder date",
			slog.String("public_id", app.PublicID),
			slog.Any("error", err),
		)
		return
	}
	if !stamped {
		return
	}
	if err := s.Mail.SendReminder(ctx, app.Email, payloadFor(app)); err != nil {
		log.Error("failed to send reminder email",
			slog.String("public_id", app.PublicID),
			slog.Any("error", err),
		)
	}
}

// AddTransaction records a payment transaction hash against a locked
// application. Hashes accumulate and are never removed.
func (s *ApplicantService) AddTransaction(
	ctx context.Context,
	privateID string,
	txHash string,
) (domain.View, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate the hash format.
	txHash = strings.TrimSpace(txHash)
	if !txHashPattern.MatchString(txHash) {
		return domain.View{}, ErrInvalidTxHash
	}

	// 2. The application must exist.
	app, err := s.Store.Applications().GetApplication(ctx, privateID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.View{}, ErrApplicationNotFound
		}
		log.Error("failed to fetch application", slog.Any("error", err))
		return domain.View{}, err
	}

	// 3. Append the hash.
	if err := s.Store.Applications().AppendTxHash(ctx, privateID, txHash, s.now()); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.View{}, ErrApplicationNotFound
		}
		log.Error("failed to append transaction hash",
			slog.String("public_id", app.PublicID),
			slog.Any("error", err),
		)
		return domain.View{}, err
	}

	log.Info("transaction recorded",
		slog.String("public_id", app.PublicID),
		slog.String("tx_hash", txHash),
	)

	return s.Get(ctx, privateID)
}

func payloadFor(app domain.Application) tsmail.Payload {
	return tsmail.Payload{
		PrivateID: app.PrivateID,
		PublicID:  app.PublicID,
		FirstName: app.FirstName,
	}
}
