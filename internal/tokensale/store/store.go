package store

import (
	"context"
	"errors"
	"time"

	"github.com/blockbite/tokensale/internal/tokensale/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Applications() Applications

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. This is the
	// recommended way to handle transactions.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Applications interface {
	// CreateApplication inserts a new application (ids are provided by the
	// service). Returns ErrAlreadyExists on a private or public id collision.
	CreateApplication(ctx context.Context, app domain.Application) error

	// GetApplication returns an application by its private id.
	GetApplication(ctx context.Context, privateID string) (domain.Application, error)

	// GetApplicationByPublicID returns an application by its shareable id.
	GetApplicationByPublicID(ctx context.Context, publicID string) (domain.Application, error)

	// ListApplications returns every application, oldest first.
	ListApplications(ctx context.Context) ([]domain.Application, error)

	// CountApplications returns the total number of applications.
	CountApplications(ctx context.Context) (int64, error)

	// PatchApplication merges the non-nil patch fields into the stored row
	// and bumps updated_at. Returns ErrNotFound when no row matches.
	PatchApplication(ctx context.Context, privateID string, patch domain.Patch, now time.Time) error

	// AppendTxHash appends a transaction reference to the stored, ordered
	// tx_hashes sequence. Returns ErrNotFound when no row matches.
	AppendTxHash(ctx context.Context, privateID, txHash string, now time.Time) error

	// LockApplication sets is_locked and lock_date. Not idempotent-guarded:
	// re-locking simply re-applies the lock. Returns ErrNotFound when no row
	// matches.
	LockApplication(ctx context.Context, privateID string, now time.Time) error

	// SetReminderDate stamps reminder_date iff it is still unset. Reports
	// whether this call performed the transition.
	SetReminderDate(ctx context.Context, privateID string, now time.Time) (bool, error)

	// SetAcceptDate stamps accept_date iff neither terminal date is set.
	// Reports whether this call performed the transition.
	SetAcceptDate(ctx context.Context, privateID string, now time.Time) (bool, error)

	// SetRejectDate stamps reject_date iff neither terminal date is set.
	// Reports whether this call performed the transition.
	SetRejectDate(ctx context.Context, privateID string, now time.Time) (bool, error)
}
