package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/blockbite/tokensale/internal/tokensale/domain"
	"github.com/blockbite/tokensale/internal/tokensale/store"
)

type applicationsRepo struct {
	db dbtx
}

const applicationColumns = `private_id, public_id, email, sponsor,
	first_name, last_name, country, eth_address, telegram, twitter,
	tx_hashes, is_locked, lock_date, reminder_date, accept_date, reject_date,
	created_at, updated_at`

func (r *applicationsRepo) CreateApplication(ctx context.Context, app domain.Application) error {
	txHashes, err := marshalTxHashes(app.TxHashes)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO applications (`+applicationColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		app.PrivateID, app.PublicID, app.Email, app.Sponsor,
		app.FirstName, app.LastName, app.Country, app.EthAddress, app.Telegram, app.Twitter,
		txHashes, app.IsLocked,
		nullTime(app.LockDate), nullTime(app.ReminderDate),
		nullTime(app.AcceptDate), nullTime(app.RejectDate),
		app.CreatedAt.UTC(), app.UpdatedAt.UTC(),
	)
	return mapConstraint(err)
}

func (r *applicationsRepo) GetApplication(ctx context.Context, privateID string) (domain.Application, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+applicationColumns+`
		FROM applications WHERE private_id = ?`, privateID)
	return scanApplication(row)
}

func (r *applicationsRepo) GetApplicationByPublicID(ctx context.Context, publicID string) (domain.Application, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+applicationColumns+`
		FROM applications WHERE public_id = ?`, publicID)
	return scanApplication(row)
}

func (r *applicationsRepo) ListApplications(ctx context.Context) ([]domain.Application, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+applicationColumns+`
		FROM applications ORDER BY created_at ASC, private_id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

func (r *applicationsRepo) CountApplications(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM applications`).Scan(&count)
	return count, err
}

func (r *applicationsRepo) PatchApplication(
	ctx context.Context,
	privateID string,
	patch domain.Patch,
	now time.Time,
) error {
	sets := []string{"updated_at = ?"}
	args := []any{now.UTC()}

	set := func(column string, v *string) {
		if v != nil {
			sets = append(sets, column+" = ?")
			args = append(args, *v)
		}
	}
	set("first_name", patch.FirstName)
	set("last_name", patch.LastName)
	set("country", patch.Country)
	set("eth_address", patch.EthAddress)
	set("telegram", patch.Telegram)
	set("twitter", patch.Twitter)
	set("sponsor", patch.Sponsor)

	args = append(args, privateID)
	res, err := r.db.ExecContext(ctx,
		`UPDATE applications SET `+strings.Join(sets, ", ")+` WHERE private_id = ?`,
		args...)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *applicationsRepo) AppendTxHash(ctx context.Context, privateID, txHash string, now time.Time) error {
	// json_insert with '$[#]' appends to the stored array, keeping the
	// sequence ordered and append-only at the SQL level.
	res, err := r.db.ExecContext(ctx, `
		UPDATE applications
		SET tx_hashes = json_insert(tx_hashes, '$[#]', ?), updated_at = ?
		WHERE private_id = ?`,
		txHash, now.UTC(), privateID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *applicationsRepo) LockApplication(ctx context.Context, privateID string, now time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE applications
		SET is_locked = 1, lock_date = ?, updated_at = ?
		WHERE private_id = ?`,
		now.UTC(), now.UTC(), privateID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *applicationsRepo) SetReminderDate(ctx context.Context, privateID string, now time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE applications
		SET reminder_date = ?, updated_at = ?
		WHERE private_id = ? AND reminder_date IS NULL`,
		now.UTC(), now.UTC(), privateID)
	if err != nil {
		return false, err
	}
	return oneRow(res)
}

func (r *applicationsRepo) SetAcceptDate(ctx context.Context, privateID string, now time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE applications
		SET accept_date = ?, updated_at = ?
		WHERE private_id = ? AND accept_date IS NULL AND reject_date IS NULL`,
		now.UTC(), now.UTC(), privateID)
	if err != nil {
		return false, err
	}
	return oneRow(res)
}

func (r *applicationsRepo) SetRejectDate(ctx context.Context, privateID string, now time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE applications
		SET reject_date = ?, updated_at = ?
		WHERE private_id = ? AND accept_date IS NULL AND reject_date IS NULL`,
		now.UTC(), now.UTC(), privateID)
	if err != nil {
		return false, err
	}
	return oneRow(res)
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanApplication(row scanner) (domain.Application, error) {
	var (
		app      domain.Application
		txHashes string

		lockDate, reminderDate, acceptDate, rejectDate sql.NullTime
	)

	err := row.Scan(
		&app.PrivateID, &app.PublicID, &app.Email, &app.Sponsor,
		&app.FirstName, &app.LastName, &app.Country, &app.EthAddress, &app.Telegram, &app.Twitter,
		&txHashes, &app.IsLocked,
		&lockDate, &reminderDate, &acceptDate, &rejectDate,
		&app.CreatedAt, &app.UpdatedAt,
	)
	if err != nil {
		return domain.Application{}, mapNotFound(err)
	}

	if err := json.Unmarshal([]byte(txHashes), &app.TxHashes); err != nil {
		return domain.Application{}, fmt.Errorf("decode tx_hashes for %s: %w", app.PublicID, err)
	}

	app.LockDate = mapNullTimePtr(lockDate)
	app.ReminderDate = mapNullTimePtr(reminderDate)
	app.AcceptDate = mapNullTimePtr(acceptDate)
	app.RejectDate = mapNullTimePtr(rejectDate)

	return app, nil
}

func marshalTxHashes(hashes []string) (string, error) {
	if len(hashes) == 0 {
		return "[]", nil
	}
	raw, err := json.Marshal(hashes)
	if err != nil {
		return "", fmt.Errorf("encode tx_hashes: %w", err)
	}
	return string(raw), nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}

func requireRow(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func oneRow(res sql.Result) (bool, error) {
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}
