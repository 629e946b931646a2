package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/a2sh3r/stablex/internal/apperrors"
	"github.com/a2sh3r/stablex/internal/logger"
	"github.com/a2sh3r/stablex/internal/models"
	"go.uber.org/zap"
)

type DepositRepository interface {
	Create(ctx context.Context, d *models.Deposit) error
	GetByID(ctx context.Context, id int64) (*models.Deposit, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Deposit, error)
	ListByStatus(ctx context.Context, status models.RequestStatus) ([]models.Deposit, error)
	Approve(ctx context.Context, a models.DepositApproval) (*models.Deposit, models.Wallet, error)
	Reject(ctx context.Context, rj models.Rejection) (*models.Deposit, error)
	Delete(ctx context.Context, id int64) error
}

type depositRepo struct {
	db *sql.DB
}

func NewDepositRepository(db *sql.DB) DepositRepository {
	return &depositRepo{db: db}
}

const depositColumns = `id, user_id, amount, method, payload, status, processed_by, processed_at,
	rejection_reason, remarks, bonus_amount, bonus_percent, settings_snapshot_id, created_at, updated_at`

func scanDeposit(row rowScanner) (*models.Deposit, error) {
	var d models.Deposit
	err := row.Scan(&d.ID, &d.UserID, &d.Amount, &d.Method, &d.Payload, &d.Status, &d.ProcessedBy, &d.ProcessedAt,
		&d.RejectionReason, &d.Remarks, &d.BonusAmount, &d.BonusPercent, &d.SettingsSnapshotID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *depositRepo) Create(ctx context.Context, d *models.Deposit) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO deposits (user_id, amount, method, payload)
		VALUES ($1, $2, $3, $4)
		RETURNING id, status, created_at, updated_at
	`, d.UserID, d.Amount, d.Method, d.Payload).Scan(&d.ID, &d.Status, &d.CreatedAt, &d.UpdatedAt)
	if pgCode(err) == pgForeignKeyViolation {
		return apperrors.ErrUserNotFound
	}
	return err
}

func (r *depositRepo) GetByID(ctx context.Context, id int64) (*models.Deposit, error) {
	d, err := scanDeposit(r.db.QueryRowContext(ctx, `SELECT `+depositColumns+` FROM deposits WHERE id = $1`, id))
	if isNoRows(err) {
		return nil, apperrors.ErrDepositNotFound
	}
	return d, err
}

func (r *depositRepo) ListByUser(ctx context.Context, userID int64) ([]models.Deposit, error) {
	return r.list(ctx, `SELECT `+depositColumns+` FROM deposits WHERE user_id = $1 ORDER BY created_at DESC`, userID)
}

// ListByStatus returns every deposit when status is empty.
func (r *depositRepo) ListByStatus(ctx context.Context, status models.RequestStatus) ([]models.Deposit, error) {
	if status == "" {
		return r.list(ctx, `SELECT `+depositColumns+` FROM deposits ORDER BY created_at DESC`)
	}
	return r.list(ctx, `SELECT `+depositColumns+` FROM deposits WHERE status = $1 ORDER BY created_at`, status)
}

func (r *depositRepo) list(ctx context.Context, query string, args ...any) ([]models.Deposit, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Log.Error("failed to query deposits", zap.Error(err))
		return nil, err
	}
	defer closeRows(rows)

	var deposits []models.Deposit
	for rows.Next() {
		d, err := scanDeposit(rows)
		if err != nil {
			logger.Log.Error("failed to scan deposit", zap.Error(err))
			return nil, err
		}
		deposits = append(deposits, *d)
	}
	return deposits, rows.Err()
}

// Approve flips a pending deposit to approved, credits the wallet and records the
// outbox event in one transaction. A deposit that is no longer pending yields a StateError.
func (r *depositRepo) Approve(ctx context.Context, a models.DepositApproval) (*models.Deposit, models.Wallet, error) {
	var (
		d *models.Deposit
		w models.Wallet
	)
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		var err error
		d, err = scanDeposit(tx.QueryRowContext(ctx, `
			UPDATE deposits
			SET status = 'approved', processed_by = $2, processed_at = now(), remarks = $3,
			    bonus_amount = $4, bonus_percent = $5, settings_snapshot_id = $6, updated_at = now()
			WHERE id = $1 AND status = 'pending'
			RETURNING `+depositColumns,
			a.DepositID, a.OperatorID, a.Remarks, a.BonusAmount, a.BonusPercent, a.SettingsSnapshotID))
		if isNoRows(err) {
			return r.transitionError(ctx, tx, a.DepositID)
		}
		if err != nil {
			return err
		}

		if a.Credit {
			ref := d.ID
			w, err = applyMovement(ctx, tx, models.DirectionCredit, models.Movement{
				UserID:      d.UserID,
				Amount:      d.Amount,
				Description: "Deposit approved",
				Source:      models.SourceDeposit,
				ReferenceID: &ref,
			})
			if err != nil {
				return err
			}
			if a.BonusAmount.IsPositive() {
				w, err = applyMovement(ctx, tx, models.DirectionCredit, models.Movement{
					UserID:      d.UserID,
					Amount:      a.BonusAmount,
					Description: "Deposit bonus",
					Source:      models.SourceDepositBonus,
					ReferenceID: &ref,
				})
				if err != nil {
					return err
				}
			}
		}

		a.Event.AggregateID = d.ID
		a.Event.UserID = d.UserID
		return insertEvent(ctx, tx, a.Event)
	})
	if err != nil {
		return nil, models.Wallet{}, err
	}
	return d, w, nil
}

func (r *depositRepo) Reject(ctx context.Context, rj models.Rejection) (*models.Deposit, error) {
	var d *models.Deposit
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		var err error
		d, err = scanDeposit(tx.QueryRowContext(ctx, `
			UPDATE deposits
			SET status = 'rejected', processed_by = $2, processed_at = now(), rejection_reason = $3, updated_at = now()
			WHERE id = $1 AND status = 'pending'
			RETURNING `+depositColumns,
			rj.ID, rj.OperatorID, rj.Reason))
		if isNoRows(err) {
			return r.transitionError(ctx, tx, rj.ID)
		}
		if err != nil {
			return err
		}

		rj.Event.AggregateID = d.ID
		rj.Event.UserID = d.UserID
		return insertEvent(ctx, tx, rj.Event)
	})
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *depositRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM deposits WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return apperrors.ErrDepositNotFound
	}
	return nil
}

func (r *depositRepo) transitionError(ctx context.Context, tx *sql.Tx, id int64) error {
	var status models.RequestStatus
	err := tx.QueryRowContext(ctx, `SELECT status FROM deposits WHERE id = $1`, id).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.ErrDepositNotFound
	}
	if err != nil {
		return err
	}
	return &apperrors.StateError{Entity: "deposit", ID: id, Current: string(status)}
}
