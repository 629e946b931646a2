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

type WithdrawalRepository interface {
	Create(ctx context.Context, w *models.Withdrawal) error
	GetByID(ctx context.Context, id int64) (*models.Withdrawal, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Withdrawal, error)
	ListByStatus(ctx context.Context, status models.RequestStatus) ([]models.Withdrawal, error)
	Approve(ctx context.Context, a models.WithdrawalApproval) (*models.Withdrawal, models.Wallet, error)
	Reject(ctx context.Context, rj models.Rejection) (*models.Withdrawal, error)
	Delete(ctx context.Context, id int64) error
}

type withdrawalRepo struct {
	db *sql.DB
}

func NewWithdrawalRepository(db *sql.DB) WithdrawalRepository {
	return &withdrawalRepo{db: db}
}

const withdrawalColumns = `id, user_id, amount, method, payment_method, destination, status, processed_by,
	processed_at, rejection_reason, remarks, created_at, updated_at`

func scanWithdrawal(row rowScanner) (*models.Withdrawal, error) {
	var w models.Withdrawal
	err := row.Scan(&w.ID, &w.UserID, &w.Amount, &w.Method, &w.PaymentMethod, &w.Destination, &w.Status, &w.ProcessedBy,
		&w.ProcessedAt, &w.RejectionReason, &w.Remarks, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *withdrawalRepo) Create(ctx context.Context, w *models.Withdrawal) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO withdrawals (user_id, amount, method, payment_method, destination)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, status, created_at, updated_at
	`, w.UserID, w.Amount, w.Method, w.PaymentMethod, w.Destination).Scan(&w.ID, &w.Status, &w.CreatedAt, &w.UpdatedAt)
	if pgCode(err) == pgForeignKeyViolation {
		return apperrors.ErrUserNotFound
	}
	return err
}

func (r *withdrawalRepo) GetByID(ctx context.Context, id int64) (*models.Withdrawal, error) {
	w, err := scanWithdrawal(r.db.QueryRowContext(ctx, `SELECT `+withdrawalColumns+` FROM withdrawals WHERE id = $1`, id))
	if isNoRows(err) {
		return nil, apperrors.ErrWithdrawalNotFound
	}
	return w, err
}

func (r *withdrawalRepo) ListByUser(ctx context.Context, userID int64) ([]models.Withdrawal, error) {
	return r.list(ctx, `SELECT `+withdrawalColumns+` FROM withdrawals WHERE user_id = $1 ORDER BY created_at DESC`, userID)
}

func (r *withdrawalRepo) ListByStatus(ctx context.Context, status models.RequestStatus) ([]models.Withdrawal, error) {
	if status == "" {
		return r.list(ctx, `SELECT `+withdrawalColumns+` FROM withdrawals ORDER BY created_at DESC`)
	}
	return r.list(ctx, `SELECT `+withdrawalColumns+` FROM withdrawals WHERE status = $1 ORDER BY created_at`, status)
}

func (r *withdrawalRepo) list(ctx context.Context, query string, args ...any) ([]models.Withdrawal, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Log.Error("failed to query withdrawals", zap.Error(err))
		return nil, err
	}
	defer closeRows(rows)

	var withdrawals []models.Withdrawal
	for rows.Next() {
		w, err := scanWithdrawal(rows)
		if err != nil {
			logger.Log.Error("failed to scan withdrawal", zap.Error(err))
			return nil, err
		}
		withdrawals = append(withdrawals, *w)
	}
	return withdrawals, rows.Err()
}

// Approve debits the wallet in the same transaction as the status change. When the
// balance does not cover the amount the whole transaction rolls back and the
// withdrawal stays pending.
func (r *withdrawalRepo) Approve(ctx context.Context, a models.WithdrawalApproval) (*models.Withdrawal, models.Wallet, error) {
	var (
		wd     *models.Withdrawal
		wallet models.Wallet
	)
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		var err error
		wd, err = scanWithdrawal(tx.QueryRowContext(ctx, `
			UPDATE withdrawals
			SET status = 'approved', processed_by = $2, processed_at = now(), remarks = $3, updated_at = now()
			WHERE id = $1 AND status = 'pending'
			RETURNING `+withdrawalColumns,
			a.WithdrawalID, a.OperatorID, a.Remarks))
		if isNoRows(err) {
			return r.transitionError(ctx, tx, a.WithdrawalID)
		}
		if err != nil {
			return err
		}

		ref := wd.ID
		wallet, err = applyMovement(ctx, tx, models.DirectionDebit, models.Movement{
			UserID:      wd.UserID,
			Amount:      wd.Amount,
			Description: "Withdrawal approved",
			Source:      models.SourceWithdrawal,
			ReferenceID: &ref,
		})
		if err != nil {
			return err
		}

		a.Event.AggregateID = wd.ID
		a.Event.UserID = wd.UserID
		return insertEvent(ctx, tx, a.Event)
	})
	if err != nil {
		return nil, models.Wallet{}, err
	}
	return wd, wallet, nil
}

func (r *withdrawalRepo) Reject(ctx context.Context, rj models.Rejection) (*models.Withdrawal, error) {
	var wd *models.Withdrawal
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		var err error
		wd, err = scanWithdrawal(tx.QueryRowContext(ctx, `
			UPDATE withdrawals
			SET status = 'rejected', processed_by = $2, processed_at = now(), rejection_reason = $3, updated_at = now()
			WHERE id = $1 AND status = 'pending'
			RETURNING `+withdrawalColumns,
			rj.ID, rj.OperatorID, rj.Reason))
		if isNoRows(err) {
			return r.transitionError(ctx, tx, rj.ID)
		}
		if err != nil {
			return err
		}

		rj.Event.AggregateID = wd.ID
		rj.Event.UserID = wd.UserID
		return insertEvent(ctx, tx, rj.Event)
	})
	if err != nil {
		return nil, err
	}
	return wd, nil
}

func (r *withdrawalRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM withdrawals WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return apperrors.ErrWithdrawalNotFound
	}
	return nil
}

func (r *withdrawalRepo) transitionError(ctx context.Context, tx *sql.Tx, id int64) error {
	var status models.RequestStatus
	err := tx.QueryRowContext(ctx, `SELECT status FROM withdrawals WHERE id = $1`, id).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.ErrWithdrawalNotFound
	}
	if err != nil {
		return err
	}
	return &apperrors.StateError{Entity: "withdrawal", ID: id, Current: string(status)}
}
