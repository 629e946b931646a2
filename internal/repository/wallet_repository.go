package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/a2sh3r/stablex/internal/apperrors"
	"github.com/a2sh3r/stablex/internal/logger"
	"github.com/a2sh3r/stablex/internal/models"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type WalletRepository interface {
	GetBalance(ctx context.Context, userID int64) (decimal.Decimal, error)
	Credit(ctx context.Context, mv models.Movement) (models.Wallet, error)
	Debit(ctx context.Context, mv models.Movement) (models.Wallet, error)
	SetBalance(ctx context.Context, userID int64, target decimal.Decimal, description string) (models.Wallet, error)
	History(ctx context.Context, userID int64, limit int) ([]models.WalletEntry, error)
}

type walletRepo struct {
	db *sql.DB
}

func NewWalletRepository(db *sql.DB) WalletRepository {
	return &walletRepo{db: db}
}

func (r *walletRepo) GetBalance(ctx context.Context, userID int64) (decimal.Decimal, error) {
	if err := ensureWallet(ctx, r.db, userID); err != nil {
		return decimal.Zero, err
	}

	var balance decimal.Decimal
	err := r.db.QueryRowContext(ctx, `SELECT balance FROM wallets WHERE user_id = $1`, userID).Scan(&balance)
	if err != nil {
		logger.Log.Error("failed to get balance", zap.Int64("user_id", userID), zap.Error(err))
		return decimal.Zero, err
	}
	return balance, nil
}

func (r *walletRepo) Credit(ctx context.Context, mv models.Movement) (models.Wallet, error) {
	var w models.Wallet
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		var err error
		w, err = applyMovement(ctx, tx, models.DirectionCredit, mv)
		return err
	})
	return w, err
}

func (r *walletRepo) Debit(ctx context.Context, mv models.Movement) (models.Wallet, error) {
	var w models.Wallet
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		var err error
		w, err = applyMovement(ctx, tx, models.DirectionDebit, mv)
		return err
	})
	return w, err
}

// SetBalance records the difference between the current and target balance as a
// manual-override entry so the history still sums to the balance.
func (r *walletRepo) SetBalance(ctx context.Context, userID int64, target decimal.Decimal, description string) (models.Wallet, error) {
	var w models.Wallet
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		current, err := lockWallet(ctx, tx, userID)
		if err != nil {
			return err
		}

		delta := target.Sub(current.Balance)
		if delta.IsZero() {
			w = current
			return nil
		}

		mv := models.Movement{
			UserID:      userID,
			Amount:      delta.Abs(),
			Description: description,
			Source:      models.SourceManualOverride,
		}
		dir := models.DirectionCredit
		if delta.IsNegative() {
			dir = models.DirectionDebit
		}
		w, err = applyMovement(ctx, tx, dir, mv)
		return err
	})
	return w, err
}

func (r *walletRepo) History(ctx context.Context, userID int64, limit int) ([]models.WalletEntry, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, direction, amount, description, source, reference_id, balance_after, created_at
		FROM wallet_entries
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		logger.Log.Error("failed to query wallet history", zap.Error(err))
		return nil, err
	}
	defer closeRows(rows)

	var entries []models.WalletEntry
	for rows.Next() {
		var e models.WalletEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Direction, &e.Amount, &e.Description, &e.Source,
			&e.ReferenceID, &e.BalanceAfter, &e.CreatedAt); err != nil {
			logger.Log.Error("failed to scan wallet entry", zap.Error(err))
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func ensureWallet(ctx context.Context, db execer, userID int64) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO wallets (user_id, balance) VALUES ($1, 0)
		ON CONFLICT (user_id) DO NOTHING
	`, userID)
	if pgCode(err) == pgForeignKeyViolation {
		return apperrors.ErrUserNotFound
	}
	return err
}

// lockWallet creates the wallet if needed and takes a row lock for the rest of tx.
func lockWallet(ctx context.Context, tx *sql.Tx, userID int64) (models.Wallet, error) {
	if err := ensureWallet(ctx, tx, userID); err != nil {
		return models.Wallet{}, err
	}

	w := models.Wallet{UserID: userID}
	err := tx.QueryRowContext(ctx, `
		SELECT balance, updated_at FROM wallets WHERE user_id = $1 FOR UPDATE
	`, userID).Scan(&w.Balance, &w.UpdatedAt)
	if err != nil {
		return models.Wallet{}, fmt.Errorf("lock wallet %d: %w", userID, err)
	}
	return w, nil
}

// applyMovement mutates the locked wallet and appends the matching history entry.
func applyMovement(ctx context.Context, tx *sql.Tx, dir models.Direction, mv models.Movement) (models.Wallet, error) {
	if !mv.Amount.IsPositive() {
		return models.Wallet{}, apperrors.NewValidationError("amount", "must be greater than zero")
	}

	w, err := lockWallet(ctx, tx, mv.UserID)
	if err != nil {
		return models.Wallet{}, err
	}

	next := w.Balance.Add(mv.Amount)
	if dir == models.DirectionDebit {
		if w.Balance.LessThan(mv.Amount) {
			return models.Wallet{}, apperrors.ErrInsufficientFunds
		}
		next = w.Balance.Sub(mv.Amount)
	}
	if next.GreaterThan(models.MaxBalance) {
		return models.Wallet{}, apperrors.NewValidationError("amount", "would take the balance past "+models.MaxBalance.StringFixed(2))
	}

	err = tx.QueryRowContext(ctx, `
		UPDATE wallets SET balance = $1, updated_at = now() WHERE user_id = $2
		RETURNING updated_at
	`, next, mv.UserID).Scan(&w.UpdatedAt)
	if err != nil {
		switch pgCode(err) {
		case pgCheckViolation:
			return models.Wallet{}, apperrors.ErrInsufficientFunds
		case pgNumericOverflow:
			return models.Wallet{}, apperrors.NewValidationError("amount", "is out of range")
		}
		return models.Wallet{}, err
	}
	w.Balance = next

	_, err = tx.ExecContext(ctx, `
		INSERT INTO wallet_entries (user_id, direction, amount, description, source, reference_id, balance_after)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, mv.UserID, dir, mv.Amount, mv.Description, mv.Source, mv.ReferenceID, next)
	if err != nil {
		return models.Wallet{}, err
	}

	return w, nil
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
