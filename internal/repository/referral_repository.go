package repository

import (
	"context"
	"database/sql"

	"github.com/a2sh3r/stablex/internal/apperrors"
	"github.com/a2sh3r/stablex/internal/models"
)

type ReferralRepository interface {
	// PayReferral credits the referrer once per deposit; a repeated call returns ErrAlreadyApplied.
	PayReferral(ctx context.Context, p models.ReferralPayout) (models.Wallet, error)
}

type referralRepo struct {
	db *sql.DB
}

func NewReferralRepository(db *sql.DB) ReferralRepository {
	return &referralRepo{db: db}
}

func (r *referralRepo) PayReferral(ctx context.Context, p models.ReferralPayout) (models.Wallet, error) {
	var w models.Wallet
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO referral_payouts (deposit_id, referrer_id, referee_id, amount)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (deposit_id) DO NOTHING
		`, p.DepositID, p.ReferrerID, p.RefereeID, p.Amount)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return apperrors.ErrAlreadyApplied
		}

		ref := p.DepositID
		w, err = applyMovement(ctx, tx, models.DirectionCredit, models.Movement{
			UserID:      p.ReferrerID,
			Amount:      p.Amount,
			Description: "Referral reward",
			Source:      models.SourceReferral,
			ReferenceID: &ref,
		})
		return err
	})
	return w, err
}
