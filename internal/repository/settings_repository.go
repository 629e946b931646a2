package repository

import (
	"context"
	"database/sql"

	"github.com/a2sh3r/stablex/internal/apperrors"
	"github.com/a2sh3r/stablex/internal/models"
)

type SettingsRepository interface {
	GetLatestSnapshot(ctx context.Context) (*models.SettingsSnapshot, error)
	GetSnapshot(ctx context.Context, id int64) (*models.SettingsSnapshot, error)
	CreateSnapshot(ctx context.Context, s *models.SettingsSnapshot) error
	GetLatestReward(ctx context.Context) (*models.ReferralReward, error)
	CreateReward(ctx context.Context, rw *models.ReferralReward) error
}

type settingsRepo struct {
	db *sql.DB
}

func NewSettingsRepository(db *sql.DB) SettingsRepository {
	return &settingsRepo{db: db}
}

const snapshotColumns = `id, usdt_buy_rate, usdt_sell_rate, reference_price, inr_bonus_percent,
	min_deposit, min_withdrawal, max_withdrawal, created_by, created_at`

func scanSnapshot(row rowScanner) (*models.SettingsSnapshot, error) {
	var (
		s  models.SettingsSnapshot
		id int64
	)
	err := row.Scan(&id, &s.USDTBuyRate, &s.USDTSellRate, &s.ReferencePrice, &s.INRBonusPercent,
		&s.MinDeposit, &s.MinWithdrawal, &s.MaxWithdrawal, &s.CreatedBy, &s.CreatedAt)
	if isNoRows(err) {
		return nil, apperrors.ErrSettingsNotFound
	}
	if err != nil {
		return nil, err
	}
	s.ID = &id
	return &s, nil
}

func (r *settingsRepo) GetLatestSnapshot(ctx context.Context) (*models.SettingsSnapshot, error) {
	return scanSnapshot(r.db.QueryRowContext(ctx,
		`SELECT `+snapshotColumns+` FROM settings_snapshots ORDER BY id DESC LIMIT 1`))
}

func (r *settingsRepo) GetSnapshot(ctx context.Context, id int64) (*models.SettingsSnapshot, error) {
	return scanSnapshot(r.db.QueryRowContext(ctx,
		`SELECT `+snapshotColumns+` FROM settings_snapshots WHERE id = $1`, id))
}

func (r *settingsRepo) CreateSnapshot(ctx context.Context, s *models.SettingsSnapshot) error {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO settings_snapshots (usdt_buy_rate, usdt_sell_rate, reference_price, inr_bonus_percent,
			min_deposit, min_withdrawal, max_withdrawal, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`, s.USDTBuyRate, s.USDTSellRate, s.ReferencePrice, s.INRBonusPercent,
		s.MinDeposit, s.MinWithdrawal, s.MaxWithdrawal, s.CreatedBy).Scan(&id, &s.CreatedAt)
	if err != nil {
		return err
	}
	s.ID = &id
	return nil
}

func (r *settingsRepo) GetLatestReward(ctx context.Context) (*models.ReferralReward, error) {
	var rw models.ReferralReward
	err := r.db.QueryRowContext(ctx, `
		SELECT id, amount, created_by, created_at FROM referral_rewards ORDER BY id DESC LIMIT 1
	`).Scan(&rw.ID, &rw.Amount, &rw.CreatedBy, &rw.CreatedAt)
	if isNoRows(err) {
		return nil, apperrors.ErrRewardNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rw, nil
}

func (r *settingsRepo) CreateReward(ctx context.Context, rw *models.ReferralReward) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO referral_rewards (amount, created_by) VALUES ($1, $2)
		RETURNING id, created_at
	`, rw.Amount, rw.CreatedBy).Scan(&rw.ID, &rw.CreatedAt)
}
