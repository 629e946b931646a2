package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/a2sh3r/stablex/internal/apperrors"
	"github.com/a2sh3r/stablex/internal/logger"
	"github.com/a2sh3r/stablex/internal/models"
	"github.com/a2sh3r/stablex/internal/pricefeed"
	"github.com/a2sh3r/stablex/internal/repository"
	"github.com/a2sh3r/stablex/internal/utils"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type SettingsService interface {
	Current(ctx context.Context) (*models.SettingsSnapshot, error)
	Snapshot(ctx context.Context, id int64) (*models.SettingsSnapshot, error)
	Update(ctx context.Context, operatorID int64, patch models.SettingsPatch) (*models.SettingsSnapshot, error)
	CurrentReferralReward(ctx context.Context) (decimal.Decimal, error)
	SetReferralReward(ctx context.Context, operatorID int64, amount decimal.Decimal) (*models.ReferralReward, error)
	RefreshReferencePrice(ctx context.Context, operatorID int64) (*models.SettingsSnapshot, error)
}

// SettingsDefaults apply until an operator saves the first snapshot.
type SettingsDefaults struct {
	MinDeposit    decimal.Decimal
	MinWithdrawal decimal.Decimal
	MaxWithdrawal decimal.Decimal
}

type settingsService struct {
	repo     repository.SettingsRepository
	prices   pricefeed.ClientInterface
	defaults SettingsDefaults
}

func NewSettingsService(repo repository.SettingsRepository, prices pricefeed.ClientInterface, defaults SettingsDefaults) SettingsService {
	return &settingsService{repo: repo, prices: prices, defaults: defaults}
}

func (s *settingsService) Current(ctx context.Context) (*models.SettingsSnapshot, error) {
	snap, err := s.repo.GetLatestSnapshot(ctx)
	if errors.Is(err, apperrors.ErrSettingsNotFound) {
		return &models.SettingsSnapshot{
			MinDeposit:    s.defaults.MinDeposit,
			MinWithdrawal: s.defaults.MinWithdrawal,
			MaxWithdrawal: s.defaults.MaxWithdrawal,
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return snap, nil
}

func (s *settingsService) Snapshot(ctx context.Context, id int64) (*models.SettingsSnapshot, error) {
	return s.repo.GetSnapshot(ctx, id)
}

func (s *settingsService) Update(ctx context.Context, operatorID int64, patch models.SettingsPatch) (*models.SettingsSnapshot, error) {
	if err := utils.ValidateStruct(patch); err != nil {
		return nil, err
	}

	current, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}

	next := *current
	next.ID = nil
	next.CreatedBy = &operatorID

	fields := []struct {
		src *decimal.Decimal
		dst *decimal.Decimal
	}{
		{patch.USDTBuyRate, &next.USDTBuyRate},
		{patch.USDTSellRate, &next.USDTSellRate},
		{patch.INRBonusPercent, &next.INRBonusPercent},
		{patch.MinDeposit, &next.MinDeposit},
		{patch.MinWithdrawal, &next.MinWithdrawal},
		{patch.MaxWithdrawal, &next.MaxWithdrawal},
	}
	for _, f := range fields {
		if f.src != nil {
			*f.dst = *f.src
		}
	}

	if next.MaxWithdrawal.IsPositive() && next.MaxWithdrawal.LessThan(next.MinWithdrawal) {
		return nil, apperrors.NewValidationError("max_withdrawal", "must not be below min_withdrawal")
	}

	if err := s.repo.CreateSnapshot(ctx, &next); err != nil {
		return nil, err
	}

	logger.Log.Info("settings updated",
		zap.Int64("operator_id", operatorID),
		zap.Int64("snapshot_id", *next.ID),
		zap.String("inr_bonus_percent", next.INRBonusPercent.String()),
	)
	return &next, nil
}

func (s *settingsService) CurrentReferralReward(ctx context.Context) (decimal.Decimal, error) {
	rw, err := s.repo.GetLatestReward(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return rw.Amount, nil
}

func (s *settingsService) SetReferralReward(ctx context.Context, operatorID int64, amount decimal.Decimal) (*models.ReferralReward, error) {
	if err := utils.ValidateVar("amount", amount, "nonnegative,cents,amountcap"); err != nil {
		return nil, err
	}

	rw := &models.ReferralReward{Amount: amount, CreatedBy: operatorID}
	if err := s.repo.CreateReward(ctx, rw); err != nil {
		return nil, err
	}
	return rw, nil
}

// RefreshReferencePrice stores the feed's current USDT price in a new snapshot.
func (s *settingsService) RefreshReferencePrice(ctx context.Context, operatorID int64) (*models.SettingsSnapshot, error) {
	price, err := s.prices.GetPrice(ctx, pricefeed.DefaultSymbol)
	if err != nil {
		return nil, fmt.Errorf("fetch reference price: %w", err)
	}

	current, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}

	next := *current
	next.ID = nil
	next.CreatedBy = &operatorID
	next.ReferencePrice = price.Round(2)

	if err := s.repo.CreateSnapshot(ctx, &next); err != nil {
		return nil, err
	}
	return &next, nil
}
