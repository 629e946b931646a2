package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/a2sh3r/stablex/internal/apperrors"
	"github.com/a2sh3r/stablex/internal/logger"
	"github.com/a2sh3r/stablex/internal/models"
	"github.com/a2sh3r/stablex/internal/realtime"
	"github.com/a2sh3r/stablex/internal/repository"
	"go.uber.org/zap"
)

type ReferralService interface {
	// PayForDeposit credits the depositor's referrer once per deposit.
	// Only retryable storage failures are returned; everything else is logged.
	PayForDeposit(ctx context.Context, depositID, depositorID int64) error
}

type referralService struct {
	users         repository.UserRepository
	repo          repository.ReferralRepository
	settings      SettingsService
	notifications NotificationService
	emitter       realtime.Emitter
}

func NewReferralService(
	users repository.UserRepository,
	repo repository.ReferralRepository,
	settings SettingsService,
	notifications NotificationService,
	emitter realtime.Emitter,
) ReferralService {
	return &referralService{
		users:         users,
		repo:          repo,
		settings:      settings,
		notifications: notifications,
		emitter:       emitter,
	}
}

func (s *referralService) PayForDeposit(ctx context.Context, depositID, depositorID int64) error {
	log := logger.Log.With(zap.Int64("deposit_id", depositID), zap.Int64("user_id", depositorID))

	depositor, err := s.users.GetUserByID(ctx, depositorID)
	if errors.Is(err, apperrors.ErrUserNotFound) {
		log.Warn("referral skipped: depositor not found")
		return nil
	}
	if err != nil {
		return fmt.Errorf("load depositor: %w", err)
	}
	if depositor.ReferredBy == nil || *depositor.ReferredBy == "" {
		return nil
	}

	referrer, err := s.users.GetUserByReferralCode(ctx, *depositor.ReferredBy)
	if errors.Is(err, apperrors.ErrUserNotFound) {
		log.Warn("referral skipped: referrer not found", zap.String("referral_code", *depositor.ReferredBy))
		return nil
	}
	if err != nil {
		return fmt.Errorf("load referrer: %w", err)
	}
	if referrer.ID == depositor.ID {
		return nil
	}

	reward, err := s.settings.CurrentReferralReward(ctx)
	if errors.Is(err, apperrors.ErrRewardNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load referral reward: %w", err)
	}
	if !reward.IsPositive() {
		return nil
	}

	w, err := s.repo.PayReferral(ctx, models.ReferralPayout{
		DepositID:  depositID,
		ReferrerID: referrer.ID,
		RefereeID:  depositor.ID,
		Amount:     reward,
	})
	if errors.Is(err, apperrors.ErrAlreadyApplied) {
		log.Debug("referral already paid")
		return nil
	}
	if errors.Is(err, apperrors.ErrUserNotFound) {
		log.Warn("referral skipped: referrer wallet unavailable", zap.Int64("referrer_id", referrer.ID))
		return nil
	}
	if err != nil {
		return fmt.Errorf("pay referral: %w", err)
	}

	log.Info("referral paid", zap.Int64("referrer_id", referrer.ID), zap.String("amount", reward.String()))
	emitBalance(ctx, s.emitter, w)

	target := referrer.ID
	_ = notifySafely(ctx, s.notifications, NotifyParams{
		Target:    &target,
		Title:     "Referral reward",
		Message:   fmt.Sprintf("You earned %s because %s made a deposit.", reward.StringFixed(2), depositor.Login),
		DedupeKey: "referral:" + strconv.FormatInt(depositID, 10),
	})
	return nil
}
