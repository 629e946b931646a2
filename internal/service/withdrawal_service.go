package service

import (
	"context"
	"errors"
	"strings"

	"github.com/a2sh3r/stablex/internal/apperrors"
	"github.com/a2sh3r/stablex/internal/logger"
	"github.com/a2sh3r/stablex/internal/models"
	"github.com/a2sh3r/stablex/internal/realtime"
	"github.com/a2sh3r/stablex/internal/repository"
	"github.com/a2sh3r/stablex/internal/utils"
	"go.uber.org/zap"
)

type WithdrawalService interface {
	Create(ctx context.Context, userID int64, req models.WithdrawalRequest) (*models.Withdrawal, error)
	Approve(ctx context.Context, operatorID, id int64, remarks string) (*models.Withdrawal, error)
	Reject(ctx context.Context, operatorID, id int64, reason string) (*models.Withdrawal, error)
	Delete(ctx context.Context, operatorID, id int64) error
	Get(ctx context.Context, id int64) (*models.Withdrawal, error)
	ListForUser(ctx context.Context, userID int64) ([]models.Withdrawal, error)
	List(ctx context.Context, status models.RequestStatus) ([]models.Withdrawal, error)
}

type withdrawalService struct {
	repo         repository.WithdrawalRepository
	wallets      repository.WalletRepository
	settings     SettingsService
	restrictions RestrictionService
	effects      EffectProcessor
	emitter      realtime.Emitter
}

func NewWithdrawalService(
	repo repository.WithdrawalRepository,
	wallets repository.WalletRepository,
	settings SettingsService,
	restrictions RestrictionService,
	effects EffectProcessor,
	emitter realtime.Emitter,
) WithdrawalService {
	return &withdrawalService{
		repo:         repo,
		wallets:      wallets,
		settings:     settings,
		restrictions: restrictions,
		effects:      effects,
		emitter:      emitter,
	}
}

func (s *withdrawalService) Create(ctx context.Context, userID int64, req models.WithdrawalRequest) (*models.Withdrawal, error) {
	req.Destination = normalizeDestination(req.Destination)
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	settings, err := s.settings.Current(ctx)
	if err != nil {
		return nil, err
	}
	if req.Amount.LessThan(settings.MinWithdrawal) {
		return nil, apperrors.NewValidationError("amount", "must be at least "+settings.MinWithdrawal.StringFixed(2))
	}
	if settings.MaxWithdrawal.IsPositive() && req.Amount.GreaterThan(settings.MaxWithdrawal) {
		return nil, apperrors.NewValidationError("amount", "must not exceed "+settings.MaxWithdrawal.StringFixed(2))
	}

	kinds := []models.RestrictionType{models.RestrictWithdraw}
	if req.IsSell() {
		kinds = append(kinds, models.RestrictSell)
	}
	if err := s.restrictions.Enforce(ctx, userID, kinds...); err != nil {
		return nil, err
	}

	balance, err := s.wallets.GetBalance(ctx, userID)
	if err != nil {
		return nil, err
	}
	if balance.LessThan(req.Amount) {
		return nil, apperrors.ErrInsufficientFunds
	}

	w := &models.Withdrawal{
		UserID:        userID,
		Amount:        req.Amount,
		Method:        req.Method,
		PaymentMethod: req.PaymentMethod,
		Destination:   req.Destination,
	}
	if err := s.repo.Create(ctx, w); err != nil {
		return nil, err
	}

	logger.Log.Info("withdrawal created",
		zap.Int64("withdrawal_id", w.ID), zap.Int64("user_id", userID),
		zap.String("amount", w.Amount.String()), zap.String("method", string(w.Method)))
	return w, nil
}

// Approve debits the wallet. When the balance no longer covers the amount the
// approval fails with ErrInsufficientFunds and the request stays pending.
func (s *withdrawalService) Approve(ctx context.Context, operatorID, id int64, remarks string) (*models.Withdrawal, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status != models.StatusPending {
		return nil, &apperrors.StateError{Entity: "withdrawal", ID: id, Current: string(current.Status)}
	}

	ev, err := newLedgerEvent(models.EventWithdrawalApproved, current.ID, current.UserID, models.EventPayload{
		Amount: current.Amount.StringFixed(2),
		Method: string(current.Method),
	})
	if err != nil {
		return nil, err
	}

	wd, wallet, err := s.repo.Approve(ctx, models.WithdrawalApproval{
		WithdrawalID: id,
		OperatorID:   operatorID,
		Remarks:      optionalString(remarks),
		Event:        ev,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrInsufficientFunds) {
			logger.Log.Info("withdrawal approval blocked by balance",
				zap.Int64("withdrawal_id", id), zap.Int64("operator_id", operatorID))
		}
		return nil, err
	}

	logger.Log.Info("withdrawal approved",
		zap.Int64("withdrawal_id", wd.ID), zap.Int64("operator_id", operatorID), zap.Int64("user_id", wd.UserID),
		zap.String("amount", wd.Amount.String()))

	emitBalance(ctx, s.emitter, wallet)
	s.runEffects(ctx, ev, wd.UserID)
	return wd, nil
}

func (s *withdrawalService) Reject(ctx context.Context, operatorID, id int64, reason string) (*models.Withdrawal, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, apperrors.NewValidationError("reason", "is required")
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status != models.StatusPending {
		return nil, &apperrors.StateError{Entity: "withdrawal", ID: id, Current: string(current.Status)}
	}

	ev, err := newLedgerEvent(models.EventWithdrawalRejected, current.ID, current.UserID, models.EventPayload{
		Amount: current.Amount.StringFixed(2),
		Method: string(current.Method),
		Reason: reason,
	})
	if err != nil {
		return nil, err
	}

	wd, err := s.repo.Reject(ctx, models.Rejection{ID: id, OperatorID: operatorID, Reason: reason, Event: ev})
	if err != nil {
		return nil, err
	}

	logger.Log.Info("withdrawal rejected", zap.Int64("withdrawal_id", wd.ID), zap.Int64("operator_id", operatorID), zap.String("reason", reason))
	s.runEffects(ctx, ev, wd.UserID)
	return wd, nil
}

func (s *withdrawalService) Delete(ctx context.Context, operatorID, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Log.Info("withdrawal deleted", zap.Int64("withdrawal_id", id), zap.Int64("operator_id", operatorID))
	return nil
}

func (s *withdrawalService) Get(ctx context.Context, id int64) (*models.Withdrawal, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *withdrawalService) ListForUser(ctx context.Context, userID int64) ([]models.Withdrawal, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *withdrawalService) List(ctx context.Context, status models.RequestStatus) ([]models.Withdrawal, error) {
	if status != "" && !status.Valid() {
		return nil, apperrors.NewValidationError("status", "must be one of pending, approved, rejected")
	}
	return s.repo.ListByStatus(ctx, status)
}

func (s *withdrawalService) runEffects(ctx context.Context, ev models.LedgerEvent, userID int64) {
	ev.UserID = userID
	if err := s.effects.Process(ctx, ev); err != nil {
		logger.Log.Warn("withdrawal effects deferred to relay", zap.String("event_id", ev.ID), zap.Error(err))
	}
}

func normalizeDestination(d models.Destination) models.Destination {
	d.AccountHolder = strings.TrimSpace(d.AccountHolder)
	d.AccountNumber = strings.TrimSpace(d.AccountNumber)
	d.IFSC = strings.ToUpper(strings.TrimSpace(d.IFSC))
	d.BankName = strings.TrimSpace(d.BankName)
	d.UPIID = strings.TrimSpace(d.UPIID)
	d.CryptoAddress = strings.TrimSpace(d.CryptoAddress)
	d.Network = strings.ToUpper(strings.TrimSpace(d.Network))
	return d
}
