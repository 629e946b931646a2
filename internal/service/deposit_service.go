package service

import (
	"context"
	"strings"

	"github.com/a2sh3r/stablex/internal/apperrors"
	"github.com/a2sh3r/stablex/internal/logger"
	"github.com/a2sh3r/stablex/internal/models"
	"github.com/a2sh3r/stablex/internal/realtime"
	"github.com/a2sh3r/stablex/internal/repository"
	"github.com/a2sh3r/stablex/internal/utils"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type DepositService interface {
	Create(ctx context.Context, userID int64, req models.DepositRequest) (*models.Deposit, error)
	Approve(ctx context.Context, operatorID, id int64, remarks string) (*models.Deposit, error)
	Reject(ctx context.Context, operatorID, id int64, reason string) (*models.Deposit, error)
	Delete(ctx context.Context, operatorID, id int64) error
	Get(ctx context.Context, id int64) (*models.Deposit, error)
	BonusAudit(ctx context.Context, id int64) (*models.BonusAudit, error)
	ListForUser(ctx context.Context, userID int64) ([]models.Deposit, error)
	List(ctx context.Context, status models.RequestStatus) ([]models.Deposit, error)
}

type depositService struct {
	repo         repository.DepositRepository
	settings     SettingsService
	restrictions RestrictionService
	effects      EffectProcessor
	emitter      realtime.Emitter
}

func NewDepositService(
	repo repository.DepositRepository,
	settings SettingsService,
	restrictions RestrictionService,
	effects EffectProcessor,
	emitter realtime.Emitter,
) DepositService {
	return &depositService{
		repo:         repo,
		settings:     settings,
		restrictions: restrictions,
		effects:      effects,
		emitter:      emitter,
	}
}

func (s *depositService) Create(ctx context.Context, userID int64, req models.DepositRequest) (*models.Deposit, error) {
	req.Payload = normalizeDepositPayload(req.Payload)
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	settings, err := s.settings.Current(ctx)
	if err != nil {
		return nil, err
	}
	if req.Amount.LessThan(settings.MinDeposit) {
		return nil, apperrors.NewValidationError("amount", "must be at least "+settings.MinDeposit.StringFixed(2))
	}

	if err := s.restrictions.Enforce(ctx, userID, models.RestrictDeposit); err != nil {
		return nil, err
	}

	d := &models.Deposit{
		UserID:  userID,
		Amount:  req.Amount,
		Method:  req.Method,
		Payload: req.Payload,
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}

	logger.Log.Info("deposit created",
		zap.Int64("deposit_id", d.ID), zap.Int64("user_id", userID),
		zap.String("amount", d.Amount.String()), zap.String("method", string(d.Method)))
	return d, nil
}

func normalizeDepositPayload(p models.DepositPayload) models.DepositPayload {
	p.TransactionRef = strings.TrimSpace(p.TransactionRef)
	p.Network = strings.ToUpper(strings.TrimSpace(p.Network))
	p.WalletAddress = strings.TrimSpace(p.WalletAddress)
	p.ProofPath = strings.TrimSpace(p.ProofPath)
	return p
}

// Approve credits the deposit amount plus the bonus of the current settings snapshot.
// BuyStablecoin deposits are settled off-ledger and only change status.
func (s *depositService) Approve(ctx context.Context, operatorID, id int64, remarks string) (*models.Deposit, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status != models.StatusPending {
		return nil, &apperrors.StateError{Entity: "deposit", ID: id, Current: string(current.Status)}
	}

	credit := current.Method != models.DepositBuyStablecoin
	approval := models.DepositApproval{
		DepositID:    id,
		OperatorID:   operatorID,
		Remarks:      optionalString(remarks),
		Credit:       credit,
		BonusAmount:  decimal.Zero,
		BonusPercent: decimal.Zero,
	}

	if credit {
		settings, err := s.settings.Current(ctx)
		if err != nil {
			logger.Log.Warn("settings unavailable, approving without bonus", zap.Int64("deposit_id", id), zap.Error(err))
		} else {
			approval.BonusPercent = settings.INRBonusPercent
			approval.BonusAmount = CalculateBonus(current.Amount, settings.INRBonusPercent)
			approval.SettingsSnapshotID = settings.ID
		}
	}

	payload := models.EventPayload{Amount: current.Amount.StringFixed(2), Method: string(current.Method)}
	if approval.BonusAmount.IsPositive() {
		payload.BonusAmount = approval.BonusAmount.StringFixed(2)
	}
	approval.Event, err = newLedgerEvent(models.EventDepositApproved, current.ID, current.UserID, payload)
	if err != nil {
		return nil, err
	}

	d, w, err := s.repo.Approve(ctx, approval)
	if err != nil {
		return nil, err
	}

	logger.Log.Info("deposit approved",
		zap.Int64("deposit_id", d.ID), zap.Int64("operator_id", operatorID), zap.Int64("user_id", d.UserID),
		zap.String("amount", d.Amount.String()), zap.String("bonus", d.BonusAmount.String()))

	if credit {
		emitBalance(ctx, s.emitter, w)
	}
	s.runEffects(ctx, approval.Event, d.UserID)
	return d, nil
}

func (s *depositService) Reject(ctx context.Context, operatorID, id int64, reason string) (*models.Deposit, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, apperrors.NewValidationError("reason", "is required")
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status != models.StatusPending {
		return nil, &apperrors.StateError{Entity: "deposit", ID: id, Current: string(current.Status)}
	}

	ev, err := newLedgerEvent(models.EventDepositRejected, current.ID, current.UserID, models.EventPayload{
		Amount: current.Amount.StringFixed(2),
		Method: string(current.Method),
		Reason: reason,
	})
	if err != nil {
		return nil, err
	}

	d, err := s.repo.Reject(ctx, models.Rejection{ID: id, OperatorID: operatorID, Reason: reason, Event: ev})
	if err != nil {
		return nil, err
	}

	logger.Log.Info("deposit rejected", zap.Int64("deposit_id", d.ID), zap.Int64("operator_id", operatorID), zap.String("reason", reason))
	s.runEffects(ctx, ev, d.UserID)
	return d, nil
}

func (s *depositService) Delete(ctx context.Context, operatorID, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Log.Info("deposit deleted", zap.Int64("deposit_id", id), zap.Int64("operator_id", operatorID))
	return nil
}

func (s *depositService) Get(ctx context.Context, id int64) (*models.Deposit, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *depositService) ListForUser(ctx context.Context, userID int64) ([]models.Deposit, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *depositService) List(ctx context.Context, status models.RequestStatus) ([]models.Deposit, error) {
	if status != "" && !status.Valid() {
		return nil, apperrors.NewValidationError("status", "must be one of pending, approved, rejected")
	}
	return s.repo.ListByStatus(ctx, status)
}

func (s *depositService) runEffects(ctx context.Context, ev models.LedgerEvent, userID int64) {
	ev.UserID = userID
	if err := s.effects.Process(ctx, ev); err != nil {
		logger.Log.Warn("deposit effects deferred to relay", zap.String("event_id", ev.ID), zap.Error(err))
	}
}

// BonusAudit returns the bonus recorded on a deposit together with the settings
// snapshot that priced it. Deposits approved without a bonus carry no snapshot.
func (s *depositService) BonusAudit(ctx context.Context, id int64) (*models.BonusAudit, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	audit := &models.BonusAudit{
		DepositID:    d.ID,
		Status:       d.Status,
		Amount:       d.Amount,
		BonusAmount:  d.BonusAmount,
		BonusPercent: d.BonusPercent,
	}
	if d.SettingsSnapshotID == nil {
		return audit, nil
	}

	snap, err := s.settings.Snapshot(ctx, *d.SettingsSnapshotID)
	if err != nil {
		return nil, err
	}
	audit.Settings = snap
	return audit, nil
}
