package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/a2sh3r/stablex/internal/logger"
	"github.com/a2sh3r/stablex/internal/models"
	"github.com/a2sh3r/stablex/internal/realtime"
	"github.com/a2sh3r/stablex/internal/repository"
	"github.com/a2sh3r/stablex/internal/utils"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type WalletService interface {
	GetBalance(ctx context.Context, userID int64) (decimal.Decimal, error)
	Credit(ctx context.Context, mv models.Movement) (models.Wallet, error)
	Debit(ctx context.Context, mv models.Movement) (models.Wallet, error)
	History(ctx context.Context, userID int64, limit int) ([]models.WalletEntry, error)
	SetBalance(ctx context.Context, operatorID, userID int64, req models.SetBalanceRequest) (models.Wallet, error)
}

type walletService struct {
	repo    repository.WalletRepository
	emitter realtime.Emitter
}

func NewWalletService(repo repository.WalletRepository, emitter realtime.Emitter) WalletService {
	return &walletService{repo: repo, emitter: emitter}
}

func (s *walletService) GetBalance(ctx context.Context, userID int64) (decimal.Decimal, error) {
	return s.repo.GetBalance(ctx, userID)
}

func (s *walletService) Credit(ctx context.Context, mv models.Movement) (models.Wallet, error) {
	if err := validateAmount(mv.Amount); err != nil {
		return models.Wallet{}, err
	}
	w, err := s.repo.Credit(ctx, mv)
	if err != nil {
		return models.Wallet{}, err
	}
	emitBalance(ctx, s.emitter, w)
	return w, nil
}

func (s *walletService) Debit(ctx context.Context, mv models.Movement) (models.Wallet, error) {
	if err := validateAmount(mv.Amount); err != nil {
		return models.Wallet{}, err
	}
	w, err := s.repo.Debit(ctx, mv)
	if err != nil {
		return models.Wallet{}, err
	}
	emitBalance(ctx, s.emitter, w)
	return w, nil
}

func (s *walletService) History(ctx context.Context, userID int64, limit int) ([]models.WalletEntry, error) {
	return s.repo.History(ctx, userID, limit)
}

// SetBalance is the operator override. It is logged with the operator id and
// lands in the wallet history as a manual-override entry.
func (s *walletService) SetBalance(ctx context.Context, operatorID, userID int64, req models.SetBalanceRequest) (models.Wallet, error) {
	if err := utils.ValidateVar("amount", req.Amount, "nonnegative,cents,balancecap"); err != nil {
		return models.Wallet{}, err
	}

	note := strings.TrimSpace(req.Note)
	description := fmt.Sprintf("Balance set by operator %d", operatorID)
	if note != "" {
		description += ": " + note
	}

	w, err := s.repo.SetBalance(ctx, userID, req.Amount, description)
	if err != nil {
		return models.Wallet{}, err
	}

	logger.Log.Info("manual balance override",
		zap.Int64("operator_id", operatorID),
		zap.Int64("user_id", userID),
		zap.String("balance", w.Balance.String()),
		zap.String("note", note),
	)
	emitBalance(ctx, s.emitter, w)
	return w, nil
}
