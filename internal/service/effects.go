package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/a2sh3r/stablex/internal/logger"
	"github.com/a2sh3r/stablex/internal/models"
	"github.com/a2sh3r/stablex/internal/repository"
	"go.uber.org/zap"
)

// EffectProcessor runs the side effects of a committed ledger event and records the outcome.
type EffectProcessor interface {
	Process(ctx context.Context, ev models.LedgerEvent) error
}

type effectProcessor struct {
	events        repository.EventRepository
	referrals     ReferralService
	notifications NotificationService
}

func NewEffectProcessor(events repository.EventRepository, referrals ReferralService, notifications NotificationService) EffectProcessor {
	return &effectProcessor{events: events, referrals: referrals, notifications: notifications}
}

func (p *effectProcessor) Process(ctx context.Context, ev models.LedgerEvent) error {
	log := logger.Log.With(zap.String("event_id", ev.ID), zap.String("kind", string(ev.Kind)), zap.Int64("aggregate_id", ev.AggregateID))

	if err := p.run(ctx, ev); err != nil {
		log.Error("ledger event effects failed", zap.Int("attempts", ev.Attempts+1), zap.Error(err))
		if markErr := p.events.MarkFailed(ctx, ev.ID, err.Error()); markErr != nil {
			log.Error("failed to record event failure", zap.Error(markErr))
		}
		return err
	}

	if err := p.events.MarkProcessed(ctx, ev.ID); err != nil {
		log.Error("failed to mark event processed", zap.Error(err))
		return err
	}
	return nil
}

func (p *effectProcessor) run(ctx context.Context, ev models.LedgerEvent) error {
	var payload models.EventPayload
	if len(ev.Payload) > 0 {
		if err := json.Unmarshal(ev.Payload, &payload); err != nil {
			return fmt.Errorf("decode event payload: %w", err)
		}
	}

	target := ev.UserID
	params := NotifyParams{Target: &target, DedupeKey: ev.DedupeKey()}

	switch ev.Kind {
	case models.EventDepositApproved:
		if err := p.referrals.PayForDeposit(ctx, ev.AggregateID, ev.UserID); err != nil {
			return err
		}
		params.Title = "Deposit approved"
		params.Message = fmt.Sprintf("Your deposit #%d of %s has been approved.", ev.AggregateID, payload.Amount)
		if payload.BonusAmount != "" {
			params.Message += fmt.Sprintf(" Bonus credited: %s.", payload.BonusAmount)
		}
	case models.EventDepositRejected:
		params.Title = "Deposit rejected"
		params.Message = fmt.Sprintf("Your deposit #%d of %s was rejected: %s", ev.AggregateID, payload.Amount, payload.Reason)
	case models.EventWithdrawalApproved:
		params.Title = "Withdrawal approved"
		params.Message = fmt.Sprintf("Your withdrawal #%d of %s has been approved and is being paid out.", ev.AggregateID, payload.Amount)
	case models.EventWithdrawalRejected:
		params.Title = "Withdrawal rejected"
		params.Message = fmt.Sprintf("Your withdrawal #%d of %s was rejected: %s", ev.AggregateID, payload.Amount, payload.Reason)
	default:
		logger.Log.Warn("unknown ledger event kind", zap.String("event_id", ev.ID), zap.String("kind", string(ev.Kind)))
		return nil
	}

	return notifySafely(ctx, p.notifications, params)
}
