package service

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/a2sh3r/stablex/internal/logger"
	"github.com/a2sh3r/stablex/internal/models"
	"github.com/a2sh3r/stablex/internal/realtime"
	"github.com/a2sh3r/stablex/internal/utils"
	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func newEventID() string {
	return ulid.Make().String()
}

// validateAmount accepts positive amounts with at most two decimal places, up
// to models.MaxAmount.
func validateAmount(amount decimal.Decimal) error {
	return utils.ValidateVar("amount", amount, "positive,cents,amountcap")
}

func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func emitBalance(ctx context.Context, emitter realtime.Emitter, w models.Wallet) {
	if w.UserID == 0 {
		return
	}
	payload := models.Wallet{UserID: w.UserID, Balance: w.Balance, UpdatedAt: w.UpdatedAt}
	if err := emitter.Emit(ctx, realtime.UserRoom(w.UserID), realtime.EventBalanceChanged, payload); err != nil {
		logger.Log.Warn("failed to emit balance change", zap.Int64("user_id", w.UserID), zap.Error(err))
	}
}

func newLedgerEvent(kind models.EventKind, aggregateID, userID int64, payload models.EventPayload) (models.LedgerEvent, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return models.LedgerEvent{}, err
	}
	return models.LedgerEvent{
		ID:          newEventID(),
		Kind:        kind,
		AggregateID: aggregateID,
		UserID:      userID,
		Payload:     raw,
	}, nil
}
