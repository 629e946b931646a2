package models

import (
	"encoding/json"
	"strconv"
	"time"
)

type EventKind string

const (
	EventDepositApproved    EventKind = "deposit.approved"
	EventDepositRejected    EventKind = "deposit.rejected"
	EventWithdrawalApproved EventKind = "withdrawal.approved"
	EventWithdrawalRejected EventKind = "withdrawal.rejected"
)

// LedgerEvent is an outbox row written together with a state transition.
type LedgerEvent struct {
	ID          string          `db:"id"`
	Kind        EventKind       `db:"kind"`
	AggregateID int64           `db:"aggregate_id"`
	UserID      int64           `db:"user_id"`
	Payload     json.RawMessage `db:"payload"`
	Attempts    int             `db:"attempts"`
	LastError   *string         `db:"last_error"`
	CreatedAt   time.Time       `db:"created_at"`
	ProcessedAt *time.Time      `db:"processed_at"`
}

// DedupeKey identifies the notification produced by the event.
func (e LedgerEvent) DedupeKey() string {
	return string(e.Kind) + ":" + strconv.FormatInt(e.AggregateID, 10)
}

// EventPayload is the JSON body stored with a ledger event.
type EventPayload struct {
	Amount      string `json:"amount"`
	BonusAmount string `json:"bonus_amount,omitempty"`
	Method      string `json:"method,omitempty"`
	Reason      string `json:"reason,omitempty"`
}
