package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Direction string

const (
	DirectionCredit Direction = "credit"
	DirectionDebit  Direction = "debit"
)

const (
	SourceDeposit        = "deposit"
	SourceDepositBonus   = "deposit-bonus"
	SourceWithdrawal     = "withdrawal"
	SourceReferral       = "referral"
	SourceManualOverride = "manual-override"
)

// Amounts are stored as NUMERIC(20, 2). A single movement is capped well below
// the column limit so balances have room to grow.
var (
	MaxAmount  = decimal.New(1, 12)
	MaxBalance = decimal.New(1, 18).Sub(decimal.New(1, -2))
)

type Wallet struct {
	UserID    int64           `json:"user_id" db:"user_id"`
	Balance   decimal.Decimal `json:"balance" db:"balance"`
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"`
}

type WalletEntry struct {
	ID           int64           `json:"id" db:"id"`
	UserID       int64           `json:"-" db:"user_id"`
	Direction    Direction       `json:"direction" db:"direction"`
	Amount       decimal.Decimal `json:"amount" db:"amount"`
	Description  string          `json:"description" db:"description"`
	Source       string          `json:"source" db:"source"`
	ReferenceID  *int64          `json:"reference_id,omitempty" db:"reference_id"`
	BalanceAfter decimal.Decimal `json:"balance_after" db:"balance_after"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
}

// Movement describes a single wallet mutation.
type Movement struct {
	UserID      int64
	Amount      decimal.Decimal
	Description string
	Source      string
	ReferenceID *int64
}

type Balance struct {
	Balance decimal.Decimal `json:"balance"`
}

type SetBalanceRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Note   string          `json:"note"`
}
