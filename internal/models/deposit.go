package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type RequestStatus string

const (
	StatusPending  RequestStatus = "pending"
	StatusApproved RequestStatus = "approved"
	StatusRejected RequestStatus = "rejected"
)

func (s RequestStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

type DepositMethod string

const (
	DepositUPI           DepositMethod = "UPI"
	DepositCrypto        DepositMethod = "Crypto"
	DepositBuyStablecoin DepositMethod = "BuyStablecoin"
)

type DepositPayload struct {
	TransactionRef string `json:"transaction_ref,omitempty" validate:"omitempty,max=128"`
	Network        string `json:"network,omitempty" validate:"omitempty,oneof=TRC20 ERC20 BEP20 POLYGON"`
	WalletAddress  string `json:"wallet_address,omitempty" validate:"omitempty,cryptoaddr"`
	ProofPath      string `json:"proof_path,omitempty" validate:"omitempty,max=512"`
}

type Deposit struct {
	ID                 int64           `json:"id" db:"id"`
	UserID             int64           `json:"user_id" db:"user_id"`
	Amount             decimal.Decimal `json:"amount" db:"amount"`
	Method             DepositMethod   `json:"method" db:"method"`
	Payload            DepositPayload  `json:"payload" db:"payload"`
	Status             RequestStatus   `json:"status" db:"status"`
	ProcessedBy        *int64          `json:"processed_by,omitempty" db:"processed_by"`
	ProcessedAt        *time.Time      `json:"processed_at,omitempty" db:"processed_at"`
	RejectionReason    *string         `json:"rejection_reason,omitempty" db:"rejection_reason"`
	Remarks            *string         `json:"remarks,omitempty" db:"remarks"`
	BonusAmount        decimal.Decimal `json:"bonus_amount" db:"bonus_amount"`
	BonusPercent       decimal.Decimal `json:"bonus_percent" db:"bonus_percent"`
	SettingsSnapshotID *int64          `json:"settings_snapshot_id,omitempty" db:"settings_snapshot_id"`
	CreatedAt          time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at" db:"updated_at"`
}

type DepositRequest struct {
	Amount  decimal.Decimal `json:"amount" validate:"positive,cents,amountcap"`
	Method  DepositMethod   `json:"method" validate:"required,oneof=UPI Crypto BuyStablecoin"`
	Payload DepositPayload  `json:"payload"`
}

// BonusAudit ties an approved deposit's bonus to the settings snapshot it was computed from.
type BonusAudit struct {
	DepositID    int64             `json:"deposit_id"`
	Status       RequestStatus     `json:"status"`
	Amount       decimal.Decimal   `json:"amount"`
	BonusAmount  decimal.Decimal   `json:"bonus_amount"`
	BonusPercent decimal.Decimal   `json:"bonus_percent"`
	Settings     *SettingsSnapshot `json:"settings,omitempty"`
}

// DepositApproval is the set of values written atomically when a deposit is approved.
type DepositApproval struct {
	DepositID          int64
	OperatorID         int64
	Remarks            *string
	Credit             bool
	BonusAmount        decimal.Decimal
	BonusPercent       decimal.Decimal
	SettingsSnapshotID *int64
	Event              LedgerEvent
}

type Rejection struct {
	ID         int64
	OperatorID int64
	Reason     string
	Event      LedgerEvent
}

type ReviewRequest struct {
	Remarks string `json:"remarks,omitempty"`
	Reason  string `json:"reason,omitempty"`
}
