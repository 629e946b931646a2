package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type WithdrawalMethod string

const (
	WithdrawINR  WithdrawalMethod = "INR"
	WithdrawUSDT WithdrawalMethod = "USDT"
)

type PaymentMethod string

const (
	PaymentBank   PaymentMethod = "bank"
	PaymentUPI    PaymentMethod = "upi"
	PaymentCrypto PaymentMethod = "crypto"
)

type Destination struct {
	AccountHolder string `json:"account_holder,omitempty" validate:"omitempty,max=128"`
	AccountNumber string `json:"account_number,omitempty" validate:"omitempty,bankaccount"`
	IFSC          string `json:"ifsc,omitempty" validate:"omitempty,ifsc"`
	BankName      string `json:"bank_name,omitempty" validate:"omitempty,max=128"`
	UPIID         string `json:"upi_id,omitempty" validate:"omitempty,upi"`
	Network       string `json:"network,omitempty" validate:"omitempty,oneof=TRC20 ERC20 BEP20 POLYGON"`
	CryptoAddress string `json:"crypto_address,omitempty" validate:"omitempty,cryptoaddr"`
}

type Withdrawal struct {
	ID              int64            `json:"id" db:"id"`
	UserID          int64            `json:"user_id" db:"user_id"`
	Amount          decimal.Decimal  `json:"amount" db:"amount"`
	Method          WithdrawalMethod `json:"method" db:"method"`
	PaymentMethod   PaymentMethod    `json:"payment_method" db:"payment_method"`
	Destination     Destination      `json:"destination" db:"destination"`
	Status          RequestStatus    `json:"status" db:"status"`
	ProcessedBy     *int64           `json:"processed_by,omitempty" db:"processed_by"`
	ProcessedAt     *time.Time       `json:"processed_at,omitempty" db:"processed_at"`
	RejectionReason *string          `json:"rejection_reason,omitempty" db:"rejection_reason"`
	Remarks         *string          `json:"remarks,omitempty" db:"remarks"`
	CreatedAt       time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at" db:"updated_at"`
}

type WithdrawalRequest struct {
	Amount        decimal.Decimal  `json:"amount" validate:"positive,cents,amountcap"`
	Method        WithdrawalMethod `json:"method" validate:"required,oneof=INR USDT"`
	PaymentMethod PaymentMethod    `json:"payment_method" validate:"required,oneof=bank upi crypto"`
	Destination   Destination      `json:"destination"`
}

// IsSell reports whether the request sells the stablecoin rather than withdrawing fiat.
func (r WithdrawalRequest) IsSell() bool {
	return r.Method == WithdrawUSDT
}

type WithdrawalApproval struct {
	WithdrawalID int64
	OperatorID   int64
	Remarks      *string
	Event        LedgerEvent
}
