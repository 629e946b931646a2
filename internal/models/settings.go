package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SettingsSnapshot is an immutable version of the exchange configuration.
// ID is nil for the built-in defaults used before any operator has saved settings.
type SettingsSnapshot struct {
	ID              *int64          `json:"id,omitempty" db:"id"`
	USDTBuyRate     decimal.Decimal `json:"usdt_buy_rate" db:"usdt_buy_rate"`
	USDTSellRate    decimal.Decimal `json:"usdt_sell_rate" db:"usdt_sell_rate"`
	ReferencePrice  decimal.Decimal `json:"reference_price" db:"reference_price"`
	INRBonusPercent decimal.Decimal `json:"inr_bonus_percent" db:"inr_bonus_percent"`
	MinDeposit      decimal.Decimal `json:"min_deposit" db:"min_deposit"`
	MinWithdrawal   decimal.Decimal `json:"min_withdrawal" db:"min_withdrawal"`
	MaxWithdrawal   decimal.Decimal `json:"max_withdrawal" db:"max_withdrawal"`
	CreatedBy       *int64          `json:"created_by,omitempty" db:"created_by"`
	CreatedAt       time.Time       `json:"created_at" db:"created_at"`
}

type SettingsPatch struct {
	USDTBuyRate     *decimal.Decimal `json:"usdt_buy_rate,omitempty" validate:"omitempty,nonnegative,cents,amountcap"`
	USDTSellRate    *decimal.Decimal `json:"usdt_sell_rate,omitempty" validate:"omitempty,nonnegative,cents,amountcap"`
	INRBonusPercent *decimal.Decimal `json:"inr_bonus_percent,omitempty" validate:"omitempty,nonnegative,cents,percent"`
	MinDeposit      *decimal.Decimal `json:"min_deposit,omitempty" validate:"omitempty,nonnegative,cents,amountcap"`
	MinWithdrawal   *decimal.Decimal `json:"min_withdrawal,omitempty" validate:"omitempty,nonnegative,cents,amountcap"`
	MaxWithdrawal   *decimal.Decimal `json:"max_withdrawal,omitempty" validate:"omitempty,nonnegative,cents,amountcap"`
}

type ReferralReward struct {
	ID        int64           `json:"id" db:"id"`
	Amount    decimal.Decimal `json:"amount" db:"amount"`
	CreatedBy int64           `json:"created_by" db:"created_by"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
}

type ReferralPayout struct {
	DepositID  int64           `db:"deposit_id"`
	ReferrerID int64           `db:"referrer_id"`
	RefereeID  int64           `db:"referee_id"`
	Amount     decimal.Decimal `db:"amount"`
}
