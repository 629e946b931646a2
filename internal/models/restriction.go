package models

import "time"

type RestrictionType string

const (
	RestrictSell     RestrictionType = "sell"
	RestrictWithdraw RestrictionType = "withdraw"
	RestrictDeposit  RestrictionType = "deposit"
)

func (t RestrictionType) Valid() bool {
	switch t {
	case RestrictSell, RestrictWithdraw, RestrictDeposit:
		return true
	}
	return false
}

type SellRestriction struct {
	ID         int64           `json:"id" db:"id"`
	UserID     int64           `json:"user_id" db:"user_id"`
	Type       RestrictionType `json:"type" db:"type"`
	Active     bool            `json:"active" db:"active"`
	Message    string          `json:"message" db:"message"`
	RedirectTo string          `json:"redirect_to" db:"redirect_to"`
	CreatedBy  int64           `json:"created_by" db:"created_by"`
	CreatedAt  time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at" db:"updated_at"`
}

type RestrictionRequest struct {
	UserID     int64           `json:"user_id"`
	Type       RestrictionType `json:"type"`
	Active     *bool           `json:"active,omitempty"`
	Message    string          `json:"message"`
	RedirectTo string          `json:"redirect_to"`
}

type RestrictionStatus struct {
	Restricted bool   `json:"restricted"`
	Message    string `json:"message,omitempty"`
	RedirectTo string `json:"redirect_to,omitempty"`
}
