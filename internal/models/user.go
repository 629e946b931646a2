package models

import "time"

type User struct {
	ID           int64     `json:"id" db:"id"`
	Login        string    `json:"login" db:"login"`
	Password     string    `json:"password,omitempty" db:"password_hash"`
	Role         Role      `json:"role" db:"role"`
	ReferralCode string    `json:"referral_code" db:"referral_code"`
	ReferredBy   *string   `json:"referred_by,omitempty" db:"referred_by"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
