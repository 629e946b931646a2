package models

import "time"

type Notification struct {
	ID           int64     `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	Message      string    `json:"message" db:"message"`
	TargetUserID *int64    `json:"target_user_id,omitempty" db:"target_user_id"`
	CreatedBy    *int64    `json:"created_by,omitempty" db:"created_by"`
	DedupeKey    *string   `json:"-" db:"dedupe_key"`
	Read         bool      `json:"read" db:"-"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

type NotificationRequest struct {
	TargetUserID *int64 `json:"target_user_id,omitempty"`
	Title        string `json:"title"`
	Message      string `json:"message"`
}
