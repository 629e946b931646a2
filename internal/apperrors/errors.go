package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRequest     = errors.New("invalid request")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInternalServer     = errors.New("internal server error")
	ErrInvalidCredentials = errors.New("invalid login or password")

	ErrValidation        = errors.New("validation failed")
	ErrNotFound          = errors.New("not found")
	ErrInvalidState      = errors.New("invalid state transition")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("forbidden")
	ErrSellRestricted    = fmt.Errorf("restricted: %w", ErrForbidden)

	ErrDepositNotFound      = fmt.Errorf("deposit %w", ErrNotFound)
	ErrWithdrawalNotFound   = fmt.Errorf("withdrawal %w", ErrNotFound)
	ErrNotificationNotFound = fmt.Errorf("notification %w", ErrNotFound)
	ErrRestrictionNotFound  = fmt.Errorf("restriction %w", ErrNotFound)
	ErrSettingsNotFound     = fmt.Errorf("settings %w", ErrNotFound)
	ErrRewardNotFound       = fmt.Errorf("referral reward %w", ErrNotFound)

	// ErrAlreadyApplied is returned by idempotent writes that found their key already present.
	ErrAlreadyApplied = errors.New("already applied")
)

// ValidationError describes a rejected input field. Its message is safe to show to the caller.
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return e.Field + ": " + e.Reason
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// StateError is returned when a transition is attempted on a record that is no longer pending.
type StateError struct {
	Entity  string
	ID      int64
	Current string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("%s %d is already %s", e.Entity, e.ID, e.Current)
}

func (e *StateError) Unwrap() error { return ErrInvalidState }

// RestrictionError carries the operator supplied message of an active restriction.
type RestrictionError struct {
	Message    string
	RedirectTo string
}

func (e *RestrictionError) Error() string {
	return "restricted: " + e.Message
}

func (e *RestrictionError) Unwrap() error { return ErrSellRestricted }
