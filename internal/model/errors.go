package model

import "github.com/pkg/errors"

// Error kinds returned by the ledger core. Every operation fails with
// exactly one of these; callers match with errors.Is.
var (
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrMissingFields       = errors.New("missing required fields")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrNoBalance           = errors.New("no balance to withdraw")
	ErrNotFound            = errors.New("request not found")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrItemNotFound        = errors.New("item not found")
	ErrMissionNotFound     = errors.New("mission not found")
	ErrUnauthorized        = errors.New("unauthorized")
)
