package models

import "errors"

// Error kinds shared by the ledger components. Callers wrap them with context
// and match with errors.Is.
var (
	ErrBadRequest        = errors.New("bad request")
	ErrConflict          = errors.New("conflict")
	ErrNotFound          = errors.New("not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrUpstream          = errors.New("payment provider failure")
	ErrSignatureInvalid  = errors.New("webhook signature verification failed")
)
