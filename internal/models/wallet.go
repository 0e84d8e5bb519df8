package models

import "github.com/shopspring/decimal"

// WalletDB represents a user_wallets row.
type WalletDB struct {
	ID        string          `json:"id" db:"id"`                 // Unique wallet identifier
	UserID    string          `json:"user_id" db:"user_id"`       // Identifier of the wallet's owner
	Balance   decimal.Decimal `json:"balance" db:"balance"`       // Current balance, never negative
	CreatedAt string          `json:"created_at" db:"created_at"` // ISO-8601 UTC
	UpdatedAt string          `json:"updated_at" db:"updated_at"` // ISO-8601 UTC
}
