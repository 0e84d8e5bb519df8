package models

// UserDB represents the subset of the users table the ledger reads.
type UserDB struct {
	ID               string  `json:"id" db:"id"`                                 // Primary key
	Email            *string `json:"email" db:"email"`                           // User email
	Name             *string `json:"name" db:"name"`                             // Display name
	StripeCustomerID *string `json:"stripe_customer_id" db:"stripe_customer_id"` // Provider customer id, set once
	CreatedAt        string  `json:"created_at" db:"created_at"`                 // ISO-8601 UTC
	UpdatedAt        string  `json:"updated_at" db:"updated_at"`                 // ISO-8601 UTC
}
