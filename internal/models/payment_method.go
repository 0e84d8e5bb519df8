package models

// PaymentMethodDB represents a payment_methods row. Rows are soft-deleted.
type PaymentMethodDB struct {
	ID                      string  `json:"id" db:"id"`
	UserID                  string  `json:"user_id" db:"user_id"`
	ProviderPaymentMethodID string  `json:"provider_payment_method_id" db:"provider_payment_method_id"`
	Type                    string  `json:"type" db:"type"`
	Last4                   string  `json:"last4" db:"last4"`
	Brand                   string  `json:"brand" db:"brand"`
	ExpMonth                *int64  `json:"exp_month,omitempty" db:"exp_month"`
	ExpYear                 *int64  `json:"exp_year,omitempty" db:"exp_year"`
	CardholderName          *string `json:"cardholder_name,omitempty" db:"cardholder_name"`
	CreatedAt               string  `json:"created_at" db:"created_at"`
	DeletedAt               *string `json:"deleted_at,omitempty" db:"deleted_at"`
}

// PaymentMethodDetails is the input for linking a new payment method.
type PaymentMethodDetails struct {
	ProviderPaymentMethodID string
	Type                    string
	Last4                   string
	Brand                   string
	ExpMonth                *int64
	ExpYear                 *int64
	CardholderName          *string
}

// PaymentMethodFilter narrows a payment method listing. Empty fields match everything.
type PaymentMethodFilter struct {
	Type  string
	Brand string
}
