package models

import "github.com/shopspring/decimal"

// Payment types.
const (
	PaymentTypeTopUp        = "top-up"
	PaymentTypeSubscription = "subscription"
)

// PaymentStatusSucceeded is the provider status that credits a top-up.
const PaymentStatusSucceeded = "succeeded"

// PaymentDB represents a payments row. Only Status changes after insert.
type PaymentDB struct {
	ID                string          `json:"id" db:"id"`
	UserID            string          `json:"user_id" db:"user_id"`
	Amount            decimal.Decimal `json:"amount" db:"amount"`
	ProviderPaymentID string          `json:"provider_payment_id" db:"provider_payment_id"`
	InvoiceID         *string         `json:"invoice_id,omitempty" db:"invoice_id"`
	PaymentMethodID   *string         `json:"payment_method_id,omitempty" db:"payment_method_id"`
	Type              string          `json:"type" db:"type"`
	Status            string          `json:"status" db:"status"`
	CreatedAt         string          `json:"created_at" db:"created_at"`
}

// PaymentHistoryItem is a payment enriched with the linked payment method brand.
type PaymentHistoryItem struct {
	ID                string          `json:"id" db:"id"`
	Amount            decimal.Decimal `json:"amount" db:"amount"`
	ProviderPaymentID string          `json:"provider_payment_id" db:"provider_payment_id"`
	InvoiceID         *string         `json:"invoice_id,omitempty" db:"invoice_id"`
	Type              string          `json:"type" db:"type"`
	Status            string          `json:"status" db:"status"`
	Brand             *string         `json:"brand,omitempty" db:"brand"`
	CreatedAt         string          `json:"created_at" db:"created_at"`
}

// PaymentHistory is one page of a user's payment history.
type PaymentHistory struct {
	Items []PaymentHistoryItem `json:"data"`
	Total int64                `json:"total"`
}

// ChargeResult is the outcome of a synchronous top-up charge.
type ChargeResult struct {
	Success   bool   `json:"success"`
	PaymentID string `json:"paymentId"`
	Status    string `json:"status"`
	InvoiceID string `json:"invoiceId,omitempty"`
}
