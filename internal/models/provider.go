package models

import "github.com/shopspring/decimal"

// Metadata keys attached to provider objects created by the ledger.
const (
	MetadataUserID = "user_id"
	MetadataType   = "type"
)

// ProviderPaymentIntent is the part of a provider payment intent the ledger reads.
type ProviderPaymentIntent struct {
	ID              string
	Status          string
	CustomerID      string
	Amount          decimal.Decimal
	Currency        string
	InvoiceID       string
	PaymentMethodID string
	Metadata        map[string]string
}

// ProviderInvoice is the part of a provider invoice the ledger reads.
type ProviderInvoice struct {
	ID             string
	CustomerID     string
	SubscriptionID string
	Status         string
	PDFURL         string
}

// ProviderSubscription is the part of a provider subscription the ledger reads.
type ProviderSubscription struct {
	ID         string
	CustomerID string
	PriceID    string
	Status     string
}

// ChargeRequest describes a one-off, synchronously confirmed charge.
type ChargeRequest struct {
	UserID          string
	CustomerID      string
	PaymentMethodID string
	Amount          decimal.Decimal
	Currency        string
}

// SubscriptionRequest describes a monthly subscription priced at Amount per period or per unit.
type SubscriptionRequest struct {
	UserID          string
	CustomerID      string
	PaymentMethodID string
	Amount          decimal.Decimal
	Currency        string
	Metered         bool
}

// ToMinorUnits converts an amount with at most two decimals to cents.
func ToMinorUnits(amount decimal.Decimal) int64 {
	return amount.Shift(2).IntPart()
}

// FromMinorUnits converts cents to a decimal amount.
func FromMinorUnits(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}
