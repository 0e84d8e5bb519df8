package models

// Subscription statuses the provider reports. The ledger stores whatever the
// provider sends; these are the ones it writes itself.
const (
	SubscriptionStatusIncomplete = "incomplete"
	SubscriptionStatusActive     = "active"
	SubscriptionStatusPastDue    = "past_due"
	SubscriptionStatusCanceled   = "canceled"
)

// SubscriptionDB represents a subscriptions row. Rows are never deleted.
type SubscriptionDB struct {
	ID                     string `json:"id" db:"id"`
	UserID                 string `json:"user_id" db:"user_id"`
	ProviderSubscriptionID string `json:"provider_subscription_id" db:"provider_subscription_id"`
	PriceID                string `json:"price_id" db:"price_id"`
	Status                 string `json:"status" db:"status"`
	CreatedAt              string `json:"created_at" db:"created_at"`
}
