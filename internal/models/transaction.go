package models

// Ledger operations published to the transaction topic.
const (
	OperationCredit = "wallet.credit"
	OperationDebit  = "wallet.debit"
)

// Transaction is a balance change event, published after the change is committed.
type Transaction struct {
	TransactionID string `json:"transaction_id"` // Unique identifier for the event.
	Timestamp     int64  `json:"timestamp"`      // Unix timestamp (seconds) of the change.
	Amount        string `json:"amount"`         // Decimal amount, e.g. "50.00".
	Balance       string `json:"balance"`        // Balance after the change.
	UserID        string `json:"user_id"`        // Wallet owner.
	Operation     string `json:"operation"`      // wallet.credit or wallet.debit.
}
