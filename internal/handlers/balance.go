package handlers

//go:generate mockgen -source=balance.go -destination=balance_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"
)

// BalanceGetter defines the interface that the service must implement.
type BalanceGetter interface {
	GetBalance(ctx context.Context, userID string) (decimal.Decimal, error)
}

// BalanceResponse represents the caller's wallet balance
// swagger:model BalanceResponse
type BalanceResponse struct {
	// Balance with two decimals
	// default: 0.00
	Balance string `json:"balance"`
}

// NewGetBalanceHandler returns an HTTP handler for fetching the wallet balance.
// @Summary Get wallet balance
// @Description Returns the balance of the caller's wallet, creating an empty wallet on first use
// @Tags wallet
// @Produce json
// @Success 200 {object} handlers.BalanceResponse "Wallet balance"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/v1/wallet/balance [get]
// @Security BearerAuth
func NewGetBalanceHandler(svc BalanceGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userFromRequest(w, r)
		if !ok {
			return
		}

		balance, err := svc.GetBalance(r.Context(), userID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, BalanceResponse{Balance: balance.StringFixed(2)})
	}
}
