package handlers

//go:generate mockgen -source=charge.go -destination=charge_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/stripe-ledger/internal/models"
	"github.com/shopspring/decimal"
)

// Charger defines the interface that the service must implement.
type Charger interface {
	Charge(ctx context.Context, userID string, amount decimal.Decimal, paymentMethodID string) (*models.ChargeResult, error)
}

// ChargeRequest represents the JSON body for a wallet top-up
// swagger:model ChargeRequest
type ChargeRequest struct {
	// Amount to charge, at most two decimals
	// required: true
	// default: 50.00
	Amount decimal.Decimal `json:"amount" swaggertype:"string"`

	// Linked payment method, local or Stripe id
	// required: true
	PaymentMethodID string `json:"paymentMethodId"`
}

// NewChargeHandler returns an HTTP handler that tops up the wallet with a card payment.
// @Summary Top up the wallet
// @Description Charges a linked card synchronously. A succeeded payment is invoiced and credited to the wallet exactly once.
// @Tags payments
// @Accept json
// @Produce json
// @Param request body handlers.ChargeRequest true "Charge request"
// @Success 200 {object} models.ChargeResult "Charge outcome"
// @Failure 400 {object} handlers.ErrorResponse "Invalid amount or payment method"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 502 {object} handlers.ErrorResponse "Payment provider unavailable"
// @Router /api/v1/payments/charge [post]
// @Security BearerAuth
func NewChargeHandler(svc Charger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userFromRequest(w, r)
		if !ok {
			return
		}

		var req ChargeRequest
		if !decodeBody(w, r, &req) {
			return
		}

		res, err := svc.Charge(r.Context(), userID, req.Amount, req.PaymentMethodID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, res)
	}
}
