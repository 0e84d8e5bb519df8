package handlers

//go:generate mockgen -source=subscription.go -destination=subscription_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/stripe-ledger/internal/models"
	"github.com/shopspring/decimal"
)

// SubscriptionCreator defines the interface that the service must implement.
type SubscriptionCreator interface {
	CreateSubscription(ctx context.Context, userID string, amount decimal.Decimal, paymentMethodID string, metered bool) (*models.SubscriptionDB, error)
}

// SubscriptionRequest represents the JSON body for a new subscription
// swagger:model SubscriptionRequest
type SubscriptionRequest struct {
	// Monthly price, or price per unit when metered
	// required: true
	// default: 9.99
	Amount decimal.Decimal `json:"amount" swaggertype:"string"`

	// Payment method charged for every period
	// required: true
	PaymentMethodID string `json:"paymentMethodId"`

	// Bill by reported usage instead of a fixed price
	Metered bool `json:"metered"`
}

// SubscriptionResponse identifies the created subscription
// swagger:model SubscriptionResponse
type SubscriptionResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// NewCreateSubscriptionHandler returns an HTTP handler that subscribes the caller to a monthly price.
// @Summary Create a subscription
// @Description Creates a monthly price for the amount and subscribes the caller to it
// @Tags payments
// @Accept json
// @Produce json
// @Param request body handlers.SubscriptionRequest true "Subscription request"
// @Success 200 {object} handlers.SubscriptionResponse "Subscription created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid amount or payment method"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 502 {object} handlers.ErrorResponse "Payment provider unavailable"
// @Router /api/v1/payments/subscriptions [post]
// @Security BearerAuth
func NewCreateSubscriptionHandler(svc SubscriptionCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userFromRequest(w, r)
		if !ok {
			return
		}

		var req SubscriptionRequest
		if !decodeBody(w, r, &req) {
			return
		}

		sub, err := svc.CreateSubscription(r.Context(), userID, req.Amount, req.PaymentMethodID, req.Metered)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, SubscriptionResponse{ID: sub.ProviderSubscriptionID, Status: sub.Status})
	}
}
