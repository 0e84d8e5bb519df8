package handlers

//go:generate mockgen -source=webhook.go -destination=webhook_mock.go -package=handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/sbilibin2017/stripe-ledger/internal/logger"
	"github.com/sbilibin2017/stripe-ledger/internal/models"
	"github.com/sbilibin2017/stripe-ledger/internal/services"
)

// MaxWebhookBodyBytes caps the size of a webhook delivery.
const MaxWebhookBodyBytes = 1 << 20

// WebhookProcessor verifies and processes provider events.
type WebhookProcessor interface {
	Handle(ctx context.Context, payload []byte, sigHeader string) (services.Outcome, error)
}

// WebhookResponse acknowledges a delivery
// swagger:model WebhookResponse
type WebhookResponse struct {
	// Always true on success
	Received bool `json:"received"`
}

// NewStripeWebhookHandler returns an HTTP handler for Stripe event deliveries.
// @Summary Receive Stripe events
// @Description Verifies the Stripe-Signature header over the raw body and reconciles payments, payment methods and subscriptions. Duplicate and unknown events are acknowledged.
// @Tags webhook
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Stripe signature header"
// @Success 200 {object} handlers.WebhookResponse "Event accepted"
// @Failure 400 {object} handlers.ErrorResponse "Invalid signature"
// @Failure 413 {object} handlers.ErrorResponse "Payload too large"
// @Failure 500 {object} handlers.ErrorResponse "Processing failed, Stripe retries"
// @Router /webhook/stripe/v1/handle [post]
func NewStripeWebhookHandler(processor WebhookProcessor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxWebhookBodyBytes))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				logger.Log.Warnw("webhook body too large", "limit", tooLarge.Limit)
				writeJSON(w, http.StatusRequestEntityTooLarge, ErrorResponse{Error: "Payload too large"})
				return
			}
			logger.Log.Errorw("failed to read webhook body", "error", err)
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		outcome, err := processor.Handle(r.Context(), payload, r.Header.Get("Stripe-Signature"))
		if errors.Is(err, models.ErrSignatureInvalid) {
			writeError(w, err)
			return
		}
		if err != nil {
			// Any other failure is ours; Stripe retries on 500.
			logger.Log.Errorw("webhook processing failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
			return
		}

		logger.Log.Debugw("webhook delivery acknowledged", "outcome", outcome)
		writeJSON(w, http.StatusOK, WebhookResponse{Received: true})
	}
}
