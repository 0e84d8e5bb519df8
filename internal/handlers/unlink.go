package handlers

//go:generate mockgen -source=unlink.go -destination=unlink_mock.go -package=handlers

import (
	"context"
	"net/http"
)

// PaymentMethodUnlinker defines the interface that the service must implement.
type PaymentMethodUnlinker interface {
	UnlinkPaymentMethod(ctx context.Context, userID, paymentMethodID string) error
}

// UnlinkRequest names the payment method to unlink
// swagger:model UnlinkRequest
type UnlinkRequest struct {
	// Local or Stripe payment method id
	// required: true
	PaymentMethodID string `json:"paymentMethodId"`
}

// UnlinkResponse confirms the payment method was unlinked
// swagger:model UnlinkResponse
type UnlinkResponse struct {
	Success bool `json:"success"`
}

// NewUnlinkPaymentMethodHandler returns an HTTP handler that unlinks a payment method.
// @Summary Unlink a payment method
// @Description Hides the payment method from the caller. Unlinking twice succeeds.
// @Tags payments
// @Accept json
// @Produce json
// @Param request body handlers.UnlinkRequest true "Unlink request"
// @Success 200 {object} handlers.UnlinkResponse "Payment method unlinked"
// @Failure 400 {object} handlers.ErrorResponse "Missing payment method id"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Unknown payment method"
// @Router /api/v1/payments/methods/unlink [post]
// @Security BearerAuth
func NewUnlinkPaymentMethodHandler(svc PaymentMethodUnlinker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userFromRequest(w, r)
		if !ok {
			return
		}

		var req UnlinkRequest
		if !decodeBody(w, r, &req) {
			return
		}

		if err := svc.UnlinkPaymentMethod(r.Context(), userID, req.PaymentMethodID); err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, UnlinkResponse{Success: true})
	}
}
