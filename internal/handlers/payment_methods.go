package handlers

//go:generate mockgen -source=payment_methods.go -destination=payment_methods_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/stripe-ledger/internal/models"
)

// PaymentMethodLister defines the interface that the service must implement.
type PaymentMethodLister interface {
	ListPaymentMethods(ctx context.Context, userID string, filter models.PaymentMethodFilter) ([]models.PaymentMethodDB, error)
}

// PaymentMethodResponse is one linked payment method
// swagger:model PaymentMethodResponse
type PaymentMethodResponse struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Last4    string `json:"last4"`
	Brand    string `json:"brand"`
	ExpMonth *int64 `json:"expMonth,omitempty"`
	ExpYear  *int64 `json:"expYear,omitempty"`
}

// NewListPaymentMethodsHandler returns an HTTP handler listing the caller's payment methods.
// @Summary List payment methods
// @Description Returns the caller's linked payment methods, oldest first. Unlinked methods are hidden.
// @Tags payments
// @Produce json
// @Param type query string false "Payment method type, e.g. card"
// @Param brand query string false "Card brand, e.g. visa"
// @Success 200 {array} handlers.PaymentMethodResponse "Payment methods"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/v1/payments/methods [get]
// @Security BearerAuth
func NewListPaymentMethodsHandler(svc PaymentMethodLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userFromRequest(w, r)
		if !ok {
			return
		}

		filter := models.PaymentMethodFilter{
			Type:  r.URL.Query().Get("type"),
			Brand: r.URL.Query().Get("brand"),
		}

		methods, err := svc.ListPaymentMethods(r.Context(), userID, filter)
		if err != nil {
			writeError(w, err)
			return
		}

		resp := make([]PaymentMethodResponse, 0, len(methods))
		for _, m := range methods {
			resp = append(resp, PaymentMethodResponse{
				ID:       m.ID,
				Type:     m.Type,
				Last4:    m.Last4,
				Brand:    m.Brand,
				ExpMonth: m.ExpMonth,
				ExpYear:  m.ExpYear,
			})
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
