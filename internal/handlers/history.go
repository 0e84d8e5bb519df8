package handlers

//go:generate mockgen -source=history.go -destination=history_mock.go -package=handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/sbilibin2017/stripe-ledger/internal/logger"
	"github.com/sbilibin2017/stripe-ledger/internal/models"
	"github.com/sbilibin2017/stripe-ledger/internal/services"
)

// PaymentHistoryGetter defines the interface that the service must implement.
type PaymentHistoryGetter interface {
	GetPaymentHistory(ctx context.Context, userID string, page, limit int) (*models.PaymentHistory, error)
}

// NewPaymentHistoryHandler returns an HTTP handler for the caller's payment history.
// @Summary Get payment history
// @Description Returns one page of the caller's payments, newest first, with the card brand when known
// @Tags payments
// @Produce json
// @Param page query int false "Page number, starting at 1" default(1)
// @Param limit query int false "Page size, at most 100" default(10)
// @Success 200 {object} models.PaymentHistory "Payment history page"
// @Failure 400 {object} handlers.ErrorResponse "Invalid paging"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/v1/payments/history [get]
// @Security BearerAuth
func NewPaymentHistoryHandler(svc PaymentHistoryGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userFromRequest(w, r)
		if !ok {
			return
		}

		page, ok := queryInt(w, r, "page", 1)
		if !ok {
			return
		}
		limit, ok := queryInt(w, r, "limit", services.DefaultHistoryLimit)
		if !ok {
			return
		}

		history, err := svc.GetPaymentHistory(r.Context(), userID, page, limit)
		if err != nil {
			writeError(w, err)
			return
		}
		if history.Items == nil {
			history.Items = []models.PaymentHistoryItem{}
		}

		writeJSON(w, http.StatusOK, history)
	}
}

func queryInt(w http.ResponseWriter, r *http.Request, key string, def int) (int, bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		logger.Log.Warnw("invalid query parameter", "key", key, "value", raw)
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid " + key})
		return 0, false
	}
	return v, true
}
