package handlers

//go:generate mockgen -source=invoice.go -destination=invoice_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// InvoicePdfGetter defines the interface that the service must implement.
type InvoicePdfGetter interface {
	RetrieveInvoicePdfURL(ctx context.Context, userID, invoiceID string) (string, error)
}

// InvoicePdfResponse links to the hosted invoice document
// swagger:model InvoicePdfResponse
type InvoicePdfResponse struct {
	InvoicePdfURL string `json:"invoicePdfUrl"`
}

// NewInvoicePdfHandler returns an HTTP handler that resolves an invoice PDF link.
// @Summary Get invoice PDF link
// @Description Returns the PDF link of one of the caller's invoices
// @Tags payments
// @Produce json
// @Param invoiceID path string true "Stripe invoice id"
// @Success 200 {object} handlers.InvoicePdfResponse "Invoice PDF link"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Invoice or PDF not found"
// @Failure 502 {object} handlers.ErrorResponse "Payment provider unavailable"
// @Router /api/v1/payments/invoices/{invoiceID}/pdf [get]
// @Security BearerAuth
func NewInvoicePdfHandler(svc InvoicePdfGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userFromRequest(w, r)
		if !ok {
			return
		}

		invoiceID := chi.URLParam(r, "invoiceID")
		if invoiceID == "" {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invoice id is required"})
			return
		}

		url, err := svc.RetrieveInvoicePdfURL(r.Context(), userID, invoiceID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, InvoicePdfResponse{InvoicePdfURL: url})
	}
}
