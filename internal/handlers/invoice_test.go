package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/stripe-ledger/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoicePdfHandler(t *testing.T) {
	tests := []struct {
		name               string
		invoiceID          string
		setupMocks         func(m *MockInvoicePdfGetter)
		expectedStatusCode int
	}{
		{
			name:      "found",
			invoiceID: "in_1",
			setupMocks: func(m *MockInvoicePdfGetter) {
				m.EXPECT().RetrieveInvoicePdfURL(gomock.Any(), "user_1", "in_1").Return("https://files.example/in_1.pdf", nil)
			},
			expectedStatusCode: http.StatusOK,
		},
		{
			name:      "not found",
			invoiceID: "in_missing",
			setupMocks: func(m *MockInvoicePdfGetter) {
				m.EXPECT().RetrieveInvoicePdfURL(gomock.Any(), "user_1", "in_missing").
					Return("", fmt.Errorf("get invoice: %w", models.ErrNotFound))
			},
			expectedStatusCode: http.StatusNotFound,
		},
		{
			name:               "missing id",
			invoiceID:          "",
			setupMocks:         func(m *MockInvoicePdfGetter) {},
			expectedStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockInvoicePdfGetter(ctrl)
			tt.setupMocks(svc)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/payments/invoices/"+tt.invoiceID+"/pdf", nil)
			req = withURLParam(withUser(req, "user_1"), "invoiceID", tt.invoiceID)
			rr := httptest.NewRecorder()

			NewInvoicePdfHandler(svc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)
			if tt.expectedStatusCode == http.StatusOK {
				var resp InvoicePdfResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, "https://files.example/in_1.pdf", resp.InvoicePdfURL)
			}
		})
	}
}
