package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/stripe-ledger/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestUnlinkPaymentMethodHandler(t *testing.T) {
	tests := []struct {
		name               string
		body               string
		setupMocks         func(m *MockPaymentMethodUnlinker)
		expectedStatusCode int
		expectedBody       string
	}{
		{
			name: "unlinked",
			body: `{"paymentMethodId":"pm_local"}`,
			setupMocks: func(m *MockPaymentMethodUnlinker) {
				m.EXPECT().UnlinkPaymentMethod(gomock.Any(), "user_1", "pm_local").Return(nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedBody:       `{"success":true}`,
		},
		{
			name: "unknown method",
			body: `{"paymentMethodId":"pm_other"}`,
			setupMocks: func(m *MockPaymentMethodUnlinker) {
				m.EXPECT().UnlinkPaymentMethod(gomock.Any(), "user_1", "pm_other").
					Return(fmt.Errorf("payment method: %w", models.ErrNotFound))
			},
			expectedStatusCode: http.StatusNotFound,
			expectedBody:       `{"error":"payment method: not found"}`,
		},
		{
			name:               "invalid body",
			body:               `[`,
			setupMocks:         func(m *MockPaymentMethodUnlinker) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedBody:       `{"error":"Invalid request body"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockPaymentMethodUnlinker(ctrl)
			tt.setupMocks(svc)

			req := withUser(httptest.NewRequest(http.MethodPost, "/api/v1/payments/methods/unlink", strings.NewReader(tt.body)), "user_1")
			rr := httptest.NewRecorder()

			NewUnlinkPaymentMethodHandler(svc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
