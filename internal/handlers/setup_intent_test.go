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

func TestCreateSetupIntentHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockSetupIntentCreator(ctrl)
	svc.EXPECT().CreateSetupIntent(gomock.Any(), "user_1").Return("seti_1_secret_x", nil)

	rr := httptest.NewRecorder()
	NewCreateSetupIntentHandler(svc).ServeHTTP(rr, withUser(httptest.NewRequest(http.MethodPost, "/api/v1/payments/setup-intent", nil), "user_1"))

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp SetupIntentResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "seti_1_secret_x", resp.ClientSecret)
}

func TestCreateSetupIntentHandler_Upstream(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockSetupIntentCreator(ctrl)
	svc.EXPECT().CreateSetupIntent(gomock.Any(), "user_1").
		Return("", fmt.Errorf("create setup intent: %w", models.ErrUpstream))

	rr := httptest.NewRecorder()
	NewCreateSetupIntentHandler(svc).ServeHTTP(rr, withUser(httptest.NewRequest(http.MethodPost, "/api/v1/payments/setup-intent", nil), "user_1"))

	assert.Equal(t, http.StatusBadGateway, rr.Code)
}
