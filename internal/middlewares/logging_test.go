package middlewares

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/sbilibin2017/stripe-ledger/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggingMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		handlerStatus  int
		handlerBody    string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "OK response",
			handlerStatus:  http.StatusOK,
			handlerBody:    `{"balance":"0.00"}`,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"balance":"0.00"}`,
		},
		{
			name:           "Internal server error",
			handlerStatus:  http.StatusInternalServerError,
			handlerBody:    `{"error":"internal server error"}`,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seenID string
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seenID = RequestIDFromContext(r.Context())
				w.WriteHeader(tt.handlerStatus)
				_, _ = w.Write([]byte(tt.handlerBody))
			})

			handler := LoggingMiddleware(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/wallet/balance", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			bodyBytes, _ := io.ReadAll(rr.Body)
			assert.Equal(t, tt.expectedBody, string(bodyBytes))

			reqID := rr.Header().Get(RequestIDHeader)
			_, err := uuid.Parse(reqID)
			require.NoError(t, err)
			assert.Equal(t, reqID, seenID)
		})
	}
}

func TestLoggingMiddleware_KeepsIncomingRequestID(t *testing.T) {
	var seenID string
	handler := LoggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID = RequestIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodPost, "/webhook/stripe/v1/handle", nil)
	req.Header.Set(RequestIDHeader, "req-from-gateway")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, "req-from-gateway", rr.Header().Get(RequestIDHeader))
	assert.Equal(t, "req-from-gateway", seenID)
}

func TestLoggingMiddleware_RequestScopedLogger(t *testing.T) {
	originalLog := logger.Log
	defer func() { logger.Log = originalLog }()

	core, logs := observer.New(zapcore.InfoLevel)
	logger.Log = zap.New(core).Sugar()

	handler := LoggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromContext(r.Context()).Infow("inside handler")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/wallet/balance", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.TakeAll()
	require.Len(t, entries, 3)
	for _, e := range entries {
		assert.Equal(t, "req-42", e.ContextMap()["request_id"], e.Message)
	}
	assert.Equal(t, int64(http.StatusOK), entries[2].ContextMap()["status"])
}
