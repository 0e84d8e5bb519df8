package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/stripe-ledger/internal/logger"
	"github.com/sbilibin2017/stripe-ledger/internal/middlewares"
	"github.com/sbilibin2017/stripe-ledger/internal/models"
)

// ErrorResponse is the body of every failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: bad request
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// statusFor maps an error kind to its HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrBadRequest),
		errors.Is(err, models.ErrInsufficientFunds),
		errors.Is(err, models.ErrSignatureInvalid):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, models.ErrUpstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// writeError writes err as an ErrorResponse. Server side failures get a generic message.
func writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)

	msg := err.Error()
	switch status {
	case http.StatusInternalServerError:
		logger.Log.Errorw("request failed", "error", err)
		msg = "Internal server error"
	case http.StatusBadGateway:
		logger.Log.Errorw("payment provider request failed", "error", err)
		msg = "Payment provider unavailable"
	default:
		logger.Log.Warnw("request rejected", "status", status, "error", err)
	}

	writeJSON(w, status, ErrorResponse{Error: msg})
}

// userFromRequest returns the authenticated user id or writes 401.
func userFromRequest(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := middlewares.UserIDFromContext(r.Context())
	if !ok {
		logger.Log.Error("request reached a protected handler without a user")
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return "", false
	}
	return userID, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		logger.Log.Warnw("failed to decode request body", "error", err)
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return false
	}
	return true
}
