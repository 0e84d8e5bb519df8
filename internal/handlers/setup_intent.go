package handlers

//go:generate mockgen -source=setup_intent.go -destination=setup_intent_mock.go -package=handlers

import (
	"context"
	"net/http"
)

// SetupIntentCreator defines the interface that the service must implement.
type SetupIntentCreator interface {
	CreateSetupIntent(ctx context.Context, userID string) (string, error)
}

// SetupIntentResponse carries the secret the client uses to confirm the setup intent
// swagger:model SetupIntentResponse
type SetupIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// NewCreateSetupIntentHandler returns an HTTP handler that starts linking a card.
// @Summary Create a setup intent
// @Description Creates the caller's Stripe customer on first use and returns a setup intent client secret
// @Tags payments
// @Produce json
// @Success 200 {object} handlers.SetupIntentResponse "Setup intent created"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Unknown user"
// @Failure 502 {object} handlers.ErrorResponse "Payment provider unavailable"
// @Router /api/v1/payments/setup-intent [post]
// @Security BearerAuth
func NewCreateSetupIntentHandler(svc SetupIntentCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userFromRequest(w, r)
		if !ok {
			return
		}

		secret, err := svc.CreateSetupIntent(r.Context(), userID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, SetupIntentResponse{ClientSecret: secret})
	}
}
