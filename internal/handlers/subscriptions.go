package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/streamhive/streamhive-api/internal/services"
)

// SubscriptionToggler defines the interface that the service must implement.
type SubscriptionToggler interface {
	Toggle(ctx context.Context, principal uuid.UUID, subscriberID, channelID string) (bool, error)
}

// SubscriptionRequest represents the JSON body for the subscription toggle
// swagger:model SubscriptionRequest
type SubscriptionRequest struct {
	SubscriberID string `json:"subscriberId"`
	ChannelID    string `json:"channelId"`
}

// SubscriptionResult is the data block of the subscription toggle.
type SubscriptionResult struct {
	IsSubscribed bool `json:"isSubscribed"`
}

// NewToggleSubscriptionHandler returns an HTTP handler for the subscription
// toggle.
// @Summary Toggle a subscription
// @Description Flips the subscription between subscriber and channel. The subscriber in the body must be the caller.
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param subscriptionRequest body handlers.SubscriptionRequest true "Subscriber and channel"
// @Success 200 {object} models.APIResponse "New subscription state"
// @Failure 403 {object} models.APIErrorResponse "Subscriber is not the caller"
// @Failure 404 {object} models.APIErrorResponse "Channel not found"
// @Router /subscriptions [post]
// @Security BearerAuth
func NewToggleSubscriptionHandler(svc SubscriptionToggler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := principal(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		var req SubscriptionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, services.ErrValidation)
			return
		}

		subscribed, err := svc.Toggle(r.Context(), userID, req.SubscriberID, req.ChannelID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeData(w, http.StatusOK, SubscriptionResult{IsSubscribed: subscribed}, "Subscription toggled successfully")
	}
}
