package models

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionDB maps a row of the subscriptions table. The channel is a
// user acting as a channel; (channel_id, subscriber_id) is unique.
type SubscriptionDB struct {
	SubscriptionID uuid.UUID `db:"subscription_id"`
	SubscriberID   uuid.UUID `db:"subscriber_id"`
	ChannelID      uuid.UUID `db:"channel_id"`
	CreatedAt      time.Time `db:"created_at"`
}
