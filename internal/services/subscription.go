package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/streamhive/streamhive-api/internal/logger"
	"github.com/streamhive/streamhive-api/internal/models"
)

// ChannelGetter checks that the channel side of a subscription exists.
type ChannelGetter interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// SubscriptionReader defines read operations for subscriptions.
type SubscriptionReader interface {
	Exists(ctx context.Context, subscriberID, channelID uuid.UUID) (bool, error)
}

// SubscriptionWriter defines write operations for subscriptions.
type SubscriptionWriter interface {
	Save(ctx context.Context, subscriberID, channelID uuid.UUID) (bool, error)
	Delete(ctx context.Context, subscriberID, channelID uuid.UUID) (bool, error)
}

// SubscriptionService handles the subscribe/unsubscribe toggle.
type SubscriptionService struct {
	reader   SubscriptionReader
	writer   SubscriptionWriter
	channels ChannelGetter
}

// NewSubscriptionService creates a new SubscriptionService.
func NewSubscriptionService(reader SubscriptionReader, writer SubscriptionWriter, channels ChannelGetter) *SubscriptionService {
	return &SubscriptionService{
		reader:   reader,
		writer:   writer,
		channels: channels,
	}
}

// Toggle flips the subscription between subscriber and channel and returns
// whether the subscription now holds. The subscriber in the request body must
// be the authenticated principal; subscribing on someone else's behalf is
// rejected.
func (svc *SubscriptionService) Toggle(ctx context.Context, principal uuid.UUID, subscriberID, channelID string) (bool, error) {
	subID, err := parseID(subscriberID, "subscriberId")
	if err != nil {
		return false, err
	}
	chanID, err := parseID(channelID, "channelId")
	if err != nil {
		return false, err
	}

	if subID != principal {
		return false, fmt.Errorf("%w: cannot subscribe on behalf of another user", ErrForbidden)
	}
	if subID == chanID {
		return false, validationError("cannot subscribe to your own channel")
	}

	channel, err := svc.channels.GetByID(ctx, chanID)
	if err != nil {
		logger.Log.Errorw("failed to get channel", "channel_id", chanID, "err", err)
		return false, err
	}
	if channel == nil {
		return false, notFoundError("channel")
	}

	exists, err := svc.reader.Exists(ctx, subID, chanID)
	if err != nil {
		logger.Log.Errorw("failed to check subscription", "channel_id", chanID, "err", err)
		return false, err
	}

	if exists {
		if _, err := svc.writer.Delete(ctx, subID, chanID); err != nil {
			logger.Log.Errorw("failed to remove subscription", "channel_id", chanID, "err", err)
			return false, err
		}
		return false, nil
	}

	if _, err := svc.writer.Save(ctx, subID, chanID); err != nil {
		logger.Log.Errorw("failed to save subscription", "channel_id", chanID, "err", err)
		return false, err
	}
	return true, nil
}
