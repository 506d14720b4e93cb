package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// SubscriptionReadRepository provides subscription reads.
type SubscriptionReadRepository struct {
	db *sqlx.DB
}

func NewSubscriptionReadRepository(db *sqlx.DB) *SubscriptionReadRepository {
	return &SubscriptionReadRepository{db: db}
}

// Exists reports whether the subscriber currently follows the channel.
func (r *SubscriptionReadRepository) Exists(ctx context.Context, subscriberID, channelID uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM subscriptions
			WHERE subscriber_id = $1 AND channel_id = $2
		)
	`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, subscriberID, channelID)
	logQuery(query, []any{subscriberID, channelID}, err)
	return exists, err
}

// SubscriptionWriteRepository handles subscription mutations.
type SubscriptionWriteRepository struct {
	db *sqlx.DB
}

func NewSubscriptionWriteRepository(db *sqlx.DB) *SubscriptionWriteRepository {
	return &SubscriptionWriteRepository{db: db}
}

// Save inserts the pair and reports whether a row was created. The unique
// (channel_id, subscriber_id) index absorbs concurrent double-toggles.
func (r *SubscriptionWriteRepository) Save(ctx context.Context, subscriberID, channelID uuid.UUID) (bool, error) {
	const query = `
		INSERT INTO subscriptions (subscription_id, subscriber_id, channel_id, created_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT DO NOTHING
	`

	args := []any{uuid.New(), subscriberID, channelID}
	res, err := r.db.ExecContext(ctx, query, args...)
	var affected int64
	if res != nil {
		affected, _ = res.RowsAffected()
	}
	logQuery(query, args, err)
	return affected > 0, err
}

// Delete removes the pair and reports whether a row existed.
func (r *SubscriptionWriteRepository) Delete(ctx context.Context, subscriberID, channelID uuid.UUID) (bool, error) {
	const query = `DELETE FROM subscriptions WHERE subscriber_id = $1 AND channel_id = $2`

	res, err := r.db.ExecContext(ctx, query, subscriberID, channelID)
	var affected int64
	if res != nil {
		affected, _ = res.RowsAffected()
	}
	logQuery(query, []any{subscriberID, channelID}, err)
	return affected > 0, err
}
