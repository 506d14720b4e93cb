package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/streamhive/streamhive-api/internal/logger"
	"github.com/streamhive/streamhive-api/internal/models"
)

// ErrStatsCacheMiss is returned when no cached summary exists for a channel.
var ErrStatsCacheMiss = errors.New("channel stats not found in cache")

// StatsCacheRepository caches channel statistics in Redis. The dashboard
// tolerates the staleness window in exchange for not re-running three
// aggregate queries on every load.
type StatsCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewStatsCacheRepository creates the cache with the given TTL.
func NewStatsCacheRepository(client *redis.Client, expiration time.Duration) *StatsCacheRepository {
	return &StatsCacheRepository{client: client, exp: expiration}
}

func statsKey(channelID uuid.UUID) string {
	return fmt.Sprintf("channel_stats:%s", channelID)
}

// GetChannelStats returns the cached summary or ErrStatsCacheMiss.
func (r *StatsCacheRepository) GetChannelStats(ctx context.Context, channelID uuid.UUID) (*models.ChannelStats, error) {
	key := statsKey(channelID)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow("stats cache get", "key", key, "error", err)
		if errors.Is(err, redis.Nil) {
			return nil, ErrStatsCacheMiss
		}
		return nil, err
	}

	var stats models.ChannelStats
	if err := json.Unmarshal([]byte(val), &stats); err != nil {
		logger.Log.Errorw("stats cache decode failed", "key", key, "error", err)
		return nil, err
	}

	return &stats, nil
}

// SetChannelStats caches the summary with the configured expiration.
func (r *StatsCacheRepository) SetChannelStats(ctx context.Context, channelID uuid.UUID, stats *models.ChannelStats) error {
	key := statsKey(channelID)

	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()
	logger.Log.Infow("stats cache set", "key", key, "error", err)
	return err
}
