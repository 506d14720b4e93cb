package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/streamhive/streamhive-api/internal/logger"
	"github.com/streamhive/streamhive-api/internal/models"
	"github.com/streamhive/streamhive-api/internal/repositories"
)

// StatsReader computes the per-channel statistics summary.
type StatsReader interface {
	GetChannelStats(ctx context.Context, channelID uuid.UUID) (*models.ChannelStats, error)
}

// StatsCache reads and writes the cached statistics summary.
type StatsCache interface {
	GetChannelStats(ctx context.Context, channelID uuid.UUID) (*models.ChannelStats, error)
	SetChannelStats(ctx context.Context, channelID uuid.UUID, stats *models.ChannelStats) error
}

// ChannelVideoLister returns all of one owner's videos, published or not.
type ChannelVideoLister interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.VideoDB, error)
}

// DashboardService serves the channel owner's dashboard. Stats are scoped to
// the requesting principal and cached in Redis.
type DashboardService struct {
	stats  StatsReader
	cache  StatsCache
	videos ChannelVideoLister
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(stats StatsReader, cache StatsCache, videos ChannelVideoLister) *DashboardService {
	return &DashboardService{
		stats:  stats,
		cache:  cache,
		videos: videos,
	}
}

// ChannelStats returns the caller's channel summary, preferring the cache.
// Any cache failure falls through to the aggregate queries.
func (svc *DashboardService) ChannelStats(ctx context.Context, principal uuid.UUID) (*models.ChannelStats, error) {
	if svc.cache != nil {
		cached, err := svc.cache.GetChannelStats(ctx, principal)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, repositories.ErrStatsCacheMiss) {
			logger.Log.Warnw("stats cache unavailable", "channel_id", principal, "err", err)
		}
	}

	stats, err := svc.stats.GetChannelStats(ctx, principal)
	if err != nil {
		logger.Log.Errorw("failed to get channel stats", "channel_id", principal, "err", err)
		return nil, err
	}

	if svc.cache != nil {
		if err := svc.cache.SetChannelStats(ctx, principal, stats); err != nil {
			logger.Log.Warnw("failed to cache channel stats", "channel_id", principal, "err", err)
		}
	}

	return stats, nil
}

// ChannelVideos returns all of the caller's videos, including unpublished
// ones.
func (svc *DashboardService) ChannelVideos(ctx context.Context, principal uuid.UUID) ([]models.VideoDB, error) {
	videos, err := svc.videos.ListByOwner(ctx, principal)
	if err != nil {
		logger.Log.Errorw("failed to list channel videos", "channel_id", principal, "err", err)
		return nil, err
	}
	return videos, nil
}
