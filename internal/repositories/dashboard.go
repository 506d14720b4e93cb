package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/streamhive/streamhive-api/internal/models"
)

// DashboardReadRepository computes the per-channel statistics summary. All
// numbers are aggregated on demand; nothing is stored redundantly.
type DashboardReadRepository struct {
	db *sqlx.DB
}

func NewDashboardReadRepository(db *sqlx.DB) *DashboardReadRepository {
	return &DashboardReadRepository{db: db}
}

// GetChannelStats runs the three independent aggregates scoped to one
// channel: video/view totals, like total over the channel's videos, and
// subscriber total. The reads are non-transactional snapshots.
func (r *DashboardReadRepository) GetChannelStats(ctx context.Context, channelID uuid.UUID) (*models.ChannelStats, error) {
	const videosQuery = `
		SELECT COUNT(*) AS total_videos, COALESCE(SUM(views), 0) AS total_views
		FROM videos
		WHERE owner_id = $1
	`

	var videoStats struct {
		TotalVideos int64 `db:"total_videos"`
		TotalViews  int64 `db:"total_views"`
	}
	err := r.db.GetContext(ctx, &videoStats, videosQuery, channelID)
	logQuery(videosQuery, []any{channelID}, err)
	if err != nil {
		return nil, err
	}

	const likesQuery = `
		SELECT COUNT(*)
		FROM likes l
		JOIN videos v ON v.video_id = l.video_id
		WHERE v.owner_id = $1
	`

	var totalLikes int64
	err = r.db.GetContext(ctx, &totalLikes, likesQuery, channelID)
	logQuery(likesQuery, []any{channelID}, err)
	if err != nil {
		return nil, err
	}

	const subscribersQuery = `SELECT COUNT(*) FROM subscriptions WHERE channel_id = $1`

	var totalSubscribers int64
	err = r.db.GetContext(ctx, &totalSubscribers, subscribersQuery, channelID)
	logQuery(subscribersQuery, []any{channelID}, err)
	if err != nil {
		return nil, err
	}

	return &models.ChannelStats{
		TotalVideos:      videoStats.TotalVideos,
		TotalViews:       videoStats.TotalViews,
		TotalLikes:       totalLikes,
		TotalSubscribers: totalSubscribers,
	}, nil
}
