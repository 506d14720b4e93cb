package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/streamhive/streamhive-api/internal/models"
)

// targetColumn maps a like target to its foreign-key column. Targets outside
// this map never reach SQL.
func targetColumn(target models.LikeTarget) (string, error) {
	switch target {
	case models.LikeTargetVideo:
		return "video_id", nil
	case models.LikeTargetComment:
		return "comment_id", nil
	case models.LikeTargetTweet:
		return "tweet_id", nil
	}
	return "", fmt.Errorf("unknown like target %q", target)
}

// LikeReadRepository provides like reads.
type LikeReadRepository struct {
	db *sqlx.DB
}

func NewLikeReadRepository(db *sqlx.DB) *LikeReadRepository {
	return &LikeReadRepository{db: db}
}

// Exists reports whether the (user, target) pair currently holds a like.
func (r *LikeReadRepository) Exists(ctx context.Context, target models.LikeTarget, targetID, userID uuid.UUID) (bool, error) {
	column, err := targetColumn(target)
	if err != nil {
		return false, err
	}
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM likes WHERE %s = $1 AND liked_by = $2)`, column)

	var exists bool
	err = r.db.GetContext(ctx, &exists, query, targetID, userID)
	logQuery(query, []any{targetID, userID}, err)
	return exists, err
}

// ListLikedVideos returns the caller's liked videos, most recently liked
// first, enriched with each video's owner profile.
func (r *LikeReadRepository) ListLikedVideos(ctx context.Context, userID uuid.UUID, limit, skip int) ([]models.LikedVideoItem, error) {
	const query = `
		SELECT v.video_id, v.title, v.thumbnail_url, v.duration, v.views, l.created_at AS liked_at,
		       u.user_id AS owner_user_id, u.username AS owner_username,
		       u.full_name AS owner_full_name, u.avatar AS owner_avatar
		FROM likes l
		JOIN videos v ON v.video_id = l.video_id
		JOIN users u  ON u.user_id = v.owner_id
		WHERE l.liked_by = $1 AND l.video_id IS NOT NULL
		ORDER BY l.created_at DESC
		LIMIT $2 OFFSET $3
	`

	var rows []struct {
		VideoID      uuid.UUID `db:"video_id"`
		Title        string    `db:"title"`
		ThumbnailURL string    `db:"thumbnail_url"`
		Duration     float64   `db:"duration"`
		Views        int64     `db:"views"`
		LikedAt      time.Time `db:"liked_at"`
		ownerColumns
	}
	err := r.db.SelectContext(ctx, &rows, query, userID, limit, skip)
	logQuery(query, []any{userID, limit, skip}, err)
	if err != nil {
		return nil, err
	}

	items := make([]models.LikedVideoItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, models.LikedVideoItem{
			VideoID:      row.VideoID,
			Title:        row.Title,
			ThumbnailURL: row.ThumbnailURL,
			Duration:     row.Duration,
			Views:        row.Views,
			LikedAt:      row.LikedAt,
			OwnerDetails: row.ownerProfile(),
		})
	}
	return items, nil
}

// CountLikedVideos returns the caller's liked-video total.
func (r *LikeReadRepository) CountLikedVideos(ctx context.Context, userID uuid.UUID) (int64, error) {
	const query = `SELECT COUNT(*) FROM likes WHERE liked_by = $1 AND video_id IS NOT NULL`

	var total int64
	err := r.db.GetContext(ctx, &total, query, userID)
	logQuery(query, []any{userID}, err)
	return total, err
}

// LikeWriteRepository handles like mutations.
type LikeWriteRepository struct {
	db *sqlx.DB
}

func NewLikeWriteRepository(db *sqlx.DB) *LikeWriteRepository {
	return &LikeWriteRepository{db: db}
}

// Save inserts a like for the pair and reports whether a row was created.
// The per-target unique index absorbs concurrent double-toggles: the loser
// of the race inserts nothing and reports false.
func (r *LikeWriteRepository) Save(ctx context.Context, target models.LikeTarget, targetID, userID uuid.UUID) (bool, error) {
	column, err := targetColumn(target)
	if err != nil {
		return false, err
	}
	query := fmt.Sprintf(`
		INSERT INTO likes (like_id, %s, liked_by, created_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT DO NOTHING
	`, column)

	args := []any{uuid.New(), targetID, userID}
	res, err := r.db.ExecContext(ctx, query, args...)
	var affected int64
	if res != nil {
		affected, _ = res.RowsAffected()
	}
	logQuery(query, args, err)
	return affected > 0, err
}

// Delete removes the pair's like and reports whether a row existed.
func (r *LikeWriteRepository) Delete(ctx context.Context, target models.LikeTarget, targetID, userID uuid.UUID) (bool, error) {
	column, err := targetColumn(target)
	if err != nil {
		return false, err
	}
	query := fmt.Sprintf(`DELETE FROM likes WHERE %s = $1 AND liked_by = $2`, column)

	res, err := r.db.ExecContext(ctx, query, targetID, userID)
	var affected int64
	if res != nil {
		affected, _ = res.RowsAffected()
	}
	logQuery(query, []any{targetID, userID}, err)
	return affected > 0, err
}
