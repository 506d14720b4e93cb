package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/streamhive/streamhive-api/internal/models"
)

// VideoListFilter carries the caller-driven stages of the listing recipe:
// optional text search, owner scoping, sort and the pagination window. The
// publication filter is fixed: only published videos are listed.
type VideoListFilter struct {
	Query    string
	OwnerID  *uuid.UUID
	SortBy   string
	SortType string
	Limit    int
	Skip     int
}

// sortColumns whitelists caller-facing sort fields; anything else falls back
// to creation time.
var sortColumns = map[string]string{
	"createdAt": "v.created_at",
	"views":     "v.views",
	"duration":  "v.duration",
	"title":     "v.title",
}

func (f VideoListFilter) orderClause() string {
	column, ok := sortColumns[f.SortBy]
	if !ok {
		column = "v.created_at"
	}
	direction := "DESC"
	if f.SortType == "asc" {
		direction = "ASC"
	}
	return fmt.Sprintf("ORDER BY %s %s", column, direction)
}

// VideoReadRepository provides listing and enrichment reads for videos.
type VideoReadRepository struct {
	db *sqlx.DB
}

func NewVideoReadRepository(db *sqlx.DB) *VideoReadRepository {
	return &VideoReadRepository{db: db}
}

// List returns one page of published videos enriched with their owner's
// public profile. The search filter matches title or description.
func (r *VideoReadRepository) List(ctx context.Context, filter VideoListFilter) ([]models.VideoListItem, error) {
	query := `
		SELECT v.video_id, v.title, v.description, v.thumbnail_url, v.duration,
		       v.views, v.created_at,
		       u.user_id AS owner_user_id, u.username AS owner_username,
		       u.full_name AS owner_full_name, u.avatar AS owner_avatar
		FROM videos v
		JOIN users u ON u.user_id = v.owner_id
		WHERE v.is_published
		  AND ($1 = '' OR v.title ILIKE '%' || $1 || '%' OR v.description ILIKE '%' || $1 || '%')
		  AND ($2::UUID IS NULL OR v.owner_id = $2)
		` + filter.orderClause() + `
		LIMIT $3 OFFSET $4
	`

	var rows []struct {
		VideoID      uuid.UUID `db:"video_id"`
		Title        string    `db:"title"`
		Description  string    `db:"description"`
		ThumbnailURL string    `db:"thumbnail_url"`
		Duration     float64   `db:"duration"`
		Views        int64     `db:"views"`
		CreatedAt    time.Time `db:"created_at"`
		ownerColumns
	}
	args := []any{filter.Query, filter.OwnerID, filter.Limit, filter.Skip}
	err := r.db.SelectContext(ctx, &rows, query, args...)
	logQuery(query, args, err)
	if err != nil {
		return nil, err
	}

	items := make([]models.VideoListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, models.VideoListItem{
			VideoID:      row.VideoID,
			Title:        row.Title,
			Description:  row.Description,
			ThumbnailURL: row.ThumbnailURL,
			Duration:     row.Duration,
			Views:        row.Views,
			CreatedAt:    row.CreatedAt,
			OwnerDetails: row.ownerProfile(),
		})
	}
	return items, nil
}

// Count returns the number of videos matching the same predicate as List.
// Run against the base filter, not the joined result, so join fan-out can
// never inflate totalPages.
func (r *VideoReadRepository) Count(ctx context.Context, filter VideoListFilter) (int64, error) {
	const query = `
		SELECT COUNT(*)
		FROM videos v
		WHERE v.is_published
		  AND ($1 = '' OR v.title ILIKE '%' || $1 || '%' OR v.description ILIKE '%' || $1 || '%')
		  AND ($2::UUID IS NULL OR v.owner_id = $2)
	`

	var total int64
	err := r.db.GetContext(ctx, &total, query, filter.Query, filter.OwnerID)
	logQuery(query, []any{filter.Query, filter.OwnerID}, err)
	return total, err
}

// GetByID returns the raw video row, or nil when absent. Used for existence
// and ownership checks before mutations.
func (r *VideoReadRepository) GetByID(ctx context.Context, videoID uuid.UUID) (*models.VideoDB, error) {
	const query = `
		SELECT video_id, title, description, video_url, video_public_id,
		       thumbnail_url, thumbnail_public_id, duration, views,
		       is_published, owner_id, created_at, updated_at
		FROM videos
		WHERE video_id = $1
	`

	var video models.VideoDB
	err := r.db.GetContext(ctx, &video, query, videoID)
	logQuery(query, []any{videoID}, err)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &video, nil
}

// GetDetail returns the enriched single-video document: owner block with
// subscriber count and the viewer's subscription state, like count and the
// viewer's like state, plus the comment list with author profiles. A nil
// viewer yields false for both membership flags.
func (r *VideoReadRepository) GetDetail(ctx context.Context, videoID uuid.UUID, viewerID *uuid.UUID) (*models.VideoDetail, error) {
	const query = `
		SELECT v.video_id, v.title, v.description, v.video_url, v.duration,
		       v.views, v.created_at,
		       u.user_id AS owner_user_id, u.username AS owner_username,
		       u.full_name AS owner_full_name, u.avatar AS owner_avatar,
		       (SELECT COUNT(*) FROM subscriptions s WHERE s.channel_id = u.user_id) AS subscribers_count,
		       EXISTS (
		           SELECT 1 FROM subscriptions s
		           WHERE s.channel_id = u.user_id AND s.subscriber_id = $2
		       ) AS is_subscribed,
		       (SELECT COUNT(*) FROM likes l WHERE l.video_id = v.video_id) AS likes_count,
		       EXISTS (
		           SELECT 1 FROM likes l
		           WHERE l.video_id = v.video_id AND l.liked_by = $2
		       ) AS is_liked
		FROM videos v
		JOIN users u ON u.user_id = v.owner_id
		WHERE v.video_id = $1
	`

	var row struct {
		VideoID     uuid.UUID `db:"video_id"`
		Title       string    `db:"title"`
		Description string    `db:"description"`
		VideoURL    string    `db:"video_url"`
		Duration    float64   `db:"duration"`
		Views       int64     `db:"views"`
		CreatedAt   time.Time `db:"created_at"`
		ownerColumns
		SubscribersCount int64 `db:"subscribers_count"`
		IsSubscribed     bool  `db:"is_subscribed"`
		LikesCount       int64 `db:"likes_count"`
		IsLiked          bool  `db:"is_liked"`
	}
	err := r.db.GetContext(ctx, &row, query, videoID, viewerID)
	logQuery(query, []any{videoID, viewerID}, err)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	const commentsQuery = `
		SELECT c.comment_id, c.content, c.created_at,
		       u.user_id AS owner_user_id, u.username AS owner_username,
		       u.full_name AS owner_full_name, u.avatar AS owner_avatar
		FROM comments c
		JOIN users u ON u.user_id = c.owner_id
		WHERE c.video_id = $1
		ORDER BY c.created_at DESC
	`

	var commentRows []commentRow
	err = r.db.SelectContext(ctx, &commentRows, commentsQuery, videoID)
	logQuery(commentsQuery, []any{videoID}, err)
	if err != nil {
		return nil, err
	}

	detail := &models.VideoDetail{
		VideoID:     row.VideoID,
		Title:       row.Title,
		Description: row.Description,
		VideoURL:    row.VideoURL,
		Duration:    row.Duration,
		Views:       row.Views,
		CreatedAt:   row.CreatedAt,
		OwnerDetails: models.VideoOwnerDetails{
			UserProfile:      row.ownerProfile(),
			SubscribersCount: row.SubscribersCount,
			IsSubscribed:     row.IsSubscribed,
		},
		LikesCount: row.LikesCount,
		IsLiked:    row.IsLiked,
		Comments:   commentViews(commentRows),
	}
	return detail, nil
}

// ListByOwner returns all of one owner's videos, published or not. Backs the
// dashboard's channel-videos view.
func (r *VideoReadRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.VideoDB, error) {
	const query = `
		SELECT video_id, title, description, video_url, video_public_id,
		       thumbnail_url, thumbnail_public_id, duration, views,
		       is_published, owner_id, created_at, updated_at
		FROM videos
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`

	var videos []models.VideoDB
	err := r.db.SelectContext(ctx, &videos, query, ownerID)
	logQuery(query, []any{ownerID}, err)
	return videos, err
}

// VideoWriteRepository handles video mutations.
type VideoWriteRepository struct {
	db *sqlx.DB
}

func NewVideoWriteRepository(db *sqlx.DB) *VideoWriteRepository {
	return &VideoWriteRepository{db: db}
}

// Save inserts a new, unpublished video and returns the stored row.
func (r *VideoWriteRepository) Save(ctx context.Context, ownerID uuid.UUID, title, description string, videoFile, thumbnail models.MediaAsset) (*models.VideoDB, error) {
	const query = `
		INSERT INTO videos (video_id, title, description, video_url, video_public_id,
		                    thumbnail_url, thumbnail_public_id, duration, views,
		                    is_published, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 0, FALSE, $9, NOW(), NOW())
		RETURNING video_id, title, description, video_url, video_public_id,
		          thumbnail_url, thumbnail_public_id, duration, views,
		          is_published, owner_id, created_at, updated_at
	`

	args := []any{uuid.New(), title, description, videoFile.URL, videoFile.PublicID,
		thumbnail.URL, thumbnail.PublicID, videoFile.Duration, ownerID}

	var video models.VideoDB
	err := r.db.GetContext(ctx, &video, query, args...)
	logQuery(query, args, err)
	if err != nil {
		return nil, err
	}
	return &video, nil
}

// Update changes title, description and optionally the thumbnail reference.
func (r *VideoWriteRepository) Update(ctx context.Context, videoID uuid.UUID, title, description string, thumbnail *models.MediaAsset) (*models.VideoDB, error) {
	const query = `
		UPDATE videos
		SET title = $2,
		    description = $3,
		    thumbnail_url = COALESCE($4, thumbnail_url),
		    thumbnail_public_id = COALESCE($5, thumbnail_public_id),
		    updated_at = NOW()
		WHERE video_id = $1
		RETURNING video_id, title, description, video_url, video_public_id,
		          thumbnail_url, thumbnail_public_id, duration, views,
		          is_published, owner_id, created_at, updated_at
	`

	var thumbURL, thumbPublicID *string
	if thumbnail != nil {
		thumbURL = &thumbnail.URL
		thumbPublicID = &thumbnail.PublicID
	}
	args := []any{videoID, title, description, thumbURL, thumbPublicID}

	var video models.VideoDB
	err := r.db.GetContext(ctx, &video, query, args...)
	logQuery(query, args, err)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &video, nil
}

// Delete removes a video; likes, comments, playlist and history entries go
// with it via ON DELETE CASCADE.
func (r *VideoWriteRepository) Delete(ctx context.Context, videoID uuid.UUID) error {
	const query = `DELETE FROM videos WHERE video_id = $1`

	_, err := r.db.ExecContext(ctx, query, videoID)
	logQuery(query, []any{videoID}, err)
	return err
}

// SetPublished flips the publication flag and returns the updated row.
func (r *VideoWriteRepository) SetPublished(ctx context.Context, videoID uuid.UUID, published bool) (*models.VideoDB, error) {
	const query = `
		UPDATE videos
		SET is_published = $2, updated_at = NOW()
		WHERE video_id = $1
		RETURNING video_id, title, description, video_url, video_public_id,
		          thumbnail_url, thumbnail_public_id, duration, views,
		          is_published, owner_id, created_at, updated_at
	`

	var video models.VideoDB
	err := r.db.GetContext(ctx, &video, query, videoID, published)
	logQuery(query, []any{videoID, published}, err)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &video, nil
}

// IncrementViews bumps the view counter by one. Unconditional per fetch;
// view deduplication is an explicit non-goal.
func (r *VideoWriteRepository) IncrementViews(ctx context.Context, videoID uuid.UUID) error {
	const query = `UPDATE videos SET views = views + 1 WHERE video_id = $1`

	_, err := r.db.ExecContext(ctx, query, videoID)
	logQuery(query, []any{videoID}, err)
	return err
}
