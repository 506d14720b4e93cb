package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/streamhive/streamhive-api/internal/models"
)

// PlaylistReadRepository provides playlist reads.
type PlaylistReadRepository struct {
	db *sqlx.DB
}

func NewPlaylistReadRepository(db *sqlx.DB) *PlaylistReadRepository {
	return &PlaylistReadRepository{db: db}
}

// GetByID returns the raw playlist row, or nil when absent.
func (r *PlaylistReadRepository) GetByID(ctx context.Context, playlistID uuid.UUID) (*models.PlaylistDB, error) {
	const query = `
		SELECT playlist_id, name, description, owner_id, created_at, updated_at
		FROM playlists
		WHERE playlist_id = $1
	`

	var playlist models.PlaylistDB
	err := r.db.GetContext(ctx, &playlist, query, playlistID)
	logQuery(query, []any{playlistID}, err)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &playlist, nil
}

// playlistVideoRow is the projection of one playlist member video.
type playlistVideoRow struct {
	VideoID      uuid.UUID `db:"video_id"`
	Title        string    `db:"title"`
	Description  string    `db:"description"`
	VideoURL     string    `db:"video_url"`
	ThumbnailURL string    `db:"thumbnail_url"`
	Duration     float64   `db:"duration"`
	Views        int64     `db:"views"`
	IsPublished  bool      `db:"is_published"`
	OwnerID      uuid.UUID `db:"owner_id"`
	CreatedAt    time.Time `db:"created_at"`
}

// GetVideos returns one page of a playlist's videos in insertion order.
func (r *PlaylistReadRepository) GetVideos(ctx context.Context, playlistID uuid.UUID, limit, skip int) ([]models.PlaylistVideoItem, error) {
	const query = `
		SELECT v.video_id, v.title, v.description, v.video_url, v.thumbnail_url,
		       v.duration, v.views, v.is_published, v.owner_id, v.created_at
		FROM playlist_videos pv
		JOIN videos v ON v.video_id = pv.video_id
		WHERE pv.playlist_id = $1
		ORDER BY pv.position
		LIMIT $2 OFFSET $3
	`

	var rows []playlistVideoRow
	err := r.db.SelectContext(ctx, &rows, query, playlistID, limit, skip)
	logQuery(query, []any{playlistID, limit, skip}, err)
	if err != nil {
		return nil, err
	}

	items := make([]models.PlaylistVideoItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, models.PlaylistVideoItem{
			VideoID:      row.VideoID,
			Title:        row.Title,
			Description:  row.Description,
			VideoURL:     row.VideoURL,
			ThumbnailURL: row.ThumbnailURL,
			Duration:     row.Duration,
			Views:        row.Views,
			IsPublished:  row.IsPublished,
			OwnerID:      row.OwnerID,
			CreatedAt:    row.CreatedAt,
		})
	}
	return items, nil
}

// CountVideos returns a playlist's member total.
func (r *PlaylistReadRepository) CountVideos(ctx context.Context, playlistID uuid.UUID) (int64, error) {
	const query = `SELECT COUNT(*) FROM playlist_videos WHERE playlist_id = $1`

	var total int64
	err := r.db.GetContext(ctx, &total, query, playlistID)
	logQuery(query, []any{playlistID}, err)
	return total, err
}

// ListByOwner returns one page of a user's playlists, newest first.
func (r *PlaylistReadRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, skip int) ([]models.PlaylistDB, error) {
	const query = `
		SELECT playlist_id, name, description, owner_id, created_at, updated_at
		FROM playlists
		WHERE owner_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	var playlists []models.PlaylistDB
	err := r.db.SelectContext(ctx, &playlists, query, ownerID, limit, skip)
	logQuery(query, []any{ownerID, limit, skip}, err)
	return playlists, err
}

// CountByOwner returns a user's playlist total.
func (r *PlaylistReadRepository) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	const query = `SELECT COUNT(*) FROM playlists WHERE owner_id = $1`

	var total int64
	err := r.db.GetContext(ctx, &total, query, ownerID)
	logQuery(query, []any{ownerID}, err)
	return total, err
}

// PlaylistWriteRepository handles playlist mutations.
type PlaylistWriteRepository struct {
	db *sqlx.DB
}

func NewPlaylistWriteRepository(db *sqlx.DB) *PlaylistWriteRepository {
	return &PlaylistWriteRepository{db: db}
}

// Save inserts a playlist and returns the stored row.
func (r *PlaylistWriteRepository) Save(ctx context.Context, ownerID uuid.UUID, name, description string) (*models.PlaylistDB, error) {
	const query = `
		INSERT INTO playlists (playlist_id, name, description, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING playlist_id, name, description, owner_id, created_at, updated_at
	`

	args := []any{uuid.New(), name, description, ownerID}

	var playlist models.PlaylistDB
	err := r.db.GetContext(ctx, &playlist, query, args...)
	logQuery(query, args, err)
	if err != nil {
		return nil, err
	}
	return &playlist, nil
}

// Update changes name and description.
func (r *PlaylistWriteRepository) Update(ctx context.Context, playlistID uuid.UUID, name, description string) (*models.PlaylistDB, error) {
	const query = `
		UPDATE playlists
		SET name = $2, description = $3, updated_at = NOW()
		WHERE playlist_id = $1
		RETURNING playlist_id, name, description, owner_id, created_at, updated_at
	`

	var playlist models.PlaylistDB
	err := r.db.GetContext(ctx, &playlist, query, playlistID, name, description)
	logQuery(query, []any{playlistID, name, description}, err)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &playlist, nil
}

// Delete removes a playlist; membership rows cascade.
func (r *PlaylistWriteRepository) Delete(ctx context.Context, playlistID uuid.UUID) error {
	const query = `DELETE FROM playlists WHERE playlist_id = $1`

	_, err := r.db.ExecContext(ctx, query, playlistID)
	logQuery(query, []any{playlistID}, err)
	return err
}

// AddVideo appends a video to the playlist, suppressing duplicates. The
// position counter preserves insertion order.
func (r *PlaylistWriteRepository) AddVideo(ctx context.Context, playlistID, videoID uuid.UUID) error {
	const query = `
		INSERT INTO playlist_videos (playlist_id, video_id, position)
		SELECT $1, $2, COALESCE(MAX(position), 0) + 1
		FROM playlist_videos
		WHERE playlist_id = $1
		ON CONFLICT (playlist_id, video_id) DO NOTHING
	`

	_, err := r.db.ExecContext(ctx, query, playlistID, videoID)
	logQuery(query, []any{playlistID, videoID}, err)
	return err
}

// RemoveVideo drops a video from the playlist and reports whether it was a
// member.
func (r *PlaylistWriteRepository) RemoveVideo(ctx context.Context, playlistID, videoID uuid.UUID) (bool, error) {
	const query = `DELETE FROM playlist_videos WHERE playlist_id = $1 AND video_id = $2`

	res, err := r.db.ExecContext(ctx, query, playlistID, videoID)
	var affected int64
	if res != nil {
		affected, _ = res.RowsAffected()
	}
	logQuery(query, []any{playlistID, videoID}, err)
	return affected > 0, err
}
