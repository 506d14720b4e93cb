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

// UserReadRepository provides user lookups and profile enrichment reads.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByUsernameOrEmail returns the first user matching either value, or nil
// when none matches. Username and email are stored case-folded.
func (r *UserReadRepository) GetByUsernameOrEmail(ctx context.Context, username, email *string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, username, email, full_name, avatar, cover_image,
		       password_hash, refresh_token_hash, created_at, updated_at
		FROM users
		WHERE ($1::VARCHAR IS NOT NULL AND username = LOWER($1))
		   OR ($2::VARCHAR IS NOT NULL AND email = LOWER($2))
		LIMIT 1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, username, email)
	logQuery(query, []any{username, email}, err)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

// GetByID returns a user by identifier, or nil when absent.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	const query = `
		SELECT user_id, username, email, full_name, avatar, cover_image,
		       password_hash, refresh_token_hash, created_at, updated_at
		FROM users
		WHERE user_id = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, userID)
	logQuery(query, []any{userID}, err)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

// GetChannelProfile returns a user viewed as a channel: subscriber count,
// subscribed-to count and whether the viewer subscribes to it. A nil viewer
// is an anonymous caller and always yields is_subscribed = false.
func (r *UserReadRepository) GetChannelProfile(ctx context.Context, username string, viewerID *uuid.UUID) (*models.ChannelProfile, error) {
	const query = `
		SELECT u.user_id, u.username, u.full_name, u.avatar, u.cover_image,
		       (SELECT COUNT(*) FROM subscriptions s WHERE s.channel_id = u.user_id)    AS subscribers_count,
		       (SELECT COUNT(*) FROM subscriptions s WHERE s.subscriber_id = u.user_id) AS subscribed_to_count,
		       EXISTS (
		           SELECT 1 FROM subscriptions s
		           WHERE s.channel_id = u.user_id AND s.subscriber_id = $2
		       ) AS is_subscribed
		FROM users u
		WHERE u.username = LOWER($1)
	`

	var profile models.ChannelProfile
	err := r.db.GetContext(ctx, &profile, query, username, viewerID)
	logQuery(query, []any{username, viewerID}, err)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &profile, nil
}

// GetWatchHistory returns the user's watched videos most recent first, each
// enriched with its owner's public profile.
func (r *UserReadRepository) GetWatchHistory(ctx context.Context, userID uuid.UUID, limit, skip int) ([]models.WatchHistoryItem, error) {
	const query = `
		SELECT v.video_id, v.title, v.thumbnail_url, v.duration, v.views, h.watched_at,
		       u.user_id AS owner_user_id, u.username AS owner_username,
		       u.full_name AS owner_full_name, u.avatar AS owner_avatar
		FROM watch_history h
		JOIN videos v ON v.video_id = h.video_id
		JOIN users u  ON u.user_id = v.owner_id
		WHERE h.user_id = $1
		ORDER BY h.watched_at DESC
		LIMIT $2 OFFSET $3
	`

	var rows []struct {
		VideoID      uuid.UUID `db:"video_id"`
		Title        string    `db:"title"`
		ThumbnailURL string    `db:"thumbnail_url"`
		Duration     float64   `db:"duration"`
		Views        int64     `db:"views"`
		WatchedAt    time.Time `db:"watched_at"`
		ownerColumns
	}
	err := r.db.SelectContext(ctx, &rows, query, userID, limit, skip)
	logQuery(query, []any{userID, limit, skip}, err)
	if err != nil {
		return nil, err
	}

	items := make([]models.WatchHistoryItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, models.WatchHistoryItem{
			VideoID:      row.VideoID,
			Title:        row.Title,
			ThumbnailURL: row.ThumbnailURL,
			Duration:     row.Duration,
			Views:        row.Views,
			WatchedAt:    row.WatchedAt,
			OwnerDetails: row.ownerProfile(),
		})
	}
	return items, nil
}

// CountWatchHistory returns the number of entries in the user's history.
func (r *UserReadRepository) CountWatchHistory(ctx context.Context, userID uuid.UUID) (int64, error) {
	const query = `SELECT COUNT(*) FROM watch_history WHERE user_id = $1`

	var total int64
	err := r.db.GetContext(ctx, &total, query, userID)
	logQuery(query, []any{userID}, err)
	return total, err
}

// UserWriteRepository handles user mutations.
type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user and returns its identifier. Username and email are
// case-folded on write; the unique constraints are the final guard against
// concurrent duplicate registration.
func (r *UserWriteRepository) Save(ctx context.Context, username, email, fullName, avatar string, coverImage *string, passwordHash string) (uuid.UUID, error) {
	const query = `
		INSERT INTO users (user_id, username, email, full_name, avatar, cover_image, password_hash, created_at, updated_at)
		VALUES ($1, LOWER($2), LOWER($3), $4, $5, $6, $7, NOW(), NOW())
		RETURNING user_id
	`

	userID := uuid.New()
	args := []any{userID, username, email, fullName, avatar, coverImage, passwordHash}

	var returned uuid.UUID
	err := r.db.GetContext(ctx, &returned, query, args...)
	logQuery(query, args, err)
	if err != nil {
		return uuid.Nil, err
	}
	return returned, nil
}

// UpdateAccount changes the mutable profile fields.
func (r *UserWriteRepository) UpdateAccount(ctx context.Context, userID uuid.UUID, fullName, email string) error {
	const query = `
		UPDATE users
		SET full_name = $2, email = LOWER($3), updated_at = NOW()
		WHERE user_id = $1
	`

	_, err := r.db.ExecContext(ctx, query, userID, fullName, email)
	logQuery(query, []any{userID, fullName, email}, err)
	return err
}

// UpdateAvatar replaces the avatar reference.
func (r *UserWriteRepository) UpdateAvatar(ctx context.Context, userID uuid.UUID, avatar string) error {
	const query = `UPDATE users SET avatar = $2, updated_at = NOW() WHERE user_id = $1`

	_, err := r.db.ExecContext(ctx, query, userID, avatar)
	logQuery(query, []any{userID, avatar}, err)
	return err
}

// UpdateCoverImage replaces the cover image reference.
func (r *UserWriteRepository) UpdateCoverImage(ctx context.Context, userID uuid.UUID, coverImage string) error {
	const query = `UPDATE users SET cover_image = $2, updated_at = NOW() WHERE user_id = $1`

	_, err := r.db.ExecContext(ctx, query, userID, coverImage)
	logQuery(query, []any{userID, coverImage}, err)
	return err
}

// UpdatePassword replaces the password hash.
func (r *UserWriteRepository) UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	const query = `UPDATE users SET password_hash = $2, updated_at = NOW() WHERE user_id = $1`

	_, err := r.db.ExecContext(ctx, query, userID, passwordHash)
	logQuery(query, []any{userID, "<hash>"}, err)
	return err
}

// SetRefreshTokenHash stores the current refresh token hash; nil clears it
// on logout.
func (r *UserWriteRepository) SetRefreshTokenHash(ctx context.Context, userID uuid.UUID, hash *string) error {
	const query = `UPDATE users SET refresh_token_hash = $2, updated_at = NOW() WHERE user_id = $1`

	_, err := r.db.ExecContext(ctx, query, userID, hash)
	logQuery(query, []any{userID, "<hash>"}, err)
	return err
}

// TouchWatchHistory moves a video to the front of the user's history,
// inserting it when absent. Most-recent-first ordering comes from watched_at.
func (r *UserWriteRepository) TouchWatchHistory(ctx context.Context, userID, videoID uuid.UUID) error {
	const query = `
		INSERT INTO watch_history (user_id, video_id, watched_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id, video_id)
		DO UPDATE SET watched_at = NOW()
	`

	_, err := r.db.ExecContext(ctx, query, userID, videoID)
	logQuery(query, []any{userID, videoID}, err)
	return err
}
