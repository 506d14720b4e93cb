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

// TweetReadRepository provides tweet reads.
type TweetReadRepository struct {
	db *sqlx.DB
}

func NewTweetReadRepository(db *sqlx.DB) *TweetReadRepository {
	return &TweetReadRepository{db: db}
}

// GetByID returns the raw tweet row, or nil when absent.
func (r *TweetReadRepository) GetByID(ctx context.Context, tweetID uuid.UUID) (*models.TweetDB, error) {
	const query = `
		SELECT tweet_id, content, owner_id, created_at, updated_at
		FROM tweets
		WHERE tweet_id = $1
	`

	var tweet models.TweetDB
	err := r.db.GetContext(ctx, &tweet, query, tweetID)
	logQuery(query, []any{tweetID}, err)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &tweet, nil
}

// ListByUser returns one page of a user's tweets, newest first, enriched
// with the author's public profile.
func (r *TweetReadRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, skip int) ([]models.TweetView, error) {
	const query = `
		SELECT t.tweet_id, t.content, t.created_at, t.updated_at,
		       u.user_id AS owner_user_id, u.username AS owner_username,
		       u.full_name AS owner_full_name, u.avatar AS owner_avatar
		FROM tweets t
		JOIN users u ON u.user_id = t.owner_id
		WHERE t.owner_id = $1
		ORDER BY t.created_at DESC
		LIMIT $2 OFFSET $3
	`

	var rows []struct {
		TweetID   uuid.UUID `db:"tweet_id"`
		Content   string    `db:"content"`
		CreatedAt time.Time `db:"created_at"`
		UpdatedAt time.Time `db:"updated_at"`
		ownerColumns
	}
	err := r.db.SelectContext(ctx, &rows, query, userID, limit, skip)
	logQuery(query, []any{userID, limit, skip}, err)
	if err != nil {
		return nil, err
	}

	views := make([]models.TweetView, 0, len(rows))
	for _, row := range rows {
		views = append(views, models.TweetView{
			TweetID:     row.TweetID,
			Content:     row.Content,
			CreatedAt:   row.CreatedAt,
			UpdatedAt:   row.UpdatedAt,
			UserDetails: row.ownerProfile(),
		})
	}
	return views, nil
}

// CountByUser returns a user's tweet total.
func (r *TweetReadRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	const query = `SELECT COUNT(*) FROM tweets WHERE owner_id = $1`

	var total int64
	err := r.db.GetContext(ctx, &total, query, userID)
	logQuery(query, []any{userID}, err)
	return total, err
}

// TweetWriteRepository handles tweet mutations.
type TweetWriteRepository struct {
	db *sqlx.DB
}

func NewTweetWriteRepository(db *sqlx.DB) *TweetWriteRepository {
	return &TweetWriteRepository{db: db}
}

// Save inserts a tweet and returns the stored row.
func (r *TweetWriteRepository) Save(ctx context.Context, ownerID uuid.UUID, content string) (*models.TweetDB, error) {
	const query = `
		INSERT INTO tweets (tweet_id, content, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING tweet_id, content, owner_id, created_at, updated_at
	`

	args := []any{uuid.New(), content, ownerID}

	var tweet models.TweetDB
	err := r.db.GetContext(ctx, &tweet, query, args...)
	logQuery(query, args, err)
	if err != nil {
		return nil, err
	}
	return &tweet, nil
}

// Update replaces the tweet content.
func (r *TweetWriteRepository) Update(ctx context.Context, tweetID uuid.UUID, content string) (*models.TweetDB, error) {
	const query = `
		UPDATE tweets
		SET content = $2, updated_at = NOW()
		WHERE tweet_id = $1
		RETURNING tweet_id, content, owner_id, created_at, updated_at
	`

	var tweet models.TweetDB
	err := r.db.GetContext(ctx, &tweet, query, tweetID, content)
	logQuery(query, []any{tweetID, content}, err)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &tweet, nil
}

// Delete removes a tweet and its likes via cascade.
func (r *TweetWriteRepository) Delete(ctx context.Context, tweetID uuid.UUID) error {
	const query = `DELETE FROM tweets WHERE tweet_id = $1`

	_, err := r.db.ExecContext(ctx, query, tweetID)
	logQuery(query, []any{tweetID}, err)
	return err
}
