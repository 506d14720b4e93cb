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

// commentRow is the enriched comment projection shared by the comment list
// and the video detail recipe.
type commentRow struct {
	CommentID uuid.UUID `db:"comment_id"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`
	ownerColumns
}

func commentViews(rows []commentRow) []models.CommentView {
	views := make([]models.CommentView, 0, len(rows))
	for _, row := range rows {
		views = append(views, models.CommentView{
			CommentID:   row.CommentID,
			Content:     row.Content,
			CreatedAt:   row.CreatedAt,
			UserDetails: row.ownerProfile(),
		})
	}
	return views
}

// CommentReadRepository provides comment reads.
type CommentReadRepository struct {
	db *sqlx.DB
}

func NewCommentReadRepository(db *sqlx.DB) *CommentReadRepository {
	return &CommentReadRepository{db: db}
}

// GetByID returns the raw comment row, or nil when absent.
func (r *CommentReadRepository) GetByID(ctx context.Context, commentID uuid.UUID) (*models.CommentDB, error) {
	const query = `
		SELECT comment_id, content, video_id, owner_id, created_at, updated_at
		FROM comments
		WHERE comment_id = $1
	`

	var comment models.CommentDB
	err := r.db.GetContext(ctx, &comment, query, commentID)
	logQuery(query, []any{commentID}, err)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &comment, nil
}

// ListByVideo returns one page of a video's comments, newest first, each
// enriched with its author's public profile.
func (r *CommentReadRepository) ListByVideo(ctx context.Context, videoID uuid.UUID, limit, skip int) ([]models.CommentView, error) {
	const query = `
		SELECT c.comment_id, c.content, c.created_at,
		       u.user_id AS owner_user_id, u.username AS owner_username,
		       u.full_name AS owner_full_name, u.avatar AS owner_avatar
		FROM comments c
		JOIN users u ON u.user_id = c.owner_id
		WHERE c.video_id = $1
		ORDER BY c.created_at DESC
		LIMIT $2 OFFSET $3
	`

	var rows []commentRow
	err := r.db.SelectContext(ctx, &rows, query, videoID, limit, skip)
	logQuery(query, []any{videoID, limit, skip}, err)
	if err != nil {
		return nil, err
	}

	return commentViews(rows), nil
}

// CountByVideo returns the comment total for the pagination envelope.
func (r *CommentReadRepository) CountByVideo(ctx context.Context, videoID uuid.UUID) (int64, error) {
	const query = `SELECT COUNT(*) FROM comments WHERE video_id = $1`

	var total int64
	err := r.db.GetContext(ctx, &total, query, videoID)
	logQuery(query, []any{videoID}, err)
	return total, err
}

// CommentWriteRepository handles comment mutations.
type CommentWriteRepository struct {
	db *sqlx.DB
}

func NewCommentWriteRepository(db *sqlx.DB) *CommentWriteRepository {
	return &CommentWriteRepository{db: db}
}

// Save inserts a comment and returns the stored row.
func (r *CommentWriteRepository) Save(ctx context.Context, videoID, ownerID uuid.UUID, content string) (*models.CommentDB, error) {
	const query = `
		INSERT INTO comments (comment_id, content, video_id, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING comment_id, content, video_id, owner_id, created_at, updated_at
	`

	args := []any{uuid.New(), content, videoID, ownerID}

	var comment models.CommentDB
	err := r.db.GetContext(ctx, &comment, query, args...)
	logQuery(query, args, err)
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// Update replaces the comment content.
func (r *CommentWriteRepository) Update(ctx context.Context, commentID uuid.UUID, content string) (*models.CommentDB, error) {
	const query = `
		UPDATE comments
		SET content = $2, updated_at = NOW()
		WHERE comment_id = $1
		RETURNING comment_id, content, video_id, owner_id, created_at, updated_at
	`

	var comment models.CommentDB
	err := r.db.GetContext(ctx, &comment, query, commentID, content)
	logQuery(query, []any{commentID, content}, err)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

// Delete removes a comment and its likes via cascade.
func (r *CommentWriteRepository) Delete(ctx context.Context, commentID uuid.UUID) error {
	const query = `DELETE FROM comments WHERE comment_id = $1`

	_, err := r.db.ExecContext(ctx, query, commentID)
	logQuery(query, []any{commentID}, err)
	return err
}
