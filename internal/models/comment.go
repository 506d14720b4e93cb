package models

import (
	"time"

	"github.com/google/uuid"
)

// CommentDB maps a row of the comments table.
type CommentDB struct {
	CommentID uuid.UUID `db:"comment_id" json:"commentId"`
	Content   string    `db:"content" json:"content"`
	VideoID   uuid.UUID `db:"video_id" json:"videoId"`
	OwnerID   uuid.UUID `db:"owner_id" json:"ownerId"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// CommentView is a comment enriched with its author's public profile.
type CommentView struct {
	CommentID   uuid.UUID   `json:"commentId"`
	Content     string      `json:"content"`
	CreatedAt   time.Time   `json:"createdAt"`
	UserDetails UserProfile `json:"userDetails"`
}
