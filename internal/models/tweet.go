package models

import (
	"time"

	"github.com/google/uuid"
)

// TweetDB maps a row of the tweets table.
type TweetDB struct {
	TweetID   uuid.UUID `db:"tweet_id" json:"tweetId"`
	Content   string    `db:"content" json:"content"`
	OwnerID   uuid.UUID `db:"owner_id" json:"ownerId"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// TweetView is a tweet enriched with its author's public profile.
type TweetView struct {
	TweetID     uuid.UUID   `json:"tweetId"`
	Content     string      `json:"content"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
	UserDetails UserProfile `json:"userDetails"`
}
