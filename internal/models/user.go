package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB maps a row of the users table.
type UserDB struct {
	UserID           uuid.UUID `db:"user_id"`
	Username         string    `db:"username"`
	Email            string    `db:"email"`
	FullName         string    `db:"full_name"`
	Avatar           string    `db:"avatar"`
	CoverImage       *string   `db:"cover_image"`
	PasswordHash     string    `db:"password_hash"`
	RefreshTokenHash *string   `db:"refresh_token_hash"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

// UserProfile is the public projection of a user attached to enriched
// documents (video owner, comment author, tweet author).
type UserProfile struct {
	UserID   uuid.UUID `db:"user_id" json:"userId"`
	Username string    `db:"username" json:"username"`
	FullName string    `db:"full_name" json:"fullName"`
	Avatar   string    `db:"avatar" json:"avatar"`
}

// CurrentUser is the caller's own account without credential fields.
type CurrentUser struct {
	UserID     uuid.UUID `db:"user_id" json:"userId"`
	Username   string    `db:"username" json:"username"`
	Email      string    `db:"email" json:"email"`
	FullName   string    `db:"full_name" json:"fullName"`
	Avatar     string    `db:"avatar" json:"avatar"`
	CoverImage *string   `db:"cover_image" json:"coverImage"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `db:"updated_at" json:"updatedAt"`
}

// ChannelProfile is a user viewed as a channel, enriched with subscription
// counts and the caller's subscription state.
type ChannelProfile struct {
	UserID            uuid.UUID `db:"user_id" json:"userId"`
	Username          string    `db:"username" json:"username"`
	FullName          string    `db:"full_name" json:"fullName"`
	Avatar            string    `db:"avatar" json:"avatar"`
	CoverImage        *string   `db:"cover_image" json:"coverImage"`
	SubscribersCount  int64     `db:"subscribers_count" json:"subscribersCount"`
	SubscribedToCount int64     `db:"subscribed_to_count" json:"subscribedToCount"`
	IsSubscribed      bool      `db:"is_subscribed" json:"isSubscribed"`
}
