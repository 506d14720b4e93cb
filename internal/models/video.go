package models

import (
	"time"

	"github.com/google/uuid"
)

// VideoDB maps a row of the videos table. Media assets are stored as a URL
// plus the storage key needed to delete them from the media host.
type VideoDB struct {
	VideoID           uuid.UUID `db:"video_id" json:"videoId"`
	Title             string    `db:"title" json:"title"`
	Description       string    `db:"description" json:"description"`
	VideoURL          string    `db:"video_url" json:"videoUrl"`
	VideoPublicID     string    `db:"video_public_id" json:"-"`
	ThumbnailURL      string    `db:"thumbnail_url" json:"thumbnailUrl"`
	ThumbnailPublicID string    `db:"thumbnail_public_id" json:"-"`
	Duration          float64   `db:"duration" json:"duration"`
	Views             int64     `db:"views" json:"views"`
	IsPublished       bool      `db:"is_published" json:"isPublished"`
	OwnerID           uuid.UUID `db:"owner_id" json:"ownerId"`
	CreatedAt         time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt         time.Time `db:"updated_at" json:"updatedAt"`
}

// VideoListItem is one entry of the public video listing, enriched with the
// owner's public profile.
type VideoListItem struct {
	VideoID      uuid.UUID   `json:"videoId"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	ThumbnailURL string      `json:"thumbnailUrl"`
	Duration     float64     `json:"duration"`
	Views        int64       `json:"views"`
	CreatedAt    time.Time   `json:"createdAt"`
	OwnerDetails UserProfile `json:"ownerDetails"`
}

// VideoOwnerDetails is the video detail's owner block: public profile plus
// derived subscription fields.
type VideoOwnerDetails struct {
	UserProfile
	SubscribersCount int64 `json:"subscribersCount"`
	IsSubscribed     bool  `json:"isSubscribed"`
}

// VideoDetail is the single-video enriched document.
type VideoDetail struct {
	VideoID      uuid.UUID         `json:"videoId"`
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	VideoURL     string            `json:"videoUrl"`
	Duration     float64           `json:"duration"`
	Views        int64             `json:"views"`
	CreatedAt    time.Time         `json:"createdAt"`
	OwnerDetails VideoOwnerDetails `json:"ownerDetails"`
	LikesCount   int64             `json:"likesCount"`
	IsLiked      bool              `json:"isLiked"`
	Comments     []CommentView     `json:"comments"`
}

// WatchHistoryItem is one watched video enriched with its owner's profile,
// most recent first.
type WatchHistoryItem struct {
	VideoID      uuid.UUID   `json:"videoId"`
	Title        string      `json:"title"`
	ThumbnailURL string      `json:"thumbnailUrl"`
	Duration     float64     `json:"duration"`
	Views        int64       `json:"views"`
	WatchedAt    time.Time   `json:"watchedAt"`
	OwnerDetails UserProfile `json:"ownerDetails"`
}
