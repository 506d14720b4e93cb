package models

import (
	"time"

	"github.com/google/uuid"
)

// PlaylistDB maps a row of the playlists table. Membership lives in the
// playlist_videos join table with a position column preserving insert order.
type PlaylistDB struct {
	PlaylistID  uuid.UUID `db:"playlist_id" json:"playlistId"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	OwnerID     uuid.UUID `db:"owner_id" json:"ownerId"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// PlaylistVideoItem is one video of a playlist in its stored order.
type PlaylistVideoItem struct {
	VideoID      uuid.UUID `json:"videoId"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	VideoURL     string    `json:"videoUrl"`
	ThumbnailURL string    `json:"thumbnailUrl"`
	Duration     float64   `json:"duration"`
	Views        int64     `json:"views"`
	IsPublished  bool      `json:"isPublished"`
	OwnerID      uuid.UUID `json:"ownerId"`
	CreatedAt    time.Time `json:"createdAt"`
}

// PlaylistView is a playlist enriched with its videos.
type PlaylistView struct {
	PlaylistID  uuid.UUID           `json:"playlistId"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	OwnerID     uuid.UUID           `json:"ownerId"`
	CreatedAt   time.Time           `json:"createdAt"`
	Videos      []PlaylistVideoItem `json:"videos"`
}
