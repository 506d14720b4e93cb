package models

import (
	"time"

	"github.com/google/uuid"
)

// LikeDB maps a row of the likes table. Exactly one of VideoID, CommentID,
// TweetID is set; the table enforces this with a CHECK constraint and one
// unique compound index per target kind.
type LikeDB struct {
	LikeID    uuid.UUID  `db:"like_id"`
	VideoID   *uuid.UUID `db:"video_id"`
	CommentID *uuid.UUID `db:"comment_id"`
	TweetID   *uuid.UUID `db:"tweet_id"`
	LikedBy   uuid.UUID  `db:"liked_by"`
	CreatedAt time.Time  `db:"created_at"`
}

// LikeTarget names the entity kind a like attaches to.
type LikeTarget string

const (
	LikeTargetVideo   LikeTarget = "video"
	LikeTargetComment LikeTarget = "comment"
	LikeTargetTweet   LikeTarget = "tweet"
)

// LikedVideoItem is one entry of the caller's liked-videos listing.
type LikedVideoItem struct {
	VideoID      uuid.UUID   `json:"videoId"`
	Title        string      `json:"title"`
	ThumbnailURL string      `json:"thumbnailUrl"`
	Duration     float64     `json:"duration"`
	Views        int64       `json:"views"`
	LikedAt      time.Time   `json:"likedAt"`
	OwnerDetails UserProfile `json:"ownerDetails"`
}
