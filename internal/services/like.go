package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/streamhive/streamhive-api/internal/logger"
	"github.com/streamhive/streamhive-api/internal/models"
	"github.com/streamhive/streamhive-api/internal/pagination"
)

// CommentGetter checks comment existence for like targets.
type CommentGetter interface {
	GetByID(ctx context.Context, commentID uuid.UUID) (*models.CommentDB, error)
}

// TweetGetter checks tweet existence for like targets.
type TweetGetter interface {
	GetByID(ctx context.Context, tweetID uuid.UUID) (*models.TweetDB, error)
}

// LikeReader defines read operations for likes.
type LikeReader interface {
	Exists(ctx context.Context, target models.LikeTarget, targetID, userID uuid.UUID) (bool, error)
	ListLikedVideos(ctx context.Context, userID uuid.UUID, limit, skip int) ([]models.LikedVideoItem, error)
	CountLikedVideos(ctx context.Context, userID uuid.UUID) (int64, error)
}

// LikeWriter defines write operations for likes.
type LikeWriter interface {
	Save(ctx context.Context, target models.LikeTarget, targetID, userID uuid.UUID) (bool, error)
	Delete(ctx context.Context, target models.LikeTarget, targetID, userID uuid.UUID) (bool, error)
}

// LikeService handles like toggles across videos, comments and tweets.
type LikeService struct {
	reader   LikeReader
	writer   LikeWriter
	videos   VideoGetter
	comments CommentGetter
	tweets   TweetGetter
}

// NewLikeService creates a new LikeService.
func NewLikeService(reader LikeReader, writer LikeWriter, videos VideoGetter, comments CommentGetter, tweets TweetGetter) *LikeService {
	return &LikeService{
		reader:   reader,
		writer:   writer,
		videos:   videos,
		comments: comments,
		tweets:   tweets,
	}
}

// toggle flips the like state for one (user, target) pair and returns the
// resulting state. A lost insert race still means the pair ends up liked.
func (svc *LikeService) toggle(ctx context.Context, target models.LikeTarget, targetID, userID uuid.UUID) (bool, error) {
	exists, err := svc.reader.Exists(ctx, target, targetID, userID)
	if err != nil {
		logger.Log.Errorw("failed to check like", "target", target, "target_id", targetID, "err", err)
		return false, err
	}

	if exists {
		if _, err := svc.writer.Delete(ctx, target, targetID, userID); err != nil {
			logger.Log.Errorw("failed to remove like", "target", target, "target_id", targetID, "err", err)
			return false, err
		}
		return false, nil
	}

	if _, err := svc.writer.Save(ctx, target, targetID, userID); err != nil {
		logger.Log.Errorw("failed to save like", "target", target, "target_id", targetID, "err", err)
		return false, err
	}
	return true, nil
}

// ToggleVideoLike toggles the caller's like on a video and returns whether it
// is now liked.
func (svc *LikeService) ToggleVideoLike(ctx context.Context, principal uuid.UUID, videoID string) (bool, error) {
	id, err := parseID(videoID, "videoId")
	if err != nil {
		return false, err
	}

	video, err := svc.videos.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if video == nil {
		return false, notFoundError("video")
	}

	return svc.toggle(ctx, models.LikeTargetVideo, id, principal)
}

// ToggleCommentLike toggles the caller's like on a comment.
func (svc *LikeService) ToggleCommentLike(ctx context.Context, principal uuid.UUID, commentID string) (bool, error) {
	id, err := parseID(commentID, "commentId")
	if err != nil {
		return false, err
	}

	comment, err := svc.comments.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if comment == nil {
		return false, notFoundError("comment")
	}

	return svc.toggle(ctx, models.LikeTargetComment, id, principal)
}

// ToggleTweetLike toggles the caller's like on a tweet.
func (svc *LikeService) ToggleTweetLike(ctx context.Context, principal uuid.UUID, tweetID string) (bool, error) {
	id, err := parseID(tweetID, "tweetId")
	if err != nil {
		return false, err
	}

	tweet, err := svc.tweets.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if tweet == nil {
		return false, notFoundError("tweet")
	}

	return svc.toggle(ctx, models.LikeTargetTweet, id, principal)
}

// LikedVideos returns one page of the caller's liked videos, most recently
// liked first.
func (svc *LikeService) LikedVideos(ctx context.Context, principal uuid.UUID, p pagination.Params) ([]models.LikedVideoItem, pagination.Meta, error) {
	items, err := svc.reader.ListLikedVideos(ctx, principal, p.Limit, p.Skip())
	if err != nil {
		logger.Log.Errorw("failed to list liked videos", "user_id", principal, "err", err)
		return nil, pagination.Meta{}, err
	}

	total, err := svc.reader.CountLikedVideos(ctx, principal)
	if err != nil {
		logger.Log.Errorw("failed to count liked videos", "user_id", principal, "err", err)
		return nil, pagination.Meta{}, err
	}

	return items, pagination.MetaFor(p, total), nil
}
