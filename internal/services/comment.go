package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/streamhive/streamhive-api/internal/logger"
	"github.com/streamhive/streamhive-api/internal/models"
	"github.com/streamhive/streamhive-api/internal/pagination"
)

// VideoGetter is the existence check other entities anchor on.
type VideoGetter interface {
	GetByID(ctx context.Context, videoID uuid.UUID) (*models.VideoDB, error)
}

// CommentReader defines read operations for comments.
type CommentReader interface {
	GetByID(ctx context.Context, commentID uuid.UUID) (*models.CommentDB, error)
	ListByVideo(ctx context.Context, videoID uuid.UUID, limit, skip int) ([]models.CommentView, error)
	CountByVideo(ctx context.Context, videoID uuid.UUID) (int64, error)
}

// CommentWriter defines write operations for comments.
type CommentWriter interface {
	Save(ctx context.Context, videoID, ownerID uuid.UUID, content string) (*models.CommentDB, error)
	Update(ctx context.Context, commentID uuid.UUID, content string) (*models.CommentDB, error)
	Delete(ctx context.Context, commentID uuid.UUID) error
}

// CommentService handles the comment lifecycle under a video.
type CommentService struct {
	reader CommentReader
	writer CommentWriter
	videos VideoGetter
}

// NewCommentService creates a new CommentService.
func NewCommentService(reader CommentReader, writer CommentWriter, videos VideoGetter) *CommentService {
	return &CommentService{
		reader: reader,
		writer: writer,
		videos: videos,
	}
}

func (svc *CommentService) requireVideo(ctx context.Context, videoID uuid.UUID) error {
	video, err := svc.videos.GetByID(ctx, videoID)
	if err != nil {
		logger.Log.Errorw("failed to get video", "video_id", videoID, "err", err)
		return err
	}
	if video == nil {
		return notFoundError("video")
	}
	return nil
}

// ListByVideo returns one page of a video's comments, newest first.
func (svc *CommentService) ListByVideo(ctx context.Context, videoID string, p pagination.Params) ([]models.CommentView, pagination.Meta, error) {
	id, err := parseID(videoID, "videoId")
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	if err := svc.requireVideo(ctx, id); err != nil {
		return nil, pagination.Meta{}, err
	}

	comments, err := svc.reader.ListByVideo(ctx, id, p.Limit, p.Skip())
	if err != nil {
		logger.Log.Errorw("failed to list comments", "video_id", id, "err", err)
		return nil, pagination.Meta{}, err
	}

	total, err := svc.reader.CountByVideo(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to count comments", "video_id", id, "err", err)
		return nil, pagination.Meta{}, err
	}

	return comments, pagination.MetaFor(p, total), nil
}

// Add creates a comment under an existing video.
func (svc *CommentService) Add(ctx context.Context, principal uuid.UUID, videoID, content string) (*models.CommentDB, error) {
	id, err := parseID(videoID, "videoId")
	if err != nil {
		return nil, err
	}
	if content == "" {
		return nil, validationError("content is required")
	}
	if err := svc.requireVideo(ctx, id); err != nil {
		return nil, err
	}

	comment, err := svc.writer.Save(ctx, id, principal, content)
	if err != nil {
		logger.Log.Errorw("failed to save comment", "video_id", id, "err", err)
		return nil, err
	}
	return comment, nil
}

// Update replaces a comment's content. Owner only.
func (svc *CommentService) Update(ctx context.Context, principal uuid.UUID, commentID, content string) (*models.CommentDB, error) {
	id, err := parseID(commentID, "commentId")
	if err != nil {
		return nil, err
	}
	if content == "" {
		return nil, validationError("content is required")
	}

	comment, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get comment", "comment_id", id, "err", err)
		return nil, err
	}
	if comment == nil {
		return nil, notFoundError("comment")
	}
	if err := checkOwnership(comment.OwnerID, principal, "update this comment"); err != nil {
		return nil, err
	}

	updated, err := svc.writer.Update(ctx, id, content)
	if err != nil {
		logger.Log.Errorw("failed to update comment", "comment_id", id, "err", err)
		return nil, err
	}
	if updated == nil {
		return nil, notFoundError("comment")
	}
	return updated, nil
}

// Delete removes a comment. Owner only.
func (svc *CommentService) Delete(ctx context.Context, principal uuid.UUID, commentID string) error {
	id, err := parseID(commentID, "commentId")
	if err != nil {
		return err
	}

	comment, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get comment", "comment_id", id, "err", err)
		return err
	}
	if comment == nil {
		return notFoundError("comment")
	}
	if err := checkOwnership(comment.OwnerID, principal, "delete this comment"); err != nil {
		return err
	}

	if err := svc.writer.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete comment", "comment_id", id, "err", err)
		return err
	}
	return nil
}
