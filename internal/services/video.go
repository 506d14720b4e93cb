package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/streamhive/streamhive-api/internal/logger"
	"github.com/streamhive/streamhive-api/internal/models"
	"github.com/streamhive/streamhive-api/internal/pagination"
	"github.com/streamhive/streamhive-api/internal/repositories"
)

// VideoReader defines read operations for videos.
type VideoReader interface {
	List(ctx context.Context, filter repositories.VideoListFilter) ([]models.VideoListItem, error)
	Count(ctx context.Context, filter repositories.VideoListFilter) (int64, error)
	GetByID(ctx context.Context, videoID uuid.UUID) (*models.VideoDB, error)
	GetDetail(ctx context.Context, videoID uuid.UUID, viewerID *uuid.UUID) (*models.VideoDetail, error)
}

// VideoWriter defines write operations for videos.
type VideoWriter interface {
	Save(ctx context.Context, ownerID uuid.UUID, title, description string, videoFile, thumbnail models.MediaAsset) (*models.VideoDB, error)
	Update(ctx context.Context, videoID uuid.UUID, title, description string, thumbnail *models.MediaAsset) (*models.VideoDB, error)
	Delete(ctx context.Context, videoID uuid.UUID) error
	SetPublished(ctx context.Context, videoID uuid.UUID, published bool) (*models.VideoDB, error)
	IncrementViews(ctx context.Context, videoID uuid.UUID) error
}

// HistoryToucher records a video fetch in the viewer's watch history.
type HistoryToucher interface {
	TouchWatchHistory(ctx context.Context, userID, videoID uuid.UUID) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// ViewEvent is published to Kafka on every video detail fetch.
type ViewEvent struct {
	VideoID  string  `json:"video_id"`
	ViewerID *string `json:"viewer_id,omitempty"`
	ViewedAt int64   `json:"viewed_at"`
}

// VideoService handles the video catalog: listing, detail enrichment, upload
// and the owner-only mutations.
type VideoService struct {
	reader      VideoReader
	writer      VideoWriter
	history     HistoryToucher
	media       MediaUploader
	kafkaWriter KafkaWriter
}

// NewVideoService creates a new VideoService.
func NewVideoService(
	reader VideoReader,
	writer VideoWriter,
	history HistoryToucher,
	media MediaUploader,
	kafkaWriter KafkaWriter,
) *VideoService {
	return &VideoService{
		reader:      reader,
		writer:      writer,
		history:     history,
		media:       media,
		kafkaWriter: kafkaWriter,
	}
}

// publishView publishes a view event to Kafka. Failures are logged and
// swallowed; the fetch itself never depends on the broker.
func (svc *VideoService) publishView(ctx context.Context, videoID uuid.UUID, viewerID *uuid.UUID) {
	if svc.kafkaWriter == nil {
		return
	}

	event := ViewEvent{
		VideoID:  videoID.String(),
		ViewedAt: time.Now().Unix(),
	}
	if viewerID != nil {
		s := viewerID.String()
		event.ViewerID = &s
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal view event", "video_id", videoID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.VideoID),
		Value: data,
	}
	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish view event", "video_id", videoID, "error", err)
	}
}

// List returns one page of published videos. The owner filter and the sort
// fields come straight from query parameters; unknown sort fields fall back
// to creation time inside the repository.
func (svc *VideoService) List(ctx context.Context, query, ownerID, sortBy, sortType string, p pagination.Params) ([]models.VideoListItem, pagination.Meta, error) {
	filter := repositories.VideoListFilter{
		Query:    query,
		SortBy:   sortBy,
		SortType: sortType,
		Limit:    p.Limit,
		Skip:     p.Skip(),
	}
	if ownerID != "" {
		id, err := parseID(ownerID, "userId")
		if err != nil {
			return nil, pagination.Meta{}, err
		}
		filter.OwnerID = &id
	}

	items, err := svc.reader.List(ctx, filter)
	if err != nil {
		logger.Log.Errorw("failed to list videos", "err", err)
		return nil, pagination.Meta{}, err
	}

	total, err := svc.reader.Count(ctx, filter)
	if err != nil {
		logger.Log.Errorw("failed to count videos", "err", err)
		return nil, pagination.Meta{}, err
	}

	return items, pagination.MetaFor(p, total), nil
}

// Detail returns the enriched single-video document. Every fetch counts as a
// view; authenticated fetches also land in the viewer's watch history.
func (svc *VideoService) Detail(ctx context.Context, videoID string, viewerID *uuid.UUID) (*models.VideoDetail, error) {
	id, err := parseID(videoID, "videoId")
	if err != nil {
		return nil, err
	}

	if err := svc.writer.IncrementViews(ctx, id); err != nil {
		logger.Log.Errorw("failed to increment views", "video_id", id, "err", err)
		return nil, err
	}

	detail, err := svc.reader.GetDetail(ctx, id, viewerID)
	if err != nil {
		logger.Log.Errorw("failed to get video detail", "video_id", id, "err", err)
		return nil, err
	}
	if detail == nil {
		return nil, notFoundError("video")
	}

	svc.publishView(ctx, id, viewerID)

	if viewerID != nil {
		if err := svc.history.TouchWatchHistory(ctx, *viewerID, id); err != nil {
			logger.Log.Errorw("failed to touch watch history", "video_id", id, "user_id", *viewerID, "err", err)
		}
	}

	return detail, nil
}

// Upload stores both files on the media host and creates the video row,
// unpublished. The video file goes first so a thumbnail failure cannot leave
// a row pointing at nothing.
func (svc *VideoService) Upload(ctx context.Context, ownerID uuid.UUID, title, description string, videoFile, thumbnail Upload) (*models.VideoDB, error) {
	if title == "" {
		return nil, validationError("title is required")
	}
	if videoFile.File == nil || thumbnail.File == nil {
		return nil, validationError("video file and thumbnail are required")
	}

	videoAsset, err := svc.media.Upload(ctx, videoFile.Filename, videoFile.File)
	if err != nil {
		logger.Log.Errorw("failed to upload video file", "err", err)
		return nil, err
	}

	thumbAsset, err := svc.media.Upload(ctx, thumbnail.Filename, thumbnail.File)
	if err != nil {
		logger.Log.Errorw("failed to upload thumbnail", "err", err)
		return nil, err
	}

	video, err := svc.writer.Save(ctx, ownerID, title, description, *videoAsset, *thumbAsset)
	if err != nil {
		logger.Log.Errorw("failed to save video", "err", err)
		return nil, err
	}
	return video, nil
}

// Update changes title, description and optionally the thumbnail. Owner only.
func (svc *VideoService) Update(ctx context.Context, principal uuid.UUID, videoID, title, description string, thumbnail *Upload) (*models.VideoDB, error) {
	id, err := parseID(videoID, "videoId")
	if err != nil {
		return nil, err
	}
	if title == "" {
		return nil, validationError("title is required")
	}

	video, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get video", "video_id", id, "err", err)
		return nil, err
	}
	if video == nil {
		return nil, notFoundError("video")
	}
	if err := checkOwnership(video.OwnerID, principal, "update this video"); err != nil {
		return nil, err
	}

	var thumbAsset *models.MediaAsset
	if thumbnail != nil && thumbnail.File != nil {
		thumbAsset, err = svc.media.Upload(ctx, thumbnail.Filename, thumbnail.File)
		if err != nil {
			logger.Log.Errorw("failed to upload thumbnail", "err", err)
			return nil, err
		}
	}

	updated, err := svc.writer.Update(ctx, id, title, description, thumbAsset)
	if err != nil {
		logger.Log.Errorw("failed to update video", "video_id", id, "err", err)
		return nil, err
	}
	if updated == nil {
		return nil, notFoundError("video")
	}

	if thumbAsset != nil && video.ThumbnailPublicID != "" {
		if err := svc.media.Delete(ctx, video.ThumbnailPublicID); err != nil {
			logger.Log.Warnw("failed to delete old thumbnail", "public_id", video.ThumbnailPublicID, "err", err)
		}
	}

	return updated, nil
}

// Delete removes a video and, best effort, its media assets. Owner only.
func (svc *VideoService) Delete(ctx context.Context, principal uuid.UUID, videoID string) error {
	id, err := parseID(videoID, "videoId")
	if err != nil {
		return err
	}

	video, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get video", "video_id", id, "err", err)
		return err
	}
	if video == nil {
		return notFoundError("video")
	}
	if err := checkOwnership(video.OwnerID, principal, "delete this video"); err != nil {
		return err
	}

	if err := svc.writer.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete video", "video_id", id, "err", err)
		return err
	}

	for _, publicID := range []string{video.VideoPublicID, video.ThumbnailPublicID} {
		if publicID == "" {
			continue
		}
		if err := svc.media.Delete(ctx, publicID); err != nil {
			logger.Log.Warnw("failed to delete media asset", "public_id", publicID, "err", err)
		}
	}

	return nil
}

// TogglePublish flips the publication flag. Owner only.
func (svc *VideoService) TogglePublish(ctx context.Context, principal uuid.UUID, videoID string) (*models.VideoDB, error) {
	id, err := parseID(videoID, "videoId")
	if err != nil {
		return nil, err
	}

	video, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get video", "video_id", id, "err", err)
		return nil, err
	}
	if video == nil {
		return nil, notFoundError("video")
	}
	if err := checkOwnership(video.OwnerID, principal, "publish this video"); err != nil {
		return nil, err
	}

	updated, err := svc.writer.SetPublished(ctx, id, !video.IsPublished)
	if err != nil {
		logger.Log.Errorw("failed to toggle publish", "video_id", id, "err", err)
		return nil, err
	}
	if updated == nil {
		return nil, notFoundError("video")
	}
	return updated, nil
}
