package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/streamhive/streamhive-api/internal/logger"
	"github.com/streamhive/streamhive-api/internal/models"
	"github.com/streamhive/streamhive-api/internal/pagination"
)

// PlaylistReader defines read operations for playlists.
type PlaylistReader interface {
	GetByID(ctx context.Context, playlistID uuid.UUID) (*models.PlaylistDB, error)
	GetVideos(ctx context.Context, playlistID uuid.UUID, limit, skip int) ([]models.PlaylistVideoItem, error)
	CountVideos(ctx context.Context, playlistID uuid.UUID) (int64, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, skip int) ([]models.PlaylistDB, error)
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)
}

// PlaylistWriter defines write operations for playlists.
type PlaylistWriter interface {
	Save(ctx context.Context, ownerID uuid.UUID, name, description string) (*models.PlaylistDB, error)
	Update(ctx context.Context, playlistID uuid.UUID, name, description string) (*models.PlaylistDB, error)
	Delete(ctx context.Context, playlistID uuid.UUID) error
	AddVideo(ctx context.Context, playlistID, videoID uuid.UUID) error
	RemoveVideo(ctx context.Context, playlistID, videoID uuid.UUID) (bool, error)
}

// PlaylistService handles playlists and their membership.
type PlaylistService struct {
	reader PlaylistReader
	writer PlaylistWriter
	videos VideoGetter
}

// NewPlaylistService creates a new PlaylistService.
func NewPlaylistService(reader PlaylistReader, writer PlaylistWriter, videos VideoGetter) *PlaylistService {
	return &PlaylistService{
		reader: reader,
		writer: writer,
		videos: videos,
	}
}

// ListByUser returns one page of a user's playlists, newest first.
func (svc *PlaylistService) ListByUser(ctx context.Context, userID string, p pagination.Params) ([]models.PlaylistDB, pagination.Meta, error) {
	id, err := parseID(userID, "userId")
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	playlists, err := svc.reader.ListByOwner(ctx, id, p.Limit, p.Skip())
	if err != nil {
		logger.Log.Errorw("failed to list playlists", "user_id", id, "err", err)
		return nil, pagination.Meta{}, err
	}

	total, err := svc.reader.CountByOwner(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to count playlists", "user_id", id, "err", err)
		return nil, pagination.Meta{}, err
	}

	return playlists, pagination.MetaFor(p, total), nil
}

// Get returns one playlist with one page of its videos in insertion order.
func (svc *PlaylistService) Get(ctx context.Context, playlistID string, p pagination.Params) (*models.PlaylistView, pagination.Meta, error) {
	id, err := parseID(playlistID, "playlistId")
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	playlist, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get playlist", "playlist_id", id, "err", err)
		return nil, pagination.Meta{}, err
	}
	if playlist == nil {
		return nil, pagination.Meta{}, notFoundError("playlist")
	}

	videos, err := svc.reader.GetVideos(ctx, id, p.Limit, p.Skip())
	if err != nil {
		logger.Log.Errorw("failed to get playlist videos", "playlist_id", id, "err", err)
		return nil, pagination.Meta{}, err
	}

	total, err := svc.reader.CountVideos(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to count playlist videos", "playlist_id", id, "err", err)
		return nil, pagination.Meta{}, err
	}

	view := &models.PlaylistView{
		PlaylistID:  playlist.PlaylistID,
		Name:        playlist.Name,
		Description: playlist.Description,
		OwnerID:     playlist.OwnerID,
		CreatedAt:   playlist.CreatedAt,
		Videos:      videos,
	}
	return view, pagination.MetaFor(p, total), nil
}

// Create makes a new empty playlist owned by the caller.
func (svc *PlaylistService) Create(ctx context.Context, principal uuid.UUID, name, description string) (*models.PlaylistDB, error) {
	if name == "" {
		return nil, validationError("name is required")
	}

	playlist, err := svc.writer.Save(ctx, principal, name, description)
	if err != nil {
		logger.Log.Errorw("failed to save playlist", "err", err)
		return nil, err
	}
	return playlist, nil
}

// requireOwned loads a playlist and checks the caller owns it.
func (svc *PlaylistService) requireOwned(ctx context.Context, playlistID uuid.UUID, principal uuid.UUID, action string) (*models.PlaylistDB, error) {
	playlist, err := svc.reader.GetByID(ctx, playlistID)
	if err != nil {
		logger.Log.Errorw("failed to get playlist", "playlist_id", playlistID, "err", err)
		return nil, err
	}
	if playlist == nil {
		return nil, notFoundError("playlist")
	}
	if err := checkOwnership(playlist.OwnerID, principal, action); err != nil {
		return nil, err
	}
	return playlist, nil
}

// Update changes name and description. Owner only.
func (svc *PlaylistService) Update(ctx context.Context, principal uuid.UUID, playlistID, name, description string) (*models.PlaylistDB, error) {
	id, err := parseID(playlistID, "playlistId")
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, validationError("name is required")
	}
	if _, err := svc.requireOwned(ctx, id, principal, "update this playlist"); err != nil {
		return nil, err
	}

	updated, err := svc.writer.Update(ctx, id, name, description)
	if err != nil {
		logger.Log.Errorw("failed to update playlist", "playlist_id", id, "err", err)
		return nil, err
	}
	if updated == nil {
		return nil, notFoundError("playlist")
	}
	return updated, nil
}

// Delete removes a playlist. Owner only.
func (svc *PlaylistService) Delete(ctx context.Context, principal uuid.UUID, playlistID string) error {
	id, err := parseID(playlistID, "playlistId")
	if err != nil {
		return err
	}
	if _, err := svc.requireOwned(ctx, id, principal, "delete this playlist"); err != nil {
		return err
	}

	if err := svc.writer.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete playlist", "playlist_id", id, "err", err)
		return err
	}
	return nil
}

// AddVideo appends an existing video to the playlist. Adding a video that is
// already a member is a no-op. Owner only.
func (svc *PlaylistService) AddVideo(ctx context.Context, principal uuid.UUID, playlistID, videoID string) error {
	pID, err := parseID(playlistID, "playlistId")
	if err != nil {
		return err
	}
	vID, err := parseID(videoID, "videoId")
	if err != nil {
		return err
	}
	if _, err := svc.requireOwned(ctx, pID, principal, "modify this playlist"); err != nil {
		return err
	}

	video, err := svc.videos.GetByID(ctx, vID)
	if err != nil {
		logger.Log.Errorw("failed to get video", "video_id", vID, "err", err)
		return err
	}
	if video == nil {
		return notFoundError("video")
	}

	if err := svc.writer.AddVideo(ctx, pID, vID); err != nil {
		logger.Log.Errorw("failed to add playlist video", "playlist_id", pID, "video_id", vID, "err", err)
		return err
	}
	return nil
}

// RemoveVideo drops a video from the playlist. Owner only.
func (svc *PlaylistService) RemoveVideo(ctx context.Context, principal uuid.UUID, playlistID, videoID string) error {
	pID, err := parseID(playlistID, "playlistId")
	if err != nil {
		return err
	}
	vID, err := parseID(videoID, "videoId")
	if err != nil {
		return err
	}
	if _, err := svc.requireOwned(ctx, pID, principal, "modify this playlist"); err != nil {
		return err
	}

	removed, err := svc.writer.RemoveVideo(ctx, pID, vID)
	if err != nil {
		logger.Log.Errorw("failed to remove playlist video", "playlist_id", pID, "video_id", vID, "err", err)
		return err
	}
	if !removed {
		return notFoundError("video in playlist")
	}
	return nil
}
