package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/streamhive/streamhive-api/internal/logger"
	"github.com/streamhive/streamhive-api/internal/models"
	"github.com/streamhive/streamhive-api/internal/pagination"
)

func currentUser(user *models.UserDB) *models.CurrentUser {
	return &models.CurrentUser{
		UserID:     user.UserID,
		Username:   user.Username,
		Email:      user.Email,
		FullName:   user.FullName,
		Avatar:     user.Avatar,
		CoverImage: user.CoverImage,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}
}

// ProfileReader defines the enriched user reads the profile endpoints need.
type ProfileReader interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	GetChannelProfile(ctx context.Context, username string, viewerID *uuid.UUID) (*models.ChannelProfile, error)
	GetWatchHistory(ctx context.Context, userID uuid.UUID, limit, skip int) ([]models.WatchHistoryItem, error)
	CountWatchHistory(ctx context.Context, userID uuid.UUID) (int64, error)
}

// ProfileWriter defines the profile mutations.
type ProfileWriter interface {
	UpdateAccount(ctx context.Context, userID uuid.UUID, fullName, email string) error
	UpdateAvatar(ctx context.Context, userID uuid.UUID, avatar string) error
	UpdateCoverImage(ctx context.Context, userID uuid.UUID, coverImage string) error
}

// UserService handles the caller's own account and public channel profiles.
type UserService struct {
	reader ProfileReader
	writer ProfileWriter
	media  MediaUploader
}

// NewUserService creates a new UserService instance.
func NewUserService(reader ProfileReader, writer ProfileWriter, media MediaUploader) *UserService {
	return &UserService{
		reader: reader,
		writer: writer,
		media:  media,
	}
}

// CurrentUser returns the caller's own account.
func (svc *UserService) CurrentUser(ctx context.Context, userID uuid.UUID) (*models.CurrentUser, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, notFoundError("user")
	}
	return currentUser(user), nil
}

// UpdateAccount changes full name and email, then returns the fresh account.
func (svc *UserService) UpdateAccount(ctx context.Context, userID uuid.UUID, fullName, email string) (*models.CurrentUser, error) {
	if fullName == "" || email == "" {
		return nil, validationError("fullName and email are required")
	}

	if err := svc.writer.UpdateAccount(ctx, userID, fullName, email); err != nil {
		logger.Log.Errorw("failed to update account", "user_id", userID, "err", err)
		return nil, err
	}

	return svc.CurrentUser(ctx, userID)
}

// UpdateAvatar uploads the new avatar and stores its URL.
func (svc *UserService) UpdateAvatar(ctx context.Context, userID uuid.UUID, upload Upload) (*models.CurrentUser, error) {
	if upload.File == nil {
		return nil, validationError("avatar file is required")
	}

	asset, err := svc.media.Upload(ctx, upload.Filename, upload.File)
	if err != nil {
		logger.Log.Errorw("failed to upload avatar", "user_id", userID, "err", err)
		return nil, err
	}

	if err := svc.writer.UpdateAvatar(ctx, userID, asset.URL); err != nil {
		logger.Log.Errorw("failed to update avatar", "user_id", userID, "err", err)
		return nil, err
	}

	return svc.CurrentUser(ctx, userID)
}

// UpdateCoverImage uploads the new cover image and stores its URL.
func (svc *UserService) UpdateCoverImage(ctx context.Context, userID uuid.UUID, upload Upload) (*models.CurrentUser, error) {
	if upload.File == nil {
		return nil, validationError("cover image file is required")
	}

	asset, err := svc.media.Upload(ctx, upload.Filename, upload.File)
	if err != nil {
		logger.Log.Errorw("failed to upload cover image", "user_id", userID, "err", err)
		return nil, err
	}

	if err := svc.writer.UpdateCoverImage(ctx, userID, asset.URL); err != nil {
		logger.Log.Errorw("failed to update cover image", "user_id", userID, "err", err)
		return nil, err
	}

	return svc.CurrentUser(ctx, userID)
}

// ChannelProfile returns a channel page by username. A nil viewer is an
// anonymous caller: subscription state always reads false.
func (svc *UserService) ChannelProfile(ctx context.Context, username string, viewerID *uuid.UUID) (*models.ChannelProfile, error) {
	if username == "" {
		return nil, validationError("username is required")
	}

	profile, err := svc.reader.GetChannelProfile(ctx, username, viewerID)
	if err != nil {
		logger.Log.Errorw("failed to get channel profile", "username", username, "err", err)
		return nil, err
	}
	if profile == nil {
		return nil, notFoundError("channel")
	}
	return profile, nil
}

// WatchHistory returns one page of the caller's watched videos, most recent
// first.
func (svc *UserService) WatchHistory(ctx context.Context, userID uuid.UUID, p pagination.Params) ([]models.WatchHistoryItem, pagination.Meta, error) {
	items, err := svc.reader.GetWatchHistory(ctx, userID, p.Limit, p.Skip())
	if err != nil {
		logger.Log.Errorw("failed to get watch history", "user_id", userID, "err", err)
		return nil, pagination.Meta{}, err
	}

	total, err := svc.reader.CountWatchHistory(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to count watch history", "user_id", userID, "err", err)
		return nil, pagination.Meta{}, err
	}

	return items, pagination.MetaFor(p, total), nil
}
