package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/streamhive/streamhive-api/internal/models"
	"github.com/streamhive/streamhive-api/internal/pagination"
	"github.com/streamhive/streamhive-api/internal/services"
)

// AccountReader defines the interface that the service must implement.
type AccountReader interface {
	CurrentUser(ctx context.Context, userID uuid.UUID) (*models.CurrentUser, error)
}

// NewCurrentUserHandler returns an HTTP handler for the caller's account.
// @Summary Get the current user
// @Tags users
// @Produce json
// @Success 200 {object} models.APIResponse "Current user"
// @Failure 401 {object} models.APIErrorResponse "Unauthenticated"
// @Router /users/current-user [get]
// @Security BearerAuth
func NewCurrentUserHandler(svc AccountReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := principal(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		user, err := svc.CurrentUser(r.Context(), userID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeData(w, http.StatusOK, user, "Current user fetched successfully")
	}
}

// AccountUpdater defines the interface that the service must implement.
type AccountUpdater interface {
	UpdateAccount(ctx context.Context, userID uuid.UUID, fullName, email string) (*models.CurrentUser, error)
}

// UpdateAccountRequest represents the JSON body for account updates
// swagger:model UpdateAccountRequest
type UpdateAccountRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// NewUpdateAccountHandler returns an HTTP handler for account updates.
// @Summary Update account details
// @Tags users
// @Accept json
// @Produce json
// @Param updateAccountRequest body handlers.UpdateAccountRequest true "New full name and email"
// @Success 200 {object} models.APIResponse "Account updated"
// @Failure 400 {object} models.APIErrorResponse "Validation failed"
// @Router /users/update-account [patch]
// @Security BearerAuth
func NewUpdateAccountHandler(svc AccountUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := principal(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		var req UpdateAccountRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, services.ErrValidation)
			return
		}

		user, err := svc.UpdateAccount(r.Context(), userID, req.FullName, req.Email)
		if err != nil {
			writeError(w, err)
			return
		}

		writeData(w, http.StatusOK, user, "Account updated successfully")
	}
}

// AvatarUpdater defines the interface that the service must implement.
type AvatarUpdater interface {
	UpdateAvatar(ctx context.Context, userID uuid.UUID, upload services.Upload) (*models.CurrentUser, error)
}

// NewUpdateAvatarHandler returns an HTTP handler for avatar replacement.
// @Summary Update avatar
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Param avatar formData file true "New avatar image"
// @Success 200 {object} models.APIResponse "Avatar updated"
// @Failure 400 {object} models.APIErrorResponse "Missing file"
// @Router /users/avatar [patch]
// @Security BearerAuth
func NewUpdateAvatarHandler(svc AvatarUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := principal(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			writeError(w, services.ErrValidation)
			return
		}

		upload := formUpload(r, "avatar")
		if upload == nil {
			writeError(w, services.ErrValidation)
			return
		}

		user, err := svc.UpdateAvatar(r.Context(), userID, *upload)
		if err != nil {
			writeError(w, err)
			return
		}

		writeData(w, http.StatusOK, user, "Avatar updated successfully")
	}
}

// CoverImageUpdater defines the interface that the service must implement.
type CoverImageUpdater interface {
	UpdateCoverImage(ctx context.Context, userID uuid.UUID, upload services.Upload) (*models.CurrentUser, error)
}

// NewUpdateCoverImageHandler returns an HTTP handler for cover replacement.
// @Summary Update cover image
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Param coverImage formData file true "New cover image"
// @Success 200 {object} models.APIResponse "Cover image updated"
// @Failure 400 {object} models.APIErrorResponse "Missing file"
// @Router /users/cover-image [patch]
// @Security BearerAuth
func NewUpdateCoverImageHandler(svc CoverImageUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := principal(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			writeError(w, services.ErrValidation)
			return
		}

		upload := formUpload(r, "coverImage")
		if upload == nil {
			writeError(w, services.ErrValidation)
			return
		}

		user, err := svc.UpdateCoverImage(r.Context(), userID, *upload)
		if err != nil {
			writeError(w, err)
			return
		}

		writeData(w, http.StatusOK, user, "Cover image updated successfully")
	}
}

// ChannelProfileReader defines the interface that the service must implement.
type ChannelProfileReader interface {
	ChannelProfile(ctx context.Context, username string, viewerID *uuid.UUID) (*models.ChannelProfile, error)
}

// NewChannelDetailsHandler returns an HTTP handler for public channel pages.
// @Summary Get channel details
// @Description Returns the channel profile with subscriber counts. isSubscribed reflects the caller when authenticated.
// @Tags users
// @Produce json
// @Param username path string true "Channel username"
// @Success 200 {object} models.APIResponse "Channel details"
// @Failure 404 {object} models.APIErrorResponse "Channel not found"
// @Router /users/channel-details/{username} [get]
func NewChannelDetailsHandler(svc ChannelProfileReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := svc.ChannelProfile(r.Context(), chi.URLParam(r, "username"), viewer(r.Context()))
		if err != nil {
			writeError(w, err)
			return
		}

		writeData(w, http.StatusOK, profile, "Channel details fetched successfully")
	}
}

// WatchHistoryReader defines the interface that the service must implement.
type WatchHistoryReader interface {
	WatchHistory(ctx context.Context, userID uuid.UUID, p pagination.Params) ([]models.WatchHistoryItem, pagination.Meta, error)
}

// NewWatchHistoryHandler returns an HTTP handler for the caller's history.
// @Summary Get watch history
// @Description Returns the caller's watched videos, most recent first.
// @Tags users
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} models.APIResponse "Watch history page"
// @Failure 401 {object} models.APIErrorResponse "Unauthenticated"
// @Router /users/watch-history [get]
// @Security BearerAuth
func NewWatchHistoryHandler(svc WatchHistoryReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := principal(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		items, meta, err := svc.WatchHistory(r.Context(), userID, pageParams(r))
		if err != nil {
			writeError(w, err)
			return
		}

		writeData(w, http.StatusOK, paginated{Items: items, Meta: meta}, "Watch history fetched successfully")
	}
}
