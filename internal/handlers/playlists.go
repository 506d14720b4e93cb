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

// PlaylistLister defines the interface that the service must implement.
type PlaylistLister interface {
	ListByUser(ctx context.Context, userID string, p pagination.Params) ([]models.PlaylistDB, pagination.Meta, error)
}

// NewListPlaylistsHandler returns an HTTP handler for a user's playlists.
// @Summary List a user's playlists
// @Tags playlists
// @Produce json
// @Param userId path string true "Owner identifier"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} models.APIResponse "Playlists page"
// @Failure 400 {object} models.APIErrorResponse "Invalid identifier"
// @Router /playlists/user/{userId} [get]
func NewListPlaylistsHandler(svc PlaylistLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playlists, meta, err := svc.ListByUser(r.Context(), chi.URLParam(r, "userId"), pageParams(r))
		if err != nil {
			writeError(w, err)
			return
		}

		writeData(w, http.StatusOK, paginated{Items: playlists, Meta: meta}, "Playlists fetched successfully")
	}
}

// PlaylistGetter defines the interface that the service must implement.
type PlaylistGetter interface {
	Get(ctx context.Context, playlistID string, p pagination.Params) (*models.PlaylistView, pagination.Meta, error)
}

// NewGetPlaylistHandler returns an HTTP handler for a single playlist.
// @Summary Get a playlist
// @Description Returns the playlist with one page of its videos in insertion order.
// @Tags playlists
// @Produce json
// @Param playlistId path string true "Playlist identifier"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} models.APIResponse "Playlist with videos"
// @Failure 404 {object} models.APIErrorResponse "Playlist not found"
// @Router /playlists/{playlistId} [get]
func NewGetPlaylistHandler(svc PlaylistGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, meta, err := svc.Get(r.Context(), chi.URLParam(r, "playlistId"), pageParams(r))
		if err != nil {
			writeError(w, err)
			return
		}

		writeData(w, http.StatusOK, paginated{Items: view, Meta: meta}, "Playlist fetched successfully")
	}
}

// PlaylistCreator defines the interface that the service must implement.
type PlaylistCreator interface {
	Create(ctx context.Context, principal uuid.UUID, name, description string) (*models.PlaylistDB, error)
}

// PlaylistRequest represents the JSON body for playlist creation and update
// swagger:model PlaylistRequest
type PlaylistRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// NewCreatePlaylistHandler returns an HTTP handler for playlist creation.
// @Summary Create a playlist
// @Tags playlists
// @Accept json
// @Produce json
// @Param playlistRequest body handlers.PlaylistRequest true "Name and description"
// @Success 201 {object} models.APIResponse "Playlist created"
// @Failure 400 {object} models.APIErrorResponse "Validation failed"
// @Router /playlists [post]
// @Security BearerAuth
func NewCreatePlaylistHandler(svc PlaylistCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := principal(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		var req PlaylistRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, services.ErrValidation)
			return
		}

		playlist, err := svc.Create(r.Context(), userID, req.Name, req.Description)
		if err != nil {
			writeError(w, err)
			return
		}

		writeData(w, http.StatusCreated, playlist, "Playlist created successfully")
	}
}

// PlaylistUpdater defines the interface that the service must implement.
type PlaylistUpdater interface {
	Update(ctx context.Context, principal uuid.UUID, playlistID, name, description string) (*models.PlaylistDB, error)
}

// NewUpdatePlaylistHandler returns an HTTP handler for playlist updates.
// @Summary Update a playlist
// @Tags playlists
// @Accept json
// @Produce json
// @Param playlistId path string true "Playlist identifier"
// @Param playlistRequest body handlers.PlaylistRequest true "New name and description"
// @Success 200 {object} models.APIResponse "Playlist updated"
// @Failure 403 {object} models.APIErrorResponse "Not the owner"
// @Failure 404 {object} models.APIErrorResponse "Playlist not found"
// @Router /playlists/{playlistId} [patch]
// @Security BearerAuth
func NewUpdatePlaylistHandler(svc PlaylistUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := principal(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		var req PlaylistRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, services.ErrValidation)
			return
		}

		playlist, err := svc.Update(r.Context(), userID, chi.URLParam(r, "playlistId"), req.Name, req.Description)
		if err != nil {
			writeError(w, err)
			return
		}

		writeData(w, http.StatusOK, playlist, "Playlist updated successfully")
	}
}

// PlaylistDeleter defines the interface that the service must implement.
type PlaylistDeleter interface {
	Delete(ctx context.Context, principal uuid.UUID, playlistID string) error
}

// NewDeletePlaylistHandler returns an HTTP handler for playlist deletion.
// @Summary Delete a playlist
// @Tags playlists
// @Produce json
// @Param playlistId path string true "Playlist identifier"
// @Success 200 {object} models.APIResponse "Playlist deleted"
// @Failure 403 {object} models.APIErrorResponse "Not the owner"
// @Failure 404 {object} models.APIErrorResponse "Playlist not found"
// @Router /playlists/{playlistId} [delete]
// @Security BearerAuth
func NewDeletePlaylistHandler(svc PlaylistDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := principal(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		if err := svc.Delete(r.Context(), userID, chi.URLParam(r, "playlistId")); err != nil {
			writeError(w, err)
			return
		}

		writeData(w, http.StatusOK, nil, "Playlist deleted successfully")
	}
}

// PlaylistVideoEditor defines the interface that the service must implement.
type PlaylistVideoEditor interface {
	AddVideo(ctx context.Context, principal uuid.UUID, playlistID, videoID string) error
	RemoveVideo(ctx context.Context, principal uuid.UUID, playlistID, videoID string) error
}

// NewAddPlaylistVideoHandler returns an HTTP handler for adding a video.
// @Summary Add a video to a playlist
// @Description Appends the video to the playlist; adding an existing member is a no-op.
// @Tags playlists
// @Produce json
// @Param playlistId path string true "Playlist identifier"
// @Param videoId path string true "Video identifier"
// @Success 200 {object} models.APIResponse "Video added"
// @Failure 403 {object} models.APIErrorResponse "Not the owner"
// @Failure 404 {object} models.APIErrorResponse "Playlist or video not found"
// @Router /playlists/{playlistId}/videos/{videoId} [patch]
// @Security BearerAuth
func NewAddPlaylistVideoHandler(svc PlaylistVideoEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := principal(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		if err := svc.AddVideo(r.Context(), userID, chi.URLParam(r, "playlistId"), chi.URLParam(r, "videoId")); err != nil {
			writeError(w, err)
			return
		}

		writeData(w, http.StatusOK, nil, "Video added to playlist successfully")
	}
}

// NewRemovePlaylistVideoHandler returns an HTTP handler for removing a video.
// @Summary Remove a video from a playlist
// @Tags playlists
// @Produce json
// @Param playlistId path string true "Playlist identifier"
// @Param videoId path string true "Video identifier"
// @Success 200 {object} models.APIResponse "Video removed"
// @Failure 403 {object} models.APIErrorResponse "Not the owner"
// @Failure 404 {object} models.APIErrorResponse "Playlist or membership not found"
// @Router /playlists/{playlistId}/videos/{videoId} [delete]
// @Security BearerAuth
func NewRemovePlaylistVideoHandler(svc PlaylistVideoEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := principal(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		if err := svc.RemoveVideo(r.Context(), userID, chi.URLParam(r, "playlistId"), chi.URLParam(r, "videoId")); err != nil {
			writeError(w, err)
			return
		}

		writeData(w, http.StatusOK, nil, "Video removed from playlist successfully")
	}
}
