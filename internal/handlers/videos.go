package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/streamhive/streamhive-api/internal/models"
	"github.com/streamhive/streamhive-api/internal/pagination"
	"github.com/streamhive/streamhive-api/internal/services"
)

// VideoLister defines the interface that the service must implement.
type VideoLister interface {
	List(ctx context.Context, query, ownerID, sortBy, sortType string, p pagination.Params) ([]models.VideoListItem, pagination.Meta, error)
}

// NewListVideosHandler returns an HTTP handler for the public video listing.
// @Summary List published videos
// @Description Returns one page of published videos, optionally filtered by search text and owner.
// @Tags videos
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param query query string false "Search text over title and description"
// @Param userId query string false "Filter by owner"
// @Param sortBy query string false "Sort field: createdAt, views, duration, title"
// @Param sortType query string false "asc or desc"
// @Success 200 {object} models.APIResponse "Videos page"
// @Failure 400 {object} models.APIErrorResponse "Invalid identifier"
// @Router /videos [get]
func NewListVideosHandler(svc VideoLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		items, meta, err := svc.List(r.Context(), q.Get("query"), q.Get("userId"),
			q.Get("sortBy"), q.Get("sortType"), pageParams(r))
		if err != nil {
			writeError(w, err)
			return
		}

		writeData(w, http.StatusOK, paginated{Items: items, Meta: meta}, "Videos fetched successfully")
	}
}

// VideoDetailer defines the interface that the service must implement.
type VideoDetailer interface {
	Detail(ctx context.Context, videoID string, viewerID *uuid.UUID) (*models.VideoDetail, error)
}

// NewGetVideoHandler returns an HTTP handler for the single-video page.
// @Summary Get a video
// @Description Returns the enriched video document. Each fetch counts as a view; authenticated fetches are recorded in the watch history.
// @Tags videos
// @Produce json
// @Param videoId path string true "Video identifier"
// @Success 200 {object} models.APIResponse "Video detail"
// @Failure 400 {object} models.APIErrorResponse "Invalid identifier"
// @Failure 404 {object} models.APIErrorResponse "Video not found"
// @Router /videos/{videoId} [get]
func NewGetVideoHandler(svc VideoDetailer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		detail, err := svc.Detail(r.Context(), chi.URLParam(r, "videoId"), viewer(r.Context()))
		if err != nil {
			writeError(w, err)
			return
		}

		writeData(w, http.StatusOK, detail, "Video fetched successfully")
	}
}

// VideoUploader defines the interface that the service must implement.
type VideoUploader interface {
	Upload(ctx context.Context, ownerID uuid.UUID, title, description string, videoFile, thumbnail services.Upload) (*models.VideoDB, error)
}

// NewUploadVideoHandler returns an HTTP handler for video upload.
// @Summary Upload a video
// @Description Stores the video file and thumbnail on the media host and creates the video, unpublished.
// @Tags videos
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Title"
// @Param description formData string false "Description"
// @Param videoFile formData file true "Video file"
// @Param thumbnail formData file true "Thumbnail image"
// @Success 201 {object} models.APIResponse "Video created"
// @Failure 400 {object} models.APIErrorResponse "Validation failed"
// @Router /videos [post]
// @Security BearerAuth
func NewUploadVideoHandler(svc VideoUploader) http.HandlerFunc {
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

		videoFile := formUpload(r, "videoFile")
		thumbnail := formUpload(r, "thumbnail")
		if videoFile == nil || thumbnail == nil {
			writeError(w, services.ErrValidation)
			return
		}

		video, err := svc.Upload(r.Context(), userID, r.FormValue("title"), r.FormValue("description"), *videoFile, *thumbnail)
		if err != nil {
			writeError(w, err)
			return
		}

		writeData(w, http.StatusCreated, video, "Video uploaded successfully")
	}
}

// VideoUpdater defines the interface that the service must implement.
type VideoUpdater interface {
	Update(ctx context.Context, principal uuid.UUID, videoID, title, description string, thumbnail *services.Upload) (*models.VideoDB, error)
}

// NewUpdateVideoHandler returns an HTTP handler for video updates.
// @Summary Update a video
// @Description Changes title, description and optionally the thumbnail. Owner only.
// @Tags videos
// @Accept multipart/form-data
// @Produce json
// @Param videoId path string true "Video identifier"
// @Param title formData string true "Title"
// @Param description formData string false "Description"
// @Param thumbnail formData file false "Replacement thumbnail"
// @Success 200 {object} models.APIResponse "Video updated"
// @Failure 403 {object} models.APIErrorResponse "Not the owner"
// @Failure 404 {object} models.APIErrorResponse "Video not found"
// @Router /videos/{videoId} [patch]
// @Security BearerAuth
func NewUpdateVideoHandler(svc VideoUpdater) http.HandlerFunc {
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

		video, err := svc.Update(r.Context(), userID, chi.URLParam(r, "videoId"),
			r.FormValue("title"), r.FormValue("description"), formUpload(r, "thumbnail"))
		if err != nil {
			writeError(w, err)
			return
		}

		writeData(w, http.StatusOK, video, "Video updated successfully")
	}
}

// VideoDeleter defines the interface that the service must implement.
type VideoDeleter interface {
	Delete(ctx context.Context, principal uuid.UUID, videoID string) error
}

// NewDeleteVideoHandler returns an HTTP handler for video deletion.
// @Summary Delete a video
// @Description Removes the video and, best effort, its media assets. Owner only.
// @Tags videos
// @Produce json
// @Param videoId path string true "Video identifier"
// @Success 200 {object} models.APIResponse "Video deleted"
// @Failure 403 {object} models.APIErrorResponse "Not the owner"
// @Failure 404 {object} models.APIErrorResponse "Video not found"
// @Router /videos/{videoId} [delete]
// @Security BearerAuth
func NewDeleteVideoHandler(svc VideoDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := principal(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		if err := svc.Delete(r.Context(), userID, chi.URLParam(r, "videoId")); err != nil {
			writeError(w, err)
			return
		}

		writeData(w, http.StatusOK, nil, "Video deleted successfully")
	}
}

// PublishToggler defines the interface that the service must implement.
type PublishToggler interface {
	TogglePublish(ctx context.Context, principal uuid.UUID, videoID string) (*models.VideoDB, error)
}

// NewTogglePublishHandler returns an HTTP handler for the publish toggle.
// @Summary Toggle publication
// @Tags videos
// @Produce json
// @Param videoId path string true "Video identifier"
// @Success 200 {object} models.APIResponse "Publication toggled"
// @Failure 403 {object} models.APIErrorResponse "Not the owner"
// @Failure 404 {object} models.APIErrorResponse "Video not found"
// @Router /videos/{videoId}/toggle/publish [patch]
// @Security BearerAuth
func NewTogglePublishHandler(svc PublishToggler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := principal(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		video, err := svc.TogglePublish(r.Context(), userID, chi.URLParam(r, "videoId"))
		if err != nil {
			writeError(w, err)
			return
		}

		writeData(w, http.StatusOK, video, "Publication status toggled successfully")
	}
}
