package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/streamhive/streamhive-api/internal/models"
	"github.com/streamhive/streamhive-api/internal/pagination"
)

// LikeToggler defines the interface that the service must implement.
type LikeToggler interface {
	ToggleVideoLike(ctx context.Context, principal uuid.UUID, videoID string) (bool, error)
	ToggleCommentLike(ctx context.Context, principal uuid.UUID, commentID string) (bool, error)
	ToggleTweetLike(ctx context.Context, principal uuid.UUID, tweetID string) (bool, error)
}

// ToggleResult is the data block of any toggle endpoint.
type ToggleResult struct {
	IsLiked bool `json:"isLiked"`
}

// NewToggleVideoLikeHandler returns an HTTP handler for the video like toggle.
// @Summary Toggle a video like
// @Description Flips the caller's like on the video and returns the resulting state.
// @Tags likes
// @Produce json
// @Param videoId path string true "Video identifier"
// @Success 200 {object} models.APIResponse "New like state"
// @Failure 404 {object} models.APIErrorResponse "Video not found"
// @Router /likes/video/{videoId} [post]
// @Security BearerAuth
func NewToggleVideoLikeHandler(svc LikeToggler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := principal(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		liked, err := svc.ToggleVideoLike(r.Context(), userID, chi.URLParam(r, "videoId"))
		if err != nil {
			writeError(w, err)
			return
		}

		writeData(w, http.StatusOK, ToggleResult{IsLiked: liked}, "Like toggled successfully")
	}
}

// NewToggleCommentLikeHandler returns an HTTP handler for the comment like toggle.
// @Summary Toggle a comment like
// @Tags likes
// @Produce json
// @Param commentId path string true "Comment identifier"
// @Success 200 {object} models.APIResponse "New like state"
// @Failure 404 {object} models.APIErrorResponse "Comment not found"
// @Router /likes/comment/{commentId} [post]
// @Security BearerAuth
func NewToggleCommentLikeHandler(svc LikeToggler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := principal(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		liked, err := svc.ToggleCommentLike(r.Context(), userID, chi.URLParam(r, "commentId"))
		if err != nil {
			writeError(w, err)
			return
		}

		writeData(w, http.StatusOK, ToggleResult{IsLiked: liked}, "Like toggled successfully")
	}
}

// NewToggleTweetLikeHandler returns an HTTP handler for the tweet like toggle.
// @Summary Toggle a tweet like
// @Tags likes
// @Produce json
// @Param tweetId path string true "Tweet identifier"
// @Success 200 {object} models.APIResponse "New like state"
// @Failure 404 {object} models.APIErrorResponse "Tweet not found"
// @Router /likes/tweet/{tweetId} [post]
// @Security BearerAuth
func NewToggleTweetLikeHandler(svc LikeToggler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := principal(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		liked, err := svc.ToggleTweetLike(r.Context(), userID, chi.URLParam(r, "tweetId"))
		if err != nil {
			writeError(w, err)
			return
		}

		writeData(w, http.StatusOK, ToggleResult{IsLiked: liked}, "Like toggled successfully")
	}
}

// LikedVideosReader defines the interface that the service must implement.
type LikedVideosReader interface {
	LikedVideos(ctx context.Context, principal uuid.UUID, p pagination.Params) ([]models.LikedVideoItem, pagination.Meta, error)
}

// NewLikedVideosHandler returns an HTTP handler for the liked-videos listing.
// @Summary List liked videos
// @Description Returns one page of the caller's liked videos, most recently liked first.
// @Tags likes
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} models.APIResponse "Liked videos page"
// @Failure 401 {object} models.APIErrorResponse "Unauthenticated"
// @Router /likes/videos [get]
// @Security BearerAuth
func NewLikedVideosHandler(svc LikedVideosReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := principal(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		items, meta, err := svc.LikedVideos(r.Context(), userID, pageParams(r))
		if err != nil {
			writeError(w, err)
			return
		}

		writeData(w, http.StatusOK, paginated{Items: items, Meta: meta}, "Liked videos fetched successfully")
	}
}
