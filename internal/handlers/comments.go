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

// CommentLister defines the interface that the service must implement.
type CommentLister interface {
	ListByVideo(ctx context.Context, videoID string, p pagination.Params) ([]models.CommentView, pagination.Meta, error)
}

// NewListCommentsHandler returns an HTTP handler for a video's comments.
// @Summary List comments
// @Description Returns one page of a video's comments, newest first.
// @Tags comments
// @Produce json
// @Param videoId path string true "Video identifier"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} models.APIResponse "Comments page"
// @Failure 404 {object} models.APIErrorResponse "Video not found"
// @Router /comments/{videoId} [get]
func NewListCommentsHandler(svc CommentLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		comments, meta, err := svc.ListByVideo(r.Context(), chi.URLParam(r, "videoId"), pageParams(r))
		if err != nil {
			writeError(w, err)
			return
		}

		writeData(w, http.StatusOK, paginated{Items: comments, Meta: meta}, "Comments fetched successfully")
	}
}

// CommentAdder defines the interface that the service must implement.
type CommentAdder interface {
	Add(ctx context.Context, principal uuid.UUID, videoID, content string) (*models.CommentDB, error)
}

// CommentRequest represents the JSON body for comment creation and update
// swagger:model CommentRequest
type CommentRequest struct {
	Content string `json:"content"`
}

// NewAddCommentHandler returns an HTTP handler for comment creation.
// @Summary Add a comment
// @Tags comments
// @Accept json
// @Produce json
// @Param videoId path string true "Video identifier"
// @Param commentRequest body handlers.CommentRequest true "Comment content"
// @Success 201 {object} models.APIResponse "Comment created"
// @Failure 404 {object} models.APIErrorResponse "Video not found"
// @Router /comments/{videoId} [post]
// @Security BearerAuth
func NewAddCommentHandler(svc CommentAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := principal(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		var req CommentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, services.ErrValidation)
			return
		}

		comment, err := svc.Add(r.Context(), userID, chi.URLParam(r, "videoId"), req.Content)
		if err != nil {
			writeError(w, err)
			return
		}

		writeData(w, http.StatusCreated, comment, "Comment added successfully")
	}
}

// CommentUpdater defines the interface that the service must implement.
type CommentUpdater interface {
	Update(ctx context.Context, principal uuid.UUID, commentID, content string) (*models.CommentDB, error)
}

// NewUpdateCommentHandler returns an HTTP handler for comment updates.
// @Summary Update a comment
// @Tags comments
// @Accept json
// @Produce json
// @Param commentId path string true "Comment identifier"
// @Param commentRequest body handlers.CommentRequest true "New content"
// @Success 200 {object} models.APIResponse "Comment updated"
// @Failure 403 {object} models.APIErrorResponse "Not the owner"
// @Failure 404 {object} models.APIErrorResponse "Comment not found"
// @Router /comments/{commentId} [patch]
// @Security BearerAuth
func NewUpdateCommentHandler(svc CommentUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := principal(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		var req CommentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, services.ErrValidation)
			return
		}

		comment, err := svc.Update(r.Context(), userID, chi.URLParam(r, "commentId"), req.Content)
		if err != nil {
			writeError(w, err)
			return
		}

		writeData(w, http.StatusOK, comment, "Comment updated successfully")
	}
}

// CommentDeleter defines the interface that the service must implement.
type CommentDeleter interface {
	Delete(ctx context.Context, principal uuid.UUID, commentID string) error
}

// NewDeleteCommentHandler returns an HTTP handler for comment deletion.
// @Summary Delete a comment
// @Tags comments
// @Produce json
// @Param commentId path string true "Comment identifier"
// @Success 200 {object} models.APIResponse "Comment deleted"
// @Failure 403 {object} models.APIErrorResponse "Not the owner"
// @Failure 404 {object} models.APIErrorResponse "Comment not found"
// @Router /comments/{commentId} [delete]
// @Security BearerAuth
func NewDeleteCommentHandler(svc CommentDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := principal(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		if err := svc.Delete(r.Context(), userID, chi.URLParam(r, "commentId")); err != nil {
			writeError(w, err)
			return
		}

		writeData(w, http.StatusOK, nil, "Comment deleted successfully")
	}
}
