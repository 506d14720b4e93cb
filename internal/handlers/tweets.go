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

// TweetLister defines the interface that the service must implement.
type TweetLister interface {
	ListByUser(ctx context.Context, userID string, p pagination.Params) ([]models.TweetView, pagination.Meta, error)
}

// NewListTweetsHandler returns an HTTP handler for a user's tweets.
// @Summary List a user's tweets
// @Tags tweets
// @Produce json
// @Param userId path string true "Author identifier"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} models.APIResponse "Tweets page"
// @Failure 400 {object} models.APIErrorResponse "Invalid identifier"
// @Router /tweets/user/{userId} [get]
func NewListTweetsHandler(svc TweetLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tweets, meta, err := svc.ListByUser(r.Context(), chi.URLParam(r, "userId"), pageParams(r))
		if err != nil {
			writeError(w, err)
			return
		}

		writeData(w, http.StatusOK, paginated{Items: tweets, Meta: meta}, "Tweets fetched successfully")
	}
}

// TweetCreator defines the interface that the service must implement.
type TweetCreator interface {
	Create(ctx context.Context, principal uuid.UUID, content string) (*models.TweetDB, error)
}

// TweetRequest represents the JSON body for tweet creation and update
// swagger:model TweetRequest
type TweetRequest struct {
	Content string `json:"content"`
}

// NewCreateTweetHandler returns an HTTP handler for tweet creation.
// @Summary Create a tweet
// @Tags tweets
// @Accept json
// @Produce json
// @Param tweetRequest body handlers.TweetRequest true "Tweet content"
// @Success 201 {object} models.APIResponse "Tweet created"
// @Failure 400 {object} models.APIErrorResponse "Validation failed"
// @Router /tweets [post]
// @Security BearerAuth
func NewCreateTweetHandler(svc TweetCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := principal(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		var req TweetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, services.ErrValidation)
			return
		}

		tweet, err := svc.Create(r.Context(), userID, req.Content)
		if err != nil {
			writeError(w, err)
			return
		}

		writeData(w, http.StatusCreated, tweet, "Tweet created successfully")
	}
}

// TweetUpdater defines the interface that the service must implement.
type TweetUpdater interface {
	Update(ctx context.Context, principal uuid.UUID, tweetID, content string) (*models.TweetDB, error)
}

// NewUpdateTweetHandler returns an HTTP handler for tweet updates.
// @Summary Update a tweet
// @Tags tweets
// @Accept json
// @Produce json
// @Param tweetId path string true "Tweet identifier"
// @Param tweetRequest body handlers.TweetRequest true "New content"
// @Success 200 {object} models.APIResponse "Tweet updated"
// @Failure 403 {object} models.APIErrorResponse "Not the owner"
// @Failure 404 {object} models.APIErrorResponse "Tweet not found"
// @Router /tweets/{tweetId} [patch]
// @Security BearerAuth
func NewUpdateTweetHandler(svc TweetUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := principal(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		var req TweetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, services.ErrValidation)
			return
		}

		tweet, err := svc.Update(r.Context(), userID, chi.URLParam(r, "tweetId"), req.Content)
		if err != nil {
			writeError(w, err)
			return
		}

		writeData(w, http.StatusOK, tweet, "Tweet updated successfully")
	}
}

// TweetDeleter defines the interface that the service must implement.
type TweetDeleter interface {
	Delete(ctx context.Context, principal uuid.UUID, tweetID string) error
}

// NewDeleteTweetHandler returns an HTTP handler for tweet deletion.
// @Summary Delete a tweet
// @Tags tweets
// @Produce json
// @Param tweetId path string true "Tweet identifier"
// @Success 200 {object} models.APIResponse "Tweet deleted"
// @Failure 403 {object} models.APIErrorResponse "Not the owner"
// @Failure 404 {object} models.APIErrorResponse "Tweet not found"
// @Router /tweets/{tweetId} [delete]
// @Security BearerAuth
func NewDeleteTweetHandler(svc TweetDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := principal(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		if err := svc.Delete(r.Context(), userID, chi.URLParam(r, "tweetId")); err != nil {
			writeError(w, err)
			return
		}

		writeData(w, http.StatusOK, nil, "Tweet deleted successfully")
	}
}
