package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/streamhive/streamhive-api/internal/models"
)

// StatsProvider defines the interface that the service must implement.
type StatsProvider interface {
	ChannelStats(ctx context.Context, principal uuid.UUID) (*models.ChannelStats, error)
}

// NewChannelStatsHandler returns an HTTP handler for the dashboard summary.
// @Summary Get channel statistics
// @Description Returns the caller's channel summary: video, view, like and subscriber totals.
// @Tags dashboard
// @Produce json
// @Success 200 {object} models.APIResponse "Channel statistics"
// @Failure 401 {object} models.APIErrorResponse "Unauthenticated"
// @Router /dashboard/stats [get]
// @Security BearerAuth
func NewChannelStatsHandler(svc StatsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := principal(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		stats, err := svc.ChannelStats(r.Context(), userID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeData(w, http.StatusOK, stats, "Channel stats fetched successfully")
	}
}

// ChannelVideosProvider defines the interface that the service must implement.
type ChannelVideosProvider interface {
	ChannelVideos(ctx context.Context, principal uuid.UUID) ([]models.VideoDB, error)
}

// NewChannelVideosHandler returns an HTTP handler for the dashboard video list.
// @Summary List the caller's videos
// @Description Returns all of the caller's videos, including unpublished ones.
// @Tags dashboard
// @Produce json
// @Success 200 {object} models.APIResponse "Channel videos"
// @Failure 401 {object} models.APIErrorResponse "Unauthenticated"
// @Router /dashboard/videos [get]
// @Security BearerAuth
func NewChannelVideosHandler(svc ChannelVideosProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := principal(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		videos, err := svc.ChannelVideos(r.Context(), userID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeData(w, http.StatusOK, videos, "Channel videos fetched successfully")
	}
}
