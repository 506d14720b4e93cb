package models

// ChannelStats is the per-channel dashboard summary. All counts are derived
// by aggregation, never stored.
type ChannelStats struct {
	TotalVideos      int64 `json:"totalVideos"`
	TotalViews       int64 `json:"totalViews"`
	TotalLikes       int64 `json:"totalLikes"`
	TotalSubscribers int64 `json:"totalSubscribers"`
}
