package models

// MediaAsset is the result of uploading a file to the media host: the public
// URL, the storage key used for deletion, and the media duration in seconds
// (zero for images).
type MediaAsset struct {
	URL      string  `json:"url"`
	PublicID string  `json:"public_id"`
	Duration float64 `json:"duration"`
}
