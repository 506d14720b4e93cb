package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/streamhive/streamhive-api/internal/logger"
	"github.com/streamhive/streamhive-api/internal/models"
)

// MediaStorageHTTPFacade talks to the external media host over its HTTP
// upload API. Uploads return the public URL, the storage key used for later
// deletion, and the media duration for video files.
type MediaStorageHTTPFacade struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewMediaStorageHTTPFacade creates a facade for the given media host. A nil
// client falls back to http.DefaultClient.
func NewMediaStorageHTTPFacade(baseURL, apiKey string, client *http.Client) *MediaStorageHTTPFacade {
	if client == nil {
		client = http.DefaultClient
	}
	return &MediaStorageHTTPFacade{baseURL: baseURL, apiKey: apiKey, client: client}
}

// Upload streams a file to the media host and returns the stored asset.
func (f *MediaStorageHTTPFacade) Upload(ctx context.Context, filename string, file io.Reader) (*models.MediaAsset, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.baseURL+"/upload", &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+f.apiKey)

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("media upload failed", "filename", filename, "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		logger.Log.Errorw("media host rejected upload", "filename", filename, "status", resp.StatusCode)
		return nil, fmt.Errorf("media host returned status %d", resp.StatusCode)
	}

	var asset models.MediaAsset
	if err := json.NewDecoder(resp.Body).Decode(&asset); err != nil {
		return nil, err
	}

	logger.Log.Infow("media uploaded", "filename", filename, "public_id", asset.PublicID)
	return &asset, nil
}

// Delete removes an asset by its storage key. Best effort: callers log
// failures but do not fail the request over them.
func (f *MediaStorageHTTPFacade) Delete(ctx context.Context, publicID string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, f.baseURL+"/assets/"+publicID, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+f.apiKey)

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("media delete failed", "public_id", publicID, "error", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("media host returned status %d", resp.StatusCode)
	}

	return nil
}
