package services

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"inkwell/models"
)

// Uploader pushes an image to the external host and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, filename string, file io.Reader) (string, error)
}

// ImgBBUploader talks to an ImgBB-style host: multipart POST with the API
// key as a query parameter, JSON response with an embedded success flag.
type ImgBBUploader struct {
	Endpoint string
	APIKey   string
	Client   *http.Client
}

func NewImgBBUploader(endpoint, apiKey string) *ImgBBUploader {
	return &ImgBBUploader{
		Endpoint: endpoint,
		APIKey:   apiKey,
		Client:   http.DefaultClient,
	}
}

type uploadResponse struct {
	Success bool `json:"success"`
	Data    struct {
		URL string `json:"url"`
	} `json:"data"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload sends the file as-is. No retries and no client-side size or type
// checks; the host is the authority on what it accepts.
func (u *ImgBBUploader) Upload(ctx context.Context, filename string, file io.Reader) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		return "", &models.UploadError{Reason: err.Error()}
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", &models.UploadError{Reason: err.Error()}
	}
	if err := writer.Close(); err != nil {
		return "", &models.UploadError{Reason: err.Error()}
	}

	endpoint := u.Endpoint + "?key=" + url.QueryEscape(u.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return "", &models.UploadError{Reason: err.Error()}
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := u.Client.Do(req)
	if err != nil {
		return "", &models.UploadError{Reason: err.Error()}
	}
	defer resp.Body.Close()

	var parsed uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", &models.UploadError{Reason: "unexpected response from image host: " + resp.Status}
	}

	if !parsed.Success {
		reason := parsed.Error.Message
		if reason == "" {
			reason = "image host rejected the upload: " + resp.Status
		}
		return "", &models.UploadError{Reason: reason}
	}

	return parsed.Data.URL, nil
}
