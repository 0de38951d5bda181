// Package uploader sends image files to Cloudinary and hands back their
// hosted URLs. Cloudinary is opaque to the rest of the app: the only thing
// that leaves this package is a secure URL or an error. No retries — a failed
// upload is the user's call to resubmit.
package uploader

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

const defaultTimeout = 60 * time.Second

// Error wraps any upload failure with a message fit for inline display.
type Error struct {
	cause error
}

func (e *Error) Error() string { return "Failed to upload image" }
func (e *Error) Unwrap() error { return e.cause }

// Client uploads files to a Cloudinary account using an unsigned preset.
type Client struct {
	uploadURL string
	preset    string
	cloudName string
	http      *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithUploadURL overrides the upload endpoint (tests point it at a fake).
func WithUploadURL(url string) Option {
	return func(c *Client) {
		if url != "" {
			c.uploadURL = url
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New creates an upload client for the given cloud and preset.
func New(cloudName, preset string, opts ...Option) *Client {
	c := &Client{
		uploadURL: fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/image/upload", cloudName),
		preset:    preset,
		cloudName: cloudName,
		http:      &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Upload posts one file and returns its hosted URL.
func (c *Client) Upload(ctx context.Context, filename string, file io.Reader) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", &Error{cause: fmt.Errorf("building multipart body: %w", err)}
	}
	if _, err := io.Copy(fw, file); err != nil {
		return "", &Error{cause: fmt.Errorf("reading file %s: %w", filename, err)}
	}
	if err := mw.WriteField("upload_preset", c.preset); err != nil {
		return "", &Error{cause: err}
	}
	if err := mw.WriteField("cloud_name", c.cloudName); err != nil {
		return "", &Error{cause: err}
	}
	if err := mw.Close(); err != nil {
		return "", &Error{cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.uploadURL, &buf)
	if err != nil {
		return "", &Error{cause: fmt.Errorf("creating upload request: %w", err)}
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return "", &Error{cause: fmt.Errorf("uploading %s: %w", filename, err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", &Error{cause: fmt.Errorf("upload of %s returned status %d: %s", filename, resp.StatusCode, body)}
	}

	var result struct {
		SecureURL string `json:"secure_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", &Error{cause: fmt.Errorf("decoding upload response: %w", err)}
	}
	if result.SecureURL == "" {
		return "", &Error{cause: fmt.Errorf("upload response for %s carried no secure_url", filename)}
	}

	return result.SecureURL, nil
}
