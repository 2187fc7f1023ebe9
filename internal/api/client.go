package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultBaseURL is the backend address used when no server is configured.
const DefaultBaseURL = "http://localhost:8000"

// DefaultTimeout matches the server's worst case (audio transcription on
// first turn).
const DefaultTimeout = 120 * time.Second

// APIError is a non-2xx response from the backend, carrying the detail
// string the server attaches to errors.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	switch e.StatusCode {
	case http.StatusBadRequest:
		return "bad request"
	case http.StatusNotFound:
		return "resource not found"
	case http.StatusInternalServerError:
		return "server error"
	default:
		return fmt.Sprintf("unexpected status %d", e.StatusCode)
	}
}

// Client talks to the videoable backend.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for the given base URL. An empty baseURL or zero
// timeout falls back to the defaults.
func New(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the configured server address.
func (c *Client) BaseURL() string { return c.baseURL }

// SendMessage submits one chat turn for a session.
func (c *Client) SendMessage(ctx context.Context, sessionID int, message string) (ChatResponse, error) {
	var resp ChatResponse
	err := c.postJSON(ctx, "/api/chat/message", ChatRequest{SessionID: sessionID, Message: message}, &resp)
	return resp, err
}

// History fetches the full edit history for a session.
func (c *Client) History(ctx context.Context, sessionID int) (HistoryResponse, error) {
	var resp HistoryResponse
	err := c.getJSON(ctx, fmt.Sprintf("/api/chat/%d/history", sessionID), &resp)
	return resp, err
}

// GetSession fetches one session's metadata.
func (c *Client) GetSession(ctx context.Context, sessionID int) (Session, error) {
	var resp Session
	err := c.getJSON(ctx, fmt.Sprintf("/api/video/%d", sessionID), &resp)
	return resp, err
}

// ListSessions fetches all sessions.
func (c *Client) ListSessions(ctx context.Context) ([]Session, error) {
	var resp []Session
	err := c.getJSON(ctx, "/api/video/", &resp)
	return resp, err
}

// DeleteSession removes a session and its video.
func (c *Client) DeleteSession(ctx context.Context, sessionID int) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete,
		fmt.Sprintf("%s/api/video/%d", c.baseURL, sessionID), nil)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return c.do(req, nil)
}

// Upload sends a video file and creates a new session for it.
func (c *Client) Upload(ctx context.Context, path string) (Session, error) {
	var sess Session

	file, err := os.Open(path)
	if err != nil {
		return sess, fmt.Errorf("open video: %w", err)
	}
	defer file.Close()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return sess, fmt.Errorf("build upload: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return sess, fmt.Errorf("read video: %w", err)
	}
	if err := mw.Close(); err != nil {
		return sess, fmt.Errorf("build upload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/video/upload", &body)
	if err != nil {
		return sess, fmt.Errorf("upload: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	if err := c.do(req, &sess); err != nil {
		return sess, err
	}
	return sess, nil
}

// Export starts a burned-in subtitle export for a session.
func (c *Client) Export(ctx context.Context, sessionID int) (ExportResponse, error) {
	var resp ExportResponse
	err := c.postJSON(ctx, fmt.Sprintf("/api/export/%d/export", sessionID), nil, &resp)
	return resp, err
}

// ExportState fetches the status of a running export.
func (c *Client) ExportState(ctx context.Context, sessionID int) (ExportStatus, error) {
	var resp ExportStatus
	err := c.getJSON(ctx, fmt.Sprintf("/api/export/%d/status", sessionID), &resp)
	return resp, err
}

// VideoURL resolves a server-relative video path against the base URL.
func (c *Client) VideoURL(videoURL string) string {
	if strings.HasPrefix(videoURL, "http://") || strings.HasPrefix(videoURL, "https://") {
		return videoURL
	}
	return c.baseURL + videoURL
}

func (c *Client) getJSON(ctx context.Context, path string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}
	return c.do(req, dst)
}

func (c *Client) postJSON(ctx context.Context, path string, payload, dst any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("post %s: marshal: %w", path, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("post %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, dst)
}

func (c *Client) do(req *http.Request, dst any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Detail: readDetail(resp.Body)}
	}

	if dst == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode %s: %w", req.URL.Path, err)
	}
	return nil
}

// readDetail extracts the "detail" field the backend attaches to error
// responses. Body read errors just yield an empty detail.
func readDetail(r io.Reader) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return ""
	}
	return payload.Detail
}
