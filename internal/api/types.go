// Package api provides the client and protocol types for talking to the
// videoable backend over HTTP/JSON.
package api

import "github.com/yoursandeshshrestha/videoable/internal/editstate"

// Session is a video editing session as returned by the server.
type Session struct {
	ID            int    `json:"id"`
	VideoFilename string `json:"video_filename"`
	VideoURL      string `json:"video_url"`
	CreatedAt     string `json:"created_at"`
}

// ChatRequest is the body of a chat turn submission.
type ChatRequest struct {
	SessionID int    `json:"session_id"`
	Message   string `json:"message"`
}

// ChatResponse is the server's reply to one chat turn: the assistant's text
// plus the full subtitle set and style that resulted from the edit.
type ChatResponse struct {
	Response  string                      `json:"response"`
	Subtitles []editstate.SubtitleSegment `json:"subtitles"`
	Style     editstate.StyleConfig       `json:"style"`
}

// HistoryResponse is the full edit history for a session, ordered ascending
// by creation.
type HistoryResponse struct {
	SessionID  int                    `json:"session_id"`
	TotalEdits int                    `json:"total_edits"`
	Edits      []editstate.EditRecord `json:"edits"`
}

// ExportResponse is returned when an export is started.
type ExportResponse struct {
	Message     string `json:"message"`
	DownloadURL string `json:"download_url"`
}

// ExportStatus reports the state of a running export.
type ExportStatus struct {
	Status      string `json:"status"`
	DownloadURL string `json:"download_url,omitempty"`
}

// EditFromTurn wraps a chat response into an edit record equivalent to what
// the server persisted for the turn. The record id is unknown until the next
// history fetch and is left zero.
func EditFromTurn(sessionID int, message string, resp ChatResponse, createdAt string) editstate.EditRecord {
	style := resp.Style
	return editstate.EditRecord{
		SessionID:   sessionID,
		UserMessage: message,
		Subtitles:   resp.Subtitles,
		Style:       &style,
		CreatedAt:   createdAt,
	}
}
