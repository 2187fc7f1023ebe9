package app

import (
	"time"

	"github.com/yoursandeshshrestha/videoable/internal/api"
	"github.com/yoursandeshshrestha/videoable/internal/editstate"
)

// HistoryLoadedMsg carries the fetched edit history for a session. Seq and
// SessionID identify the request so stale responses can be discarded.
type HistoryLoadedMsg struct {
	Seq       int
	SessionID int
	History   api.HistoryResponse
}

// HistoryErrorMsg is sent when the history fetch fails.
type HistoryErrorMsg struct {
	Seq       int
	SessionID int
	Err       error
}

// TurnResolvedMsg carries the server's reply to one submitted chat turn.
type TurnResolvedMsg struct {
	Seq       int
	SessionID int
	Message   string
	Response  api.ChatResponse
}

// TurnFailedMsg is sent when a chat turn submission fails.
type TurnFailedMsg struct {
	Seq       int
	SessionID int
	Err       error
}

// CachedHistoryMsg carries locally cached edits shown while the fresh fetch
// is in flight. The fresh history always replaces it.
type CachedHistoryMsg struct {
	SessionID int
	Edits     []editstate.EditRecord
}

// TickMsg drives the playback clock.
type TickMsg struct {
	Time time.Time
}

// ProbeDoneMsg carries the local video probe result. A probe error is not
// fatal; the clock falls back to server metadata.
type ProbeDoneMsg struct {
	Duration float64
	Err      error
}

// ExportStartedMsg is sent when the server accepts an export request.
type ExportStartedMsg struct {
	Seq       int
	SessionID int
	Response  api.ExportResponse
}

// ExportFailedMsg is sent when the export request fails.
type ExportFailedMsg struct {
	Seq       int
	SessionID int
	Err       error
}

// ClearTransientErrorMsg clears a transient error after a timeout.
type ClearTransientErrorMsg struct{}
