// Package editstate reconstructs the current editor state and the chat
// transcript from an ordered sequence of persisted edit records.
package editstate

import "time"

// SubtitleSegment is one timed subtitle line. Start and End are playback
// seconds; Start <= End for well-formed input.
type SubtitleSegment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Position is the vertical placement of the subtitle overlay.
type Position string

const (
	PositionTop    Position = "top"
	PositionCenter Position = "center"
	PositionBottom Position = "bottom"
)

// StyleConfig is the styling configuration attached to a snapshot. Field
// names and tags mirror the server's model.
type StyleConfig struct {
	FontFamily       string   `json:"font_family"`
	FontSize         int      `json:"font_size"`
	FontColor        string   `json:"font_color"`
	BackgroundColor  string   `json:"background_color"`
	Position         Position `json:"position"`
	OutlineColor     string   `json:"outline_color"`
	OutlineWidth     int      `json:"outline_width"`
	MarginVertical   int      `json:"margin_vertical"`
	MarginHorizontal int      `json:"margin_horizontal"`
}

// DefaultStyle returns the server's default styling.
func DefaultStyle() StyleConfig {
	return StyleConfig{
		FontFamily:      "Arial",
		FontSize:        24,
		FontColor:       "#FFFFFF",
		BackgroundColor: "#000000",
		Position:        PositionBottom,
		OutlineColor:    "#000000",
		OutlineWidth:    2,
		MarginVertical:  50,
	}
}

// Snapshot pairs a subtitle list with the style active for it. Snapshots are
// immutable: an edit produces a new Snapshot, it never mutates one in place.
type Snapshot struct {
	Subtitles []SubtitleSegment
	Style     StyleConfig
}

// EditRecord is one persisted edit: the user's instruction and the snapshot
// that resulted from it. Records are append-only and fetched in ascending
// chronological order.
type EditRecord struct {
	ID          int               `json:"id"`
	SessionID   int               `json:"session_id"`
	UserMessage string            `json:"user_message"`
	Subtitles   []SubtitleSegment `json:"subtitle_data"`
	Style       *StyleConfig      `json:"style_config"`
	CreatedAt   string            `json:"created_at"`
}

// Role identifies the author of a transcript message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatMessage is one derived transcript entry. Assistant messages carry the
// snapshot produced by the turn; user messages carry only text. Pending is
// set on a provisional user message awaiting server confirmation.
type ChatMessage struct {
	Role      Role
	Content   string
	Subtitles []SubtitleSegment
	Style     *StyleConfig
	Timestamp time.Time
	Pending   bool
}

// AckText is the synthetic assistant acknowledgment attached to every edit
// reconstructed from history.
const AckText = "Updated subtitles and style"
