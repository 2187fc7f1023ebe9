package editstate

import "time"

// State is the reconstructed editor state: the chat transcript plus the
// current snapshot. It is a value type; every transition returns a new State
// and never mutates the receiver's slices in place.
type State struct {
	Transcript []ChatMessage
	// Current is nil until the first edit lands. A nil Current means "no
	// edits yet", which is distinct from a snapshot with zero subtitles.
	Current *Snapshot
	// Dropped counts malformed records skipped during reconstruction.
	Dropped int
	// Err holds the last surfaced error message, cleared on the next
	// successful transition.
	Err string
}

// ApplyEdit folds one edit record into the state: a user message followed by
// a synthetic assistant acknowledgment carrying the record's snapshot, which
// becomes current. This is the only append path; bulk reconstruction is
// defined as repeated application of it.
//
// A record without a style payload is malformed and is skipped rather than
// patched with defaults the user never asked for.
func ApplyEdit(s State, edit EditRecord) State {
	if edit.Style == nil {
		s.Dropped++
		return s
	}

	snap := &Snapshot{
		Subtitles: append([]SubtitleSegment(nil), edit.Subtitles...),
		Style:     *edit.Style,
	}
	ts := parseTimestamp(edit.CreatedAt)

	transcript := make([]ChatMessage, 0, len(s.Transcript)+2)
	transcript = append(transcript, s.Transcript...)
	transcript = append(transcript,
		ChatMessage{
			Role:      RoleUser,
			Content:   edit.UserMessage,
			Timestamp: ts,
		},
		ChatMessage{
			Role:      RoleAssistant,
			Content:   AckText,
			Subtitles: snap.Subtitles,
			Style:     &snap.Style,
			Timestamp: ts,
		},
	)

	s.Transcript = transcript
	s.Current = snap
	s.Err = ""
	return s
}

// Reconstruct derives the transcript and current snapshot from the full edit
// history. Input order is trusted as ascending chronological; the server
// returns records sorted by id and this function does not re-sort.
func Reconstruct(edits []EditRecord) State {
	var s State
	for _, edit := range edits {
		s = ApplyEdit(s, edit)
	}
	return s
}

// AppendPending appends a provisional user message before the server round
// trip resolves. The message is never replaced: ResolveTurn only appends
// after it, and FailTurn leaves it in place.
func AppendPending(s State, message string, now time.Time) State {
	transcript := make([]ChatMessage, 0, len(s.Transcript)+1)
	transcript = append(transcript, s.Transcript...)
	transcript = append(transcript, ChatMessage{
		Role:      RoleUser,
		Content:   message,
		Timestamp: now,
		Pending:   true,
	})
	s.Transcript = transcript
	s.Err = ""
	return s
}

// ResolveTurn completes an optimistic turn: the pending user message is
// confirmed, the assistant reply is appended after it, and the new snapshot
// becomes current. Response is the server's free-text reply for the turn.
func ResolveTurn(s State, response string, snap Snapshot, now time.Time) State {
	transcript := append([]ChatMessage(nil), s.Transcript...)
	if i := lastPendingIndex(transcript); i >= 0 {
		transcript[i].Pending = false
	}

	current := &Snapshot{
		Subtitles: append([]SubtitleSegment(nil), snap.Subtitles...),
		Style:     snap.Style,
	}
	transcript = append(transcript, ChatMessage{
		Role:      RoleAssistant,
		Content:   response,
		Subtitles: current.Subtitles,
		Style:     &current.Style,
		Timestamp: now,
	})

	s.Transcript = transcript
	s.Current = current
	s.Err = ""
	return s
}

// FailTurn records a failed turn. The pending user message stays visible (it
// represents something the user actually sent) and the current snapshot is
// untouched; only the error surface changes.
func FailTurn(s State, errMsg string) State {
	transcript := append([]ChatMessage(nil), s.Transcript...)
	if i := lastPendingIndex(transcript); i >= 0 {
		transcript[i].Pending = false
	}
	s.Transcript = transcript
	s.Err = errMsg
	return s
}

func lastPendingIndex(transcript []ChatMessage) int {
	for i := len(transcript) - 1; i >= 0; i-- {
		if transcript[i].Pending {
			return i
		}
	}
	return -1
}

// parseTimestamp handles the server's created_at strings, which come with or
// without a timezone suffix.
func parseTimestamp(s string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
