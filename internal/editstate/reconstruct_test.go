package editstate

import (
	"reflect"
	"testing"
	"time"
)

func style(fontSize int) *StyleConfig {
	s := DefaultStyle()
	s.FontSize = fontSize
	return &s
}

func record(id int, message string, subs []SubtitleSegment, st *StyleConfig) EditRecord {
	return EditRecord{
		ID:          id,
		SessionID:   1,
		UserMessage: message,
		Subtitles:   subs,
		Style:       st,
		CreatedAt:   "2025-11-07T10:31:00",
	}
}

func TestReconstructEmpty(t *testing.T) {
	s := Reconstruct(nil)
	if len(s.Transcript) != 0 {
		t.Errorf("transcript len = %d, want 0", len(s.Transcript))
	}
	if s.Current != nil {
		t.Error("current snapshot should be nil with no edits")
	}
}

func TestReconstructSingleEdit(t *testing.T) {
	subs := []SubtitleSegment{{Start: 0, End: 5, Text: "Hello World"}}
	s := Reconstruct([]EditRecord{record(1, "Generate subtitles", subs, style(24))})

	if len(s.Transcript) != 2 {
		t.Fatalf("transcript len = %d, want 2", len(s.Transcript))
	}
	if s.Transcript[0].Role != RoleUser || s.Transcript[0].Content != "Generate subtitles" {
		t.Errorf("user message = %+v", s.Transcript[0])
	}
	if s.Transcript[1].Role != RoleAssistant || s.Transcript[1].Content != AckText {
		t.Errorf("assistant message = %+v", s.Transcript[1])
	}
	if s.Current == nil {
		t.Fatal("current snapshot should be set")
	}
	if len(s.Current.Subtitles) != 1 || s.Current.Subtitles[0].Text != "Hello World" {
		t.Errorf("current subtitles = %+v", s.Current.Subtitles)
	}
}

func TestReconstructCurrentIsLastRecord(t *testing.T) {
	subs := []SubtitleSegment{{Start: 0, End: 5, Text: "Hello"}}
	edits := []EditRecord{
		record(1, "Generate subtitles", subs, style(24)),
		record(2, "Make font size 32", subs, style(32)),
	}

	s := Reconstruct(edits)

	if len(s.Transcript) != 4 {
		t.Fatalf("transcript len = %d, want 4", len(s.Transcript))
	}
	if s.Current.Style.FontSize != 32 {
		t.Errorf("font size = %d, want 32", s.Current.Style.FontSize)
	}
	// Prior subtitles carried through unchanged.
	if !reflect.DeepEqual(s.Current.Subtitles, subs) {
		t.Errorf("subtitles = %+v, want %+v", s.Current.Subtitles, subs)
	}
}

func TestReconstructIdempotent(t *testing.T) {
	edits := []EditRecord{
		record(1, "Generate subtitles", []SubtitleSegment{{Start: 0, End: 5, Text: "A"}}, style(24)),
		record(2, "Move to top", []SubtitleSegment{{Start: 0, End: 5, Text: "A"}}, style(24)),
	}

	first := Reconstruct(edits)
	second := Reconstruct(edits)

	if !reflect.DeepEqual(first, second) {
		t.Error("two reconstructions of the same input should be identical")
	}
}

func TestReconstructEqualsIncrementalFold(t *testing.T) {
	edits := []EditRecord{
		record(1, "Generate subtitles", []SubtitleSegment{{Start: 0, End: 2, Text: "A"}}, style(24)),
		record(2, "Make it bigger", []SubtitleSegment{{Start: 0, End: 2, Text: "A"}}, style(32)),
		record(3, "Move to center", []SubtitleSegment{{Start: 0, End: 2, Text: "A"}}, style(32)),
	}

	bulk := Reconstruct(edits)

	var incremental State
	for _, e := range edits {
		incremental = ApplyEdit(incremental, e)
	}

	if !reflect.DeepEqual(bulk, incremental) {
		t.Error("bulk reconstruction should equal repeated ApplyEdit")
	}
}

func TestApplyEditSkipsMissingStyle(t *testing.T) {
	good := record(1, "Generate subtitles", []SubtitleSegment{{Start: 0, End: 5, Text: "A"}}, style(24))
	bad := record(2, "Broken", nil, nil)

	s := Reconstruct([]EditRecord{good, bad})

	if s.Dropped != 1 {
		t.Errorf("dropped = %d, want 1", s.Dropped)
	}
	if len(s.Transcript) != 2 {
		t.Errorf("transcript len = %d, want 2 (bad record skipped)", len(s.Transcript))
	}
	if s.Current.Style.FontSize != 24 {
		t.Error("current snapshot should come from the last good record")
	}
}

func TestApplyEditDoesNotAliasInput(t *testing.T) {
	subs := []SubtitleSegment{{Start: 0, End: 5, Text: "A"}}
	s := ApplyEdit(State{}, record(1, "Generate", subs, style(24)))

	subs[0].Text = "mutated"
	if s.Current.Subtitles[0].Text != "A" {
		t.Error("snapshot should not alias the input slice")
	}
}

func TestOptimisticResolve(t *testing.T) {
	now := time.Date(2025, 11, 7, 10, 31, 0, 0, time.UTC)
	base := Reconstruct([]EditRecord{
		record(1, "Generate subtitles", []SubtitleSegment{{Start: 0, End: 5, Text: "A"}}, style(24)),
	})

	s := AppendPending(base, "Make font size 32", now)
	if len(s.Transcript) != 3 {
		t.Fatalf("transcript len = %d, want 3", len(s.Transcript))
	}
	if !s.Transcript[2].Pending {
		t.Error("provisional message should be pending")
	}
	if s.Current.Style.FontSize != 24 {
		t.Error("pending message must not touch the snapshot")
	}

	snap := Snapshot{
		Subtitles: []SubtitleSegment{{Start: 0, End: 5, Text: "A"}},
		Style:     *style(32),
	}
	s = ResolveTurn(s, "Set the font size to 32.", snap, now)

	if len(s.Transcript) != 4 {
		t.Fatalf("transcript len = %d, want 4", len(s.Transcript))
	}
	if s.Transcript[2].Pending {
		t.Error("user message should be confirmed after resolve")
	}
	if s.Transcript[3].Role != RoleAssistant {
		t.Error("assistant reply should follow the user message")
	}
	if s.Current.Style.FontSize != 32 {
		t.Errorf("font size = %d, want 32", s.Current.Style.FontSize)
	}
}

func TestOptimisticFailureKeepsMessageAndSnapshot(t *testing.T) {
	now := time.Date(2025, 11, 7, 10, 31, 0, 0, time.UTC)
	base := Reconstruct([]EditRecord{
		record(1, "Generate subtitles", []SubtitleSegment{{Start: 0, End: 5, Text: "A"}}, style(24)),
	})

	s := AppendPending(base, "Make font size 32", now)
	s = FailTurn(s, "server error")

	if len(s.Transcript) != 3 {
		t.Fatalf("transcript len = %d, want 3 (user message kept)", len(s.Transcript))
	}
	if s.Transcript[2].Content != "Make font size 32" {
		t.Errorf("kept message = %q", s.Transcript[2].Content)
	}
	if s.Err != "server error" {
		t.Errorf("err = %q", s.Err)
	}
	if !reflect.DeepEqual(s.Current, base.Current) {
		t.Error("failed turn must leave the snapshot unchanged")
	}
}

func TestParseTimestamp(t *testing.T) {
	if parseTimestamp("2025-11-07T10:31:00").IsZero() {
		t.Error("naive timestamp should parse")
	}
	if parseTimestamp("2025-11-07T10:31:00Z").IsZero() {
		t.Error("RFC3339 timestamp should parse")
	}
	if !parseTimestamp("garbage").IsZero() {
		t.Error("unparseable timestamp should be zero")
	}
}
