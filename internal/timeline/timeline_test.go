package timeline

import (
	"testing"

	"github.com/yoursandeshshrestha/videoable/internal/editstate"
)

func TestActiveSegmentBoundariesInclusive(t *testing.T) {
	subs := []editstate.SubtitleSegment{{Start: 0, End: 5, Text: "Hello"}}

	if seg, ok := ActiveSegment(subs, 0); !ok || seg.Text != "Hello" {
		t.Errorf("t=0: got (%v, %v), want segment", seg, ok)
	}
	if seg, ok := ActiveSegment(subs, 5); !ok || seg.Text != "Hello" {
		t.Errorf("t=5: got (%v, %v), want segment", seg, ok)
	}
	if _, ok := ActiveSegment(subs, 5.0001); ok {
		t.Error("t=5.0001: expected no match just past the end boundary")
	}
}

func TestActiveSegmentGap(t *testing.T) {
	subs := []editstate.SubtitleSegment{
		{Start: 0, End: 2, Text: "A"},
		{Start: 4, End: 6, Text: "B"},
	}

	if _, ok := ActiveSegment(subs, 3); ok {
		t.Error("gap between segments should resolve to no subtitle")
	}
	if seg, _ := ActiveSegment(subs, 5); seg.Text != "B" {
		t.Errorf("t=5: got %q, want B", seg.Text)
	}
}

func TestActiveSegmentOverlapTieBreak(t *testing.T) {
	subs := []editstate.SubtitleSegment{
		{Start: 0, End: 10, Text: "A"},
		{Start: 5, End: 15, Text: "B"},
	}

	for i := 0; i < 10; i++ {
		seg, ok := ActiveSegment(subs, 7)
		if !ok || seg.Text != "A" {
			t.Fatalf("overlap at t=7: got (%q, %v), want first segment A", seg.Text, ok)
		}
	}
}

func TestActiveSegmentEmpty(t *testing.T) {
	if _, ok := ActiveSegment(nil, 1); ok {
		t.Error("empty subtitle set should never match")
	}
}

func TestResolverMatchesFreshScan(t *testing.T) {
	subs := []editstate.SubtitleSegment{
		{Start: 0, End: 2, Text: "A"},
		{Start: 1, End: 6, Text: "B"},
		{Start: 8, End: 9, Text: "C"},
	}
	r := NewResolver(subs)

	// Mix of forward ticks and backward seeks, including overlap region.
	for _, tick := range []float64{0, 0.5, 1.5, 2, 2.5, 5, 1.2, 8.5, 0.1, 7, 9} {
		got, gotOK := r.Resolve(tick)
		want, wantOK := ActiveSegment(subs, tick)
		if gotOK != wantOK || got != want {
			t.Errorf("t=%v: resolver (%v, %v) != scan (%v, %v)", tick, got, gotOK, want, wantOK)
		}
	}
}

func TestResolverInvalidatedBySubtitleChange(t *testing.T) {
	r := NewResolver([]editstate.SubtitleSegment{{Start: 0, End: 10, Text: "old"}})

	if seg, _ := r.Resolve(5); seg.Text != "old" {
		t.Fatalf("got %q", seg.Text)
	}

	r.SetSubtitles([]editstate.SubtitleSegment{{Start: 0, End: 10, Text: "new"}})
	if seg, _ := r.Resolve(5); seg.Text != "new" {
		t.Errorf("after snapshot change got %q, want new", seg.Text)
	}

	r.SetSubtitles(nil)
	if _, ok := r.Resolve(5); ok {
		t.Error("resolver should report no match after subtitles cleared")
	}
}

func TestRenderAttributesPositions(t *testing.T) {
	base := editstate.DefaultStyle()

	tests := []struct {
		name       string
		position   editstate.Position
		wantAnchor Anchor
		wantMargin int
	}{
		{"top", editstate.PositionTop, AnchorTop, 50},
		{"center", editstate.PositionCenter, AnchorCenter, 0},
		{"bottom", editstate.PositionBottom, AnchorBottom, 50},
		{"default falls back to bottom", editstate.Position(""), AnchorBottom, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := base
			style.Position = tt.position
			spec := RenderAttributes(style)
			if spec.Anchor != tt.wantAnchor {
				t.Errorf("anchor = %v, want %v", spec.Anchor, tt.wantAnchor)
			}
			if spec.MarginVertical != tt.wantMargin {
				t.Errorf("margin = %d, want %d", spec.MarginVertical, tt.wantMargin)
			}
		})
	}
}

func TestRenderAttributesBackground(t *testing.T) {
	style := editstate.DefaultStyle()
	style.BackgroundColor = "#000000"

	spec := RenderAttributes(style)
	if spec.Transparent {
		t.Error("explicit background should not be transparent")
	}
	if spec.Background != "#00000080" {
		t.Errorf("background = %q, want alpha-blended #00000080", spec.Background)
	}

	for _, color := range []string{"", "transparent"} {
		style.BackgroundColor = color
		spec = RenderAttributes(style)
		if !spec.Transparent {
			t.Errorf("background %q should be fully transparent", color)
		}
		if spec.Background != "" {
			t.Errorf("background %q should produce no color, got %q", color, spec.Background)
		}
	}
}

func TestRenderAttributesOutline(t *testing.T) {
	style := editstate.DefaultStyle()
	style.OutlineWidth = 3
	style.OutlineColor = "#FF0000"

	spec := RenderAttributes(style)
	if spec.OutlineWidth != 3 || spec.OutlineColor != "#FF0000" {
		t.Errorf("outline = %d %q", spec.OutlineWidth, spec.OutlineColor)
	}

	style.OutlineWidth = 0
	spec = RenderAttributes(style)
	if spec.OutlineWidth != 0 {
		t.Error("zero width must disable the outline regardless of color")
	}
}
