// Package timeline maps continuous playback time to the subtitle segment and
// render attributes that must be visible at that instant.
package timeline

import "github.com/yoursandeshshrestha/videoable/internal/editstate"

// ActiveSegment returns the first segment, in input order, whose closed
// [Start, End] interval contains t. A time exactly on a boundary belongs to
// that segment. When segments overlap (malformed input) the first match wins,
// a deterministic tie-break rather than an error. ok is false when no segment
// contains t; callers must render nothing in that case.
func ActiveSegment(subs []editstate.SubtitleSegment, t float64) (editstate.SubtitleSegment, bool) {
	for _, seg := range subs {
		if t >= seg.Start && t <= seg.End {
			return seg, true
		}
	}
	return editstate.SubtitleSegment{}, false
}

// Resolver resolves the active segment for a stream of playback ticks,
// caching the last hit. The cache is an optimization only: results are always
// identical to a fresh ActiveSegment scan, and replacing the subtitle set
// invalidates it.
type Resolver struct {
	subs    []editstate.SubtitleSegment
	lastIdx int
	hasLast bool
}

// NewResolver returns a resolver over the given subtitle set.
func NewResolver(subs []editstate.SubtitleSegment) *Resolver {
	return &Resolver{subs: subs}
}

// SetSubtitles replaces the subtitle set and drops the cached segment. Called
// whenever a new snapshot is installed.
func (r *Resolver) SetSubtitles(subs []editstate.SubtitleSegment) {
	r.subs = subs
	r.hasLast = false
}

// Resolve returns the segment active at t, if any. The cached segment is
// only reused when it still wins a fresh scan, so overlap tie-breaks stay
// stable across seeks in either direction.
func (r *Resolver) Resolve(t float64) (editstate.SubtitleSegment, bool) {
	if r.hasLast && r.lastIdx < len(r.subs) {
		seg := r.subs[r.lastIdx]
		if t >= seg.Start && t <= seg.End && firstMatch(r.subs, t) == r.lastIdx {
			return seg, true
		}
	}

	idx := firstMatch(r.subs, t)
	if idx < 0 {
		r.hasLast = false
		return editstate.SubtitleSegment{}, false
	}
	r.lastIdx = idx
	r.hasLast = true
	return r.subs[idx], true
}

func firstMatch(subs []editstate.SubtitleSegment, t float64) int {
	for i, seg := range subs {
		if t >= seg.Start && t <= seg.End {
			return i
		}
	}
	return -1
}
