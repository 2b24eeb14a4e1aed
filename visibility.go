package scrollarea

// Visibility selects when a track is shown. The zero value is
// VisibilityHover.
type Visibility uint8

const (
	// VisibilityHover shows tracks only while the pointer is over the area.
	VisibilityHover Visibility = iota
	// VisibilityAlways shows enabled tracks permanently.
	VisibilityAlways
	// VisibilityNever hides tracks permanently.
	VisibilityNever
	// VisibilityScroll reveals a track while its axis is scrolling and for a
	// short settle window afterwards.
	VisibilityScroll
)

// scrollSettleDelay is how long, in seconds, a track stays revealed after the
// last offset change on its axis in VisibilityScroll mode.
const scrollSettleDelay = 0.35

// pendingRevert is a scheduled hide with the scroll generation captured at
// schedule time.
type pendingRevert struct {
	at  float64
	gen uint64
}

// axisVisibility tracks one axis's reveal state for VisibilityScroll mode.
//
// Each offset change bumps the generation counter and schedules a revert at
// now+scrollSettleDelay. A due revert only hides the track if its captured
// generation is still current — a newer scroll supersedes every revert
// scheduled before it. The two axes hold independent counters; scrolling one
// axis never extends or cuts short the other's settle window.
type axisVisibility struct {
	revealed bool
	now      float64 // accumulated time in seconds
	gen      uint64  // bumped on every offset change on this axis
	pending  []pendingRevert
}

// noteScroll records an offset change on this axis: reveal immediately and
// schedule a settle revert for this generation.
func (v *axisVisibility) noteScroll() {
	v.gen++
	v.revealed = true
	v.pending = append(v.pending, pendingRevert{at: v.now + scrollSettleDelay, gen: v.gen})
}

// update advances time and fires due reverts; stale ones (superseded by a
// newer scroll) no-op.
func (v *axisVisibility) update(dt float64) {
	v.now += dt
	n := 0
	for _, p := range v.pending {
		if v.now < p.at {
			v.pending[n] = p
			n++
			continue
		}
		if p.gen == v.gen {
			v.revealed = false
		}
	}
	v.pending = v.pending[:n]
}

// nextVisible derives an axis's rendered visibility from the configured mode
// and the live interaction signals. A disabled axis is never visible.
func nextVisible(mode Visibility, enabled, hovered bool, v *axisVisibility) bool {
	if !enabled {
		return false
	}
	switch mode {
	case VisibilityAlways:
		return true
	case VisibilityNever:
		return false
	case VisibilityScroll:
		return v.revealed
	default: // VisibilityHover
		return hovered
	}
}
