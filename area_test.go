package scrollarea

import (
	"math"
	"testing"
)

// testViewport is the viewport used by most Area tests: world rect
// (10, 10)–(210, 110). With 400px-wide content the horizontal track is
// 200-6 = 194px long and its slider 194*200/400 = 97px.
var testViewport = Rect{X: 10, Y: 10, Width: 200, Height: 100}

func newTestArea(cfg Config) (*Scene, *Area) {
	s := NewScene()
	a := New(s, cfg)
	s.Root().AddChild(a.Node())
	a.SetViewport(testViewport)
	return s, a
}

// stepFrame refreshes world transforms and consumes one queued input event,
// mirroring the order Scene.Update uses.
func stepFrame(s *Scene) {
	updateWorldTransform(s.root, identityTransform, 1.0, false)
	s.processInput()
}

func alwaysVisible() Config {
	cfg := DefaultConfig()
	cfg.Visibility = VisibilityAlways
	return cfg
}

// --- Geometry wiring ---

func TestAreaSingleAxisGeometry(t *testing.T) {
	_, a := newTestArea(alwaysVisible())
	a.SetContentSize(400, 100)

	h := a.Horizontal()
	if !h.Enabled {
		t.Fatal("horizontal axis should be enabled for 400px content in a 200px viewport")
	}
	if h.TrackSize != 194 {
		t.Errorf("TrackSize = %v, want 194", h.TrackSize)
	}
	if h.SliderSize != 97 {
		t.Errorf("SliderSize = %v, want 97", h.SliderSize)
	}
	if h.SliderOffset != 0 {
		t.Errorf("SliderOffset = %v, want 0", h.SliderOffset)
	}
	if h.TrackX != safePadding || h.TrackY != 90 {
		t.Errorf("track origin = (%v, %v), want (3, 90)", h.TrackX, h.TrackY)
	}

	v := a.Vertical()
	if v.Enabled {
		t.Error("vertical axis should be disabled when content height fits")
	}
	if v.TrackSize != 0 || v.SliderSize != 0 || v.SliderOffset != 0 {
		t.Errorf("disabled axis kept stale geometry: %+v", v)
	}
}

func TestAreaBothAxesReserveCorner(t *testing.T) {
	_, a := newTestArea(alwaysVisible())
	a.SetContentSize(400, 300)

	h, v := a.Horizontal(), a.Vertical()
	if !h.Enabled || !v.Enabled {
		t.Fatal("both axes should be enabled")
	}
	// Each track gives up sliderGap (4+6=10) for the other's corner.
	if h.TrackSize != 184 {
		t.Errorf("horizontal TrackSize = %v, want 184", h.TrackSize)
	}
	if v.TrackSize != 84 {
		t.Errorf("vertical TrackSize = %v, want 84", v.TrackSize)
	}
	// Default placement: bottom and right edges.
	if h.TrackX != 3 || h.TrackY != 90 {
		t.Errorf("horizontal track origin = (%v, %v), want (3, 90)", h.TrackX, h.TrackY)
	}
	if v.TrackX != 190 || v.TrackY != 3 {
		t.Errorf("vertical track origin = (%v, %v), want (190, 3)", v.TrackX, v.TrackY)
	}
}

func TestAreaEdgePlacement(t *testing.T) {
	cfg := alwaysVisible()
	cfg.HorizontalEdge = EdgeTop
	cfg.VerticalEdge = EdgeLeft
	_, a := newTestArea(cfg)
	a.SetContentSize(400, 300)

	h, v := a.Horizontal(), a.Vertical()
	// Tracks hug the opposite edges and shift past each other's corner.
	if h.TrackX != 13 || h.TrackY != 4 {
		t.Errorf("horizontal track origin = (%v, %v), want (13, 4)", h.TrackX, h.TrackY)
	}
	if v.TrackX != 4 || v.TrackY != 13 {
		t.Errorf("vertical track origin = (%v, %v), want (4, 13)", v.TrackX, v.TrackY)
	}
}

func TestAreaDisablesWhenContentShrinks(t *testing.T) {
	_, a := newTestArea(alwaysVisible())
	a.SetContentSize(400, 100)
	a.ScrollTo(150, 0)

	// Content now fits; the axis disables and the offset clamps home.
	a.SetContentSize(150, 80)

	h := a.Horizontal()
	if h.Enabled {
		t.Error("horizontal axis should disable when content fits")
	}
	if h.TrackSize != 0 || h.SliderSize != 0 || h.SliderOffset != 0 {
		t.Errorf("disabled axis kept stale geometry: %+v", h)
	}
	if a.ScrollLeft() != 0 {
		t.Errorf("ScrollLeft = %v, want 0 after clamp", a.ScrollLeft())
	}
}

func TestAreaSetContentAdoptsNodeSize(t *testing.T) {
	_, a := newTestArea(alwaysVisible())
	a.SetContent(NewBox("content", 400, 300, ColorWhite))

	if a.contentW != 400 || a.contentH != 300 {
		t.Errorf("content size = (%v, %v), want (400, 300)", a.contentW, a.contentH)
	}
	if !a.Horizontal().Enabled || !a.Vertical().Enabled {
		t.Error("both axes should enable from the adopted content size")
	}
}

func TestAreaContentFollowsScroll(t *testing.T) {
	_, a := newTestArea(alwaysVisible())
	a.SetContent(NewBox("content", 400, 100, ColorWhite))
	a.ScrollTo(50, 0)

	if a.content.X != -50 || a.content.Y != 0 {
		t.Errorf("content position = (%v, %v), want (-50, 0)", a.content.X, a.content.Y)
	}
}

// --- Scrolling ---

func TestAreaScrollToClamps(t *testing.T) {
	_, a := newTestArea(alwaysVisible())
	a.SetContentSize(400, 100)

	a.ScrollTo(1000, 50)
	if a.ScrollLeft() != 200 {
		t.Errorf("ScrollLeft = %v, want 200 (max)", a.ScrollLeft())
	}
	if a.ScrollTop() != 0 {
		t.Errorf("ScrollTop = %v, want 0 (vertical disabled)", a.ScrollTop())
	}

	a.ScrollTo(-10, 0)
	if a.ScrollLeft() != 0 {
		t.Errorf("ScrollLeft = %v, want 0 after negative clamp", a.ScrollLeft())
	}
}

func TestAreaOnScroll(t *testing.T) {
	_, a := newTestArea(alwaysVisible())
	a.SetContentSize(400, 300)

	var events []ScrollEvent
	a.OnScroll(func(ev ScrollEvent) { events = append(events, ev) })

	a.ScrollBy(30, 10)
	if len(events) != 1 {
		t.Fatalf("expected 1 scroll event, got %d", len(events))
	}
	ev := events[0]
	if ev.ScrollLeft != 30 || ev.ScrollTop != 10 || ev.DeltaX != 30 || ev.DeltaY != 10 {
		t.Errorf("event = %+v, want {30 10 30 10}", ev)
	}

	// A no-op scroll must not fire the callback.
	a.ScrollBy(0, 0)
	a.ScrollTo(30, 10)
	if len(events) != 1 {
		t.Errorf("no-op scrolls fired %d extra events", len(events)-1)
	}
}

func TestAreaSliderTracksScroll(t *testing.T) {
	_, a := newTestArea(alwaysVisible())
	a.SetContentSize(400, 100)

	a.ScrollTo(100, 0) // halfway
	h := a.Horizontal()
	if math.Abs(h.SliderOffset-48.5) > 1e-9 {
		t.Errorf("SliderOffset = %v, want 48.5 at half scroll", h.SliderOffset)
	}

	a.ScrollTo(200, 0)
	h = a.Horizontal()
	if math.Abs(h.SliderOffset-(h.TrackSize-h.SliderSize)) > 1e-9 {
		t.Errorf("slider should sit at track end: offset %v, track %v, slider %v",
			h.SliderOffset, h.TrackSize, h.SliderSize)
	}
}

// --- Wheel ---

func TestAreaWheelScrolls(t *testing.T) {
	s, a := newTestArea(alwaysVisible())
	a.SetContentSize(400, 300)

	s.InjectWheel(110, 60, 0, -1, 0)
	stepFrame(s)
	if a.ScrollTop() != wheelScrollStep {
		t.Errorf("ScrollTop = %v, want %v after one wheel notch", a.ScrollTop(), wheelScrollStep)
	}
	if a.ScrollLeft() != 0 {
		t.Errorf("ScrollLeft = %v, want 0", a.ScrollLeft())
	}

	s.InjectWheel(110, 60, -1, 0, 0)
	stepFrame(s)
	if a.ScrollLeft() != wheelScrollStep {
		t.Errorf("ScrollLeft = %v, want %v after horizontal wheel", a.ScrollLeft(), wheelScrollStep)
	}
}

func TestAreaWheelShiftRedirectsToHorizontal(t *testing.T) {
	s, a := newTestArea(alwaysVisible())
	a.SetContentSize(400, 300)

	s.InjectWheel(110, 60, 0, -1, ModShift)
	stepFrame(s)
	if a.ScrollLeft() != wheelScrollStep {
		t.Errorf("ScrollLeft = %v, want %v (shift-wheel)", a.ScrollLeft(), wheelScrollStep)
	}
	if a.ScrollTop() != 0 {
		t.Errorf("ScrollTop = %v, want 0 (redirected)", a.ScrollTop())
	}
}

func TestAreaWheelOutsideViewportIgnored(t *testing.T) {
	s, a := newTestArea(alwaysVisible())
	a.SetContentSize(400, 300)

	s.InjectWheel(500, 500, 0, -1, 0)
	stepFrame(s)
	if a.ScrollLeft() != 0 || a.ScrollTop() != 0 {
		t.Errorf("wheel outside the viewport scrolled to (%v, %v)", a.ScrollLeft(), a.ScrollTop())
	}
}

// --- Slider drag ---

func TestAreaSliderDrag(t *testing.T) {
	s, a := newTestArea(alwaysVisible())
	a.SetContentSize(400, 100)

	// Slider spans world x 13–110 on the track at y 100–106. Dragging 40px
	// right maps through the track ratio: 40/97 of 200px max scroll.
	s.InjectPress(60, 103)
	stepFrame(s)
	s.InjectMove(100, 103)
	stepFrame(s)

	want := 40.0 / 97.0 * 200.0
	if math.Abs(a.ScrollLeft()-want) > 1e-9 {
		t.Errorf("ScrollLeft = %v, want %v", a.ScrollLeft(), want)
	}
	if math.Abs(a.Horizontal().SliderOffset-40) > 1e-9 {
		t.Errorf("SliderOffset = %v, want 40 (round trip)", a.Horizontal().SliderOffset)
	}
	if !a.Horizontal().Dragging {
		t.Error("Dragging should be true mid-drag")
	}

	s.InjectRelease(100, 103)
	stepFrame(s)
	if a.Horizontal().Dragging {
		t.Error("Dragging should clear on release")
	}
	if math.Abs(a.ScrollLeft()-want) > 1e-9 {
		t.Errorf("release moved the scroll offset to %v", a.ScrollLeft())
	}
}

func TestAreaSliderDragCapturesPointer(t *testing.T) {
	s, a := newTestArea(alwaysVisible())
	a.SetContentSize(400, 100)

	s.InjectPress(60, 103)
	stepFrame(s)
	if s.Captured() != a.sliderH {
		t.Fatal("slider should capture the pointer on press")
	}

	// Capture keeps the drag alive even when the pointer leaves the track.
	s.InjectMove(100, 300)
	stepFrame(s)
	want := 40.0 / 97.0 * 200.0
	if math.Abs(a.ScrollLeft()-want) > 1e-9 {
		t.Errorf("captured drag off-track: ScrollLeft = %v, want %v", a.ScrollLeft(), want)
	}

	s.InjectRelease(100, 300)
	stepFrame(s)
	if s.Captured() != nil {
		t.Error("capture should release on pointer up")
	}
}

func TestAreaSliderDragPastEndIgnored(t *testing.T) {
	s, a := newTestArea(alwaysVisible())
	a.SetContentSize(400, 100)

	s.InjectPress(60, 103)
	stepFrame(s)
	s.InjectMove(500, 103)
	stepFrame(s)

	// Candidate offset 440 is outside the 97px travel; the drag stops
	// advancing instead of clamping.
	if a.ScrollLeft() != 0 {
		t.Errorf("ScrollLeft = %v, want 0 for an out-of-range candidate", a.ScrollLeft())
	}

	s.InjectRelease(500, 103)
	stepFrame(s)
}

func TestAreaSliderDragPastStartIgnored(t *testing.T) {
	s, a := newTestArea(alwaysVisible())
	a.SetContentSize(400, 100)
	a.ScrollTo(100, 0) // slider spans world x 61.5–158.5

	s.InjectPress(100, 103)
	stepFrame(s)
	s.InjectMove(30, 103)
	stepFrame(s)

	if a.ScrollLeft() != 100 {
		t.Errorf("ScrollLeft = %v, want 100 for a below-zero candidate", a.ScrollLeft())
	}

	s.InjectRelease(30, 103)
	stepFrame(s)
}

func TestAreaVerticalSliderDrag(t *testing.T) {
	s, a := newTestArea(alwaysVisible())
	a.SetContentSize(100, 400) // vertical only: track 94px, slider 23.5px

	v := a.Vertical()
	if v.TrackSize != 94 || v.SliderSize != 23.5 {
		t.Fatalf("vertical geometry = %+v", v)
	}

	// Track at world x 200–206, y 13–107; slider top at y 13.
	s.InjectPress(203, 20)
	stepFrame(s)
	s.InjectMove(203, 50)
	stepFrame(s)

	want := 30.0 / (94.0 - 23.5) * 300.0
	if math.Abs(a.ScrollTop()-want) > 1e-9 {
		t.Errorf("ScrollTop = %v, want %v", a.ScrollTop(), want)
	}

	s.InjectRelease(203, 50)
	stepFrame(s)
}

// --- Track paging ---

func TestAreaTrackClickPages(t *testing.T) {
	s, a := newTestArea(alwaysVisible())
	a.SetContentSize(400, 100)

	// Click right of the slider: one viewport forward, clamped to max.
	s.InjectClick(150, 103)
	stepFrame(s)
	stepFrame(s)
	if a.ScrollLeft() != 200 {
		t.Fatalf("ScrollLeft = %v, want 200 after paging right", a.ScrollLeft())
	}

	// Slider now sits at the track end; clicking its left edge pages back.
	s.InjectClick(20, 103)
	stepFrame(s)
	stepFrame(s)
	if a.ScrollLeft() != 0 {
		t.Errorf("ScrollLeft = %v, want 0 after paging left", a.ScrollLeft())
	}
}

// --- Visibility policies ---

func TestAreaHoverReveals(t *testing.T) {
	cfg := DefaultConfig() // hover mode
	s, a := newTestArea(cfg)
	a.SetContentSize(400, 300)

	if a.Horizontal().Visible || a.Vertical().Visible {
		t.Fatal("tracks should start hidden in hover mode")
	}

	s.InjectHover(110, 60)
	stepFrame(s)
	if !a.Horizontal().Visible || !a.Vertical().Visible {
		t.Error("tracks should reveal while the pointer is over the area")
	}

	s.InjectHover(400, 400)
	stepFrame(s)
	if a.Horizontal().Visible || a.Vertical().Visible {
		t.Error("tracks should hide when the pointer leaves")
	}
}

func TestAreaScrollRevealSettles(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Visibility = VisibilityScroll
	_, a := newTestArea(cfg)
	a.SetContentSize(400, 300)

	a.ScrollBy(30, 0)
	if !a.Horizontal().Visible {
		t.Fatal("horizontal track should reveal on scroll")
	}
	if a.Vertical().Visible {
		t.Error("vertical track should stay hidden; its axis did not scroll")
	}

	a.step(0.2)
	if !a.Horizontal().Visible {
		t.Error("track hid before the settle window elapsed")
	}
	a.step(0.2)
	if a.Horizontal().Visible {
		t.Error("track should hide once scrolling settles")
	}
}

func TestAreaScrollRevealExtendedByNewScroll(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Visibility = VisibilityScroll
	_, a := newTestArea(cfg)
	a.SetContentSize(400, 100)

	a.ScrollBy(10, 0)
	a.step(0.3)
	a.ScrollBy(10, 0) // supersedes the first settle timer
	a.step(0.1)
	if !a.Horizontal().Visible {
		t.Error("a newer scroll should restart the settle window")
	}
	a.step(0.3)
	if a.Horizontal().Visible {
		t.Error("track should hide after the restarted window elapses")
	}
}

func TestAreaVisibilityNever(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Visibility = VisibilityNever
	s, a := newTestArea(cfg)
	a.SetContentSize(400, 300)

	a.ScrollBy(30, 20)
	s.InjectHover(110, 60)
	stepFrame(s)
	if a.Horizontal().Visible || a.Vertical().Visible {
		t.Error("never mode revealed a track")
	}
	// Scrolling still works without visible tracks.
	if a.ScrollLeft() != 30 || a.ScrollTop() != 20 {
		t.Errorf("scroll = (%v, %v), want (30, 20)", a.ScrollLeft(), a.ScrollTop())
	}
}

func TestAreaHiddenTrackNotInteractable(t *testing.T) {
	s, a := newTestArea(DefaultConfig()) // hover mode, pointer elsewhere
	a.SetContentSize(400, 100)

	// Pressing where the hidden slider would be must not start a drag.
	s.InjectPress(60, 103)
	stepFrame(s)
	if s.Captured() == a.sliderH {
		t.Error("hidden slider captured the pointer")
	}
	s.InjectRelease(60, 103)
	stepFrame(s)
}

// --- Glide ---

func TestAreaGlideTo(t *testing.T) {
	_, a := newTestArea(alwaysVisible())
	a.SetContentSize(400, 100)

	a.GlideTo(100, 0, 0.5)
	for i := 0; i < 12; i++ {
		a.step(0.05)
	}
	if math.Abs(a.ScrollLeft()-100) > 1e-6 {
		t.Errorf("ScrollLeft = %v, want 100 after glide", a.ScrollLeft())
	}
	if a.glideX != nil || a.glideY != nil {
		t.Error("glide tweens should clear when finished")
	}
}

func TestAreaGlideToClampsTarget(t *testing.T) {
	_, a := newTestArea(alwaysVisible())
	a.SetContentSize(400, 100)

	a.GlideTo(5000, 0, 0.2)
	for i := 0; i < 10; i++ {
		a.step(0.05)
	}
	if math.Abs(a.ScrollLeft()-200) > 1e-6 {
		t.Errorf("ScrollLeft = %v, want 200 (clamped glide target)", a.ScrollLeft())
	}
}

// --- Live content ---

func TestAreaContentFunc(t *testing.T) {
	_, a := newTestArea(alwaysVisible())
	a.SetContentSize(400, 100)

	var last ContentInfo
	node := NewBox("content", 400, 100, ColorWhite)
	a.SetContentFunc(func(info ContentInfo) *Node {
		last = info
		return node
	})

	if a.content != node {
		t.Fatal("content producer result should be adopted")
	}
	a.ScrollTo(50, 0)
	if last.ScrollLeft != 50 {
		t.Errorf("producer saw ScrollLeft %v, want 50", last.ScrollLeft)
	}
	if last.Viewport != testViewport {
		t.Errorf("producer saw viewport %+v", last.Viewport)
	}
}

func TestAreaContentFuncPanicKeepsPrevious(t *testing.T) {
	_, a := newTestArea(alwaysVisible())
	a.SetContentSize(400, 100)

	node := NewBox("content", 400, 100, ColorWhite)
	boom := false
	a.SetContentFunc(func(ContentInfo) *Node {
		if boom {
			panic("content producer failure")
		}
		return node
	})

	boom = true
	a.ScrollBy(10, 0) // triggers a recompute; the panic is contained
	if a.content != node {
		t.Error("a panicking producer should keep the previous content")
	}
	if a.ScrollLeft() != 10 {
		t.Errorf("ScrollLeft = %v, want 10; the scroll itself must still land", a.ScrollLeft())
	}
}

// --- Config & teardown ---

func TestAreaSetConfig(t *testing.T) {
	_, a := newTestArea(alwaysVisible())
	a.SetContentSize(400, 300)
	a.ScrollTo(50, 20)

	cfg := alwaysVisible()
	cfg.SliderSize = 10
	a.SetConfig(cfg)

	if a.ScrollLeft() != 50 || a.ScrollTop() != 20 {
		t.Error("SetConfig should not move the scroll offset")
	}
	// Thicker sliders widen the corner gap: 200 - 6 - (4+10) = 180.
	if got := a.Horizontal().TrackSize; got != 180 {
		t.Errorf("TrackSize = %v, want 180 with 10px sliders", got)
	}
	if a.trackH.Height != 10 || a.trackV.Width != 10 {
		t.Error("track thickness should follow the new slider size")
	}
}

func TestAreaDisposeReleasesCapture(t *testing.T) {
	s, a := newTestArea(alwaysVisible())
	a.SetContentSize(400, 100)

	s.InjectPress(60, 103)
	stepFrame(s)
	if s.Captured() != a.sliderH {
		t.Fatal("expected the slider to hold capture")
	}

	a.Dispose()
	if s.Captured() != nil {
		t.Error("Dispose should release a capture held by its slider")
	}
	if !a.Node().IsDisposed() {
		t.Error("Dispose should dispose the widget subtree")
	}
	a.Dispose() // idempotent
}
