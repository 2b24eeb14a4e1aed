package scrollarea

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	axisH = 0
	axisV = 1

	// trackAlpha is the track background opacity relative to the slider color.
	trackAlpha = 0.15
	// fadeDuration is the track show/hide fade time in seconds.
	fadeDuration = 0.15
	// wheelScrollStep is how many pixels one wheel unit scrolls.
	wheelScrollStep = 24.0
	// sliderHoverLighten is how far the slider color blends toward white
	// while the pointer is over it.
	sliderHoverLighten = 0.25
)

// AxisState is the per-axis render state an Area exposes: whether the axis is
// active, whether its track is currently shown, and the resolved track and
// slider geometry in viewport-relative pixels. Each recompute pass replaces
// the whole record.
type AxisState struct {
	Enabled  bool
	Visible  bool
	Dragging bool

	TrackX, TrackY float64
	TrackSize      float64
	SliderOffset   float64
	SliderSize     float64
}

// ContentInfo is the live measurement snapshot passed to a ContentFunc.
type ContentInfo struct {
	Viewport      Rect
	ContentWidth  float64
	ContentHeight float64
	ScrollLeft    float64
	ScrollTop     float64
}

// ContentFunc produces the content node from live measurements. It is
// evaluated once per recompute pass. A panic inside it is recovered and the
// previously produced content is kept for that pass.
type ContentFunc func(ContentInfo) *Node

// ScrollEvent is passed to the OnScroll callback after every offset change.
type ScrollEvent struct {
	ScrollLeft float64
	ScrollTop  float64
	DeltaX     float64
	DeltaY     float64
}

// Area is a scroll container that clips its content to a viewport and renders
// draggable slider tracks sized from the visible-to-total content ratio.
//
// An Area owns a small node subtree (clip container, two tracks, two
// sliders); attach Node() under the scene root and feed it measurements via
// SetViewport and SetContent/SetContentSize. Everything else — wheel
// scrolling, slider drags, track paging, visibility policy — is wired
// through the scene's pointer events.
type Area struct {
	scene *Scene
	cfg   Config

	// Measurements.
	viewport           Rect
	contentW, contentH float64
	scrollX, scrollY   float64

	// Per-axis render state: the single source of render truth.
	horizontal AxisState
	vertical   AxisState

	// Interaction signals.
	visH, visV axisVisibility
	hovered    bool
	dragBase   [2]float64 // slider offset at drag start
	dragActive [2]bool

	// Widget subtree.
	root    *Node
	clip    *Node
	content *Node
	trackH  *Node
	sliderH *Node
	trackV  *Node
	sliderV *Node

	contentFunc ContentFunc
	onScroll    func(ScrollEvent)

	fadeH, fadeV   *TweenGroup
	glideX, glideY *gween.Tween

	disposed bool
}

// New creates a scroll area bound to the given scene. The returned Area's
// Node must be added to the scene tree by the caller.
func New(scene *Scene, cfg Config) *Area {
	a := &Area{scene: scene, cfg: cfg.normalize()}
	a.buildNodes()
	a.wireEvents()
	return a
}

// Node returns the area's root node for attachment to the scene tree.
func (a *Area) Node() *Node {
	return a.root
}

func (a *Area) buildNodes() {
	cfg := a.cfg

	a.root = NewContainer("scrollarea")
	a.root.Interactable = true

	a.clip = NewContainer("content-clip")
	a.root.AddChild(a.clip)

	trackColor := cfg.SliderColor.WithAlpha(trackAlpha)
	sliderColor := cfg.SliderColor.WithAlpha(cfg.SliderOpacity)

	a.trackH = NewBox("track-h", 0, cfg.SliderSize, trackColor)
	a.sliderH = NewBox("slider-h", 0, cfg.SliderSize, sliderColor)
	a.trackH.AddChild(a.sliderH)

	a.trackV = NewBox("track-v", cfg.SliderSize, 0, trackColor)
	a.sliderV = NewBox("slider-v", cfg.SliderSize, 0, sliderColor)
	a.trackV.AddChild(a.sliderV)

	// Hidden until a recompute enables and reveals them.
	for _, n := range []*Node{a.trackH, a.trackV} {
		n.Visible = false
		n.Alpha = 0
		a.root.AddChild(n)
	}
}

func (a *Area) wireEvents() {
	// Hover tracks the pointer over the whole area. Enter/leave fire in
	// leave-then-enter order when the pointer moves between the container
	// and a track, so the flag lands on the right value within the frame.
	enter := func(PointerContext) { a.setHovered(true) }
	leave := func(PointerContext) { a.setHovered(false) }
	for _, n := range []*Node{a.root, a.trackH, a.trackV} {
		n.OnPointerEnter = enter
		n.OnPointerLeave = leave
	}

	a.root.OnWheel = a.handleWheel
	a.root.OnUpdate = a.step

	a.sliderH.OnPointerDown = func(ctx PointerContext) { a.beginDrag(axisH) }
	a.sliderH.OnDrag = func(ctx DragContext) { a.dragMove(axisH, ctx) }
	a.sliderH.OnPointerUp = func(ctx PointerContext) { a.endDrag(axisH) }

	a.sliderV.OnPointerDown = func(ctx PointerContext) { a.beginDrag(axisV) }
	a.sliderV.OnDrag = func(ctx DragContext) { a.dragMove(axisV, ctx) }
	a.sliderV.OnPointerUp = func(ctx PointerContext) { a.endDrag(axisV) }

	// Sliders also carry the hover flag, plus a highlight of their own.
	a.sliderH.OnPointerEnter = func(PointerContext) { a.setHovered(true); a.highlight(a.sliderH, true) }
	a.sliderH.OnPointerLeave = func(PointerContext) { a.setHovered(false); a.highlight(a.sliderH, false) }
	a.sliderV.OnPointerEnter = func(PointerContext) { a.setHovered(true); a.highlight(a.sliderV, true) }
	a.sliderV.OnPointerLeave = func(PointerContext) { a.setHovered(false); a.highlight(a.sliderV, false) }

	// Clicking the track outside the slider pages one viewport toward the
	// click.
	a.trackH.OnClick = func(ctx ClickContext) {
		if ctx.LocalX < a.horizontal.SliderOffset {
			a.ScrollBy(-a.viewport.Width, 0)
		} else if ctx.LocalX > a.horizontal.SliderOffset+a.horizontal.SliderSize {
			a.ScrollBy(a.viewport.Width, 0)
		}
	}
	a.trackV.OnClick = func(ctx ClickContext) {
		if ctx.LocalY < a.vertical.SliderOffset {
			a.ScrollBy(0, -a.viewport.Height)
		} else if ctx.LocalY > a.vertical.SliderOffset+a.vertical.SliderSize {
			a.ScrollBy(0, a.viewport.Height)
		}
	}
}

func (a *Area) highlight(slider *Node, on bool) {
	base := a.cfg.SliderColor.WithAlpha(a.cfg.SliderOpacity)
	if on {
		slider.Color = base.Lighten(sliderHoverLighten)
	} else {
		slider.Color = base
	}
}

// --- Measurements & configuration ---

// SetViewport sets the area's outer viewport rectangle in world coordinates
// and recomputes geometry for both axes.
func (a *Area) SetViewport(r Rect) {
	a.viewport = r
	a.root.SetPosition(r.X, r.Y)
	a.root.HitShape = HitRect{Width: r.Width, Height: r.Height}
	a.clip.ClipWidth = r.Width
	a.clip.ClipHeight = r.Height
	a.clampScroll()
	a.recompute()
}

// Viewport returns the current viewport rectangle.
func (a *Area) Viewport() Rect {
	return a.viewport
}

// SetContent replaces the area's content with a static node. The content's
// extent is taken from the node's dimensions; use SetContentSize afterwards
// to override.
func (a *Area) SetContent(node *Node) {
	a.replaceContent(node)
	a.contentFunc = nil
	if node != nil {
		w, h := nodeDimensions(node)
		a.contentW, a.contentH = w*node.ScaleX, h*node.ScaleY
	} else {
		a.contentW, a.contentH = 0, 0
	}
	a.clampScroll()
	a.recompute()
}

// SetContentFunc installs a content producer that is re-evaluated on every
// recompute pass with the live measurements. The initial evaluation happens
// immediately.
func (a *Area) SetContentFunc(fn ContentFunc) {
	a.contentFunc = fn
	a.recompute()
}

// SetContentSize sets the content's full extent (the inner measurement) and
// recomputes geometry. Use this when the content node has no intrinsic
// dimensions, or when it changed size.
func (a *Area) SetContentSize(w, h float64) {
	a.contentW, a.contentH = w, h
	a.clampScroll()
	a.recompute()
}

// SetConfig replaces the area's configuration and recomputes geometry.
// An active drag session is unaffected.
func (a *Area) SetConfig(cfg Config) {
	a.cfg = cfg.normalize()
	a.trackH.Height = a.cfg.SliderSize
	a.sliderH.Height = a.cfg.SliderSize
	a.trackV.Width = a.cfg.SliderSize
	a.sliderV.Width = a.cfg.SliderSize
	a.trackH.Color = a.cfg.SliderColor.WithAlpha(trackAlpha)
	a.trackV.Color = a.cfg.SliderColor.WithAlpha(trackAlpha)
	a.highlight(a.sliderH, false)
	a.highlight(a.sliderV, false)
	a.recompute()
}

// Config returns the area's current (normalized) configuration.
func (a *Area) Config() Config {
	return a.cfg
}

// OnScroll installs a callback invoked after every scroll offset change.
func (a *Area) OnScroll(fn func(ScrollEvent)) {
	a.onScroll = fn
}

// Horizontal returns the horizontal axis render state.
func (a *Area) Horizontal() AxisState {
	return a.horizontal
}

// Vertical returns the vertical axis render state.
func (a *Area) Vertical() AxisState {
	return a.vertical
}

// ScrollLeft returns the current horizontal scroll offset.
func (a *Area) ScrollLeft() float64 {
	return a.scrollX
}

// ScrollTop returns the current vertical scroll offset.
func (a *Area) ScrollTop() float64 {
	return a.scrollY
}

// --- Scrolling ---

// ScrollTo scrolls to the given offsets, clamped to the valid range.
func (a *Area) ScrollTo(x, y float64) {
	a.setScroll(x, y)
}

// ScrollBy scrolls by the given deltas, clamped to the valid range.
func (a *Area) ScrollBy(dx, dy float64) {
	a.setScroll(a.scrollX+dx, a.scrollY+dy)
}

// GlideTo animates the scroll offsets to the target over the given duration
// in seconds. Each animation step goes through the normal scroll path, so
// geometry, visibility, and the OnScroll callback all observe it.
func (a *Area) GlideTo(x, y float64, duration float32) {
	x = clamp(x, 0, maxScroll(a.measureH()))
	y = clamp(y, 0, maxScroll(a.measureV()))
	a.glideX = gween.New(float32(a.scrollX), float32(x), duration, ease.OutQuad)
	a.glideY = gween.New(float32(a.scrollY), float32(y), duration, ease.OutQuad)
}

// setScroll is the single scroll mutation path. Offsets are clamped, changed
// axes feed the visibility policy, geometry is recomputed, and the scroll
// callback fires.
func (a *Area) setScroll(x, y float64) {
	x = clamp(x, 0, maxScroll(a.measureH()))
	y = clamp(y, 0, maxScroll(a.measureV()))
	dx := x - a.scrollX
	dy := y - a.scrollY
	if dx == 0 && dy == 0 {
		return
	}
	a.scrollX = x
	a.scrollY = y
	if dx != 0 {
		a.visH.noteScroll()
	}
	if dy != 0 {
		a.visV.noteScroll()
	}
	a.recompute()
	if a.onScroll != nil {
		a.onScroll(ScrollEvent{ScrollLeft: x, ScrollTop: y, DeltaX: dx, DeltaY: dy})
	}
}

// clampScroll pulls offsets back into range after a measurement change,
// without treating the correction as scroll activity.
func (a *Area) clampScroll() {
	a.scrollX = clamp(a.scrollX, 0, maxScroll(a.measureH()))
	a.scrollY = clamp(a.scrollY, 0, maxScroll(a.measureV()))
}

func (a *Area) handleWheel(ctx WheelContext) {
	dx, dy := ctx.DX, ctx.DY
	if ctx.Modifiers&ModShift != 0 && dx == 0 {
		// Shift redirects a plain vertical wheel onto the horizontal axis.
		dx, dy = dy, 0
	}
	a.ScrollBy(-dx*wheelScrollStep, -dy*wheelScrollStep)
}

// --- Drag protocol ---

func (a *Area) beginDrag(axis int) {
	st := a.axisState(axis)
	if !st.Enabled {
		return
	}
	a.dragActive[axis] = true
	a.dragBase[axis] = st.SliderOffset
	st.Dragging = true
	if axis == axisH {
		a.scene.CapturePointer(a.sliderH)
	} else {
		a.scene.CapturePointer(a.sliderV)
	}
}

func (a *Area) dragMove(axis int, ctx DragContext) {
	if !a.dragActive[axis] {
		return
	}
	var delta float64
	var m AxisMeasure
	if axis == axisH {
		delta = ctx.GlobalX - ctx.StartX
		m = a.measureH()
	} else {
		delta = ctx.GlobalY - ctx.StartY
		m = a.measureV()
	}
	st := a.axisState(axis)
	g := AxisGeometry{
		Enabled:    st.Enabled,
		TrackSize:  st.TrackSize,
		SliderSize: st.SliderSize,
	}
	candidate := a.dragBase[axis] + delta
	// Out-of-range candidates are ignored rather than clamped; slider
	// geometry is never written here — it is re-derived from the scroll
	// offset this produces.
	off, ok := sliderToScroll(candidate, g, m)
	if !ok {
		return
	}
	if axis == axisH {
		a.setScroll(off, a.scrollY)
	} else {
		a.setScroll(a.scrollX, off)
	}
}

func (a *Area) endDrag(axis int) {
	if !a.dragActive[axis] {
		return
	}
	a.dragActive[axis] = false
	a.axisState(axis).Dragging = false
	a.scene.ReleasePointer()
}

func (a *Area) axisState(axis int) *AxisState {
	if axis == axisH {
		return &a.horizontal
	}
	return &a.vertical
}

// --- Recompute ---

func (a *Area) measureH() AxisMeasure {
	return AxisMeasure{OuterExtent: a.viewport.Width, InnerExtent: a.contentW, ScrollOffset: a.scrollX}
}

func (a *Area) measureV() AxisMeasure {
	return AxisMeasure{OuterExtent: a.viewport.Height, InnerExtent: a.contentH, ScrollOffset: a.scrollY}
}

// recompute replaces both axes' render state from the current measurements
// and configuration, refreshes the widget subtree, and re-evaluates a
// content producer if one is installed. Every trigger — scroll, resize,
// config change, drag (via the scroll it causes) — funnels through here.
func (a *Area) recompute() {
	if a.disposed {
		return
	}
	cfg := a.cfg

	// Enabled is determined for both axes first: each axis's track length
	// depends on whether the other is enabled.
	hEnabled := cfg.EnableHorizontal && a.contentW > a.viewport.Width
	vEnabled := cfg.EnableVertical && a.contentH > a.viewport.Height

	var gh, gv AxisGeometry
	if hEnabled {
		gh = resolveAxis(a.measureH(), cfg.sliderGap(), vEnabled)
	}
	if vEnabled {
		gv = resolveAxis(a.measureV(), cfg.sliderGap(), hEnabled)
	}

	// Horizontal track origin.
	hx := safePadding
	if gv.Enabled && cfg.VerticalEdge == EdgeLeft {
		hx += cfg.sliderGap()
	}
	hy := cfg.SliderPadding
	if cfg.HorizontalEdge == EdgeBottom {
		hy = a.viewport.Height - cfg.SliderPadding - cfg.SliderSize
	}

	// Vertical track origin.
	vy := safePadding
	if gh.Enabled && cfg.HorizontalEdge == EdgeTop {
		vy += cfg.sliderGap()
	}
	vx := cfg.SliderPadding
	if cfg.VerticalEdge == EdgeRight {
		vx = a.viewport.Width - cfg.SliderPadding - cfg.SliderSize
	}

	// Wholesale per-axis record replacement; an axis that became disabled
	// keeps no stale geometry.
	a.horizontal = AxisState{
		Enabled:      gh.Enabled,
		Visible:      a.horizontal.Visible,
		Dragging:     a.dragActive[axisH],
		TrackX:       hx,
		TrackY:       hy,
		TrackSize:    gh.TrackSize,
		SliderOffset: gh.SliderOffset,
		SliderSize:   gh.SliderSize,
	}
	a.vertical = AxisState{
		Enabled:      gv.Enabled,
		Visible:      a.vertical.Visible,
		Dragging:     a.dragActive[axisV],
		TrackX:       vx,
		TrackY:       vy,
		TrackSize:    gv.TrackSize,
		SliderOffset: gv.SliderOffset,
		SliderSize:   gv.SliderSize,
	}

	a.syncNodes()
	a.refreshContent()
	a.applyVisibility()

	debugf("recompute: h=%+v v=%+v scroll=(%g, %g)", a.horizontal, a.vertical, a.scrollX, a.scrollY)
}

// syncNodes pushes the resolved axis state into the widget subtree.
func (a *Area) syncNodes() {
	h, v := &a.horizontal, &a.vertical

	a.trackH.SetPosition(h.TrackX, h.TrackY)
	a.trackH.Width = h.TrackSize
	a.sliderH.SetPosition(h.SliderOffset, 0)
	a.sliderH.Width = h.SliderSize

	a.trackV.SetPosition(v.TrackX, v.TrackY)
	a.trackV.Height = v.TrackSize
	a.sliderV.SetPosition(0, v.SliderOffset)
	a.sliderV.Height = v.SliderSize

	if a.content != nil {
		a.content.SetPosition(-a.scrollX, -a.scrollY)
	}
}

// refreshContent re-evaluates the content producer, if any. A panic or a nil
// result keeps the previously produced node.
func (a *Area) refreshContent() {
	if a.contentFunc == nil {
		return
	}
	node := a.safeContent()
	if node == nil || node == a.content {
		return
	}
	a.replaceContent(node)
	a.content.SetPosition(-a.scrollX, -a.scrollY)
}

func (a *Area) safeContent() (node *Node) {
	defer func() {
		if r := recover(); r != nil {
			warnf("content callback panicked: %v", r)
			node = nil
		}
	}()
	return a.contentFunc(ContentInfo{
		Viewport:      a.viewport,
		ContentWidth:  a.contentW,
		ContentHeight: a.contentH,
		ScrollLeft:    a.scrollX,
		ScrollTop:     a.scrollY,
	})
}

func (a *Area) replaceContent(node *Node) {
	if a.content != nil && a.content.Parent == a.clip {
		a.clip.RemoveChild(a.content)
	}
	a.content = node
	if node != nil {
		a.clip.AddChild(node)
	}
}

// applyVisibility reconciles each axis's rendered visibility with the policy
// and starts a fade when it flips. A disabled axis's track is removed from
// drawing outright.
func (a *Area) applyVisibility() {
	a.applyAxisVisibility(&a.horizontal, &a.visH, a.trackH, a.sliderH, &a.fadeH)
	a.applyAxisVisibility(&a.vertical, &a.visV, a.trackV, a.sliderV, &a.fadeV)
}

func (a *Area) applyAxisVisibility(st *AxisState, vis *axisVisibility, track, slider *Node, fade **TweenGroup) {
	track.Visible = st.Enabled

	want := nextVisible(a.cfg.Visibility, st.Enabled, a.hovered, vis)
	if want == st.Visible {
		return
	}
	st.Visible = want
	track.Interactable = want
	slider.Interactable = want
	target := 0.0
	if want {
		target = 1.0
	}
	*fade = FadeTo(track, target, fadeDuration, ease.OutQuad)
}

func (a *Area) setHovered(h bool) {
	if a.hovered == h {
		return
	}
	a.hovered = h
	a.applyVisibility()
}

// step advances time-based state: the scroll settle timers, track fades, and
// any glide animation. Driven from the root node's OnUpdate.
func (a *Area) step(dt float64) {
	a.visH.update(dt)
	a.visV.update(dt)

	if a.glideX != nil || a.glideY != nil {
		a.stepGlide(dt)
	}

	a.applyVisibility()
	a.fadeH.Update(dt)
	a.fadeV.Update(dt)
}

func (a *Area) stepGlide(dt float64) {
	x, y := a.scrollX, a.scrollY
	done := true
	if a.glideX != nil {
		vx, fin := a.glideX.Update(float32(dt))
		x = float64(vx)
		done = done && fin
	}
	if a.glideY != nil {
		vy, fin := a.glideY.Update(float32(dt))
		y = float64(vy)
		done = done && fin
	}
	a.setScroll(x, y)
	if done {
		a.glideX, a.glideY = nil, nil
	}
}

// Dispose tears down the area's subtree and releases pointer capture if one
// of its sliders still holds it. Mandatory before dropping an Area whose
// slider might be mid-drag.
func (a *Area) Dispose() {
	if a.disposed {
		return
	}
	a.disposed = true
	if c := a.scene.Captured(); c != nil && isAncestor(a.root, c) {
		a.scene.ReleasePointer()
	}
	a.root.Dispose()
}
