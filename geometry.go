package scrollarea

// safePadding is the fixed inset, in pixels, that keeps tracks from touching
// the viewport edges. Not externally configurable.
const safePadding = 3.0

// minSliderLength is the smallest usable slider length in pixels. Without a
// floor, very long content would shrink the slider below what a pointer can
// grab.
const minSliderLength = 16.0

// AxisMeasure holds the measurements a single axis is resolved from.
// OuterExtent and InnerExtent are the viewport and content lengths along the
// axis; ScrollOffset is the current offset of the content in pixels.
type AxisMeasure struct {
	OuterExtent  float64
	InnerExtent  float64
	ScrollOffset float64
}

// AxisGeometry is the resolved track/slider geometry for one axis.
// All fields are zero when the axis is disabled.
type AxisGeometry struct {
	Enabled      bool
	TrackSize    float64
	SliderSize   float64
	SliderOffset float64
}

// maxScroll returns the largest valid scroll offset for the measurements,
// or 0 when the content does not overflow.
func maxScroll(m AxisMeasure) float64 {
	if m.InnerExtent <= m.OuterExtent {
		return 0
	}
	return m.InnerExtent - m.OuterExtent
}

// clamp limits v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// resolveAxis computes track and slider geometry for one axis. It is a pure
// function: same inputs always produce the same outputs.
//
// The track spans the viewport along the axis, inset by safePadding at both
// ends. When the other axis is also enabled, the track additionally gives up
// sliderGap pixels (the other axis's padding + thickness) so the two tracks
// never overlap at their shared corner.
//
// Content that does not overflow the viewport disables the axis and zeroes
// the geometry; every division below is guarded by that check, so no input
// can produce NaN or Inf.
func resolveAxis(m AxisMeasure, sliderGap float64, otherEnabled bool) AxisGeometry {
	if m.InnerExtent <= m.OuterExtent || m.OuterExtent <= 0 {
		return AxisGeometry{}
	}

	trackSize := m.OuterExtent - 2*safePadding
	if otherEnabled {
		trackSize -= sliderGap
	}
	if trackSize <= 0 {
		return AxisGeometry{}
	}

	sliderSize := trackSize * m.OuterExtent / m.InnerExtent
	if sliderSize < minSliderLength {
		sliderSize = minSliderLength
	}
	if sliderSize > trackSize {
		sliderSize = trackSize
	}

	ratio := clamp(m.ScrollOffset/(m.InnerExtent-m.OuterExtent), 0, 1)
	return AxisGeometry{
		Enabled:      true,
		TrackSize:    trackSize,
		SliderSize:   sliderSize,
		SliderOffset: ratio * (trackSize - sliderSize),
	}
}

// sliderToScroll maps a candidate slider offset back to a scroll offset — the
// inverse of the ratio applied in resolveAxis. Candidates outside
// (0, maxSliderOffset] are rejected: the second return value is false and
// the caller leaves the scroll offset unchanged, so a drag past either end
// simply stops advancing instead of clamping.
func sliderToScroll(candidate float64, g AxisGeometry, m AxisMeasure) (float64, bool) {
	if !g.Enabled {
		return 0, false
	}
	maxOffset := g.TrackSize - g.SliderSize
	if maxOffset <= 0 {
		return 0, false
	}
	if candidate <= 0 || candidate > maxOffset {
		return 0, false
	}
	return candidate / maxOffset * (m.InnerExtent - m.OuterExtent), true
}
