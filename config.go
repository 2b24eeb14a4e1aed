package scrollarea

// accentColor is the default slider fill.
var accentColor = mustColor("#6d7cff")

// Config controls an Area's axes, track placement, and slider styling.
// Start from DefaultConfig and override fields as needed; New normalizes
// non-positive sizes back to their defaults.
type Config struct {
	// EnableHorizontal and EnableVertical turn each axis on. An enabled axis
	// still only shows a track when its content actually overflows.
	EnableHorizontal bool
	EnableVertical   bool

	// HorizontalEdge places the horizontal track at the top or bottom edge.
	HorizontalEdge HorizontalEdge
	// VerticalEdge places the vertical track at the left or right edge.
	VerticalEdge VerticalEdge

	// Visibility selects when tracks are shown.
	Visibility Visibility

	// SliderColor is the slider fill; the track behind it uses the same color
	// at trackAlpha.
	SliderColor Color
	// SliderOpacity is the slider's resting opacity in [0, 1].
	SliderOpacity float64
	// SliderPadding is the gap, in pixels, between the slider and the
	// viewport edge it hugs.
	SliderPadding float64
	// SliderSize is the slider's thickness in pixels (its length is derived
	// from the content ratio).
	SliderSize float64
}

// DefaultConfig returns the package defaults: both axes on, bottom/right
// placement, hover visibility, and the accent slider style.
func DefaultConfig() Config {
	return Config{
		EnableHorizontal: true,
		EnableVertical:   true,
		HorizontalEdge:   EdgeBottom,
		VerticalEdge:     EdgeRight,
		Visibility:       VisibilityHover,
		SliderColor:      accentColor,
		SliderOpacity:    0.5,
		SliderPadding:    4,
		SliderSize:       6,
	}
}

// normalize fills zero-valued styling fields with their defaults so a
// hand-built Config with only the interesting fields set still renders.
func (c Config) normalize() Config {
	def := DefaultConfig()
	if c.SliderSize <= 0 {
		c.SliderSize = def.SliderSize
	}
	if c.SliderPadding < 0 {
		c.SliderPadding = def.SliderPadding
	}
	if c.SliderOpacity <= 0 {
		c.SliderOpacity = def.SliderOpacity
	}
	if c.SliderColor == (Color{}) {
		c.SliderColor = def.SliderColor
	}
	return c
}

// sliderGap is the corner reservation one axis's track makes for the other:
// the other slider's padding plus its thickness.
func (c Config) sliderGap() float64 {
	return c.SliderPadding + c.SliderSize
}
