package scrollarea

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at draw submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// ParseColor parses a hex color string ("#rrggbb" or "#rgb") into a Color
// with full opacity.
func ParseColor(hex string) (Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", hex, err)
	}
	return Color{R: c.R, G: c.G, B: c.B, A: 1}, nil
}

// mustColor parses a hex color and panics on failure. For package defaults only.
func mustColor(hex string) Color {
	c, err := ParseColor(hex)
	if err != nil {
		panic("scrollarea: " + err.Error())
	}
	return c
}

// Lighten returns the color blended toward white by t in [0, 1].
// Blending happens in Lab space so perceived brightness changes evenly.
func (c Color) Lighten(t float64) Color {
	base := colorful.Color{R: c.R, G: c.G, B: c.B}
	out := base.BlendLab(colorful.Color{R: 1, G: 1, B: 1}, t).Clamped()
	return Color{R: out.R, G: out.G, B: out.B, A: c.A}
}

// WithAlpha returns the color with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// toRGBA converts a Color to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(c.R*c.A*255 + 0.5),
		G: uint8(c.G*c.A*255 + 0.5),
		B: uint8(c.B*c.A*255 + 0.5),
		A: uint8(c.A*255 + 0.5),
	}
}

// Vec2 is a 2D vector used for positions, offsets, and sizes throughout the API.
type Vec2 struct {
	X, Y float64
}

// WhitePixel is a 1x1 white image used to draw solid color boxes.
var WhitePixel *ebiten.Image

func init() {
	WhitePixel = ebiten.NewImage(1, 1)
	WhitePixel.Fill(ColorWhite.toRGBA())
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// NodeType distinguishes rendering behavior for a Node.
type NodeType uint8

const (
	NodeTypeContainer NodeType = iota // group node with no visual output
	NodeTypeBox                       // solid color rectangle
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// HorizontalEdge selects which edge of the viewport the horizontal track
// hugs. The zero value is EdgeBottom.
type HorizontalEdge uint8

const (
	EdgeBottom HorizontalEdge = iota
	EdgeTop
)

// VerticalEdge selects which edge of the viewport the vertical track hugs.
// The zero value is EdgeRight.
type VerticalEdge uint8

const (
	EdgeRight VerticalEdge = iota
	EdgeLeft
)
