package scrollarea

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Draw renders the widget tree to the given screen image in painter order.
// When ClearColor has non-zero alpha the screen is filled with it first.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}
	// Update may not have run yet this frame (e.g. headless draws); make
	// sure transforms are current before painting.
	updateWorldTransform(s.root, identityTransform, 1.0, false)
	drawNode(screen, s.root)
}

// drawNode draws a single node and recurses into its children. A container
// with a clip rectangle confines its children's pixels via SubImage; the
// sub-image shares the parent's coordinate space, so world transforms apply
// unchanged.
func drawNode(target *ebiten.Image, n *Node) {
	if !n.Visible || n.worldAlpha <= 0 {
		return
	}

	if n.Type == NodeTypeBox {
		drawBox(target, n)
	}

	if len(n.children) == 0 {
		return
	}

	childTarget := target
	if n.ClipWidth > 0 && n.ClipHeight > 0 {
		x0, y0 := n.world.apply(0, 0)
		x1, y1 := n.world.apply(n.ClipWidth, n.ClipHeight)
		childTarget = target.SubImage(image.Rect(int(x0), int(y0), int(x1), int(y1))).(*ebiten.Image)
	}

	for _, child := range sortedOrder(n) {
		drawNode(childTarget, child)
	}
}

// drawBox paints a solid rectangle by scaling the shared white pixel.
// The color scale is premultiplied by the node's effective alpha.
func drawBox(target *ebiten.Image, n *Node) {
	w := n.Width * n.world.SX
	h := n.Height * n.world.SY
	alpha := n.Color.A * n.worldAlpha
	if w <= 0 || h <= 0 || alpha <= 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(n.world.TX, n.world.TY)
	op.ColorScale.Scale(
		float32(n.Color.R*alpha),
		float32(n.Color.G*alpha),
		float32(n.Color.B*alpha),
		float32(alpha),
	)
	target.DrawImage(WhitePixel, op)
}
