package scrollarea

// affine is a translate+scale transform. Widget trees never rotate or skew,
// so the full 6-element matrix the general case needs collapses to four
// values and inversion stays trivial.
type affine struct {
	SX, SY float64 // scale
	TX, TY float64 // translation
}

// identityTransform is the identity transform.
var identityTransform = affine{SX: 1, SY: 1}

// mul composes two transforms: result = parent * child.
func (p affine) mul(c affine) affine {
	return affine{
		SX: p.SX * c.SX,
		SY: p.SY * c.SY,
		TX: p.SX*c.TX + p.TX,
		TY: p.SY*c.TY + p.TY,
	}
}

// apply transforms a local point to the target space.
func (p affine) apply(x, y float64) (float64, float64) {
	return p.SX*x + p.TX, p.SY*y + p.TY
}

// invApply transforms a point from the target space back to local space.
// A degenerate (zero) scale maps everything to the origin rather than
// producing non-finite coordinates.
func (p affine) invApply(x, y float64) (float64, float64) {
	var lx, ly float64
	if p.SX != 0 {
		lx = (x - p.TX) / p.SX
	}
	if p.SY != 0 {
		ly = (y - p.TY) / p.SY
	}
	return lx, ly
}

// localTransform computes the node's local transform from its properties.
func localTransform(n *Node) affine {
	return affine{SX: n.ScaleX, SY: n.ScaleY, TX: n.X, TY: n.Y}
}

// updateWorldTransform recomputes a node's world transform and worldAlpha.
// parentRecomputed indicates whether the parent was recomputed this frame,
// which forces recomputation of this node even if it's not dirty.
func updateWorldTransform(n *Node, parent affine, parentAlpha float64, parentRecomputed bool) {
	recompute := n.transformDirty || parentRecomputed
	if recompute {
		n.world = parent.mul(localTransform(n))
		n.worldAlpha = parentAlpha * n.Alpha
		n.transformDirty = false
	}

	for _, child := range n.children {
		updateWorldTransform(child, n.world, n.worldAlpha, recompute)
	}
}

// --- Transform property setters ---

// SetPosition sets the node's local X and Y and marks it dirty.
func (n *Node) SetPosition(x, y float64) {
	n.X = x
	n.Y = y
	n.transformDirty = true
}

// SetScale sets the node's ScaleX and ScaleY and marks it dirty.
func (n *Node) SetScale(sx, sy float64) {
	n.ScaleX = sx
	n.ScaleY = sy
	n.transformDirty = true
}

// SetAlpha sets the node's alpha and marks it dirty.
func (n *Node) SetAlpha(a float64) {
	n.Alpha = a
	n.transformDirty = true
}

// MarkDirty marks the node's transform as dirty, forcing recomputation
// on the next frame. Useful after bulk-setting fields directly.
func (n *Node) MarkDirty() {
	n.transformDirty = true
}

// --- Coordinate conversion ---

// WorldToLocal converts a world-space point to this node's local coordinate space.
func (n *Node) WorldToLocal(wx, wy float64) (lx, ly float64) {
	return n.world.invApply(wx, wy)
}

// LocalToWorld converts a local-space point to world-space.
func (n *Node) LocalToWorld(lx, ly float64) (wx, wy float64) {
	return n.world.apply(lx, ly)
}
