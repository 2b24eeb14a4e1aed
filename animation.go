package scrollarea

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 2 float64 fields on a Node simultaneously.
// Create one via the convenience constructors (FadeTo, TweenPosition) and
// call Update(dt) each frame. The group auto-applies values and marks the
// node dirty. If the target node is disposed, the group stops immediately.
//
// There is no global animation manager — callers drive Update themselves
// (the Area does this for its track fades).
type TweenGroup struct {
	tweens [2]*gween.Tween
	count  int
	fields [2]*float64
	target *Node
	Done   bool
}

// Update advances all tweens by dt seconds, writes values to the target
// fields, and marks the node dirty. If the target node has been disposed,
// Done is set to true and no writes occur.
func (g *TweenGroup) Update(dt float64) {
	if g == nil || g.Done {
		return
	}

	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(float32(dt))
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone

	if g.target != nil {
		g.target.MarkDirty()
	}
}

// FadeTo creates a TweenGroup that animates node.Alpha to the target value
// over the specified duration using the easing function.
func FadeTo(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: node}
	g.tweens[0] = gween.New(float32(node.Alpha), float32(to), duration, fn)
	g.fields[0] = &node.Alpha
	return g
}

// TweenPosition creates a TweenGroup that animates node.X and node.Y to the
// given target coordinates over the specified duration using the easing
// function.
func TweenPosition(node *Node, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: node}
	g.tweens[0] = gween.New(float32(node.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(node.Y), float32(toY), duration, fn)
	g.fields[0] = &node.X
	g.fields[1] = &node.Y
	return g
}
