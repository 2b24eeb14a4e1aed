package scrollarea

import (
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

const defaultDragDeadZone = 2.0 // pixels

// PointerContext carries pointer event data.
type PointerContext struct {
	Node      *Node
	GlobalX   float64
	GlobalY   float64
	LocalX    float64
	LocalY    float64
	Button    MouseButton
	Modifiers KeyModifiers
}

// ClickContext carries click event data.
type ClickContext struct {
	Node      *Node
	GlobalX   float64
	GlobalY   float64
	LocalX    float64
	LocalY    float64
	Button    MouseButton
	Modifiers KeyModifiers
}

// DragContext carries drag event data. StartX/StartY are the world
// coordinates where the pointer went down; DeltaX/DeltaY are the movement
// since the previous drag event.
type DragContext struct {
	Node      *Node
	GlobalX   float64
	GlobalY   float64
	LocalX    float64
	LocalY    float64
	StartX    float64
	StartY    float64
	DeltaX    float64
	DeltaY    float64
	Button    MouseButton
	Modifiers KeyModifiers
}

// WheelContext carries mouse wheel event data. DX and DY are the raw wheel
// offsets reported by the host for this frame.
type WheelContext struct {
	Node      *Node
	GlobalX   float64
	GlobalY   float64
	DX, DY    float64
	Modifiers KeyModifiers
}

// pointerState tracks the mouse pointer across frames.
type pointerState struct {
	down      bool
	startX    float64
	startY    float64
	lastX     float64
	lastY     float64
	hitNode   *Node
	hoverNode *Node // last node the pointer was hovering over (for enter/leave)
	dragging  bool
	button    MouseButton // button captured at press time
}

// CapturePointer routes all pointer events to the given node until released.
// A node holding capture receives move/drag/up events even when the pointer
// is outside its bounds.
func (s *Scene) CapturePointer(node *Node) {
	s.captured = node
}

// ReleasePointer stops routing pointer events to a captured node.
func (s *Scene) ReleasePointer() {
	s.captured = nil
}

// Captured returns the node currently holding pointer capture, or nil.
func (s *Scene) Captured() *Node {
	return s.captured
}

// SetDragDeadZone sets the minimum movement in pixels before a drag starts.
func (s *Scene) SetDragDeadZone(pixels float64) {
	s.dragDeadZone = pixels
}

// PointerPosition returns the last observed pointer position in world
// coordinates.
func (s *Scene) PointerPosition() (float64, float64) {
	return s.pointer.lastX, s.pointer.lastY
}

// --- Hit testing ---

// nodeContainsLocal tests whether (lx, ly) falls inside a node's hit region.
// Uses HitShape if set; otherwise derives an AABB from node dimensions.
// Nodes with neither are not hit-testable.
func nodeContainsLocal(n *Node, lx, ly float64) bool {
	if n.HitShape != nil {
		return n.HitShape.Contains(lx, ly)
	}
	w, h := nodeDimensions(n)
	if w == 0 && h == 0 {
		return false
	}
	return lx >= 0 && lx <= w && ly >= 0 && ly <= h
}

// rebuildSortedChildren refreshes a node's ZIndex-sorted traversal order.
// The sort is stable so equal ZIndex values keep insertion order.
func rebuildSortedChildren(n *Node) {
	n.sortedChildren = append(n.sortedChildren[:0], n.children...)
	sort.SliceStable(n.sortedChildren, func(i, j int) bool {
		return n.sortedChildren[i].ZIndex < n.sortedChildren[j].ZIndex
	})
	n.childrenSorted = true
}

// sortedOrder returns the node's children in painter order.
func sortedOrder(n *Node) []*Node {
	if len(n.children) == 0 {
		return nil
	}
	if !n.childrenSorted {
		rebuildSortedChildren(n)
	}
	if n.sortedChildren != nil {
		return n.sortedChildren
	}
	return n.children
}

// collectInteractable walks the tree in painter order (DFS, ZIndex-sorted),
// appending interactable hit-testable nodes to buf. Skips Visible=false or
// Interactable=false subtrees.
func collectInteractable(n *Node, buf []*Node) []*Node {
	if !n.Visible || !n.Interactable {
		return buf
	}
	if n.HitShape != nil || n.Type != NodeTypeContainer {
		buf = append(buf, n)
	}
	for _, child := range sortedOrder(n) {
		buf = collectInteractable(child, buf)
	}
	return buf
}

// hitTest finds the topmost interactable node at (wx, wy).
// Returns nil if nothing is hit.
func (s *Scene) hitTest(wx, wy float64) *Node {
	s.hitBuf = collectInteractable(s.root, s.hitBuf[:0])

	// Iterate backward (reverse painter order): topmost visual node first.
	for i := len(s.hitBuf) - 1; i >= 0; i-- {
		n := s.hitBuf[i]
		lx, ly := n.WorldToLocal(wx, wy)
		if nodeContainsLocal(n, lx, ly) {
			return n
		}
	}
	return nil
}

// --- Input processing ---

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= ModMeta
	}
	return mods
}

// processInput is called from Scene.Update() to handle mouse and wheel input.
// World transforms are already refreshed at the start of Scene.Update().
// When synthetic events are queued, exactly one is consumed per frame and
// real device input is skipped for that frame.
func (s *Scene) processInput() {
	if len(s.injectQueue) > 0 {
		ev := s.injectQueue[0]
		copy(s.injectQueue, s.injectQueue[1:])
		s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

		if ev.wheel {
			s.processWheel(ev.x, ev.y, ev.dx, ev.dy, ev.mods)
		} else {
			s.processPointer(ev.x, ev.y, ev.pressed, ev.button, ev.mods)
		}
		return
	}

	mods := readModifiers()

	mx, my := ebiten.CursorPosition()
	wx, wy := float64(mx), float64(my)

	// Detect which button is pressed. If the pointer is already down, the
	// stored button is used to avoid changing mid-interaction.
	var pressed bool
	var button MouseButton
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	if left || right || middle {
		pressed = true
		if left {
			button = MouseButtonLeft
		} else if right {
			button = MouseButtonRight
		} else {
			button = MouseButtonMiddle
		}
	}

	s.processPointer(wx, wy, pressed, button, mods)

	if dx, dy := ebiten.Wheel(); dx != 0 || dy != 0 {
		s.processWheel(wx, wy, dx, dy, mods)
	}
}

// processPointer runs the pointer state machine for the mouse pointer.
func (s *Scene) processPointer(wx, wy float64, pressed bool, button MouseButton, mods KeyModifiers) {
	ps := &s.pointer

	// Determine target node: captured node or hit test.
	var target *Node
	if s.captured != nil {
		target = s.captured
	} else {
		target = s.hitTest(wx, wy)
	}

	// Fire hover enter/leave when the hovered node changes.
	if target != ps.hoverNode {
		if ps.hoverNode != nil {
			s.firePointer(ps.hoverNode.OnPointerLeave, ps.hoverNode, wx, wy, button, mods)
		}
		if target != nil {
			s.firePointer(target.OnPointerEnter, target, wx, wy, button, mods)
		}
		ps.hoverNode = target
	}

	switch {
	case pressed && !ps.down:
		// Just pressed — capture button for the duration of this interaction.
		ps.down = true
		ps.button = button
		ps.startX = wx
		ps.startY = wy
		ps.lastX = wx
		ps.lastY = wy
		ps.hitNode = target
		ps.dragging = false

		if target != nil {
			s.firePointer(target.OnPointerDown, target, wx, wy, ps.button, mods)
		}

	case !pressed && ps.down:
		// Just released — use button from press start.
		if ps.dragging {
			s.fireDrag(ps.hitNode, ps.hitNode.OnDragEnd, wx, wy, ps.startX, ps.startY,
				wx-ps.lastX, wy-ps.lastY, ps.button, mods)
		} else if ps.hitNode != nil && ps.hitNode == target {
			s.fireClick(target, wx, wy, ps.button, mods)
		}
		if target != nil {
			s.firePointer(target.OnPointerUp, target, wx, wy, ps.button, mods)
		}

		// Auto-release capture.
		s.captured = nil
		ps.down = false
		ps.hitNode = nil
		ps.dragging = false
		ps.lastX = wx
		ps.lastY = wy

	case pressed && ps.down:
		// Held down, possibly moved — use button from press start.
		if (wx != ps.lastX || wy != ps.lastY) && ps.hitNode != nil {
			if !ps.dragging {
				dx := wx - ps.startX
				dy := wy - ps.startY
				if math.Sqrt(dx*dx+dy*dy) > s.dragDeadZone {
					ps.dragging = true
					s.fireDrag(ps.hitNode, ps.hitNode.OnDragStart, wx, wy, ps.startX, ps.startY,
						wx-ps.startX, wy-ps.startY, ps.button, mods)
				}
			}
			if ps.dragging {
				s.fireDrag(ps.hitNode, ps.hitNode.OnDrag, wx, wy, ps.startX, ps.startY,
					wx-ps.lastX, wy-ps.lastY, ps.button, mods)
			}
		}
		ps.lastX = wx
		ps.lastY = wy

	default:
		// Hover move.
		if wx != ps.lastX || wy != ps.lastY {
			if target != nil {
				s.firePointer(target.OnPointerMove, target, wx, wy, button, mods)
			}
			ps.lastX = wx
			ps.lastY = wy
		}
	}
}

// processWheel dispatches a wheel event to the topmost node under the pointer
// that has an OnWheel handler, bubbling up through ancestors.
func (s *Scene) processWheel(wx, wy, dx, dy float64, mods KeyModifiers) {
	target := s.hitTest(wx, wy)
	for n := target; n != nil; n = n.Parent {
		if n.OnWheel == nil {
			continue
		}
		n.OnWheel(WheelContext{
			Node: n, GlobalX: wx, GlobalY: wy,
			DX: dx, DY: dy, Modifiers: mods,
		})
		return
	}
}

// --- Event dispatch ---

func (s *Scene) firePointer(fn func(PointerContext), node *Node, wx, wy float64, button MouseButton, mods KeyModifiers) {
	if fn == nil {
		return
	}
	lx, ly := node.WorldToLocal(wx, wy)
	fn(PointerContext{
		Node: node, GlobalX: wx, GlobalY: wy, LocalX: lx, LocalY: ly,
		Button: button, Modifiers: mods,
	})
}

func (s *Scene) fireClick(node *Node, wx, wy float64, button MouseButton, mods KeyModifiers) {
	if node == nil || node.OnClick == nil {
		return
	}
	lx, ly := node.WorldToLocal(wx, wy)
	node.OnClick(ClickContext{
		Node: node, GlobalX: wx, GlobalY: wy, LocalX: lx, LocalY: ly,
		Button: button, Modifiers: mods,
	})
}

func (s *Scene) fireDrag(node *Node, fn func(DragContext), wx, wy, startX, startY, deltaX, deltaY float64, button MouseButton, mods KeyModifiers) {
	if node == nil || fn == nil {
		return
	}
	lx, ly := node.WorldToLocal(wx, wy)
	fn(DragContext{
		Node: node, GlobalX: wx, GlobalY: wy, LocalX: lx, LocalY: ly,
		StartX: startX, StartY: startY, DeltaX: deltaX, DeltaY: deltaY,
		Button: button, Modifiers: mods,
	})
}
