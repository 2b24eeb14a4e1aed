package scrollarea

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is the top-level object that owns the widget tree and input state.
// Call Update once per tick and Draw once per frame from the host game loop,
// or use Run for a ready-made loop.
type Scene struct {
	root  *Node
	debug bool

	// ClearColor fills the screen before drawing when its alpha is non-zero.
	ClearColor Color

	// Input state
	pointer      pointerState
	captured     *Node
	hitBuf       []*Node
	dragDeadZone float64
	injectQueue  []syntheticEvent
	testRunner   *TestRunner
}

// NewScene creates a new scene with a pre-created root container.
func NewScene() *Scene {
	root := NewContainer("root")
	root.Interactable = true
	return &Scene{
		root:         root,
		dragDeadZone: defaultDragDeadZone,
	}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Update refreshes world transforms, processes input, and runs per-node
// OnUpdate callbacks with the frame's delta time in seconds.
func (s *Scene) Update() {
	dt := 1.0 / float64(ebiten.TPS())

	// Refresh world transforms first so hit testing sees accurate positions
	// this frame.
	updateWorldTransform(s.root, identityTransform, 1.0, false)

	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInput()
	fireUpdate(s.root, dt)
}

// fireUpdate walks the tree depth-first invoking OnUpdate callbacks.
// Invisible subtrees still update so hidden widgets can keep their timers
// running.
func fireUpdate(n *Node, dt float64) {
	if n.OnUpdate != nil {
		n.OnUpdate(dt)
	}
	for _, child := range n.children {
		fireUpdate(child, dt)
	}
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, tree depth and child count warnings are printed, and
// recompute diagnostics are logged to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}
