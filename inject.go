package scrollarea

// syntheticEvent represents a single injected input event. Coordinates are
// world coordinates, identical to real mouse input.
type syntheticEvent struct {
	x, y    float64
	pressed bool
	button  MouseButton
	wheel   bool
	dx, dy  float64
	mods    KeyModifiers
}

// InjectPress queues a pointer press event at the given coordinates
// (left button). The event is consumed on the next frame's input pass.
func (s *Scene) InjectPress(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{
		x: x, y: y, pressed: true, button: MouseButtonLeft,
	})
}

// InjectMove queues a pointer move event at the given coordinates with the
// button held down. Use this between InjectPress and InjectRelease to
// simulate a drag.
func (s *Scene) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{
		x: x, y: y, pressed: true, button: MouseButtonLeft,
	})
}

// InjectHover queues a pointer move event with no button held.
func (s *Scene) InjectHover(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{x: x, y: y})
}

// InjectRelease queues a pointer release event at the given coordinates.
func (s *Scene) InjectRelease(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{
		x: x, y: y, button: MouseButtonLeft,
	})
}

// InjectClick is a convenience that queues a press followed by a release
// at the same coordinates. Consumes two frames.
func (s *Scene) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectWheel queues a mouse wheel event at the given coordinates with the
// given wheel offsets and modifier state.
func (s *Scene) InjectWheel(x, y, dx, dy float64, mods KeyModifiers) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{
		x: x, y: y, wheel: true, dx: dx, dy: dy, mods: mods,
	})
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, and
// release at (toX, toY). The total sequence consumes `frames` frames.
// Minimum frames is 2 (press + release).
func (s *Scene) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		s.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	s.InjectRelease(toX, toY)
}

// PendingInjections returns the number of queued synthetic events.
func (s *Scene) PendingInjections() int {
	return len(s.injectQueue)
}
