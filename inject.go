package photoview

// syntheticPointerEvent represents one injected input event in screen
// coordinates, fed through the same pointer state machine as real input.
// Two-pointer events carry a second position and drive the pinch detector
// instead of the drag pointer.
type syntheticPointerEvent struct {
	x, y       float64
	pressed    bool
	twoPointer bool
	x2, y2     float64
}

// InjectPress queues a pointer press at the given screen coordinates.
// The event is consumed on the next Update.
func (v *Viewer) InjectPress(x, y float64) {
	v.injectQueue = append(v.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a pointer move with the button held down. Use between
// InjectPress and InjectRelease to simulate a drag.
func (v *Viewer) InjectMove(x, y float64) {
	v.injectQueue = append(v.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a pointer release at the given screen coordinates.
func (v *Viewer) InjectRelease(x, y float64) {
	v.injectQueue = append(v.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: false})
}

// InjectTap queues a press followed by a release at the same coordinates.
// Consumes two frames.
func (v *Viewer) InjectTap(x, y float64) {
	v.InjectPress(x, y)
	v.InjectRelease(x, y)
}

// InjectDrag queues a full drag: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and release at
// (toX, toY). The whole sequence consumes `frames` frames. Minimum frames
// is 2 (press + release).
func (v *Viewer) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	v.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		v.InjectMove(x, y)
	}
	v.InjectRelease(toX, toY)
}

// InjectPinch queues a two-finger pinch centered on (cx, cy): the pointers
// sit symmetrically about the center and their distance moves linearly from
// fromDist to toDist over `frames` frames, zooming the current photo by
// toDist/fromDist. Minimum frames is 2.
func (v *Viewer) InjectPinch(cx, cy, fromDist, toDist float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames-1)
		half := (fromDist + (toDist-fromDist)*t) / 2
		v.injectQueue = append(v.injectQueue, syntheticPointerEvent{
			x: cx - half, y: cy, pressed: true,
			twoPointer: true, x2: cx + half, y2: cy,
		})
	}
	// Lift both fingers so the next gesture starts clean.
	v.injectQueue = append(v.injectQueue, syntheticPointerEvent{x: cx, y: cy, pressed: false})
}

// processInjectedInput pops one event from the inject queue and feeds it
// through processPointer. Returns true if an event was consumed (real
// pointer input is skipped for the frame).
func (v *Viewer) processInjectedInput() bool {
	if len(v.injectQueue) == 0 {
		return false
	}
	evt := v.injectQueue[0]
	copy(v.injectQueue, v.injectQueue[1:])
	v.injectQueue = v.injectQueue[:len(v.injectQueue)-1]

	if evt.twoPointer {
		var active [maxPointers]bool
		var positions [maxPointers][2]float64
		active[1], active[2] = true, true
		positions[1] = [2]float64{evt.x, evt.y}
		positions[2] = [2]float64{evt.x2, evt.y2}
		v.detectPinch(active, positions)
		return true
	}
	v.pinch.active = false
	v.processPointer(evt.x, evt.y, evt.pressed)
	return true
}
