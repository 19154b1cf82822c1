package photoview

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// --- Constants ---

const (
	maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

	// wheelZoomStep is the scale multiplier per wheel notch.
	wheelZoomStep = 0.2
)

// --- Per-pointer state ---

// pointerState tracks the primary interaction pointer. The gesture's axis is
// decided once, when travel from the press point exceeds minStartDrag, and
// every later sample carries that axis until release.
type pointerState struct {
	down       bool
	startX     float64
	startY     float64
	lastX      float64
	lastY      float64
	axis       Axis
	axisLocked bool
}

// --- Pinch state ---

type pinchState struct {
	active      bool
	pointer0    int
	pointer1    int
	initialDist float64
	startScale  float64 // photo scale when the pinch began
}

// --- Input processing ---

// processInput reads keyboard, wheel, mouse, and touch state for one frame
// and feeds the slider. Injected synthetic events take the place of real
// pointer input for the frame they are consumed on.
func (v *Viewer) processInput() {
	v.processKeys()
	v.processWheel()

	if v.processInjectedInput() {
		return
	}
	v.processMousePointer()
	v.processTouchPointers()
}

// processKeys handles arrow navigation and Escape close with manual edge
// detection, matching the pointer handling (no per-frame key buffers).
func (v *Viewer) processKeys() {
	left := ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	escape := ebiten.IsKeyPressed(ebiten.KeyEscape)

	if left && !v.prevLeft {
		v.slider.Key(KeyPrev)
	}
	if right && !v.prevRight {
		v.slider.Key(KeyNext)
	}
	if escape && !v.prevEscape {
		v.slider.Key(KeyClose)
	}
	v.prevLeft, v.prevRight, v.prevEscape = left, right, escape
}

// processWheel zooms the current photo by wheel notches.
func (v *Viewer) processWheel() {
	_, yoff := ebiten.Wheel()
	if yoff == 0 {
		return
	}
	scale := v.slider.Scale() * (1 + yoff*wheelZoomStep)
	v.slider.SetScale(scale)
}

// processMousePointer handles mouse input (pointer 0).
func (v *Viewer) processMousePointer() {
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	v.processPointer(float64(mx), float64(my), pressed)
}

// processTouchPointers maps live touch IDs onto slots 1-9. The lowest slot
// drives the reach gesture; two active slots drive the pinch.
func (v *Viewer) processTouchPointers() {
	touchIDs := ebiten.AppendTouchIDs(v.prevTouchIDs[:0])
	v.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	var positions [maxPointers][2]float64
	for _, tid := range touchIDs {
		slot := v.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true
		tx, ty := ebiten.TouchPosition(tid)
		positions[slot] = [2]float64{float64(tx), float64(ty)}
	}
	for i := 1; i < maxPointers; i++ {
		if v.touchUsed[i] && !activeSlots[i] {
			v.touchUsed[i] = false
			v.touchMap[i] = 0
		}
	}

	v.detectPinch(activeSlots, positions)
	if v.pinch.active {
		return
	}

	// Lowest active slot is the gesture pointer.
	for i := 1; i < maxPointers; i++ {
		if activeSlots[i] {
			v.processPointer(positions[i][0], positions[i][1], true)
			return
		}
	}
	if v.pointer.down {
		v.processPointer(v.pointer.lastX, v.pointer.lastY, false)
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (v *Viewer) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if v.touchUsed[i] && v.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !v.touchUsed[i] {
			v.touchUsed[i] = true
			v.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// detectPinch turns two active touch slots into zoom on the current photo.
// While a pinch is active the drag gesture is suppressed; pull-close
// eligibility is cancelled by the non-neutral scale the reducer sees.
func (v *Viewer) detectPinch(active [maxPointers]bool, positions [maxPointers][2]float64) {
	var p0, p1 int
	count := 0
	for i := 1; i < maxPointers; i++ {
		if active[i] {
			if count == 0 {
				p0 = i
			} else if count == 1 {
				p1 = i
			}
			count++
		}
	}

	if count != 2 {
		v.pinch.active = false
		return
	}

	dx := positions[p1][0] - positions[p0][0]
	dy := positions[p1][1] - positions[p0][1]
	dist := math.Sqrt(dx*dx + dy*dy)

	if !v.pinch.active {
		v.pinch.active = true
		v.pinch.pointer0 = p0
		v.pinch.pointer1 = p1
		v.pinch.initialDist = dist
		v.pinch.startScale = v.slider.Scale()
		// Abandon any drag in progress.
		v.pointer.down = false
		v.pointer.axisLocked = false
		return
	}
	if v.pinch.initialDist > 0 {
		v.slider.SetScale(v.pinch.startScale * dist / v.pinch.initialDist)
	}
}

// processPointer runs the gesture state machine for the primary pointer.
func (v *Viewer) processPointer(x, y float64, pressed bool) {
	ps := &v.pointer

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.startX, ps.startY = x, y
		ps.lastX, ps.lastY = x, y
		ps.axisLocked = false

	case pressed && ps.down:
		if x == ps.lastX && y == ps.lastY {
			return
		}
		ps.lastX, ps.lastY = x, y
		if !ps.axisLocked {
			dx := x - ps.startX
			dy := y - ps.startY
			if math.Sqrt(dx*dx+dy*dy) < minStartDrag {
				return
			}
			ps.axisLocked = true
			if math.Abs(dx) >= math.Abs(dy) {
				ps.axis = AxisX
			} else {
				ps.axis = AxisY
			}
			// Anchor the gesture at the press point so offsets measure from
			// where the finger went down, not where the axis lock happened.
			v.slider.ReachMove(ps.axis, ps.startX, ps.startY, v.slider.Scale())
		}
		v.slider.ReachMove(ps.axis, x, y, v.slider.Scale())

	case !pressed && ps.down:
		ps.down = false
		if ps.axisLocked {
			ps.axisLocked = false
			v.slider.ReachUp(x, y)
			return
		}
		v.handleTap(x, y)
	}
}

// handleTap resolves a press-release with no drag: closing on photo or mask
// per configuration, otherwise toggling the overlay chrome.
func (v *Viewer) handleTap(x, y float64) {
	cfg := v.slider.cfg
	onPhoto := v.hitCurrentPhoto(x, y)

	switch {
	case onPhoto && cfg.PhotoClosable:
		v.slider.Close()
	case !onPhoto && cfg.MaskClosable:
		v.slider.Close()
	default:
		v.slider.ToggleOverlay()
	}
}

// hitCurrentPhoto reports whether (x, y) lands on the current photo. The tap
// point is pulled back through the inverse of the photo's transform so
// zoomed or rotated photos hit-test in their own space.
func (v *Viewer) hitCurrentPhoto(x, y float64) bool {
	s := v.slider
	if len(s.photos) == 0 {
		return false
	}
	photo := s.photos[s.index]
	if photo.Src == nil {
		return false
	}
	w, h := s.cfg.Viewport()
	fitted := fitRect(photo.Src, w, h)

	m := photoTransform(w/2, h/2, s.Scale(), s.Rotate())
	lx, ly := transformPoint(invertAffine(m), x, y)
	return fitted.Contains(lx, ly)
}
