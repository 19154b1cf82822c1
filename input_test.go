package photoview

import "testing"

func newTestViewer(n int, cfg Config) *Viewer {
	cfg.Viewport = func() (float64, float64) { return 1000, 800 }
	v := NewViewer(testPhotos(n), cfg)
	v.Show()
	v.slider.Update(1) // settle the enter animation
	return v
}

// --- Axis classification ---

func TestPointerAxisLockHorizontal(t *testing.T) {
	v := newTestViewer(5, DefaultConfig())

	v.processPointer(300, 400, true)
	// Mostly-horizontal travel past the start threshold locks the X axis.
	v.processPointer(330, 405, true)
	if !v.pointer.axisLocked || v.pointer.axis != AxisX {
		t.Fatalf("axis = %v (locked=%v), want locked X", v.pointer.axis, v.pointer.axisLocked)
	}

	v.processPointer(230, 405, true)
	v.processPointer(230, 405, false)
	if v.slider.Index() != 1 {
		t.Errorf("index = %d, want 1 after a committed left drag", v.slider.Index())
	}
}

func TestPointerAxisLockVertical(t *testing.T) {
	v := newTestViewer(5, DefaultConfig())
	var closed int
	v.slider.OnClose = func() { closed++ }

	v.processPointer(300, 200, true)
	v.processPointer(305, 230, true)
	if !v.pointer.axisLocked || v.pointer.axis != AxisY {
		t.Fatalf("axis = %v (locked=%v), want locked Y", v.pointer.axis, v.pointer.axisLocked)
	}

	v.processPointer(305, 340, true)
	v.processPointer(305, 340, false)
	if closed != 1 {
		t.Errorf("OnClose fired %d times, want 1 after a 140px pull", closed)
	}
}

func TestPointerBelowThresholdStaysUnlocked(t *testing.T) {
	v := newTestViewer(5, DefaultConfig())
	v.processPointer(300, 400, true)
	v.processPointer(305, 405, true)
	if v.pointer.axisLocked {
		t.Error("travel below the start threshold must not lock an axis")
	}
}

func TestGestureAnchorsAtPressPoint(t *testing.T) {
	// The reach anchor is the press point, so the paging distance includes
	// the travel spent crossing the start threshold.
	v := newTestViewer(5, DefaultConfig())
	v.processPointer(300, 400, true)
	v.processPointer(270, 400, true) // locks at 30px of travel
	v.processPointer(255, 400, true) // 45px total, past MaxMoveOffset
	v.processPointer(255, 400, false)
	if v.slider.Index() != 1 {
		t.Errorf("index = %d, want 1 (drag distance measured from press)", v.slider.Index())
	}
}

// --- Taps ---

func TestTapMaskCloses(t *testing.T) {
	v := newTestViewer(5, DefaultConfig())
	var closed int
	v.slider.OnClose = func() { closed++ }

	v.processPointer(300, 400, true)
	v.processPointer(300, 400, false)
	if closed != 1 {
		t.Errorf("OnClose fired %d times, want 1 for a mask tap", closed)
	}
}

func TestTapTogglesOverlayWhenNotClosable(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaskClosable = false
	v := newTestViewer(5, cfg)
	var closed int
	v.slider.OnClose = func() { closed++ }

	v.processPointer(300, 400, true)
	v.processPointer(300, 400, false)
	if closed != 0 {
		t.Fatalf("OnClose fired %d times, want none", closed)
	}
	if v.slider.Frame().OverlayVisible {
		t.Error("tap must toggle the overlay chrome off")
	}

	v.processPointer(300, 400, true)
	v.processPointer(300, 400, false)
	if !v.slider.Frame().OverlayVisible {
		t.Error("second tap must toggle the overlay chrome back on")
	}
}

// --- Pinch ---

func TestPinchZoomsCurrentPhoto(t *testing.T) {
	v := newTestViewer(5, DefaultConfig())

	var active [maxPointers]bool
	var positions [maxPointers][2]float64
	active[1], active[2] = true, true
	positions[1] = [2]float64{400, 400}
	positions[2] = [2]float64{600, 400} // 200px apart

	v.detectPinch(active, positions)
	if !v.pinch.active {
		t.Fatal("two touches must start a pinch")
	}
	if v.pinch.startScale != 1 {
		t.Fatalf("startScale = %v, want 1", v.pinch.startScale)
	}

	positions[2] = [2]float64{800, 400} // spread to 400px
	v.detectPinch(active, positions)
	if got := v.slider.Scale(); got != 2 {
		t.Errorf("scale = %v, want 2 after doubling the pinch distance", got)
	}

	// Lifting a finger ends the pinch; the reached zoom sticks.
	active[2] = false
	v.detectPinch(active, positions)
	if v.pinch.active {
		t.Error("pinch must end when a touch lifts")
	}
	if got := v.slider.Scale(); got != 2 {
		t.Errorf("scale = %v, want zoom kept after the pinch", got)
	}
}

func TestPinchAbandonsDrag(t *testing.T) {
	v := newTestViewer(5, DefaultConfig())
	v.processPointer(300, 400, true)
	v.processPointer(340, 400, true)

	var active [maxPointers]bool
	var positions [maxPointers][2]float64
	active[1], active[2] = true, true
	positions[1] = [2]float64{340, 400}
	positions[2] = [2]float64{500, 400}
	v.detectPinch(active, positions)

	if v.pointer.down || v.pointer.axisLocked {
		t.Error("starting a pinch must abandon the drag in progress")
	}
}
