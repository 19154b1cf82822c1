package photoview

import "testing"

func TestInjectTapConsumesOneEventPerFrame(t *testing.T) {
	v := newTestViewer(5, DefaultConfig())
	var closed int
	v.slider.OnClose = func() { closed++ }

	v.InjectTap(300, 400)
	if len(v.injectQueue) != 2 {
		t.Fatalf("queued %d events, want 2", len(v.injectQueue))
	}

	// Frame 1: press.
	if !v.processInjectedInput() {
		t.Fatal("expected an event to be consumed")
	}
	if closed != 0 {
		t.Error("tap must not resolve on the press frame")
	}

	// Frame 2: release → mask tap closes.
	if !v.processInjectedInput() {
		t.Fatal("expected an event to be consumed")
	}
	if closed != 1 {
		t.Errorf("OnClose fired %d times, want 1", closed)
	}
	if v.processInjectedInput() {
		t.Error("queue should be drained")
	}
}

func TestInjectDragPages(t *testing.T) {
	v := newTestViewer(5, DefaultConfig())

	v.InjectDrag(500, 400, 300, 400, 6)
	if len(v.injectQueue) != 6 {
		t.Fatalf("queued %d events, want 6", len(v.injectQueue))
	}
	for v.processInjectedInput() {
	}

	if v.slider.Index() != 1 {
		t.Errorf("index = %d, want 1 after a 200px left drag", v.slider.Index())
	}
}

func TestInjectDragMinimumFrames(t *testing.T) {
	v := newTestViewer(5, DefaultConfig())
	v.InjectDrag(100, 100, 200, 200, 0)
	if len(v.injectQueue) != 2 {
		t.Errorf("queued %d events, want press + release", len(v.injectQueue))
	}
}

func TestInjectPinchZooms(t *testing.T) {
	v := newTestViewer(5, DefaultConfig())

	v.InjectPinch(500, 400, 100, 250, 5)
	if len(v.injectQueue) != 6 {
		t.Fatalf("queued %d events, want 5 pinch frames + release", len(v.injectQueue))
	}
	for v.processInjectedInput() {
	}

	if got, want := v.slider.Scale(), 2.5; got != want {
		t.Errorf("scale = %v, want %v after 100px→250px pinch", got, want)
	}
	if v.pinch.active {
		t.Error("pinch must end when the fingers lift")
	}
}

func TestInjectPullCloseScenario(t *testing.T) {
	v := newTestViewer(5, DefaultConfig())
	var closed int
	v.slider.OnClose = func() { closed++ }

	v.InjectDrag(300, 200, 310, 360, 8)
	for v.processInjectedInput() {
	}

	if closed != 1 {
		t.Errorf("OnClose fired %d times, want 1 for a 160px pull", closed)
	}
	if !v.slider.RealVisible() {
		t.Error("viewer must keep rendering through the leave animation")
	}
}
