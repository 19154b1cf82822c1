package photoview

import "testing"

func TestRenderedBackdropLiveWhileVisible(t *testing.T) {
	st := initialSliderState(1)
	st.backdropOpacity = 0.6
	if got := renderedBackdrop(st, true, 1); got != 0.6 {
		t.Errorf("visible backdrop = %v, want live value 0.6", got)
	}
}

func TestRenderedBackdropCapturedDuringClose(t *testing.T) {
	// Close in flight: the live value no longer updates, the fade-out uses
	// the opacity captured when close was requested.
	st := initialSliderState(1)
	st.backdropOpacity = 1
	st.lastBackdropOpacity = 0.3
	st.hasLastBackdrop = true
	if got := renderedBackdrop(st, false, 1); got != 0.3 {
		t.Errorf("closing backdrop = %v, want captured 0.3", got)
	}
}

func TestRenderedBackdropDefaultsToMask(t *testing.T) {
	// Hidden with nothing captured (never closed via gesture): full mask.
	st := initialSliderState(0.8)
	if got := renderedBackdrop(st, false, 0.8); got != 0.8 {
		t.Errorf("backdrop = %v, want mask opacity 0.8", got)
	}
}
