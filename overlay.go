package photoview

// renderedBackdrop returns the backdrop opacity the render boundary should
// use for this frame.
//
// While the viewer is visible it is the live gesture-driven value. Once a
// close has been requested the live value stops updating, so the fade-out
// uses the opacity captured at the moment of the close request — without it
// the backdrop would snap back to full opacity mid-fade.
func renderedBackdrop(st sliderState, realVisible bool, maskOpacity float64) float64 {
	if realVisible {
		return st.backdropOpacity
	}
	if st.hasLastBackdrop {
		return st.lastBackdropOpacity
	}
	return maskOpacity
}
