package photoview

// sliderState is the gesture-facing state of the slider. Every event handler
// takes the current value and returns the next one; nothing mutates a
// snapshot in place, so one event is always one indivisible step.
//
// anchorX/anchorY are the first sample of the active drag on that axis.
// hasAnchorX/hasAnchorY being false means no drag is in progress on that
// axis. The anchor is fixed for the whole gesture — offsets are measured
// from gesture start, never incrementally, so rapid direction reversals
// cannot accumulate drift.
type sliderState struct {
	translateX       float64
	touched          bool
	shouldTransition bool

	anchorX    float64
	hasAnchorX bool
	anchorY    float64
	hasAnchorY bool

	backdropOpacity     float64
	lastBackdropOpacity float64
	hasLastBackdrop     bool

	overlayVisible bool
	canPullClose   bool
}

// initialSliderState is the fresh-session state: overlay chrome shown, full
// backdrop, no drag in progress. translateX is recomputed on open.
func initialSliderState(maskOpacity float64) sliderState {
	return sliderState{
		backdropOpacity: maskOpacity,
		overlayVisible:  true,
	}
}

// reduceEnv is the read-only context a reducer step runs under. slotWidth is
// the viewport width plus the page gutter, read fresh from the viewport
// collaborator for each event.
type reduceEnv struct {
	slotWidth    float64
	virtualIndex int
	publicIndex  int
	photoCount   int
	loop         bool
	maskOpacity  float64
	scale        float64 // live scale of the current photo (pinch/wheel)
}

// anchorOffset returns the resting translateX for the current virtual index.
func (env reduceEnv) anchorOffset() float64 {
	return -env.slotWidth * float64(env.virtualIndex)
}

// reduceMoveX handles a horizontal reach-move sample.
//
// The first sample of a gesture only records the anchor; no visual delta is
// applied until the next sample. Subsequent samples apply the offset from
// the fixed anchor, halved at the list bounds in non-loop mode (edge
// elasticity).
func reduceMoveX(st sliderState, env reduceEnv, clientX float64) sliderState {
	if !st.hasAnchorX {
		st.anchorX = clientX
		st.hasAnchorX = true
		st.touched = true
		st.shouldTransition = true
		return st
	}

	offset := clientX - st.anchorX
	if !env.loop {
		atFirst := env.publicIndex == 0 && offset > 0
		atLast := env.publicIndex == env.photoCount-1 && offset < 0
		if atFirst || atLast {
			offset /= 2
		}
	}
	st.touched = true
	st.translateX = env.anchorOffset() + offset
	return st
}

// reduceMoveY handles a vertical reach-move sample, fading the backdrop with
// pull distance. Zooming cancels pull-close for the rest of the gesture: a
// pinch that wanders vertically must not dim or dismiss the viewer.
func reduceMoveY(st sliderState, env reduceEnv, clientY float64) sliderState {
	if !st.hasAnchorY {
		st.anchorY = clientY
		st.hasAnchorY = true
		st.touched = true
		st.canPullClose = true
		return st
	}

	if env.scale != 1 {
		st.backdropOpacity = env.maskOpacity
		st.canPullClose = false
		return st
	}

	offsetY := clientY - st.anchorY
	if offsetY < 0 {
		offsetY = -offsetY
	}
	st.touched = true
	st.backdropOpacity = clamp(env.maskOpacity-offsetY/opacityFalloff, 0, env.maskOpacity)
	return st
}

// releaseOutcome is the exclusive decision of a reach-up event. Paging and
// closing are outcomes of the same release; once one is chosen the other's
// side effects are skipped.
type releaseOutcome uint8

const (
	outcomeNone  releaseOutcome = iota // snap back, stay on current photo
	outcomeNext                        // commit navigation to index+1
	outcomePrev                        // commit navigation to index-1
	outcomeClose                       // pull-to-close fired
)

// reduceRelease handles reach-up. A release with no prior move is a zero
// distance drag: the anchors default to the release point itself.
//
// A horizontal travel beyond MaxMoveOffset commits a page turn and leaves
// the rest of the state to the navigation commit. Otherwise the offset snaps
// back to the current photo's resting position; a vertical travel beyond the
// pull threshold closes instead, capturing the live backdrop opacity for the
// fade-out and forcing the overlay chrome visible for the closing frame.
func reduceRelease(st sliderState, env reduceEnv, clientX, clientY float64, pullClosable bool) (sliderState, releaseOutcome) {
	anchorX := clientX
	if st.hasAnchorX {
		anchorX = st.anchorX
	}
	anchorY := clientY
	if st.hasAnchorY {
		anchorY = st.anchorY
	}
	dx := clientX - anchorX
	dy := clientY - anchorY

	if dx < -MaxMoveOffset {
		return clearDrag(st), outcomeNext
	}
	if dx > MaxMoveOffset {
		return clearDrag(st), outcomePrev
	}

	closing := dy > closePullThreshold || dy < -closePullThreshold
	closing = closing && st.canPullClose && pullClosable

	next := clearDrag(st)
	next.translateX = env.anchorOffset()
	if closing {
		next.lastBackdropOpacity = st.backdropOpacity
		next.hasLastBackdrop = true
		next.overlayVisible = true
		return next, outcomeClose
	}
	next.backdropOpacity = env.maskOpacity
	return next, outcomeNone
}

// reduceResize handles a viewport size change: any in-progress drag is
// abandoned and translateX is recomputed from the fresh slot width with no
// animated transition. Calling it with an unchanged width leaves translateX
// numerically identical.
func reduceResize(st sliderState, env reduceEnv) sliderState {
	next := clearDrag(st)
	next.translateX = env.anchorOffset()
	next.shouldTransition = false
	next.backdropOpacity = env.maskOpacity
	return next
}

// clearDrag drops the drag anchors and touch flag, keeping everything else.
func clearDrag(st sliderState) sliderState {
	st.touched = false
	st.hasAnchorX = false
	st.anchorX = 0
	st.hasAnchorY = false
	st.anchorY = 0
	st.canPullClose = false
	st.shouldTransition = true
	return st
}
