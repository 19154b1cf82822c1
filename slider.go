package photoview

import "github.com/hajimehoshi/ebiten/v2"

// Slider is the navigation core of the viewer: it owns the gesture state,
// the virtual/public index pair, per-photo zoom and rotation, and the
// enter/leave lifecycle. It knows nothing about pixels on screen — the
// render boundary reads everything it needs from [Slider.Frame].
//
// All entry points are synchronous and single-threaded: each event reads the
// current state snapshot and installs the next one as one indivisible step.
//
// Navigation is undefined on an empty photo list; callers must not invoke it
// before photos are set.
type Slider struct {
	photos []Photo
	cfg    Config

	state        sliderState
	store        *photoStore
	index        int // public index, always in [0, len(photos))
	virtualIndex int
	vis          *visibility

	// OnIndexChange fires when navigation lands on a new public index, or —
	// in controlled mode — when navigation requests one.
	OnIndexChange func(index int)
	// OnClose fires once when a close is triggered, before the leave
	// animation starts.
	OnClose func()
	// OnScale and OnRotate fire after the current photo's transform changes.
	OnScale  func(key string, scale float64)
	OnRotate func(key string, degrees float64)
}

// NewSlider creates a slider over photos. Use [DefaultConfig] as the config
// base. The slider starts hidden; call [Slider.Show] to open it.
func NewSlider(photos []Photo, cfg Config) *Slider {
	if cfg.Viewport == nil {
		cfg.Viewport = func() (float64, float64) {
			w, h := ebiten.WindowSize()
			return float64(w), float64(h)
		}
	}
	if cfg.MaxScale < cfg.MinScale {
		cfg.MaxScale = cfg.MinScale
	}
	s := &Slider{
		photos: photos,
		cfg:    cfg,
		state:  initialSliderState(cfg.MaskOpacity),
		store:  newPhotoStore(),
	}
	s.vis = newVisibility(s.animationEnd)
	return s
}

// --- Accessors ---

// Photos returns the photo list.
func (s *Slider) Photos() []Photo { return s.photos }

// SetPhotos replaces the photo list. The current index is clamped to the new
// bounds; per-photo state keyed by surviving keys is kept.
func (s *Slider) SetPhotos(photos []Photo) {
	s.photos = photos
	if len(photos) == 0 {
		s.index = 0
		s.virtualIndex = 0
		return
	}
	if s.index > len(photos)-1 {
		s.index = len(photos) - 1
		s.virtualIndex = s.index
		s.state.translateX = s.env().anchorOffset()
	}
}

// Index returns the public index.
func (s *Slider) Index() int { return s.index }

// Visible reports the target visibility (true from Show until Close).
func (s *Slider) Visible() bool { return s.vis.visible }

// RealVisible reports whether the viewer is rendered at all; it stays true
// through the whole leave animation.
func (s *Slider) RealVisible() bool { return s.vis.realVisible }

// Phase returns the active visibility animation phase.
func (s *Slider) Phase() AnimationPhase { return s.vis.phase }

// Scale returns the current photo's zoom scale.
func (s *Slider) Scale() float64 { return s.currentPhotoState().scale }

// Rotate returns the current photo's rotation in degrees.
func (s *Slider) Rotate() float64 { return s.currentPhotoState().rotate }

func (s *Slider) currentPhotoState() photoState {
	if len(s.photos) == 0 {
		return defaultPhotoState
	}
	return s.store.get(s.photos[s.index].Key)
}

// --- Lifecycle ---

// Show opens the viewer as a fresh session: gesture state resets, the offset
// is recomputed from the current viewport, and the enter animation starts.
func (s *Slider) Show() {
	s.state = initialSliderState(s.cfg.MaskOpacity)
	s.virtualIndex = s.index
	s.state.translateX = s.env().anchorOffset()
	s.vis.setVisible(true)
}

// Close starts the leave animation and notifies the host. The backdrop
// opacity at this moment is captured for the fade-out, and the overlay
// chrome is forced visible for the closing frames.
func (s *Slider) Close() {
	if !s.vis.visible {
		return
	}
	s.state.lastBackdropOpacity = s.state.backdropOpacity
	s.state.hasLastBackdrop = true
	s.state.overlayVisible = true
	s.vis.setVisible(false)
	if s.OnClose != nil {
		s.OnClose()
	}
}

// Update advances the enter/leave animation by dt seconds.
func (s *Slider) Update(dt float32) {
	s.vis.update(dt)
}

// animationEnd is the visibility lifecycle callback.
//
// When an enter settles, the offset is recomputed from scratch at the
// settled index with no transition — the viewport may have resized while
// the viewer was hidden — and the virtual index rebases onto the public one.
// When a leave settles, the whole session state resets except the public
// index, which the host owns.
func (s *Slider) animationEnd(phase AnimationPhase) {
	switch phase {
	case AnimationEnter:
		s.virtualIndex = s.index
		s.state.translateX = s.env().anchorOffset()
		s.state.shouldTransition = false
	case AnimationLeave:
		s.state = initialSliderState(s.cfg.MaskOpacity)
		s.store.reset()
		s.virtualIndex = s.index
		s.state.translateX = s.env().anchorOffset()
	}
}

// --- Navigation ---

// loopActive reports whether wrap-around navigation is in effect. Looping
// needs at least three photos so the adjacency window never mounts the same
// photo twice.
func (s *Slider) loopActive() bool {
	return s.cfg.Loop && len(s.photos) >= loopMinPhotos
}

// env snapshots the reducer context for one event. The viewport width is
// read on demand, never cached across a gesture.
func (s *Slider) env() reduceEnv {
	w, _ := s.cfg.Viewport()
	return reduceEnv{
		slotWidth:    w + horizontalGutter,
		virtualIndex: s.virtualIndex,
		publicIndex:  s.index,
		photoCount:   len(s.photos),
		loop:         s.loopActive(),
		maskOpacity:  s.cfg.MaskOpacity,
		scale:        s.currentPhotoState().scale,
	}
}

// Next navigates forward one photo.
func (s *Slider) Next() { s.changeIndex(s.index + 1) }

// Prev navigates back one photo.
func (s *Slider) Prev() { s.changeIndex(s.index - 1) }

// SetIndex jumps to an absolute public index. This is the entry point for
// controlled hosts; it always applies, clamped or wrapped per loop mode.
func (s *Slider) SetIndex(requested int) {
	s.applyIndex(requested)
}

// changeIndex routes an internally-triggered navigation. In controlled mode
// the host is asked and nothing moves until it calls SetIndex.
func (s *Slider) changeIndex(requested int) {
	if s.cfg.Controlled {
		if s.OnIndexChange != nil {
			_, public := advance(s.virtualIndex, s.index, requested, len(s.photos), s.loopActive())
			s.OnIndexChange(public)
		}
		return
	}
	s.applyIndex(requested)
}

func (s *Slider) applyIndex(requested int) {
	prev := s.index
	s.virtualIndex, s.index = advance(s.virtualIndex, s.index, requested, len(s.photos), s.loopActive())
	s.state.translateX = s.env().anchorOffset()
	s.state.shouldTransition = true
	if s.index != prev && !s.cfg.Controlled {
		if s.OnIndexChange != nil {
			s.OnIndexChange(s.index)
		}
	}
}

// --- Per-photo transform ---

// SetScale sets the current photo's zoom, clamped to the configured range.
func (s *Slider) SetScale(scale float64) {
	if len(s.photos) == 0 {
		return
	}
	key := s.photos[s.index].Key
	s.store.setScale(key, scale, s.cfg.MinScale, s.cfg.MaxScale)
	if s.OnScale != nil {
		s.OnScale(key, s.store.get(key).scale)
	}
}

// SetRotate sets the current photo's rotation in degrees, unclamped.
func (s *Slider) SetRotate(degrees float64) {
	if len(s.photos) == 0 {
		return
	}
	key := s.photos[s.index].Key
	s.store.setRotate(key, degrees)
	if s.OnRotate != nil {
		s.OnRotate(key, degrees)
	}
}

// --- Gesture entry points ---

// gestureActive reports whether reach events are accepted right now.
// Gestures never race the enter/leave animation.
func (s *Slider) gestureActive() bool {
	return s.vis.realVisible && s.vis.phase == AnimationNone
}

// ReachMove feeds one classified drag sample. The axis is fixed for the
// whole gesture by the input source; scale is the live pinch/wheel scale of
// the current photo (1 when not zooming).
func (s *Slider) ReachMove(axis Axis, clientX, clientY, scale float64) {
	if !s.gestureActive() {
		return
	}
	env := s.env()
	env.scale = scale
	switch axis {
	case AxisX:
		s.state = reduceMoveX(s.state, env, clientX)
	case AxisY:
		s.state = reduceMoveY(s.state, env, clientY)
	}
}

// ReachUp feeds the gesture release. Exactly one outcome is applied: a page
// turn, a pull-close, or a snap back.
func (s *Slider) ReachUp(clientX, clientY float64) {
	if !s.gestureActive() {
		return
	}
	next, outcome := reduceRelease(s.state, s.env(), clientX, clientY, s.cfg.PullClosable)
	s.state = next
	switch outcome {
	case outcomeNext:
		s.changeIndex(s.index + 1)
	case outcomePrev:
		s.changeIndex(s.index - 1)
	case outcomeClose:
		s.Close()
	}
}

// PhotoResize handles a viewport size or orientation change: in-progress
// drags are abandoned and the offset reflows to the fresh width without an
// animated transition.
func (s *Slider) PhotoResize() {
	if !s.vis.realVisible {
		return
	}
	s.state = reduceResize(s.state, s.env())
}

// Key feeds one normalized key press. Navigation keys are ignored while a
// drag is in flight so a release never lands on a different photo.
func (s *Slider) Key(action KeyAction) {
	if !s.gestureActive() {
		return
	}
	switch action {
	case KeyPrev:
		if !s.state.touched {
			s.Prev()
		}
	case KeyNext:
		if !s.state.touched {
			s.Next()
		}
	case KeyClose:
		s.Close()
	}
}

// ToggleOverlay flips the overlay chrome visibility (single tap on the photo
// when photo-tap close is disabled).
func (s *Slider) ToggleOverlay() {
	s.state.overlayVisible = !s.state.overlayVisible
}

// --- Render projection ---

// FrameItem is one mounted photo with everything the render boundary needs
// to position it.
type FrameItem struct {
	Photo Photo
	// Index is the photo's public index.
	Index int
	// Left is the slot offset on the virtual strip; the photo's on-screen X
	// is Left plus the frame's TranslateX.
	Left float64
	// Scale and Rotate are the photo's transform state.
	Scale  float64
	Rotate float64
	// Transform is Scale and Rotate rendered as a CSS-style string for
	// web-like hosts.
	Transform string
}

// Frame is the per-frame projection of the slider for the render boundary.
// It is a read-only snapshot; drawing it has no effect on the state machine.
type Frame struct {
	TranslateX float64
	// Transition reports whether movement to TranslateX should animate.
	Transition bool
	// Touched reports a live drag; renderers should follow the offset
	// directly instead of animating toward it.
	Touched bool
	// OverlayVisible gates the overlay chrome (banner, arrows, toolbar).
	OverlayVisible bool
	// BackdropOpacity is the coordinator's backdrop value. Multiply by
	// Progress for the final rendered alpha.
	BackdropOpacity float64
	// RealVisible and Progress describe the enter/leave lifecycle.
	RealVisible bool
	Progress    float64

	Index  int
	Scale  float64
	Rotate float64

	Items []FrameItem
}

// Frame snapshots the current render projection.
func (s *Slider) Frame() Frame {
	st := s.currentPhotoState()
	f := Frame{
		TranslateX:      s.state.translateX,
		Transition:      s.state.shouldTransition,
		Touched:         s.state.touched,
		OverlayVisible:  s.state.overlayVisible,
		BackdropOpacity: renderedBackdrop(s.state, s.vis.realVisible, s.cfg.MaskOpacity),
		RealVisible:     s.vis.realVisible,
		Progress:        s.vis.progress,
		Index:           s.index,
		Scale:           st.scale,
		Rotate:          st.rotate,
	}
	if len(s.photos) == 0 {
		return f
	}

	w, _ := s.cfg.Viewport()
	slotWidth := w + horizontalGutter
	window := adjacencyWindow(s.photos, s.index, s.virtualIndex, s.loopActive())
	f.Items = make([]FrameItem, len(window))
	for i, item := range window {
		ps := s.store.get(item.Photo.Key)
		f.Items[i] = FrameItem{
			Photo:     item.Photo,
			Index:     item.Index,
			Left:      slotWidth * float64(item.Position),
			Scale:     ps.scale,
			Rotate:    ps.rotate,
			Transform: transformString(ps.scale, ps.rotate),
		}
	}
	return f
}
