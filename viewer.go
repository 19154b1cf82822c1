package photoview

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// slideDuration is the page-turn and snap-back animation length in seconds.
const slideDuration = 0.4

// Viewer is the Ebitengine front end for a [Slider]: it captures mouse,
// touch, wheel, and keyboard input, drives the slide transition, and draws
// the backdrop, photos, and overlay chrome. Call [Viewer.Update] from your
// game's Update and [Viewer.Draw] from Draw.
//
// The state machine itself lives in the embedded Slider and is reachable via
// [Viewer.Slider] for hosts that bring their own input or rendering.
type Viewer struct {
	slider *Slider

	pointer pointerState
	pinch   pinchState

	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID

	prevLeft, prevRight, prevEscape bool

	injectQueue []syntheticPointerEvent
	script      *ScriptRunner

	// Slide transition driver: displayX chases the reducer's translateX.
	displayX    float64
	slideTween  *gween.Tween
	slideTarget float64
}

// NewViewer creates a viewer over photos.
func NewViewer(photos []Photo, cfg Config) *Viewer {
	return &Viewer{slider: NewSlider(photos, cfg)}
}

// Slider returns the underlying state machine.
func (v *Viewer) Slider() *Slider { return v.slider }

// Show opens the viewer at its current index.
func (v *Viewer) Show() {
	v.slider.Show()
	v.displayX = v.slider.Frame().TranslateX
	v.slideTarget = v.displayX
	v.slideTween = nil
}

// ShowAt opens the viewer at the given index.
func (v *Viewer) ShowAt(index int) {
	v.slider.SetIndex(index)
	v.Show()
}

// Close starts the leave animation.
func (v *Viewer) Close() { v.slider.Close() }

// Update advances animations and processes input for one frame.
func (v *Viewer) Update() {
	dt := float32(1.0 / float64(ebiten.TPS()))
	v.slider.Update(dt)
	if v.script != nil {
		v.script.step(v)
	}
	if v.slider.RealVisible() {
		v.processInput()
	}
	v.updateSlide(dt)
}

// updateSlide moves the displayed offset toward the reducer's translateX.
// During a live drag the offset follows the finger directly; with the
// transition flag off (resize reflow, settle after enter) it snaps; otherwise
// it eases over slideDuration.
func (v *Viewer) updateSlide(dt float32) {
	frame := v.slider.Frame()
	target := frame.TranslateX

	if frame.Touched || !frame.Transition {
		v.displayX = target
		v.slideTarget = target
		v.slideTween = nil
		return
	}
	if target != v.slideTarget {
		v.slideTarget = target
		v.slideTween = gween.New(float32(v.displayX), float32(target), slideDuration, ease.OutCubic)
	}
	if v.slideTween != nil {
		val, finished := v.slideTween.Update(dt)
		v.displayX = float64(val)
		if finished {
			v.slideTween = nil
		}
	}
}
