package photoview

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// AnimationPhase identifies the active visibility animation.
type AnimationPhase uint8

const (
	AnimationNone  AnimationPhase = iota // settled, no animation playing
	AnimationEnter                       // opening: fading and expanding in
	AnimationLeave                       // closing: fading and collapsing out
)

// enterLeaveDuration is the visibility animation length in seconds.
const enterLeaveDuration = 0.4

// visibility runs the enter/leave animation lifecycle. The viewer stays
// "really visible" from the moment an enter starts until the moment a leave
// finishes, so closing chrome keeps rendering while it fades.
//
// Progress is 0 when fully hidden and 1 when fully shown; the render layer
// multiplies it into the backdrop and uses it to interpolate the photo
// between its origin rect and its fitted rect.
type visibility struct {
	visible     bool // target state
	realVisible bool // rendered state
	phase       AnimationPhase
	progress    float64
	tween       *gween.Tween

	// onEnd is called once when an animation finishes, with the phase that
	// just ended.
	onEnd func(AnimationPhase)
}

func newVisibility(onEnd func(AnimationPhase)) *visibility {
	return &visibility{onEnd: onEnd}
}

// setVisible starts an enter or leave animation toward the requested state.
// Re-requesting the current target retargets the tween from the live
// progress, so an interrupted leave turns back into an enter mid-flight.
func (v *visibility) setVisible(visible bool) {
	if visible == v.visible && v.phase == AnimationNone {
		return
	}
	v.visible = visible
	if visible {
		v.realVisible = true
		v.phase = AnimationEnter
		v.tween = gween.New(float32(v.progress), 1, enterLeaveDuration, ease.OutQuad)
	} else {
		v.phase = AnimationLeave
		v.tween = gween.New(float32(v.progress), 0, enterLeaveDuration, ease.OutQuad)
	}
}

// update advances the active animation by dt seconds.
func (v *visibility) update(dt float32) {
	if v.tween == nil {
		return
	}
	val, finished := v.tween.Update(dt)
	v.progress = float64(val)
	if !finished {
		return
	}
	v.tween = nil
	ended := v.phase
	v.phase = AnimationNone
	if ended == AnimationLeave {
		v.realVisible = false
	}
	if v.onEnd != nil {
		v.onEnd(ended)
	}
}
