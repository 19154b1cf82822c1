// Package photoview is a touch-driven, looping photo slider for [Ebitengine].
//
// Photoview provides the full navigation state machine of a lightbox-style
// image viewer: swipe paging with a recycled three-photo window, pinch and
// wheel zoom, per-photo rotation, pull-down-to-close with a fading backdrop,
// edge elasticity in non-looping mode, and an enter/leave animation
// lifecycle that gesture handling never races.
//
// # Quick start
//
// Create a [Viewer] over your photos, open it, and wire it into your game
// loop:
//
//	viewer := photoview.NewViewer([]photoview.Photo{
//		{Key: "a", Src: imgA},
//		{Key: "b", Src: imgB},
//		{Key: "c", Src: imgC},
//	}, photoview.DefaultConfig())
//	viewer.Show()
//
//	type Game struct{ viewer *photoview.Viewer }
//
//	func (g *Game) Update() error          { g.viewer.Update(); return nil }
//	func (g *Game) Draw(s *ebiten.Image)   { g.viewer.Draw(s) }
//	func (g *Game) Layout(w, h int) (int, int) { return w, h }
//
// The viewer handles mouse drags, touch gestures, two-finger pinch, mouse
// wheel zoom, arrow-key navigation, and Escape.
//
// # Slider core
//
// [Slider] is the state machine underneath [Viewer]: it maps classified
// gesture samples onto a virtual scroll offset, a bounded public index, and
// per-photo transform state, with no rendering or input capture of its own.
// Hosts with their own event source feed it directly:
//
//	s := photoview.NewSlider(photos, cfg)
//	s.Show()
//	s.ReachMove(photoview.AxisX, x, y, 1)
//	s.ReachUp(x, y)
//	frame := s.Frame() // everything a renderer needs to position elements
//
// Internally the slider keeps an unbounded virtual index alongside the
// public one, so paging across the loop boundary scrolls continuously while
// the index hosts observe wraps in [0, len(photos)).
//
// # Callbacks
//
// [Slider.OnIndexChange], [Slider.OnScale], [Slider.OnRotate], and
// [Slider.OnClose] notify the host of state changes. Setting
// [Config.Controlled] hands index ownership to the host: navigation only
// requests, and the host commits with [Slider.SetIndex].
//
// # Animations
//
// Open and close run a 400ms enter/leave animation (via [gween]): the
// backdrop fades, and a photo with an Origin rect expands from and collapses
// back to it. Page turns and snap-backs ease over the same duration.
// Gesture input is ignored while an enter or leave is in flight.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package photoview
