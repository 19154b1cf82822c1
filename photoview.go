package photoview

import "github.com/hajimehoshi/ebiten/v2"

// --- Constants ---

const (
	// MaxMoveOffset is the horizontal drag distance in pixels beyond which a
	// release commits a page navigation instead of snapping back.
	MaxMoveOffset = 40

	// closePullThreshold is the vertical drag distance in pixels beyond which
	// a release closes the viewer (when pull-close is eligible).
	closePullThreshold = 100

	// opacityFalloff is the vertical drag distance over which the backdrop
	// fades from MaskOpacity to fully transparent.
	opacityFalloff = 400

	// horizontalGutter is the gap in pixels between adjacent pages.
	horizontalGutter = 20

	// minStartDrag is the pointer travel in pixels before the input adapter
	// commits a gesture to an axis.
	minStartDrag = 20

	// loopMinPhotos is the smallest photo count for which looping is active.
	// Below it the adjacency window would mount the same photo twice.
	loopMinPhotos = 3
)

// Default configuration values applied by [DefaultConfig].
const (
	DefaultMaskOpacity = 1.0
	DefaultMinScale    = 1.0
	DefaultMaxScale    = 6.0
)

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Photo describes one image in the slider. Identity is Key; the slice order
// passed to the slider is the navigation order and may change between frames
// (the current position resolves by index, not by remembered identity).
type Photo struct {
	// Key is the stable identity of the photo. Per-photo scale and rotation
	// are stored under it.
	Key string
	// Src is the image to draw. May be nil for state-machine-only use.
	Src *ebiten.Image
	// Caption is optional banner text.
	Caption string
	// Origin, when non-nil, is the screen rectangle the photo expands from
	// on open and collapses to on close.
	Origin *Rect
}

// Config controls slider behavior. Use [DefaultConfig] as a base; the zero
// value disables everything.
type Config struct {
	// Loop enables wrap-around navigation. Looping is only active with at
	// least three photos regardless of this flag.
	Loop bool
	// PhotoClosable closes the viewer when the photo itself is tapped.
	PhotoClosable bool
	// MaskClosable closes the viewer when the backdrop is tapped.
	MaskClosable bool
	// PullClosable closes the viewer on a vertical pull past the threshold.
	PullClosable bool
	// BannerVisible shows the top chrome (counter and caption).
	BannerVisible bool
	// MaskOpacity is the resting backdrop opacity in [0, 1].
	MaskOpacity float64
	// MinScale and MaxScale bound per-photo zoom.
	MinScale, MaxScale float64
	// Controlled switches index ownership to the host: navigation fires
	// OnIndexChange but does not move until the host calls SetIndex.
	Controlled bool
	// Viewport returns the current viewport size in pixels. Read on demand,
	// never cached across a gesture. Defaults to the Ebitengine window size.
	Viewport func() (w, h float64)
}

// DefaultConfig returns the standard configuration: looping, mask tap and
// pull-to-close enabled, banner shown, full-opacity backdrop, zoom 1–6x.
func DefaultConfig() Config {
	return Config{
		Loop:          true,
		MaskClosable:  true,
		PullClosable:  true,
		BannerVisible: true,
		MaskOpacity:   DefaultMaskOpacity,
		MinScale:      DefaultMinScale,
		MaxScale:      DefaultMaxScale,
	}
}

// Axis tags a reach gesture: horizontal drags page between photos, vertical
// drags pull the viewer closed. The axis is decided once per gesture by the
// input source; the reducer never re-derives it from deltas.
type Axis uint8

const (
	AxisX Axis = iota // horizontal paging drag
	AxisY             // vertical pull-close drag
)

// KeyAction is a normalized key press fed to [Slider.Key]. The input source
// owns the physical key bindings.
type KeyAction uint8

const (
	KeyPrev  KeyAction = iota // navigate to the previous photo
	KeyNext                   // navigate to the next photo
	KeyClose                  // close the viewer
)

// clamp limits v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clampInt limits v to [lo, hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
