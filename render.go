package photoview

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// bannerHeight is the overlay chrome strip height in pixels.
const bannerHeight = 44

// bannerAlpha is the chrome strip opacity.
const bannerAlpha = 0.5

// whitePixel is a 1x1 white image used for solid-color rectangles.
var whitePixel *ebiten.Image

func init() {
	whitePixel = ebiten.NewImage(1, 1)
	whitePixel.Fill(color.White)
}

// Draw renders the viewer onto screen: backdrop, the mounted photo window at
// its strip offsets, and the overlay chrome. Drawing only reads the frame
// projection; it never feeds back into the state machine.
func (v *Viewer) Draw(screen *ebiten.Image) {
	frame := v.slider.Frame()
	if !frame.RealVisible {
		return
	}
	w, h := v.slider.cfg.Viewport()

	// Backdrop: gesture-driven opacity scaled by the enter/leave progress.
	fillRect(screen, Rect{0, 0, w, h}, 0, 0, 0, frame.BackdropOpacity*frame.Progress)

	for _, item := range frame.Items {
		v.drawItem(screen, frame, item, w, h)
	}

	if frame.OverlayVisible && v.slider.cfg.BannerVisible {
		fillRect(screen, Rect{0, 0, w, bannerHeight}, 0, 0, 0, bannerAlpha*frame.Progress)
	}
}

// drawItem draws one mounted photo at its slot, applying the per-photo
// scale/rotation about the slot center. During enter/leave the current photo
// interpolates between its origin rect and its fitted rect and fades with
// the lifecycle progress.
func (v *Viewer) drawItem(screen *ebiten.Image, frame Frame, item FrameItem, w, h float64) {
	src := item.Photo.Src
	if src == nil {
		return
	}
	offsetX := v.displayX + item.Left
	dest := fitRect(src, w, h)
	alpha := 1.0

	if item.Index == frame.Index && frame.Progress < 1 {
		alpha = frame.Progress
		if o := item.Photo.Origin; o != nil {
			dest = lerpRect(*o, dest, frame.Progress)
		}
	}

	bounds := src.Bounds()
	var op ebiten.DrawImageOptions
	op.Filter = ebiten.FilterLinear
	op.GeoM.Scale(dest.Width/float64(bounds.Dx()), dest.Height/float64(bounds.Dy()))
	op.GeoM.Translate(dest.X+offsetX, dest.Y)

	// Zoom and rotation pivot on the slot's viewport center, which tracks
	// the slot as it slides.
	m := photoTransform(w/2+offsetX, h/2, item.Scale, item.Rotate)
	op.GeoM.Concat(geoMFromAffine(m))

	op.ColorScale.ScaleAlpha(float32(alpha))
	screen.DrawImage(src, &op)
}

// fitRect returns the centered contain-fit rectangle for src inside a
// w x h viewport.
func fitRect(src *ebiten.Image, w, h float64) Rect {
	bounds := src.Bounds()
	sw := float64(bounds.Dx())
	sh := float64(bounds.Dy())
	if sw <= 0 || sh <= 0 || w <= 0 || h <= 0 {
		return Rect{}
	}
	scale := w / sw
	if s := h / sh; s < scale {
		scale = s
	}
	fw := sw * scale
	fh := sh * scale
	return Rect{X: (w - fw) / 2, Y: (h - fh) / 2, Width: fw, Height: fh}
}

// lerpRect interpolates from a to b by t in [0, 1].
func lerpRect(a, b Rect, t float64) Rect {
	return Rect{
		X:      a.X + (b.X-a.X)*t,
		Y:      a.Y + (b.Y-a.Y)*t,
		Width:  a.Width + (b.Width-a.Width)*t,
		Height: a.Height + (b.Height-a.Height)*t,
	}
}

// fillRect draws a solid rectangle. Color components are in [0, 1], not
// premultiplied.
func fillRect(screen *ebiten.Image, r Rect, cr, cg, cb, ca float64) {
	if ca <= 0 || r.Width <= 0 || r.Height <= 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(r.Width, r.Height)
	op.GeoM.Translate(r.X, r.Y)
	op.ColorScale.Scale(float32(cr*ca), float32(cg*ca), float32(cb*ca), float32(ca))
	screen.DrawImage(whitePixel, &op)
}

// geoMFromAffine converts a [a, b, c, d, tx, ty] affine matrix to an
// ebiten.GeoM.
func geoMFromAffine(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(0, 1, m[2])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 0, m[1])
	g.SetElement(1, 1, m[3])
	g.SetElement(1, 2, m[5])
	return g
}
