package photoview

import (
	"fmt"
	"math"
	"strconv"
)

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// photoTransform computes the affine matrix that scales and rotates a photo
// about its on-screen center (cx, cy). Rotation is in degrees, clockwise.
//
// Composition order: Translate(-cx, -cy) -> Scale -> Rotate -> Translate(cx, cy).
func photoTransform(cx, cy, scale, rotateDeg float64) [6]float64 {
	sin, cos := math.Sincos(rotateDeg * math.Pi / 180)

	a := cos * scale
	b := sin * scale
	c := -sin * scale
	d := cos * scale
	tx := cx - a*cx - c*cy
	ty := cy - b*cx - d*cy
	return [6]float64{a, b, c, d, tx, ty}
}

// multiplyAffine multiplies two 2D affine matrices: result = outer * inner.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular (determinant ≈ 0).
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// transformString renders scale and rotation as a CSS-style transform for
// hosts that position overlay chrome with web-like styling.
func transformString(scale, rotateDeg float64) string {
	return fmt.Sprintf("scale(%s) rotate(%sdeg)", trimFloat(scale), trimFloat(rotateDeg))
}

// trimFloat formats f with trailing zeros removed, so scale(2) rather than
// scale(2.000000).
func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
