package easel

import "math"

// identityAffine is the identity affine matrix.
var identityAffine = [6]float64{1, 0, 0, 1, 0, 0}

// multiplyAffine multiplies two 2D affine matrices: result = p * c.
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
		return identityAffine
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

// affineIsNaN reports whether any element of the matrix is NaN.
func affineIsNaN(m [6]float64) bool {
	for _, v := range m {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}

// decomposeAffine extracts rotation and per-axis scale from an affine matrix,
// discarding the translation. ScaleY carries the sign of the determinant, so
// mirrored transforms decompose to a negative Y scale rather than a bogus
// rotation.
func decomposeAffine(m [6]float64) (rotation, scaleX, scaleY float64) {
	scaleX = math.Hypot(m[0], m[1])
	if scaleX == 0 {
		return 0, 0, math.Hypot(m[2], m[3])
	}
	rotation = math.Atan2(m[1], m[0])
	scaleY = (m[0]*m[3] - m[2]*m[1]) / scaleX
	return rotation, scaleX, scaleY
}
