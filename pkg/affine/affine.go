// Package affine implements 2D affine transforms for mapping pixel
// coordinates to world coordinates.
//
// Coefficients follow the rasterio convention:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
//
// which corresponds to the matrix
//
//	| A B C |
//	| D E F |
//	| 0 0 1 |
//
// GDAL orders the same six numbers differently (C, A, B, F, D, E); use
// [FromGDAL] and [Affine.ToGDAL] to convert.
//
// Affine is a plain value type. Composition via [Affine.Mul] is not
// commutative: a.Mul(b) applies b first, then a.
package affine

import (
	"fmt"
	"math"
)

// Affine is a 2D affine transform in rasterio coefficient order.
// The zero value is the degenerate all-zero transform; use [Identity]
// or a named constructor instead.
type Affine struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transform.
func Identity() Affine {
	return Affine{A: 1, E: 1}
}

// Translation returns a transform that shifts points by (dx, dy).
func Translation(dx, dy float64) Affine {
	return Affine{A: 1, C: dx, E: 1, F: dy}
}

// Scale returns a transform that scales x by sx and y by sy.
func Scale(sx, sy float64) Affine {
	return Affine{A: sx, E: sy}
}

// Rotation returns a counter-clockwise rotation by degrees about the origin.
func Rotation(degrees float64) Affine {
	rad := degrees * math.Pi / 180.0
	cos, sin := math.Cos(rad), math.Sin(rad)
	return Affine{A: cos, B: -sin, D: sin, E: cos}
}

// RotationAround returns a counter-clockwise rotation by degrees about the
// pivot point (px, py).
func RotationAround(degrees, px, py float64) Affine {
	return Translation(px, py).Mul(Rotation(degrees)).Mul(Translation(-px, -py))
}

// FromGDAL converts a GDAL-order geotransform into an Affine.
func FromGDAL(gt [6]float64) Affine {
	return Affine{
		A: gt[1], B: gt[2], C: gt[0],
		D: gt[4], E: gt[5], F: gt[3],
	}
}

// ToGDAL returns the transform in GDAL geotransform order.
func (a Affine) ToGDAL() [6]float64 {
	return [6]float64{a.C, a.A, a.B, a.F, a.D, a.E}
}

// Mul composes two transforms. The result applies b first, then a:
// a.Mul(b).Apply(x, y) == a.Apply(b.Apply(x, y)).
func (a Affine) Mul(b Affine) Affine {
	return Affine{
		A: a.A*b.A + a.B*b.D,
		B: a.A*b.B + a.B*b.E,
		C: a.A*b.C + a.B*b.F + a.C,
		D: a.D*b.A + a.E*b.D,
		E: a.D*b.B + a.E*b.E,
		F: a.D*b.C + a.E*b.F + a.F,
	}
}

// Apply maps the point (x, y) through the transform.
func (a Affine) Apply(x, y float64) (float64, float64) {
	return a.A*x + a.B*y + a.C, a.D*x + a.E*y + a.F
}

// Determinant returns the determinant of the linear part.
// A zero determinant means the transform is not invertible.
func (a Affine) Determinant() float64 {
	return a.A*a.E - a.B*a.D
}

// Invert returns the inverse transform. The caller must ensure the
// transform is invertible (non-zero determinant); inverting a degenerate
// transform produces Inf/NaN coefficients.
func (a Affine) Invert() Affine {
	idet := 1.0 / a.Determinant()
	inv := Affine{
		A: a.E * idet,
		B: -a.B * idet,
		D: -a.D * idet,
		E: a.A * idet,
	}
	inv.C, inv.F = inv.A*-a.C+inv.B*-a.F, inv.D*-a.C+inv.E*-a.F
	return inv
}

// EqualWithin reports whether every coefficient of a and b differs by at
// most eps. Useful for comparing composed transforms under floating-point
// rounding.
func (a Affine) EqualWithin(b Affine, eps float64) bool {
	return math.Abs(a.A-b.A) <= eps &&
		math.Abs(a.B-b.B) <= eps &&
		math.Abs(a.C-b.C) <= eps &&
		math.Abs(a.D-b.D) <= eps &&
		math.Abs(a.E-b.E) <= eps &&
		math.Abs(a.F-b.F) <= eps
}

// String returns the transform formatted as two matrix rows.
func (a Affine) String() string {
	return fmt.Sprintf("Affine(%g, %g, %g, %g, %g, %g)", a.A, a.B, a.C, a.D, a.E, a.F)
}
