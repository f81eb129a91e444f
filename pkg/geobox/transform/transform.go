// Package transform provides pure geometric transformations of a
// [geobox.GeoBox].
//
// Every function takes a source box and returns a new one: the source is
// never mutated, the CRS is carried through unchanged, and the result
// shares no mutable state with the input. All functions are deterministic
// and safe to call concurrently.
//
// Each transform works by composing the source box's pixel-to-world
// transform with a pixel-space affine operation. Composition order is
// load-bearing: the pixel-space operation maps new-pixel coordinates to
// old-pixel coordinates and is therefore applied on the right of the
// source transform. Parameters are not validated; callers must pass
// well-formed boxes and positive shapes where the individual functions
// require them.
package transform

import (
	"math"

	"github.com/gridkit/gridkit/pkg/affine"
	"github.com/gridkit/gridkit/pkg/geobox"
)

// FlipY returns a box covering the same world region with the pixel row
// order reversed.
func FlipY(b geobox.GeoBox) geobox.GeoBox {
	h, w := b.Shape()
	t := b.Transform().
		Mul(affine.Translation(0, float64(h))).
		Mul(affine.Scale(1, -1))
	return geobox.New(w, h, t, b.CRS())
}

// FlipX returns a box covering the same world region with the pixel column
// order reversed.
func FlipX(b geobox.GeoBox) geobox.GeoBox {
	h, w := b.Shape()
	t := b.Transform().
		Mul(affine.Translation(float64(w), 0)).
		Mul(affine.Scale(-1, 1))
	return geobox.New(w, h, t, b.CRS())
}

// TranslatePixels shifts the box in the pixel plane. Pixel (0, 0) of the
// result coincides with pixel (tx, ty) of the source; fractional offsets
// give sub-pixel shifts. The shape is unchanged.
func TranslatePixels(b geobox.GeoBox, tx, ty float64) geobox.GeoBox {
	h, w := b.Shape()
	t := b.Transform().Mul(affine.Translation(tx, ty))
	return geobox.New(w, h, t, b.CRS())
}

// Pad expands the box by pad pixels on every side.
func Pad(b geobox.GeoBox, pad int) geobox.GeoBox {
	return PadXY(b, pad, pad)
}

// PadXY expands the box by padx pixels on the left and right and pady
// pixels on the top and bottom. Both counts must be non-negative.
func PadXY(b geobox.GeoBox, padx, pady int) geobox.GeoBox {
	h, w := b.Shape()
	t := b.Transform().Mul(affine.Translation(float64(-padx), float64(-pady)))
	return geobox.New(w+padx*2, h+pady*2, t, b.CRS())
}

// ZoomOut returns a box covering the same world region at a different
// resolution. factor > 1 gives fewer, bigger pixels; factor < 1 gives
// more, smaller pixels. Output dimensions are clamped to at least 1.
func ZoomOut(b geobox.GeoBox, factor float64) geobox.GeoBox {
	h, w := b.Shape()
	newH := max(1, int(math.Ceil(float64(h)/factor)))
	newW := max(1, int(math.Ceil(float64(w)/factor)))
	t := b.Transform().Mul(affine.Scale(factor, factor))
	return geobox.New(newW, newH, t, b.CRS())
}

// ZoomTo returns a box covering the same world region resampled to exactly
// height x width pixels. Anisotropic resampling is allowed; both
// dimensions must be at least 1.
func ZoomTo(b geobox.GeoBox, height, width int) geobox.GeoBox {
	h, w := b.Shape()
	sx := float64(w) / float64(width)
	sy := float64(h) / float64(height)
	t := b.Transform().Mul(affine.Scale(sx, sy))
	return geobox.New(width, height, t, b.CRS())
}

// Rotate rotates the box counter-clockwise by degrees around the
// world-space center of its footprint. The pixel shape is preserved even
// though the covered world region changes; nothing is resized or cropped.
//
// With the usual inverted pixel y axis, a counter-clockwise world rotation
// appears clockwise when the pixels are viewed in row order. That is the
// intended behavior, matching the world-space convention.
func Rotate(b geobox.GeoBox, degrees float64) geobox.GeoBox {
	h, w := b.Shape()
	cx, cy := b.Transform().Apply(float64(w)*0.5, float64(h)*0.5)
	t := affine.RotationAround(degrees, cx, cy).Mul(b.Transform())
	return geobox.New(w, h, t, b.CRS())
}

// ApplyPixelTransform composes an arbitrary caller-supplied pixel-space
// transform onto the box. T maps new-pixel coordinates to old-pixel
// coordinates:
//
//	X_old_pix = T * X_new_pix
//
// The pixel shape is unchanged; the covered world region follows T. This
// is the general form underlying the other transforms in this package.
func ApplyPixelTransform(b geobox.GeoBox, t affine.Affine) geobox.GeoBox {
	h, w := b.Shape()
	return geobox.New(w, h, b.Transform().Mul(t), b.CRS())
}
