// Package geobox defines GeoBox, a descriptor for a rectangular pixel grid
// anchored in world coordinates.
//
// A GeoBox couples a pixel shape (height, width), an affine transform
// mapping pixel coordinates to world coordinates, and an opaque coordinate
// reference system tag. It describes where a raster sits in the world
// without holding any pixel data.
//
// GeoBox is an immutable value: every operation returns a new instance and
// shares no mutable state with its input, so values are safe to use
// concurrently.
package geobox

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/gridkit/gridkit/pkg/affine"
)

// CRS is an opaque coordinate reference system tag (e.g. "EPSG:4326").
// The empty string means the reference system is undefined. The tag is
// passed through unchanged by every operation; no validation or
// reprojection happens here.
type CRS string

// IsDefined reports whether the CRS tag is non-empty.
func (c CRS) IsDefined() bool { return c != "" }

// Span is a half-open pixel interval [Start, Stop).
type Span struct {
	Start int
	Stop  int
}

// Len returns the number of pixels covered by the span.
func (s Span) Len() int { return s.Stop - s.Start }

// GeoBox describes a width x height pixel grid with a pixel-to-world
// transform and a CRS tag. Construct with [New]; the zero value is an
// empty, degenerate box.
type GeoBox struct {
	width     int
	height    int
	transform affine.Affine
	crs       CRS
}

// New creates a GeoBox. Width and height must be positive; this is a
// caller precondition and is not validated here.
func New(width, height int, transform affine.Affine, crs CRS) GeoBox {
	return GeoBox{width: width, height: height, transform: transform, crs: crs}
}

// Width returns the pixel width.
func (g GeoBox) Width() int { return g.width }

// Height returns the pixel height.
func (g GeoBox) Height() int { return g.height }

// Shape returns the pixel shape in (height, width) order.
func (g GeoBox) Shape() (height, width int) { return g.height, g.width }

// Transform returns the pixel-to-world affine transform.
func (g GeoBox) Transform() affine.Affine { return g.transform }

// CRS returns the coordinate reference system tag.
func (g GeoBox) CRS() CRS { return g.crs }

// Resolution returns the absolute world-space size of one pixel along the
// x and y axes.
func (g GeoBox) Resolution() (xres, yres float64) {
	xres, yres = g.transform.A, g.transform.E
	if xres < 0 {
		xres = -xres
	}
	if yres < 0 {
		yres = -yres
	}
	return xres, yres
}

// Slice returns the sub-box covering the pixel rectangle rows x cols.
// The new box's pixel (0, 0) coincides with pixel (cols.Start, rows.Start)
// of g, so the transform gains a pixel-space translation. The CRS is
// unchanged. Spans must lie within the box extent; this is a caller
// precondition.
func (g GeoBox) Slice(rows, cols Span) GeoBox {
	t := g.transform.Mul(affine.Translation(float64(cols.Start), float64(rows.Start)))
	return New(cols.Len(), rows.Len(), t, g.crs)
}

// PixelToWorld maps a pixel coordinate to a world-space point. Pixel
// coordinates are continuous: (0, 0) is the outer corner of the top-left
// pixel and (0.5, 0.5) its center.
func (g GeoBox) PixelToWorld(col, row float64) orb.Point {
	x, y := g.transform.Apply(col, row)
	return orb.Point{x, y}
}

// WorldToPixel maps a world-space point back to continuous pixel
// coordinates using the inverse transform.
func (g GeoBox) WorldToPixel(pt orb.Point) (col, row float64) {
	return g.transform.Invert().Apply(pt[0], pt[1])
}

// Footprint returns the world-space outline of the box as a closed ring,
// walking the pixel corners (0,0) -> (W,0) -> (W,H) -> (0,H) -> (0,0).
func (g GeoBox) Footprint() orb.Ring {
	w, h := float64(g.width), float64(g.height)
	return orb.Ring{
		g.PixelToWorld(0, 0),
		g.PixelToWorld(w, 0),
		g.PixelToWorld(w, h),
		g.PixelToWorld(0, h),
		g.PixelToWorld(0, 0),
	}
}

// Extent returns the axis-aligned world-space bounding box of the
// footprint.
func (g GeoBox) Extent() orb.Bound {
	return g.Footprint().Bound()
}

// EqualWithin reports whether g and other have the same shape and CRS and
// transforms whose coefficients differ by at most eps.
func (g GeoBox) EqualWithin(other GeoBox, eps float64) bool {
	return g.width == other.width &&
		g.height == other.height &&
		g.crs == other.crs &&
		g.transform.EqualWithin(other.transform, eps)
}

// String returns a compact human-readable description.
func (g GeoBox) String() string {
	return fmt.Sprintf("GeoBox(%dx%d, %s, crs=%s)", g.width, g.height, g.transform, g.crs)
}
