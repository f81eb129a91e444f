// Package gridio reads and writes grid box descriptors.
//
// A descriptor is the canonical serialization of a [geobox.GeoBox]: pixel
// shape, pixel-to-world transform, and CRS tag. Descriptors round-trip
// through JSON and TOML; the transform can be given in rasterio coefficient
// order ("transform") or GDAL geotransform order ("geotransform"), and
// export always writes rasterio order.
//
// No raster pixel data is touched here, only geometry metadata.
package gridio

import (
	"github.com/gridkit/gridkit/pkg/affine"
	"github.com/gridkit/gridkit/pkg/errors"
	"github.com/gridkit/gridkit/pkg/geobox"
)

// Descriptor is the on-disk form of a grid box.
//
// Exactly one of Transform (rasterio order: a, b, c, d, e, f) or
// Geotransform (GDAL order: c, a, b, f, d, e) must be set; both carry six
// coefficients.
type Descriptor struct {
	Width        int       `json:"width" toml:"width"`
	Height       int       `json:"height" toml:"height"`
	Transform    []float64 `json:"transform,omitempty" toml:"transform,omitempty"`
	Geotransform []float64 `json:"geotransform,omitempty" toml:"geotransform,omitempty"`
	CRS          string    `json:"crs,omitempty" toml:"crs,omitempty"`
}

// FromGeoBox converts a GeoBox to its descriptor with the transform in
// rasterio order.
func FromGeoBox(b geobox.GeoBox) Descriptor {
	t := b.Transform()
	return Descriptor{
		Width:     b.Width(),
		Height:    b.Height(),
		Transform: []float64{t.A, t.B, t.C, t.D, t.E, t.F},
		CRS:       string(b.CRS()),
	}
}

// GeoBox validates the descriptor and converts it to a GeoBox.
//
// Validation errors carry the codes from [errors]: INVALID_SHAPE for
// non-positive dimensions, INVALID_TRANSFORM for missing, ambiguous,
// mis-sized, or non-finite coefficients, INVALID_INPUT for a malformed
// CRS tag.
func (d Descriptor) GeoBox() (geobox.GeoBox, error) {
	if err := errors.ValidateShape(d.Width, d.Height); err != nil {
		return geobox.GeoBox{}, err
	}
	if err := errors.ValidateCRS(d.CRS); err != nil {
		return geobox.GeoBox{}, err
	}

	t, err := d.affine()
	if err != nil {
		return geobox.GeoBox{}, err
	}

	return geobox.New(d.Width, d.Height, t, geobox.CRS(d.CRS)), nil
}

// affine resolves the transform field pair into an affine.Affine.
func (d Descriptor) affine() (affine.Affine, error) {
	switch {
	case len(d.Transform) > 0 && len(d.Geotransform) > 0:
		return affine.Affine{}, errors.New(errors.ErrCodeInvalidTransform,
			"descriptor sets both transform and geotransform")
	case len(d.Transform) > 0:
		coeffs, err := sixCoeffs(d.Transform)
		if err != nil {
			return affine.Affine{}, err
		}
		return affine.Affine{
			A: coeffs[0], B: coeffs[1], C: coeffs[2],
			D: coeffs[3], E: coeffs[4], F: coeffs[5],
		}, nil
	case len(d.Geotransform) > 0:
		coeffs, err := sixCoeffs(d.Geotransform)
		if err != nil {
			return affine.Affine{}, err
		}
		return affine.FromGDAL(coeffs), nil
	default:
		return affine.Affine{}, errors.New(errors.ErrCodeInvalidTransform,
			"descriptor sets neither transform nor geotransform")
	}
}

// sixCoeffs checks length and finiteness of a coefficient slice.
func sixCoeffs(s []float64) ([6]float64, error) {
	if len(s) != 6 {
		return [6]float64{}, errors.New(errors.ErrCodeInvalidTransform,
			"transform must have 6 coefficients, got %d", len(s))
	}
	var coeffs [6]float64
	copy(coeffs[:], s)
	if err := errors.ValidateTransform(coeffs); err != nil {
		return [6]float64{}, err
	}
	return coeffs, nil
}
