package transform

import (
	"math"
	"testing"

	"github.com/paulmach/orb"

	"github.com/gridkit/gridkit/pkg/affine"
	"github.com/gridkit/gridkit/pkg/geobox"
)

const eps = 1e-9

// boundNear compares two bounds with a tolerance, since composed scale
// factors like 100/13 do not round-trip exactly in floating point.
func boundNear(a, b orb.Bound, tol float64) bool {
	return math.Abs(a.Min[0]-b.Min[0]) <= tol &&
		math.Abs(a.Min[1]-b.Min[1]) <= tol &&
		math.Abs(a.Max[0]-b.Max[0]) <= tol &&
		math.Abs(a.Max[1]-b.Max[1]) <= tol
}

// testBox returns a 100x80 (WxH) north-up box with 10m pixels anchored at
// (1000, 2000).
func testBox() geobox.GeoBox {
	t := affine.Translation(1000, 2000).Mul(affine.Scale(10, -10))
	return geobox.New(100, 80, t, "EPSG:32633")
}

func TestFlipInvolution(t *testing.T) {
	tests := []struct {
		name string
		flip func(geobox.GeoBox) geobox.GeoBox
	}{
		{"FlipX", FlipX},
		{"FlipY", FlipY},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testBox()
			twice := tt.flip(tt.flip(b))
			if !twice.EqualWithin(b, eps) {
				t.Errorf("double flip = %v, want %v", twice, b)
			}
		})
	}
}

func TestFlipPreservesExtent(t *testing.T) {
	b := testBox()
	for name, flipped := range map[string]geobox.GeoBox{
		"FlipX": FlipX(b),
		"FlipY": FlipY(b),
	} {
		if h, w := flipped.Shape(); h != 80 || w != 100 {
			t.Errorf("%s shape = (%d, %d), want (80, 100)", name, h, w)
		}
		if !boundNear(flipped.Extent(), b.Extent(), eps) {
			t.Errorf("%s extent = %v, want %v", name, flipped.Extent(), b.Extent())
		}
	}
}

func TestFlipYReversesRows(t *testing.T) {
	b := testBox()
	f := FlipY(b)

	// Row 0 of the flipped box must start where the last row of the
	// source starts.
	want := b.PixelToWorld(0, float64(b.Height()))
	got := f.PixelToWorld(0, 0)
	if math.Abs(got[0]-want[0]) > eps || math.Abs(got[1]-want[1]) > eps {
		t.Errorf("flipped origin = %v, want %v", got, want)
	}
}

func TestTranslatePixels(t *testing.T) {
	b := testBox()
	moved := TranslatePixels(b, 10, 5)

	if h, w := moved.Shape(); h != 80 || w != 100 {
		t.Errorf("shape changed: (%d, %d)", h, w)
	}

	want := b.PixelToWorld(10, 5)
	got := moved.PixelToWorld(0, 0)
	if math.Abs(got[0]-want[0]) > eps || math.Abs(got[1]-want[1]) > eps {
		t.Errorf("new origin = %v, want %v", got, want)
	}
}

func TestTranslateComposition(t *testing.T) {
	b := testBox()
	twice := TranslatePixels(TranslatePixels(b, 1.5, -2), 3, 7.25)
	once := TranslatePixels(b, 4.5, 5.25)
	if !twice.EqualWithin(once, eps) {
		t.Errorf("chained translate = %v, want %v", twice, once)
	}
}

func TestPad(t *testing.T) {
	tests := []struct {
		name       string
		padx, pady int
		wantH      int
		wantW      int
	}{
		{"Symmetric", 3, 3, 86, 106},
		{"Asymmetric", 5, 2, 84, 110},
		{"Zero", 0, 0, 80, 100},
	}

	b := testBox()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := PadXY(b, tt.padx, tt.pady)
			if h, w := p.Shape(); h != tt.wantH || w != tt.wantW {
				t.Fatalf("shape = (%d, %d), want (%d, %d)", h, w, tt.wantH, tt.wantW)
			}
			// Pixel (padx, pady) of the padded box is the old origin.
			want := b.PixelToWorld(0, 0)
			got := p.PixelToWorld(float64(tt.padx), float64(tt.pady))
			if math.Abs(got[0]-want[0]) > eps || math.Abs(got[1]-want[1]) > eps {
				t.Errorf("old origin at %v, want %v", got, want)
			}
		})
	}

	if !Pad(b, 4).EqualWithin(PadXY(b, 4, 4), eps) {
		t.Error("Pad(b, 4) != PadXY(b, 4, 4)")
	}
}

func TestZoomOut(t *testing.T) {
	tests := []struct {
		name   string
		factor float64
		wantH  int
		wantW  int
	}{
		{"Halve", 2, 40, 50},
		{"Uneven", 3, 27, 34}, // ceil(80/3), ceil(100/3)
		{"ZoomIn", 0.5, 160, 200},
		{"ClampToOne", 1000, 1, 1},
	}

	b := testBox()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			z := ZoomOut(b, tt.factor)
			if h, w := z.Shape(); h != tt.wantH || w != tt.wantW {
				t.Errorf("shape = (%d, %d), want (%d, %d)", h, w, tt.wantH, tt.wantW)
			}
			// Pixel size scales by the factor.
			xres, yres := z.Resolution()
			if math.Abs(xres-10*tt.factor) > eps || math.Abs(yres-10*tt.factor) > eps {
				t.Errorf("resolution = (%v, %v), want %v", xres, yres, 10*tt.factor)
			}
		})
	}
}

func TestZoomToExactShape(t *testing.T) {
	b := testBox()
	tests := []struct{ h, w int }{
		{80, 100}, {40, 50}, {1, 1}, {77, 13}, {160, 300},
	}

	for _, tt := range tests {
		z := ZoomTo(b, tt.h, tt.w)
		if h, w := z.Shape(); h != tt.h || w != tt.w {
			t.Errorf("ZoomTo(%d, %d) shape = (%d, %d)", tt.h, tt.w, h, w)
		}
		if !boundNear(z.Extent(), b.Extent(), 1e-6) {
			t.Errorf("ZoomTo(%d, %d) extent = %v, want %v", tt.h, tt.w, z.Extent(), b.Extent())
		}
	}
}

func TestRotatePreservesShape(t *testing.T) {
	b := testBox()
	for _, deg := range []float64{0, 15, 90, 180, -45, 360, 723.5} {
		r := Rotate(b, deg)
		if h, w := r.Shape(); h != 80 || w != 100 {
			t.Errorf("Rotate(%v) shape = (%d, %d), want (80, 100)", deg, h, w)
		}
		if r.CRS() != b.CRS() {
			t.Errorf("Rotate(%v) changed CRS", deg)
		}
	}
}

func TestRotateKeepsCenterFixed(t *testing.T) {
	b := testBox()
	center := b.PixelToWorld(float64(b.Width())*0.5, float64(b.Height())*0.5)

	r := Rotate(b, 37)
	got := r.PixelToWorld(float64(r.Width())*0.5, float64(r.Height())*0.5)
	if math.Abs(got[0]-center[0]) > eps || math.Abs(got[1]-center[1]) > eps {
		t.Errorf("center moved from %v to %v", center, got)
	}
}

func TestRotateFullTurn(t *testing.T) {
	b := testBox()
	if !Rotate(b, 360).EqualWithin(b, 1e-6) {
		t.Errorf("360 degree rotation = %v, want %v", Rotate(b, 360), b)
	}
}

func TestApplyPixelTransform(t *testing.T) {
	b := testBox()

	// The identity leaves the box untouched.
	if !ApplyPixelTransform(b, affine.Identity()).EqualWithin(b, 0) {
		t.Error("identity pixel transform changed the box")
	}

	// A pure pixel translation matches TranslatePixels.
	got := ApplyPixelTransform(b, affine.Translation(3, -4))
	want := TranslatePixels(b, 3, -4)
	if !got.EqualWithin(want, eps) {
		t.Errorf("pixel translation = %v, want %v", got, want)
	}
}

func TestTransformsDoNotMutateSource(t *testing.T) {
	b := testBox()
	orig := testBox()

	FlipX(b)
	FlipY(b)
	TranslatePixels(b, 1, 2)
	PadXY(b, 1, 2)
	ZoomOut(b, 2)
	ZoomTo(b, 7, 9)
	Rotate(b, 45)
	ApplyPixelTransform(b, affine.Scale(2, 2))

	if !b.EqualWithin(orig, 0) {
		t.Errorf("source mutated: %v", b)
	}
}
