package geobox

import (
	"math"
	"testing"

	"github.com/paulmach/orb"

	"github.com/gridkit/gridkit/pkg/affine"
)

const eps = 1e-12

// northUp returns a typical north-up geotransform: origin at (x0, y0),
// square pixels of size res, y axis pointing down in pixel space.
func northUp(x0, y0, res float64) affine.Affine {
	return affine.Translation(x0, y0).Mul(affine.Scale(res, -res))
}

func TestAccessors(t *testing.T) {
	b := New(80, 60, northUp(1000, 2000, 10), "EPSG:32633")

	if b.Width() != 80 || b.Height() != 60 {
		t.Errorf("size = %dx%d, want 80x60", b.Width(), b.Height())
	}
	if h, w := b.Shape(); h != 60 || w != 80 {
		t.Errorf("Shape() = (%d, %d), want (60, 80)", h, w)
	}
	if b.CRS() != "EPSG:32633" {
		t.Errorf("CRS = %q", b.CRS())
	}
	if !b.CRS().IsDefined() {
		t.Error("CRS should be defined")
	}
	if xres, yres := b.Resolution(); xres != 10 || yres != 10 {
		t.Errorf("Resolution = (%v, %v), want (10, 10)", xres, yres)
	}
}

func TestSlice(t *testing.T) {
	b := New(100, 100, northUp(0, 0, 1), "EPSG:4326")
	sub := b.Slice(Span{10, 40}, Span{20, 25})

	if sub.Height() != 30 || sub.Width() != 5 {
		t.Fatalf("sub shape = %dx%d, want 5x30", sub.Width(), sub.Height())
	}
	if sub.CRS() != b.CRS() {
		t.Errorf("CRS changed: %q", sub.CRS())
	}

	// Pixel (0,0) of the sub-box must land where pixel (20,10) of the
	// source does.
	want := b.PixelToWorld(20, 10)
	got := sub.PixelToWorld(0, 0)
	if math.Abs(got[0]-want[0]) > eps || math.Abs(got[1]-want[1]) > eps {
		t.Errorf("sub origin = %v, want %v", got, want)
	}
}

func TestPixelWorldRoundTrip(t *testing.T) {
	b := New(50, 50, northUp(500, 800, 2.5), "")

	pts := [][2]float64{{0, 0}, {25, 25}, {49.5, 3.25}}
	for _, p := range pts {
		world := b.PixelToWorld(p[0], p[1])
		col, row := b.WorldToPixel(world)
		if math.Abs(col-p[0]) > 1e-9 || math.Abs(row-p[1]) > 1e-9 {
			t.Errorf("round trip of %v gave (%v, %v)", p, col, row)
		}
	}
}

func TestExtent(t *testing.T) {
	// 10x20 pixels of size 10 anchored at (100, 500), y flipped.
	b := New(10, 20, northUp(100, 500, 10), "EPSG:3857")

	want := orb.Bound{Min: orb.Point{100, 300}, Max: orb.Point{200, 500}}
	got := b.Extent()
	if !got.Equal(want) {
		t.Errorf("Extent = %v, want %v", got, want)
	}
}

func TestFootprintClosed(t *testing.T) {
	b := New(3, 4, affine.Rotation(30).Mul(affine.Scale(2, 2)), "")
	ring := b.Footprint()

	if len(ring) != 5 {
		t.Fatalf("ring has %d points, want 5", len(ring))
	}
	if ring[0] != ring[4] {
		t.Errorf("ring not closed: %v != %v", ring[0], ring[4])
	}
}

func TestEqualWithin(t *testing.T) {
	a := New(10, 10, northUp(0, 0, 1), "EPSG:4326")

	tests := []struct {
		name  string
		other GeoBox
		want  bool
	}{
		{"Same", New(10, 10, northUp(0, 0, 1), "EPSG:4326"), true},
		{"Jittered", New(10, 10, northUp(1e-13, 0, 1), "EPSG:4326"), true},
		{"DifferentShape", New(10, 11, northUp(0, 0, 1), "EPSG:4326"), false},
		{"DifferentCRS", New(10, 10, northUp(0, 0, 1), "EPSG:3857"), false},
		{"DifferentOrigin", New(10, 10, northUp(5, 0, 1), "EPSG:4326"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.EqualWithin(tt.other, eps); got != tt.want {
				t.Errorf("EqualWithin = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSpanLen(t *testing.T) {
	if got := (Span{3, 10}).Len(); got != 7 {
		t.Errorf("Len = %d, want 7", got)
	}
}
