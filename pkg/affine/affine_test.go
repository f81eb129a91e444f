package affine

import (
	"math"
	"testing"
)

const eps = 1e-12

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		got  Affine
		want Affine
	}{
		{"Identity", Identity(), Affine{A: 1, E: 1}},
		{"Translation", Translation(3, -7), Affine{A: 1, C: 3, E: 1, F: -7}},
		{"Scale", Scale(2, 0.5), Affine{A: 2, E: 0.5}},
		{"Rotation90", Rotation(90), Affine{A: 0, B: -1, D: 1, E: 0}},
		{"Rotation180", Rotation(180), Affine{A: -1, E: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.EqualWithin(tt.want, eps) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestMulOrder(t *testing.T) {
	// Mul applies the right operand first: translate-then-scale differs
	// from scale-then-translate.
	ts := Scale(2, 2).Mul(Translation(1, 1))
	st := Translation(1, 1).Mul(Scale(2, 2))

	x, y := ts.Apply(0, 0)
	if x != 2 || y != 2 {
		t.Errorf("scale∘translate at origin = (%v, %v), want (2, 2)", x, y)
	}

	x, y = st.Apply(0, 0)
	if x != 1 || y != 1 {
		t.Errorf("translate∘scale at origin = (%v, %v), want (1, 1)", x, y)
	}
}

func TestMulMatchesSequentialApply(t *testing.T) {
	a := Rotation(37).Mul(Translation(5, -2))
	b := Scale(3, -1.5).Mul(Translation(-0.25, 8))
	combined := a.Mul(b)

	points := [][2]float64{{0, 0}, {1, 0}, {0, 1}, {-4.5, 12.25}}
	for _, p := range points {
		bx, by := b.Apply(p[0], p[1])
		wantX, wantY := a.Apply(bx, by)
		gotX, gotY := combined.Apply(p[0], p[1])
		if math.Abs(gotX-wantX) > eps || math.Abs(gotY-wantY) > eps {
			t.Errorf("point %v: combined (%v, %v), sequential (%v, %v)", p, gotX, gotY, wantX, wantY)
		}
	}
}

func TestInvert(t *testing.T) {
	tests := []struct {
		name string
		a    Affine
	}{
		{"Translation", Translation(10, -3)},
		{"Scale", Scale(0.25, 4)},
		{"Rotation", Rotation(33)},
		{"Mixed", Translation(100, 200).Mul(Scale(10, -10)).Mul(Rotation(15))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			round := tt.a.Mul(tt.a.Invert())
			if !round.EqualWithin(Identity(), 1e-9) {
				t.Errorf("a * a⁻¹ = %v, want identity", round)
			}
		})
	}
}

func TestRotationAround(t *testing.T) {
	// Rotating about a pivot keeps the pivot fixed.
	r := RotationAround(90, 3, 4)
	x, y := r.Apply(3, 4)
	if math.Abs(x-3) > eps || math.Abs(y-4) > eps {
		t.Errorf("pivot moved to (%v, %v)", x, y)
	}

	// A point one unit right of the pivot goes one unit above it (CCW).
	x, y = r.Apply(4, 4)
	if math.Abs(x-3) > eps || math.Abs(y-5) > eps {
		t.Errorf("(4,4) rotated to (%v, %v), want (3, 5)", x, y)
	}
}

func TestGDALRoundTrip(t *testing.T) {
	gt := [6]float64{1000, 10, 0, 2000, 0, -10}
	a := FromGDAL(gt)

	if a.A != 10 || a.E != -10 || a.C != 1000 || a.F != 2000 {
		t.Errorf("FromGDAL = %v", a)
	}
	if got := a.ToGDAL(); got != gt {
		t.Errorf("ToGDAL = %v, want %v", got, gt)
	}
}

func TestDeterminant(t *testing.T) {
	if got := Scale(2, 3).Determinant(); got != 6 {
		t.Errorf("Determinant = %v, want 6", got)
	}
	if got := Scale(1, 0).Determinant(); got != 0 {
		t.Errorf("degenerate Determinant = %v, want 0", got)
	}
}
