package raytracer

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func approxPoint(t *testing.T, got, want Point, tol float64) {
	t.Helper()
	opt := cmpopts.EquateApprox(0, tol)
	if diff := cmp.Diff(want, got, opt); diff != "" {
		t.Errorf("point mismatch (-want +got):\n%s", diff)
	}
}

func TestTransformRoundTrip(t *testing.T) {
	tr := NewTransform()
	if err := tr.MoveGlobal(3, -2, 5); err != nil {
		t.Fatalf("MoveGlobal: %v", err)
	}
	if err := tr.RotateY(37); err != nil {
		t.Fatalf("RotateY: %v", err)
	}
	if err := tr.Scale(2.5); err != nil {
		t.Fatalf("Scale: %v", err)
	}

	cases := []Point{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 2, Z: 3},
		{X: -4.5, Y: 10, Z: -0.25},
	}
	for _, p := range cases {
		local := tr.WorldToLocalPoint(p)
		back := tr.LocalToWorldPoint(local)
		approxPoint(t, back, p, 1e-4)
	}
}

func TestTransformCompositionIdentity(t *testing.T) {
	tr := NewTransform()
	if err := tr.MoveGlobal(4, 5, 6); err != nil {
		t.Fatalf("MoveGlobal: %v", err)
	}
	if err := tr.MoveGlobal(-4, -5, -6); err != nil {
		t.Fatalf("MoveGlobal: %v", err)
	}

	p := Pt(1, 2, 3)
	got := tr.LocalToWorldPoint(p)
	approxPoint(t, got, p, 1e-4)
}

func TestRayNormalized(t *testing.T) {
	r := Ray{Origin: Pt(0, 0, 0), Direction: Pt(3, 4, 0)}
	n := r.Normalized()
	if math.Abs(float64(n.Direction.Norm())-1) > 1e-6 {
		t.Errorf("Normalized().Direction.Norm() = %v, want ~1", n.Direction.Norm())
	}
}
