package raytracer

import "testing"

func TestPlaneIntersectAndNormal(t *testing.T) {
	plane := NewPlane(SimpleMaterialProvider{Material: DefaultMaterial()})

	r := Ray{Origin: Pt(0, 0, 5), Direction: Pt(0, 0, -1)}
	at, ok := plane.Intersect(r)
	if !ok {
		t.Fatal("Intersect() = false, want true")
	}
	approxPoint(t, at, Pt(0, 0, 0), 1e-5)

	n := plane.Normal(at, r.Origin)
	approxPoint(t, n, Pt(0, 0, 1), 1e-5)
}

func TestPlaneNormalFlipsForObserverBehind(t *testing.T) {
	plane := NewPlane(SimpleMaterialProvider{Material: DefaultMaterial()})
	at := Pt(0, 0, 0)
	n := plane.Normal(at, Pt(0, 0, -5))
	approxPoint(t, n, Pt(0, 0, -1), 1e-5)
}

func TestPlaneParallelRayMisses(t *testing.T) {
	plane := NewPlane(SimpleMaterialProvider{Material: DefaultMaterial()})
	r := Ray{Origin: Pt(0, 1, 0), Direction: Pt(1, 0, 0)}
	if _, ok := plane.Intersect(r); ok {
		t.Fatal("Intersect() = true, want false for a ray parallel to the plane")
	}
}

func TestSquareBoundedIntersect(t *testing.T) {
	square := NewSquare(SimpleMaterialProvider{Material: DefaultMaterial()})

	inBounds := Ray{Origin: Pt(0.5, 0.5, -5), Direction: Pt(0, 0, 1)}
	if _, ok := square.Intersect(inBounds); !ok {
		t.Error("Intersect() in-bounds ray = false, want true")
	}

	outOfBounds := Ray{Origin: Pt(2, 2, -5), Direction: Pt(0, 0, 1)}
	if _, ok := square.Intersect(outOfBounds); ok {
		t.Error("Intersect() out-of-bounds ray = true, want false")
	}
}

func TestSquareMaterialAtMapsToUnitBox(t *testing.T) {
	square := NewSquare(recordingProvider{record: func(u, v float32) {
		if u != 0.5 || v != 0.5 {
			t.Errorf("(u,v) = (%v,%v), want (0.5,0.5)", u, v)
		}
	}})
	square.MaterialAt(Pt(0, 0, 0))
}
