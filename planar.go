package raytracer

import "github.com/chewxy/math32"

// planarEpsilon bounds how close to parallel-with-the-plane a ray's local
// direction may get before it's treated as a miss rather than risking a
// division blowing up into a bogus huge t.
const planarEpsilon = 1e-6

// intersectLocalPlane solves o.Z + t*d.Z = 0 for the local-frame ray r,
// shared by Plane (unrestricted) and Square (restricted to the unit box).
func intersectLocalPlane(r Ray) (local Point, ok bool) {
	if math32.Abs(r.Direction.Z) < planarEpsilon {
		return Point{}, false
	}
	t := -r.Origin.Z / r.Direction.Z
	if t <= gapEpsilon {
		return Point{}, false
	}
	return r.Origin.Add(r.Direction.Scale(t)), true
}

// planarNormal is the Normal implementation shared by Plane and Square:
// both have local outward normal (0,0,1), flipped when the observer sits
// behind the plane in local space (negative local z).
func planarNormal(t *Transform, at, observer Point) Point {
	local := t.WorldToLocalPoint(at)
	n := Pt(0, 0, 1)
	if t.WorldToLocalPoint(observer).Z < 0 {
		n = n.Neg()
	}
	return t.LocalToWorldRay(Ray{Origin: local, Direction: n}).Direction.Normalize()
}

// planarOuterNormal is OuterNormal shared by Plane and Square: the local
// +z axis lifted to world space, independent of any observer.
func planarOuterNormal(t *Transform, at Point) Point {
	local := t.WorldToLocalPoint(at)
	return t.LocalToWorldRay(Ray{Origin: local, Direction: Pt(0, 0, 1)}).Direction.Normalize()
}

// planarUV maps local (x, y) into a repeating [0,1) cell with a sign
// fixup so that negative coordinates wrap continuously rather than
// mirroring at zero. This produces the documented one-unit discontinuity
// across the origin axes rather than a smooth tiling; it is the observed
// behavior of the reference this package is modeled on and is preserved
// deliberately.
func planarUV(x, y float32) (u, v float32) {
	u = math32.Mod(x, 1)
	if x < 0 {
		u = 1 + u
	}
	v = math32.Mod(y, 1)
	if y < 0 {
		v = 1 + v
	}
	return u, v
}
