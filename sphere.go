package raytracer

import "github.com/chewxy/math32"

// Sphere is the unit sphere centered at the origin in its local frame;
// Transform carries it to wherever it lives in the scene.
type Sphere struct {
	Transform
	Material   MaterialProvider
	Refraction float32
}

// NewSphere returns a Sphere at the identity transform, refraction index
// 1.0, with the given material pattern.
func NewSphere(material MaterialProvider) *Sphere {
	return &Sphere{Transform: NewTransform(), Material: material, Refraction: 1.0}
}

// Intersect solves the local-frame quadratic |o + t*d|^2 = 1, picking the
// smaller strictly-positive root (tie-break: smaller t) and falling back
// to the larger root only if the smaller one is behind the ray origin.
func (s *Sphere) Intersect(r Ray) (Point, bool) {
	local := s.WorldToLocalRay(r)
	o, d := local.Origin, local.Direction

	a := d.Dot(d)
	b := 2 * d.Dot(o)
	c := o.Dot(o) - 1

	disc := b*b - 4*a*c
	if disc < 0 {
		return Point{}, false
	}
	sq := math32.Sqrt(disc)
	t1 := (-b - sq) / (2 * a)
	t2 := (-b + sq) / (2 * a)

	var t float32
	switch {
	case t1 > gapEpsilon:
		t = t1
	case t2 > gapEpsilon:
		t = t2
	default:
		return Point{}, false
	}
	localImpact := o.Add(d.Scale(t))
	return s.LocalToWorldPoint(localImpact), true
}

// Normal is the normalized local position (the sphere is centered at the
// local origin with radius 1, so that's already the outward direction),
// flipped when the observer sits inside the sphere in local space.
func (s *Sphere) Normal(at, observer Point) Point {
	local := s.WorldToLocalPoint(at)
	n := local
	if s.WorldToLocalPoint(observer).Dot(s.WorldToLocalPoint(observer)) < 1 {
		n = n.Neg()
	}
	return s.LocalToWorldRay(Ray{Origin: local, Direction: n}).Direction.Normalize()
}

func (s *Sphere) OuterNormal(at Point) Point {
	local := s.WorldToLocalPoint(at)
	return s.LocalToWorldRay(Ray{Origin: local, Direction: local}).Direction.Normalize()
}

// MaterialAt maps the local surface position to the sphere's spherical
// (u, v): u = atan2(z,x)/2pi + 1/2, v = acos(y)/pi.
func (s *Sphere) MaterialAt(at Point) Material {
	local := s.WorldToLocalPoint(at)
	u := 0.5 + math32.Atan2(local.Z, local.X)/(2*math32.Pi)
	v := math32.Acos(clampUnit(local.Y)) / math32.Pi
	return s.Material.MaterialAt(u, v)
}

func (s *Sphere) ReflectedRay(r Ray, impact Point) Ray {
	return reflectRay(r.Direction, impact, s.Normal(impact, r.Origin))
}

func (s *Sphere) RefractedRay(r Ray, impact Point) (Ray, bool) {
	return refractRay(r.Direction, impact, s.OuterNormal(impact), s.Refraction)
}

func (s *Sphere) RefractionIndex() float32 { return s.Refraction }

// clampUnit guards Acos against floating point noise pushing |x| a hair
// past 1 for points that are numerically but not exactly on the sphere.
func clampUnit(x float32) float32 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}
