package raytracer

// Square is the z=0 plane in its local frame, restricted to x,y in
// [-1, 1].
type Square struct {
	Transform
	Material   MaterialProvider
	Refraction float32
}

// NewSquare returns a Square at the identity transform with refraction
// index 1.0 (the object-model default).
func NewSquare(material MaterialProvider) *Square {
	return &Square{Transform: NewTransform(), Material: material, Refraction: 1.0}
}

func (s *Square) Intersect(r Ray) (Point, bool) {
	local, ok := intersectLocalPlane(s.WorldToLocalRay(r))
	if !ok {
		return Point{}, false
	}
	if local.X < -1 || local.X > 1 || local.Y < -1 || local.Y > 1 {
		return Point{}, false
	}
	return s.LocalToWorldPoint(local), true
}

func (s *Square) Normal(at, observer Point) Point { return planarNormal(&s.Transform, at, observer) }
func (s *Square) OuterNormal(at Point) Point      { return planarOuterNormal(&s.Transform, at) }

// MaterialAt remaps the bounded local (x, y) in [-1,1] onto the unit box
// [0,1] that strip/grid patterns expect.
func (s *Square) MaterialAt(at Point) Material {
	local := s.WorldToLocalPoint(at)
	u := (local.X + 1) / 2
	v := (local.Y + 1) / 2
	return s.Material.MaterialAt(u, v)
}

func (s *Square) ReflectedRay(r Ray, impact Point) Ray {
	return reflectRay(r.Direction, impact, s.Normal(impact, r.Origin))
}

func (s *Square) RefractedRay(r Ray, impact Point) (Ray, bool) {
	return refractRay(r.Direction, impact, s.OuterNormal(impact), s.Refraction)
}

func (s *Square) RefractionIndex() float32 { return s.Refraction }
