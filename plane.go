package raytracer

// Plane is the infinite z=0 plane in its local frame.
type Plane struct {
	Transform
	Material   MaterialProvider
	Refraction float32
}

// NewPlane returns a Plane at the identity transform with refraction
// index 1.0 (the object-model default).
func NewPlane(material MaterialProvider) *Plane {
	return &Plane{Transform: NewTransform(), Material: material, Refraction: 1.0}
}

func (p *Plane) Intersect(r Ray) (Point, bool) {
	local, ok := intersectLocalPlane(p.WorldToLocalRay(r))
	if !ok {
		return Point{}, false
	}
	return p.LocalToWorldPoint(local), true
}

func (p *Plane) Normal(at, observer Point) Point { return planarNormal(&p.Transform, at, observer) }
func (p *Plane) OuterNormal(at Point) Point      { return planarOuterNormal(&p.Transform, at) }

// MaterialAt tiles local (x, y) into a repeating [0,1) cell: an
// unrestricted plane has no natural bounding box to normalize against.
func (p *Plane) MaterialAt(at Point) Material {
	local := p.WorldToLocalPoint(at)
	u, v := planarUV(local.X, local.Y)
	return p.Material.MaterialAt(u, v)
}

func (p *Plane) ReflectedRay(r Ray, impact Point) Ray {
	return reflectRay(r.Direction, impact, p.Normal(impact, r.Origin))
}

func (p *Plane) RefractedRay(r Ray, impact Point) (Ray, bool) {
	return refractRay(r.Direction, impact, p.OuterNormal(impact), p.Refraction)
}

func (p *Plane) RefractionIndex() float32 { return p.Refraction }
