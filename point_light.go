package raytracer

// PointLight radiates from a single world position (its Transform's
// origin), with no distance attenuation.
type PointLight struct {
	Transform
	DiffuseCol  Color
	SpecularCol Color
}

func NewPointLight(diffuse, specular Color) *PointLight {
	return &PointLight{Transform: NewTransform(), DiffuseCol: diffuse, SpecularCol: specular}
}

// VecToLight implements vec_to_light(p) = normalize(T . (-T^-1 . p)):
// express p in the light's local frame, negate it, and lift the result
// back to world space as a direction.
func (l *PointLight) VecToLight(p Point) Point {
	local := l.WorldToLocalPoint(p)
	return l.LocalToWorldVector(local.Neg()).Normalize()
}

// RayToLight implements ray_to_light(p) = normalized Ray(T^-1.p, -T^-1.p)
// built in local space and lifted to world.
func (l *PointLight) RayToLight(p Point) Ray {
	local := l.WorldToLocalPoint(p)
	localRay := Ray{Origin: local, Direction: local.Neg()}
	return l.LocalToWorldRay(localRay).Normalized()
}

// Distance implements distance(p) = |T^-1.p|.
func (l *PointLight) Distance(p Point) float32 {
	return l.WorldToLocalPoint(p).Norm()
}

func (l *PointLight) Illuminate(p Point) bool { return true }
func (l *PointLight) DiffuseColor() Color     { return l.DiffuseCol }
func (l *PointLight) SpecularColor() Color    { return l.SpecularCol }
