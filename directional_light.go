package raytracer

import "github.com/chewxy/math32"

// DirectionalLight has no position, only a direction: it illuminates
// along its local +z at infinite distance, as if its source sat
// infinitely far away along local -z.
type DirectionalLight struct {
	Transform
	DiffuseCol  Color
	SpecularCol Color
}

func NewDirectionalLight(diffuse, specular Color) *DirectionalLight {
	return &DirectionalLight{Transform: NewTransform(), DiffuseCol: diffuse, SpecularCol: specular}
}

// VecToLight is constant everywhere in the scene: the light's local -z
// axis, lifted to world space.
func (l *DirectionalLight) VecToLight(p Point) Point {
	return l.LocalToWorldVector(Pt(0, 0, -1)).Normalize()
}

func (l *DirectionalLight) RayToLight(p Point) Ray {
	return Ray{Origin: p, Direction: l.VecToLight(p)}
}

func (l *DirectionalLight) Distance(p Point) float32 { return math32.Inf(1) }
func (l *DirectionalLight) Illuminate(p Point) bool  { return true }
func (l *DirectionalLight) DiffuseColor() Color      { return l.DiffuseCol }
func (l *DirectionalLight) SpecularColor() Color     { return l.SpecularCol }
