package raytracer

import "fmt"

// Ray is an origin point plus a direction. Downstream shading code assumes
// Normalized has been called, except inside object-local space, where a
// non-unit direction can legitimately arise from a non-uniform or scaling
// transform and is tolerated.
type Ray struct {
	Origin    Point
	Direction Point
}

func (r Ray) String() string {
	return fmt.Sprintf("Ray(Origin: %v, Direction: %v)", r.Origin, r.Direction)
}

// Normalized returns a copy of r with Direction scaled to unit length.
func (r Ray) Normalized() Ray {
	return Ray{Origin: r.Origin, Direction: r.Direction.Normalize()}
}
