package raytracer

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Point is a triple of 32-bit floats. It doubles as both a position and a
// direction vector; nothing at the type level distinguishes the two, the
// same way the original HCoord picks w=1 or w=0 to tell them apart.
type Point struct {
	X, Y, Z float32
}

// Pt is a convenience constructor.
func Pt(x, y, z float32) Point {
	return Point{X: x, Y: y, Z: z}
}

func (p Point) String() string {
	return fmt.Sprintf("Point(%.4f, %.4f, %.4f)", p.X, p.Y, p.Z)
}

func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y, Z: p.Z + o.Z}
}

func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y, Z: p.Z - o.Z}
}

func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y, Z: -p.Z}
}

func (p Point) Scale(s float32) Point {
	return Point{X: p.X * s, Y: p.Y * s, Z: p.Z * s}
}

func (p Point) Div(s float32) Point {
	return Point{X: p.X / s, Y: p.Y / s, Z: p.Z / s}
}

func (p Point) Dot(o Point) float32 {
	return p.X*o.X + p.Y*o.Y + p.Z*o.Z
}

func (p Point) Norm() float32 {
	return math32.Sqrt(p.Dot(p))
}

func (p Point) Normalize() Point {
	return p.Div(p.Norm())
}

func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0 && p.Z == 0
}

// HCoord is a homogeneous 4-vector: w=1 for positions (a perspective divide
// recovers the Point on projection back down), w=0 for directions (so
// translation is annihilated when the point is really a vector).
type HCoord struct {
	X, Y, Z, W float32
}

func pointToHCoord(p Point, w float32) HCoord {
	return HCoord{X: p.X, Y: p.Y, Z: p.Z, W: w}
}

// IntoPt perspective-divides by W, recovering a Point from a position.
func (h HCoord) IntoPt() Point {
	return Point{X: h.X / h.W, Y: h.Y / h.W, Z: h.Z / h.W}
}

// IntoVec drops W, recovering a Point from a direction.
func (h HCoord) IntoVec() Point {
	return Point{X: h.X, Y: h.Y, Z: h.Z}
}
