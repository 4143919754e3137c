package raytracer

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// singularDetEpsilon bounds how close to zero a transform's determinant may
// get before inversion is considered to have failed.
const singularDetEpsilon = 1e-8

// Transform is a Movable's (T, T⁻¹) pair. Every Object and Light embeds one
// to get local<->world conversions for points, vectors and rays for free.
// Holding both matrices is a pragmatic cache: the inverse is consulted on
// every ray intersection, and refactoring it per-ray would dominate render
// time.
type Transform struct {
	fwd mgl32.Mat4
	inv mgl32.Mat4
}

// NewTransform returns an identity transform.
func NewTransform() Transform {
	return Transform{fwd: mgl32.Ident4(), inv: mgl32.Ident4()}
}

func (t *Transform) refreshInverse() error {
	if det := t.fwd.Det(); math32.Abs(det) < singularDetEpsilon {
		return errors.Wrapf(ErrSingularTransform, "determinant %g", det)
	}
	t.inv = t.fwd.Inv()
	return nil
}

// MoveGlobal translates in world coordinates: T <- translate(x,y,z) . T.
func (t *Transform) MoveGlobal(x, y, z float32) error {
	t.fwd = mgl32.Translate3D(x, y, z).Mul4(t.fwd)
	return t.refreshInverse()
}

// RotateX rotates in the object's local frame: T <- T . Rx(radians(deg)).
// Note the pre-composition direction differs deliberately from MoveGlobal,
// which post-composes: translations are expressed in world coordinates,
// rotations and scales in the object's own frame.
func (t *Transform) RotateX(degrees float32) error {
	t.fwd = t.fwd.Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(degrees)))
	return t.refreshInverse()
}

func (t *Transform) RotateY(degrees float32) error {
	t.fwd = t.fwd.Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(degrees)))
	return t.refreshInverse()
}

func (t *Transform) RotateZ(degrees float32) error {
	t.fwd = t.fwd.Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(degrees)))
	return t.refreshInverse()
}

// Scale applies a uniform scale in the object's local frame. Only uniform
// scale is supported: the transform is multiplied in, but normals are never
// renormalized for it, so a non-uniform scale would silently distort them.
func (t *Transform) Scale(s float32) error {
	t.fwd = t.fwd.Mul4(mgl32.Scale3D(s, s, s))
	return t.refreshInverse()
}

func (t *Transform) worldToLocalPoint(p Point) Point {
	return vec4ToHCoord(t.inv.Mul4x1(mgl32.Vec4{p.X, p.Y, p.Z, 1})).IntoPt()
}

func (t *Transform) worldToLocalVector(v Point) Point {
	return vec4ToHCoord(t.inv.Mul4x1(mgl32.Vec4{v.X, v.Y, v.Z, 0})).IntoVec()
}

func (t *Transform) localToWorldPoint(p Point) Point {
	return vec4ToHCoord(t.fwd.Mul4x1(mgl32.Vec4{p.X, p.Y, p.Z, 1})).IntoPt()
}

func (t *Transform) localToWorldVector(v Point) Point {
	return vec4ToHCoord(t.fwd.Mul4x1(mgl32.Vec4{v.X, v.Y, v.Z, 0})).IntoVec()
}

// WorldToLocalPoint embeds p as (x,y,z,1), applies T⁻¹, and perspective
// divides by w to land back on a Point.
func (t *Transform) WorldToLocalPoint(p Point) Point { return t.worldToLocalPoint(p) }

// WorldToLocalVector embeds v as (x,y,z,0), applies T⁻¹, and drops w.
func (t *Transform) WorldToLocalVector(v Point) Point { return t.worldToLocalVector(v) }

// WorldToLocalRay converts Origin as a point and Direction as a vector,
// independently.
func (t *Transform) WorldToLocalRay(r Ray) Ray {
	return Ray{Origin: t.worldToLocalPoint(r.Origin), Direction: t.worldToLocalVector(r.Direction)}
}

// LocalToWorldPoint is the T counterpart of WorldToLocalPoint.
func (t *Transform) LocalToWorldPoint(p Point) Point { return t.localToWorldPoint(p) }

// LocalToWorldVector is the T counterpart of WorldToLocalVector.
func (t *Transform) LocalToWorldVector(v Point) Point { return t.localToWorldVector(v) }

// LocalToWorldRay is the T counterpart of WorldToLocalRay.
func (t *Transform) LocalToWorldRay(r Ray) Ray {
	return Ray{Origin: t.localToWorldPoint(r.Origin), Direction: t.localToWorldVector(r.Direction)}
}

func vec4ToHCoord(v mgl32.Vec4) HCoord {
	return HCoord{X: v[0], Y: v[1], Z: v[2], W: v[3]}
}
