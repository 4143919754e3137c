package raytracer

import (
	"github.com/chewxy/math32"
	"go.uber.org/zap"

	"github.com/briarwood/go-raytracer/internal/rtlog"
)

// lightFilterDepthCap bounds light_filter's recursion through stacked
// translucent occluders. The source this package is modeled on recurses
// without a cap; this is a documented fix for pathological scenes, not a
// behavioral change for well-formed ones.
const lightFilterDepthCap = 32

// selfHitEpsilon is how close a shadow ray's hit point must be to its
// origin before it's treated as a surface-spawn self-intersection
// artifact rather than a real occluder.
const selfHitEpsilon = 1e-4

// Scene is the flat collection of objects and lights a render traces
// against, plus the ambient and background terms that apply when nothing,
// or nothing opaque, is hit. Once a render begins, Scene is shared by
// reference across worker goroutines and never mutated.
type Scene struct {
	Objects    []Object
	Lights     []Light
	Ambient    Color
	Background Color
}

// NewScene returns an empty Scene with package defaults for ambient light
// and background color.
func NewScene() *Scene {
	return &Scene{Ambient: DefaultAmbient, Background: SkyColor}
}

// ClosestHit scans Objects linearly for the nearest intersection with r,
// measured by Euclidean distance from r.Origin. Ties are broken by
// object order: the first object registered wins.
func (s *Scene) ClosestHit(r Ray) (Object, Point, bool) {
	var (
		best     Object
		bestAt   Point
		bestDist float32
		found    bool
	)
	for _, obj := range s.Objects {
		at, ok := obj.Intersect(r)
		if !ok {
			continue
		}
		dist := at.Sub(r.Origin).Norm()
		if !found || dist < bestDist {
			best, bestAt, bestDist, found = obj, at, dist, true
		}
	}
	return best, bestAt, found
}

// LightFilter casts a shadow ray from point toward light and recursively
// accumulates the color-filtered transmission of every translucent
// occluder along the way, returning White for an unobstructed path and
// Black for one blocked by a fully opaque object.
func (s *Scene) LightFilter(point Point, light Light, depth int) Color {
	if depth >= lightFilterDepthCap {
		return White
	}

	dir := light.VecToLight(point)
	origin := point.Add(dir.Scale(0.01))
	obj, hitAt, hit := s.ClosestHit(Ray{Origin: origin, Direction: dir})
	if !hit {
		return White
	}

	hitDist := hitAt.Sub(point).Norm()
	if hitDist > light.Distance(point) {
		// The light is closer than the occluder.
		return White
	}
	if hitDist < selfHitEpsilon {
		rtlog.L.Warn("light_filter: occluder impact coincides with origin",
			zap.Float32("epsilon", selfHitEpsilon))
		return White
	}

	mat := obj.MaterialAt(hitAt)
	alpha := float32(mat.Alpha) / 255
	transmit := White.MulScalar(1 - alpha).Sub(White.Sub(mat.Diffuse).MulScalar(alpha))
	attenuated := s.LightFilter(hitAt, light, depth+1)

	sqrt2 := math32.Sqrt(2)
	return transmit.MulScalar(sqrt2).Mul(attenuated.MulScalar(sqrt2))
}
