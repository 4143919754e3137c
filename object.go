package raytracer

import "github.com/chewxy/math32"

// gapEpsilon nudges reflection and refraction rays off the surface they
// originate from, so the originating object doesn't immediately
// re-intersect itself from floating point noise. Shadow rays in
// Scene.LightFilter use their own 0.01 offset.
const gapEpsilon = 5e-4

// Object is anything a Ray can hit: Sphere, Plane and Square all satisfy
// it. Every method is handed world-space arguments; implementations embed
// a Transform and convert to local space internally.
type Object interface {
	// Intersect returns the nearest positive-distance world-space impact
	// point along r, if any.
	Intersect(r Ray) (Point, bool)

	// Normal returns the world-space unit normal at the surface point at,
	// flipped if necessary to face observer.
	Normal(at, observer Point) Point

	// OuterNormal returns the variant's canonical outward world-space
	// normal at at, independent of any observer.
	OuterNormal(at Point) Point

	// MaterialAt converts at to the variant's local (u, v) and dispatches
	// to its MaterialProvider.
	MaterialAt(at Point) Material

	// ReflectedRay builds the mirror reflection of r about the surface
	// normal at impact.
	ReflectedRay(r Ray, impact Point) Ray

	// RefractedRay builds the Snell's-law transmission of r through the
	// surface at impact. The second return is false on total internal
	// reflection.
	RefractedRay(r Ray, impact Point) (Ray, bool)

	// RefractionIndex is the object's refractive index, used on both
	// sides of the Snell's law computation in RefractedRay.
	RefractionIndex() float32
}

// reflectRay mirrors incoming about n, offsetting the new origin by
// gapEpsilon along the reflected direction to clear the surface.
func reflectRay(incoming, impact, n Point) Ray {
	d := incoming.Sub(n.Scale(2 * incoming.Dot(n)))
	d = d.Normalize()
	return Ray{Origin: impact.Add(d.Scale(gapEpsilon)), Direction: d}
}

// refractRay applies Snell's law to incoming crossing a surface with
// outward normal n and refraction index refractionIndex, assuming the
// medium on the outer side of n has index 1. cosI < 0 means the ray is
// entering the object; cosI >= 0 means it's exiting, in which case n is
// flipped and the index ratio inverted so the rest of the formula doesn't
// need a second branch. The second return is false on total internal
// reflection, in which case the first return must be ignored.
func refractRay(incoming, impact, n Point, refractionIndex float32) (Ray, bool) {
	cosI := incoming.Dot(n)
	var eta float32
	if cosI < 0 {
		cosI = -cosI
		eta = 1 / refractionIndex
	} else {
		n = n.Neg()
		eta = refractionIndex
	}
	k := 1 - eta*eta*(1-cosI*cosI)
	if k < 0 {
		return Ray{}, false
	}
	d := incoming.Scale(eta).Add(n.Scale(eta*cosI - math32.Sqrt(k)))
	d = d.Normalize()
	return Ray{Origin: impact.Add(d.Scale(gapEpsilon)), Direction: d}, true
}
