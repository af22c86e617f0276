// Package render implements the tracer's inner loop: ray/primitive
// intersection, the bounded-depth shading kernel, and the per-tile
// camera projection and sampling that drive them.
package render

import (
	reMath "pathtracer/math"
	"pathtracer/scene"
)

// parallelEpsilon is the minimum |n·d| below which a ray is treated as
// parallel to a plane.
const parallelEpsilon = 1e-6

// selfHitEpsilon excludes intersections too close to the ray origin,
// which are almost always the surface the ray just bounced off of.
const selfHitEpsilon = 1e-4

// hit is an intersection distance along a ray; ok is false when there
// is no valid intersection.
type hit struct {
	t  float32
	ok bool
}

// intersectPlane returns the ray parameter where it crosses the plane,
// or ok=false if the ray is parallel to the plane or crosses it behind
// the origin.
func intersectPlane(r scene.Ray, p scene.Plane) hit {
	d := p.Normal.Dot(r.Direction)
	if d > -parallelEpsilon && d < parallelEpsilon {
		return hit{}
	}
	t := (-r.Origin.Dot(p.Normal) - p.D) / d
	return hit{t: t, ok: t >= 0}
}

// intersectSphere returns the nearest positive ray parameter where it
// crosses the sphere, or ok=false if it misses or the sphere's center
// lies behind the origin (tca < 0). The latter includes an origin
// inside the sphere with the ray pointing away from the center.
func intersectSphere(r scene.Ray, s scene.Sphere) hit {
	radius2 := s.Radius * s.Radius
	l := s.Center.Sub(r.Origin)
	tca := l.Dot(r.Direction)
	if tca < 0 {
		return hit{}
	}

	d2 := l.LengthSqr() - tca*tca
	if d2 > radius2 {
		return hit{}
	}

	thc := reMath.Sqrt(radius2 - d2)
	t0, t1 := tca-thc, tca+thc
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	if t0 < 0 {
		t0 = t1
		if t0 < 0 {
			return hit{}
		}
	}
	return hit{t: t0, ok: true}
}
